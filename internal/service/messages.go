package service

// User-facing messages. Kept in one place so handlers and tests reference
// the exact wording.
const (
	MsgIngredientAdded         = "ingredient added"
	MsgIngredientsNotFound     = "ingredients not found"
	MsgIngredientNotFound      = "ingredient with this name not found"
	MsgIngredientAlreadyExists = "ingredient with this name already exists"
	MsgIngredientIDNotFound    = "ingredient with this ID not found"
	MsgIngredientDeleted       = "ingredient deleted"
	MsgIngredientStillUsed     = "ingredient is still used by a recipe and cannot be deleted"

	MsgRecipeAdded         = "recipe added"
	MsgRecipesNotFound     = "recipes not found"
	MsgRecipeNotFound      = "recipe with this name not found"
	MsgRecipeAlreadyExists = "recipe with this name already exists"
	MsgRecipeIDNotFound    = "recipe with this ID not found"
	MsgRecipeDeleted       = "recipe deleted"
	MsgRecipeStillUsed     = "recipe is still used by a drink and cannot be deleted"

	MsgDrinkAdded         = "drink added"
	MsgDrinksNotFound     = "drinks not found"
	MsgDrinkNotFound      = "drink with this name not found"
	MsgDrinkAlreadyExists = "drink with this name already exists"
	MsgDrinkIDNotFound    = "drink with this ID not found"
	MsgDrinkDeleted       = "drink deleted"
	MsgDrinkStillOrdered  = "drink is still referenced by an order and cannot be deleted"

	MsgPopularDrinkNotFound = "most popular drink not found"
	MsgNotEnoughIngredients = "not enough ingredients to make the drink"
	MsgWaitUntilReady       = "the drink is being prepared, please wait 2 minutes..."

	MsgOrdersNotFound     = "orders not found"
	MsgOrderIDNotFound    = "order with this ID not found"
	MsgOnlyOneActiveOrder = "there can be only one active order"
	MsgOrderDeleted       = "order deleted"
)
