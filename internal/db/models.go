package db

import (
	"time"

	"github.com/google/uuid"
)

type Ingredient struct {
	ID       uuid.UUID `json:"ingredient_id"`
	Name     string    `json:"ingredient_name"`
	Quantity int       `json:"quantity"`
	Unit     string    `json:"unit"`
}

type Recipe struct {
	ID   uuid.UUID `json:"recipe_id"`
	Name string    `json:"recipe_name"`
}

// RecipeIngredient is one requirement line of a recipe, joined with the
// ingredient's name for display.
type RecipeIngredient struct {
	RecipeID       uuid.UUID `json:"recipe_id"`
	IngredientID   uuid.UUID `json:"ingredient_id"`
	IngredientName string    `json:"ingredient_name"`
	Quantity       int       `json:"quantity"`
}

type Drink struct {
	ID          uuid.UUID `json:"drink_id"`
	Name        string    `json:"drink_name"`
	RecipeID    uuid.UUID `json:"recipe_id"`
	OrdersCount int       `json:"orders_count"`
}

type Order struct {
	ID        uuid.UUID `json:"order_id"`
	DrinkID   uuid.UUID `json:"drink_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderWithDrink joins an order with its drink's name.
type OrderWithDrink struct {
	Order
	DrinkName string `json:"drink_name"`
}

type CreateIngredientParams struct {
	Name     string
	Quantity int
	Unit     string
}

type SetIngredientQuantityParams struct {
	ID       uuid.UUID
	Quantity int
}

type AddRecipeIngredientParams struct {
	RecipeID     uuid.UUID
	IngredientID uuid.UUID
	Quantity     int
}

type CreateDrinkParams struct {
	Name     string
	RecipeID uuid.UUID
}

type CreateOrderParams struct {
	DrinkID   uuid.UUID
	Status    string
	CreatedAt time.Time
}

type UpdateOrderStatusParams struct {
	ID     uuid.UUID
	Status string
}

type ListOrdersBetweenParams struct {
	Start time.Time
	End   time.Time
}
