package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRecipe(t *testing.T) {
	t.Parallel()
	_, svc := newTestService(t)
	ctx := context.Background()

	mustAddIngredient(t, svc, "Milk", 100)
	mustAddIngredient(t, svc, "Coffee", 20)

	err := svc.AddRecipe(ctx, "Raf", []RecipeLine{
		{IngredientName: "Milk", Quantity: 50},
		{IngredientName: "Coffee", Quantity: 7},
	})
	require.NoError(t, err)

	recipes, err := svc.ListRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Raf", recipes[0].Name)
	require.Len(t, recipes[0].Ingredients, 2)
	assert.Equal(t, "Coffee", recipes[0].Ingredients[0].IngredientName)
	assert.Equal(t, 7, recipes[0].Ingredients[0].Quantity)
	assert.Equal(t, "Milk", recipes[0].Ingredients[1].IngredientName)
	assert.Equal(t, 50, recipes[0].Ingredients[1].Quantity)
}

func TestAddRecipe_Duplicate(t *testing.T) {
	t.Parallel()
	_, svc := newTestService(t)
	ctx := context.Background()

	mustAddIngredient(t, svc, "Milk", 100)
	require.NoError(t, svc.AddRecipe(ctx, "Raf", []RecipeLine{{IngredientName: "Milk", Quantity: 50}}))

	err := svc.AddRecipe(ctx, "Raf", []RecipeLine{{IngredientName: "Milk", Quantity: 10}})
	require.Error(t, err)
	assert.Equal(t, KindAlreadyExists, KindOf(err))
	assert.EqualError(t, err, MsgRecipeAlreadyExists)
}

func TestAddRecipe_MissingIngredient(t *testing.T) {
	t.Parallel()
	_, svc := newTestService(t)
	ctx := context.Background()

	// Milk was never created
	err := svc.AddRecipe(ctx, "Raf", []RecipeLine{{IngredientName: "Milk", Quantity: 50}})
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.EqualError(t, err, MsgIngredientNotFound)

	// nothing must have been persisted
	recipes, err := svc.ListRecipes(ctx)
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestDeleteRecipe(t *testing.T) {
	t.Parallel()
	_, svc := newTestService(t)
	ctx := context.Background()

	mustAddIngredient(t, svc, "Milk", 100)
	require.NoError(t, svc.AddRecipe(ctx, "Raf", []RecipeLine{{IngredientName: "Milk", Quantity: 50}}))

	recipes, err := svc.ListRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 1)

	require.NoError(t, svc.DeleteRecipe(ctx, recipes[0].ID))

	recipes, err = svc.ListRecipes(ctx)
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestDeleteRecipe_NotFound(t *testing.T) {
	t.Parallel()
	_, svc := newTestService(t)

	err := svc.DeleteRecipe(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.EqualError(t, err, MsgRecipeIDNotFound)
}

func TestDeleteRecipe_ReferencedByDrink(t *testing.T) {
	t.Parallel()
	_, svc := newTestService(t)
	ctx := context.Background()

	mustAddIngredient(t, svc, "Milk", 100)
	require.NoError(t, svc.AddRecipe(ctx, "Raf", []RecipeLine{{IngredientName: "Milk", Quantity: 50}}))
	require.NoError(t, svc.AddDrink(ctx, "Raf", "Raf"))

	recipes, err := svc.ListRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 1)

	err = svc.DeleteRecipe(ctx, recipes[0].ID)
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err), "referenced recipe must be a conflict, not a not-found")
	assert.EqualError(t, err, MsgRecipeStillUsed)
}
