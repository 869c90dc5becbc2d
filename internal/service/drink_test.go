package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArturPronin/coffeeMachineService/internal/db"
)

// setupRaf seeds the canonical fixture: Milk 100 ml, recipe "Raf"
// requiring 50 Milk, and a drink "Raf" on that recipe.
func setupRaf(t *testing.T, svc *Service) {
	t.Helper()
	ctx := context.Background()
	mustAddIngredient(t, svc, "Milk", 100)
	require.NoError(t, svc.AddRecipe(ctx, "Raf", []RecipeLine{{IngredientName: "Milk", Quantity: 50}}))
	require.NoError(t, svc.AddDrink(ctx, "Raf", "Raf"))
}

func milkQuantity(t *testing.T, svc *Service) int {
	t.Helper()
	items, err := svc.ListIngredients(context.Background())
	require.NoError(t, err)
	for _, i := range items {
		if i.Name == "Milk" {
			return i.Quantity
		}
	}
	t.Fatal("milk not found")
	return 0
}

func TestAddDrink_Duplicate(t *testing.T) {
	t.Parallel()
	_, svc := newTestService(t)
	setupRaf(t, svc)

	err := svc.AddDrink(context.Background(), "Raf", "Raf")
	require.Error(t, err)
	assert.Equal(t, KindAlreadyExists, KindOf(err))
	assert.EqualError(t, err, MsgDrinkAlreadyExists)
}

func TestAddDrink_RecipeNotFound(t *testing.T) {
	t.Parallel()
	_, svc := newTestService(t)

	err := svc.AddDrink(context.Background(), "Raf", "Raf")
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.EqualError(t, err, MsgRecipeNotFound)
}

func TestListDrinks(t *testing.T) {
	t.Parallel()
	_, svc := newTestService(t)
	setupRaf(t, svc)

	drinks, err := svc.ListDrinks(context.Background())
	require.NoError(t, err)
	require.Len(t, drinks, 1)
	assert.Equal(t, "Raf", drinks[0].Name)
	assert.Equal(t, "Raf", drinks[0].RecipeName)
	assert.Equal(t, 0, drinks[0].OrdersCount)
}

func TestMostPopularDrink_NoneOrdered(t *testing.T) {
	t.Parallel()
	_, svc := newTestService(t)
	setupRaf(t, svc)

	_, err := svc.MostPopularDrink(context.Background())
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.EqualError(t, err, MsgPopularDrinkNotFound)
}

func TestMostPopularDrink(t *testing.T) {
	t.Parallel()
	store, svc := newTestService(t)
	ctx := context.Background()
	setupRaf(t, svc)
	require.NoError(t, svc.AddDrink(ctx, "Latte", "Raf"))

	latte, err := store.GetDrinkByName(ctx, "Latte")
	require.NoError(t, err)
	raf, err := store.GetDrinkByName(ctx, "Raf")
	require.NoError(t, err)
	require.NoError(t, store.IncrementDrinkOrders(ctx, raf.ID))
	require.NoError(t, store.IncrementDrinkOrders(ctx, latte.ID))
	require.NoError(t, store.IncrementDrinkOrders(ctx, latte.ID))

	popular, err := svc.MostPopularDrink(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Latte", popular.Name)
	assert.Equal(t, 2, popular.OrdersCount)
}

func TestDeleteDrink_ReferencedByOrder(t *testing.T) {
	t.Parallel()
	store, svc := newTestService(t)
	ctx := context.Background()
	setupRaf(t, svc)

	drink, err := store.GetDrinkByName(ctx, "Raf")
	require.NoError(t, err)
	_, err = svc.CreateOrder(ctx, drink.ID)
	require.NoError(t, err)

	err = svc.DeleteDrink(ctx, drink.ID)
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.EqualError(t, err, MsgDrinkStillOrdered)
}

func TestMakeDrink(t *testing.T) {
	t.Parallel()
	store, svc := newTestService(t)
	ctx := context.Background()
	setupRaf(t, svc)

	msg, err := svc.MakeDrink(ctx, "Raf")
	require.NoError(t, err)
	assert.Equal(t, MsgWaitUntilReady, msg)

	// stock decremented by exactly the recipe's requirement
	assert.Equal(t, 50, milkQuantity(t, svc))

	orders, err := store.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, string(StatusProgress), orders[0].Status)
	assert.Equal(t, "Raf", orders[0].DrinkName)

	// popularity counter moved
	drink, err := store.GetDrinkByName(ctx, "Raf")
	require.NoError(t, err)
	assert.Equal(t, 1, drink.OrdersCount)
}

func TestMakeDrink_SecondOrderRejected(t *testing.T) {
	t.Parallel()
	_, svc := newTestService(t)
	ctx := context.Background()
	setupRaf(t, svc)

	_, err := svc.MakeDrink(ctx, "Raf")
	require.NoError(t, err)

	_, err = svc.MakeDrink(ctx, "Raf")
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.EqualError(t, err, MsgOnlyOneActiveOrder)

	// the one-active-order rule fires before the stock check
	assert.Equal(t, 50, milkQuantity(t, svc))
}

func TestMakeDrink_NotEnoughIngredients(t *testing.T) {
	t.Parallel()
	store, svc := newTestService(t)
	ctx := context.Background()

	mustAddIngredient(t, svc, "Milk", 30)
	require.NoError(t, svc.AddRecipe(ctx, "Raf", []RecipeLine{{IngredientName: "Milk", Quantity: 50}}))
	require.NoError(t, svc.AddDrink(ctx, "Raf", "Raf"))

	_, err := svc.MakeDrink(ctx, "Raf")
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.EqualError(t, err, MsgNotEnoughIngredients)

	// stock untouched, order retained in refused state for statistics
	assert.Equal(t, 30, milkQuantity(t, svc))
	orders, err := store.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, string(StatusRefused), orders[0].Status)
}

func TestMakeDrink_DrinkNotFound(t *testing.T) {
	t.Parallel()
	_, svc := newTestService(t)

	_, err := svc.MakeDrink(context.Background(), "Raf")
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.EqualError(t, err, MsgDrinkNotFound)
}

func TestMakeDrink_CompletesAfterDelay(t *testing.T) {
	t.Parallel()
	store := db.NewMemStore()
	svc := New(store, 20*time.Millisecond)
	setupRaf(t, svc)
	ctx := context.Background()

	_, err := svc.MakeDrink(ctx, "Raf")
	require.NoError(t, err)

	var orderID uuid.UUID
	orders, err := store.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	orderID = orders[0].ID
	assert.Equal(t, string(StatusProgress), orders[0].Status)

	assert.Eventually(t, func() bool {
		order, err := store.GetOrder(ctx, orderID)
		return err == nil && order.Status == string(StatusCompleted)
	}, 2*time.Second, 10*time.Millisecond, "order should complete without caller action")

	// a completed order no longer blocks new ones
	_, err = svc.MakeDrink(ctx, "Raf")
	require.NoError(t, err)
}
