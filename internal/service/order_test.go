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

func setupDrink(t *testing.T, svc *Service, store *db.MemStore) db.Drink {
	t.Helper()
	setupRaf(t, svc)
	drink, err := store.GetDrinkByName(context.Background(), "Raf")
	require.NoError(t, err)
	return drink
}

// seedOrder inserts an order directly, bypassing the single-active-order
// rule, to build states the service itself would refuse to create.
func seedOrder(t *testing.T, store *db.MemStore, drinkID uuid.UUID, status OrderStatus, createdAt time.Time) db.Order {
	t.Helper()
	order, err := store.CreateOrder(context.Background(), db.CreateOrderParams{
		DrinkID:   drinkID,
		Status:    string(status),
		CreatedAt: createdAt,
	})
	require.NoError(t, err)
	return order
}

func TestCreateOrder_SecondRejected(t *testing.T) {
	t.Parallel()
	store, svc := newTestService(t)
	ctx := context.Background()
	drink := setupDrink(t, svc, store)

	first, err := svc.CreateOrder(ctx, drink.ID)
	require.NoError(t, err)

	order, err := store.GetOrder(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, string(StatusCreated), order.Status)

	_, err = svc.CreateOrder(ctx, drink.ID)
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.EqualError(t, err, MsgOnlyOneActiveOrder)
}

func TestCreateOrder_AllowedAfterTerminalState(t *testing.T) {
	t.Parallel()
	store, svc := newTestService(t)
	ctx := context.Background()
	drink := setupDrink(t, svc, store)

	first, err := svc.CreateOrder(ctx, drink.ID)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateOrderStatus(ctx, first, StatusRefused))

	_, err = svc.CreateOrder(ctx, drink.ID)
	require.NoError(t, err)
}

func TestUpdateOrderStatus_NotFound(t *testing.T) {
	t.Parallel()
	_, svc := newTestService(t)

	err := svc.UpdateOrderStatus(context.Background(), uuid.New(), StatusCompleted)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.EqualError(t, err, MsgOrderIDNotFound)
}

func TestUpdateOrderStatus_ProgressRecheck(t *testing.T) {
	t.Parallel()
	store, svc := newTestService(t)
	ctx := context.Background()
	drink := setupDrink(t, svc, store)

	busy := seedOrder(t, store, drink.ID, StatusProgress, time.Now())
	waiting := seedOrder(t, store, drink.ID, StatusCreated, time.Now())

	err := svc.UpdateOrderStatus(ctx, waiting.ID, StatusProgress)
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))

	// once the busy order finishes, the transition goes through
	require.NoError(t, svc.UpdateOrderStatus(ctx, busy.ID, StatusCompleted))
	require.NoError(t, svc.UpdateOrderStatus(ctx, waiting.ID, StatusProgress))
}

func TestScheduleCompletion_MissingOrderIsSwallowed(t *testing.T) {
	t.Parallel()
	store := db.NewMemStore()
	svc := New(store, 10*time.Millisecond)

	// never crashes or propagates: the order does not exist
	svc.ScheduleCompletion(uuid.New())
	time.Sleep(50 * time.Millisecond)
}

func TestOrdersForToday(t *testing.T) {
	t.Parallel()
	store, svc := newTestService(t)
	ctx := context.Background()
	drink := setupDrink(t, svc, store)

	seedOrder(t, store, drink.ID, StatusCompleted, time.Now().Add(-48*time.Hour))
	today := seedOrder(t, store, drink.ID, StatusCompleted, time.Now().Add(-time.Minute))

	orders, err := svc.OrdersForToday(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, today.ID, orders[0].ID)
}

func TestOrdersForCurrentWeek(t *testing.T) {
	t.Parallel()
	store, svc := newTestService(t)
	ctx := context.Background()
	drink := setupDrink(t, svc, store)

	seedOrder(t, store, drink.ID, StatusCompleted, time.Now().AddDate(0, 0, -8))
	thisWeek := seedOrder(t, store, drink.ID, StatusCompleted, time.Now().Add(-time.Minute))

	orders, err := svc.OrdersForCurrentWeek(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, thisWeek.ID, orders[0].ID)
}

func TestOrdersForPeriod_EndDayInclusive(t *testing.T) {
	t.Parallel()
	store, svc := newTestService(t)
	ctx := context.Background()
	drink := setupDrink(t, svc, store)

	endDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	inside := seedOrder(t, store, drink.ID, StatusCompleted, endDate.Add(12*time.Hour))
	seedOrder(t, store, drink.ID, StatusCompleted, endDate.AddDate(0, 0, 1).Add(time.Hour))

	orders, err := svc.OrdersForPeriod(ctx, endDate.AddDate(0, 0, -7), endDate)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, inside.ID, orders[0].ID)
}

func TestListOrders_Ordering(t *testing.T) {
	t.Parallel()
	store, svc := newTestService(t)
	ctx := context.Background()
	drink := setupDrink(t, svc, store)

	second := seedOrder(t, store, drink.ID, StatusCompleted, time.Now())
	first := seedOrder(t, store, drink.ID, StatusCompleted, time.Now().Add(-time.Hour))

	orders, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)
}

func TestDeleteOrder(t *testing.T) {
	t.Parallel()
	store, svc := newTestService(t)
	ctx := context.Background()
	drink := setupDrink(t, svc, store)

	order := seedOrder(t, store, drink.ID, StatusCompleted, time.Now())
	require.NoError(t, svc.DeleteOrder(ctx, order.ID))

	err := svc.DeleteOrder(ctx, order.ID)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.EqualError(t, err, MsgOrderIDNotFound)
}
