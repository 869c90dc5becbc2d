package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/ArturPronin/coffeeMachineService/internal/db"
	"github.com/google/uuid"
)

// CreateOrder opens a new order in the created state. At most one order
// may be active (created or progress) at a time; the check and the insert
// run in one transaction under the order advisory lock so two concurrent
// requests cannot both pass the check.
func (s *Service) CreateOrder(ctx context.Context, drinkID uuid.UUID) (uuid.UUID, error) {
	var orderID uuid.UUID
	err := s.store.ExecTx(ctx, func(q db.Querier) error {
		if err := q.LockOrders(ctx); err != nil {
			return err
		}
		active, err := q.HasOrderWithStatus(ctx, activeStatuses)
		if err != nil {
			return err
		}
		if active {
			return Conflict(MsgOnlyOneActiveOrder)
		}
		order, err := q.CreateOrder(ctx, db.CreateOrderParams{
			DrinkID:   drinkID,
			Status:    string(StatusCreated),
			CreatedAt: time.Now(),
		})
		if err != nil {
			return err
		}
		orderID = order.ID
		return nil
	})
	return orderID, err
}

// UpdateOrderStatus moves an order to the given state. A move to progress
// re-checks that no other order is already in progress; creation and this
// transition happen at different points of the workflow, so the check has
// to be made again here.
func (s *Service) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status OrderStatus) error {
	return s.store.ExecTx(ctx, func(q db.Querier) error {
		order, err := q.GetOrder(ctx, orderID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return NotFound(MsgOrderIDNotFound)
			}
			return err
		}
		if status == StatusProgress && order.Status != string(StatusProgress) {
			inProgress, err := q.HasOrderWithStatus(ctx, []string{string(StatusProgress)})
			if err != nil {
				return err
			}
			if inProgress {
				return Conflict(MsgOnlyOneActiveOrder)
			}
		}
		if err := q.UpdateOrderStatus(ctx, db.UpdateOrderStatusParams{ID: orderID, Status: string(status)}); err != nil {
			return err
		}
		slog.Info("order status updated", "order_id", orderID, "from", order.Status, "to", status)
		return nil
	})
}

// ScheduleCompletion arranges for the order to be marked completed once
// the brew delay elapses. The transition is fire-and-forget: by then the
// original request has long been answered, so any failure is logged and
// dropped.
func (s *Service) ScheduleCompletion(orderID uuid.UUID) {
	slog.Info("completion scheduled", "order_id", orderID, "delay", s.brewDelay)
	time.AfterFunc(s.brewDelay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.UpdateOrderStatus(ctx, orderID, StatusCompleted); err != nil {
			slog.Error("deferred completion failed", "order_id", orderID, "error", err)
		}
	})
}

// ListOrders returns every order.
func (s *Service) ListOrders(ctx context.Context) ([]db.OrderWithDrink, error) {
	return s.store.ListOrders(ctx)
}

// OrdersForToday returns orders created since midnight.
func (s *Service) OrdersForToday(ctx context.Context) ([]db.OrderWithDrink, error) {
	now := time.Now()
	return s.ordersBetween(ctx, startOfDay(now), now)
}

// OrdersForCurrentWeek returns orders created since the most recent
// Monday midnight.
func (s *Service) OrdersForCurrentWeek(ctx context.Context) ([]db.OrderWithDrink, error) {
	now := time.Now()
	return s.ordersBetween(ctx, startOfWeek(now), now)
}

// OrdersForPeriod returns orders created between startDate's midnight and
// the end of endDate (23:59:59), both days included.
func (s *Service) OrdersForPeriod(ctx context.Context, startDate, endDate time.Time) ([]db.OrderWithDrink, error) {
	start := startOfDay(startDate)
	end := startOfDay(endDate).Add(24*time.Hour - time.Second)
	return s.ordersBetween(ctx, start, end)
}

// DeleteOrder removes an order. Nothing references orders, so the delete
// is unconditional once the order is found.
func (s *Service) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	err := s.store.DeleteOrder(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return NotFound(MsgOrderIDNotFound)
	}
	return err
}

func (s *Service) ordersBetween(ctx context.Context, start, end time.Time) ([]db.OrderWithDrink, error) {
	slog.Info("searching orders", "start", start, "end", end)
	return s.store.ListOrdersBetween(ctx, db.ListOrdersBetweenParams{Start: start, End: end})
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func startOfWeek(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	return startOfDay(t.AddDate(0, 0, -daysSinceMonday))
}
