package db

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const createOrder = `
INSERT INTO orders (drink_id, status, created_at)
VALUES ($1, $2, $3)
RETURNING order_id, drink_id, status, created_at
`

func (q *Queries) CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error) {
	row := q.db.QueryRowContext(ctx, createOrder, arg.DrinkID, arg.Status, arg.CreatedAt)
	var o Order
	err := row.Scan(&o.ID, &o.DrinkID, &o.Status, &o.CreatedAt)
	return o, err
}

const getOrder = `
SELECT order_id, drink_id, status, created_at
FROM orders
WHERE order_id = $1
`

func (q *Queries) GetOrder(ctx context.Context, id uuid.UUID) (Order, error) {
	row := q.db.QueryRowContext(ctx, getOrder, id)
	var o Order
	err := row.Scan(&o.ID, &o.DrinkID, &o.Status, &o.CreatedAt)
	return o, err
}

const updateOrderStatus = `
UPDATE orders SET status = $2 WHERE order_id = $1
`

func (q *Queries) UpdateOrderStatus(ctx context.Context, arg UpdateOrderStatusParams) error {
	res, err := q.db.ExecContext(ctx, updateOrderStatus, arg.ID, arg.Status)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

const deleteOrder = `
DELETE FROM orders WHERE order_id = $1
`

func (q *Queries) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	res, err := q.db.ExecContext(ctx, deleteOrder, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

const listOrders = `
SELECT o.order_id, o.drink_id, o.status, o.created_at, d.drink_name
FROM orders o
JOIN drinks d ON d.drink_id = o.drink_id
ORDER BY o.created_at
`

func (q *Queries) ListOrders(ctx context.Context) ([]OrderWithDrink, error) {
	rows, err := q.db.QueryContext(ctx, listOrders)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrdersWithDrink(rows)
}

const listOrdersBetween = `
SELECT o.order_id, o.drink_id, o.status, o.created_at, d.drink_name
FROM orders o
JOIN drinks d ON d.drink_id = o.drink_id
WHERE o.created_at >= $1 AND o.created_at <= $2
ORDER BY o.created_at
`

func (q *Queries) ListOrdersBetween(ctx context.Context, arg ListOrdersBetweenParams) ([]OrderWithDrink, error) {
	rows, err := q.db.QueryContext(ctx, listOrdersBetween, arg.Start, arg.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrdersWithDrink(rows)
}

func scanOrdersWithDrink(rows *sql.Rows) ([]OrderWithDrink, error) {
	var items []OrderWithDrink
	for rows.Next() {
		var o OrderWithDrink
		if err := rows.Scan(&o.ID, &o.DrinkID, &o.Status, &o.CreatedAt, &o.DrinkName); err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, rows.Err()
}

const hasOrderWithStatus = `
SELECT EXISTS (SELECT 1 FROM orders WHERE status = ANY($1))
`

func (q *Queries) HasOrderWithStatus(ctx context.Context, statuses []string) (bool, error) {
	row := q.db.QueryRowContext(ctx, hasOrderWithStatus, pq.Array(statuses))
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

// orderLockKey serializes the active-order check-and-insert across
// concurrent transactions.
const orderLockKey = 430217

const lockOrders = `
SELECT pg_advisory_xact_lock($1)
`

func (q *Queries) LockOrders(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, lockOrders, orderLockKey)
	return err
}
