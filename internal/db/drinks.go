package db

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

const createDrink = `
INSERT INTO drinks (drink_name, recipe_id)
VALUES ($1, $2)
RETURNING drink_id, drink_name, recipe_id, orders_count
`

func (q *Queries) CreateDrink(ctx context.Context, arg CreateDrinkParams) (Drink, error) {
	row := q.db.QueryRowContext(ctx, createDrink, arg.Name, arg.RecipeID)
	var d Drink
	err := row.Scan(&d.ID, &d.Name, &d.RecipeID, &d.OrdersCount)
	return d, err
}

const getDrink = `
SELECT drink_id, drink_name, recipe_id, orders_count
FROM drinks
WHERE drink_id = $1
`

func (q *Queries) GetDrink(ctx context.Context, id uuid.UUID) (Drink, error) {
	row := q.db.QueryRowContext(ctx, getDrink, id)
	var d Drink
	err := row.Scan(&d.ID, &d.Name, &d.RecipeID, &d.OrdersCount)
	return d, err
}

const getDrinkByName = `
SELECT drink_id, drink_name, recipe_id, orders_count
FROM drinks
WHERE drink_name = $1
`

func (q *Queries) GetDrinkByName(ctx context.Context, name string) (Drink, error) {
	row := q.db.QueryRowContext(ctx, getDrinkByName, name)
	var d Drink
	err := row.Scan(&d.ID, &d.Name, &d.RecipeID, &d.OrdersCount)
	return d, err
}

const listDrinks = `
SELECT drink_id, drink_name, recipe_id, orders_count
FROM drinks
ORDER BY drink_name
`

func (q *Queries) ListDrinks(ctx context.Context) ([]Drink, error) {
	rows, err := q.db.QueryContext(ctx, listDrinks)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Drink
	for rows.Next() {
		var d Drink
		if err := rows.Scan(&d.ID, &d.Name, &d.RecipeID, &d.OrdersCount); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

const deleteDrink = `
DELETE FROM drinks WHERE drink_id = $1
`

func (q *Queries) DeleteDrink(ctx context.Context, id uuid.UUID) error {
	res, err := q.db.ExecContext(ctx, deleteDrink, id)
	if err != nil {
		return translateFK(err)
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

const incrementDrinkOrders = `
UPDATE drinks SET orders_count = orders_count + 1 WHERE drink_id = $1
`

func (q *Queries) IncrementDrinkOrders(ctx context.Context, id uuid.UUID) error {
	res, err := q.db.ExecContext(ctx, incrementDrinkOrders, id)
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

const getMostPopularDrink = `
SELECT drink_id, drink_name, recipe_id, orders_count
FROM drinks
WHERE orders_count > 0
ORDER BY orders_count DESC
LIMIT 1
`

func (q *Queries) GetMostPopularDrink(ctx context.Context) (Drink, error) {
	row := q.db.QueryRowContext(ctx, getMostPopularDrink)
	var d Drink
	err := row.Scan(&d.ID, &d.Name, &d.RecipeID, &d.OrdersCount)
	return d, err
}
