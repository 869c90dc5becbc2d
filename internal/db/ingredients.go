package db

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

const createIngredient = `
INSERT INTO ingredients (ingredient_name, quantity, unit)
VALUES ($1, $2, $3)
RETURNING ingredient_id, ingredient_name, quantity, unit
`

func (q *Queries) CreateIngredient(ctx context.Context, arg CreateIngredientParams) (Ingredient, error) {
	row := q.db.QueryRowContext(ctx, createIngredient, arg.Name, arg.Quantity, arg.Unit)
	var i Ingredient
	err := row.Scan(&i.ID, &i.Name, &i.Quantity, &i.Unit)
	return i, err
}

const getIngredient = `
SELECT ingredient_id, ingredient_name, quantity, unit
FROM ingredients
WHERE ingredient_id = $1
`

func (q *Queries) GetIngredient(ctx context.Context, id uuid.UUID) (Ingredient, error) {
	row := q.db.QueryRowContext(ctx, getIngredient, id)
	var i Ingredient
	err := row.Scan(&i.ID, &i.Name, &i.Quantity, &i.Unit)
	return i, err
}

const getIngredientByName = `
SELECT ingredient_id, ingredient_name, quantity, unit
FROM ingredients
WHERE ingredient_name = $1
`

func (q *Queries) GetIngredientByName(ctx context.Context, name string) (Ingredient, error) {
	row := q.db.QueryRowContext(ctx, getIngredientByName, name)
	var i Ingredient
	err := row.Scan(&i.ID, &i.Name, &i.Quantity, &i.Unit)
	return i, err
}

const listIngredients = `
SELECT ingredient_id, ingredient_name, quantity, unit
FROM ingredients
ORDER BY ingredient_name
`

func (q *Queries) ListIngredients(ctx context.Context) ([]Ingredient, error) {
	rows, err := q.db.QueryContext(ctx, listIngredients)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Ingredient
	for rows.Next() {
		var i Ingredient
		if err := rows.Scan(&i.ID, &i.Name, &i.Quantity, &i.Unit); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const setIngredientQuantity = `
UPDATE ingredients
SET quantity = $2
WHERE ingredient_id = $1
RETURNING ingredient_id, ingredient_name, quantity, unit
`

func (q *Queries) SetIngredientQuantity(ctx context.Context, arg SetIngredientQuantityParams) (Ingredient, error) {
	row := q.db.QueryRowContext(ctx, setIngredientQuantity, arg.ID, arg.Quantity)
	var i Ingredient
	err := row.Scan(&i.ID, &i.Name, &i.Quantity, &i.Unit)
	return i, err
}

const deleteIngredient = `
DELETE FROM ingredients WHERE ingredient_id = $1
`

func (q *Queries) DeleteIngredient(ctx context.Context, id uuid.UUID) error {
	res, err := q.db.ExecContext(ctx, deleteIngredient, id)
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
