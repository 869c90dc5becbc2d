package db

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

const createRecipe = `
INSERT INTO recipes (recipe_name)
VALUES ($1)
RETURNING recipe_id, recipe_name
`

func (q *Queries) CreateRecipe(ctx context.Context, name string) (Recipe, error) {
	row := q.db.QueryRowContext(ctx, createRecipe, name)
	var r Recipe
	err := row.Scan(&r.ID, &r.Name)
	return r, err
}

const getRecipe = `
SELECT recipe_id, recipe_name FROM recipes WHERE recipe_id = $1
`

func (q *Queries) GetRecipe(ctx context.Context, id uuid.UUID) (Recipe, error) {
	row := q.db.QueryRowContext(ctx, getRecipe, id)
	var r Recipe
	err := row.Scan(&r.ID, &r.Name)
	return r, err
}

const getRecipeByName = `
SELECT recipe_id, recipe_name FROM recipes WHERE recipe_name = $1
`

func (q *Queries) GetRecipeByName(ctx context.Context, name string) (Recipe, error) {
	row := q.db.QueryRowContext(ctx, getRecipeByName, name)
	var r Recipe
	err := row.Scan(&r.ID, &r.Name)
	return r, err
}

const listRecipes = `
SELECT recipe_id, recipe_name FROM recipes ORDER BY recipe_name
`

func (q *Queries) ListRecipes(ctx context.Context) ([]Recipe, error) {
	rows, err := q.db.QueryContext(ctx, listRecipes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Recipe
	for rows.Next() {
		var r Recipe
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const deleteRecipe = `
DELETE FROM recipes WHERE recipe_id = $1
`

func (q *Queries) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	res, err := q.db.ExecContext(ctx, deleteRecipe, id)
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

const addRecipeIngredient = `
INSERT INTO recipe_ingredients (recipe_id, ingredient_id, quantity)
VALUES ($1, $2, $3)
`

func (q *Queries) AddRecipeIngredient(ctx context.Context, arg AddRecipeIngredientParams) error {
	_, err := q.db.ExecContext(ctx, addRecipeIngredient, arg.RecipeID, arg.IngredientID, arg.Quantity)
	return err
}

const listRecipeIngredients = `
SELECT ri.recipe_id, ri.ingredient_id, i.ingredient_name, ri.quantity
FROM recipe_ingredients ri
JOIN ingredients i ON i.ingredient_id = ri.ingredient_id
WHERE ri.recipe_id = $1
ORDER BY i.ingredient_name
`

func (q *Queries) ListRecipeIngredients(ctx context.Context, recipeID uuid.UUID) ([]RecipeIngredient, error) {
	rows, err := q.db.QueryContext(ctx, listRecipeIngredients, recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []RecipeIngredient
	for rows.Next() {
		var ri RecipeIngredient
		if err := rows.Scan(&ri.RecipeID, &ri.IngredientID, &ri.IngredientName, &ri.Quantity); err != nil {
			return nil, err
		}
		items = append(items, ri)
	}
	return items, rows.Err()
}
