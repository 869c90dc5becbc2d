package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/ArturPronin/coffeeMachineService/internal/db"
	"github.com/google/uuid"
)

// RecipeLine is one ingredient requirement in a new recipe.
type RecipeLine struct {
	IngredientName string
	Quantity       int
}

// RecipeDetails is a recipe together with its requirement list.
type RecipeDetails struct {
	db.Recipe
	Ingredients []db.RecipeIngredient `json:"ingredients"`
}

// AddRecipe creates a recipe and its requirement rows in one transaction.
// Every referenced ingredient must already exist; the first missing one
// (in input order) fails the whole call and nothing is persisted.
func (s *Service) AddRecipe(ctx context.Context, name string, lines []RecipeLine) error {
	if _, err := s.store.GetRecipeByName(ctx, name); err == nil {
		return AlreadyExists(MsgRecipeAlreadyExists)
	} else if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	ids := make([]uuid.UUID, len(lines))
	for i, line := range lines {
		ing, err := s.store.GetIngredientByName(ctx, line.IngredientName)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return NotFound(MsgIngredientNotFound)
			}
			return err
		}
		ids[i] = ing.ID
	}

	err := s.store.ExecTx(ctx, func(q db.Querier) error {
		recipe, err := q.CreateRecipe(ctx, name)
		if err != nil {
			return err
		}
		for i, line := range lines {
			if err := q.AddRecipeIngredient(ctx, db.AddRecipeIngredientParams{
				RecipeID:     recipe.ID,
				IngredientID: ids[i],
				Quantity:     line.Quantity,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	slog.Info("recipe added", "name", name, "ingredients", len(lines))
	return nil
}

// ListRecipes returns every recipe with its requirement list.
func (s *Service) ListRecipes(ctx context.Context) ([]RecipeDetails, error) {
	recipes, err := s.store.ListRecipes(ctx)
	if err != nil {
		return nil, err
	}
	details := make([]RecipeDetails, 0, len(recipes))
	for _, r := range recipes {
		lines, err := s.store.ListRecipeIngredients(ctx, r.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, RecipeDetails{Recipe: r, Ingredients: lines})
	}
	return details, nil
}

// DeleteRecipe removes a recipe unless a drink still references it.
func (s *Service) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	err := s.store.DeleteRecipe(ctx, id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return NotFound(MsgRecipeIDNotFound)
	case errors.Is(err, db.ErrForeignKey):
		return Conflict(MsgRecipeStillUsed)
	}
	return err
}
