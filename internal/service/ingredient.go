package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ArturPronin/coffeeMachineService/internal/db"
	"github.com/google/uuid"
)

// AddIngredient registers a new ingredient with its starting stock.
func (s *Service) AddIngredient(ctx context.Context, name string, quantity int, unit string) (db.Ingredient, error) {
	if _, err := s.store.GetIngredientByName(ctx, name); err == nil {
		return db.Ingredient{}, AlreadyExists(MsgIngredientAlreadyExists)
	} else if !errors.Is(err, sql.ErrNoRows) {
		return db.Ingredient{}, err
	}
	ing, err := s.store.CreateIngredient(ctx, db.CreateIngredientParams{
		Name:     name,
		Quantity: quantity,
		Unit:     unit,
	})
	if err != nil {
		return db.Ingredient{}, err
	}
	slog.Info("ingredient added", "name", name, "quantity", quantity, "unit", unit)
	return ing, nil
}

// ListIngredients returns every ingredient; an empty catalog is an empty
// slice, not an error.
func (s *Service) ListIngredients(ctx context.Context) ([]db.Ingredient, error) {
	return s.store.ListIngredients(ctx)
}

// ReplenishIngredient adds addingQuantity to the named ingredient's stock
// and returns the updated row.
func (s *Service) ReplenishIngredient(ctx context.Context, name string, addingQuantity int) (db.Ingredient, error) {
	ing, err := s.store.GetIngredientByName(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return db.Ingredient{}, NotFound(MsgIngredientNotFound)
		}
		return db.Ingredient{}, err
	}
	updated, err := s.store.SetIngredientQuantity(ctx, db.SetIngredientQuantityParams{
		ID:       ing.ID,
		Quantity: ing.Quantity + addingQuantity,
	})
	if err != nil {
		return db.Ingredient{}, err
	}
	slog.Info("ingredient replenished", "name", name, "added", addingQuantity, "quantity", updated.Quantity)
	return updated, nil
}

// DeleteIngredient removes an ingredient unless a recipe still uses it.
func (s *Service) DeleteIngredient(ctx context.Context, id uuid.UUID) error {
	err := s.store.DeleteIngredient(ctx, id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return NotFound(MsgIngredientIDNotFound)
	case errors.Is(err, db.ErrForeignKey):
		return Conflict(MsgIngredientStillUsed)
	}
	return err
}

// CheckSufficient reports whether the stock covers every requirement. A
// requirement referencing an ingredient that no longer exists is a data
// error, not an "insufficient" result.
func (s *Service) CheckSufficient(ctx context.Context, requirements []db.RecipeIngredient) (bool, error) {
	for _, req := range requirements {
		ing, err := s.store.GetIngredient(ctx, req.IngredientID)
		if err != nil {
			return false, fmt.Errorf("look up ingredient %s: %w", req.IngredientID, err)
		}
		if ing.Quantity < req.Quantity {
			return false, nil
		}
	}
	return true, nil
}

// Reserve decrements the stock by each requirement's quantity. All
// decrements happen in one transaction so a mid-list failure cannot leave
// stock partially reserved.
func (s *Service) Reserve(ctx context.Context, requirements []db.RecipeIngredient) error {
	return s.store.ExecTx(ctx, func(q db.Querier) error {
		for _, req := range requirements {
			ing, err := q.GetIngredient(ctx, req.IngredientID)
			if err != nil {
				return fmt.Errorf("look up ingredient %s: %w", req.IngredientID, err)
			}
			if _, err := q.SetIngredientQuantity(ctx, db.SetIngredientQuantityParams{
				ID:       ing.ID,
				Quantity: ing.Quantity - req.Quantity,
			}); err != nil {
				return err
			}
			slog.Info("ingredient reserved", "name", ing.Name, "used", req.Quantity, "left", ing.Quantity-req.Quantity)
		}
		return nil
	})
}
