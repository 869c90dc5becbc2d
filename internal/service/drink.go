package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/ArturPronin/coffeeMachineService/internal/db"
	"github.com/google/uuid"
)

// DrinkDetails is a drink together with its recipe's name.
type DrinkDetails struct {
	db.Drink
	RecipeName string `json:"recipe_name"`
}

// AddDrink registers a drink backed by an existing recipe.
func (s *Service) AddDrink(ctx context.Context, drinkName, recipeName string) error {
	if _, err := s.store.GetDrinkByName(ctx, drinkName); err == nil {
		return AlreadyExists(MsgDrinkAlreadyExists)
	} else if !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	recipe, err := s.store.GetRecipeByName(ctx, recipeName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NotFound(MsgRecipeNotFound)
		}
		return err
	}
	if _, err := s.store.CreateDrink(ctx, db.CreateDrinkParams{Name: drinkName, RecipeID: recipe.ID}); err != nil {
		return err
	}
	slog.Info("drink added", "name", drinkName, "recipe", recipeName)
	return nil
}

// ListDrinks returns every drink with its recipe's name.
func (s *Service) ListDrinks(ctx context.Context) ([]DrinkDetails, error) {
	drinks, err := s.store.ListDrinks(ctx)
	if err != nil {
		return nil, err
	}
	return s.withRecipeNames(ctx, drinks)
}

// MostPopularDrink returns the drink with the highest non-zero order
// count.
func (s *Service) MostPopularDrink(ctx context.Context) (DrinkDetails, error) {
	drink, err := s.store.GetMostPopularDrink(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return DrinkDetails{}, NotFound(MsgPopularDrinkNotFound)
		}
		return DrinkDetails{}, err
	}
	details, err := s.withRecipeNames(ctx, []db.Drink{drink})
	if err != nil {
		return DrinkDetails{}, err
	}
	return details[0], nil
}

// DeleteDrink removes a drink unless an order still references it.
func (s *Service) DeleteDrink(ctx context.Context, id uuid.UUID) error {
	err := s.store.DeleteDrink(ctx, id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return NotFound(MsgDrinkIDNotFound)
	case errors.Is(err, db.ErrForeignKey):
		return Conflict(MsgDrinkStillOrdered)
	}
	return err
}

// MakeDrink runs the preparation workflow: open an order, check and
// reserve stock, move the order to progress, and schedule its completion.
// The returned message tells the caller to wait; the completion itself
// happens after the brew delay without further caller action.
func (s *Service) MakeDrink(ctx context.Context, drinkName string) (string, error) {
	drink, err := s.store.GetDrinkByName(ctx, drinkName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", NotFound(MsgDrinkNotFound)
		}
		return "", err
	}
	requirements, err := s.store.ListRecipeIngredients(ctx, drink.RecipeID)
	if err != nil {
		return "", err
	}

	orderID, err := s.CreateOrder(ctx, drink.ID)
	if err != nil {
		return "", err
	}
	slog.Info("order opened", "order_id", orderID, "drink", drinkName)

	sufficient, err := s.CheckSufficient(ctx, requirements)
	if err != nil {
		return "", err
	}
	if !sufficient {
		slog.Warn("not enough ingredients", "order_id", orderID, "drink", drinkName)
		if err := s.UpdateOrderStatus(ctx, orderID, StatusRefused); err != nil {
			return "", err
		}
		return "", Conflict(MsgNotEnoughIngredients)
	}

	if err := s.Reserve(ctx, requirements); err != nil {
		return "", err
	}
	if err := s.UpdateOrderStatus(ctx, orderID, StatusProgress); err != nil {
		return "", err
	}
	s.ScheduleCompletion(orderID)

	if err := s.store.IncrementDrinkOrders(ctx, drink.ID); err != nil {
		return "", err
	}
	slog.Info("drink in progress", "order_id", orderID, "drink", drinkName)
	return MsgWaitUntilReady, nil
}

func (s *Service) withRecipeNames(ctx context.Context, drinks []db.Drink) ([]DrinkDetails, error) {
	details := make([]DrinkDetails, 0, len(drinks))
	for _, d := range drinks {
		recipe, err := s.store.GetRecipe(ctx, d.RecipeID)
		if err != nil {
			return nil, err
		}
		details = append(details, DrinkDetails{Drink: d, RecipeName: recipe.Name})
	}
	return details, nil
}
