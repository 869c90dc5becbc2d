// Package db implements the persistence layer for the coffee machine
// service: a Postgres-backed Store, the Querier interface the service
// layer depends on, and an in-memory MemStore used by unit tests.
package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

//go:embed migrations/*.sql
var MigrationsFS embed.FS

// ErrForeignKey reports a delete rejected because another row still
// references the target.
var ErrForeignKey = errors.New("row is still referenced")

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

// Querier is the full query surface of the store. Absent rows are
// reported as sql.ErrNoRows regardless of backend.
type Querier interface {
	CreateIngredient(ctx context.Context, arg CreateIngredientParams) (Ingredient, error)
	GetIngredient(ctx context.Context, id uuid.UUID) (Ingredient, error)
	GetIngredientByName(ctx context.Context, name string) (Ingredient, error)
	ListIngredients(ctx context.Context) ([]Ingredient, error)
	SetIngredientQuantity(ctx context.Context, arg SetIngredientQuantityParams) (Ingredient, error)
	DeleteIngredient(ctx context.Context, id uuid.UUID) error

	CreateRecipe(ctx context.Context, name string) (Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (Recipe, error)
	GetRecipeByName(ctx context.Context, name string) (Recipe, error)
	ListRecipes(ctx context.Context) ([]Recipe, error)
	DeleteRecipe(ctx context.Context, id uuid.UUID) error
	AddRecipeIngredient(ctx context.Context, arg AddRecipeIngredientParams) error
	ListRecipeIngredients(ctx context.Context, recipeID uuid.UUID) ([]RecipeIngredient, error)

	CreateDrink(ctx context.Context, arg CreateDrinkParams) (Drink, error)
	GetDrink(ctx context.Context, id uuid.UUID) (Drink, error)
	GetDrinkByName(ctx context.Context, name string) (Drink, error)
	ListDrinks(ctx context.Context) ([]Drink, error)
	DeleteDrink(ctx context.Context, id uuid.UUID) error
	IncrementDrinkOrders(ctx context.Context, id uuid.UUID) error
	GetMostPopularDrink(ctx context.Context) (Drink, error)

	CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (Order, error)
	UpdateOrderStatus(ctx context.Context, arg UpdateOrderStatusParams) error
	DeleteOrder(ctx context.Context, id uuid.UUID) error
	ListOrders(ctx context.Context) ([]OrderWithDrink, error)
	ListOrdersBetween(ctx context.Context, arg ListOrdersBetweenParams) ([]OrderWithDrink, error)
	HasOrderWithStatus(ctx context.Context, statuses []string) (bool, error)
	LockOrders(ctx context.Context) error
}

// Store is a Querier that can also run a group of queries in one
// transaction.
type Store interface {
	Querier
	ExecTx(ctx context.Context, fn func(Querier) error) error
}

// Queries runs the SQL queries against a DBTX.
type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// SQLStore wraps Queries over a *sql.DB and adds transactions.
type SQLStore struct {
	*Queries
	db *sql.DB
}

func NewStore(sqlDB *sql.DB) *SQLStore {
	return &SQLStore{Queries: New(sqlDB), db: sqlDB}
}

// ExecTx runs fn inside a transaction, rolling back on error.
func (s *SQLStore) ExecTx(ctx context.Context, fn func(Querier) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	if err := fn(New(tx)); err != nil {
		return err
	}
	return tx.Commit()
}

// foreignKeyViolation is the Postgres error class for FK failures.
const foreignKeyViolation = "23503"

func translateFK(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
		return ErrForeignKey
	}
	return err
}
