package db

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemStore is a mutex-guarded in-memory Store. It backs unit tests so the
// service and handler layers can be exercised without Postgres; absent
// rows are reported as sql.ErrNoRows and referential-integrity violations
// as ErrForeignKey, matching SQLStore.
//
// ExecTx serializes whole workflows under a separate mutex but does not
// roll back: callers are expected to validate before writing, which every
// service path does.
type MemStore struct {
	mu   sync.Mutex
	txMu sync.Mutex

	ingredients map[uuid.UUID]Ingredient
	recipes     map[uuid.UUID]Recipe
	recipeLines map[uuid.UUID][]AddRecipeIngredientParams
	drinks      map[uuid.UUID]Drink
	orders      map[uuid.UUID]Order
}

func NewMemStore() *MemStore {
	return &MemStore{
		ingredients: make(map[uuid.UUID]Ingredient),
		recipes:     make(map[uuid.UUID]Recipe),
		recipeLines: make(map[uuid.UUID][]AddRecipeIngredientParams),
		drinks:      make(map[uuid.UUID]Drink),
		orders:      make(map[uuid.UUID]Order),
	}
}

func (m *MemStore) ExecTx(_ context.Context, fn func(Querier) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return fn(m)
}

// --- ingredients ---

func (m *MemStore) CreateIngredient(_ context.Context, arg CreateIngredientParams) (Ingredient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := Ingredient{ID: uuid.New(), Name: arg.Name, Quantity: arg.Quantity, Unit: arg.Unit}
	m.ingredients[i.ID] = i
	return i, nil
}

func (m *MemStore) GetIngredient(_ context.Context, id uuid.UUID) (Ingredient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.ingredients[id]
	if !ok {
		return Ingredient{}, sql.ErrNoRows
	}
	return i, nil
}

func (m *MemStore) GetIngredientByName(_ context.Context, name string) (Ingredient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, i := range m.ingredients {
		if i.Name == name {
			return i, nil
		}
	}
	return Ingredient{}, sql.ErrNoRows
}

func (m *MemStore) ListIngredients(_ context.Context) ([]Ingredient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := make([]Ingredient, 0, len(m.ingredients))
	for _, i := range m.ingredients {
		items = append(items, i)
	}
	sort.Slice(items, func(a, b int) bool { return items[a].Name < items[b].Name })
	return items, nil
}

func (m *MemStore) SetIngredientQuantity(_ context.Context, arg SetIngredientQuantityParams) (Ingredient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.ingredients[arg.ID]
	if !ok {
		return Ingredient{}, sql.ErrNoRows
	}
	i.Quantity = arg.Quantity
	m.ingredients[arg.ID] = i
	return i, nil
}

func (m *MemStore) DeleteIngredient(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.ingredients[id]; !ok {
		return sql.ErrNoRows
	}
	for _, lines := range m.recipeLines {
		for _, l := range lines {
			if l.IngredientID == id {
				return ErrForeignKey
			}
		}
	}
	delete(m.ingredients, id)
	return nil
}

// --- recipes ---

func (m *MemStore) CreateRecipe(_ context.Context, name string) (Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := Recipe{ID: uuid.New(), Name: name}
	m.recipes[r.ID] = r
	return r, nil
}

func (m *MemStore) GetRecipe(_ context.Context, id uuid.UUID) (Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.recipes[id]
	if !ok {
		return Recipe{}, sql.ErrNoRows
	}
	return r, nil
}

func (m *MemStore) GetRecipeByName(_ context.Context, name string) (Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.recipes {
		if r.Name == name {
			return r, nil
		}
	}
	return Recipe{}, sql.ErrNoRows
}

func (m *MemStore) ListRecipes(_ context.Context) ([]Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := make([]Recipe, 0, len(m.recipes))
	for _, r := range m.recipes {
		items = append(items, r)
	}
	sort.Slice(items, func(a, b int) bool { return items[a].Name < items[b].Name })
	return items, nil
}

func (m *MemStore) DeleteRecipe(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.recipes[id]; !ok {
		return sql.ErrNoRows
	}
	for _, d := range m.drinks {
		if d.RecipeID == id {
			return ErrForeignKey
		}
	}
	delete(m.recipes, id)
	delete(m.recipeLines, id)
	return nil
}

func (m *MemStore) AddRecipeIngredient(_ context.Context, arg AddRecipeIngredientParams) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recipeLines[arg.RecipeID] = append(m.recipeLines[arg.RecipeID], arg)
	return nil
}

func (m *MemStore) ListRecipeIngredients(_ context.Context, recipeID uuid.UUID) ([]RecipeIngredient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var items []RecipeIngredient
	for _, l := range m.recipeLines[recipeID] {
		items = append(items, RecipeIngredient{
			RecipeID:       l.RecipeID,
			IngredientID:   l.IngredientID,
			IngredientName: m.ingredients[l.IngredientID].Name,
			Quantity:       l.Quantity,
		})
	}
	sort.Slice(items, func(a, b int) bool { return items[a].IngredientName < items[b].IngredientName })
	return items, nil
}

// --- drinks ---

func (m *MemStore) CreateDrink(_ context.Context, arg CreateDrinkParams) (Drink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d := Drink{ID: uuid.New(), Name: arg.Name, RecipeID: arg.RecipeID}
	m.drinks[d.ID] = d
	return d, nil
}

func (m *MemStore) GetDrink(_ context.Context, id uuid.UUID) (Drink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.drinks[id]
	if !ok {
		return Drink{}, sql.ErrNoRows
	}
	return d, nil
}

func (m *MemStore) GetDrinkByName(_ context.Context, name string) (Drink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.drinks {
		if d.Name == name {
			return d, nil
		}
	}
	return Drink{}, sql.ErrNoRows
}

func (m *MemStore) ListDrinks(_ context.Context) ([]Drink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := make([]Drink, 0, len(m.drinks))
	for _, d := range m.drinks {
		items = append(items, d)
	}
	sort.Slice(items, func(a, b int) bool { return items[a].Name < items[b].Name })
	return items, nil
}

func (m *MemStore) DeleteDrink(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.drinks[id]; !ok {
		return sql.ErrNoRows
	}
	for _, o := range m.orders {
		if o.DrinkID == id {
			return ErrForeignKey
		}
	}
	delete(m.drinks, id)
	return nil
}

func (m *MemStore) IncrementDrinkOrders(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.drinks[id]
	if !ok {
		return sql.ErrNoRows
	}
	d.OrdersCount++
	m.drinks[id] = d
	return nil
}

func (m *MemStore) GetMostPopularDrink(_ context.Context) (Drink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var best Drink
	for _, d := range m.drinks {
		if d.OrdersCount > best.OrdersCount {
			best = d
		}
	}
	if best.OrdersCount == 0 {
		return Drink{}, sql.ErrNoRows
	}
	return best, nil
}

// --- orders ---

func (m *MemStore) CreateOrder(_ context.Context, arg CreateOrderParams) (Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o := Order{ID: uuid.New(), DrinkID: arg.DrinkID, Status: arg.Status, CreatedAt: arg.CreatedAt}
	m.orders[o.ID] = o
	return o, nil
}

func (m *MemStore) GetOrder(_ context.Context, id uuid.UUID) (Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return Order{}, sql.ErrNoRows
	}
	return o, nil
}

func (m *MemStore) UpdateOrderStatus(_ context.Context, arg UpdateOrderStatusParams) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[arg.ID]
	if !ok {
		return sql.ErrNoRows
	}
	o.Status = arg.Status
	m.orders[arg.ID] = o
	return nil
}

func (m *MemStore) DeleteOrder(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.orders, id)
	return nil
}

func (m *MemStore) ListOrders(_ context.Context) ([]OrderWithDrink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := make([]OrderWithDrink, 0, len(m.orders))
	for _, o := range m.orders {
		items = append(items, OrderWithDrink{Order: o, DrinkName: m.drinks[o.DrinkID].Name})
	}
	sortOrders(items)
	return items, nil
}

func (m *MemStore) ListOrdersBetween(_ context.Context, arg ListOrdersBetweenParams) ([]OrderWithDrink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var items []OrderWithDrink
	for _, o := range m.orders {
		if o.CreatedAt.Before(arg.Start) || o.CreatedAt.After(arg.End) {
			continue
		}
		items = append(items, OrderWithDrink{Order: o, DrinkName: m.drinks[o.DrinkID].Name})
	}
	sortOrders(items)
	return items, nil
}

func (m *MemStore) HasOrderWithStatus(_ context.Context, statuses []string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		for _, s := range statuses {
			if o.Status == s {
				return true, nil
			}
		}
	}
	return false, nil
}

// LockOrders is a no-op: ExecTx's mutex already serializes workflows.
func (m *MemStore) LockOrders(_ context.Context) error {
	return nil
}

func sortOrders(items []OrderWithDrink) {
	sort.Slice(items, func(a, b int) bool { return items[a].CreatedAt.Before(items[b].CreatedAt) })
}
