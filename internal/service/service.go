// Package service implements the coffee machine's business logic:
// ingredient stock, the recipe and drink catalogs, and the order
// lifecycle with its single-active-order rule and delayed completion.
package service

import (
	"time"

	"github.com/ArturPronin/coffeeMachineService/internal/db"
)

// DefaultBrewDelay is how long a drink stays in progress before the
// deferred transition marks it completed.
const DefaultBrewDelay = 2 * time.Minute

// Service holds all dependencies for the business layer.
type Service struct {
	store     db.Store
	brewDelay time.Duration
}

// New creates a new Service. A non-positive brewDelay falls back to
// DefaultBrewDelay.
func New(store db.Store, brewDelay time.Duration) *Service {
	if brewDelay <= 0 {
		brewDelay = DefaultBrewDelay
	}
	return &Service{store: store, brewDelay: brewDelay}
}
