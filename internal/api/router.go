// Package api wires the coffee machine service into an HTTP surface:
// chi routing, JSON request/response shaping, and input validation.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ArturPronin/coffeeMachineService/internal/logging"
	"github.com/ArturPronin/coffeeMachineService/internal/service"
)

// NewRouter wires up all routes with the provided Service.
func NewRouter(svc *service.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(logging.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handleHealth)

	r.Route("/api/v1/coffee", func(r chi.Router) {
		r.Route("/ingredient", func(r chi.Router) {
			r.Post("/add", handleAddIngredient(svc))
			r.Get("/all", handleListIngredients(svc))
			r.Patch("/updateAmountAvailable", handleReplenishIngredient(svc))
			r.Delete("/delete/{ingredientId}", handleDeleteIngredient(svc))
		})
		r.Route("/recipe", func(r chi.Router) {
			r.Post("/add", handleAddRecipe(svc))
			r.Get("/all", handleListRecipes(svc))
			r.Delete("/delete/{recipeId}", handleDeleteRecipe(svc))
		})
		r.Route("/drink", func(r chi.Router) {
			r.Post("/add", handleAddDrink(svc))
			r.Get("/all", handleListDrinks(svc))
			r.Post("/makeCoffee", handleMakeDrink(svc))
			r.Delete("/delete/{drinkId}", handleDeleteDrink(svc))
		})
	})

	r.Route("/api/v1/statistic", func(r chi.Router) {
		r.Get("/drink/popular", handlePopularDrink(svc))
		r.Get("/order/all", handleListOrders(svc))
		r.Get("/order/today", handleOrdersForToday(svc))
		r.Get("/order/week", handleOrdersForWeek(svc))
		r.Post("/order/period", handleOrdersForPeriod(svc))
		r.Delete("/order/delete/{orderId}", handleDeleteOrder(svc))
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok")) //nolint:errcheck
}
