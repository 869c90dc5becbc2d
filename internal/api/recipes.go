package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ArturPronin/coffeeMachineService/internal/service"
)

type recipeIngredientRequest struct {
	IngredientName string `json:"ingredient_name"`
	Quantity       *int   `json:"quantity"`
}

type addRecipeRequest struct {
	Name        string                    `json:"recipe_name"`
	Ingredients []recipeIngredientRequest `json:"recipe_ingredients"`
}

func handleAddRecipe(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addRecipeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, msgBadBody, http.StatusBadRequest)
			return
		}
		if req.Name == "" {
			jsonError(w, msgParamMissing, http.StatusBadRequest)
			return
		}
		lines := make([]service.RecipeLine, 0, len(req.Ingredients))
		for _, line := range req.Ingredients {
			if line.IngredientName == "" || line.Quantity == nil {
				jsonError(w, msgParamMissing, http.StatusBadRequest)
				return
			}
			if *line.Quantity < 0 {
				jsonError(w, msgMustBeGTEZero, http.StatusBadRequest)
				return
			}
			lines = append(lines, service.RecipeLine{IngredientName: line.IngredientName, Quantity: *line.Quantity})
		}
		if err := svc.AddRecipe(r.Context(), req.Name, lines); err != nil {
			serviceError(w, err)
			return
		}
		jsonMessage(w, http.StatusCreated, service.MsgRecipeAdded)
	}
}

func handleListRecipes(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListRecipes(r.Context())
		if err != nil {
			serviceError(w, err)
			return
		}
		if len(items) == 0 {
			jsonError(w, service.MsgRecipesNotFound, http.StatusNotFound)
			return
		}
		jsonOK(w, items)
	}
}

func handleDeleteRecipe(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "recipeId"))
		if err != nil {
			jsonError(w, msgBadUUID, http.StatusBadRequest)
			return
		}
		if err := svc.DeleteRecipe(r.Context(), id); err != nil {
			serviceError(w, err)
			return
		}
		jsonMessage(w, http.StatusOK, service.MsgRecipeDeleted)
	}
}
