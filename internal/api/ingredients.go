package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ArturPronin/coffeeMachineService/internal/service"
)

type addIngredientRequest struct {
	Name     string `json:"ingredient_name"`
	Quantity *int   `json:"amount_available"`
	Unit     string `json:"unit"`
}

func handleAddIngredient(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addIngredientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, msgBadBody, http.StatusBadRequest)
			return
		}
		if req.Name == "" || req.Unit == "" || req.Quantity == nil {
			jsonError(w, msgParamMissing, http.StatusBadRequest)
			return
		}
		if *req.Quantity < 0 {
			jsonError(w, msgMustBeGTEZero, http.StatusBadRequest)
			return
		}
		if _, err := svc.AddIngredient(r.Context(), req.Name, *req.Quantity, req.Unit); err != nil {
			serviceError(w, err)
			return
		}
		jsonMessage(w, http.StatusCreated, service.MsgIngredientAdded)
	}
}

func handleListIngredients(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListIngredients(r.Context())
		if err != nil {
			serviceError(w, err)
			return
		}
		if len(items) == 0 {
			jsonError(w, service.MsgIngredientsNotFound, http.StatusNotFound)
			return
		}
		jsonOK(w, items)
	}
}

type replenishIngredientRequest struct {
	Name           string `json:"ingredient_name"`
	AddingQuantity *int   `json:"adding_quantity"`
}

func handleReplenishIngredient(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req replenishIngredientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, msgBadBody, http.StatusBadRequest)
			return
		}
		if req.Name == "" || req.AddingQuantity == nil {
			jsonError(w, msgParamMissing, http.StatusBadRequest)
			return
		}
		if *req.AddingQuantity <= 0 {
			jsonError(w, msgMustBeGTZero, http.StatusBadRequest)
			return
		}
		ing, err := svc.ReplenishIngredient(r.Context(), req.Name, *req.AddingQuantity)
		if err != nil {
			serviceError(w, err)
			return
		}
		jsonOK(w, ing)
	}
}

func handleDeleteIngredient(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "ingredientId"))
		if err != nil {
			jsonError(w, msgBadUUID, http.StatusBadRequest)
			return
		}
		if err := svc.DeleteIngredient(r.Context(), id); err != nil {
			serviceError(w, err)
			return
		}
		jsonMessage(w, http.StatusOK, service.MsgIngredientDeleted)
	}
}
