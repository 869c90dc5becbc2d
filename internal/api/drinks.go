package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ArturPronin/coffeeMachineService/internal/service"
)

type addDrinkRequest struct {
	DrinkName  string `json:"drink_name"`
	RecipeName string `json:"recipe_name"`
}

func handleAddDrink(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addDrinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, msgBadBody, http.StatusBadRequest)
			return
		}
		if req.DrinkName == "" || req.RecipeName == "" {
			jsonError(w, msgParamMissing, http.StatusBadRequest)
			return
		}
		if err := svc.AddDrink(r.Context(), req.DrinkName, req.RecipeName); err != nil {
			serviceError(w, err)
			return
		}
		jsonMessage(w, http.StatusCreated, service.MsgDrinkAdded)
	}
}

func handleListDrinks(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListDrinks(r.Context())
		if err != nil {
			serviceError(w, err)
			return
		}
		if len(items) == 0 {
			jsonError(w, service.MsgDrinksNotFound, http.StatusNotFound)
			return
		}
		jsonOK(w, items)
	}
}

type makeDrinkRequest struct {
	DrinkName string `json:"drink_name"`
}

func handleMakeDrink(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req makeDrinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, msgBadBody, http.StatusBadRequest)
			return
		}
		if req.DrinkName == "" {
			jsonError(w, msgParamMissing, http.StatusBadRequest)
			return
		}
		msg, err := svc.MakeDrink(r.Context(), req.DrinkName)
		if err != nil {
			serviceError(w, err)
			return
		}
		jsonMessage(w, http.StatusOK, msg)
	}
}

func handleDeleteDrink(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "drinkId"))
		if err != nil {
			jsonError(w, msgBadUUID, http.StatusBadRequest)
			return
		}
		if err := svc.DeleteDrink(r.Context(), id); err != nil {
			serviceError(w, err)
			return
		}
		jsonMessage(w, http.StatusOK, service.MsgDrinkDeleted)
	}
}
