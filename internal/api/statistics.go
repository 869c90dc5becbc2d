package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ArturPronin/coffeeMachineService/internal/db"
	"github.com/ArturPronin/coffeeMachineService/internal/service"
)

func handlePopularDrink(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		drink, err := svc.MostPopularDrink(r.Context())
		if err != nil {
			serviceError(w, err)
			return
		}
		jsonOK(w, drink)
	}
}

func handleListOrders(svc *service.Service) http.HandlerFunc {
	return listOrders(svc.ListOrders)
}

func handleOrdersForToday(svc *service.Service) http.HandlerFunc {
	return listOrders(svc.OrdersForToday)
}

func handleOrdersForWeek(svc *service.Service) http.HandlerFunc {
	return listOrders(svc.OrdersForCurrentWeek)
}

// listOrders shares the empty-means-404 translation across the order
// listing endpoints.
func listOrders(query func(context.Context) ([]db.OrderWithDrink, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := query(r.Context())
		if err != nil {
			serviceError(w, err)
			return
		}
		if len(items) == 0 {
			jsonError(w, service.MsgOrdersNotFound, http.StatusNotFound)
			return
		}
		jsonOK(w, items)
	}
}

type periodRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

const dateLayout = "2006-01-02"

func handleOrdersForPeriod(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req periodRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, msgBadBody, http.StatusBadRequest)
			return
		}
		if req.StartDate == "" || req.EndDate == "" {
			jsonError(w, msgParamMissing, http.StatusBadRequest)
			return
		}
		start, err := time.ParseInLocation(dateLayout, req.StartDate, time.Local)
		if err != nil {
			jsonError(w, msgBadDate, http.StatusBadRequest)
			return
		}
		end, err := time.ParseInLocation(dateLayout, req.EndDate, time.Local)
		if err != nil {
			jsonError(w, msgBadDate, http.StatusBadRequest)
			return
		}
		items, err := svc.OrdersForPeriod(r.Context(), start, end)
		if err != nil {
			serviceError(w, err)
			return
		}
		if len(items) == 0 {
			jsonError(w, service.MsgOrdersNotFound, http.StatusNotFound)
			return
		}
		jsonOK(w, items)
	}
}

func handleDeleteOrder(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "orderId"))
		if err != nil {
			jsonError(w, msgBadUUID, http.StatusBadRequest)
			return
		}
		if err := svc.DeleteOrder(r.Context(), id); err != nil {
			serviceError(w, err)
			return
		}
		jsonMessage(w, http.StatusOK, service.MsgOrderDeleted)
	}
}
