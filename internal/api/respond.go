package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ArturPronin/coffeeMachineService/internal/service"
)

// Validation messages returned by the adapter before a request reaches
// the service layer.
const (
	msgParamMissing  = "required parameter is missing"
	msgMustBeGTEZero = "value must be greater than or equal to zero"
	msgMustBeGTZero  = "value must be greater than zero"
	msgBadUUID       = "incorrect UUID format"
	msgBadBody       = "invalid request body"
	msgBadDate       = "date must be in YYYY-MM-DD format"
)

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": msg}) //nolint:errcheck
}

func jsonError(w http.ResponseWriter, msg string, status int, errs ...error) {
	if status >= 500 && len(errs) > 0 {
		slog.Error(msg, "status", status, "error", errs[0])
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg}) //nolint:errcheck
}

// serviceError maps a service failure to an HTTP response: NotFound to
// 404, AlreadyExists and Conflict to 409, InvalidInput to 400, anything
// unclassified to a logged 500 with a generic body.
func serviceError(w http.ResponseWriter, err error) {
	switch service.KindOf(err) {
	case service.KindNotFound:
		jsonError(w, err.Error(), http.StatusNotFound)
	case service.KindAlreadyExists, service.KindConflict:
		jsonError(w, err.Error(), http.StatusConflict)
	case service.KindInvalidInput:
		jsonError(w, err.Error(), http.StatusBadRequest)
	default:
		jsonError(w, "internal error", http.StatusInternalServerError, err)
	}
}
