package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	cartapp "github.com/dwikikusuma/marketplace/internal/cart/app"
	catalogapp "github.com/dwikikusuma/marketplace/internal/catalog/app"
	invapp "github.com/dwikikusuma/marketplace/internal/inventory/app"
)

type errorResponse struct {
	Message string       `json:"message"`
	Detail  *errorDetail `json:"detail,omitempty"`
}

type errorDetail struct {
	Products []string `json:"products"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto the HTTP surface. Anything outside the
// domain taxonomy is logged and reported as a generic 500: storage details
// never leak to the caller.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var oos *invapp.OutOfStockError
	if errors.As(err, &oos) {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Message: "Some products are out of stock",
			Detail:  &errorDetail{Products: oos.ProductIDs},
		})
		return
	}

	switch {
	case errors.Is(err, cartapp.ErrNotFound),
		errors.Is(err, cartapp.ErrProductNotFound),
		errors.Is(err, catalogapp.ErrNotFound),
		errors.Is(err, invapp.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Message: "not found"})
	case errors.Is(err, cartapp.ErrInvalidInput),
		errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, invapp.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request"})
	case errors.Is(err, cartapp.ErrCartClosed):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Cart is already completed"})
	case errors.Is(err, cartapp.ErrEmptyCart):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Empty cart"})
	default:
		slog.ErrorContext(r.Context(), "internal error", slog.Any("err", err), slog.String("path", r.URL.Path))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal error"})
	}
}
