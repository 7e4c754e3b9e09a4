// Package httpapi is the JSON surface over the catalog, cart and checkout
// services. It carries no business rules: handlers decode, delegate and map
// domain errors to status codes.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/dwikikusuma/marketplace/internal/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(h *Handler, verifier auth.Verifier, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(log))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Get("/products", h.ListProducts)
	r.Get("/products/{id}", h.GetProduct)

	r.Group(func(r chi.Router) {
		r.Use(RequireAuth(verifier))

		r.Post("/carts", h.CreateCart)
		r.Get("/carts/{id}", h.GetCart)
		r.Post("/carts/{id}/items", h.AddItem)
		r.Post("/carts/{id}/checkout", h.Checkout)
	})

	return r
}
