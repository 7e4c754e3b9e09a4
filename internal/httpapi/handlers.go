package httpapi

import (
	"encoding/json"
	"net/http"

	cartapp "github.com/dwikikusuma/marketplace/internal/cart/app"
	catalogapp "github.com/dwikikusuma/marketplace/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/marketplace/internal/catalog/domain"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	catalog *catalogapp.Service
	carts   *cartapp.Service
}

func NewHandler(catalog *catalogapp.Service, carts *cartapp.Service) *Handler {
	return &Handler{
		catalog: catalog,
		carts:   carts,
	}
}

type moneyDTO struct {
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

type productDTO struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Price          moneyDTO `json:"price"`
	InventoryCount int64    `json:"inventory_count"`
}

type cartItemDTO struct {
	Product  productDTO `json:"product"`
	Quantity int64      `json:"quantity"`
}

type cartDTO struct {
	ID         string        `json:"id"`
	Items      []cartItemDTO `json:"items"`
	Complete   bool          `json:"complete"`
	TotalPrice moneyDTO      `json:"total_price"`
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	inStock := r.URL.Query().Get("in_stock") == "true"

	products, err := h.catalog.ListProducts(r.Context(), inStock)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]productDTO, 0, len(products))
	for _, p := range products {
		out = append(out, toProductDTO(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.catalog.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductDTO(p))
}

func (h *Handler) CreateCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.carts.Open(r.Context(), UserID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCartDTO(view))
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.carts.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartDTO(view))
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	view, err := h.carts.AddItem(r.Context(), chi.URLParam(r, "id"), UserID(r.Context()), req.ProductID, req.Quantity)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartDTO(view))
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	if err := h.carts.Checkout(r.Context(), chi.URLParam(r, "id"), UserID(r.Context())); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "success"})
}

func toProductDTO(p catalogdomain.Product) productDTO {
	return productDTO{
		ID:    p.ID,
		Title: p.Title,
		Price: moneyDTO{
			Currency: p.Price.Currency,
			Amount:   p.Price.Amount,
		},
		InventoryCount: p.Stock,
	}
}

func toCartDTO(view cartapp.CartView) cartDTO {
	items := make([]cartItemDTO, 0, len(view.Items))
	for _, it := range view.Items {
		items = append(items, cartItemDTO{
			Product: productDTO{
				ID:             it.Product.ID,
				Title:          it.Product.Title,
				Price:          moneyDTO{Currency: it.Product.Currency, Amount: it.Product.Amount},
				InventoryCount: it.Product.Stock,
			},
			Quantity: it.Quantity,
		})
	}

	return cartDTO{
		ID:         view.ID,
		Items:      items,
		Complete:   view.Complete,
		TotalPrice: moneyDTO{Currency: view.Total.Currency, Amount: view.Total.Amount},
	}
}
