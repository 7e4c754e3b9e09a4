package adapter

import (
	"context"
	"errors"

	cartapp "github.com/dwikikusuma/marketplace/internal/cart/app"
	catalogapp "github.com/dwikikusuma/marketplace/internal/catalog/app"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetProduct(ctx context.Context, productID string) (cartapp.Product, error) {
	p, err := r.svc.GetProduct(ctx, productID)
	if errors.Is(err, catalogapp.ErrNotFound) || errors.Is(err, catalogapp.ErrInvalidInput) {
		return cartapp.Product{}, cartapp.ErrProductNotFound
	}
	if err != nil {
		return cartapp.Product{}, err
	}

	return cartapp.Product{
		ID:       p.ID,
		Title:    p.Title,
		Currency: p.Price.Currency,
		Amount:   p.Price.Amount,
		Stock:    p.Stock,
	}, nil
}
