package adapter

import (
	"context"
	"errors"

	cartapp "github.com/dwikikusuma/marketplace/internal/cart/app"
	invapp "github.com/dwikikusuma/marketplace/internal/inventory/app"
)

type LedgerStockReader struct {
	svc *invapp.Service
}

func NewLedgerStockReader(svc *invapp.Service) *LedgerStockReader {
	return &LedgerStockReader{svc: svc}
}

func (r *LedgerStockReader) Available(ctx context.Context, productID string) (int64, error) {
	n, err := r.svc.GetAvailable(ctx, productID)
	if errors.Is(err, invapp.ErrNotFound) {
		return 0, cartapp.ErrProductNotFound
	}
	return n, err
}
