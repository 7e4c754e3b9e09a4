package app

import "context"

type LedgerRepo interface {
	GetStock(ctx context.Context, productID string) (int64, error)

	// ReserveAll performs the check-and-decrement as one atomic unit.
	// Implementations must be race free with respect to concurrent
	// ReserveAll calls touching the same products.
	ReserveAll(ctx context.Context, lines []Line) error
}
