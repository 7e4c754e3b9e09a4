// Package app implements the inventory ledger, the single authority over
// per-product stock counts and their atomic decrement.
package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("product not found")
)

// Line is a (product, quantity) demand against the ledger.
type Line struct {
	ProductID string
	Quantity  int64
}

// OutOfStockError reports which products could not satisfy the requested
// quantities. The reserve that produced it had no side effects.
type OutOfStockError struct {
	ProductIDs []string
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("out of stock: %s", strings.Join(e.ProductIDs, ", "))
}

type Service struct {
	repo LedgerRepo
}

func NewService(repo LedgerRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// GetAvailable returns the current stock count for a product. The value is a
// snapshot; nothing is held for the caller.
func (s *Service) GetAvailable(ctx context.Context, productID string) (int64, error) {
	if strings.TrimSpace(productID) == "" {
		return 0, ErrInvalidInput
	}
	return s.repo.GetStock(ctx, productID)
}

// TryReserveAll atomically checks every line against live stock and, only if
// all pass, decrements every product by its demanded quantity. A shortfall on
// any product fails the whole call with *OutOfStockError and changes nothing.
func (s *Service) TryReserveAll(ctx context.Context, lines []Line) error {
	if len(lines) == 0 {
		return ErrInvalidInput
	}
	for _, ln := range lines {
		if strings.TrimSpace(ln.ProductID) == "" || ln.Quantity <= 0 {
			return ErrInvalidInput
		}
	}
	return s.repo.ReserveAll(ctx, lines)
}

// Aggregate sums quantities per product and returns one line per product id,
// sorted by id. Reservations check aggregated demand so that two line items
// for the same product cannot slip past a per-line stock comparison.
func Aggregate(lines []Line) []Line {
	demand := make(map[string]int64, len(lines))
	for _, ln := range lines {
		demand[ln.ProductID] += ln.Quantity
	}

	out := make([]Line, 0, len(demand))
	for id, qty := range demand {
		out = append(out, Line{ProductID: id, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}
