// Package app implements the cart state machine: a cart is open and mutable
// until checkout completes it, and a completed cart is frozen forever.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dwikikusuma/marketplace/internal/cart/domain"
	invapp "github.com/dwikikusuma/marketplace/internal/inventory/app"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("cart not found")
	ErrProductNotFound = errors.New("product not found")
	ErrCartClosed      = errors.New("cart is already completed")
	ErrEmptyCart       = errors.New("cart is empty")
)

type Service struct {
	repo    CartRepo
	catalog CatalogReader
	stock   StockReader

	maxConcurrent int
}

func NewService(repo CartRepo, catalog CatalogReader, stock StockReader, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	return &Service{
		repo:          repo,
		catalog:       catalog,
		stock:         stock,
		maxConcurrent: maxConcurrent,
	}
}

// Open creates a new open cart for the given owner. A user may own any
// number of carts.
func (s *Service) Open(ctx context.Context, ownerID string) (CartView, error) {
	if strings.TrimSpace(ownerID) == "" {
		return CartView{}, ErrInvalidInput
	}

	cart, err := s.repo.Create(ctx, domain.Cart{
		OwnerID: ownerID,
		Status:  domain.StatusOpen,
	})
	if err != nil {
		return CartView{}, err
	}
	return s.buildView(ctx, cart)
}

func (s *Service) Get(ctx context.Context, cartID string) (CartView, error) {
	if strings.TrimSpace(cartID) == "" {
		return CartView{}, ErrInvalidInput
	}

	cart, err := s.repo.Get(ctx, cartID)
	if err != nil {
		return CartView{}, err
	}
	return s.buildView(ctx, cart)
}

// AddItem appends a (product, quantity) line item to an open cart owned by
// ownerID. The stock check here is advisory: it validates against the
// ledger's current snapshot but reserves nothing, so stock can still drop
// before checkout. Adding the same product twice yields two line items.
func (s *Service) AddItem(ctx context.Context, cartID, ownerID, productID string, quantity int64) (CartView, error) {
	if strings.TrimSpace(productID) == "" || quantity <= 0 {
		return CartView{}, ErrInvalidInput
	}

	cart, err := s.repo.Get(ctx, cartID)
	if err != nil {
		return CartView{}, err
	}
	if cart.OwnerID != ownerID {
		// Capability check: a cart that isn't yours doesn't exist for you.
		return CartView{}, ErrNotFound
	}
	if cart.Complete() {
		return CartView{}, ErrCartClosed
	}

	if _, err := s.catalog.GetProduct(ctx, productID); err != nil {
		return CartView{}, err
	}

	available, err := s.stock.Available(ctx, productID)
	if err != nil {
		return CartView{}, err
	}
	if available < quantity {
		return CartView{}, &invapp.OutOfStockError{ProductIDs: []string{productID}}
	}

	updated, err := s.repo.AddItem(ctx, cartID, domain.CartItem{
		ProductID: productID,
		Quantity:  quantity,
	})
	if err != nil {
		return CartView{}, err
	}
	return s.buildView(ctx, updated)
}

// Checkout finalizes the cart: every line item is re-validated against live
// stock and, if all pass, the decrements and the open→complete transition
// commit together. A failed checkout leaves stock and cart untouched.
func (s *Service) Checkout(ctx context.Context, cartID, ownerID string) error {
	cart, err := s.repo.Get(ctx, cartID)
	if err != nil {
		return err
	}
	if cart.OwnerID != ownerID {
		return ErrNotFound
	}
	if cart.Complete() {
		return ErrCartClosed
	}
	if len(cart.Items) == 0 {
		return ErrEmptyCart
	}

	return s.repo.Checkout(ctx, cartID)
}

// buildView prices the cart: one catalog lookup per line item with bounded
// fan-out, line totals and the running total computed from minor units.
func (s *Service) buildView(ctx context.Context, cart domain.Cart) (CartView, error) {
	items := make([]ItemView, len(cart.Items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range cart.Items {
		idx := idx
		g.Go(func() error {
			it := cart.Items[idx]

			product, err := s.catalog.GetProduct(ctx, it.ProductID)
			if err != nil {
				return fmt.Errorf("failed to get product %s: %w", it.ProductID, err)
			}

			items[idx] = ItemView{
				Product:  product,
				Quantity: it.Quantity,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return CartView{}, err
	}

	var total domain.Money
	for _, it := range items {
		if total.Currency == "" {
			total.Currency = it.Product.Currency
		} else if total.Currency != it.Product.Currency {
			// A single cart totals in one currency; minor units of
			// different currencies must never be summed together.
			return CartView{}, fmt.Errorf("cart %s mixes currencies %s and %s", cart.ID, total.Currency, it.Product.Currency)
		}
		total.Amount += it.Quantity * it.Product.Amount
	}

	return CartView{
		ID:       cart.ID,
		OwnerID:  cart.OwnerID,
		Items:    items,
		Complete: cart.Complete(),
		Total:    total,
	}, nil
}
