// Package memory is a single-process implementation of every storage port.
// It backs the memory store mode and the behavioral test suites; atomicity
// comes from one store-wide mutex instead of transactions.
package memory

import (
	"context"
	"sync"
	"time"

	cartapp "github.com/dwikikusuma/marketplace/internal/cart/app"
	cartdomain "github.com/dwikikusuma/marketplace/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/marketplace/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/marketplace/internal/catalog/domain"
	invapp "github.com/dwikikusuma/marketplace/internal/inventory/app"
	"github.com/google/uuid"
)

type Store struct {
	mu           sync.RWMutex
	products     map[string]catalogdomain.Product
	productOrder []string
	carts        map[string]cartdomain.Cart
}

func NewStore() *Store {
	return &Store{
		products: make(map[string]catalogdomain.Product),
		carts:    make(map[string]cartdomain.Cart),
	}
}

// Products exposes the store as a catalog ProductRepo.
func (s *Store) Products() *ProductRepo {
	return &ProductRepo{s: s}
}

// Carts exposes the store as a cart CartRepo.
func (s *Store) Carts() *CartRepo {
	return &CartRepo{s: s}
}

type ProductRepo struct {
	s *Store
}

func (r *ProductRepo) Create(ctx context.Context, p catalogdomain.Product) (catalogdomain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now

	r.s.products[p.ID] = p
	r.s.productOrder = append(r.s.productOrder, p.ID)
	return p, nil
}

func (r *ProductRepo) Get(ctx context.Context, id string) (catalogdomain.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.products[id]
	if !ok {
		return catalogdomain.Product{}, catalogapp.ErrNotFound
	}
	return p, nil
}

func (r *ProductRepo) List(ctx context.Context, inStockOnly bool) ([]catalogdomain.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]catalogdomain.Product, 0, len(r.s.productOrder))
	for _, id := range r.s.productOrder {
		p := r.s.products[id]
		if inStockOnly && p.Stock <= 0 {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// GetStock implements the ledger's advisory snapshot read.
func (s *Store) GetStock(ctx context.Context, productID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[productID]
	if !ok {
		return 0, invapp.ErrNotFound
	}
	return p.Stock, nil
}

// ReserveAll implements the ledger's atomic check-and-decrement under the
// store mutex.
func (s *Store) ReserveAll(ctx context.Context, lines []invapp.Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reserveAllLocked(lines)
}

func (s *Store) reserveAllLocked(lines []invapp.Line) error {
	demand := invapp.Aggregate(lines)

	var short []string
	for _, d := range demand {
		p, ok := s.products[d.ProductID]
		if !ok {
			return invapp.ErrNotFound
		}
		if p.Stock < d.Quantity {
			short = append(short, d.ProductID)
		}
	}
	if len(short) > 0 {
		return &invapp.OutOfStockError{ProductIDs: short}
	}

	now := time.Now().UTC()
	for _, d := range demand {
		p := s.products[d.ProductID]
		p.Stock -= d.Quantity
		p.UpdatedAt = now
		s.products[d.ProductID] = p
	}
	return nil
}

type CartRepo struct {
	s *Store
}

func (r *CartRepo) Create(ctx context.Context, cart cartdomain.Cart) (cartdomain.Cart, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := time.Now().UTC()
	cart.ID = uuid.NewString()
	cart.Status = cartdomain.StatusOpen
	cart.Items = nil
	cart.CreatedAt = now
	cart.UpdatedAt = now

	r.s.carts[cart.ID] = cart
	return copyCart(cart), nil
}

func (r *CartRepo) Get(ctx context.Context, cartID string) (cartdomain.Cart, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	cart, ok := r.s.carts[cartID]
	if !ok {
		return cartdomain.Cart{}, cartapp.ErrNotFound
	}
	return copyCart(cart), nil
}

func (r *CartRepo) AddItem(ctx context.Context, cartID string, item cartdomain.CartItem) (cartdomain.Cart, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cart, ok := r.s.carts[cartID]
	if !ok {
		return cartdomain.Cart{}, cartapp.ErrNotFound
	}
	if cart.Complete() {
		return cartdomain.Cart{}, cartapp.ErrCartClosed
	}

	item.ID = uuid.NewString()
	cart.Items = append(copyItems(cart.Items), item)
	cart.UpdatedAt = time.Now().UTC()
	r.s.carts[cartID] = cart

	return copyCart(cart), nil
}

func (r *CartRepo) Checkout(ctx context.Context, cartID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cart, ok := r.s.carts[cartID]
	if !ok {
		return cartapp.ErrNotFound
	}
	if cart.Complete() {
		return cartapp.ErrCartClosed
	}
	if len(cart.Items) == 0 {
		return cartapp.ErrEmptyCart
	}

	lines := make([]invapp.Line, 0, len(cart.Items))
	for _, it := range cart.Items {
		lines = append(lines, invapp.Line{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	if err := r.s.reserveAllLocked(lines); err != nil {
		return err
	}

	cart.Status = cartdomain.StatusComplete
	cart.UpdatedAt = time.Now().UTC()
	r.s.carts[cartID] = cart
	return nil
}

func copyCart(cart cartdomain.Cart) cartdomain.Cart {
	out := cart
	out.Items = copyItems(cart.Items)
	return out
}

func copyItems(items []cartdomain.CartItem) []cartdomain.CartItem {
	if items == nil {
		return nil
	}
	return append([]cartdomain.CartItem(nil), items...)
}
