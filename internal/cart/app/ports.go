package app

import (
	"context"

	"github.com/dwikikusuma/marketplace/internal/cart/domain"
)

type CartRepo interface {
	Create(ctx context.Context, cart domain.Cart) (domain.Cart, error)
	Get(ctx context.Context, cartID string) (domain.Cart, error)

	// AddItem appends a line item. The status check and the insert happen
	// under the cart's lock, so an item can never land in a cart that
	// completed concurrently. Returns the updated cart.
	AddItem(ctx context.Context, cartID string, item domain.CartItem) (domain.Cart, error)

	// Checkout re-validates every line item against live stock, then
	// decrements the stock and flips the cart to complete as one atomic
	// unit. On any failure nothing persists and the cart stays open.
	Checkout(ctx context.Context, cartID string) error
}

// Product is the catalog snapshot a cart view embeds per line item.
type Product struct {
	ID       string
	Title    string
	Currency string
	Amount   int64
	Stock    int64
}

type CatalogReader interface {
	GetProduct(ctx context.Context, productID string) (Product, error)
}

// StockReader exposes the ledger's advisory snapshot used at add-item time.
// Nothing is reserved; the authoritative check happens at checkout.
type StockReader interface {
	Available(ctx context.Context, productID string) (int64, error)
}
