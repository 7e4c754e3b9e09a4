package app

import "github.com/dwikikusuma/marketplace/internal/cart/domain"

// CartView is the priced, read-side shape of a cart. Total is recomputed on
// every read, never stored, and carries the single currency shared by every
// line item.
type CartView struct {
	ID       string
	OwnerID  string
	Items    []ItemView
	Complete bool
	Total    domain.Money
}

type ItemView struct {
	Product  Product
	Quantity int64
}
