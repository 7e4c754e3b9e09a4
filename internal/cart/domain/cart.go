package domain

import "time"

type Status string

const (
	// StatusOpen is the initial state: items may still be added.
	StatusOpen Status = "open"
	// StatusComplete is terminal: the cart is frozen forever.
	StatusComplete Status = "complete"
)

type Money struct {
	Currency string
	Amount   int64
}

type CartItem struct {
	ID        string
	ProductID string
	Quantity  int64
}

type Cart struct {
	ID        string
	OwnerID   string
	Status    Status
	Items     []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c Cart) Complete() bool {
	return c.Status == StatusComplete
}
