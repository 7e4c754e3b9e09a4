package domain

import "time"

// Money is an amount in minor units (cents) of a currency.
type Money struct {
	Currency string
	Amount   int64
}

type Product struct {
	ID        string
	Title     string
	Price     Money
	Stock     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
