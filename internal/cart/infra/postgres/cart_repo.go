package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dwikikusuma/marketplace/internal/cart/app"
	"github.com/dwikikusuma/marketplace/internal/cart/domain"
	"github.com/dwikikusuma/marketplace/internal/cart/infra/postgres/cartdb"
	invapp "github.com/dwikikusuma/marketplace/internal/inventory/app"
	invpg "github.com/dwikikusuma/marketplace/internal/inventory/infra/postgres"
	"github.com/google/uuid"
)

type CartRepo struct {
	db *sql.DB
	q  *cartdb.Queries
}

func NewCartRepo(db *sql.DB) *CartRepo {
	return &CartRepo{db: db, q: cartdb.New(db)}
}

func (r *CartRepo) Create(ctx context.Context, cart domain.Cart) (domain.Cart, error) {
	row, err := r.q.CreateCart(ctx, cart.OwnerID)
	if err != nil {
		return domain.Cart{}, err
	}
	return toDomain(row, nil), nil
}

func (r *CartRepo) Get(ctx context.Context, cartID string) (domain.Cart, error) {
	cartUUID, err := uuid.Parse(cartID)
	if err != nil {
		return domain.Cart{}, app.ErrNotFound
	}

	row, err := r.q.GetCart(ctx, cartUUID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Cart{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Cart{}, err
	}

	items, err := r.q.ListCartItems(ctx, cartUUID)
	if err != nil {
		return domain.Cart{}, err
	}

	return toDomain(row, items), nil
}

// AddItem inserts a line item with the cart row locked, so the open-status
// check cannot race a concurrent checkout and item inserts into one cart are
// serialized.
func (r *CartRepo) AddItem(ctx context.Context, cartID string, item domain.CartItem) (domain.Cart, error) {
	cartUUID, err := uuid.Parse(cartID)
	if err != nil {
		return domain.Cart{}, app.ErrNotFound
	}
	productUUID, err := uuid.Parse(item.ProductID)
	if err != nil {
		return domain.Cart{}, app.ErrNotFound
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Cart{}, err
	}
	defer tx.Rollback()

	qtx := r.q.WithTx(tx)

	cart, err := qtx.GetCartForUpdate(ctx, cartUUID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Cart{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Cart{}, err
	}
	if cart.Status == string(domain.StatusComplete) {
		return domain.Cart{}, app.ErrCartClosed
	}

	if _, err := qtx.InsertCartItem(ctx, cartdb.InsertCartItemParams{
		CartID:    cartUUID,
		ProductID: productUUID,
		Quantity:  item.Quantity,
	}); err != nil {
		return domain.Cart{}, err
	}

	items, err := qtx.ListCartItems(ctx, cartUUID)
	if err != nil {
		return domain.Cart{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.Cart{}, err
	}
	return toDomain(cart, items), nil
}

// Checkout commits the ledger decrement and the open→complete transition in
// a single transaction: either both persist or neither does.
func (r *CartRepo) Checkout(ctx context.Context, cartID string) error {
	cartUUID, err := uuid.Parse(cartID)
	if err != nil {
		return app.ErrNotFound
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := r.q.WithTx(tx)

	cart, err := qtx.GetCartForUpdate(ctx, cartUUID)
	if errors.Is(err, sql.ErrNoRows) {
		return app.ErrNotFound
	}
	if err != nil {
		return err
	}
	if cart.Status == string(domain.StatusComplete) {
		return app.ErrCartClosed
	}

	items, err := qtx.ListCartItems(ctx, cartUUID)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return app.ErrEmptyCart
	}

	lines := make([]invapp.Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, invapp.Line{
			ProductID: it.ProductID.String(),
			Quantity:  it.Quantity,
		})
	}

	if err := invpg.ReserveAllTx(ctx, tx, lines); err != nil {
		return err
	}

	if err := qtx.CompleteCart(ctx, cartUUID); err != nil {
		return err
	}

	return tx.Commit()
}

func toDomain(cart cartdb.Cart, items []cartdb.CartItem) domain.Cart {
	out := domain.Cart{
		ID:        cart.ID.String(),
		OwnerID:   cart.OwnerID,
		Status:    domain.Status(cart.Status),
		CreatedAt: cart.CreatedAt,
		UpdatedAt: cart.UpdatedAt,
	}
	for _, it := range items {
		out.Items = append(out.Items, domain.CartItem{
			ID:        it.ID.String(),
			ProductID: it.ProductID.String(),
			Quantity:  it.Quantity,
		})
	}
	return out
}
