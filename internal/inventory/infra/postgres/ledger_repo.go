package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dwikikusuma/marketplace/internal/inventory/app"
	"github.com/dwikikusuma/marketplace/internal/inventory/infra/postgres/inventorydb"
	"github.com/google/uuid"
)

type LedgerRepo struct {
	db *sql.DB
	q  *inventorydb.Queries
}

func NewLedgerRepo(db *sql.DB) *LedgerRepo {
	return &LedgerRepo{db: db, q: inventorydb.New(db)}
}

func (r *LedgerRepo) GetStock(ctx context.Context, productID string) (int64, error) {
	prodID, err := uuid.Parse(productID)
	if err != nil {
		return 0, app.ErrNotFound
	}

	stock, err := r.q.GetProductStock(ctx, prodID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, app.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return stock, nil
}

func (r *LedgerRepo) ReserveAll(ctx context.Context, lines []app.Line) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := ReserveAllTx(ctx, tx, lines); err != nil {
		return err
	}
	return tx.Commit()
}

// ReserveAllTx runs the check-and-decrement inside the caller's transaction,
// so a caller can commit the decrement together with its own writes. Product
// rows are locked in id order, which keeps overlapping reservations from
// deadlocking each other.
func ReserveAllTx(ctx context.Context, tx *sql.Tx, lines []app.Line) error {
	demand := app.Aggregate(lines)
	q := inventorydb.New(tx)

	ids := make([]uuid.UUID, len(demand))
	for i, d := range demand {
		prodID, err := uuid.Parse(d.ProductID)
		if err != nil {
			return app.ErrNotFound
		}
		ids[i] = prodID
	}

	var short []string
	for i, d := range demand {
		stock, err := q.GetProductStockForUpdate(ctx, ids[i])
		if errors.Is(err, sql.ErrNoRows) {
			return app.ErrNotFound
		}
		if err != nil {
			return err
		}
		if stock < d.Quantity {
			short = append(short, d.ProductID)
		}
	}
	if len(short) > 0 {
		return &app.OutOfStockError{ProductIDs: short}
	}

	for i, d := range demand {
		err := q.DecrementStock(ctx, inventorydb.DecrementStockParams{
			ID:       ids[i],
			Quantity: d.Quantity,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
