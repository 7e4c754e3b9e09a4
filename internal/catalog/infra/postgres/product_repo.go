package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dwikikusuma/marketplace/internal/catalog/app"
	"github.com/dwikikusuma/marketplace/internal/catalog/domain"
	"github.com/dwikikusuma/marketplace/internal/catalog/infra/postgres/catalogdb"
	"github.com/google/uuid"
)

type ProductRepo struct {
	q *catalogdb.Queries
}

func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{q: catalogdb.New(db)}
}

func (r *ProductRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	row, err := r.q.CreateProduct(ctx, catalogdb.CreateProductParams{
		Title:          p.Title,
		PriceAmount:    p.Price.Amount,
		Currency:       p.Price.Currency,
		InventoryCount: p.Stock,
	})
	if err != nil {
		return domain.Product{}, err
	}
	return toDomain(row), nil
}

func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	prodID, err := uuid.Parse(id)
	if err != nil {
		return domain.Product{}, app.ErrNotFound
	}

	row, err := r.q.GetProduct(ctx, prodID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Product{}, err
	}

	return toDomain(row), nil
}

func (r *ProductRepo) List(ctx context.Context, inStockOnly bool) ([]domain.Product, error) {
	rows, err := r.q.ListProducts(ctx, inStockOnly)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomain(row))
	}
	return out, nil
}

func toDomain(row catalogdb.Product) domain.Product {
	return domain.Product{
		ID:    row.ID.String(),
		Title: row.Title,
		Price: domain.Money{
			Currency: row.Currency,
			Amount:   row.PriceAmount,
		},
		Stock:     row.InventoryCount,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
