package app

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/dwikikusuma/marketplace/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

const maxTitleLen = 30

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// CreateProduct adds a product to the catalog. There is no public route for
// this; it serves seeding and catalog management tooling.
func (s *Service) CreateProduct(ctx context.Context, title, currency string, amount, stock int64) (domain.Product, error) {
	title = strings.TrimSpace(title)
	currency = strings.TrimSpace(currency)

	if title == "" || utf8.RuneCountInString(title) > maxTitleLen {
		return domain.Product{}, ErrInvalidInput
	}
	if currency == "" || amount < 0 || stock < 0 {
		return domain.Product{}, ErrInvalidInput
	}

	p := domain.Product{
		Title: title,
		Price: domain.Money{
			Currency: currency,
			Amount:   amount,
		},
		Stock: stock,
	}

	return s.repo.Create(ctx, p)
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

// ListProducts returns the catalog, optionally filtered to products with
// stock remaining.
func (s *Service) ListProducts(ctx context.Context, inStockOnly bool) ([]domain.Product, error) {
	return s.repo.List(ctx, inStockOnly)
}
