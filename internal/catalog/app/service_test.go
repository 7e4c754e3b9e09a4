package app

import (
	"context"
	"strings"
	"testing"

	"github.com/dwikikusuma/marketplace/internal/catalog/domain"
)

type fakeRepo struct{}

func (fakeRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) { return p, nil }
func (fakeRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	return domain.Product{}, nil
}
func (fakeRepo) List(ctx context.Context, inStockOnly bool) ([]domain.Product, error) {
	return nil, nil
}

func TestCreateProductValidation(t *testing.T) {
	svc := NewService(fakeRepo{})

	t.Run("empty title -> invalid", func(t *testing.T) {
		_, err := svc.CreateProduct(context.Background(), "   ", "USD", 100, 1)
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("title over 30 chars -> invalid", func(t *testing.T) {
		_, err := svc.CreateProduct(context.Background(), strings.Repeat("x", 31), "USD", 100, 1)
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("title of exactly 30 chars -> ok", func(t *testing.T) {
		_, err := svc.CreateProduct(context.Background(), strings.Repeat("x", 30), "USD", 100, 1)
		if err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})

	t.Run("negative amount -> invalid", func(t *testing.T) {
		_, err := svc.CreateProduct(context.Background(), "Keyboard", "USD", -1, 1)
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("free product -> ok", func(t *testing.T) {
		_, err := svc.CreateProduct(context.Background(), "Sticker", "USD", 0, 100)
		if err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})

	t.Run("negative stock -> invalid", func(t *testing.T) {
		_, err := svc.CreateProduct(context.Background(), "Keyboard", "USD", 100, -1)
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("empty currency -> invalid", func(t *testing.T) {
		_, err := svc.CreateProduct(context.Background(), "Keyboard", "   ", 100, 1)
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestGetProductValidation(t *testing.T) {
	svc := NewService(fakeRepo{})

	_, err := svc.GetProduct(context.Background(), "  ")
	if err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
