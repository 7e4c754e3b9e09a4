package app_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	catalogapp "github.com/dwikikusuma/marketplace/internal/catalog/app"
	invapp "github.com/dwikikusuma/marketplace/internal/inventory/app"
	"github.com/dwikikusuma/marketplace/internal/platform/memory"
	"golang.org/x/sync/errgroup"
)

func newLedger(t *testing.T) (*invapp.Service, *catalogapp.Service) {
	t.Helper()
	store := memory.NewStore()
	return invapp.NewService(store), catalogapp.NewService(store.Products())
}

func seedProduct(t *testing.T, catalog *catalogapp.Service, stock int64) string {
	t.Helper()
	p, err := catalog.CreateProduct(context.Background(), "Widget", "USD", 100, stock)
	if err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}
	return p.ID
}

func TestGetAvailable(t *testing.T) {
	ledger, catalog := newLedger(t)
	ctx := context.Background()

	id := seedProduct(t, catalog, 7)

	n, err := ledger.GetAvailable(ctx, id)
	if err != nil {
		t.Fatalf("GetAvailable failed: %v", err)
	}
	if n != 7 {
		t.Fatalf("expected 7, got %d", n)
	}

	if _, err := ledger.GetAvailable(ctx, "no-such-product"); !errors.Is(err, invapp.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := ledger.GetAvailable(ctx, "  "); !errors.Is(err, invapp.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTryReserveAll(t *testing.T) {
	ledger, catalog := newLedger(t)
	ctx := context.Background()

	a := seedProduct(t, catalog, 10)
	b := seedProduct(t, catalog, 2)

	t.Run("all lines fit -> all decremented", func(t *testing.T) {
		err := ledger.TryReserveAll(ctx, []invapp.Line{
			{ProductID: a, Quantity: 4},
			{ProductID: b, Quantity: 1},
		})
		if err != nil {
			t.Fatalf("TryReserveAll failed: %v", err)
		}
		if n, _ := ledger.GetAvailable(ctx, a); n != 6 {
			t.Fatalf("expected stock 6, got %d", n)
		}
		if n, _ := ledger.GetAvailable(ctx, b); n != 1 {
			t.Fatalf("expected stock 1, got %d", n)
		}
	})

	t.Run("one short line fails the whole batch with no side effects", func(t *testing.T) {
		err := ledger.TryReserveAll(ctx, []invapp.Line{
			{ProductID: a, Quantity: 1},
			{ProductID: b, Quantity: 5},
		})

		var oos *invapp.OutOfStockError
		if !errors.As(err, &oos) {
			t.Fatalf("expected OutOfStockError, got %v", err)
		}
		if len(oos.ProductIDs) != 1 || oos.ProductIDs[0] != b {
			t.Fatalf("expected failing product %s, got %v", b, oos.ProductIDs)
		}

		if n, _ := ledger.GetAvailable(ctx, a); n != 6 {
			t.Fatalf("expected stock 6 untouched, got %d", n)
		}
		if n, _ := ledger.GetAvailable(ctx, b); n != 1 {
			t.Fatalf("expected stock 1 untouched, got %d", n)
		}
	})

	t.Run("duplicate lines are aggregated before the check", func(t *testing.T) {
		err := ledger.TryReserveAll(ctx, []invapp.Line{
			{ProductID: b, Quantity: 1},
			{ProductID: b, Quantity: 1},
		})

		var oos *invapp.OutOfStockError
		if !errors.As(err, &oos) {
			t.Fatalf("expected OutOfStockError for aggregated demand 2 > stock 1, got %v", err)
		}
	})

	t.Run("empty and invalid lines", func(t *testing.T) {
		if err := ledger.TryReserveAll(ctx, nil); !errors.Is(err, invapp.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
		err := ledger.TryReserveAll(ctx, []invapp.Line{{ProductID: a, Quantity: 0}})
		if !errors.Is(err, invapp.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		err := ledger.TryReserveAll(ctx, []invapp.Line{{ProductID: "no-such-product", Quantity: 1}})
		if !errors.Is(err, invapp.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

// 30 goroutines each reserve 1 from a stock of 10: exactly 10 succeed and
// the count lands on zero, never below.
func TestTryReserveAll_Concurrent(t *testing.T) {
	ledger, catalog := newLedger(t)
	ctx := context.Background()

	id := seedProduct(t, catalog, 10)

	var succeeded atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < 30; i++ {
		g.Go(func() error {
			err := ledger.TryReserveAll(ctx, []invapp.Line{{ProductID: id, Quantity: 1}})
			if err == nil {
				succeeded.Add(1)
				return nil
			}
			var oos *invapp.OutOfStockError
			if !errors.As(err, &oos) {
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent reserve failed unexpectedly: %v", err)
	}

	if got := succeeded.Load(); got != 10 {
		t.Fatalf("expected exactly 10 successful reserves, got %d", got)
	}
	if n, _ := ledger.GetAvailable(ctx, id); n != 0 {
		t.Fatalf("expected stock 0, got %d", n)
	}
}

func TestAggregate(t *testing.T) {
	got := invapp.Aggregate([]invapp.Line{
		{ProductID: "b", Quantity: 2},
		{ProductID: "a", Quantity: 1},
		{ProductID: "b", Quantity: 3},
	})

	want := []invapp.Line{{ProductID: "a", Quantity: 1}, {ProductID: "b", Quantity: 5}}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}
