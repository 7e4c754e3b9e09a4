package app_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	invapp "github.com/dwikikusuma/marketplace/internal/inventory/app"
	"golang.org/x/sync/errgroup"
)

// Two carts race for overlapping stock: each requests 3 of a product with 5
// in stock. Exactly one checkout may commit; the loser must observe the
// post-decrement count and fail, leaving stock at 2.
func TestCheckout_ConcurrentOverlappingStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	scarce := f.product(t, "Limited Edition", 50000, 5)

	owners := []string{"alice", "bob"}
	cartIDs := make([]string, len(owners))
	for i, owner := range owners {
		cart, err := f.carts.Open(ctx, owner)
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		if _, err := f.carts.AddItem(ctx, cart.ID, owner, scarce, 3); err != nil {
			t.Fatalf("AddItem failed: %v", err)
		}
		cartIDs[i] = cart.ID
	}

	var (
		mu                    sync.Mutex
		succeeded, outOfStock int
	)

	g, ctx := errgroup.WithContext(ctx)
	for i := range owners {
		i := i
		g.Go(func() error {
			err := f.carts.Checkout(ctx, cartIDs[i], owners[i])

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			default:
				var oos *invapp.OutOfStockError
				if !errors.As(err, &oos) {
					return err
				}
				outOfStock++
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent checkout failed unexpectedly: %v", err)
	}

	if succeeded != 1 || outOfStock != 1 {
		t.Fatalf("expected exactly 1 success and 1 out-of-stock, got %d and %d", succeeded, outOfStock)
	}

	n, err := f.ledger.GetAvailable(ctx, scarce)
	if err != nil {
		t.Fatalf("GetAvailable failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected final stock 2, got %d", n)
	}
}

// Many carts race to drain a small stock: 20 carts each want 2 of a product
// with 7 in stock, so exactly 3 checkouts can commit and one unit remains.
// Every loser must fail out-of-stock with its cart left open and intact.
func TestCheckout_ManyCartsDrainStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	scarce := f.product(t, "Limited Edition", 50000, 7)

	const nCarts = 20
	cartIDs := make([]string, nCarts)
	owners := make([]string, nCarts)
	for i := range cartIDs {
		owners[i] = fmt.Sprintf("user-%d", i)
		cart, err := f.carts.Open(ctx, owners[i])
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		if _, err := f.carts.AddItem(ctx, cart.ID, owners[i], scarce, 2); err != nil {
			t.Fatalf("AddItem failed: %v", err)
		}
		cartIDs[i] = cart.ID
	}

	var (
		mu                    sync.Mutex
		succeeded, outOfStock int
	)

	g, ctx := errgroup.WithContext(ctx)
	for i := range cartIDs {
		i := i
		g.Go(func() error {
			err := f.carts.Checkout(ctx, cartIDs[i], owners[i])

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			default:
				var oos *invapp.OutOfStockError
				if !errors.As(err, &oos) {
					return err
				}
				outOfStock++
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent checkout failed unexpectedly: %v", err)
	}

	if succeeded != 3 || outOfStock != nCarts-3 {
		t.Fatalf("expected 3 successes and %d out-of-stock, got %d and %d", nCarts-3, succeeded, outOfStock)
	}

	n, err := f.ledger.GetAvailable(ctx, scarce)
	if err != nil {
		t.Fatalf("GetAvailable failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected final stock 1, got %d", n)
	}

	var open int
	for i, cartID := range cartIDs {
		view, err := f.carts.Get(ctx, cartID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !view.Complete {
			open++
			if len(view.Items) != 1 || view.Items[0].Quantity != 2 {
				t.Fatalf("losing cart %d was mutated: %+v", i, view.Items)
			}
		}
	}
	if open != nCarts-3 {
		t.Fatalf("expected %d carts left open, got %d", nCarts-3, open)
	}
}

// Many concurrent AddItem calls against one cart must all land.
func TestAddItem_ConcurrentSameCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	product := f.product(t, "Keyboard", 12900, 1000)

	cart, err := f.carts.Open(ctx, "alice")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	const N = 50
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < N; i++ {
		g.Go(func() error {
			_, err := f.carts.AddItem(ctx, cart.ID, "alice", product, 1)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent AddItem failed: %v", err)
	}

	view, err := f.carts.Get(ctx, cart.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(view.Items) != N {
		t.Fatalf("expected %d line items, got %d", N, len(view.Items))
	}
	if view.Total.Amount != N*12900 {
		t.Fatalf("expected total %d, got %d", N*12900, view.Total.Amount)
	}

	if err := f.carts.Checkout(ctx, cart.ID, "alice"); err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}
	n, err := f.ledger.GetAvailable(ctx, product)
	if err != nil {
		t.Fatalf("GetAvailable failed: %v", err)
	}
	if n != 1000-N {
		t.Fatalf("expected stock %d, got %d", 1000-N, n)
	}
}
