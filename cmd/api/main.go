package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/dwikikusuma/marketplace/internal/auth"
	cartapp "github.com/dwikikusuma/marketplace/internal/cart/app"
	"github.com/dwikikusuma/marketplace/internal/cart/infra/adapter"
	cartpg "github.com/dwikikusuma/marketplace/internal/cart/infra/postgres"
	catalogapp "github.com/dwikikusuma/marketplace/internal/catalog/app"
	catalogpg "github.com/dwikikusuma/marketplace/internal/catalog/infra/postgres"
	"github.com/dwikikusuma/marketplace/internal/httpapi"
	invapp "github.com/dwikikusuma/marketplace/internal/inventory/app"
	invpg "github.com/dwikikusuma/marketplace/internal/inventory/infra/postgres"
	"github.com/dwikikusuma/marketplace/internal/platform/memory"
	"github.com/dwikikusuma/marketplace/pkg/config"
	"github.com/dwikikusuma/marketplace/pkg/logger"
	"github.com/dwikikusuma/marketplace/pkg/postgres"
	"github.com/dwikikusuma/marketplace/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "marketplace", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	var (
		productRepo catalogapp.ProductRepo
		ledgerRepo  invapp.LedgerRepo
		cartRepo    cartapp.CartRepo
	)

	switch cfg.Store {
	case "postgres":
		db := mustDB(ctx, cfg, log)
		defer db.Close()

		productRepo = catalogpg.NewProductRepo(db)
		ledgerRepo = invpg.NewLedgerRepo(db)
		cartRepo = cartpg.NewCartRepo(db)
	case "memory":
		store := memory.NewStore()
		productRepo = store.Products()
		ledgerRepo = store
		cartRepo = store.Carts()
	default:
		log.Error("unknown store", slog.String("store", cfg.Store))
		os.Exit(1)
	}

	catalogSvc := catalogapp.NewService(productRepo)
	ledgerSvc := invapp.NewService(ledgerRepo)
	cartSvc := cartapp.NewService(
		cartRepo,
		adapter.NewCatalogServiceReader(catalogSvc),
		adapter.NewLedgerStockReader(ledgerSvc),
		cfg.PriceConcurrency,
	)

	if cfg.Store == "memory" && cfg.AppEnv == "dev" {
		seedCatalog(ctx, catalogSvc, log)
	}

	verifier := auth.NewStaticVerifier(auth.ParseTokenTable(cfg.AuthTokens))
	handler := httpapi.NewHandler(catalogSvc, cartSvc)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           httpapi.NewRouter(handler, verifier, log),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr), slog.String("store", cfg.Store))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}

func mustDB(ctx context.Context, cfg config.Config, log *slog.Logger) *sql.DB {
	db, err := postgres.Open(postgres.Config{
		Host: cfg.PGHost,
		Port: cfg.PGPort,
		User: cfg.PGUser,
		Pass: cfg.PGPass,
		DB:   cfg.PGDB,
	})
	if err != nil {
		log.Error("db open failed", slog.Any("err", err))
		os.Exit(1)
	}

	if err := postgres.Migrate(ctx, db); err != nil {
		log.Error("db migrate failed", slog.Any("err", err))
		os.Exit(1)
	}
	return db
}

// seedCatalog drops a few demo products into the memory store so the API is
// usable out of the box in dev.
func seedCatalog(ctx context.Context, catalog *catalogapp.Service, log *slog.Logger) {
	demo := []struct {
		title  string
		amount int64
		stock  int64
	}{
		{"Mechanical Keyboard", 12900, 12},
		{"USB-C Dock", 8900, 5},
		{"Laptop Stand", 4500, 0},
	}

	for _, d := range demo {
		p, err := catalog.CreateProduct(ctx, d.title, "USD", d.amount, d.stock)
		if err != nil {
			log.Warn("seed product failed", slog.Any("err", err), slog.String("title", d.title))
			continue
		}
		log.Info("seeded product", slog.String("id", p.ID), slog.String("title", p.Title))
	}
}
