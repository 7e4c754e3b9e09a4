package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HTTP_PORT", "")
	t.Setenv("STORE", "")
	t.Setenv("PRICE_CONCURRENCY", "")

	cfg := Load()

	if cfg.HTTPPort != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.HTTPPort)
	}
	if cfg.Store != "memory" {
		t.Fatalf("expected default store memory, got %q", cfg.Store)
	}
	if cfg.PriceConcurrency != 10 {
		t.Fatalf("expected default price concurrency 10, got %d", cfg.PriceConcurrency)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("STORE", "postgres")
	t.Setenv("AUTH_TOKENS", "t:alice")

	cfg := Load()
	if cfg.HTTPPort != 9000 {
		t.Fatalf("expected port 9000, got %d", cfg.HTTPPort)
	}
	if cfg.Store != "postgres" {
		t.Fatalf("expected store postgres, got %q", cfg.Store)
	}
	if cfg.AuthTokens != "t:alice" {
		t.Fatalf("expected token table, got %q", cfg.AuthTokens)
	}
}

func TestLoadBadInt(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-number")

	cfg := Load()
	if cfg.HTTPPort != 8080 {
		t.Fatalf("expected fallback to default port, got %d", cfg.HTTPPort)
	}
}
