package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "7000")
	t.Setenv("MONGODB_USER_NAME", "lawman")
	t.Setenv("MONGODB_PASSWORD", "p@ss")
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, http://localhost:5173")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr() != ":7000" {
		t.Errorf("expected addr :7000, got %q", cfg.Addr())
	}
	if cfg.Database.User != "lawman" || cfg.Database.Password != "p@ss" {
		t.Errorf("unexpected credentials: %q %q", cfg.Database.User, cfg.Database.Password)
	}
	if cfg.Database.Name != "lawMan" {
		t.Errorf("expected default database name, got %q", cfg.Database.Name)
	}
	if cfg.Auth.SecretKey != "secret" || cfg.Auth.Header != "lawman-jwt" {
		t.Errorf("unexpected auth config: %+v", cfg.Auth)
	}
	if len(cfg.Server.AllowedOrigins) != 2 || cfg.Server.AllowedOrigins[1] != "http://localhost:5173" {
		t.Errorf("unexpected origins: %#v", cfg.Server.AllowedOrigins)
	}
}

func TestLoadConfigEnvironmentOverridesFile(t *testing.T) {
	path := writeFile(t, `
server:
  port: "8080"
  read_timeout: 2s
database:
  driver: memory
  name: reviews-dev
auth:
  secret_key: from-file
listing:
  default_limit: 5
  max_limit: 10
`)
	t.Setenv("JWT_SECRET_KEY", "from-env")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Auth.SecretKey != "from-env" {
		t.Errorf("expected env secret to win, got %q", cfg.Auth.SecretKey)
	}
	if cfg.Server.Port != "8080" || cfg.Server.ReadTimeout != 2*time.Second {
		t.Errorf("file values lost: %+v", cfg.Server)
	}
	if cfg.Server.WriteTimeout != 10*time.Second {
		t.Errorf("expected default write timeout, got %v", cfg.Server.WriteTimeout)
	}
	if cfg.Database.Driver != DriverMemory || cfg.Database.Name != "reviews-dev" {
		t.Errorf("unexpected database config: %+v", cfg.Database)
	}
	if cfg.Listing.DefaultLimit != 5 || cfg.Listing.MaxLimit != 10 {
		t.Errorf("unexpected listing config: %+v", cfg.Listing)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
		if _, err := LoadConfig(""); err == nil {
			t.Fatal("expected error without a signing secret")
		}
	})

	t.Run("missing credentials", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "secret")
		if _, err := LoadConfig(""); err == nil {
			t.Fatal("expected error without database credentials")
		}
	})

	t.Run("uri replaces credentials", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "secret")
		t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
		if _, err := LoadConfig(""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("max below default", func(t *testing.T) {
		cfg := Default()
		cfg.Database.Driver = DriverMemory
		cfg.Auth.SecretKey = "secret"
		cfg.Listing.MaxLimit = 1
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error when max limit is below the default")
		}
	})
}
