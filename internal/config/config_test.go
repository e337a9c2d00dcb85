package config

import (
	"os"
	"testing"
)

func TestConfigLoad_Defaults(t *testing.T) {
	// clear env vars
	_ = os.Unsetenv("COOKBOOK_HTTP_PORT")
	_ = os.Unsetenv("COOKBOOK_KV_DRIVER")
	_ = os.Unsetenv("COOKBOOK_SQLITE_PATH")

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.HTTPPort != 8080 || cfg.KVDriver != "sqlite" || cfg.SQLitePath != "data/cookbook.db" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Environment != EnvDevelopment || cfg.IsProduction() {
		t.Fatalf("unexpected default environment: %+v", cfg.Environment)
	}
	if cfg.GetHTTPAddr() != ":8080" {
		t.Fatalf("unexpected http addr: %s", cfg.GetHTTPAddr())
	}
}

func TestConfigLoad_EnvOverride(t *testing.T) {
	_ = os.Setenv("COOKBOOK_HTTP_PORT", "9090")
	_ = os.Setenv("COOKBOOK_KV_DRIVER", "memory")
	defer func() {
		_ = os.Unsetenv("COOKBOOK_HTTP_PORT")
		_ = os.Unsetenv("COOKBOOK_KV_DRIVER")
	}()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.HTTPPort != 9090 || cfg.KVDriver != "memory" {
		t.Fatalf("env override failed: %+v", cfg)
	}
}

func TestConfigLoad_ProductionEnvironment(t *testing.T) {
	_ = os.Setenv("COOKBOOK_ENVIRONMENT", "production")
	defer func() { _ = os.Unsetenv("COOKBOOK_ENVIRONMENT") }()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.Environment != EnvProduction || !cfg.IsProduction() {
		t.Fatalf("unexpected environment: %+v", cfg.Environment)
	}
}

func TestConfigLoad_PostgresRequiresDSN(t *testing.T) {
	_ = os.Setenv("COOKBOOK_KV_DRIVER", "postgres")
	_ = os.Unsetenv("COOKBOOK_POSTGRES_DSN")
	defer func() { _ = os.Unsetenv("COOKBOOK_KV_DRIVER") }()

	if _, err := New(); err == nil {
		t.Fatal("expected error when KV_DRIVER=postgres without a DSN")
	}
}

func TestConfigLoad_UnknownDriver(t *testing.T) {
	_ = os.Setenv("COOKBOOK_KV_DRIVER", "redis")
	defer func() { _ = os.Unsetenv("COOKBOOK_KV_DRIVER") }()

	if _, err := New(); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}
