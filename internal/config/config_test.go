package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.StorageType != "sqlite" {
		t.Fatalf("StorageType = %q, want sqlite default", cfg.StorageType)
	}
	if cfg.SQLitePath != "./salesportal.db" {
		t.Fatalf("SQLitePath = %q", cfg.SQLitePath)
	}
	if cfg.APIPort != "8080" {
		t.Fatalf("APIPort = %q", cfg.APIPort)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "postgres")
	t.Setenv("POSTGRES_URL", "postgres://localhost/sales")
	t.Setenv("CLIENT_URL", "https://portal.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.StorageType != "postgres" {
		t.Fatalf("StorageType = %q", cfg.StorageType)
	}
	if cfg.PostgresURL != "postgres://localhost/sales" {
		t.Fatalf("PostgresURL = %q", cfg.PostgresURL)
	}
	if cfg.ClientURL != "https://portal.example.com" {
		t.Fatalf("ClientURL = %q", cfg.ClientURL)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{StorageType: "sqlite"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	cfg = &Config{StorageType: "mongo"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown storage type")
	}

	cfg = &Config{StorageType: "postgres"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for postgres without URL")
	}
}
