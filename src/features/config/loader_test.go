package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	manager, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected default config file to be written: %v", err)
	}

	cfg := manager.Get()
	if cfg.Paging.DefaultPageSize != 15 {
		t.Errorf("expected default page size 15, got %d", cfg.Paging.DefaultPageSize)
	}
	if len(cfg.Database.MediaTypes) == 0 {
		t.Error("expected a seed media type vocabulary")
	}
}

func TestLoadFillsMissingDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("database:\n  path: ./test.db\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	manager, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cfg := manager.Get()
	if cfg.Database.Path != "./test.db" {
		t.Errorf("unexpected database path: %q", cfg.Database.Path)
	}
	if cfg.Paging.DefaultPageSize != 15 {
		t.Errorf("expected default page size fallback, got %d", cfg.Paging.DefaultPageSize)
	}
	if cfg.Server.Port == 0 {
		t.Error("expected port fallback")
	}
}

func TestLoadRejectsMissingDatabasePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("logger:\n  level: debug\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for missing database path")
	}
}

func TestLoadHonorsDatabasePathEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("database:\n  path: ./test.db\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	t.Setenv("TRACKSHELF_DB_PATH", "/tmp/override.db")

	manager, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := manager.Get().Database.Path; got != "/tmp/override.db" {
		t.Errorf("expected env override, got %q", got)
	}
}
