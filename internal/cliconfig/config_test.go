package cliconfig

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bft-labs/recipebox/pkg/recipebox"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Backend != recipebox.BackendFile {
		t.Errorf("Backend = %v, want file", cfg.Backend)
	}
	if cfg.StorageKey != "recipes" {
		t.Errorf("StorageKey = %v, want recipes", cfg.StorageKey)
	}
	if cfg.RedirectDelay != 2*time.Second {
		t.Errorf("RedirectDelay = %v, want 2s", cfg.RedirectDelay)
	}
	if !cfg.Seed {
		t.Error("Seed = false, want true")
	}
	if !strings.Contains(cfg.DataDir, ".recipebox") {
		t.Errorf("DataDir = %v, should contain .recipebox", cfg.DataDir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	base := func() Config {
		return Config{
			DataDir:    "/tmp/recipes",
			Backend:    recipebox.BackendFile,
			StorageKey: "recipes",
			IDScheme:   recipebox.IDSchemeClock,
			LogLevel:   "info",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid minimal config", mutate: func(c *Config) {}},
		{name: "memory backend needs no dir", mutate: func(c *Config) { c.Backend = "memory"; c.DataDir = "" }},
		{name: "file backend needs data dir", mutate: func(c *Config) { c.DataDir = "" }, wantErr: true},
		{name: "sqlite without any path", mutate: func(c *Config) { c.Backend = "sqlite"; c.DataDir = "" }, wantErr: true},
		{name: "unknown backend", mutate: func(c *Config) { c.Backend = "s3" }, wantErr: true},
		{name: "unknown id scheme", mutate: func(c *Config) { c.IDScheme = "counter" }, wantErr: true},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
		{name: "negative redirect delay", mutate: func(c *Config) { c.RedirectDelay = -time.Second }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate_DerivesDBPath(t *testing.T) {
	cfg := Config{DataDir: "/data", Backend: recipebox.BackendSQLite, LogLevel: "debug"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if cfg.DBPath != filepath.Join("/data", "recipes.db") {
		t.Errorf("DBPath = %v, want /data/recipes.db", cfg.DBPath)
	}

	cfg = Config{DataDir: "/data", Backend: recipebox.BackendSQLite, DBPath: "/elsewhere.db"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if cfg.DBPath != "/elsewhere.db" {
		t.Errorf("DBPath = %v, want explicit path kept", cfg.DBPath)
	}
}

func TestConfig_Library(t *testing.T) {
	cfg := Config{
		DataDir:      "/d",
		Backend:      "sqlite",
		DBPath:       "/d/x.db",
		StorageKey:   "k",
		IDScheme:     "uuid",
		MaxBlobBytes: 10,
		QuotaBytes:   20,
	}
	want := recipebox.Config{
		Backend:      "sqlite",
		DataDir:      "/d",
		DBPath:       "/d/x.db",
		Key:          "k",
		IDScheme:     "uuid",
		MaxBlobBytes: 10,
		QuotaBytes:   20,
	}
	if got := cfg.Library(); got != want {
		t.Errorf("Library() = %+v, want %+v", got, want)
	}
}
