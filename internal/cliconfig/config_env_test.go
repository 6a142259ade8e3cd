package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"RECIPEBOX_DATA_DIR":       "/env/data",
				"RECIPEBOX_BACKEND":        "memory",
				"RECIPEBOX_DB_PATH":        "/env/db",
				"RECIPEBOX_STORAGE_KEY":    "env-key",
				"RECIPEBOX_ID_SCHEME":      "uuid",
				"RECIPEBOX_LOG_LEVEL":      "warn",
				"RECIPEBOX_MAX_BLOB_BYTES": "100",
				"RECIPEBOX_QUOTA_BYTES":    "200",
				"RECIPEBOX_REDIRECT_DELAY": "3s",
				"RECIPEBOX_SEED":           "1",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				DataDir:       "/env/data",
				Backend:       "memory",
				DBPath:        "/env/db",
				StorageKey:    "env-key",
				IDScheme:      "uuid",
				LogLevel:      "warn",
				MaxBlobBytes:  100,
				QuotaBytes:    200,
				RedirectDelay: 3 * time.Second,
				Seed:          true,
			},
		},
		{
			name:     "respects changed flags",
			envVars:  map[string]string{"RECIPEBOX_DATA_DIR": "/env/data", "RECIPEBOX_SEED": "false"},
			changed:  map[string]bool{"data-dir": true},
			initial:  Config{DataDir: "/flag/data", Seed: true},
			expected: Config{DataDir: "/flag/data", Seed: false},
		},
		{
			name:    "returns error for invalid duration",
			envVars: map[string]string{"RECIPEBOX_REDIRECT_DELAY": "later"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:    "returns error for invalid int",
			envVars: map[string]string{"RECIPEBOX_QUOTA_BYTES": "lots"},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr && err == nil {
				t.Error("ApplyEnvConfig() expected error but got nil")
				return
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ApplyEnvConfig() unexpected error: %v", err)
				return
			}
			if !tt.wantErr && cfg != tt.expected {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

// Precedence order: flag > env > file.
func TestConfigPrecedence(t *testing.T) {
	fileConf := FileConfig{
		DataDir:  "/file/data",
		Backend:  "sqlite",
		IDScheme: "uuid",
	}

	t.Setenv("RECIPEBOX_DATA_DIR", "/env/data")
	t.Setenv("RECIPEBOX_BACKEND", "memory")

	changed := map[string]bool{"data-dir": true}
	cfg := Config{DataDir: "/cli/data"}

	if err := ApplyFileConfig(&cfg, fileConf, changed); err != nil {
		t.Fatalf("ApplyFileConfig failed: %v", err)
	}
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig failed: %v", err)
	}

	if cfg.DataDir != "/cli/data" {
		t.Errorf("DataDir = %v, want /cli/data (flag should win)", cfg.DataDir)
	}
	if cfg.Backend != "memory" {
		t.Errorf("Backend = %v, want memory (env should override file)", cfg.Backend)
	}
	if cfg.IDScheme != "uuid" {
		t.Errorf("IDScheme = %v, want uuid (file should set)", cfg.IDScheme)
	}
}
