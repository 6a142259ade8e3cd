package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with TOML-friendly types.
type FileConfig struct {
	DataDir       string `toml:"data_dir"`
	Backend       string `toml:"backend"`
	DBPath        string `toml:"db_path"`
	StorageKey    string `toml:"storage_key"`
	IDScheme      string `toml:"id_scheme"`
	MaxBlobBytes  int    `toml:"max_blob_bytes"`
	QuotaBytes    int    `toml:"quota_bytes"`
	Seed          *bool  `toml:"seed"`
	RedirectDelay string `toml:"redirect_delay"`
	LogLevel      string `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.recipebox/config.toml, or "" if the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".recipebox", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to cfg, skipping
// values whose flag was set explicitly.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("data-dir", fc.DataDir, &cfg.DataDir)
	s.setString("backend", fc.Backend, &cfg.Backend)
	s.setString("db-path", fc.DBPath, &cfg.DBPath)
	s.setString("storage-key", fc.StorageKey, &cfg.StorageKey)
	s.setString("id-scheme", fc.IDScheme, &cfg.IDScheme)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setInt("max-blob-bytes", fc.MaxBlobBytes, &cfg.MaxBlobBytes)
	s.setInt("quota-bytes", fc.QuotaBytes, &cfg.QuotaBytes)

	if err := s.setDuration("redirect-delay", fc.RedirectDelay, &cfg.RedirectDelay); err != nil {
		return err
	}

	s.setBool("seed", fc.Seed, &cfg.Seed)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
