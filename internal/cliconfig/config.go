package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/recipebox/pkg/recipebox"
)

// Config holds CLI configuration for recipebox.
type Config struct {
	DataDir    string
	Backend    string
	DBPath     string
	StorageKey string
	IDScheme   string

	MaxBlobBytes int
	QuotaBytes   int

	Seed          bool
	RedirectDelay time.Duration
	LogLevel      string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		DataDir:       DefaultDataDir(),
		Backend:       recipebox.BackendFile,
		StorageKey:    "recipes",
		IDScheme:      recipebox.IDSchemeClock,
		MaxBlobBytes:  recipebox.DefaultMaxBlobBytes,
		Seed:          true,
		RedirectDelay: 2 * time.Second,
		LogLevel:      "info",
	}
}

// DefaultDataDir returns ~/.recipebox/data, or a relative fallback when the
// home directory is unknown.
func DefaultDataDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".recipebox", "data")
	}
	return filepath.Join(".recipebox", "data")
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.Backend == recipebox.BackendSQLite && c.DBPath == "" {
		if c.DataDir == "" {
			return fmt.Errorf("db-path is required (or data-dir)")
		}
		c.DBPath = filepath.Join(c.DataDir, "recipes.db")
	}
	if c.RedirectDelay < 0 {
		return fmt.Errorf("redirect delay must not be negative")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	lib := c.Library()
	lib.SetDefaults()
	return lib.Validate()
}

// Library converts the CLI configuration to the catalog configuration.
func (c Config) Library() recipebox.Config {
	return recipebox.Config{
		Backend:      c.Backend,
		DataDir:      c.DataDir,
		DBPath:       c.DBPath,
		Key:          c.StorageKey,
		IDScheme:     c.IDScheme,
		MaxBlobBytes: c.MaxBlobBytes,
		QuotaBytes:   c.QuotaBytes,
	}
}

// configSetter applies values only when the matching flag was not set
// explicitly on the command line.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if positive.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
