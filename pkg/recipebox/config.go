package recipebox

import (
	"fmt"
	"path/filepath"

	"github.com/bft-labs/recipebox/internal/app"
	"github.com/bft-labs/recipebox/internal/domain"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Identifier schemes.
const (
	IDSchemeClock = "clock"
	IDSchemeUUID  = "uuid"
)

// DefaultMaxBlobBytes mirrors the usual per-origin browser storage quota.
const DefaultMaxBlobBytes = 5 << 20

// Config holds the configuration for a Catalog.
// Use SetDefaults to fill unset fields.
type Config struct {
	// Backend selects the key-value medium. Default: BackendFile.
	Backend string

	// DataDir holds the key files of BackendFile. Required for that backend.
	DataDir string

	// DBPath is the SQLite database file. Default: DataDir/recipes.db.
	DBPath string

	// Key is the storage key of the collection. Default: "recipes".
	Key string

	// IDScheme selects the identifier allocator. Default: IDSchemeClock.
	IDScheme string

	// MaxBlobBytes makes larger stored blobs load as corrupt.
	// Default: DefaultMaxBlobBytes. Negative disables the check.
	MaxBlobBytes int

	// QuotaBytes rejects writes larger than this. Zero means unlimited.
	QuotaBytes int
}

// SetDefaults fills unset fields with their defaults.
func (c *Config) SetDefaults() {
	if c.Backend == "" {
		c.Backend = BackendFile
	}
	if c.Key == "" {
		c.Key = app.DefaultKey
	}
	if c.IDScheme == "" {
		c.IDScheme = IDSchemeClock
	}
	if c.MaxBlobBytes == 0 {
		c.MaxBlobBytes = DefaultMaxBlobBytes
	}
	if c.Backend == BackendSQLite && c.DBPath == "" && c.DataDir != "" {
		c.DBPath = filepath.Join(c.DataDir, "recipes.db")
	}
}

// Validate checks the configuration. Call SetDefaults first.
func (c Config) Validate() error {
	return c.validate(true)
}

// validate skips the backend checks when a custom medium replaces it.
func (c Config) validate(backend bool) error {
	if backend {
		if err := c.validateBackend(); err != nil {
			return err
		}
	}

	switch c.IDScheme {
	case IDSchemeClock, IDSchemeUUID:
	default:
		return fmt.Errorf("%w: unknown id scheme %q", domain.ErrInvalidConfig, c.IDScheme)
	}

	if c.QuotaBytes < 0 {
		return fmt.Errorf("%w: quota must not be negative", domain.ErrInvalidConfig)
	}
	return nil
}

func (c Config) validateBackend() error {
	switch c.Backend {
	case BackendFile:
		if c.DataDir == "" {
			return fmt.Errorf("%w: data dir is required for the file backend", domain.ErrInvalidConfig)
		}
	case BackendSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("%w: db path (or data dir) is required for the sqlite backend", domain.ErrInvalidConfig)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("%w: unknown backend %q", domain.ErrInvalidConfig, c.Backend)
	}
	return nil
}
