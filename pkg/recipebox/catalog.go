package recipebox

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/bft-labs/recipebox/internal/adapters/fs"
	"github.com/bft-labs/recipebox/internal/adapters/ids"
	"github.com/bft-labs/recipebox/internal/adapters/memory"
	"github.com/bft-labs/recipebox/internal/adapters/sqlite"
	"github.com/bft-labs/recipebox/internal/app"
	"github.com/bft-labs/recipebox/internal/domain"
	"github.com/bft-labs/recipebox/internal/ports"
	"github.com/bft-labs/recipebox/pkg/log"
)

// Re-exported domain types.
type (
	Recipe      = domain.Recipe
	Fields      = domain.Fields
	Collection  = domain.Collection
	Form        = domain.Form
	FieldErrors = domain.FieldErrors
	LoadResult  = app.LoadResult
	LoadStatus  = app.LoadStatus
	SaveResult  = app.SaveResult
)

// Load outcomes.
const (
	LoadOK          = app.LoadOK
	LoadAbsent      = app.LoadAbsent
	LoadCorrupt     = app.LoadCorrupt
	LoadUnavailable = app.LoadUnavailable
)

// Errors returned by the catalog; check with errors.Is.
var (
	ErrNotFound      = domain.ErrNotFound
	ErrKeyNotFound   = domain.ErrKeyNotFound
	ErrQuotaExceeded = domain.ErrQuotaExceeded
	ErrInvalidConfig = domain.ErrInvalidConfig
	ErrUnavailable   = domain.ErrUnavailable

	// ErrWatchUnsupported is returned by Watch for media other than files.
	ErrWatchUnsupported = errors.New("recipebox: watch requires the file backend")
)

// ParseLines splits multi-line input into trimmed, non-empty items.
func ParseLines(text string) []string { return domain.ParseLines(text) }

// JoinLines renders items as multi-line text.
func JoinLines(items []string) string { return domain.JoinLines(items) }

// FormFromRecipe renders r into editable form text.
func FormFromRecipe(r Recipe) Form { return domain.FormFromRecipe(r) }

// SampleRecipes returns the collection written by SeedIfEmpty.
func SampleRecipes() Collection { return app.SampleRecipes() }

// Catalog is a recipe catalog over one storage key. It is safe for
// concurrent use within one process.
type Catalog struct {
	config Config
	logger ports.Logger
	store  *app.Store
	seeder *app.Seeder
	repo   *app.Repository
	files  *fs.KeyFileStore
	closer io.Closer
}

// New creates a Catalog. The medium is opened immediately; nothing is read
// until the first call.
func New(cfg Config, opts ...Option) (*Catalog, error) {
	cfg.SetDefaults()

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if err := cfg.validate(o.kv == nil); err != nil {
		return nil, err
	}

	logger := o.logger
	if logger == nil {
		logger = log.NewNoopLogger()
	}

	c := &Catalog{config: cfg, logger: logger}

	kv := o.kv
	if kv == nil {
		switch cfg.Backend {
		case BackendFile:
			c.files = fs.NewKeyFileStore(cfg.DataDir, cfg.QuotaBytes)
			kv = c.files
		case BackendSQLite:
			db, err := sqlite.Open(cfg.DBPath, cfg.QuotaBytes)
			if err != nil {
				return nil, err
			}
			c.closer = db
			kv = db
		case BackendMemory:
			kv = memory.New(cfg.QuotaBytes)
		}
	}

	allocator := o.ids
	if allocator == nil {
		if cfg.IDScheme == IDSchemeUUID {
			allocator = ids.NewUUID()
		} else {
			allocator = ids.NewClock()
		}
	}

	c.store = app.NewStore(app.StoreConfig{Key: cfg.Key, MaxBlobBytes: cfg.MaxBlobBytes}, kv, logger)
	c.seeder = app.NewSeeder(c.store)
	c.repo = app.NewRepository(c.store, allocator)

	logger.Debug("catalog opened",
		log.String("backend", cfg.Backend),
		log.String("key", cfg.Key),
		log.String("id_scheme", cfg.IDScheme))
	return c, nil
}

// Config returns the effective configuration.
func (c *Catalog) Config() Config {
	return c.config
}

// Load reads the whole collection and says how it went.
func (c *Catalog) Load(ctx context.Context) LoadResult {
	return c.store.LoadAll(ctx)
}

// Save overwrites the whole collection.
func (c *Catalog) Save(ctx context.Context, recipes Collection) SaveResult {
	return c.store.SaveAll(ctx, recipes)
}

// SeedIfEmpty writes the sample recipes when the collection is empty and
// reports whether it did.
func (c *Catalog) SeedIfEmpty(ctx context.Context) bool {
	return c.seeder.SeedIfEmpty(ctx)
}

// List returns every recipe in stored order.
func (c *Catalog) List(ctx context.Context) Collection {
	return c.repo.List(ctx)
}

// Get returns the recipe with the given id, or ErrNotFound.
func (c *Catalog) Get(ctx context.Context, id string) (Recipe, error) {
	return c.repo.FindByID(ctx, id)
}

// Create stores a new recipe with a fresh id and returns it.
func (c *Catalog) Create(ctx context.Context, f Fields) Recipe {
	return c.repo.Create(ctx, f)
}

// Update replaces the fields of the recipe with the given id, or returns
// ErrNotFound without writing.
func (c *Catalog) Update(ctx context.Context, id string, f Fields) (Recipe, error) {
	return c.repo.Update(ctx, id, f)
}

// Delete removes the recipe with the given id and reports whether it existed.
func (c *Catalog) Delete(ctx context.Context, id string) bool {
	return c.repo.Delete(ctx, id)
}

// Watch calls onChange after the stored collection is rewritten by any
// process. It blocks until ctx is cancelled. Only the file backend supports
// watching.
func (c *Catalog) Watch(ctx context.Context, debounce time.Duration, onChange func()) error {
	if c.files == nil {
		return ErrWatchUnsupported
	}
	return c.files.Watch(ctx, c.config.Key, debounce, c.logger, onChange)
}

// Close releases the medium.
func (c *Catalog) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}
