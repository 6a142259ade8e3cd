package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bft-labs/recipebox/internal/domain"
	"github.com/bft-labs/recipebox/internal/ports"
	"github.com/bft-labs/recipebox/pkg/log"
)

// DefaultKey is the storage key the collection lives under.
const DefaultKey = "recipes"

// LoadStatus says why LoadAll returned what it did.
type LoadStatus int

const (
	// LoadOK means the blob was present and parsed.
	LoadOK LoadStatus = iota
	// LoadAbsent means nothing, or an empty value, was stored under the key.
	LoadAbsent
	// LoadCorrupt means the blob was present but unparseable or oversized.
	LoadCorrupt
	// LoadUnavailable means the medium could not be read.
	LoadUnavailable
)

// String returns a human-readable status name.
func (s LoadStatus) String() string {
	switch s {
	case LoadOK:
		return "ok"
	case LoadAbsent:
		return "absent"
	case LoadCorrupt:
		return "corrupt"
	case LoadUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// LoadResult is the outcome of LoadAll. Recipes is empty unless Status is LoadOK.
type LoadResult struct {
	Recipes domain.Collection
	Status  LoadStatus
	Err     error
}

// SaveResult is the outcome of SaveAll. Err is nil when the write landed.
type SaveResult struct {
	Err error
}

// OK reports whether the collection was written.
func (r SaveResult) OK() bool {
	return r.Err == nil
}

// StoreConfig contains configuration for the Store.
type StoreConfig struct {
	// Key is the storage key. Defaults to DefaultKey.
	Key string

	// MaxBlobBytes rejects stored blobs larger than this on read.
	// Zero disables the check.
	MaxBlobBytes int
}

// Store reads and writes the whole collection under one key. It never
// returns an error to its caller: failures are logged and reported in the
// result values.
type Store struct {
	kv     ports.KeyValue
	key    string
	max    int
	logger ports.Logger
}

// NewStore creates a Store over kv.
func NewStore(cfg StoreConfig, kv ports.KeyValue, logger ports.Logger) *Store {
	if cfg.Key == "" {
		cfg.Key = DefaultKey
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Store{kv: kv, key: cfg.Key, max: cfg.MaxBlobBytes, logger: logger}
}

// Key returns the storage key.
func (s *Store) Key() string {
	return s.key
}

// LoadAll reads the collection.
func (s *Store) LoadAll(ctx context.Context) LoadResult {
	data, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, domain.ErrKeyNotFound) || (err == nil && len(data) == 0) {
		return LoadResult{Recipes: domain.Collection{}, Status: LoadAbsent}
	}
	if err != nil {
		s.logger.Error("error loading recipes", log.String("key", s.key), log.Err(err))
		return LoadResult{Recipes: domain.Collection{}, Status: LoadUnavailable, Err: err}
	}

	if s.max > 0 && len(data) > s.max {
		err := fmt.Errorf("blob is %d bytes, limit %d", len(data), s.max)
		s.logger.Error("error loading recipes", log.String("key", s.key), log.Err(err))
		return LoadResult{Recipes: domain.Collection{}, Status: LoadCorrupt, Err: err}
	}

	var recipes domain.Collection
	if err := json.Unmarshal(data, &recipes); err != nil {
		s.logger.Error("error loading recipes", log.String("key", s.key), log.Err(err))
		return LoadResult{Recipes: domain.Collection{}, Status: LoadCorrupt, Err: err}
	}
	if recipes == nil {
		recipes = domain.Collection{}
	}
	return LoadResult{Recipes: recipes, Status: LoadOK}
}

// SaveAll overwrites the stored collection with recipes.
func (s *Store) SaveAll(ctx context.Context, recipes domain.Collection) SaveResult {
	if recipes == nil {
		recipes = domain.Collection{}
	}
	data, err := json.Marshal(recipes)
	if err != nil {
		s.logger.Error("error saving recipes", log.String("key", s.key), log.Err(err))
		return SaveResult{Err: err}
	}
	if err := s.kv.Set(ctx, s.key, data); err != nil {
		s.logger.Error("error saving recipes", log.String("key", s.key), log.Int("bytes", len(data)), log.Err(err))
		return SaveResult{Err: err}
	}
	s.logger.Debug("recipes saved", log.String("key", s.key), log.Int("count", len(recipes)))
	return SaveResult{}
}
