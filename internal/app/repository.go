package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/bft-labs/recipebox/internal/domain"
	"github.com/bft-labs/recipebox/internal/ports"
	"github.com/bft-labs/recipebox/pkg/log"
)

// Repository implements create, update, delete and lookup as full
// read-modify-write cycles over the Store. Nothing is cached between calls.
//
// A mutation never writes when the medium could not be read: the stored
// collection may still be there. A corrupt collection is overwritten.
type Repository struct {
	mu    sync.Mutex
	store *Store
	ids   ports.IDAllocator
}

// NewRepository creates a Repository.
func NewRepository(store *Store, ids ports.IDAllocator) *Repository {
	return &Repository{store: store, ids: ids}
}

// List returns the whole collection in stored order.
func (r *Repository) List(ctx context.Context) domain.Collection {
	return r.store.LoadAll(ctx).Recipes
}

// FindByID returns the first recipe with the given id, or domain.ErrNotFound.
func (r *Repository) FindByID(ctx context.Context, id string) (domain.Recipe, error) {
	rec, ok := r.store.LoadAll(ctx).Recipes.Find(id)
	if !ok {
		return domain.Recipe{}, domain.ErrNotFound
	}
	return rec, nil
}

// load reads the collection for a mutation. ok is false when the medium
// could not be read.
func (r *Repository) load(ctx context.Context, op string) (domain.Collection, bool) {
	res := r.store.LoadAll(ctx)
	if res.Status == LoadUnavailable {
		r.store.logger.Warn("recipes not changed",
			log.String("op", op),
			log.String("key", r.store.Key()),
			log.Err(res.Err))
		return nil, false
	}
	return res.Recipes, true
}

// Create appends a new recipe with a fresh id and returns it. A failed
// read or write is logged; the returned recipe is still the one that would
// have been stored.
func (r *Repository) Create(ctx context.Context, f domain.Fields) domain.Recipe {
	r.mu.Lock()
	defer r.mu.Unlock()

	recipes, ok := r.load(ctx, "create")
	id := r.ids.NextID()
	for recipes.Contains(id) {
		id = r.ids.NextID()
	}
	rec := domain.NewRecipe(id, f)
	if !ok {
		return rec
	}
	r.store.SaveAll(ctx, recipes.Append(rec))
	r.store.logger.Debug("recipe created", log.String("id", id))
	return rec
}

// Update replaces the mutable fields of the recipe with the given id. The
// id and the position of every recipe are preserved. Returns
// domain.ErrNotFound without writing when nothing matches.
func (r *Repository) Update(ctx context.Context, id string, f domain.Fields) (domain.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	recipes, ok := r.load(ctx, "update")
	if !ok {
		return domain.Recipe{}, fmt.Errorf("update %s: %w", id, domain.ErrUnavailable)
	}
	updated, found := recipes.Replace(id, f)
	if !found {
		return domain.Recipe{}, domain.ErrNotFound
	}
	r.store.SaveAll(ctx, updated)
	return domain.NewRecipe(id, f), nil
}

// Delete removes every recipe with the given id and reports whether one
// was removed. Deleting a missing id is a no-op.
func (r *Repository) Delete(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	recipes, ok := r.load(ctx, "delete")
	if !ok {
		return false
	}
	remaining, n := recipes.Remove(id)
	r.store.SaveAll(ctx, remaining)
	return n > 0
}
