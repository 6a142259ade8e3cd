// Package recipebox provides an embeddable recipe catalog persisted in a
// local key-value medium.
//
// The whole collection lives under one storage key as a single JSON array.
// Every mutation loads the collection, changes a copy and writes it back, so
// any UI (terminal, web, desktop) can drive the catalog through the small
// synchronous API on [Catalog].
//
// # Basic Usage
//
//	cfg := recipebox.Config{
//	    Backend: recipebox.BackendFile,
//	    DataDir: "/path/to/data",
//	}
//
//	cat, err := recipebox.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer cat.Close()
//
//	ctx := context.Background()
//	cat.SeedIfEmpty(ctx)
//	for _, r := range cat.List(ctx) {
//	    fmt.Println(r.ID, r.Title)
//	}
//
// # Storage Backends
//
//   - [BackendFile]: one JSON file per key under DataDir, written atomically
//   - [BackendSQLite]: a kv table in a SQLite database at DBPath
//   - [BackendMemory]: process memory, for tests and throwaway sessions
//
// A custom medium can be supplied with [WithKeyValue].
//
// # Failure Model
//
// Storage failures never surface as errors from the mutation methods.
// They are logged through the configured [log.Logger] and reported by
// [Catalog.Load] and [Catalog.Save] as [LoadResult] and [SaveResult].
// Lookups of a missing id return [ErrNotFound].
package recipebox
