// Package ports defines the interfaces that connect the catalog core to
// infrastructure adapters.
//
// # Port Interfaces
//
//   - [KeyValue]: A local key-value medium holding opaque blobs
//   - [IDAllocator]: Produces identifiers for newly created recipes
//   - [Logger]: Structured logging abstraction
//
// The application layer (internal/app) depends only on these interfaces.
// Adapters under internal/adapters implement them with a directory of
// files, a SQLite table, an in-memory map, the wall clock, or UUIDs.
package ports
