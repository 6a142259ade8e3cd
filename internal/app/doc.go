// Package app holds the catalog core: the Store that persists the whole
// collection as one blob, the Seeder, and the Repository operations built
// on top of them. It depends only on internal/domain and internal/ports.
package app
