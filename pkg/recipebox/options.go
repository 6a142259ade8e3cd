package recipebox

import (
	"github.com/bft-labs/recipebox/internal/ports"
	"github.com/bft-labs/recipebox/pkg/log"
)

// KeyValue is a local key-value medium. Get must return an error wrapping
// ErrKeyNotFound for an absent key.
type KeyValue = ports.KeyValue

// IDAllocator produces identifiers for new recipes.
type IDAllocator = ports.IDAllocator

// Option configures optional behavior of a Catalog.
type Option func(*options)

type options struct {
	logger log.Logger
	kv     KeyValue
	ids    IDAllocator
}

// WithLogger sets the logger. Without it nothing is logged.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithKeyValue replaces the configured backend with a custom medium.
func WithKeyValue(kv KeyValue) Option {
	return func(o *options) {
		o.kv = kv
	}
}

// WithIDAllocator replaces the configured identifier scheme.
func WithIDAllocator(ids IDAllocator) Option {
	return func(o *options) {
		o.ids = ids
	}
}
