package ports

import "context"

// KeyValue is a local key-value medium. Values are opaque bytes and are
// always read and written whole.
type KeyValue interface {
	// Get returns the value stored under key.
	// Returns domain.ErrKeyNotFound if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set overwrites the value stored under key.
	// Returns an error wrapping domain.ErrQuotaExceeded if the value does not
	// fit; the previous value is left untouched in that case.
	Set(ctx context.Context, key string, value []byte) error
}
