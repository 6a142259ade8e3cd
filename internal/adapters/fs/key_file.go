package fs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/bft-labs/recipebox/internal/domain"
)

const keyFileExt = ".json"

// KeyFileStore implements ports.KeyValue with one file per key inside dir.
type KeyFileStore struct {
	dir   string
	quota int
}

// NewKeyFileStore creates a KeyFileStore rooted at dir. A positive quota
// caps the size of any single value in bytes.
func NewKeyFileStore(dir string, quota int) *KeyFileStore {
	return &KeyFileStore{dir: dir, quota: quota}
}

// Get reads the value stored under key.
// Returns domain.ErrKeyNotFound if no file exists for the key.
func (s *KeyFileStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrKeyNotFound
		}
		return nil, err
	}
	return data, nil
}

// Set replaces the value stored under key. The write goes to a temp file
// that is renamed over the old one, so readers never see a partial value.
func (s *KeyFileStore) Set(ctx context.Context, key string, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if s.quota > 0 && len(value) > s.quota {
		return fmt.Errorf("set %s: %d bytes over %d byte quota: %w", key, len(value), s.quota, domain.ErrQuotaExceeded)
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return atomic.WriteFile(s.Path(key), bytes.NewReader(value))
}

// Dir returns the directory holding the key files.
func (s *KeyFileStore) Dir() string {
	return s.dir
}

// Path returns the file backing key.
func (s *KeyFileStore) Path(key string) string {
	return filepath.Join(s.dir, key+keyFileExt)
}

func checkKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("invalid key %q", key)
	}
	return nil
}
