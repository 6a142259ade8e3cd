// Package memory implements the key-value port in process memory.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/bft-labs/recipebox/internal/domain"
)

// Store is a map-backed key-value medium. It is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	data   map[string][]byte
	quota  int
	writes int

	// FailReads makes the next Get calls fail with the given error, then
	// clears itself after FailReadsN calls (zero means every call).
	FailReads  error
	FailReadsN int

	// FailWrites makes every Set fail with the given error. Tests use it to
	// simulate an unavailable medium.
	FailWrites error
}

// New creates an empty Store. A positive quota caps the size of any single
// value in bytes.
func New(quota int) *Store {
	return &Store{data: make(map[string][]byte), quota: quota}
}

// Get returns a copy of the value stored under key, or domain.ErrKeyNotFound.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.FailReads; err != nil {
		if s.FailReadsN > 0 {
			s.FailReadsN--
			if s.FailReadsN == 0 {
				s.FailReads = nil
			}
		}
		return nil, err
	}
	v, ok := s.data[key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set stores a copy of value under key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites != nil {
		return s.FailWrites
	}
	if s.quota > 0 && len(value) > s.quota {
		return fmt.Errorf("set %s: %d bytes over %d byte quota: %w", key, len(value), s.quota, domain.ErrQuotaExceeded)
	}
	s.data[key] = append([]byte(nil), value...)
	s.writes++
	return nil
}

// Writes returns the number of successful Set calls.
func (s *Store) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// Len returns how many keys currently hold a value.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
