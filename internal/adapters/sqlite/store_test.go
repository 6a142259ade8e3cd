package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/bft-labs/recipebox/internal/domain"
)

func openTemp(t *testing.T, quota int) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "recipes.db"), quota)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStoreGetMissing(t *testing.T) {
	s := openTemp(t, 0)
	if _, err := s.Get(context.Background(), "recipes"); !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatalf("Get() err = %v, want ErrKeyNotFound", err)
	}
}

func TestStoreSetOverwrites(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t, 0)

	if err := s.Set(ctx, "recipes", []byte(`[1]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, "recipes", []byte(`[2]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := s.Get(ctx, "recipes")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `[2]` {
		t.Errorf("Get() = %s, want [2]", got)
	}
}

func TestStoreQuota(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t, 4)

	if err := s.Set(ctx, "k", []byte("abc")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, "k", []byte("abcdef")); !errors.Is(err, domain.ErrQuotaExceeded) {
		t.Fatalf("Set() err = %v, want ErrQuotaExceeded", err)
	}
	got, _ := s.Get(ctx, "k")
	if string(got) != "abc" {
		t.Errorf("value after rejected write = %q, want abc", got)
	}
}

func TestOpenEmptyPath(t *testing.T) {
	if _, err := Open("", 0); !errors.Is(err, domain.ErrInvalidConfig) {
		t.Fatalf("Open(\"\") err = %v, want ErrInvalidConfig", err)
	}
}
