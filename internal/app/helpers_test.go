package app

import (
	"strconv"
	"sync"

	"github.com/bft-labs/recipebox/internal/adapters/memory"
	"github.com/bft-labs/recipebox/internal/ports"
)

// recordingLogger keeps error messages for assertions.
type recordingLogger struct {
	mu     sync.Mutex
	errors []string
}

func (*recordingLogger) Debug(msg string, fields ...ports.Field) {}
func (*recordingLogger) Info(msg string, fields ...ports.Field)  {}
func (*recordingLogger) Warn(msg string, fields ...ports.Field)  {}
func (l *recordingLogger) Error(msg string, fields ...ports.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}

func (l *recordingLogger) Errors() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string{}, l.errors...)
}

// sequenceIDs hands out the given ids in order, then counts upward.
type sequenceIDs struct {
	ids  []string
	next int
}

func (s *sequenceIDs) NextID() string {
	if len(s.ids) > 0 {
		id := s.ids[0]
		s.ids = s.ids[1:]
		return id
	}
	s.next++
	return "gen-" + strconv.Itoa(s.next)
}

func newTestStore(quota int) (*Store, *memory.Store, *recordingLogger) {
	kv := memory.New(quota)
	logger := &recordingLogger{}
	return NewStore(StoreConfig{}, kv, logger), kv, logger
}
