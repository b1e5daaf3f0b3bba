package store

import (
	"context"
	"sync"

	"kudi/internal/core"
)

// MemoryStore keeps the saved snapshot in memory. Used by tests and by
// ephemeral sessions that never touch disk.
type MemoryStore struct {
	mu      sync.Mutex
	records []core.Record
	saved   bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(_ context.Context, records []core.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make([]core.Record, len(records))
	copy(s.records, records)
	s.saved = true
	return nil
}

func (s *MemoryStore) Load(_ context.Context) ([]core.Record, []SkippedRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.saved {
		return nil, nil, ErrNoSavedData
	}
	out := make([]core.Record, len(s.records))
	copy(out, s.records)
	return out, nil, nil
}

var _ Store = (*MemoryStore)(nil)
