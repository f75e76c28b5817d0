package history

import (
	"context"
	"sync"

	"medirisk/domain/risk"
)

// MemoryStore is the default assessment log: a bounded, newest-first ring
// held in process memory. Used when no DATABASE_URL is configured.
type MemoryStore struct {
	mu       sync.RWMutex
	entries  []*risk.Assessment
	capacity int
}

// NewMemoryStore creates a store that retains at most capacity assessments.
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = 50
	}
	return &MemoryStore{capacity: capacity}
}

// Save prepends the assessment, evicting the oldest entry past capacity.
func (s *MemoryStore) Save(ctx context.Context, assessment *risk.Assessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append([]*risk.Assessment{assessment}, s.entries...)
	if len(s.entries) > s.capacity {
		s.entries = s.entries[:s.capacity]
	}
	return nil
}

// Recent returns up to limit assessments, newest first.
func (s *MemoryStore) Recent(ctx context.Context, limit int) ([]*risk.Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.entries) {
		limit = len(s.entries)
	}
	out := make([]*risk.Assessment, limit)
	copy(out, s.entries[:limit])
	return out, nil
}

// Count returns the number of retained assessments.
func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}
