package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Maoxiaogui/lvyouzhinan/internal/domain"
)

// MemStore is an in-memory Store. Values round-trip through the same JSON
// envelope as the Postgres store, so tests exercise real serialization
// rather than sharing pointers with the caller.
type MemStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{docs: make(map[string][]byte)}
}

// Save replaces the document under key.
func (s *MemStore) Save(ctx context.Context, key string, value any) error {
	doc, err := seal(value)
	if err != nil {
		return fmt.Errorf("repo.MemStore.Save: %w: %v", domain.ErrPersistence, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[key] = doc
	return nil
}

// Load decodes the document under key into dest; absent keys leave dest untouched.
func (s *MemStore) Load(ctx context.Context, key string, dest any) error {
	s.mu.RLock()
	raw, ok := s.docs[key]
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	if err := unseal(raw, dest); err != nil {
		if errors.Is(err, domain.ErrPersistence) {
			return fmt.Errorf("repo.MemStore.Load: %w", err)
		}
		return fmt.Errorf("repo.MemStore.Load: %w: %v", domain.ErrPersistence, err)
	}
	return nil
}

// compile-time check: MemStore must satisfy Store.
var _ Store = (*MemStore)(nil)
