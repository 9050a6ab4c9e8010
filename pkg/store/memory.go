package store

import (
	"context"
	"sort"
	"sync"

	"github.com/palletlab/warevis/pkg/observability"
)

// MemoryStore is an in-process store for development and testing.
// Safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

// Get retrieves a record by warehouse ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	observability.Store().OnStoreGet(ctx, "memory", ok)
	if !ok {
		return Record{}, notFound(id)
	}
	return rec, nil
}

// Set stores a record, replacing any existing record with the same ID.
func (s *MemoryStore) Set(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.records[rec.ID]; ok {
		rec.CreatedAt = old.CreatedAt
	}
	s.records[rec.ID] = rec
	observability.Store().OnStoreSet(ctx, "memory", 0)
	return nil
}

// Delete removes a record.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return notFound(id)
	}
	delete(s.records, id)
	observability.Store().OnStoreDelete(ctx, "memory")
	return nil
}

// List returns the IDs of all stored warehouses, sorted.
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Close does nothing for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
