// Package memory provides an in-memory DocumentStore. It backs degraded-mode
// operation when the durable engine cannot open, serves as the mirror tier of
// the resilient store, and keeps tests hermetic. Data is lost on restart.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/minivyapar/vyapar_ledger/internal/apperrors"
	portsrepo "github.com/minivyapar/vyapar_ledger/internal/core/ports/repositories"
)

// Store is an in-memory document store. It is safe for concurrent use.
type Store struct {
	mu          sync.RWMutex
	collections map[string]map[string][]byte
	preferences map[string][]byte
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		collections: make(map[string]map[string][]byte),
		preferences: make(map[string][]byte),
	}
}

// Ensure Store implements the DocumentStore port.
var _ portsrepo.DocumentStore = (*Store)(nil)

// Mode always reports Degraded: nothing here survives a restart.
func (s *Store) Mode() portsrepo.StoreMode {
	return portsrepo.ModeDegraded
}

// Put inserts or updates a document, allocating an id when none is given.
func (s *Store) Put(ctx context.Context, collection, id string, data []byte) (string, error) {
	if id == "" {
		id = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	docs, ok := s.collections[collection]
	if !ok {
		docs = make(map[string][]byte)
		s.collections[collection] = docs
	}
	docs[id] = cloneBytes(data)
	return id, nil
}

// Get fetches a single document.
func (s *Store) Get(ctx context.Context, collection, id string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.collections[collection][id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return cloneBytes(data), nil
}

// GetAll returns every document in the collection, order unspecified.
func (s *Store) GetAll(ctx context.Context, collection string) ([]portsrepo.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := s.collections[collection]
	result := make([]portsrepo.Document, 0, len(docs))
	for id, data := range docs {
		result = append(result, portsrepo.Document{ID: id, Data: cloneBytes(data)})
	}
	return result, nil
}

// Delete removes a document, reporting whether it existed.
func (s *Store) Delete(ctx context.Context, collection, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, ok := s.collections[collection]
	if !ok {
		return false, nil
	}
	if _, found := docs[id]; !found {
		return false, nil
	}
	delete(docs, id)
	return true, nil
}

// GetPreference fetches a scalar preference value.
func (s *Store) GetPreference(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.preferences[key]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return cloneBytes(value), nil
}

// SetPreference overwrites a scalar preference value.
func (s *Store) SetPreference(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.preferences[key] = cloneBytes(value)
	return nil
}

// DeletePreference removes a preference key.
func (s *Store) DeletePreference(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.preferences, key)
	return nil
}

// ClearAll wipes every collection and preference.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.collections = make(map[string]map[string][]byte)
	s.preferences = make(map[string][]byte)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error {
	return nil
}

// cloneBytes copies a payload so callers cannot mutate stored data.
func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
