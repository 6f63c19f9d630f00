// Package memory provides an in-memory Store used by tests and as a
// fallback when no data directory is configured.
package memory

import (
	"encoding/json"
	"sync"
)

// Store is a map-backed key-value store. Safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	values map[string]json.RawMessage
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{values: make(map[string]json.RawMessage)}
}

// Get returns the value for key.
func (s *Store) Get(key string) (json.RawMessage, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make(json.RawMessage, len(v))
	copy(out, v)
	return out, true, nil
}

// Set stores a copy of value under key.
func (s *Store) Set(key string, value json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make(json.RawMessage, len(value))
	copy(v, value)
	s.values[key] = v
	return nil
}

// Delete removes key.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
