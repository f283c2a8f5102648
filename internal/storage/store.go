package storage

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when a slot has never been written.
var ErrNotFound = errors.New("slot not found")

// Store is a key-value slot store. Values are opaque strings; callers
// decide the encoding (the users and favorites slots hold JSON).
type Store interface {
	// Get returns the value for key, or ErrNotFound.
	Get(key string) (string, error)

	// Set writes the value for key, creating the slot if needed.
	Set(key, value string) error
}

// MemoryStore is an in-process Store used by tests and as a fallback
// when no database is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.slots[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[key] = value
	return nil
}
