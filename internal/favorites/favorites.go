// Package favorites manages the persisted set of saved property ids.
package favorites

import (
	"encoding/json"
	"errors"

	"homenest/server/internal/storage"

	"github.com/sirupsen/logrus"
)

// Slot is the storage key holding the JSON array of property ids.
const Slot = "homenest_favorites"

// Set is the favorites set for one profile, backed by a storage slot.
type Set struct {
	store  storage.Store
	logger *logrus.Logger
}

func NewSet(store storage.Store, logger *logrus.Logger) *Set {
	if logger == nil {
		logger = logrus.New()
	}
	return &Set{store: store, logger: logger}
}

// List returns the saved ids in insertion order. A missing or
// corrupted slot reads as empty.
func (s *Set) List() []int64 {
	raw, err := s.store.Get(Slot)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.WithError(err).Error("Failed to read favorites slot")
		}
		return []int64{}
	}

	var ids []int64
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.logger.WithError(err).Warn("Favorites slot is corrupted, treating as empty")
		return []int64{}
	}
	return ids
}

// Toggle adds id when absent and removes it when present, returning
// whether the id is saved afterwards.
func (s *Set) Toggle(id int64) (bool, error) {
	ids := s.List()
	for i, existing := range ids {
		if existing == id {
			return false, s.save(append(ids[:i], ids[i+1:]...))
		}
	}
	return true, s.save(append(ids, id))
}

// Contains reports whether id is saved.
func (s *Set) Contains(id int64) bool {
	for _, existing := range s.List() {
		if existing == id {
			return true
		}
	}
	return false
}

func (s *Set) save(ids []int64) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return s.store.Set(Slot, string(raw))
}
