package datastore

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"motivaku_backend/internals/features/favorites/model"
)

// FavoriteStore keeps entries in insertion order and enforces at most
// one favorite per quote: re-adding returns the existing entry.
type FavoriteStore struct {
	mu      sync.RWMutex
	entries []model.FavoriteModel
}

func NewFavoriteStore() *FavoriteStore {
	return &FavoriteStore{}
}

func (s *FavoriteStore) All() []model.FavoriteModel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.FavoriteModel, len(s.entries))
	copy(out, s.entries)
	return out
}

// Add does not check that quoteID refers to a live quote — the reference
// is weak and listings tolerate dangling ids.
func (s *FavoriteStore) Add(quoteID string) model.FavoriteModel {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.QuoteID == quoteID {
			return e
		}
	}

	entry := model.FavoriteModel{
		FavoriteID: uuid.NewString(),
		QuoteID:    quoteID,
		CreatedAt:  time.Now(),
	}
	s.entries = append(s.entries, entry)
	return entry
}

// Remove deletes the entry referencing quoteID; no-op when absent.
func (s *FavoriteStore) Remove(quoteID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.QuoteID == quoteID {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}
