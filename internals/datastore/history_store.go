package datastore

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"motivaku_backend/internals/features/history/model"
)

// HistoryStore is an append-only view log. Entries carry store-assigned
// ViewedAt timestamps, so append order is chronological and ties resolve
// to insertion order.
type HistoryStore struct {
	mu      sync.RWMutex
	entries []model.HistoryModel
}

func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// All returns the full log newest-first.
func (s *HistoryStore) All() []model.HistoryModel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.HistoryModel, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		out = append(out, s.entries[i])
	}
	return out
}

// Add appends unconditionally — repeated views of the same quote each
// produce a distinct entry.
func (s *HistoryStore) Add(quoteID string) model.HistoryModel {
	entry := model.HistoryModel{
		HistoryID: uuid.NewString(),
		QuoteID:   quoteID,
		ViewedAt:  time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return entry
}

func (s *HistoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}
