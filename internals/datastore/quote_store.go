package datastore

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"motivaku_backend/internals/constants"
	"motivaku_backend/internals/features/quotes/model"
)

type CreateQuoteInput struct {
	Text             string
	Category         string
	Tags             []string
	IsPersonalizable bool
}

// QuoteStore is an id-keyed arena over immutable quote records.
// order keeps insertion order so listings are stable across calls.
type QuoteStore struct {
	mu     sync.RWMutex
	quotes map[string]model.QuoteModel
	order  []string
}

func NewQuoteStore() *QuoteStore {
	return &QuoteStore{
		quotes: make(map[string]model.QuoteModel),
	}
}

func (s *QuoteStore) All() []model.QuoteModel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.QuoteModel, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.quotes[id])
	}
	return out
}

// ByCategory matches the stored category exactly (case-sensitive).
// An unknown or unmatched category yields an empty slice, not an error.
func (s *QuoteStore) ByCategory(category string) []model.QuoteModel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.QuoteModel, 0)
	for _, id := range s.order {
		if q := s.quotes[id]; q.Category == category {
			out = append(out, q)
		}
	}
	return out
}

func (s *QuoteStore) ByID(id string) (model.QuoteModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.quotes[id]
	if !ok {
		return model.QuoteModel{}, ErrNotFound
	}
	return q, nil
}

func (s *QuoteStore) Create(in CreateQuoteInput) model.QuoteModel {
	q := model.QuoteModel{
		QuoteID:          uuid.NewString(),
		QuoteText:        in.Text,
		Category:         in.Category,
		Tags:             in.Tags,
		IsPersonalizable: in.IsPersonalizable,
		CreatedAt:        time.Now(),
	}
	if q.Tags == nil {
		q.Tags = []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes[q.QuoteID] = q
	s.order = append(s.order, q.QuoteID)
	return q
}

// Random picks uniformly from the quotes in the given category;
// constants.CategoryAll (or "") means the whole catalog.
func (s *QuoteStore) Random(category string) (model.QuoteModel, error) {
	var candidates []model.QuoteModel
	if category == "" || category == constants.CategoryAll {
		candidates = s.All()
	} else {
		candidates = s.ByCategory(category)
	}

	if len(candidates) == 0 {
		return model.QuoteModel{}, ErrNoCandidates
	}
	return candidates[rand.Intn(len(candidates))], nil
}
