package datastore

import (
	"motivaku_backend/internals/seeds"
)

// MemStore bundles all in-memory stores behind one explicitly
// constructed object. It is built once in main and injected into the
// controllers; state lives for the process lifetime only and is rebuilt
// from the seed table on every start.
type MemStore struct {
	Quotes      *QuoteStore
	Preferences *PreferenceStore
	Favorites   *FavoriteStore
	History     *HistoryStore
}

func New() *MemStore {
	s := &MemStore{
		Quotes:      NewQuoteStore(),
		Preferences: NewPreferenceStore(),
		Favorites:   NewFavoriteStore(),
		History:     NewHistoryStore(),
	}

	for _, seed := range seeds.QuoteSeeds() {
		s.Quotes.Create(CreateQuoteInput{
			Text:             seed.Text,
			Category:         seed.Category,
			Tags:             seed.Tags,
			IsPersonalizable: seed.IsPersonalizable,
		})
	}
	return s
}
