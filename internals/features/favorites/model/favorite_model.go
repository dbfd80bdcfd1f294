package model

import "time"

// QuoteID is a weak reference: the quote may have been created and
// listed before this entry, but nothing cascades on either side.
type FavoriteModel struct {
	FavoriteID string    `json:"favorite_id"`
	QuoteID    string    `json:"quote_id"`
	CreatedAt  time.Time `json:"created_at"`
}
