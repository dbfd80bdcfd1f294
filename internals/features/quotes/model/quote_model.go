package model

import "time"

// Memory-resident record; rebuilt from the seed table on every start.
type QuoteModel struct {
	QuoteID          string    `json:"quote_id"`
	QuoteText        string    `json:"quote_text"`
	Category         string    `json:"category"`
	Tags             []string  `json:"tags"`
	IsPersonalizable bool      `json:"is_personalizable"`
	CreatedAt        time.Time `json:"created_at"`
}
