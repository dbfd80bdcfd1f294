package dto

import (
	"time"

	"motivaku_backend/internals/features/quotes/model"
)

// ============================
// Response DTO
// ============================

type QuoteDTO struct {
	QuoteID          string    `json:"quote_id"`
	QuoteText        string    `json:"quote_text"`
	Category         string    `json:"category"`
	Tags             []string  `json:"tags"`
	IsPersonalizable bool      `json:"is_personalizable"`
	CreatedAt        time.Time `json:"created_at"`

	// Set on display endpoints (random, by-id): the text after token
	// substitution, so clients don't re-run it.
	PersonalizedText string `json:"personalized_text,omitempty"`
}

// ============================
// Create Request DTO
// ============================

type CreateQuoteRequest struct {
	QuoteText        string   `json:"quote_text" validate:"required,min=2"`
	Category         string   `json:"category" validate:"required,oneof=focus motivation exam slump routine growth"`
	Tags             []string `json:"tags"`
	IsPersonalizable bool     `json:"is_personalizable"`
}

// ============================
// Converter
// ============================

func ToQuoteDTO(m model.QuoteModel) QuoteDTO {
	return QuoteDTO{
		QuoteID:          m.QuoteID,
		QuoteText:        m.QuoteText,
		Category:         m.Category,
		Tags:             m.Tags,
		IsPersonalizable: m.IsPersonalizable,
		CreatedAt:        m.CreatedAt,
	}
}

func ToPersonalizedQuoteDTO(m model.QuoteModel, personalized string) QuoteDTO {
	d := ToQuoteDTO(m)
	d.PersonalizedText = personalized
	return d
}
