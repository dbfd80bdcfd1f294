package dto

import (
	"time"

	"motivaku_backend/internals/features/favorites/model"
	quoteDTO "motivaku_backend/internals/features/quotes/dto"
	quoteModel "motivaku_backend/internals/features/quotes/model"
)

// ============================
// Response DTO
// ============================

// Quote is the joined record; null when the reference dangles.
type FavoriteDTO struct {
	FavoriteID string             `json:"favorite_id"`
	QuoteID    string             `json:"quote_id"`
	CreatedAt  time.Time          `json:"created_at"`
	Quote      *quoteDTO.QuoteDTO `json:"quote"`
}

// ============================
// Create Request DTO
// ============================

type CreateFavoriteRequest struct {
	QuoteID string `json:"quote_id" validate:"required,uuid4"`
}

// ============================
// Converters
// ============================

func ToFavoriteDTO(m model.FavoriteModel) FavoriteDTO {
	return FavoriteDTO{
		FavoriteID: m.FavoriteID,
		QuoteID:    m.QuoteID,
		CreatedAt:  m.CreatedAt,
	}
}

func ToFavoriteWithQuoteDTO(m model.FavoriteModel, q *quoteModel.QuoteModel) FavoriteDTO {
	d := ToFavoriteDTO(m)
	if q != nil {
		joined := quoteDTO.ToQuoteDTO(*q)
		d.Quote = &joined
	}
	return d
}
