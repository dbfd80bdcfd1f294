package dto

import (
	"time"

	"motivaku_backend/internals/features/history/model"
	quoteDTO "motivaku_backend/internals/features/quotes/dto"
	quoteModel "motivaku_backend/internals/features/quotes/model"
)

// ============================
// Response DTO
// ============================

type HistoryDTO struct {
	HistoryID string             `json:"history_id"`
	QuoteID   string             `json:"quote_id"`
	ViewedAt  time.Time          `json:"viewed_at"`
	Quote     *quoteDTO.QuoteDTO `json:"quote"`
}

// ============================
// Create Request DTO
// ============================

type CreateHistoryRequest struct {
	QuoteID string `json:"quote_id" validate:"required,uuid4"`
}

// ============================
// Converters
// ============================

func ToHistoryDTO(m model.HistoryModel) HistoryDTO {
	return HistoryDTO{
		HistoryID: m.HistoryID,
		QuoteID:   m.QuoteID,
		ViewedAt:  m.ViewedAt,
	}
}

func ToHistoryWithQuoteDTO(m model.HistoryModel, q *quoteModel.QuoteModel) HistoryDTO {
	d := ToHistoryDTO(m)
	if q != nil {
		joined := quoteDTO.ToQuoteDTO(*q)
		d.Quote = &joined
	}
	return d
}
