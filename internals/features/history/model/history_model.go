package model

import "time"

// ViewedAt is assigned by the store at append time, never caller-supplied.
type HistoryModel struct {
	HistoryID string    `json:"history_id"`
	QuoteID   string    `json:"quote_id"`
	ViewedAt  time.Time `json:"viewed_at"`
}
