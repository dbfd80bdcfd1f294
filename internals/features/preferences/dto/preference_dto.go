package dto

import (
	"time"

	"motivaku_backend/internals/datastore"
	"motivaku_backend/internals/features/preferences/model"
)

// ============================
// Response DTO
// ============================

type PreferenceDTO struct {
	PreferenceID         string    `json:"preference_id"`
	Nickname             string    `json:"nickname"`
	Goal                 string    `json:"goal"`
	TargetDate           string    `json:"target_date,omitempty"`
	NotificationTime     string    `json:"notification_time"`
	DarkMode             bool      `json:"dark_mode"`
	LargeText            bool      `json:"large_text"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	Streak               int       `json:"streak"`
	CreatedAt            time.Time `json:"created_at"`
}

// Summary for the personalization bar: days_left is null until a
// target date is set; the value is the engine's raw count, unclamped.
type PreferenceSummaryDTO struct {
	Nickname   string `json:"nickname"`
	Goal       string `json:"goal"`
	TargetDate string `json:"target_date,omitempty"`
	DaysLeft   *int   `json:"days_left"`
	Streak     int    `json:"streak"`
}

// ============================
// Request DTOs
// ============================

type SetPreferenceRequest struct {
	Nickname             string `json:"nickname" validate:"required,min=1,max=50"`
	Goal                 string `json:"goal" validate:"required,min=1,max=200"`
	TargetDate           string `json:"target_date" validate:"omitempty,datetime=2006-01-02"`
	NotificationTime     string `json:"notification_time" validate:"omitempty,datetime=15:04"`
	DarkMode             bool   `json:"dark_mode"`
	LargeText            bool   `json:"large_text"`
	NotificationsEnabled *bool  `json:"notifications_enabled"`
	Streak               int    `json:"streak" validate:"gte=0"`
}

type UpdatePreferenceRequest struct {
	Nickname             *string `json:"nickname" validate:"omitempty,min=1,max=50"`
	Goal                 *string `json:"goal" validate:"omitempty,min=1,max=200"`
	TargetDate           *string `json:"target_date" validate:"omitempty,datetime=2006-01-02"`
	NotificationTime     *string `json:"notification_time" validate:"omitempty,datetime=15:04"`
	DarkMode             *bool   `json:"dark_mode"`
	LargeText            *bool   `json:"large_text"`
	NotificationsEnabled *bool   `json:"notifications_enabled"`
	Streak               *int    `json:"streak" validate:"omitempty,gte=0"`
}

// ============================
// Converters
// ============================

func ToPreferenceDTO(m model.PreferenceModel) PreferenceDTO {
	return PreferenceDTO{
		PreferenceID:         m.PreferenceID,
		Nickname:             m.Nickname,
		Goal:                 m.Goal,
		TargetDate:           m.TargetDate,
		NotificationTime:     m.NotificationTime,
		DarkMode:             m.DarkMode,
		LargeText:            m.LargeText,
		NotificationsEnabled: m.NotificationsEnabled,
		Streak:               m.Streak,
		CreatedAt:            m.CreatedAt,
	}
}

func (r SetPreferenceRequest) ToInput() datastore.SetPreferenceInput {
	return datastore.SetPreferenceInput{
		Nickname:             r.Nickname,
		Goal:                 r.Goal,
		TargetDate:           r.TargetDate,
		NotificationTime:     r.NotificationTime,
		DarkMode:             r.DarkMode,
		LargeText:            r.LargeText,
		NotificationsEnabled: r.NotificationsEnabled,
		Streak:               r.Streak,
	}
}

func (r UpdatePreferenceRequest) ToInput() datastore.UpdatePreferenceInput {
	return datastore.UpdatePreferenceInput{
		Nickname:             r.Nickname,
		Goal:                 r.Goal,
		TargetDate:           r.TargetDate,
		NotificationTime:     r.NotificationTime,
		DarkMode:             r.DarkMode,
		LargeText:            r.LargeText,
		NotificationsEnabled: r.NotificationsEnabled,
		Streak:               r.Streak,
	}
}
