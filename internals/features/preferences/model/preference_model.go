package model

import "time"

// Singleton record: at most one exists per running instance.
// TargetDate is an ISO date string (YYYY-MM-DD); empty means not set.
type PreferenceModel struct {
	PreferenceID         string    `json:"preference_id"`
	Nickname             string    `json:"nickname"`
	Goal                 string    `json:"goal"`
	TargetDate           string    `json:"target_date"`
	NotificationTime     string    `json:"notification_time"`
	DarkMode             bool      `json:"dark_mode"`
	LargeText            bool      `json:"large_text"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	Streak               int       `json:"streak"`
	CreatedAt            time.Time `json:"created_at"`
}
