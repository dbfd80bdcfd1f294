package datastore

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"motivaku_backend/internals/features/preferences/model"
)

type SetPreferenceInput struct {
	Nickname             string
	Goal                 string
	TargetDate           string
	NotificationTime     string
	DarkMode             bool
	LargeText            bool
	NotificationsEnabled *bool // nil → default true
	Streak               int
}

// All fields optional; nil means "leave as is".
type UpdatePreferenceInput struct {
	Nickname             *string
	Goal                 *string
	TargetDate           *string
	NotificationTime     *string
	DarkMode             *bool
	LargeText            *bool
	NotificationsEnabled *bool
	Streak               *int
}

// PreferenceStore holds the single preference record of the running
// instance. Set replaces, Update merges and requires an existing record.
type PreferenceStore struct {
	mu     sync.RWMutex
	record *model.PreferenceModel
}

func NewPreferenceStore() *PreferenceStore {
	return &PreferenceStore{}
}

func (s *PreferenceStore) Get() (model.PreferenceModel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.record == nil {
		return model.PreferenceModel{}, false
	}
	return *s.record, true
}

// Set creates the record, or silently replaces an existing one — the
// settings client saves through repeated POSTs, so replace is the contract.
func (s *PreferenceStore) Set(in SetPreferenceInput) model.PreferenceModel {
	rec := model.PreferenceModel{
		PreferenceID:         uuid.NewString(),
		Nickname:             in.Nickname,
		Goal:                 in.Goal,
		TargetDate:           in.TargetDate,
		NotificationTime:     in.NotificationTime,
		DarkMode:             in.DarkMode,
		LargeText:            in.LargeText,
		NotificationsEnabled: true,
		Streak:               in.Streak,
		CreatedAt:            time.Now(),
	}
	if rec.NotificationTime == "" {
		rec.NotificationTime = "09:00"
	}
	if in.NotificationsEnabled != nil {
		rec.NotificationsEnabled = *in.NotificationsEnabled
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = &rec
	return rec
}

func (s *PreferenceStore) Update(in UpdatePreferenceInput) (model.PreferenceModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.record == nil {
		return model.PreferenceModel{}, ErrNoPreferences
	}

	if in.Nickname != nil {
		s.record.Nickname = *in.Nickname
	}
	if in.Goal != nil {
		s.record.Goal = *in.Goal
	}
	if in.TargetDate != nil {
		s.record.TargetDate = *in.TargetDate
	}
	if in.NotificationTime != nil {
		s.record.NotificationTime = *in.NotificationTime
	}
	if in.DarkMode != nil {
		s.record.DarkMode = *in.DarkMode
	}
	if in.LargeText != nil {
		s.record.LargeText = *in.LargeText
	}
	if in.NotificationsEnabled != nil {
		s.record.NotificationsEnabled = *in.NotificationsEnabled
	}
	if in.Streak != nil {
		s.record.Streak = *in.Streak
	}
	return *s.record, nil
}
