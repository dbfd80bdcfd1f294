package service_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	prefModel "motivaku_backend/internals/features/preferences/model"
	"motivaku_backend/internals/features/quotes/service"
)

func TestPersonalizeNameAndGoal(t *testing.T) {
	prefs := &prefModel.PreferenceModel{Nickname: "Kim", Goal: "pass exam"}

	got := service.Personalize("Hi {name}, goal: {goal}", prefs)
	require.Equal(t, "Hi Kim, goal: pass exam", got)
}

func TestPersonalizeReplacesEveryOccurrence(t *testing.T) {
	prefs := &prefModel.PreferenceModel{Nickname: "Kim"}

	got := service.Personalize("{name}, {name}!", prefs)
	require.Equal(t, "Kim, Kim!", got)
}

func TestPersonalizeNilPreferences(t *testing.T) {
	got := service.Personalize("Hi {name}", nil)
	require.Equal(t, "Hi {name}", got)
}

func TestPersonalizeEmptyFieldsLeaveTokens(t *testing.T) {
	prefs := &prefModel.PreferenceModel{Goal: "pass exam"}

	got := service.Personalize("Hi {name}, goal: {goal}", prefs)
	require.Equal(t, "Hi {name}, goal: pass exam", got)
}

func TestPersonalizeDaysLeft(t *testing.T) {
	target := time.Now().AddDate(0, 0, 5).Format("2006-01-02")
	prefs := &prefModel.PreferenceModel{TargetDate: target}

	got := service.Personalize("{days_left} days left", prefs)
	require.Equal(t, "5 days left", got)
}

func TestPersonalizeBadDateLeavesToken(t *testing.T) {
	prefs := &prefModel.PreferenceModel{TargetDate: "someday"}

	got := service.Personalize("{days_left} days left", prefs)
	require.Equal(t, "{days_left} days left", got)
}

func TestDaysLeft(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)

	cases := []struct {
		date string
		want int
	}{
		{"2026-09-06", 5},
		{"2026-09-02", 1},
		{"2026-09-01", 0},  // today rounds up to zero
		{"2026-08-31", -1}, // past dates go negative, no clamping
		{"2026-08-25", -7},
	}
	for _, tc := range cases {
		t.Run(tc.date, func(t *testing.T) {
			got, ok := service.DaysLeft(tc.date, now)
			require.True(t, ok)
			require.Equal(t, tc.want, got, fmt.Sprintf("days left until %s", tc.date))
		})
	}
}

func TestDaysLeftUnparseable(t *testing.T) {
	_, ok := service.DaysLeft("19th of November", time.Now())
	require.False(t, ok)
}
