package service

import (
	"math"
	"strconv"
	"strings"
	"time"

	prefModel "motivaku_backend/internals/features/preferences/model"
)

// Recognized placeholder tokens. Matching is exact and literal; there is
// no escaping support.
const (
	TokenName     = "{name}"
	TokenGoal     = "{goal}"
	TokenDaysLeft = "{days_left}"
)

// Personalize substitutes the recognized tokens in text using the given
// preferences. A nil record leaves the text untouched, as does any token
// whose source value is empty or unparseable.
func Personalize(text string, prefs *prefModel.PreferenceModel) string {
	if prefs == nil {
		return text
	}

	out := text
	if prefs.Nickname != "" {
		out = strings.ReplaceAll(out, TokenName, prefs.Nickname)
	}
	if prefs.Goal != "" {
		out = strings.ReplaceAll(out, TokenGoal, prefs.Goal)
	}
	if prefs.TargetDate != "" {
		if days, ok := DaysLeft(prefs.TargetDate, time.Now()); ok {
			out = strings.ReplaceAll(out, TokenDaysLeft, strconv.Itoa(days))
		}
	}
	return out
}

// DaysLeft is the number of whole days from now until the ISO date
// (YYYY-MM-DD), rounded up. Past dates give zero or negative values,
// never clamped. Returns ok=false when the date does not parse.
func DaysLeft(isoDate string, now time.Time) (int, bool) {
	target, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return 0, false
	}
	diff := target.Sub(now.UTC())
	return int(math.Ceil(diff.Hours() / 24)), true
}
