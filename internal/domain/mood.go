package domain

import (
	"context"
	"time"
)

// moodLabels maps scores 1..10 to their fixed labels, index 0 = score 1.
var moodLabels = [10]string{
	"Terrible",
	"Bad",
	"Sad",
	"Meh",
	"Okay",
	"Good",
	"Great",
	"Excellent",
	"Amazing",
	"Euphoric",
}

// LabelForScore returns the label for an integer mood score.
// ok is false for scores outside 1..10.
func LabelForScore(score int) (label string, ok bool) {
	if score < 1 || score > 10 {
		return "", false
	}
	return moodLabels[score-1], true
}

// MoodEntry is a single mood observation. Entries are immutable once
// recorded.
type MoodEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Score     int       `json:"score"`
	Label     string    `json:"label"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// MoodRepository is the port for mood persistence.
type MoodRepository interface {
	AddMoodEntry(ctx context.Context, e *MoodEntry) error
	// ListRecentMoodEntries returns up to limit entries, newest first.
	ListRecentMoodEntries(ctx context.Context, userID string, limit int) ([]MoodEntry, error)
	// ListMoodEntriesSince returns entries at or after since, oldest first.
	ListMoodEntriesSince(ctx context.Context, userID string, since time.Time) ([]MoodEntry, error)
}
