package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"mindwell/internal/domain"
)

func TestMoodService_Record_LabelsAndValidation(t *testing.T) {
	ctx := context.Background()

	var stored *domain.MoodEntry
	repo := &mockMoodRepo{
		addFn: func(ctx context.Context, e *domain.MoodEntry) error {
			stored = e
			return nil
		},
	}
	svc := NewMoodService(repo)

	tests := []struct {
		score     int
		wantLabel string
		wantErr   bool
	}{
		{1, "Terrible", false},
		{3, "Sad", false},
		{5, "Okay", false},
		{10, "Euphoric", false},
		{0, "", true},
		{11, "", true},
		{-1, "", true},
	}
	for _, tc := range tests {
		stored = nil
		entry, err := svc.Record(ctx, "user-1", tc.score, "  some notes  ")
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("score %d: expected ErrInvalidInput, got %v", tc.score, err)
			}
			if stored != nil {
				t.Errorf("score %d: invalid score must not be persisted", tc.score)
			}
			continue
		}
		if err != nil {
			t.Fatalf("score %d: %v", tc.score, err)
		}
		if entry.Label != tc.wantLabel {
			t.Errorf("score %d: expected label %s, got %s", tc.score, tc.wantLabel, entry.Label)
		}
		if entry.Notes != "some notes" {
			t.Errorf("score %d: expected trimmed notes, got %q", tc.score, entry.Notes)
		}
		if stored == nil || stored.ID == "" {
			t.Errorf("score %d: expected persisted entry with id", tc.score)
		}
	}
}

func entriesForScores(scores []int, base time.Time) []domain.MoodEntry {
	out := make([]domain.MoodEntry, 0, len(scores))
	for i, sc := range scores {
		label, _ := domain.LabelForScore(sc)
		out = append(out, domain.MoodEntry{
			ID:        "e",
			UserID:    "user-1",
			Score:     sc,
			Label:     label,
			CreatedAt: base.Add(time.Duration(i) * 24 * time.Hour),
		})
	}
	return out
}

func TestMoodService_Insights_Average(t *testing.T) {
	// Three consecutive days within the last 30 days.
	base := time.Now().AddDate(0, 0, -3)
	repo := &mockMoodRepo{
		sinceFn: func(ctx context.Context, userID string, since time.Time) ([]domain.MoodEntry, error) {
			return entriesForScores([]int{3, 3, 7}, base), nil
		},
	}
	svc := NewMoodService(repo)

	ins, err := svc.Insights(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ins.Count != 3 {
		t.Errorf("expected count 3, got %d", ins.Count)
	}
	if ins.Average != 4.3 {
		t.Errorf("expected average 4.3, got %v", ins.Average)
	}
	if ins.MostCommonLabel != "Sad" {
		t.Errorf("expected most common label Sad, got %s", ins.MostCommonLabel)
	}
}

func TestMoodService_Insights_TieBreakFirstEncountered(t *testing.T) {
	base := time.Now().AddDate(0, 0, -2)
	repo := &mockMoodRepo{
		sinceFn: func(ctx context.Context, userID string, since time.Time) ([]domain.MoodEntry, error) {
			// One each of Sad (3) and Great (7): first-encountered wins.
			return entriesForScores([]int{3, 7}, base), nil
		},
	}
	svc := NewMoodService(repo)

	ins, err := svc.Insights(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ins.MostCommonLabel != "Sad" {
		t.Errorf("expected tie-break to pick Sad, got %s", ins.MostCommonLabel)
	}
	if len(ins.Distribution) != 2 || ins.Distribution[0].Label != "Sad" {
		t.Errorf("expected distribution in first-encountered order, got %+v", ins.Distribution)
	}
}

func TestMoodService_Insights_Empty(t *testing.T) {
	svc := NewMoodService(&mockMoodRepo{})

	ins, err := svc.Insights(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ins.Count != 0 || ins.Average != 0 || ins.MostCommonLabel != "" {
		t.Errorf("expected zero-valued insights, got %+v", ins)
	}
}

func TestMoodService_Insights_MonthlyBoundary(t *testing.T) {
	now := time.Now()
	year, month, _ := now.Date()
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())

	label3, _ := domain.LabelForScore(3)
	label9, _ := domain.LabelForScore(9)
	entries := []domain.MoodEntry{
		// Before this calendar month: excluded from the monthly average.
		{Score: 9, Label: label9, CreatedAt: monthStart.Add(-time.Hour)},
		{Score: 3, Label: label3, CreatedAt: monthStart.Add(time.Hour)},
		{Score: 3, Label: label3, CreatedAt: monthStart.Add(2 * time.Hour)},
	}
	repo := &mockMoodRepo{
		sinceFn: func(ctx context.Context, userID string, since time.Time) ([]domain.MoodEntry, error) {
			return entries, nil
		},
	}
	svc := NewMoodService(repo)

	ins, err := svc.Insights(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ins.Average != 5.0 {
		t.Errorf("expected 30-day average 5.0, got %v", ins.Average)
	}
	if ins.MonthlyAverage != 3.0 {
		t.Errorf("expected monthly average 3.0, got %v", ins.MonthlyAverage)
	}
}
