package app

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"mindwell/internal/domain"

	"github.com/google/uuid"
)

// MoodService encapsulates mood-logging use cases. Callers are responsible
// for running profile bootstrap before Record.
type MoodService struct {
	repo domain.MoodRepository
}

// NewMoodService creates a MoodService backed by the given repository.
func NewMoodService(repo domain.MoodRepository) *MoodService {
	return &MoodService{repo: repo}
}

// Record validates and stores a mood observation.
func (s *MoodService) Record(ctx context.Context, userID string, score int, notes string) (*domain.MoodEntry, error) {
	label, ok := domain.LabelForScore(score)
	if !ok {
		return nil, fmt.Errorf("%w: mood score must be an integer between 1 and 10", ErrInvalidInput)
	}
	e := &domain.MoodEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Score:     score,
		Label:     label,
		Notes:     strings.TrimSpace(notes),
		CreatedAt: time.Now(),
	}
	if err := s.repo.AddMoodEntry(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// ListRecent returns up to limit entries, newest first.
func (s *MoodService) ListRecent(ctx context.Context, userID string, limit int) ([]domain.MoodEntry, error) {
	return s.repo.ListRecentMoodEntries(ctx, userID, limit)
}

// ListSince returns entries at or after since, oldest first.
func (s *MoodService) ListSince(ctx context.Context, userID string, since time.Time) ([]domain.MoodEntry, error) {
	return s.repo.ListMoodEntriesSince(ctx, userID, since)
}

// LabelCount is one label's tally within MoodInsights, in first-encountered
// order.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// MoodInsights is the derived aggregate view over the last 30 days of mood
// entries. Nothing here is stored.
type MoodInsights struct {
	Count           int          `json:"count"`
	Average         float64      `json:"average"`
	MostCommonLabel string       `json:"mostCommonLabel"`
	MonthlyAverage  float64      `json:"monthlyAverage"`
	Distribution    []LabelCount `json:"distribution"`
}

// Insights computes the 30-day average, label distribution, most common
// label and calendar-month average. Entries are walked oldest first; the
// most common label is the first-encountered one when counts tie.
func (s *MoodService) Insights(ctx context.Context, userID string) (*MoodInsights, error) {
	now := time.Now()
	entries, err := s.repo.ListMoodEntriesSince(ctx, userID, now.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}

	year, month, _ := now.Date()
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	counts := make(map[string]int)
	var order []string
	var sum, monthlySum, monthlyCount int
	for _, e := range entries {
		sum += e.Score
		if _, seen := counts[e.Label]; !seen {
			order = append(order, e.Label)
		}
		counts[e.Label]++
		if !e.CreatedAt.Before(monthStart) && e.CreatedAt.Before(monthEnd) {
			monthlySum += e.Score
			monthlyCount++
		}
	}

	ins := &MoodInsights{Count: len(entries)}
	var max int
	for _, label := range order {
		ins.Distribution = append(ins.Distribution, LabelCount{Label: label, Count: counts[label]})
		if counts[label] > max {
			ins.MostCommonLabel = label
			max = counts[label]
		}
	}
	if len(entries) > 0 {
		ins.Average = round1(float64(sum) / float64(len(entries)))
	}
	if monthlyCount > 0 {
		ins.MonthlyAverage = round1(float64(monthlySum) / float64(monthlyCount))
	}
	return ins, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
