package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mindwell/internal/domain"

	"github.com/google/uuid"
)

// batchSize is how many recommendations a generation produces and how many
// the display shows.
const batchSize = 3

// MusicService derives music recommendations from the user's latest mood.
type MusicService struct {
	music   domain.MusicRepository
	moods   domain.MoodRepository
	gateway domain.ResponseGateway
}

// NewMusicService creates a MusicService backed by the given repositories
// and AI gateway.
func NewMusicService(music domain.MusicRepository, moods domain.MoodRepository, gateway domain.ResponseGateway) *MusicService {
	return &MusicService{music: music, moods: moods, gateway: gateway}
}

// Current returns the latest recommendation batch plus the mood label it
// keys off. With no batch but a logged mood, a fresh batch is generated.
// With no mood at all both results are empty and the UI prompts the user to
// log a mood first.
func (s *MusicService) Current(ctx context.Context, userID string) ([]domain.MusicRecommendation, string, error) {
	latest, err := s.moods.ListRecentMoodEntries(ctx, userID, 1)
	if err != nil {
		return nil, "", err
	}
	var mood string
	if len(latest) > 0 {
		mood = latest[0].Label
	}

	recs, err := s.music.ListLatestMusicRecommendations(ctx, userID, batchSize)
	if err != nil {
		return nil, "", err
	}
	if len(recs) > 0 {
		return recs, mood, nil
	}
	if mood == "" {
		return nil, "", nil
	}

	recs, err = s.Refresh(ctx, userID, mood)
	return recs, mood, err
}

// Refresh generates and persists a new batch for the given mood label. The
// gateway guarantees suggestions (static fallback on any failure), so a
// refresh always yields a persisted batch.
func (s *MusicService) Refresh(ctx context.Context, userID, moodLabel string) ([]domain.MusicRecommendation, error) {
	moodLabel = strings.TrimSpace(moodLabel)
	if moodLabel == "" {
		return nil, fmt.Errorf("%w: mood label must not be empty", ErrInvalidInput)
	}

	suggestions := s.gateway.MusicSuggestions(ctx, moodLabel)
	if len(suggestions) > batchSize {
		suggestions = suggestions[:batchSize]
	}

	now := time.Now()
	recs := make([]domain.MusicRecommendation, 0, len(suggestions))
	for _, sug := range suggestions {
		recs = append(recs, domain.MusicRecommendation{
			ID:          uuid.NewString(),
			UserID:      userID,
			TrackName:   sug.TrackName,
			ArtistName:  sug.ArtistName,
			AlbumName:   sug.AlbumName,
			SpotifyURI:  sug.SpotifyURI,
			MoodContext: moodLabel,
			CreatedAt:   now,
		})
	}
	if err := s.music.AddMusicRecommendations(ctx, recs); err != nil {
		return nil, err
	}
	return recs, nil
}
