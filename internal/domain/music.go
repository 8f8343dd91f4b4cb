package domain

import (
	"context"
	"time"
)

// MusicSuggestion is one song suggestion as produced by the AI gateway.
// The JSON tags match the shape the model is instructed to emit.
type MusicSuggestion struct {
	TrackName  string `json:"track_name"`
	ArtistName string `json:"artist_name"`
	AlbumName  string `json:"album_name,omitempty"`
	SpotifyURI string `json:"spotify_uri,omitempty"`
}

// MusicRecommendation is a persisted suggestion tied to the mood label that
// produced it. Batches are never deleted, only superseded in display by
// querying the latest ones.
type MusicRecommendation struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	TrackName   string    `json:"trackName"`
	ArtistName  string    `json:"artistName"`
	AlbumName   string    `json:"albumName,omitempty"`
	SpotifyURI  string    `json:"spotifyUri,omitempty"`
	MoodContext string    `json:"moodContext"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MusicRepository is the port for recommendation persistence.
type MusicRepository interface {
	AddMusicRecommendations(ctx context.Context, recs []MusicRecommendation) error
	// ListLatestMusicRecommendations returns up to limit recommendations,
	// newest first.
	ListLatestMusicRecommendations(ctx context.Context, userID string, limit int) ([]MusicRecommendation, error)
}
