package postgres

import (
	"context"
	"database/sql"

	"mindwell/internal/domain"
)

// AddMusicRecommendations inserts a generated batch.
func (d *DB) AddMusicRecommendations(ctx context.Context, recs []domain.MusicRecommendation) error {
	for _, r := range recs {
		album := sql.NullString{String: r.AlbumName, Valid: r.AlbumName != ""}
		uri := sql.NullString{String: r.SpotifyURI, Valid: r.SpotifyURI != ""}
		_, err := d.sql.ExecContext(ctx,
			"INSERT INTO music_recommendations (id, user_id, track_name, artist_name, album_name, spotify_uri, mood_context, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
			r.ID, r.UserID, r.TrackName, r.ArtistName, album, uri, r.MoodContext, r.CreatedAt,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// ListLatestMusicRecommendations returns the newest recommendations first,
// capped at limit.
func (d *DB) ListLatestMusicRecommendations(ctx context.Context, userID string, limit int) ([]domain.MusicRecommendation, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, user_id, track_name, artist_name, album_name, spotify_uri, mood_context, created_at FROM music_recommendations WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2",
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.MusicRecommendation
	for rows.Next() {
		var r domain.MusicRecommendation
		var album, uri sql.NullString
		if err := rows.Scan(&r.ID, &r.UserID, &r.TrackName, &r.ArtistName, &album, &uri, &r.MoodContext, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.AlbumName = album.String
		r.SpotifyURI = uri.String
		out = append(out, r)
	}
	return out, rows.Err()
}
