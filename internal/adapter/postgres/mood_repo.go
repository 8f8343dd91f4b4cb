package postgres

import (
	"context"
	"database/sql"
	"time"

	"mindwell/internal/domain"
)

// AddMoodEntry inserts a mood entry.
func (d *DB) AddMoodEntry(ctx context.Context, e *domain.MoodEntry) error {
	notes := sql.NullString{String: e.Notes, Valid: e.Notes != ""}
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO mood_entries (id, user_id, score, label, notes, created_at) VALUES ($1, $2, $3, $4, $5, $6)",
		e.ID, e.UserID, e.Score, e.Label, notes, e.CreatedAt,
	)
	return err
}

// ListRecentMoodEntries returns the newest entries first, capped at limit.
func (d *DB) ListRecentMoodEntries(ctx context.Context, userID string, limit int) ([]domain.MoodEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, user_id, score, label, notes, created_at FROM mood_entries WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2",
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMoodEntries(rows)
}

// ListMoodEntriesSince returns entries at or after since, oldest first.
func (d *DB) ListMoodEntriesSince(ctx context.Context, userID string, since time.Time) ([]domain.MoodEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, user_id, score, label, notes, created_at FROM mood_entries WHERE user_id = $1 AND created_at >= $2 ORDER BY created_at ASC",
		userID, since,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMoodEntries(rows)
}

func scanMoodEntries(rows *sql.Rows) ([]domain.MoodEntry, error) {
	var out []domain.MoodEntry
	for rows.Next() {
		var e domain.MoodEntry
		var notes sql.NullString
		if err := rows.Scan(&e.ID, &e.UserID, &e.Score, &e.Label, &notes, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Notes = notes.String
		out = append(out, e)
	}
	return out, rows.Err()
}
