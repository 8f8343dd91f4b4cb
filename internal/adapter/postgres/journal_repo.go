package postgres

import (
	"context"
	"database/sql"
	"time"

	"mindwell/internal/domain"
)

// CreateJournalEntry inserts a journal entry.
func (d *DB) CreateJournalEntry(ctx context.Context, e *domain.JournalEntry) error {
	prompt := sql.NullString{String: e.PromptUsed, Valid: e.PromptUsed != ""}
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO journal_entries (id, user_id, title, content, prompt_used, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7)",
		e.ID, e.UserID, e.Title, e.Content, prompt, e.CreatedAt, e.UpdatedAt,
	)
	return err
}

// GetJournalEntry retrieves one entry scoped to its owner, nil when absent.
func (d *DB) GetJournalEntry(ctx context.Context, id, userID string) (*domain.JournalEntry, error) {
	var e domain.JournalEntry
	var prompt sql.NullString
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, user_id, title, content, prompt_used, created_at, updated_at FROM journal_entries WHERE id = $1 AND user_id = $2",
		id, userID,
	).Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &prompt, &e.CreatedAt, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	e.PromptUsed = prompt.String
	return &e, nil
}

// UpdateJournalEntry rewrites title and content; found is false when no row
// belongs to the user.
func (d *DB) UpdateJournalEntry(ctx context.Context, id, userID, title, content string, updatedAt time.Time) (bool, error) {
	res, err := d.sql.ExecContext(ctx,
		"UPDATE journal_entries SET title = $1, content = $2, updated_at = $3 WHERE id = $4 AND user_id = $5",
		title, content, updatedAt, id, userID,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeleteJournalEntry removes an entry; found is false when no row belongs to
// the user.
func (d *DB) DeleteJournalEntry(ctx context.Context, id, userID string) (bool, error) {
	res, err := d.sql.ExecContext(ctx,
		"DELETE FROM journal_entries WHERE id = $1 AND user_id = $2",
		id, userID,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListJournalEntries returns all of a user's entries, newest first.
func (d *DB) ListJournalEntries(ctx context.Context, userID string) ([]domain.JournalEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, user_id, title, content, prompt_used, created_at, updated_at FROM journal_entries WHERE user_id = $1 ORDER BY created_at DESC",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.JournalEntry
	for rows.Next() {
		var e domain.JournalEntry
		var prompt sql.NullString
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &prompt, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		e.PromptUsed = prompt.String
		out = append(out, e)
	}
	return out, rows.Err()
}
