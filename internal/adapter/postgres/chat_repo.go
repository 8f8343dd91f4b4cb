package postgres

import (
	"context"

	"mindwell/internal/domain"
)

// AddChatMessage inserts a chat message. A duplicate ID, which happens when
// two requests seed the same welcome message, yields domain.ErrAlreadyExists.
func (d *DB) AddChatMessage(ctx context.Context, msg *domain.ChatMessage) error {
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO chat_messages (id, user_id, is_user, content, created_at) VALUES ($1, $2, $3, $4, $5)",
		msg.ID, msg.UserID, msg.IsUser, msg.Content, msg.CreatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	return err
}

// ListChatMessages returns the limit most recent messages in ascending
// order. The subquery picks the newest rows, the outer query restores
// chronological order for display.
func (d *DB) ListChatMessages(ctx context.Context, userID string, limit int) ([]domain.ChatMessage, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT id, user_id, is_user, content, created_at FROM (
			SELECT id, user_id, is_user, content, created_at
			FROM chat_messages WHERE user_id = $1
			ORDER BY created_at DESC LIMIT $2
		) recent ORDER BY created_at ASC`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.IsUser, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
