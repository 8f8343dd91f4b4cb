package domain

import (
	"context"
	"time"
)

// JournalEntry is a free-text journal entry, optionally seeded by an
// AI-generated prompt.
type JournalEntry struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	PromptUsed string    `json:"promptUsed,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// JournalRepository is the port for journal persistence. Every single-entry
// operation is scoped by (id, userID) so cross-user access is structurally
// impossible.
type JournalRepository interface {
	CreateJournalEntry(ctx context.Context, e *JournalEntry) error
	// GetJournalEntry returns nil, nil when no row matches (id, userID).
	GetJournalEntry(ctx context.Context, id, userID string) (*JournalEntry, error)
	// UpdateJournalEntry changes title, content and updated_at only.
	// found is false when no row matches (id, userID).
	UpdateJournalEntry(ctx context.Context, id, userID, title, content string, updatedAt time.Time) (found bool, err error)
	// DeleteJournalEntry reports found=false when no row matches.
	DeleteJournalEntry(ctx context.Context, id, userID string) (found bool, err error)
	// ListJournalEntries returns all entries for userID, newest first.
	ListJournalEntries(ctx context.Context, userID string) ([]JournalEntry, error)
}
