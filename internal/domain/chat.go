package domain

import (
	"context"
	"time"
)

// ChatMessage is one message in the append-only conversation between a user
// and the assistant persona.
type ChatMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	IsUser    bool      `json:"isUser"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// ChatRepository is the port for chat persistence.
type ChatRepository interface {
	// AddChatMessage returns ErrAlreadyExists when a message with the same
	// id is already present.
	AddChatMessage(ctx context.Context, m *ChatMessage) error
	// ListChatMessages returns the `limit` most recent messages for userID
	// in ascending created_at order.
	ListChatMessages(ctx context.Context, userID string, limit int) ([]ChatMessage, error)
}
