package app

import (
	"context"
	"errors"
	"testing"

	"mindwell/internal/domain"
)

func TestChatService_History_SeedsWelcomeOnce(t *testing.T) {
	ctx := context.Background()
	var stored []domain.ChatMessage

	repo := &mockChatRepo{
		listFn: func(ctx context.Context, userID string, limit int) ([]domain.ChatMessage, error) {
			return stored, nil
		},
		addFn: func(ctx context.Context, msg *domain.ChatMessage) error {
			for _, m := range stored {
				if m.ID == msg.ID {
					return domain.ErrAlreadyExists
				}
			}
			stored = append(stored, *msg)
			return nil
		},
	}
	svc := NewChatService(repo, &stubGateway{})

	msgs, err := svc.History(ctx, "user-1")
	if err != nil {
		t.Fatalf("first history: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected exactly one welcome message, got %d", len(msgs))
	}
	if msgs[0].IsUser {
		t.Error("welcome message must be authored by the assistant")
	}
	if msgs[0].Content != welcomeContent {
		t.Errorf("unexpected welcome content: %q", msgs[0].Content)
	}

	// A second fetch must not seed a second welcome.
	msgs, err = svc.History(ctx, "user-1")
	if err != nil {
		t.Fatalf("second history: %v", err)
	}
	if len(msgs) != 1 || len(stored) != 1 {
		t.Fatalf("expected a single persisted welcome, got %d returned / %d stored", len(msgs), len(stored))
	}
}

func TestChatService_History_WelcomeRaceIsBenign(t *testing.T) {
	ctx := context.Background()
	welcome := domain.ChatMessage{
		ID: welcomeID("user-1"), UserID: "user-1",
		Content: welcomeContent,
	}

	lists := 0
	repo := &mockChatRepo{
		listFn: func(ctx context.Context, userID string, limit int) ([]domain.ChatMessage, error) {
			lists++
			if lists == 1 {
				// The concurrent initial load hasn't committed yet.
				return nil, nil
			}
			return []domain.ChatMessage{welcome}, nil
		},
		addFn: func(ctx context.Context, msg *domain.ChatMessage) error {
			return domain.ErrAlreadyExists
		},
	}
	svc := NewChatService(repo, &stubGateway{})

	msgs, err := svc.History(ctx, "user-1")
	if err != nil {
		t.Fatalf("welcome race must be benign, got %v", err)
	}
	if len(msgs) != 1 || msgs[0].ID != welcome.ID {
		t.Fatalf("expected the winning welcome row, got %+v", msgs)
	}
}

func TestChatService_Send_PersistsBothMessagesInOrder(t *testing.T) {
	ctx := context.Background()
	var stored []domain.ChatMessage

	repo := &mockChatRepo{
		addFn: func(ctx context.Context, msg *domain.ChatMessage) error {
			stored = append(stored, *msg)
			return nil
		},
	}
	gw := &stubGateway{
		chatFn: func(ctx context.Context, message string) string {
			return "That sounds really hard. Want to talk about it?"
		},
	}
	svc := NewChatService(repo, gw)

	userMsg, aiMsg, err := svc.Send(ctx, "user-1", "I feel anxious")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("expected two persisted messages, got %d", len(stored))
	}
	if !userMsg.IsUser || userMsg.Content != "I feel anxious" {
		t.Errorf("unexpected user message: %+v", userMsg)
	}
	if aiMsg.IsUser || aiMsg.Content == "" {
		t.Errorf("unexpected assistant message: %+v", aiMsg)
	}
	if !aiMsg.CreatedAt.After(userMsg.CreatedAt) {
		t.Error("assistant message must sort after the user message")
	}
}

func TestChatService_Send_UnconfiguredGatewayStillAnswers(t *testing.T) {
	ctx := context.Background()
	var stored []domain.ChatMessage

	repo := &mockChatRepo{
		addFn: func(ctx context.Context, msg *domain.ChatMessage) error {
			stored = append(stored, *msg)
			return nil
		},
	}
	gw := &stubGateway{
		chatFn: func(ctx context.Context, message string) string {
			// The gateway converts missing configuration into text.
			return "AI service is not properly configured. Please check your environment variables."
		},
	}
	svc := NewChatService(repo, gw)

	_, aiMsg, err := svc.Send(ctx, "user-1", "I feel anxious")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if aiMsg == nil || aiMsg.Content == "" {
		t.Fatal("assistant message must exist even when the gateway is unconfigured")
	}
	if len(stored) != 2 {
		t.Fatalf("expected two persisted messages, got %d", len(stored))
	}
}

func TestChatService_Send_EmptyMessage(t *testing.T) {
	svc := NewChatService(&mockChatRepo{}, &stubGateway{})
	_, _, err := svc.Send(context.Background(), "user-1", "   ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
