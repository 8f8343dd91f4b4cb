package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mindwell/internal/domain"

	"github.com/google/uuid"
)

const welcomeContent = "Hi there! I'm Mindi, your mental health companion. How are you feeling today?"

// historyLimit caps chat history at the 50 most recent messages.
const historyLimit = 50

// ChatService encapsulates the append-only conversation between a user and
// the assistant persona.
type ChatService struct {
	repo    domain.ChatRepository
	gateway domain.ResponseGateway
}

// NewChatService creates a ChatService backed by the given repository and
// AI gateway.
func NewChatService(repo domain.ChatRepository, gateway domain.ResponseGateway) *ChatService {
	return &ChatService{repo: repo, gateway: gateway}
}

// welcomeID derives the deterministic welcome-message id for a user, so a
// concurrent second seed insert collides on the primary key instead of
// duplicating the welcome.
func welcomeID(userID string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("welcome:"+userID)).String()
}

// History returns the user's conversation, oldest first. The first-ever
// fetch seeds exactly one assistant welcome message.
func (s *ChatService) History(ctx context.Context, userID string) ([]domain.ChatMessage, error) {
	msgs, err := s.repo.ListChatMessages(ctx, userID, historyLimit)
	if err != nil {
		return nil, err
	}
	if len(msgs) > 0 {
		return msgs, nil
	}

	welcome := domain.ChatMessage{
		ID:        welcomeID(userID),
		UserID:    userID,
		IsUser:    false,
		Content:   welcomeContent,
		CreatedAt: time.Now(),
	}
	if err := s.repo.AddChatMessage(ctx, &welcome); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			// A concurrent initial load seeded it first.
			return s.repo.ListChatMessages(ctx, userID, historyLimit)
		}
		return nil, err
	}
	return []domain.ChatMessage{welcome}, nil
}

// Send persists the user's message, obtains the assistant's reply from the
// gateway and persists it too. The gateway returns fallback text instead of
// failing, so a sent message is never left unanswered. The assistant
// message's created_at always sorts after the user message's.
func (s *ChatService) Send(ctx context.Context, userID, text string) (user, assistant *domain.ChatMessage, err error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil, fmt.Errorf("%w: message must not be empty", ErrInvalidInput)
	}

	userMsg := &domain.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    userID,
		IsUser:    true,
		Content:   text,
		CreatedAt: time.Now(),
	}
	if err := s.repo.AddChatMessage(ctx, userMsg); err != nil {
		return nil, nil, err
	}

	reply := s.gateway.ChatReply(ctx, text)

	replyAt := time.Now()
	if !replyAt.After(userMsg.CreatedAt) {
		replyAt = userMsg.CreatedAt.Add(time.Millisecond)
	}
	aiMsg := &domain.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    userID,
		IsUser:    false,
		Content:   reply,
		CreatedAt: replyAt,
	}
	if err := s.repo.AddChatMessage(ctx, aiMsg); err != nil {
		return nil, nil, err
	}
	return userMsg, aiMsg, nil
}
