package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mindwell/internal/domain"

	"github.com/google/uuid"
)

// JournalService encapsulates journal use cases.
type JournalService struct {
	repo    domain.JournalRepository
	gateway domain.ResponseGateway
}

// NewJournalService creates a JournalService backed by the given repository
// and AI gateway.
func NewJournalService(repo domain.JournalRepository, gateway domain.ResponseGateway) *JournalService {
	return &JournalService{repo: repo, gateway: gateway}
}

// Create validates and stores a new journal entry.
func (s *JournalService) Create(ctx context.Context, userID, title, content, promptUsed string) (*domain.JournalEntry, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: title and content must not be empty", ErrInvalidInput)
	}
	now := time.Now()
	e := &domain.JournalEntry{
		ID:         uuid.NewString(),
		UserID:     userID,
		Title:      title,
		Content:    content,
		PromptUsed: promptUsed,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.CreateJournalEntry(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Update changes an entry's title and content, leaving created_at and
// prompt_used untouched.
func (s *JournalService) Update(ctx context.Context, id, userID, title, content string) (*domain.JournalEntry, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: title and content must not be empty", ErrInvalidInput)
	}
	found, err := s.repo.UpdateJournalEntry(ctx, id, userID, title, content, time.Now())
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: journal entry %s", ErrNotFound, id)
	}
	return s.Get(ctx, id, userID)
}

// Delete removes an entry. Deleting a nonexistent id is reported as
// ErrNotFound, not a crash.
func (s *JournalService) Delete(ctx context.Context, id, userID string) error {
	found, err := s.repo.DeleteJournalEntry(ctx, id, userID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: journal entry %s", ErrNotFound, id)
	}
	return nil
}

// Get returns a single entry owned by userID, or ErrNotFound.
func (s *JournalService) Get(ctx context.Context, id, userID string) (*domain.JournalEntry, error) {
	e, err := s.repo.GetJournalEntry(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("%w: journal entry %s", ErrNotFound, id)
	}
	return e, nil
}

// List returns the user's entries, newest first.
func (s *JournalService) List(ctx context.Context, userID string) ([]domain.JournalEntry, error) {
	return s.repo.ListJournalEntries(ctx, userID)
}

// SuggestPrompt asks the gateway for a journaling prompt. The gateway
// absorbs its own failures, so journaling is never blocked by AI
// unavailability.
func (s *JournalService) SuggestPrompt(ctx context.Context, mood string) string {
	return s.gateway.JournalPrompt(ctx, mood)
}
