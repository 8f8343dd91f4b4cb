package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"mindwell/internal/domain"
)

func TestJournalService_Create_Validation(t *testing.T) {
	svc := NewJournalService(&mockJournalRepo{}, &stubGateway{})
	ctx := context.Background()

	tests := []struct {
		name           string
		title, content string
	}{
		{"empty title", "", "content"},
		{"empty content", "title", ""},
		{"whitespace only", "   ", "\t\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, "user-1", tc.title, tc.content, "")
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestJournalService_Create_RoundTrip(t *testing.T) {
	ctx := context.Background()
	var stored *domain.JournalEntry
	repo := &mockJournalRepo{
		createFn: func(ctx context.Context, e *domain.JournalEntry) error {
			stored = e
			return nil
		},
		getFn: func(ctx context.Context, id, userID string) (*domain.JournalEntry, error) {
			if stored != nil && stored.ID == id && stored.UserID == userID {
				return stored, nil
			}
			return nil, nil
		},
	}
	svc := NewJournalService(repo, &stubGateway{})

	created, err := svc.Create(ctx, "user-1", "  A Title  ", "  Some content.  ", "prompt text")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Title != "A Title" || created.Content != "Some content." {
		t.Errorf("expected trimmed fields, got %q / %q", created.Title, created.Content)
	}
	if created.PromptUsed != "prompt text" {
		t.Errorf("expected prompt_used to be kept, got %q", created.PromptUsed)
	}

	got, err := svc.Get(ctx, created.ID, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != created.Title || got.Content != created.Content {
		t.Errorf("round-trip mismatch: %+v vs %+v", got, created)
	}

	// Another user never sees the entry.
	if _, err := svc.Get(ctx, created.ID, "user-2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign user, got %v", err)
	}
}

func TestJournalService_Update_NotFound(t *testing.T) {
	repo := &mockJournalRepo{
		updateFn: func(ctx context.Context, id, userID, title, content string, updatedAt time.Time) (bool, error) {
			return false, nil
		},
	}
	svc := NewJournalService(repo, &stubGateway{})

	_, err := svc.Update(context.Background(), "missing", "user-1", "t", "c")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestJournalService_Update_TouchesOnlyMutableFields(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Now().Add(-48 * time.Hour)
	entry := &domain.JournalEntry{
		ID: "e1", UserID: "user-1",
		Title: "old", Content: "old content", PromptUsed: "seed prompt",
		CreatedAt: createdAt, UpdatedAt: createdAt,
	}
	repo := &mockJournalRepo{
		updateFn: func(ctx context.Context, id, userID, title, content string, updatedAt time.Time) (bool, error) {
			if id != "e1" || userID != "user-1" {
				return false, nil
			}
			entry.Title, entry.Content, entry.UpdatedAt = title, content, updatedAt
			return true, nil
		},
		getFn: func(ctx context.Context, id, userID string) (*domain.JournalEntry, error) {
			return entry, nil
		},
	}
	svc := NewJournalService(repo, &stubGateway{})

	got, err := svc.Update(ctx, "e1", "user-1", "new", "new content")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Title != "new" || got.Content != "new content" {
		t.Errorf("expected updated fields, got %+v", got)
	}
	if !got.CreatedAt.Equal(createdAt) {
		t.Error("created_at must not change on update")
	}
	if got.PromptUsed != "seed prompt" {
		t.Error("prompt_used must not change on update")
	}
	if !got.UpdatedAt.After(createdAt) {
		t.Error("updated_at must advance on update")
	}
}

func TestJournalService_Delete_NotFound(t *testing.T) {
	repo := &mockJournalRepo{
		deleteFn: func(ctx context.Context, id, userID string) (bool, error) {
			return false, nil
		},
	}
	svc := NewJournalService(repo, &stubGateway{})

	err := svc.Delete(context.Background(), "missing", "user-1")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestJournalService_SuggestPrompt_UsesGateway(t *testing.T) {
	gw := &stubGateway{
		promptFn: func(ctx context.Context, mood string) string {
			if mood != "Sad" {
				t.Errorf("expected mood Sad, got %s", mood)
			}
			return "What would comfort you right now?"
		},
	}
	svc := NewJournalService(&mockJournalRepo{}, gw)

	got := svc.SuggestPrompt(context.Background(), "Sad")
	if got != "What would comfort you right now?" {
		t.Errorf("unexpected prompt: %q", got)
	}
}
