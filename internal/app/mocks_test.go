package app

import (
	"context"
	"time"

	"mindwell/internal/domain"
)

// Mock repositories and gateway, function-fields pattern: a nil field means
// a benign default.

type mockProfileRepo struct {
	getFn    func(ctx context.Context, id string) (*domain.Profile, error)
	createFn func(ctx context.Context, p *domain.Profile) error
}

func (m *mockProfileRepo) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockProfileRepo) CreateProfile(ctx context.Context, p *domain.Profile) error {
	if m.createFn != nil {
		return m.createFn(ctx, p)
	}
	return nil
}

type mockMoodRepo struct {
	addFn    func(ctx context.Context, e *domain.MoodEntry) error
	recentFn func(ctx context.Context, userID string, limit int) ([]domain.MoodEntry, error)
	sinceFn  func(ctx context.Context, userID string, since time.Time) ([]domain.MoodEntry, error)
}

func (m *mockMoodRepo) AddMoodEntry(ctx context.Context, e *domain.MoodEntry) error {
	if m.addFn != nil {
		return m.addFn(ctx, e)
	}
	return nil
}

func (m *mockMoodRepo) ListRecentMoodEntries(ctx context.Context, userID string, limit int) ([]domain.MoodEntry, error) {
	if m.recentFn != nil {
		return m.recentFn(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockMoodRepo) ListMoodEntriesSince(ctx context.Context, userID string, since time.Time) ([]domain.MoodEntry, error) {
	if m.sinceFn != nil {
		return m.sinceFn(ctx, userID, since)
	}
	return nil, nil
}

type mockJournalRepo struct {
	createFn func(ctx context.Context, e *domain.JournalEntry) error
	getFn    func(ctx context.Context, id, userID string) (*domain.JournalEntry, error)
	updateFn func(ctx context.Context, id, userID, title, content string, updatedAt time.Time) (bool, error)
	deleteFn func(ctx context.Context, id, userID string) (bool, error)
	listFn   func(ctx context.Context, userID string) ([]domain.JournalEntry, error)
}

func (m *mockJournalRepo) CreateJournalEntry(ctx context.Context, e *domain.JournalEntry) error {
	if m.createFn != nil {
		return m.createFn(ctx, e)
	}
	return nil
}

func (m *mockJournalRepo) GetJournalEntry(ctx context.Context, id, userID string) (*domain.JournalEntry, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id, userID)
	}
	return nil, nil
}

func (m *mockJournalRepo) UpdateJournalEntry(ctx context.Context, id, userID, title, content string, updatedAt time.Time) (bool, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, userID, title, content, updatedAt)
	}
	return true, nil
}

func (m *mockJournalRepo) DeleteJournalEntry(ctx context.Context, id, userID string) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, userID)
	}
	return true, nil
}

func (m *mockJournalRepo) ListJournalEntries(ctx context.Context, userID string) ([]domain.JournalEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

type mockChatRepo struct {
	addFn  func(ctx context.Context, msg *domain.ChatMessage) error
	listFn func(ctx context.Context, userID string, limit int) ([]domain.ChatMessage, error)
}

func (m *mockChatRepo) AddChatMessage(ctx context.Context, msg *domain.ChatMessage) error {
	if m.addFn != nil {
		return m.addFn(ctx, msg)
	}
	return nil
}

func (m *mockChatRepo) ListChatMessages(ctx context.Context, userID string, limit int) ([]domain.ChatMessage, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, limit)
	}
	return nil, nil
}

type mockMusicRepo struct {
	addFn  func(ctx context.Context, recs []domain.MusicRecommendation) error
	listFn func(ctx context.Context, userID string, limit int) ([]domain.MusicRecommendation, error)
}

func (m *mockMusicRepo) AddMusicRecommendations(ctx context.Context, recs []domain.MusicRecommendation) error {
	if m.addFn != nil {
		return m.addFn(ctx, recs)
	}
	return nil
}

func (m *mockMusicRepo) ListLatestMusicRecommendations(ctx context.Context, userID string, limit int) ([]domain.MusicRecommendation, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, limit)
	}
	return nil, nil
}

type mockUserRepo struct {
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	getByIDFn    func(ctx context.Context, id string) (*domain.User, error)
	createFn     func(ctx context.Context, email, passwordHash string) (*domain.User, error)
	countFn      func(ctx context.Context) (int, error)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, email, passwordHash)
	}
	return &domain.User{ID: "u1", Email: email, PasswordHash: passwordHash}, nil
}

func (m *mockUserRepo) Count(ctx context.Context) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

type mockSessionRepo struct {
	createFn func(ctx context.Context, userID, token string, expiresAt time.Time) error
	getFn    func(ctx context.Context, token string) (*domain.Session, error)
	deleteFn func(ctx context.Context, token string) error
}

func (m *mockSessionRepo) Create(ctx context.Context, userID, token string, expiresAt time.Time) error {
	if m.createFn != nil {
		return m.createFn(ctx, userID, token, expiresAt)
	}
	return nil
}

func (m *mockSessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	if m.getFn != nil {
		return m.getFn(ctx, token)
	}
	return nil, nil
}

func (m *mockSessionRepo) Delete(ctx context.Context, token string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, token)
	}
	return nil
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context) error {
	return nil
}

type stubGateway struct {
	chatFn   func(ctx context.Context, message string) string
	promptFn func(ctx context.Context, mood string) string
	musicFn  func(ctx context.Context, mood string) []domain.MusicSuggestion
}

func (g *stubGateway) ChatReply(ctx context.Context, message string) string {
	if g.chatFn != nil {
		return g.chatFn(ctx, message)
	}
	return "stub reply"
}

func (g *stubGateway) JournalPrompt(ctx context.Context, mood string) string {
	if g.promptFn != nil {
		return g.promptFn(ctx, mood)
	}
	return "stub prompt"
}

func (g *stubGateway) MusicSuggestions(ctx context.Context, mood string) []domain.MusicSuggestion {
	if g.musicFn != nil {
		return g.musicFn(ctx, mood)
	}
	return []domain.MusicSuggestion{
		{TrackName: "Weightless", ArtistName: "Marconi Union", AlbumName: "Weightless"},
		{TrackName: "Electra", ArtistName: "Airstream", AlbumName: "Electra"},
		{TrackName: "Watermark", ArtistName: "Enya", AlbumName: "Watermark"},
	}
}
