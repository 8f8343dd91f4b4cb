// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"mindwell/internal/domain"

	"github.com/google/uuid"
)

// DB implements an in-memory database storage.
type DB struct {
	mu       sync.Mutex
	users    []*domain.User
	sessions map[string]*domain.Session
	profiles map[string]*domain.Profile
	moods    []domain.MoodEntry
	journals []domain.JournalEntry
	chats    []domain.ChatMessage
	music    []domain.MusicRecommendation
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		sessions: make(map[string]*domain.Session),
		profiles: make(map[string]*domain.Profile),
	}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)
var _ domain.ProfileRepository = (*DB)(nil)
var _ domain.MoodRepository = (*DB)(nil)
var _ domain.JournalRepository = (*DB)(nil)
var _ domain.ChatRepository = (*DB)(nil)
var _ domain.MusicRepository = (*DB)(nil)

// --- UserRepository ---

// GetByEmail retrieves a user by email.
func (db *DB) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by ID.
func (db *DB) GetByID(ctx context.Context, id string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// Create creates a new user.
func (db *DB) Create(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Email == email {
			return nil, domain.ErrAlreadyExists
		}
	}

	u := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	db.users = append(db.users, u)
	return u, nil
}

// Count returns the total number of users.
func (db *DB) Count(ctx context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.users), nil
}

// --- SessionRepository ---

// SessionRepo implements session persistence.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo creates a new session repository.
func (db *DB) NewSessionRepo() *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(ctx context.Context, userID, token string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken retrieves a session by token.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if s, ok := r.db.sessions[token]; ok {
		if time.Now().After(s.ExpiresAt) {
			delete(r.db.sessions, token)
			return nil, nil
		}
		return s, nil
	}
	return nil, nil
}

// Delete deletes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now()
	for k, v := range r.db.sessions {
		if now.After(v.ExpiresAt) {
			delete(r.db.sessions, k)
		}
	}
	return nil
}

// --- ProfileRepository ---

// GetProfile retrieves a profile by user ID.
func (db *DB) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if p, ok := db.profiles[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

// CreateProfile inserts a profile, failing on a duplicate ID.
func (db *DB) CreateProfile(ctx context.Context, p *domain.Profile) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.profiles[p.ID]; ok {
		return domain.ErrAlreadyExists
	}
	cp := *p
	db.profiles[p.ID] = &cp
	return nil
}

// --- MoodRepository ---

// AddMoodEntry adds a mood entry.
func (db *DB) AddMoodEntry(ctx context.Context, e *domain.MoodEntry) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.moods = append(db.moods, *e)
	return nil
}

// ListRecentMoodEntries lists the user's most recent mood entries, newest first.
func (db *DB) ListRecentMoodEntries(ctx context.Context, userID string, limit int) ([]domain.MoodEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var result []domain.MoodEntry
	for _, e := range db.moods {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// ListMoodEntriesSince lists the user's entries at or after since, oldest first.
func (db *DB) ListMoodEntriesSince(ctx context.Context, userID string, since time.Time) ([]domain.MoodEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var result []domain.MoodEntry
	for _, e := range db.moods {
		if e.UserID == userID && !e.CreatedAt.Before(since) {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// --- JournalRepository ---

// CreateJournalEntry adds a journal entry.
func (db *DB) CreateJournalEntry(ctx context.Context, e *domain.JournalEntry) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.journals = append(db.journals, *e)
	return nil
}

// GetJournalEntry retrieves one entry scoped to its owner.
func (db *DB) GetJournalEntry(ctx context.Context, id, userID string) (*domain.JournalEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.journals {
		if db.journals[i].ID == id && db.journals[i].UserID == userID {
			cp := db.journals[i]
			return &cp, nil
		}
	}
	return nil, nil
}

// UpdateJournalEntry rewrites title and content of an owned entry.
func (db *DB) UpdateJournalEntry(ctx context.Context, id, userID, title, content string, updatedAt time.Time) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.journals {
		if db.journals[i].ID == id && db.journals[i].UserID == userID {
			db.journals[i].Title = title
			db.journals[i].Content = content
			db.journals[i].UpdatedAt = updatedAt
			return true, nil
		}
	}
	return false, nil
}

// DeleteJournalEntry removes an owned entry.
func (db *DB) DeleteJournalEntry(ctx context.Context, id, userID string) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.journals {
		if db.journals[i].ID == id && db.journals[i].UserID == userID {
			db.journals = append(db.journals[:i], db.journals[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ListJournalEntries lists all of a user's entries, newest first.
func (db *DB) ListJournalEntries(ctx context.Context, userID string) ([]domain.JournalEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var result []domain.JournalEntry
	for _, e := range db.journals {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// --- ChatRepository ---

// AddChatMessage adds a chat message, failing on a duplicate ID.
func (db *DB) AddChatMessage(ctx context.Context, msg *domain.ChatMessage) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, m := range db.chats {
		if m.ID == msg.ID {
			return domain.ErrAlreadyExists
		}
	}
	db.chats = append(db.chats, *msg)
	return nil
}

// ListChatMessages returns the limit most recent messages in ascending order.
func (db *DB) ListChatMessages(ctx context.Context, userID string, limit int) ([]domain.ChatMessage, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var result []domain.ChatMessage
	for _, m := range db.chats {
		if m.UserID == userID {
			result = append(result, m)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	if len(result) > limit {
		result = result[len(result)-limit:]
	}
	return result, nil
}

// --- MusicRepository ---

// AddMusicRecommendations adds a generated batch.
func (db *DB) AddMusicRecommendations(ctx context.Context, recs []domain.MusicRecommendation) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.music = append(db.music, recs...)
	return nil
}

// ListLatestMusicRecommendations returns the newest recommendations first.
func (db *DB) ListLatestMusicRecommendations(ctx context.Context, userID string, limit int) ([]domain.MusicRecommendation, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var result []domain.MusicRecommendation
	for _, r := range db.music {
		if r.UserID == userID {
			result = append(result, r)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
