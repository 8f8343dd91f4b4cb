package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mindwell/internal/domain"
)

// ProfileService guarantees a user profile record exists before any
// dependent write.
type ProfileService struct {
	repo domain.ProfileRepository
}

// NewProfileService creates a ProfileService backed by the given repository.
func NewProfileService(repo domain.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// EnsureExists looks up the identity's profile and creates it when missing,
// returning the owning user id. The check-then-insert is idempotent: a
// concurrent insert losing to the store's uniqueness constraint is benign
// and resolved by re-reading. Only a genuine not-found triggers creation;
// any other lookup failure propagates.
func (s *ProfileService) EnsureExists(ctx context.Context, ident domain.Identity) (string, error) {
	if ident.ID == "" {
		return "", ErrNotAuthenticated
	}

	p, err := s.repo.GetProfile(ctx, ident.ID)
	if err != nil {
		return "", fmt.Errorf("profile lookup: %w", err)
	}
	if p != nil {
		return p.ID, nil
	}

	now := time.Now()
	profile := &domain.Profile{
		ID:          ident.ID,
		DisplayName: displayNameFor(ident),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.CreateProfile(ctx, profile); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			// Lost the race to a concurrent bootstrap; the row is there.
			if _, err := s.repo.GetProfile(ctx, ident.ID); err != nil {
				return "", fmt.Errorf("profile re-read: %w", err)
			}
			return ident.ID, nil
		}
		return "", fmt.Errorf("profile create: %w", err)
	}
	return ident.ID, nil
}

// Get returns the profile for a user id, or ErrNotFound.
func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: profile %s", ErrNotFound, userID)
	}
	return p, nil
}

// displayNameFor synthesizes a display name from the identity's email
// local-part, falling back to the literal "User".
func displayNameFor(ident domain.Identity) string {
	name := ident.Email
	if i := strings.IndexByte(name, '@'); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		return "User"
	}
	return name
}
