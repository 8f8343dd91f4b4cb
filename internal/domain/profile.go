// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// Identity is the resolved authenticated identity consumed by profile
// bootstrap: a stable user id plus an email-like display hint.
type Identity struct {
	ID    string
	Email string
}

// Profile is the per-user profile record. Its ID equals the owning user's
// id; it is created lazily by bootstrap, never directly by the user.
type Profile struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProfileRepository is the port for profile persistence.
type ProfileRepository interface {
	// GetProfile returns nil, nil when no profile exists for id.
	GetProfile(ctx context.Context, id string) (*Profile, error)
	// CreateProfile returns ErrAlreadyExists when a profile with the same
	// id is already present.
	CreateProfile(ctx context.Context, p *Profile) error
}
