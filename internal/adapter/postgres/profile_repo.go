package postgres

import (
	"context"
	"database/sql"

	"mindwell/internal/domain"
)

// GetProfile retrieves a profile by user ID, nil when absent.
func (d *DB) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	var p domain.Profile
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, display_name, created_at, updated_at FROM profiles WHERE id = $1",
		id,
	).Scan(&p.ID, &p.DisplayName, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProfile inserts a profile row. A concurrent bootstrap that already
// inserted the row yields domain.ErrAlreadyExists.
func (d *DB) CreateProfile(ctx context.Context, p *domain.Profile) error {
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO profiles (id, display_name, created_at, updated_at) VALUES ($1, $2, $3, $4)",
		p.ID, p.DisplayName, p.CreatedAt, p.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	return err
}
