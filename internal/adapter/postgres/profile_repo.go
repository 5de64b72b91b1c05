package postgres

import (
	"context"
	"database/sql"
	"errors"

	"dietlog/internal/domain"
)

// GetProfile retrieves a profile by id.
func (d *DB) GetProfile(ctx context.Context, profileID int64) (*domain.Profile, error) {
	var (
		p      domain.Profile
		target sql.NullFloat64
		height sql.NullFloat64
	)
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, name, target_weight, height, updated_at FROM profiles WHERE id = $1;",
		profileID,
	).Scan(&p.ID, &p.Name, &target, &height, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.TargetWeight = floatPtr(target)
	p.Height = floatPtr(height)
	return &p, nil
}

// UpsertProfile inserts the profile or updates the existing row with the same id.
func (d *DB) UpsertProfile(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	var (
		out    domain.Profile
		target sql.NullFloat64
		height sql.NullFloat64
	)
	err := d.sql.QueryRowContext(ctx,
		`INSERT INTO profiles (id, name, target_weight, height, updated_at) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, target_weight = EXCLUDED.target_weight, height = EXCLUDED.height, updated_at = EXCLUDED.updated_at
		RETURNING id, name, target_weight, height, updated_at;`,
		p.ID, p.Name, nullFloat(p.TargetWeight), nullFloat(p.Height), p.UpdatedAt.UTC(),
	).Scan(&out.ID, &out.Name, &target, &height, &out.UpdatedAt)
	if err != nil {
		return nil, err
	}
	out.TargetWeight = floatPtr(target)
	out.Height = floatPtr(height)
	return &out, nil
}
