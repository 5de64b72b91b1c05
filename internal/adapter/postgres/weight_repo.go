package postgres

import (
	"context"
	"database/sql"

	"dietlog/internal/domain"
)

// AddWeightEntry inserts a new weight entry.
func (d *DB) AddWeightEntry(ctx context.Context, e domain.WeightEntry) (*domain.WeightEntry, error) {
	e.Date = e.Date.UTC()
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO weight_entries(profile_id, value, note, created_at) VALUES($1, $2, $3, $4) RETURNING id;",
		e.ProfileID, e.Value, nullString(e.Note), e.Date,
	).Scan(&e.ID)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ListRecentWeightEntries returns the most recent weight entries up to limit for a profile.
func (d *DB) ListRecentWeightEntries(ctx context.Context, profileID int64, limit int) ([]domain.WeightEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, value, note, created_at FROM weight_entries WHERE profile_id=$1 ORDER BY created_at DESC, id DESC LIMIT $2;",
		profileID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.WeightEntry, 0, limit)
	for rows.Next() {
		var (
			e    domain.WeightEntry
			note sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.Value, &note, &e.Date); err != nil {
			return nil, err
		}
		e.ProfileID = profileID
		e.Note = stringPtr(note)
		e.Date = e.Date.UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}
