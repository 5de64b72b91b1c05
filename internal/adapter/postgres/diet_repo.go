package postgres

import (
	"context"
	"database/sql"

	"dietlog/internal/domain"
)

// AddDietEntry inserts a new diet entry.
func (d *DB) AddDietEntry(ctx context.Context, e domain.DietEntry) (*domain.DietEntry, error) {
	e.Date = e.Date.UTC()
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO diet_entries(profile_id, meal, food, calories, note, created_at) VALUES($1, $2, $3, $4, $5, $6) RETURNING id;",
		e.ProfileID, string(e.Meal), e.Food, nullInt(e.Calories), nullString(e.Note), e.Date,
	).Scan(&e.ID)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ListRecentDietEntries returns the most recent diet entries up to limit for a profile.
func (d *DB) ListRecentDietEntries(ctx context.Context, profileID int64, limit int) ([]domain.DietEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, meal, food, calories, note, created_at FROM diet_entries WHERE profile_id=$1 ORDER BY created_at DESC, id DESC LIMIT $2;",
		profileID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.DietEntry, 0, limit)
	for rows.Next() {
		var (
			e        domain.DietEntry
			meal     string
			calories sql.NullInt64
			note     sql.NullString
		)
		if err := rows.Scan(&e.ID, &meal, &e.Food, &calories, &note, &e.Date); err != nil {
			return nil, err
		}
		e.ProfileID = profileID
		e.Meal = domain.Meal(meal)
		e.Calories = intPtr(calories)
		e.Note = stringPtr(note)
		e.Date = e.Date.UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}
