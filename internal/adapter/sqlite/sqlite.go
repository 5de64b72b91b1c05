// Package sqlite implements the domain repositories on an embedded SQLite
// database. Instants are stored as UTC unix nanoseconds.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"dietlog/internal/domain"
)

// DB wraps a *sql.DB and implements domain repository interfaces.
type DB struct {
	sql *sql.DB
}

// Ensure interfaces are met.
var _ domain.ProfileRepository = (*DB)(nil)
var _ domain.DietRepository = (*DB)(nil)
var _ domain.WeightRepository = (*DB)(nil)

// Open creates the database file if needed, runs migrations and returns a
// ready store.
func Open(dbPath string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}
	if err := RunMigrations(dbPath); err != nil {
		return nil, err
	}

	s, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	s.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &DB{sql: s}, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func toUnix(t time.Time) int64 { return t.UTC().UnixNano() }

func fromUnix(n int64) time.Time { return time.Unix(0, n).UTC() }

// GetProfile retrieves a profile by id.
func (d *DB) GetProfile(ctx context.Context, profileID int64) (*domain.Profile, error) {
	var (
		p         domain.Profile
		target    sql.NullFloat64
		height    sql.NullFloat64
		updatedAt int64
	)
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, name, target_weight, height, updated_at FROM profiles WHERE id = ?;",
		profileID,
	).Scan(&p.ID, &p.Name, &target, &height, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.TargetWeight = floatPtr(target)
	p.Height = floatPtr(height)
	p.UpdatedAt = fromUnix(updatedAt)
	return &p, nil
}

// UpsertProfile inserts the profile or replaces the existing row with the same id.
func (d *DB) UpsertProfile(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO profiles (id, name, target_weight, height, updated_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET name = excluded.name, target_weight = excluded.target_weight, height = excluded.height, updated_at = excluded.updated_at;`,
		p.ID, p.Name, nullFloat(p.TargetWeight), nullFloat(p.Height), toUnix(p.UpdatedAt),
	)
	if err != nil {
		return nil, err
	}
	return d.GetProfile(ctx, p.ID)
}

// AddDietEntry inserts a new diet entry.
func (d *DB) AddDietEntry(ctx context.Context, e domain.DietEntry) (*domain.DietEntry, error) {
	e.Date = e.Date.UTC()
	res, err := d.sql.ExecContext(ctx,
		"INSERT INTO diet_entries (profile_id, meal, food, calories, note, created_at) VALUES (?, ?, ?, ?, ?, ?);",
		e.ProfileID, string(e.Meal), e.Food, nullInt(e.Calories), nullString(e.Note), toUnix(e.Date),
	)
	if err != nil {
		return nil, err
	}
	if e.ID, err = res.LastInsertId(); err != nil {
		return nil, err
	}
	return &e, nil
}

// ListRecentDietEntries returns the most recent diet entries up to limit for a profile.
func (d *DB) ListRecentDietEntries(ctx context.Context, profileID int64, limit int) ([]domain.DietEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, meal, food, calories, note, created_at FROM diet_entries WHERE profile_id = ? ORDER BY created_at DESC, id DESC LIMIT ?;",
		profileID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.DietEntry, 0, limit)
	for rows.Next() {
		var (
			e         domain.DietEntry
			meal      string
			calories  sql.NullInt64
			note      sql.NullString
			createdAt int64
		)
		if err := rows.Scan(&e.ID, &meal, &e.Food, &calories, &note, &createdAt); err != nil {
			return nil, err
		}
		e.ProfileID = profileID
		e.Meal = domain.Meal(meal)
		e.Calories = intPtr(calories)
		e.Note = stringPtr(note)
		e.Date = fromUnix(createdAt)
		out = append(out, e)
	}
	return out, rows.Err()
}

// AddWeightEntry inserts a new weight entry.
func (d *DB) AddWeightEntry(ctx context.Context, e domain.WeightEntry) (*domain.WeightEntry, error) {
	e.Date = e.Date.UTC()
	res, err := d.sql.ExecContext(ctx,
		"INSERT INTO weight_entries (profile_id, value, note, created_at) VALUES (?, ?, ?, ?);",
		e.ProfileID, e.Value, nullString(e.Note), toUnix(e.Date),
	)
	if err != nil {
		return nil, err
	}
	if e.ID, err = res.LastInsertId(); err != nil {
		return nil, err
	}
	return &e, nil
}

// ListRecentWeightEntries returns the most recent weight entries up to limit for a profile.
func (d *DB) ListRecentWeightEntries(ctx context.Context, profileID int64, limit int) ([]domain.WeightEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, value, note, created_at FROM weight_entries WHERE profile_id = ? ORDER BY created_at DESC, id DESC LIMIT ?;",
		profileID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.WeightEntry, 0, limit)
	for rows.Next() {
		var (
			e         domain.WeightEntry
			note      sql.NullString
			createdAt int64
		)
		if err := rows.Scan(&e.ID, &e.Value, &note, &createdAt); err != nil {
			return nil, err
		}
		e.ProfileID = profileID
		e.Note = stringPtr(note)
		e.Date = fromUnix(createdAt)
		out = append(out, e)
	}
	return out, rows.Err()
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func floatPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func stringPtr(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	v := n.String
	return &v
}
