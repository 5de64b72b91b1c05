// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"dietlog/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu       sync.Mutex
	profiles map[int64]domain.Profile
	diets    []domain.DietEntry
	weights  []domain.WeightEntry

	dietIDCounter   int64
	weightIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		profiles: make(map[int64]domain.Profile),
	}
}

// Ensure interfaces are met.
var _ domain.ProfileRepository = (*DB)(nil)
var _ domain.DietRepository = (*DB)(nil)
var _ domain.WeightRepository = (*DB)(nil)

// --- ProfileRepository ---

// GetProfile returns the profile with the given id, or nil if none is stored.
func (db *DB) GetProfile(ctx context.Context, profileID int64) (*domain.Profile, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	p, ok := db.profiles[profileID]
	if !ok {
		return nil, nil
	}
	return cloneProfile(p), nil
}

// UpsertProfile creates or replaces the profile keyed by p.ID.
func (db *DB) UpsertProfile(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	stored := *cloneProfile(p)
	stored.UpdatedAt = stored.UpdatedAt.UTC()
	db.profiles[p.ID] = stored
	return cloneProfile(stored), nil
}

func cloneProfile(p domain.Profile) *domain.Profile {
	out := p
	if p.TargetWeight != nil {
		v := *p.TargetWeight
		out.TargetWeight = &v
	}
	if p.Height != nil {
		v := *p.Height
		out.Height = &v
	}
	return &out
}

// --- DietRepository ---

// AddDietEntry appends a diet entry and assigns its id.
func (db *DB) AddDietEntry(ctx context.Context, e domain.DietEntry) (*domain.DietEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.dietIDCounter++
	e.ID = db.dietIDCounter
	e.Date = e.Date.UTC()
	db.diets = append(db.diets, e)
	return &e, nil
}

// ListRecentDietEntries lists the most recent diet entries for a profile.
func (db *DB) ListRecentDietEntries(ctx context.Context, profileID int64, limit int) ([]domain.DietEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.DietEntry, 0, len(db.diets))
	for _, e := range db.diets {
		if e.ProfileID == profileID {
			result = append(result, e)
		}
	}
	slices.SortFunc(result, func(a, b domain.DietEntry) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return truncate(result, limit), nil
}

// --- WeightRepository ---

// AddWeightEntry appends a weight entry and assigns its id.
func (db *DB) AddWeightEntry(ctx context.Context, e domain.WeightEntry) (*domain.WeightEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.weightIDCounter++
	e.ID = db.weightIDCounter
	e.Date = e.Date.UTC()
	db.weights = append(db.weights, e)
	return &e, nil
}

// ListRecentWeightEntries lists the most recent weight entries for a profile.
func (db *DB) ListRecentWeightEntries(ctx context.Context, profileID int64, limit int) ([]domain.WeightEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.WeightEntry, 0, len(db.weights))
	for _, e := range db.weights {
		if e.ProfileID == profileID {
			result = append(result, e)
		}
	}
	slices.SortFunc(result, func(a, b domain.WeightEntry) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return truncate(result, limit), nil
}

func truncate[T any](items []T, limit int) []T {
	if limit >= 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
