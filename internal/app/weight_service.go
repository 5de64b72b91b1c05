package app

import (
	"context"
	"math"
	"time"

	"dietlog/internal/domain"
)

// WeightService encapsulates weight-tracking use cases.
type WeightService struct {
	repo domain.WeightRepository
}

// NewWeightService creates a WeightService backed by the given repository.
func NewWeightService(repo domain.WeightRepository) *WeightService {
	return &WeightService{repo: repo}
}

// Create validates and stores a new weight measurement in kilograms.
func (s *WeightService) Create(ctx context.Context, profileID int64, value float64, note *string) (*domain.WeightEntry, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return nil, domain.NewValidationError("value", "must be > 0")
	}
	e, err := s.repo.AddWeightEntry(ctx, domain.WeightEntry{
		ProfileID: profileID,
		Value:     value,
		Note:      optionalText(note),
		Date:      time.Now().UTC(),
	})
	if err != nil {
		return nil, &domain.StoreError{Op: "add weight entry", Err: err}
	}
	return e, nil
}

// ListRecent returns the most recent weight entries, newest first.
func (s *WeightService) ListRecent(ctx context.Context, profileID int64) ([]domain.WeightEntry, error) {
	items, err := s.repo.ListRecentWeightEntries(ctx, profileID, domain.RecentLimit)
	if err != nil {
		return nil, &domain.StoreError{Op: "list weight entries", Err: err}
	}
	return items, nil
}
