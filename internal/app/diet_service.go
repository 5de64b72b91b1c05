package app

import (
	"context"
	"strings"
	"time"

	"dietlog/internal/domain"
)

// DietService encapsulates diet-logging use cases.
type DietService struct {
	repo domain.DietRepository
}

// NewDietService creates a DietService backed by the given repository.
func NewDietService(repo domain.DietRepository) *DietService {
	return &DietService{repo: repo}
}

// Create validates and stores a new diet entry stamped with the current time.
func (s *DietService) Create(ctx context.Context, profileID int64, meal, food string, calories *int, note *string) (*domain.DietEntry, error) {
	if strings.TrimSpace(meal) == "" {
		return nil, domain.NewValidationError("meal", "must not be empty")
	}
	m, ok := domain.ParseMeal(meal)
	if !ok {
		return nil, domain.NewValidationError("meal", "must be one of breakfast, lunch, dinner, snack")
	}
	food = strings.TrimSpace(food)
	if food == "" {
		return nil, domain.NewValidationError("food", "must not be empty")
	}
	if calories != nil && *calories < 0 {
		return nil, domain.NewValidationError("calories", "must not be negative")
	}

	e, err := s.repo.AddDietEntry(ctx, domain.DietEntry{
		ProfileID: profileID,
		Meal:      m,
		Food:      food,
		Calories:  calories,
		Note:      optionalText(note),
		Date:      time.Now().UTC(),
	})
	if err != nil {
		return nil, &domain.StoreError{Op: "add diet entry", Err: err}
	}
	return e, nil
}

// ListRecent returns the most recent diet entries, newest first.
func (s *DietService) ListRecent(ctx context.Context, profileID int64) ([]domain.DietEntry, error) {
	items, err := s.repo.ListRecentDietEntries(ctx, profileID, domain.RecentLimit)
	if err != nil {
		return nil, &domain.StoreError{Op: "list diet entries", Err: err}
	}
	return items, nil
}
