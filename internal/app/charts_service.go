package app

import (
	"context"
	"slices"
	"time"

	"dietlog/internal/domain"
)

// ChartsService encapsulates chart data retrieval use cases.
type ChartsService struct {
	weightRepo domain.WeightRepository
}

// NewChartsService creates a ChartsService backed by the given repository.
func NewChartsService(wr domain.WeightRepository) *ChartsService {
	return &ChartsService{weightRepo: wr}
}

// WeightTrend returns the recent weight series oldest first, with values
// converted to unit and labels rendered in loc.
func (s *ChartsService) WeightTrend(ctx context.Context, profileID int64, unit string, loc *time.Location) ([]domain.TrendPoint, error) {
	if !domain.ValidUnit(unit) {
		return nil, domain.NewValidationError("unit", "must be \"kg\" or \"lb\"")
	}
	entries, err := s.weightRepo.ListRecentWeightEntries(ctx, profileID, domain.RecentLimit)
	if err != nil {
		return nil, &domain.StoreError{Op: "list weight entries", Err: err}
	}

	points := slices.Collect(domain.TrendSeries(entries, loc))
	if unit != domain.UnitKg {
		for i := range points {
			points[i].Value = domain.ConvertWeight(points[i].Value, domain.UnitKg, unit)
		}
	}
	if points == nil {
		points = []domain.TrendPoint{}
	}
	return points, nil
}
