package domain

import (
	"context"
	"time"
)

// WeightEntry represents a single body-weight measurement in kilograms.
type WeightEntry struct {
	ID        int64     `json:"id"`
	ProfileID int64     `json:"profileId"`
	Value     float64   `json:"value"`
	Note      *string   `json:"note"`
	Date      time.Time `json:"date"`
}

// WeightRepository is the port for weight persistence.
type WeightRepository interface {
	AddWeightEntry(ctx context.Context, e WeightEntry) (*WeightEntry, error)
	// ListRecentWeightEntries returns entries ordered by date descending, then
	// id descending, bounded to limit.
	ListRecentWeightEntries(ctx context.Context, profileID int64, limit int) ([]WeightEntry, error)
}
