// Package domain contains the core business entities, repository ports and
// the pure aggregation logic behind the daily summary and trend views.
package domain

import (
	"context"
	"time"
)

// DefaultProfileID is the profile used when the caller does not name one.
const DefaultProfileID int64 = 1

// RecentLimit bounds every recency-ordered list returned by a store.
const RecentLimit = 30

// Profile holds the user's name and optional body targets.
type Profile struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	TargetWeight *float64  `json:"targetWeight"`
	Height       *float64  `json:"height"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// EmptyProfile returns the placeholder profile reported when none is stored.
func EmptyProfile(id int64) *Profile {
	return &Profile{ID: id}
}

// ProfileRepository is the port for profile persistence.
type ProfileRepository interface {
	// GetProfile returns nil, nil when no profile exists for id.
	GetProfile(ctx context.Context, profileID int64) (*Profile, error)
	UpsertProfile(ctx context.Context, p Profile) (*Profile, error)
}
