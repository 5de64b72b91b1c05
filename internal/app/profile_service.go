// Package app holds the application services and business logic.
package app

import (
	"context"
	"strings"
	"time"

	"dietlog/internal/domain"
)

// ProfileService encapsulates profile use cases.
type ProfileService struct {
	repo domain.ProfileRepository
}

// NewProfileService creates a ProfileService backed by the given repository.
func NewProfileService(repo domain.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// Get returns the stored profile, or an empty placeholder when none exists.
func (s *ProfileService) Get(ctx context.Context, profileID int64) (*domain.Profile, error) {
	p, err := s.repo.GetProfile(ctx, profileID)
	if err != nil {
		return nil, &domain.StoreError{Op: "get profile", Err: err}
	}
	if p == nil {
		return domain.EmptyProfile(profileID), nil
	}
	return p, nil
}

// Upsert validates and stores the profile identified by profileID.
func (s *ProfileService) Upsert(ctx context.Context, profileID int64, name string, targetWeight, height *float64) (*domain.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "must not be empty")
	}
	tw, err := optionalPositive("targetWeight", targetWeight)
	if err != nil {
		return nil, err
	}
	h, err := optionalPositive("height", height)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.UpsertProfile(ctx, domain.Profile{
		ID:           profileID,
		Name:         name,
		TargetWeight: tw,
		Height:       h,
		UpdatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, &domain.StoreError{Op: "upsert profile", Err: err}
	}
	return p, nil
}
