package app

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"dietlog/internal/domain"
)

// Sources reported in Dashboard.Unavailable when a read fails.
const (
	SourceProfile = "profile"
	SourceDiet    = "diet"
	SourceWeight  = "weight"
)

// Dashboard is the same-day overview shown on the home page.
type Dashboard struct {
	domain.DailySummary
	Profile     *domain.Profile `json:"profile"`
	Unavailable []string        `json:"unavailable,omitempty"`
}

// DashboardService assembles the daily summary from the three stores.
type DashboardService struct {
	profiles domain.ProfileRepository
	diets    domain.DietRepository
	weights  domain.WeightRepository
}

// NewDashboardService creates a DashboardService backed by the given
// repositories.
func NewDashboardService(pr domain.ProfileRepository, dr domain.DietRepository, wr domain.WeightRepository) *DashboardService {
	return &DashboardService{profiles: pr, diets: dr, weights: wr}
}

// Today fetches profile, diet and weight data concurrently and summarises the
// calendar day of now, in now's location. A failed read degrades that part
// of the summary to its empty placeholder and is listed in Unavailable.
func (s *DashboardService) Today(ctx context.Context, profileID int64, now time.Time) (*Dashboard, error) {
	var (
		profile    *domain.Profile
		diets      []domain.DietEntry
		weights    []domain.WeightEntry
		profileErr error
		dietErr    error
		weightErr  error
	)

	var g errgroup.Group
	g.Go(func() error {
		profile, profileErr = s.profiles.GetProfile(ctx, profileID)
		return nil
	})
	g.Go(func() error {
		diets, dietErr = s.diets.ListRecentDietEntries(ctx, profileID, domain.RecentLimit)
		return nil
	})
	g.Go(func() error {
		weights, weightErr = s.weights.ListRecentWeightEntries(ctx, profileID, domain.RecentLimit)
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var unavailable []string
	if profileErr != nil {
		log.Errorf("dashboard: get profile %d: %s", profileID, profileErr)
		unavailable = append(unavailable, SourceProfile)
		profile = nil
	}
	if dietErr != nil {
		log.Errorf("dashboard: list diet entries %d: %s", profileID, dietErr)
		unavailable = append(unavailable, SourceDiet)
		diets = nil
	}
	if weightErr != nil {
		log.Errorf("dashboard: list weight entries %d: %s", profileID, weightErr)
		unavailable = append(unavailable, SourceWeight)
		weights = nil
	}
	if profile == nil {
		profile = domain.EmptyProfile(profileID)
	}

	return &Dashboard{
		DailySummary: domain.Summarize(profile, diets, weights, now),
		Profile:      profile,
		Unavailable:  unavailable,
	}, nil
}
