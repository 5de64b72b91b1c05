package app_test

import (
	"context"

	"dietlog/internal/domain"
)

type mockProfileRepo struct {
	getFn    func(ctx context.Context, profileID int64) (*domain.Profile, error)
	upsertFn func(ctx context.Context, p domain.Profile) (*domain.Profile, error)
}

func (m *mockProfileRepo) GetProfile(ctx context.Context, profileID int64) (*domain.Profile, error) {
	if m.getFn != nil {
		return m.getFn(ctx, profileID)
	}
	return nil, nil
}

func (m *mockProfileRepo) UpsertProfile(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, p)
	}
	return &p, nil
}

type mockDietRepo struct {
	addFn  func(ctx context.Context, e domain.DietEntry) (*domain.DietEntry, error)
	listFn func(ctx context.Context, profileID int64, limit int) ([]domain.DietEntry, error)
}

func (m *mockDietRepo) AddDietEntry(ctx context.Context, e domain.DietEntry) (*domain.DietEntry, error) {
	if m.addFn != nil {
		return m.addFn(ctx, e)
	}
	e.ID = 1
	return &e, nil
}

func (m *mockDietRepo) ListRecentDietEntries(ctx context.Context, profileID int64, limit int) ([]domain.DietEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx, profileID, limit)
	}
	return nil, nil
}

type mockWeightRepo struct {
	addFn  func(ctx context.Context, e domain.WeightEntry) (*domain.WeightEntry, error)
	listFn func(ctx context.Context, profileID int64, limit int) ([]domain.WeightEntry, error)
}

func (m *mockWeightRepo) AddWeightEntry(ctx context.Context, e domain.WeightEntry) (*domain.WeightEntry, error) {
	if m.addFn != nil {
		return m.addFn(ctx, e)
	}
	e.ID = 1
	return &e, nil
}

func (m *mockWeightRepo) ListRecentWeightEntries(ctx context.Context, profileID int64, limit int) ([]domain.WeightEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx, profileID, limit)
	}
	return nil, nil
}

func strPtr(s string) *string     { return &s }
func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
