package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dietlog/internal/app"
	"dietlog/internal/domain"
)

func recentWeights() []domain.WeightEntry {
	return []domain.WeightEntry{
		{ID: 3, Value: 100, Date: time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Value: 101, Date: time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)},
		{ID: 1, Value: 102, Date: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func TestWeightTrend_BadUnit(t *testing.T) {
	svc := app.NewChartsService(&mockWeightRepo{})
	_, err := svc.WeightTrend(context.Background(), 1, "stones", time.UTC)
	assert.True(t, domain.IsValidation(err))
}

func TestWeightTrend_Chronological(t *testing.T) {
	svc := app.NewChartsService(&mockWeightRepo{
		listFn: func(_ context.Context, _ int64, _ int) ([]domain.WeightEntry, error) {
			return recentWeights(), nil
		},
	})

	points, err := svc.WeightTrend(context.Background(), 1, domain.UnitKg, time.UTC)
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, "10/1", points[0].Label)
	assert.Equal(t, 102.0, points[0].Value)
	assert.Equal(t, "10/16", points[2].Label)
}

func TestWeightTrend_ConvertUnit(t *testing.T) {
	svc := app.NewChartsService(&mockWeightRepo{
		listFn: func(_ context.Context, _ int64, _ int) ([]domain.WeightEntry, error) {
			return recentWeights(), nil
		},
	})

	points, err := svc.WeightTrend(context.Background(), 1, domain.UnitLb, time.UTC)
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.InDelta(t, 220.46, points[2].Value, 0.01)
}

func TestWeightTrend_EmptyIsNotNil(t *testing.T) {
	svc := app.NewChartsService(&mockWeightRepo{})

	points, err := svc.WeightTrend(context.Background(), 1, domain.UnitKg, time.UTC)
	require.NoError(t, err)
	assert.NotNil(t, points)
	assert.Empty(t, points)
}

func TestWeightTrend_RepoError(t *testing.T) {
	svc := app.NewChartsService(&mockWeightRepo{
		listFn: func(_ context.Context, _ int64, _ int) ([]domain.WeightEntry, error) {
			return nil, errors.New("db down")
		},
	})

	_, err := svc.WeightTrend(context.Background(), 1, domain.UnitKg, time.UTC)
	var se *domain.StoreError
	assert.ErrorAs(t, err, &se)
}

func TestGeneralAdvice_ReturnsCopy(t *testing.T) {
	a := app.GeneralAdvice()
	require.NotEmpty(t, a)
	a[0].Text = "changed"
	assert.NotEqual(t, "changed", app.GeneralAdvice()[0].Text)
}
