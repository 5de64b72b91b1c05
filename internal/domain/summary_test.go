package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dietlog/internal/domain"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func at(day, hour, minute int) time.Time {
	return time.Date(2026, 10, day, hour, minute, 0, 0, shanghai)
}

func TestSummarizeDiet_Scenario(t *testing.T) {
	now := at(16, 20, 0)
	diets := []domain.DietEntry{
		{ID: 2, Meal: domain.MealLunch, Food: "饭", Calories: intPtr(500), Date: at(16, 12, 30)},
		{ID: 1, Meal: domain.MealBreakfast, Food: "蛋", Calories: intPtr(200), Date: at(16, 8, 0)},
		{ID: 0, Meal: domain.MealDinner, Food: "面", Calories: intPtr(400), Date: at(15, 19, 0)},
	}

	got := domain.SummarizeDiet(diets, now)
	assert.Equal(t, domain.DietSummary{Count: 2, TotalCalories: 700}, got)
}

func TestSummarizeDiet_Empty(t *testing.T) {
	assert.Equal(t, domain.DietSummary{}, domain.SummarizeDiet(nil, at(16, 12, 0)))
}

func TestSummarizeDiet_MissingCaloriesCountAsZero(t *testing.T) {
	now := at(16, 20, 0)
	diets := []domain.DietEntry{
		{Food: "apple", Date: at(16, 10, 0)},
		{Food: "rice", Calories: intPtr(300), Date: at(16, 12, 0)},
		{Food: "tea", Calories: intPtr(0), Date: at(16, 15, 0)},
	}

	assert.Equal(t, domain.DietSummary{Count: 3, TotalCalories: 300}, domain.SummarizeDiet(diets, now))
}

func TestSummarizeDiet_ExcludesTomorrow(t *testing.T) {
	now := at(16, 20, 0)
	diets := []domain.DietEntry{
		{Food: "future", Calories: intPtr(900), Date: at(17, 0, 1)},
		{Food: "today", Calories: intPtr(100), Date: at(16, 0, 0)},
	}

	assert.Equal(t, domain.DietSummary{Count: 1, TotalCalories: 100}, domain.SummarizeDiet(diets, now))
}

func TestFilterTodayDiet_DoesNotMutateInput(t *testing.T) {
	now := at(16, 20, 0)
	diets := []domain.DietEntry{
		{ID: 3, Date: at(16, 12, 0)},
		{ID: 2, Date: at(15, 12, 0)},
		{ID: 1, Date: at(16, 8, 0)},
	}
	before := append([]domain.DietEntry(nil), diets...)

	got := domain.FilterTodayDiet(diets, now)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(1), got[1].ID)
	assert.Equal(t, before, diets)
}

func TestSummarizeWeight_Scenario(t *testing.T) {
	now := at(16, 20, 0)
	weights := []domain.WeightEntry{
		{ID: 2, Value: 68.2, Date: at(16, 7, 0)},
		{ID: 1, Value: 69.0, Date: at(14, 7, 0)},
	}
	profile := &domain.Profile{ID: 1, Name: "me", TargetWeight: floatPtr(65.0)}

	got := domain.SummarizeWeight(weights, profile, now)
	require.NotNil(t, got.Entry)
	assert.Equal(t, 68.2, got.Entry.Value)
	require.NotNil(t, got.DistanceToTarget)
	assert.InDelta(t, 3.2, *got.DistanceToTarget, 1e-9)
	assert.Equal(t, domain.WeightStatusOK, got.Status)
}

func TestSummarizeWeight_DistanceIsExactAndSigned(t *testing.T) {
	now := at(16, 20, 0)
	value, target := 63.7, 65.0
	weights := []domain.WeightEntry{{Value: value, Date: at(16, 7, 0)}}

	got := domain.SummarizeWeight(weights, &domain.Profile{TargetWeight: &target}, now)
	require.NotNil(t, got.DistanceToTarget)
	assert.Equal(t, value-target, *got.DistanceToTarget)
	assert.Negative(t, *got.DistanceToTarget)
}

func TestSummarizeWeight_NoEntryToday(t *testing.T) {
	now := at(16, 20, 0)
	weights := []domain.WeightEntry{{Value: 70.0, Date: at(13, 7, 0)}}

	for _, profile := range []*domain.Profile{
		nil,
		{Name: "no target"},
		{Name: "target", TargetWeight: floatPtr(65)},
	} {
		got := domain.SummarizeWeight(weights, profile, now)
		assert.Nil(t, got.Entry)
		assert.Nil(t, got.DistanceToTarget)
		assert.Equal(t, domain.WeightStatusNoEntry, got.Status)
	}
}

func TestSummarizeWeight_NoTarget(t *testing.T) {
	now := at(16, 20, 0)
	weights := []domain.WeightEntry{{Value: 70.0, Date: at(16, 7, 0)}}

	got := domain.SummarizeWeight(weights, &domain.Profile{Name: "me"}, now)
	require.NotNil(t, got.Entry)
	assert.Nil(t, got.DistanceToTarget)
	assert.Equal(t, domain.WeightStatusNoTarget, got.Status)
}

func TestTodaysWeight_PicksFirstInListOrder(t *testing.T) {
	now := at(16, 20, 0)
	same := at(16, 7, 0)
	weights := []domain.WeightEntry{
		{ID: 5, Value: 67.9, Date: same},
		{ID: 4, Value: 68.4, Date: same},
		{ID: 3, Value: 68.8, Date: at(16, 6, 0)},
	}

	got := domain.TodaysWeight(weights, now)
	require.NotNil(t, got)
	assert.Equal(t, int64(5), got.ID)
	assert.True(t, domain.IsToday(got.Date, now))
}

func TestTodaysWeight_ReturnsCopy(t *testing.T) {
	now := at(16, 20, 0)
	weights := []domain.WeightEntry{{ID: 1, Value: 70, Date: at(16, 7, 0)}}

	got := domain.TodaysWeight(weights, now)
	require.NotNil(t, got)
	got.Value = 1
	assert.Equal(t, 70.0, weights[0].Value)
}

func TestSummarize_Idempotent(t *testing.T) {
	now := at(16, 20, 0)
	profile := &domain.Profile{ID: 1, Name: "me", TargetWeight: floatPtr(65)}
	diets := []domain.DietEntry{{Calories: intPtr(250), Date: at(16, 9, 0)}}
	weights := []domain.WeightEntry{{Value: 66.5, Date: at(16, 7, 0)}}

	first := domain.Summarize(profile, diets, weights, now)
	second := domain.Summarize(profile, diets, weights, now)
	assert.Equal(t, first, second)
	assert.Equal(t, "2026-10-16", first.Day)
	assert.Equal(t, 250, first.Diet.TotalCalories)
	assert.Equal(t, domain.WeightStatusOK, first.Weight.Status)
}
