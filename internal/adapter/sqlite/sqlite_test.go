package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dietlog/internal/domain"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "data", "dietlog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRunMigrations_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dietlog.db")
	require.NoError(t, RunMigrations(path))
	require.NoError(t, RunMigrations(path))
}

func TestProfileUpsert(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	p, err := db.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, p)

	target, height := 65.0, 172.0
	updated := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)
	saved, err := db.UpsertProfile(ctx, domain.Profile{ID: 1, Name: "Lin", TargetWeight: &target, Height: &height, UpdatedAt: updated})
	require.NoError(t, err)
	assert.Equal(t, "Lin", saved.Name)
	require.NotNil(t, saved.TargetWeight)
	assert.Equal(t, 65.0, *saved.TargetWeight)
	assert.True(t, updated.Equal(saved.UpdatedAt))

	saved, err = db.UpsertProfile(ctx, domain.Profile{ID: 1, Name: "Lin Wei", UpdatedAt: updated.Add(time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, "Lin Wei", saved.Name)
	assert.Nil(t, saved.TargetWeight)
	assert.Nil(t, saved.Height)
}

func TestDietEntries(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	cal := 200
	note := "boiled"
	base := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)

	_, err := db.AddDietEntry(ctx, domain.DietEntry{ProfileID: 1, Meal: domain.MealBreakfast, Food: "蛋", Calories: &cal, Note: &note, Date: base})
	require.NoError(t, err)
	_, err = db.AddDietEntry(ctx, domain.DietEntry{ProfileID: 1, Meal: domain.MealLunch, Food: "饭", Date: base.Add(4 * time.Hour)})
	require.NoError(t, err)
	_, err = db.AddDietEntry(ctx, domain.DietEntry{ProfileID: 2, Meal: domain.MealSnack, Food: "nuts", Date: base})
	require.NoError(t, err)

	items, err := db.ListRecentDietEntries(ctx, 1, domain.RecentLimit)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "饭", items[0].Food)
	assert.Nil(t, items[0].Calories)
	assert.Equal(t, domain.MealBreakfast, items[1].Meal)
	require.NotNil(t, items[1].Calories)
	assert.Equal(t, 200, *items[1].Calories)
	require.NotNil(t, items[1].Note)
	assert.Equal(t, "boiled", *items[1].Note)
	assert.True(t, base.Equal(items[1].Date))
}

func TestDietEntries_RejectsUnknownMeal(t *testing.T) {
	db := openTestDB(t)
	_, err := db.AddDietEntry(context.Background(), domain.DietEntry{ProfileID: 1, Meal: "brunch", Food: "x", Date: time.Now()})
	assert.Error(t, err)
}

func TestWeightEntries_OrderTieAndLimit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	base := time.Date(2026, 9, 1, 7, 0, 0, 0, time.UTC)

	for i := 0; i < 32; i++ {
		_, err := db.AddWeightEntry(ctx, domain.WeightEntry{ProfileID: 1, Value: float64(60 + i), Date: base.AddDate(0, 0, i)})
		require.NoError(t, err)
	}
	tie, err := db.AddWeightEntry(ctx, domain.WeightEntry{ProfileID: 1, Value: 99, Date: base.AddDate(0, 0, 31)})
	require.NoError(t, err)

	items, err := db.ListRecentWeightEntries(ctx, 1, domain.RecentLimit)
	require.NoError(t, err)
	require.Len(t, items, domain.RecentLimit)
	assert.Equal(t, tie.ID, items[0].ID)
	assert.Equal(t, 91.0, items[1].Value)
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].Date.After(items[i-1].Date))
	}
}
