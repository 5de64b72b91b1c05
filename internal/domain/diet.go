package domain

import (
	"context"
	"strings"
	"time"
)

// Meal identifies which meal of the day a diet entry belongs to.
type Meal string

const (
	MealBreakfast Meal = "breakfast"
	MealLunch     Meal = "lunch"
	MealDinner    Meal = "dinner"
	MealSnack     Meal = "snack"
)

var mealAliases = map[string]Meal{
	"breakfast": MealBreakfast,
	"morning":   MealBreakfast,
	"早餐":        MealBreakfast,
	"lunch":     MealLunch,
	"midday":    MealLunch,
	"午餐":        MealLunch,
	"dinner":    MealDinner,
	"evening":   MealDinner,
	"晚餐":        MealDinner,
	"snack":     MealSnack,
	"加餐":        MealSnack,
}

// ParseMeal normalises a meal name. English names, the morning/midday/evening
// synonyms and the Chinese labels are accepted.
func ParseMeal(s string) (Meal, bool) {
	m, ok := mealAliases[strings.ToLower(strings.TrimSpace(s))]
	return m, ok
}

// DietEntry is a single logged food item.
type DietEntry struct {
	ID        int64     `json:"id"`
	ProfileID int64     `json:"profileId"`
	Meal      Meal      `json:"meal"`
	Food      string    `json:"food"`
	Calories  *int      `json:"calories"`
	Note      *string   `json:"note"`
	Date      time.Time `json:"date"`
}

// DietRepository is the port for diet persistence.
type DietRepository interface {
	AddDietEntry(ctx context.Context, e DietEntry) (*DietEntry, error)
	// ListRecentDietEntries returns entries ordered by date descending, then
	// id descending, bounded to limit.
	ListRecentDietEntries(ctx context.Context, profileID int64, limit int) ([]DietEntry, error)
}
