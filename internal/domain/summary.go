package domain

import "time"

// DietSummary is the count and calorie total of today's diet entries.
type DietSummary struct {
	Count         int `json:"count"`
	TotalCalories int `json:"totalCalories"`
}

// WeightStatus tells the presentation which message to show for today's
// weight.
type WeightStatus string

const (
	WeightStatusNoEntry  WeightStatus = "no_entry"
	WeightStatusNoTarget WeightStatus = "no_target"
	WeightStatusOK       WeightStatus = "ok"
)

// WeightSummary holds today's weight, if any, and its distance to target.
type WeightSummary struct {
	Entry            *WeightEntry `json:"entry"`
	TargetWeight     *float64     `json:"targetWeight"`
	DistanceToTarget *float64     `json:"distanceToTarget"`
	Status           WeightStatus `json:"status"`
}

// DailySummary combines the diet and weight views for a single day.
type DailySummary struct {
	Day    string        `json:"day"`
	Diet   DietSummary   `json:"diet"`
	Weight WeightSummary `json:"weight"`
}

// FilterTodayDiet returns the entries logged on now's calendar day, keeping
// input order. The input slice is not modified.
func FilterTodayDiet(entries []DietEntry, now time.Time) []DietEntry {
	out := make([]DietEntry, 0, len(entries))
	for _, e := range entries {
		if IsToday(e.Date, now) {
			out = append(out, e)
		}
	}
	return out
}

// SummarizeDiet counts today's entries and sums their calories. Entries with
// no calorie value contribute 0.
func SummarizeDiet(entries []DietEntry, now time.Time) DietSummary {
	var s DietSummary
	for _, e := range FilterTodayDiet(entries, now) {
		s.Count++
		if e.Calories != nil {
			s.TotalCalories += *e.Calories
		}
	}
	return s
}

// TodaysWeight returns the first entry in list order that was logged today.
// Lists come most-recent-first, so this is the latest weight of the day.
func TodaysWeight(entries []WeightEntry, now time.Time) *WeightEntry {
	for i := range entries {
		if IsToday(entries[i].Date, now) {
			e := entries[i]
			return &e
		}
	}
	return nil
}

// SummarizeWeight selects today's weight and computes the signed distance to
// the profile's target (positive means above target).
func SummarizeWeight(entries []WeightEntry, profile *Profile, now time.Time) WeightSummary {
	var target *float64
	if profile != nil && profile.TargetWeight != nil {
		t := *profile.TargetWeight
		target = &t
	}

	s := WeightSummary{Entry: TodaysWeight(entries, now), TargetWeight: target}
	switch {
	case s.Entry == nil:
		s.Status = WeightStatusNoEntry
	case target == nil:
		s.Status = WeightStatusNoTarget
	default:
		d := s.Entry.Value - *target
		s.DistanceToTarget = &d
		s.Status = WeightStatusOK
	}
	return s
}

// Summarize builds the summary for now's calendar day.
func Summarize(profile *Profile, diets []DietEntry, weights []WeightEntry, now time.Time) DailySummary {
	return DailySummary{
		Day:    DayBucket(now, now.Location()).String(),
		Diet:   SummarizeDiet(diets, now),
		Weight: SummarizeWeight(weights, profile, now),
	}
}
