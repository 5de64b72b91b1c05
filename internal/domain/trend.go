package domain

import (
	"iter"
	"slices"
	"time"
)

// TrendLabelLayout is the month/day layout used for chart labels.
const TrendLabelLayout = "1/2"

// TrendPoint is a single chart point.
type TrendPoint struct {
	Label string    `json:"label"`
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// TrendSeries yields at most RecentLimit points in chronological order from a
// most-recent-first list. Labels are rendered in loc. The returned sequence
// can be ranged over any number of times.
func TrendSeries(entries []WeightEntry, loc *time.Location) iter.Seq[TrendPoint] {
	if loc == nil {
		loc = time.Local
	}
	n := min(len(entries), RecentLimit)
	recent := slices.Clone(entries[:n])
	return func(yield func(TrendPoint) bool) {
		for i := len(recent) - 1; i >= 0; i-- {
			e := recent[i]
			p := TrendPoint{
				Label: e.Date.In(loc).Format(TrendLabelLayout),
				Date:  e.Date,
				Value: e.Value,
			}
			if !yield(p) {
				return
			}
		}
	}
}
