package service

import (
	"math"
	"strings"
	"time"

	"github.com/DnvLikhitha/FitFlex/internal/model"
)

// Totals sums one set of ledger records.
type Totals struct {
	Calories int
	Steps    int
	Duration int
	Workouts int
}

func SumTotals(acts []model.Activity) Totals {
	var t Totals
	for _, a := range acts {
		t.Calories += a.Calories
		t.Steps += a.Steps
		t.Duration += a.Duration
		t.Workouts++
	}
	return t
}

// DayBucket is one day of the weekly rollup.
type DayBucket struct {
	Date     string
	Label    string
	Calories int
	Steps    int
	Duration int
	Workouts int
}

// WeeklyRollup buckets records into the seven days ending at ref, oldest
// first. Every bucket is always present, zeroed when the day has no records;
// records outside the window are ignored. Matching is exact date-string
// equality against each bucket's day.
func WeeklyRollup(acts []model.Activity, ref time.Time) []DayBucket {
	buckets := make([]DayBucket, 7)
	for i := 0; i < 7; i++ {
		day := ref.AddDate(0, 0, i-6)
		buckets[i] = DayBucket{
			Date:  day.Format(dateLayout),
			Label: day.Format("Mon"),
		}
	}
	for _, a := range acts {
		for i := range buckets {
			if a.Date == buckets[i].Date {
				buckets[i].Calories += a.Calories
				buckets[i].Steps += a.Steps
				buckets[i].Duration += a.Duration
				buckets[i].Workouts++
				break
			}
		}
	}
	return buckets
}

// TypeCount is one slice of the activity distribution.
type TypeCount struct {
	Type     string
	Count    int
	Duration int
}

// TypeDistribution counts records per type, case-insensitively, in order of
// first appearance.
func TypeDistribution(acts []model.Activity) []TypeCount {
	index := make(map[string]int)
	out := make([]TypeCount, 0)
	for _, a := range acts {
		key := strings.ToLower(a.Type)
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, TypeCount{Type: CanonicalType(a.Type)})
		}
		out[i].Count++
		out[i].Duration += a.Duration
	}
	return out
}

// PercentOfMax scales a bucket value against the week's maximum for chart
// rendering. A zero max flattens every bar to zero instead of dividing by it.
func PercentOfMax(value, max int) float64 {
	if max <= 0 || value <= 0 {
		return 0
	}
	return math.Floor(float64(value) / float64(max) * 100)
}

// GoalsSummary condenses a goal list for the dashboard ring.
type GoalsSummary struct {
	Active          int
	Completed       int
	PercentComplete float64
}

func SummarizeGoals(goals []model.Goal) GoalsSummary {
	var s GoalsSummary
	for _, g := range goals {
		if g.Completed {
			s.Completed++
		} else {
			s.Active++
		}
	}
	if total := s.Active + s.Completed; total > 0 {
		s.PercentComplete = math.Floor(float64(s.Completed) / float64(total) * 100)
	}
	return s
}
