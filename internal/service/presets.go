package service

import (
	"math"
	"strings"
)

// ActivityPreset carries the canonical display name and the default
// calories-burned-per-minute rate for one activity type.
type ActivityPreset struct {
	Name           string
	CaloriesPerMin float64
}

var activityOrder = []string{
	"walking", "running", "cycling", "swimming", "weight training",
	"yoga", "hiit", "dance", "aerobics", "others",
}

var activityPresets = map[string]ActivityPreset{
	"walking":         {Name: "Walking", CaloriesPerMin: 4},
	"running":         {Name: "Running", CaloriesPerMin: 10},
	"cycling":         {Name: "Cycling", CaloriesPerMin: 8},
	"swimming":        {Name: "Swimming", CaloriesPerMin: 9},
	"weight training": {Name: "Weight Training", CaloriesPerMin: 7},
	"yoga":            {Name: "Yoga", CaloriesPerMin: 3},
	"hiit":            {Name: "HIIT", CaloriesPerMin: 12},
	"dance":           {Name: "Dance", CaloriesPerMin: 6},
	"aerobics":        {Name: "Aerobics", CaloriesPerMin: 7.5},
	"others":          {Name: "Others", CaloriesPerMin: 5},
}

// Preset looks up the preset for an activity type, case-insensitively.
// Unknown types get the "Others" preset.
func Preset(activityType string) ActivityPreset {
	key := strings.ToLower(strings.TrimSpace(activityType))
	if p, ok := activityPresets[key]; ok {
		return p
	}
	return activityPresets["others"]
}

// EstimateCalories estimates the calorie burn for a duration in minutes.
// Negative durations count as zero rather than erroring: the estimator has no
// failure mode.
func EstimateCalories(durationMin int, activityType string) int {
	if durationMin < 0 {
		durationMin = 0
	}
	return int(math.Round(float64(durationMin) * Preset(activityType).CaloriesPerMin))
}

// CanonicalType normalizes the casing of known activity types on write;
// unrecognized types are kept as entered (they still estimate at the Others
// rate).
func CanonicalType(activityType string) string {
	trimmed := strings.TrimSpace(activityType)
	if p, ok := activityPresets[strings.ToLower(trimmed)]; ok {
		return p.Name
	}
	return trimmed
}

// ActivityTypes lists the canonical type names in their fixed display order.
func ActivityTypes() []string {
	out := make([]string, 0, len(activityOrder))
	for _, key := range activityOrder {
		out = append(out, activityPresets[key].Name)
	}
	return out
}
