package service

import (
	"context"
	"strings"

	"github.com/DnvLikhitha/FitFlex/internal/model"
)

// Base suggestion lists per goal focus. Unknown focuses get the general list.
var goalRecommendations = map[string][]string{
	"weight loss": {"Walking", "Running", "Cycling"},
	"endurance":   {"Running", "Cycling", "Swimming"},
	"strength":    {"Weight Training", "HIIT", "Aerobics"},
	"flexibility": {"Yoga", "Dance", "Aerobics"},
	"general":     {"Walking", "Cycling", "Yoga"},
}

// Shown when history cannot be read from the backend or the cache.
var fallbackRecommendations = []string{"Walking", "Cycling", "Yoga"}

// Recommend suggests up to three activity types for a goal focus, biased by
// the user's history: their most-frequent type replaces the last base
// suggestion unless the list already contains it.
func (t *Tracker) Recommend(ctx context.Context, userID, focus string) []string {
	base := baseRecommendations(focus)
	acts, _, err := t.Activities(ctx, userID, ActivityFilter{})
	if err != nil {
		t.Log.Warn("activity history unavailable, using static recommendations", "err", err)
		return append([]string(nil), fallbackRecommendations...)
	}
	return RecommendFrom(acts, base)
}

func baseRecommendations(focus string) []string {
	key := strings.ToLower(strings.TrimSpace(focus))
	list, ok := goalRecommendations[key]
	if !ok {
		list = goalRecommendations["general"]
	}
	return append([]string(nil), list...)
}

// RecommendFrom applies the history bias to a base list. Frequency ties break
// toward the type logged earliest in the history.
func RecommendFrom(acts []model.Activity, base []string) []string {
	fav := favoriteType(acts)
	if fav != "" && !containsFold(base, fav) && len(base) > 0 {
		base[len(base)-1] = fav
	}
	if len(base) > 3 {
		base = base[:3]
	}
	return base
}

func favoriteType(acts []model.Activity) string {
	counts := make(map[string]int)
	first := make(map[string]int)
	for i, a := range acts {
		key := strings.ToLower(a.Type)
		counts[key]++
		if _, seen := first[key]; !seen {
			first[key] = i
		}
	}
	best := ""
	for key := range counts {
		if best == "" ||
			counts[key] > counts[best] ||
			(counts[key] == counts[best] && first[key] < first[best]) {
			best = key
		}
	}
	if best == "" {
		return ""
	}
	return CanonicalType(best)
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
