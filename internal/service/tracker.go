// Package service holds the business rules of the tracker: the activity
// ledger with its same-day merge, calorie estimation, goal progress, weekly
// rollups, recommendations and nutrition intake. Every write goes to the REST
// backend first and falls back to the SQLite cache when the backend is
// unreachable.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/DnvLikhitha/FitFlex/internal/api"
	"github.com/DnvLikhitha/FitFlex/internal/cache"
	"github.com/DnvLikhitha/FitFlex/internal/model"
)

// Tracker owns the activity ledger.
type Tracker struct {
	API   *api.Client
	Cache *sql.DB
	Log   *slog.Logger
}

// LogActivityInput is one logging request. Calories zero means "estimate from
// duration"; Intensity empty means "default to medium on create, keep the
// existing value on merge".
type LogActivityInput struct {
	Type      string
	Date      string
	Duration  int
	Calories  int
	Steps     int
	Intensity string
	Notes     string
}

// LogResult reports what the ledger did with the entry.
type LogResult struct {
	Activity model.Activity
	Merged   bool
	Offline  bool
}

// LogActivity appends to the daily ledger. At most one record exists per
// (user, date, type): logging the same type twice on one day merges into the
// existing record, with durations summed, calories re-estimated from the
// combined duration, steps summed and notes concatenated.
func (t *Tracker) LogActivity(ctx context.Context, userID string, in LogActivityInput) (LogResult, error) {
	if strings.TrimSpace(userID) == "" {
		return LogResult{}, fmt.Errorf("user id is required")
	}
	if strings.TrimSpace(in.Type) == "" {
		return LogResult{}, fmt.Errorf("activity type is required")
	}
	if in.Duration <= 0 {
		return LogResult{}, fmt.Errorf("duration must be > 0 minutes")
	}
	if err := validateNonNegativeInt("calories", in.Calories); err != nil {
		return LogResult{}, err
	}
	if err := validateNonNegativeInt("steps", in.Steps); err != nil {
		return LogResult{}, err
	}
	date, err := normalizeDate(in.Date)
	if err != nil {
		return LogResult{}, err
	}
	intensity, err := normalizeIntensity(in.Intensity)
	if err != nil {
		return LogResult{}, err
	}
	in.Type = CanonicalType(in.Type)
	in.Date = date
	in.Intensity = intensity

	res, err := t.logRemote(ctx, userID, in)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, api.ErrUnavailable) {
		return LogResult{}, err
	}
	t.Log.Warn("backend unreachable, logging activity offline", "type", in.Type, "date", in.Date)
	return t.logOffline(userID, in)
}

func (t *Tracker) logRemote(ctx context.Context, userID string, in LogActivityInput) (LogResult, error) {
	existing, err := t.API.ListActivities(ctx, userID, in.Date)
	if err != nil {
		return LogResult{}, err
	}
	if prev := findSameType(existing, in.Type); prev != nil {
		merged := mergeActivity(*prev, in)
		saved, err := t.API.UpdateActivity(ctx, merged)
		if err != nil {
			return LogResult{}, err
		}
		if err := cache.UpsertActivity(t.Cache, saved); err != nil {
			t.Log.Warn("mirror merged activity to cache", "err", err)
		}
		return LogResult{Activity: saved, Merged: true}, nil
	}
	saved, err := t.API.CreateActivity(ctx, newActivity(userID, in))
	if err != nil {
		return LogResult{}, err
	}
	if err := cache.UpsertActivity(t.Cache, saved); err != nil {
		t.Log.Warn("mirror new activity to cache", "err", err)
	}
	return LogResult{Activity: saved}, nil
}

func (t *Tracker) logOffline(userID string, in LogActivityInput) (LogResult, error) {
	existing, err := cache.ListActivities(t.Cache, userID, in.Date)
	if err != nil {
		return LogResult{}, err
	}
	var saved model.Activity
	merged := false
	if prev := findSameType(existing, in.Type); prev != nil {
		saved = mergeActivity(*prev, in)
		merged = true
	} else {
		saved = newActivity(userID, in)
		saved.ID = cache.NewLocalID()
	}
	if err := cache.UpsertActivity(t.Cache, saved); err != nil {
		return LogResult{}, err
	}
	return LogResult{Activity: saved, Merged: merged, Offline: true}, nil
}

func newActivity(userID string, in LogActivityInput) model.Activity {
	calories := in.Calories
	if calories == 0 {
		calories = EstimateCalories(in.Duration, in.Type)
	}
	intensity := in.Intensity
	if intensity == "" {
		intensity = defaultIntensity
	}
	return model.Activity{
		UserID:    userID,
		Type:      in.Type,
		Date:      in.Date,
		Duration:  in.Duration,
		Calories:  calories,
		Steps:     in.Steps,
		Intensity: intensity,
		Notes:     strings.TrimSpace(in.Notes),
	}
}

// mergeActivity folds a new entry into the existing same-day record. Duration
// and steps are summed; calories are always re-estimated from the combined
// duration, so a manual calorie figure on either side does not survive a
// merge.
func mergeActivity(prev model.Activity, in LogActivityInput) model.Activity {
	merged := prev
	merged.Duration = prev.Duration + in.Duration
	merged.Calories = EstimateCalories(merged.Duration, prev.Type)
	merged.Steps = prev.Steps + in.Steps
	if in.Intensity != "" {
		merged.Intensity = in.Intensity
	}
	merged.Notes = joinNotes(prev.Notes, in.Notes)
	return merged
}

func findSameType(acts []model.Activity, activityType string) *model.Activity {
	for i := range acts {
		if strings.EqualFold(acts[i].Type, activityType) {
			return &acts[i]
		}
	}
	return nil
}

// ActivityFilter narrows a history listing. Dates compare as plain
// YYYY-MM-DD strings, which orders correctly for the fixed layout.
type ActivityFilter struct {
	Type string
	From string
	To   string
}

// Activities lists a user's ledger newest-first, falling back to the cache
// when the backend is down. The offline flag tells the caller which source
// answered.
func (t *Tracker) Activities(ctx context.Context, userID string, f ActivityFilter) ([]model.Activity, bool, error) {
	acts, err := t.API.ListActivities(ctx, userID, "")
	offline := false
	if err != nil {
		if !errors.Is(err, api.ErrUnavailable) {
			return nil, false, err
		}
		t.Log.Warn("backend unreachable, listing activities from cache")
		acts, err = cache.ListActivities(t.Cache, userID, "")
		if err != nil {
			return nil, false, err
		}
		offline = true
	} else if err := cache.MirrorActivities(t.Cache, userID, acts); err != nil {
		t.Log.Warn("mirror activities to cache", "err", err)
	}
	return filterActivities(acts, f), offline, nil
}

func filterActivities(acts []model.Activity, f ActivityFilter) []model.Activity {
	out := make([]model.Activity, 0, len(acts))
	for _, a := range acts {
		if f.Type != "" && !strings.EqualFold(a.Type, f.Type) {
			continue
		}
		if f.From != "" && a.Date < f.From {
			continue
		}
		if f.To != "" && a.Date > f.To {
			continue
		}
		out = append(out, a)
	}
	// Backend listings arrive in insertion order; sort so online and cached
	// reads print identically.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// GetActivity finds one ledger record by id.
func (t *Tracker) GetActivity(ctx context.Context, userID, id string) (model.Activity, bool, error) {
	acts, offline, err := t.Activities(ctx, userID, ActivityFilter{})
	if err != nil {
		return model.Activity{}, false, err
	}
	for _, a := range acts {
		if a.ID == id {
			return a, offline, nil
		}
	}
	return model.Activity{}, offline, fmt.Errorf("activity %s: %w", id, api.ErrNotFound)
}

// UpdateActivity replaces a record wholesale, bypassing the merge rules.
// Calories are re-estimated only when the caller zeroed them.
func (t *Tracker) UpdateActivity(ctx context.Context, a model.Activity) (model.Activity, bool, error) {
	if strings.TrimSpace(a.ID) == "" {
		return model.Activity{}, false, fmt.Errorf("activity id is required")
	}
	if a.Duration <= 0 {
		return model.Activity{}, false, fmt.Errorf("duration must be > 0 minutes")
	}
	a.Type = CanonicalType(a.Type)
	date, err := normalizeDate(a.Date)
	if err != nil {
		return model.Activity{}, false, err
	}
	a.Date = date
	if a.Calories == 0 {
		a.Calories = EstimateCalories(a.Duration, a.Type)
	}

	saved, err := t.API.UpdateActivity(ctx, a)
	if err != nil {
		if !errors.Is(err, api.ErrUnavailable) {
			return model.Activity{}, false, err
		}
		t.Log.Warn("backend unreachable, updating activity offline", "id", a.ID)
		if err := cache.UpsertActivity(t.Cache, a); err != nil {
			return model.Activity{}, false, err
		}
		return a, true, nil
	}
	if err := cache.UpsertActivity(t.Cache, saved); err != nil {
		t.Log.Warn("mirror updated activity to cache", "err", err)
	}
	return saved, false, nil
}

// DeleteActivity removes a record. Deleting an id the backend no longer has
// is treated as done, not an error.
func (t *Tracker) DeleteActivity(ctx context.Context, id string) (bool, error) {
	if strings.TrimSpace(id) == "" {
		return false, fmt.Errorf("activity id is required")
	}
	err := t.API.DeleteActivity(ctx, id)
	switch {
	case err == nil, errors.Is(err, api.ErrNotFound):
		if err := cache.DeleteActivity(t.Cache, id); err != nil {
			t.Log.Warn("remove deleted activity from cache", "err", err)
		}
		return false, nil
	case errors.Is(err, api.ErrUnavailable):
		t.Log.Warn("backend unreachable, deleting activity offline", "id", id)
		if err := cache.DeleteActivity(t.Cache, id); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, err
	}
}
