package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/DnvLikhitha/FitFlex/internal/cache"
	"github.com/DnvLikhitha/FitFlex/internal/service"
)

func TestLogActivityCreatesEntry(t *testing.T) {
	t.Parallel()
	backend := newFakeBackend()
	tr := newTracker(t, backend.server(t).URL)

	res, err := tr.LogActivity(context.Background(), "1", service.LogActivityInput{
		Type:     "walking",
		Date:     "2026-08-24",
		Duration: 30,
	})
	if err != nil {
		t.Fatalf("log activity: %v", err)
	}
	if res.Merged || res.Offline {
		t.Fatalf("expected plain create, got %+v", res)
	}
	a := res.Activity
	if a.Type != "Walking" || a.Calories != 120 || a.Intensity != "medium" {
		t.Fatalf("unexpected activity: %+v", a)
	}
	if a.ID == "" {
		t.Fatalf("expected server-assigned id")
	}
}

func TestLogActivitySameDayMerges(t *testing.T) {
	t.Parallel()
	backend := newFakeBackend()
	tr := newTracker(t, backend.server(t).URL)
	ctx := context.Background()

	if _, err := tr.LogActivity(ctx, "1", service.LogActivityInput{
		Type: "running", Date: "2026-08-24", Duration: 20, Steps: 2000, Notes: "morning",
	}); err != nil {
		t.Fatalf("first log: %v", err)
	}
	res, err := tr.LogActivity(ctx, "1", service.LogActivityInput{
		Type: "Running", Date: "2026-08-24", Duration: 10, Steps: 1000, Notes: "evening",
	})
	if err != nil {
		t.Fatalf("second log: %v", err)
	}
	if !res.Merged {
		t.Fatalf("expected merge, got %+v", res)
	}
	a := res.Activity
	if a.Duration != 30 || a.Calories != 300 || a.Steps != 3000 {
		t.Fatalf("unexpected merged totals: %+v", a)
	}
	if a.Notes != "morning + evening" {
		t.Fatalf("unexpected merged notes: %q", a.Notes)
	}
	if got := backend.count("activities"); got != 1 {
		t.Fatalf("expected a single ledger record, backend has %d", got)
	}
}

func TestLogActivityMergeDiscardsManualCalories(t *testing.T) {
	t.Parallel()
	backend := newFakeBackend()
	tr := newTracker(t, backend.server(t).URL)
	ctx := context.Background()

	if _, err := tr.LogActivity(ctx, "1", service.LogActivityInput{
		Type: "cycling", Date: "2026-08-24", Duration: 30, Calories: 999,
	}); err != nil {
		t.Fatalf("first log: %v", err)
	}
	res, err := tr.LogActivity(ctx, "1", service.LogActivityInput{
		Type: "cycling", Date: "2026-08-24", Duration: 10,
	})
	if err != nil {
		t.Fatalf("second log: %v", err)
	}
	// 40 min at the cycling rate, not 999 plus anything.
	if res.Activity.Calories != 320 {
		t.Fatalf("expected re-estimated 320 kcal after merge, got %d", res.Activity.Calories)
	}
}

func TestLogActivityMergeSumsSteps(t *testing.T) {
	t.Parallel()
	backend := newFakeBackend()
	tr := newTracker(t, backend.server(t).URL)
	ctx := context.Background()

	if _, err := tr.LogActivity(ctx, "1", service.LogActivityInput{
		Type: "walking", Date: "2026-08-24", Duration: 20, Steps: 2000,
	}); err != nil {
		t.Fatalf("first log: %v", err)
	}
	res, err := tr.LogActivity(ctx, "1", service.LogActivityInput{
		Type: "walking", Date: "2026-08-24", Duration: 10, Steps: 500,
	})
	if err != nil {
		t.Fatalf("second log: %v", err)
	}
	// Steps accumulate like duration; the second entry's count is never
	// dropped.
	if res.Activity.Steps != 2500 || res.Activity.Duration != 30 {
		t.Fatalf("unexpected merged record: %+v", res.Activity)
	}
}

func TestLogActivityMergeKeepsIntensityUnlessProvided(t *testing.T) {
	t.Parallel()
	backend := newFakeBackend()
	tr := newTracker(t, backend.server(t).URL)
	ctx := context.Background()

	if _, err := tr.LogActivity(ctx, "1", service.LogActivityInput{
		Type: "yoga", Date: "2026-08-24", Duration: 20, Intensity: "low",
	}); err != nil {
		t.Fatalf("first log: %v", err)
	}
	res, err := tr.LogActivity(ctx, "1", service.LogActivityInput{
		Type: "yoga", Date: "2026-08-24", Duration: 20,
	})
	if err != nil {
		t.Fatalf("second log: %v", err)
	}
	if res.Activity.Intensity != "low" {
		t.Fatalf("merge without intensity should keep existing, got %q", res.Activity.Intensity)
	}

	res, err = tr.LogActivity(ctx, "1", service.LogActivityInput{
		Type: "yoga", Date: "2026-08-24", Duration: 20, Intensity: "high",
	})
	if err != nil {
		t.Fatalf("third log: %v", err)
	}
	if res.Activity.Intensity != "high" {
		t.Fatalf("provided intensity should override, got %q", res.Activity.Intensity)
	}
}

func TestLogActivityOfflineFallback(t *testing.T) {
	t.Parallel()
	tr := newTracker(t, unreachableURL)
	ctx := context.Background()

	res, err := tr.LogActivity(ctx, "1", service.LogActivityInput{
		Type: "walking", Date: "2026-08-24", Duration: 30,
	})
	if err != nil {
		t.Fatalf("offline log: %v", err)
	}
	if !res.Offline {
		t.Fatalf("expected offline result")
	}
	// Offline-born ids are uuids, never numeric.
	if len(res.Activity.ID) != 36 || !strings.Contains(res.Activity.ID, "-") {
		t.Fatalf("expected uuid id, got %q", res.Activity.ID)
	}

	// A second offline log of the same type merges inside the cache too.
	res, err = tr.LogActivity(ctx, "1", service.LogActivityInput{
		Type: "walking", Date: "2026-08-24", Duration: 15,
	})
	if err != nil {
		t.Fatalf("second offline log: %v", err)
	}
	if !res.Merged || res.Activity.Duration != 45 || res.Activity.Calories != 180 {
		t.Fatalf("unexpected offline merge: %+v", res)
	}

	cached, err := cache.ListActivities(tr.Cache, "1", "2026-08-24")
	if err != nil {
		t.Fatalf("list cached: %v", err)
	}
	if len(cached) != 1 {
		t.Fatalf("expected one cached record, got %d", len(cached))
	}
}

func TestLogActivityValidation(t *testing.T) {
	t.Parallel()
	tr := newTracker(t, unreachableURL)
	ctx := context.Background()

	if _, err := tr.LogActivity(ctx, "1", service.LogActivityInput{Type: "walking"}); err == nil {
		t.Fatalf("expected error for missing duration")
	}
	if _, err := tr.LogActivity(ctx, "1", service.LogActivityInput{Duration: 30}); err == nil {
		t.Fatalf("expected error for missing type")
	}
	if _, err := tr.LogActivity(ctx, "", service.LogActivityInput{Type: "walking", Duration: 30}); err == nil {
		t.Fatalf("expected error for missing user")
	}
	if _, err := tr.LogActivity(ctx, "1", service.LogActivityInput{Type: "walking", Duration: 30, Date: "24-08-2026"}); err == nil {
		t.Fatalf("expected error for malformed date")
	}
	if _, err := tr.LogActivity(ctx, "1", service.LogActivityInput{Type: "walking", Duration: 30, Intensity: "extreme"}); err == nil {
		t.Fatalf("expected error for bad intensity")
	}
}

func TestActivitiesFilters(t *testing.T) {
	t.Parallel()
	backend := newFakeBackend()
	backend.seed("activities", map[string]any{"userId": "1", "type": "Running", "date": "2026-08-20", "duration": float64(20), "calories": float64(200), "steps": float64(0), "intensity": "medium", "notes": ""})
	backend.seed("activities", map[string]any{"userId": "1", "type": "Yoga", "date": "2026-08-22", "duration": float64(40), "calories": float64(120), "steps": float64(0), "intensity": "low", "notes": ""})
	backend.seed("activities", map[string]any{"userId": "1", "type": "Running", "date": "2026-08-25", "duration": float64(30), "calories": float64(300), "steps": float64(0), "intensity": "high", "notes": ""})
	backend.seed("activities", map[string]any{"userId": "2", "type": "Running", "date": "2026-08-25", "duration": float64(10), "calories": float64(100), "steps": float64(0), "intensity": "medium", "notes": ""})
	tr := newTracker(t, backend.server(t).URL)

	acts, offline, err := tr.Activities(context.Background(), "1", service.ActivityFilter{
		Type: "running",
		From: "2026-08-21",
		To:   "2026-08-31",
	})
	if err != nil {
		t.Fatalf("list activities: %v", err)
	}
	if offline {
		t.Fatalf("expected online listing")
	}
	if len(acts) != 1 || acts[0].Date != "2026-08-25" || acts[0].Duration != 30 {
		t.Fatalf("unexpected filtered result: %+v", acts)
	}
}

func TestActivitiesNewestFirst(t *testing.T) {
	t.Parallel()
	backend := newFakeBackend()
	// Seeded in insertion order, oldest in the middle.
	backend.seed("activities", map[string]any{"userId": "1", "type": "Walking", "date": "2026-08-22", "duration": float64(30), "calories": float64(120), "steps": float64(0), "intensity": "medium", "notes": ""})
	backend.seed("activities", map[string]any{"userId": "1", "type": "Running", "date": "2026-08-20", "duration": float64(20), "calories": float64(200), "steps": float64(0), "intensity": "medium", "notes": ""})
	backend.seed("activities", map[string]any{"userId": "1", "type": "Yoga", "date": "2026-08-25", "duration": float64(40), "calories": float64(120), "steps": float64(0), "intensity": "low", "notes": ""})
	tr := newTracker(t, backend.server(t).URL)
	ctx := context.Background()

	acts, _, err := tr.Activities(ctx, "1", service.ActivityFilter{})
	if err != nil {
		t.Fatalf("online list: %v", err)
	}
	if len(acts) != 3 || acts[0].Date != "2026-08-25" || acts[1].Date != "2026-08-22" || acts[2].Date != "2026-08-20" {
		t.Fatalf("expected newest-first online listing, got %+v", acts)
	}

	// The cache fallback must print the same order.
	tr.API.BaseURL = unreachableURL
	cached, offline, err := tr.Activities(ctx, "1", service.ActivityFilter{})
	if err != nil {
		t.Fatalf("offline list: %v", err)
	}
	if !offline || len(cached) != 3 {
		t.Fatalf("expected cached listing, got offline=%v acts=%+v", offline, cached)
	}
	for i := range acts {
		if cached[i].Date != acts[i].Date {
			t.Fatalf("online and cached orders diverge at %d: %s vs %s", i, acts[i].Date, cached[i].Date)
		}
	}
}

func TestActivitiesOfflineReadsCacheMirror(t *testing.T) {
	t.Parallel()
	backend := newFakeBackend()
	backend.seed("activities", map[string]any{"userId": "1", "type": "Walking", "date": "2026-08-24", "duration": float64(30), "calories": float64(120), "steps": float64(0), "intensity": "medium", "notes": ""})
	ts := backend.server(t)
	tr := newTracker(t, ts.URL)
	ctx := context.Background()

	// Online read mirrors into the cache.
	if _, _, err := tr.Activities(ctx, "1", service.ActivityFilter{}); err != nil {
		t.Fatalf("online list: %v", err)
	}

	tr.API.BaseURL = unreachableURL
	acts, offline, err := tr.Activities(ctx, "1", service.ActivityFilter{})
	if err != nil {
		t.Fatalf("offline list: %v", err)
	}
	if !offline || len(acts) != 1 || acts[0].Type != "Walking" {
		t.Fatalf("expected mirrored record offline, got offline=%v acts=%+v", offline, acts)
	}
}

func TestDeleteActivityToleratesMissing(t *testing.T) {
	t.Parallel()
	backend := newFakeBackend()
	tr := newTracker(t, backend.server(t).URL)

	offline, err := tr.DeleteActivity(context.Background(), "999")
	if err != nil {
		t.Fatalf("delete missing: %v", err)
	}
	if offline {
		t.Fatalf("expected online delete")
	}
}

func TestUpdateActivityReestimatesWhenCaloriesZeroed(t *testing.T) {
	t.Parallel()
	backend := newFakeBackend()
	tr := newTracker(t, backend.server(t).URL)
	ctx := context.Background()

	res, err := tr.LogActivity(ctx, "1", service.LogActivityInput{
		Type: "running", Date: "2026-08-24", Duration: 20,
	})
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	a := res.Activity
	a.Duration = 45
	a.Calories = 0
	saved, offline, err := tr.UpdateActivity(ctx, a)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if offline || saved.Calories != 450 {
		t.Fatalf("expected 450 kcal re-estimate, got %+v offline=%v", saved, offline)
	}
}
