package service_test

import (
	"context"
	"testing"

	"github.com/DnvLikhitha/FitFlex/internal/api"
	"github.com/DnvLikhitha/FitFlex/internal/service"
)

func newProfiles(t *testing.T, baseURL string) *service.Profiles {
	t.Helper()
	return &service.Profiles{
		API:   &api.Client{BaseURL: baseURL},
		Cache: newTestDB(t),
		Log:   discardLogger(),
	}
}

func TestBMI(t *testing.T) {
	t.Parallel()

	bmi, ok := service.BMI(70, 175)
	if !ok || bmi != 22.9 {
		t.Fatalf("BMI(70, 175) = %v ok=%v, want 22.9", bmi, ok)
	}
	if _, ok := service.BMI(0, 175); ok {
		t.Fatalf("missing weight should not produce a BMI")
	}
	if _, ok := service.BMI(70, 0); ok {
		t.Fatalf("missing height should not produce a BMI")
	}
}

func TestBMICategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bmi  float64
		want string
	}{
		{17.0, "underweight"},
		{18.5, "normal"},
		{24.9, "normal"},
		{25.0, "overweight"},
		{29.9, "overweight"},
		{30.0, "obese"},
	}
	for _, tc := range tests {
		if got := service.BMICategory(tc.bmi); got != tc.want {
			t.Fatalf("BMICategory(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}

func TestProfileUpdatePartial(t *testing.T) {
	t.Parallel()
	backend := newFakeBackend()
	backend.seed("users", map[string]any{"name": "Asha", "email": "asha@example.com", "password": "Secret1!", "age": float64(30), "weight": float64(70), "height": float64(170)})
	svc := newProfiles(t, backend.server(t).URL)
	ctx := context.Background()

	weight := 68.5
	u, offline, err := svc.Update(ctx, "1", service.ProfileUpdate{Weight: &weight})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if offline || u.Weight != 68.5 {
		t.Fatalf("unexpected weight: %+v offline=%v", u, offline)
	}
	// Untouched fields survive.
	if u.Name != "Asha" || u.Age != 30 || u.Height != 170 {
		t.Fatalf("partial update clobbered fields: %+v", u)
	}
}

func TestProfileGetOfflineUsesMirror(t *testing.T) {
	t.Parallel()
	backend := newFakeBackend()
	backend.seed("users", map[string]any{"name": "Asha", "email": "asha@example.com", "password": "Secret1!"})
	ts := backend.server(t)
	svc := newProfiles(t, ts.URL)
	ctx := context.Background()

	if _, _, err := svc.Get(ctx, "1"); err != nil {
		t.Fatalf("online get: %v", err)
	}

	svc.API.BaseURL = unreachableURL
	u, offline, err := svc.Get(ctx, "1")
	if err != nil {
		t.Fatalf("offline get: %v", err)
	}
	if !offline || u.Name != "Asha" {
		t.Fatalf("expected mirrored profile, got %+v offline=%v", u, offline)
	}
}
