package service_test

import (
	"testing"

	"github.com/DnvLikhitha/FitFlex/internal/service"
)

func TestEstimateCalories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration int
		actType  string
		want     int
	}{
		{"walking", 30, "walking", 120},
		{"running", 30, "running", 300},
		{"cycling", 45, "cycling", 360},
		{"swimming", 20, "swimming", 180},
		{"weight training", 60, "weight training", 420},
		{"yoga", 40, "yoga", 120},
		{"hiit", 25, "hiit", 300},
		{"dance", 30, "dance", 180},
		{"aerobics rounds half rates", 7, "aerobics", 53},
		{"case insensitive", 30, "RUNNING", 300},
		{"unknown type uses fallback rate", 30, "parkour", 150},
		{"zero duration", 0, "running", 0},
		{"negative duration clamps to zero", -15, "running", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := service.EstimateCalories(tc.duration, tc.actType); got != tc.want {
				t.Fatalf("EstimateCalories(%d, %q) = %d, want %d", tc.duration, tc.actType, got, tc.want)
			}
		})
	}
}

func TestCanonicalType(t *testing.T) {
	t.Parallel()

	if got := service.CanonicalType("weight TRAINING"); got != "Weight Training" {
		t.Fatalf("expected canonical Weight Training, got %q", got)
	}
	if got := service.CanonicalType("hiit"); got != "HIIT" {
		t.Fatalf("expected HIIT, got %q", got)
	}
	if got := service.CanonicalType("Parkour"); got != "Parkour" {
		t.Fatalf("unknown types should pass through, got %q", got)
	}
}

func TestActivityTypesStableOrder(t *testing.T) {
	t.Parallel()

	types := service.ActivityTypes()
	if len(types) != 10 {
		t.Fatalf("expected 10 activity types, got %d", len(types))
	}
	if types[0] != "Walking" || types[len(types)-1] != "Others" {
		t.Fatalf("unexpected order: %v", types)
	}
}
