package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/DnvLikhitha/FitFlex/internal/api"
	"github.com/DnvLikhitha/FitFlex/internal/cache"
	"github.com/DnvLikhitha/FitFlex/internal/model"
)

// Profiles owns the user record behind the session.
type Profiles struct {
	API   *api.Client
	Cache *sql.DB
	Log   *slog.Logger
}

// Get loads a user, from the cache when the backend is down.
func (p *Profiles) Get(ctx context.Context, id string) (model.User, bool, error) {
	u, err := p.API.GetUser(ctx, id)
	if err != nil {
		if !errors.Is(err, api.ErrUnavailable) {
			return model.User{}, false, err
		}
		p.Log.Warn("backend unreachable, reading profile from cache", "id", id)
		cached, cerr := cache.GetUser(p.Cache, id)
		if cerr != nil {
			return model.User{}, false, cerr
		}
		if cached == nil {
			return model.User{}, false, err
		}
		return *cached, true, nil
	}
	if err := cache.UpsertUser(p.Cache, u); err != nil {
		p.Log.Warn("mirror profile to cache", "err", err)
	}
	return u, false, nil
}

// ProfileUpdate carries optional profile edits; nil fields stay unchanged.
type ProfileUpdate struct {
	Name   *string
	Age    *int
	Weight *float64
	Height *float64
}

// Update applies a partial edit to the profile. Email and password do not
// change through this path.
func (p *Profiles) Update(ctx context.Context, id string, in ProfileUpdate) (model.User, bool, error) {
	u, _, err := p.Get(ctx, id)
	if err != nil {
		return model.User{}, false, err
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return model.User{}, false, fmt.Errorf("name cannot be empty")
		}
		u.Name = strings.TrimSpace(*in.Name)
	}
	if in.Age != nil {
		if *in.Age < 0 || *in.Age > 150 {
			return model.User{}, false, fmt.Errorf("age must be between 0 and 150")
		}
		u.Age = *in.Age
	}
	if in.Weight != nil {
		if *in.Weight < 0 {
			return model.User{}, false, fmt.Errorf("weight must be >= 0")
		}
		u.Weight = *in.Weight
	}
	if in.Height != nil {
		if *in.Height < 0 {
			return model.User{}, false, fmt.Errorf("height must be >= 0")
		}
		u.Height = *in.Height
	}

	saved, err := p.API.UpdateUser(ctx, u)
	if err != nil {
		if !errors.Is(err, api.ErrUnavailable) {
			return model.User{}, false, err
		}
		p.Log.Warn("backend unreachable, updating profile offline", "id", id)
		if err := cache.UpsertUser(p.Cache, u); err != nil {
			return model.User{}, false, err
		}
		return u, true, nil
	}
	if err := cache.UpsertUser(p.Cache, saved); err != nil {
		p.Log.Warn("mirror profile to cache", "err", err)
	}
	return saved, false, nil
}

// BMI computes body mass index from weight in kg and height in cm. The ok
// flag is false when either measurement is missing.
func BMI(weightKg, heightCm float64) (float64, bool) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, false
	}
	h := heightCm / 100
	bmi := weightKg / (h * h)
	return math.Round(bmi*10) / 10, true
}

// BMICategory maps a BMI value onto the WHO bands.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "underweight"
	case bmi < 25:
		return "normal"
	case bmi < 30:
		return "overweight"
	default:
		return "obese"
	}
}
