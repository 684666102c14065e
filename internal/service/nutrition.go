package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/DnvLikhitha/FitFlex/internal/api"
	"github.com/DnvLikhitha/FitFlex/internal/cache"
	"github.com/DnvLikhitha/FitFlex/internal/model"
	"github.com/DnvLikhitha/FitFlex/internal/provider/openfoodfacts"
)

// Nutrition owns food search and the per-day intake accumulator.
type Nutrition struct {
	API   *api.Client
	Cache *sql.DB
	Food  *openfoodfacts.Client
	Log   *slog.Logger
}

// Search proxies an Open Food Facts free-text lookup.
func (n *Nutrition) Search(ctx context.Context, query string, limit int) ([]openfoodfacts.Product, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("search query is required")
	}
	return n.Food.Search(ctx, query, limit)
}

// ScaleMacros multiplies per-100g values by a serving count. Open Food Facts
// reports per 100g, so one serving here means 100g of the product.
func ScaleMacros(m openfoodfacts.Macros, servings float64) openfoodfacts.Macros {
	return openfoodfacts.Macros{
		EnergyKcal:   m.EnergyKcal * servings,
		ProteinG:     m.ProteinG * servings,
		CarbsG:       m.CarbsG * servings,
		FatG:         m.FatG * servings,
		SugarG:       m.SugarG * servings,
		FiberG:       m.FiberG * servings,
		SodiumG:      m.SodiumG * servings,
		SaturatedFat: m.SaturatedFat * servings,
	}
}

// AddIntake folds scaled macros into the user's intake record for the date,
// creating the day on first use. One record exists per (user, date).
func (n *Nutrition) AddIntake(ctx context.Context, userID, date string, m openfoodfacts.Macros, servings float64) (model.IntakeDay, bool, error) {
	if strings.TrimSpace(userID) == "" {
		return model.IntakeDay{}, false, fmt.Errorf("user id is required")
	}
	if servings <= 0 {
		return model.IntakeDay{}, false, fmt.Errorf("servings must be > 0")
	}
	date, err := normalizeDate(date)
	if err != nil {
		return model.IntakeDay{}, false, err
	}
	scaled := ScaleMacros(m, servings)

	day, err := n.API.GetIntakeDay(ctx, userID, date)
	if err != nil {
		if !errors.Is(err, api.ErrUnavailable) {
			return model.IntakeDay{}, false, err
		}
		n.Log.Warn("backend unreachable, recording intake offline", "date", date)
		return n.addIntakeOffline(userID, date, scaled)
	}
	if day == nil {
		created, err := n.API.CreateIntakeDay(ctx, model.IntakeDay{
			UserID:   userID,
			Date:     date,
			Calories: scaled.EnergyKcal,
			Protein:  scaled.ProteinG,
			Carbs:    scaled.CarbsG,
			Fat:      scaled.FatG,
		})
		if err != nil {
			return model.IntakeDay{}, false, err
		}
		if err := cache.UpsertIntakeDay(n.Cache, created); err != nil {
			n.Log.Warn("mirror intake day to cache", "err", err)
		}
		return created, false, nil
	}
	day.Calories += scaled.EnergyKcal
	day.Protein += scaled.ProteinG
	day.Carbs += scaled.CarbsG
	day.Fat += scaled.FatG
	updated, err := n.API.UpdateIntakeDay(ctx, *day)
	if err != nil {
		return model.IntakeDay{}, false, err
	}
	if err := cache.UpsertIntakeDay(n.Cache, updated); err != nil {
		n.Log.Warn("mirror intake day to cache", "err", err)
	}
	return updated, false, nil
}

func (n *Nutrition) addIntakeOffline(userID, date string, scaled openfoodfacts.Macros) (model.IntakeDay, bool, error) {
	day, err := cache.GetIntakeDay(n.Cache, userID, date)
	if err != nil {
		return model.IntakeDay{}, false, err
	}
	if day == nil {
		day = &model.IntakeDay{
			ID:     cache.NewLocalID(),
			UserID: userID,
			Date:   date,
		}
	}
	day.Calories += scaled.EnergyKcal
	day.Protein += scaled.ProteinG
	day.Carbs += scaled.CarbsG
	day.Fat += scaled.FatG
	if err := cache.UpsertIntakeDay(n.Cache, *day); err != nil {
		return model.IntakeDay{}, false, err
	}
	return *day, true, nil
}

// IntakeDay reads the accumulated intake for a date; a day with no entries
// comes back zeroed rather than as an error.
func (n *Nutrition) IntakeDay(ctx context.Context, userID, date string) (model.IntakeDay, bool, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return model.IntakeDay{}, false, err
	}
	day, err := n.API.GetIntakeDay(ctx, userID, date)
	if err != nil {
		if !errors.Is(err, api.ErrUnavailable) {
			return model.IntakeDay{}, false, err
		}
		n.Log.Warn("backend unreachable, reading intake from cache", "date", date)
		cached, err := cache.GetIntakeDay(n.Cache, userID, date)
		if err != nil {
			return model.IntakeDay{}, false, err
		}
		if cached == nil {
			return model.IntakeDay{UserID: userID, Date: date}, true, nil
		}
		return *cached, true, nil
	}
	if day == nil {
		return model.IntakeDay{UserID: userID, Date: date}, false, nil
	}
	if err := cache.UpsertIntakeDay(n.Cache, *day); err != nil {
		n.Log.Warn("mirror intake day to cache", "err", err)
	}
	return *day, false, nil
}

// Watch polls today's intake on an interval and reports each reading until
// the context is cancelled. The first reading fires immediately.
func (n *Nutrition) Watch(ctx context.Context, userID string, interval time.Duration, report func(model.IntakeDay, bool)) error {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		day, offline, err := n.IntakeDay(ctx, userID, today())
		if err != nil {
			n.Log.Warn("intake poll failed", "err", err)
		} else {
			report(day, offline)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
