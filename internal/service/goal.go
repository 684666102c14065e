package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DnvLikhitha/FitFlex/internal/api"
	"github.com/DnvLikhitha/FitFlex/internal/cache"
	"github.com/DnvLikhitha/FitFlex/internal/model"
)

var goalTypes = []string{"weight", "distance", "steps", "workouts", "calories", "custom"}

// Goals owns goal CRUD and progress tracking.
type Goals struct {
	API   *api.Client
	Cache *sql.DB
	Log   *slog.Logger
}

// GoalInput describes a new goal.
type GoalInput struct {
	Title    string
	Type     string
	Target   float64
	Unit     string
	Deadline string
}

// ApplyProgress advances a goal by an increment, clamping at the target so
// progress can never overshoot. A goal whose current value reaches the target
// flips to completed and stays completed.
func ApplyProgress(g model.Goal, increment float64) model.Goal {
	g.Current += increment
	if g.Current > g.Target {
		g.Current = g.Target
	}
	g.Completed = g.Current >= g.Target
	return g
}

// Create validates and stores a goal. Progress starts at zero.
func (s *Goals) Create(ctx context.Context, userID string, in GoalInput) (model.Goal, bool, error) {
	if strings.TrimSpace(userID) == "" {
		return model.Goal{}, false, fmt.Errorf("user id is required")
	}
	if strings.TrimSpace(in.Title) == "" {
		return model.Goal{}, false, fmt.Errorf("goal title is required")
	}
	goalType := strings.ToLower(strings.TrimSpace(in.Type))
	if !containsFold(goalTypes, goalType) {
		return model.Goal{}, false, fmt.Errorf("invalid goal type %q (use one of %s)", in.Type, strings.Join(goalTypes, ", "))
	}
	if in.Target <= 0 {
		return model.Goal{}, false, fmt.Errorf("goal target must be > 0")
	}
	deadline := strings.TrimSpace(in.Deadline)
	if deadline != "" {
		var err error
		if deadline, err = normalizeDate(deadline); err != nil {
			return model.Goal{}, false, err
		}
	}
	g := model.Goal{
		UserID:   userID,
		Title:    strings.TrimSpace(in.Title),
		Type:     goalType,
		Target:   in.Target,
		Unit:     strings.TrimSpace(in.Unit),
		Deadline: deadline,
	}

	created, err := s.API.CreateGoal(ctx, g)
	if err != nil {
		if !errors.Is(err, api.ErrUnavailable) {
			return model.Goal{}, false, err
		}
		s.Log.Warn("backend unreachable, creating goal offline", "title", g.Title)
		g.ID = cache.NewLocalID()
		if err := cache.UpsertGoal(s.Cache, g); err != nil {
			return model.Goal{}, false, err
		}
		return g, true, nil
	}
	if err := cache.UpsertGoal(s.Cache, created); err != nil {
		s.Log.Warn("mirror new goal to cache", "err", err)
	}
	return created, false, nil
}

// List returns the user's goals, from the cache when the backend is down.
func (s *Goals) List(ctx context.Context, userID string) ([]model.Goal, bool, error) {
	goals, err := s.API.ListGoals(ctx, userID)
	if err != nil {
		if !errors.Is(err, api.ErrUnavailable) {
			return nil, false, err
		}
		s.Log.Warn("backend unreachable, listing goals from cache")
		goals, err = cache.ListGoals(s.Cache, userID)
		if err != nil {
			return nil, false, err
		}
		return goals, true, nil
	}
	if err := cache.MirrorGoals(s.Cache, userID, goals); err != nil {
		s.Log.Warn("mirror goals to cache", "err", err)
	}
	return goals, false, nil
}

// Get finds one goal by id.
func (s *Goals) Get(ctx context.Context, userID, id string) (model.Goal, bool, error) {
	goals, offline, err := s.List(ctx, userID)
	if err != nil {
		return model.Goal{}, false, err
	}
	for _, g := range goals {
		if g.ID == id {
			return g, offline, nil
		}
	}
	return model.Goal{}, offline, fmt.Errorf("goal %s: %w", id, api.ErrNotFound)
}

// AddProgress advances a goal and persists the result. Progress on an already
// completed goal is a no-op thanks to the clamp.
func (s *Goals) AddProgress(ctx context.Context, userID, id string, increment float64) (model.Goal, bool, error) {
	if increment <= 0 {
		return model.Goal{}, false, fmt.Errorf("progress increment must be > 0")
	}
	g, _, err := s.Get(ctx, userID, id)
	if err != nil {
		return model.Goal{}, false, err
	}
	return s.Update(ctx, ApplyProgress(g, increment))
}

// Update replaces a goal, recomputing the completed flag from current vs
// target so an edit that raises the target reopens the goal.
func (s *Goals) Update(ctx context.Context, g model.Goal) (model.Goal, bool, error) {
	if strings.TrimSpace(g.ID) == "" {
		return model.Goal{}, false, fmt.Errorf("goal id is required")
	}
	if g.Target <= 0 {
		return model.Goal{}, false, fmt.Errorf("goal target must be > 0")
	}
	if g.Current > g.Target {
		g.Current = g.Target
	}
	g.Completed = g.Current >= g.Target

	saved, err := s.API.UpdateGoal(ctx, g)
	if err != nil {
		if !errors.Is(err, api.ErrUnavailable) {
			return model.Goal{}, false, err
		}
		s.Log.Warn("backend unreachable, updating goal offline", "id", g.ID)
		if err := cache.UpsertGoal(s.Cache, g); err != nil {
			return model.Goal{}, false, err
		}
		return g, true, nil
	}
	if err := cache.UpsertGoal(s.Cache, saved); err != nil {
		s.Log.Warn("mirror updated goal to cache", "err", err)
	}
	return saved, false, nil
}

// Delete removes a goal, tolerating ids the backend no longer has.
func (s *Goals) Delete(ctx context.Context, id string) (bool, error) {
	if strings.TrimSpace(id) == "" {
		return false, fmt.Errorf("goal id is required")
	}
	err := s.API.DeleteGoal(ctx, id)
	switch {
	case err == nil, errors.Is(err, api.ErrNotFound):
		if err := cache.DeleteGoal(s.Cache, id); err != nil {
			s.Log.Warn("remove deleted goal from cache", "err", err)
		}
		return false, nil
	case errors.Is(err, api.ErrUnavailable):
		s.Log.Warn("backend unreachable, deleting goal offline", "id", id)
		if err := cache.DeleteGoal(s.Cache, id); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, err
	}
}

// GoalTypes lists the accepted goal types.
func GoalTypes() []string {
	return append([]string(nil), goalTypes...)
}
