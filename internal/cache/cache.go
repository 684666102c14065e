// Package cache is the offline side of every persistence call: the same
// collections as the REST backend, held in SQLite, so merge/progress logic
// behaves identically whether or not the backend is reachable.
package cache

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/DnvLikhitha/FitFlex/internal/model"
)

// NewLocalID labels records born offline. Server-assigned ids are numeric, so
// a uuid can never collide with one.
func NewLocalID() string {
	return uuid.NewString()
}

// Activities

func ListActivities(db *sql.DB, userID, date string) ([]model.Activity, error) {
	query := `SELECT id, user_id, type, date, duration, calories, steps, intensity, notes FROM activities WHERE user_id = ?`
	args := []any{userID}
	if strings.TrimSpace(date) != "" {
		query += ` AND date = ?`
		args = append(args, date)
	}
	query += ` ORDER BY date DESC, id`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cached activities: %w", err)
	}
	defer rows.Close()

	items := make([]model.Activity, 0)
	for rows.Next() {
		var a model.Activity
		if err := rows.Scan(&a.ID, &a.UserID, &a.Type, &a.Date, &a.Duration, &a.Calories, &a.Steps, &a.Intensity, &a.Notes); err != nil {
			return nil, fmt.Errorf("scan cached activity: %w", err)
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cached activities: %w", err)
	}
	return items, nil
}

func UpsertActivity(db *sql.DB, a model.Activity) error {
	if strings.TrimSpace(a.ID) == "" {
		return fmt.Errorf("activity id is required")
	}
	_, err := db.Exec(`
INSERT INTO activities(id, user_id, type, date, duration, calories, steps, intensity, notes)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  user_id=excluded.user_id,
  type=excluded.type,
  date=excluded.date,
  duration=excluded.duration,
  calories=excluded.calories,
  steps=excluded.steps,
  intensity=excluded.intensity,
  notes=excluded.notes,
  updated_at=CURRENT_TIMESTAMP
`, a.ID, a.UserID, a.Type, a.Date, a.Duration, a.Calories, a.Steps, a.Intensity, a.Notes)
	if err != nil {
		return fmt.Errorf("upsert cached activity %s: %w", a.ID, err)
	}
	return nil
}

// DeleteActivity is idempotent: deleting an absent record is not an error.
func DeleteActivity(db *sql.DB, id string) error {
	if _, err := db.Exec(`DELETE FROM activities WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete cached activity %s: %w", id, err)
	}
	return nil
}

// MirrorActivities replaces the user's cached collection with a fresh copy
// after every successful backend fetch, so the cache never serves a mix of
// live and stale rows.
func MirrorActivities(db *sql.DB, userID string, acts []model.Activity) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin activity mirror: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM activities WHERE user_id = ?`, userID); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear cached activities: %w", err)
	}
	for _, a := range acts {
		if _, err := tx.Exec(`
INSERT INTO activities(id, user_id, type, date, duration, calories, steps, intensity, notes)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)
`, a.ID, a.UserID, a.Type, a.Date, a.Duration, a.Calories, a.Steps, a.Intensity, a.Notes); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("mirror activity %s: %w", a.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit activity mirror: %w", err)
	}
	return nil
}

// Goals

func ListGoals(db *sql.DB, userID string) ([]model.Goal, error) {
	rows, err := db.Query(`
SELECT id, user_id, title, type, target, current, unit, deadline, completed
FROM goals
WHERE user_id = ?
ORDER BY deadline, id
`, userID)
	if err != nil {
		return nil, fmt.Errorf("list cached goals: %w", err)
	}
	defer rows.Close()

	items := make([]model.Goal, 0)
	for rows.Next() {
		var g model.Goal
		if err := rows.Scan(&g.ID, &g.UserID, &g.Title, &g.Type, &g.Target, &g.Current, &g.Unit, &g.Deadline, &g.Completed); err != nil {
			return nil, fmt.Errorf("scan cached goal: %w", err)
		}
		items = append(items, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cached goals: %w", err)
	}
	return items, nil
}

func GetGoal(db *sql.DB, id string) (*model.Goal, error) {
	var g model.Goal
	err := db.QueryRow(`
SELECT id, user_id, title, type, target, current, unit, deadline, completed
FROM goals WHERE id = ?
`, id).Scan(&g.ID, &g.UserID, &g.Title, &g.Type, &g.Target, &g.Current, &g.Unit, &g.Deadline, &g.Completed)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get cached goal %s: %w", id, err)
	}
	return &g, nil
}

func UpsertGoal(db *sql.DB, g model.Goal) error {
	if strings.TrimSpace(g.ID) == "" {
		return fmt.Errorf("goal id is required")
	}
	_, err := db.Exec(`
INSERT INTO goals(id, user_id, title, type, target, current, unit, deadline, completed)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  user_id=excluded.user_id,
  title=excluded.title,
  type=excluded.type,
  target=excluded.target,
  current=excluded.current,
  unit=excluded.unit,
  deadline=excluded.deadline,
  completed=excluded.completed,
  updated_at=CURRENT_TIMESTAMP
`, g.ID, g.UserID, g.Title, g.Type, g.Target, g.Current, g.Unit, g.Deadline, g.Completed)
	if err != nil {
		return fmt.Errorf("upsert cached goal %s: %w", g.ID, err)
	}
	return nil
}

func DeleteGoal(db *sql.DB, id string) error {
	if _, err := db.Exec(`DELETE FROM goals WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete cached goal %s: %w", id, err)
	}
	return nil
}

func MirrorGoals(db *sql.DB, userID string, goals []model.Goal) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin goal mirror: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM goals WHERE user_id = ?`, userID); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear cached goals: %w", err)
	}
	for _, g := range goals {
		if _, err := tx.Exec(`
INSERT INTO goals(id, user_id, title, type, target, current, unit, deadline, completed)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)
`, g.ID, g.UserID, g.Title, g.Type, g.Target, g.Current, g.Unit, g.Deadline, g.Completed); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("mirror goal %s: %w", g.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit goal mirror: %w", err)
	}
	return nil
}

// Users

func GetUser(db *sql.DB, id string) (*model.User, error) {
	var u model.User
	err := db.QueryRow(`
SELECT id, name, email, password, age, weight, height FROM users WHERE id = ?
`, id).Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Age, &u.Weight, &u.Height)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get cached user %s: %w", id, err)
	}
	return &u, nil
}

func UpsertUser(db *sql.DB, u model.User) error {
	if strings.TrimSpace(u.ID) == "" {
		return fmt.Errorf("user id is required")
	}
	_, err := db.Exec(`
INSERT INTO users(id, name, email, password, age, weight, height)
VALUES(?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  name=excluded.name,
  email=excluded.email,
  password=excluded.password,
  age=excluded.age,
  weight=excluded.weight,
  height=excluded.height,
  updated_at=CURRENT_TIMESTAMP
`, u.ID, u.Name, u.Email, u.Password, u.Age, u.Weight, u.Height)
	if err != nil {
		return fmt.Errorf("upsert cached user %s: %w", u.ID, err)
	}
	return nil
}

// Nutrition

func GetIntakeDay(db *sql.DB, userID, date string) (*model.IntakeDay, error) {
	var d model.IntakeDay
	err := db.QueryRow(`
SELECT id, user_id, date, calories, protein, carbs, fat
FROM nutrition_days WHERE user_id = ? AND date = ?
`, userID, date).Scan(&d.ID, &d.UserID, &d.Date, &d.Calories, &d.Protein, &d.Carbs, &d.Fat)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get cached intake for %s: %w", date, err)
	}
	return &d, nil
}

func UpsertIntakeDay(db *sql.DB, d model.IntakeDay) error {
	if strings.TrimSpace(d.ID) == "" {
		return fmt.Errorf("intake day id is required")
	}
	_, err := db.Exec(`
INSERT INTO nutrition_days(id, user_id, date, calories, protein, carbs, fat)
VALUES(?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(user_id, date) DO UPDATE SET
  calories=excluded.calories,
  protein=excluded.protein,
  carbs=excluded.carbs,
  fat=excluded.fat,
  updated_at=CURRENT_TIMESTAMP
`, d.ID, d.UserID, d.Date, d.Calories, d.Protein, d.Carbs, d.Fat)
	if err != nil {
		return fmt.Errorf("upsert cached intake for %s: %w", d.Date, err)
	}
	return nil
}
