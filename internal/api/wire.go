package api

import (
	"strconv"
	"strings"

	"github.com/DnvLikhitha/FitFlex/internal/model"
)

// Wire types keep the loosely-typed backend shapes out of the model layer.
// Create payloads must not carry an id field at all, or json-server would
// store the empty value instead of assigning one.

type wireActivity struct {
	ID        any    `json:"id,omitempty"`
	UserID    any    `json:"userId"`
	Type      string `json:"type"`
	Date      string `json:"date"`
	Duration  int    `json:"duration"`
	Calories  int    `json:"calories"`
	Steps     int    `json:"steps"`
	Intensity string `json:"intensity"`
	Notes     string `json:"notes"`
}

func newWireActivity(a model.Activity) wireActivity {
	w := wireActivity{
		UserID:    a.UserID,
		Type:      a.Type,
		Date:      a.Date,
		Duration:  a.Duration,
		Calories:  a.Calories,
		Steps:     a.Steps,
		Intensity: a.Intensity,
		Notes:     a.Notes,
	}
	if a.ID != "" {
		w.ID = a.ID
	}
	return w
}

func (w wireActivity) toModel() model.Activity {
	return model.Activity{
		ID:        idString(w.ID),
		UserID:    idString(w.UserID),
		Type:      w.Type,
		Date:      w.Date,
		Duration:  w.Duration,
		Calories:  w.Calories,
		Steps:     w.Steps,
		Intensity: w.Intensity,
		Notes:     w.Notes,
	}
}

type wireGoal struct {
	ID        any     `json:"id,omitempty"`
	UserID    any     `json:"userId"`
	Title     string  `json:"title"`
	Type      string  `json:"type"`
	Target    float64 `json:"target"`
	Current   float64 `json:"current"`
	Unit      string  `json:"unit"`
	Deadline  string  `json:"deadline"`
	Completed bool    `json:"completed"`
}

func newWireGoal(g model.Goal) wireGoal {
	w := wireGoal{
		UserID:    g.UserID,
		Title:     g.Title,
		Type:      g.Type,
		Target:    g.Target,
		Current:   g.Current,
		Unit:      g.Unit,
		Deadline:  g.Deadline,
		Completed: g.Completed,
	}
	if g.ID != "" {
		w.ID = g.ID
	}
	return w
}

func (w wireGoal) toModel() model.Goal {
	return model.Goal{
		ID:        idString(w.ID),
		UserID:    idString(w.UserID),
		Title:     w.Title,
		Type:      w.Type,
		Target:    w.Target,
		Current:   w.Current,
		Unit:      w.Unit,
		Deadline:  w.Deadline,
		Completed: w.Completed,
	}
}

type wireUser struct {
	ID       any     `json:"id,omitempty"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password,omitempty"`
	Age      any     `json:"age,omitempty"`
	Weight   any     `json:"weight,omitempty"`
	Height   any     `json:"height,omitempty"`
}

func newWireUser(u model.User) wireUser {
	w := wireUser{
		Name:     u.Name,
		Email:    u.Email,
		Password: u.Password,
	}
	if u.ID != "" {
		w.ID = u.ID
	}
	if u.Age > 0 {
		w.Age = u.Age
	}
	if u.Weight > 0 {
		w.Weight = u.Weight
	}
	if u.Height > 0 {
		w.Height = u.Height
	}
	return w
}

func (w wireUser) toModel() model.User {
	return model.User{
		ID:       idString(w.ID),
		Name:     w.Name,
		Email:    w.Email,
		Password: w.Password,
		Age:      int(numValue(w.Age)),
		Weight:   numValue(w.Weight),
		Height:   numValue(w.Height),
	}
}

type wireIntakeDay struct {
	ID       any     `json:"id,omitempty"`
	UserID   any     `json:"userId"`
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func newWireIntakeDay(d model.IntakeDay) wireIntakeDay {
	w := wireIntakeDay{
		UserID:   d.UserID,
		Date:     d.Date,
		Calories: d.Calories,
		Protein:  d.Protein,
		Carbs:    d.Carbs,
		Fat:      d.Fat,
	}
	if d.ID != "" {
		w.ID = d.ID
	}
	return w
}

func (w wireIntakeDay) toModel() model.IntakeDay {
	return model.IntakeDay{
		ID:       idString(w.ID),
		UserID:   idString(w.UserID),
		Date:     w.Date,
		Calories: w.Calories,
		Protein:  w.Protein,
		Carbs:    w.Carbs,
		Fat:      w.Fat,
	}
}

// numValue tolerates profile fields the backend stores as either numbers or
// strings (some records carry "" for unset age/weight/height).
func numValue(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
