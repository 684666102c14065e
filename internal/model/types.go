package model

// Activity is one logged workout session. Dates are day-granular ISO strings
// (YYYY-MM-DD); the ledger never carries a time-of-day component.
type Activity struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Type      string `json:"type"`
	Date      string `json:"date"`
	Duration  int    `json:"duration"`
	Calories  int    `json:"calories"`
	Steps     int    `json:"steps"`
	Intensity string `json:"intensity"`
	Notes     string `json:"notes"`
}

type Goal struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	Title     string  `json:"title"`
	Type      string  `json:"type"`
	Target    float64 `json:"target"`
	Current   float64 `json:"current"`
	Unit      string  `json:"unit"`
	Deadline  string  `json:"deadline"`
	Completed bool    `json:"completed"`
}

type User struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password,omitempty"`
	Age      int     `json:"age,omitempty"`
	Weight   float64 `json:"weight,omitempty"`
	Height   float64 `json:"height,omitempty"`
}

// IntakeDay is the accumulated nutrition intake for one user on one date.
type IntakeDay struct {
	ID       string  `json:"id"`
	UserID   string  `json:"userId"`
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}
