// Package auth implements signup and login against the backend's users
// collection. Authentication needs the backend reachable; there is no
// offline path for it.
package auth

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/DnvLikhitha/FitFlex/internal/api"
	"github.com/DnvLikhitha/FitFlex/internal/app"
	"github.com/DnvLikhitha/FitFlex/internal/model"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const passwordSpecials = "@$!%*?&"

type Service struct {
	API *api.Client
}

// SignUpInput is one registration request. Age, weight and height are
// optional profile extras.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
	Age      int
	Weight   float64
	Height   float64
}

// SignUp registers a new account and returns the signed-in session. Emails
// are unique across the users collection.
func (s *Service) SignUp(ctx context.Context, in SignUpInput) (app.Session, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" {
		return app.Session{}, fmt.Errorf("name is required")
	}
	if !emailPattern.MatchString(email) {
		return app.Session{}, fmt.Errorf("invalid email address %q", email)
	}
	if err := validatePassword(in.Password); err != nil {
		return app.Session{}, err
	}

	users, err := s.API.ListUsers(ctx)
	if err != nil {
		return app.Session{}, fmt.Errorf("check existing accounts: %w", err)
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return app.Session{}, fmt.Errorf("an account with email %s already exists", email)
		}
	}

	created, err := s.API.CreateUser(ctx, model.User{
		Name:     name,
		Email:    email,
		Password: in.Password,
		Age:      in.Age,
		Weight:   in.Weight,
		Height:   in.Height,
	})
	if err != nil {
		return app.Session{}, fmt.Errorf("create account: %w", err)
	}
	return app.Session{UserID: created.ID, Name: created.Name, Email: created.Email}, nil
}

// Login matches email and password against the users collection. The error
// never says which of the two was wrong.
func (s *Service) Login(ctx context.Context, email, password string) (app.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return app.Session{}, fmt.Errorf("email and password are required")
	}
	users, err := s.API.ListUsers(ctx)
	if err != nil {
		return app.Session{}, fmt.Errorf("look up account: %w", err)
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) && u.Password == password {
			return app.Session{UserID: u.ID, Name: u.Name, Email: u.Email}, nil
		}
	}
	return app.Session{}, fmt.Errorf("invalid email or password")
}

// validatePassword enforces the account password policy: at least 8
// characters with an uppercase letter, a lowercase letter, a digit and one of
// @$!%*?&.
func validatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return fmt.Errorf("password must include an uppercase letter, a lowercase letter, a digit and one of %s", passwordSpecials)
	}
	return nil
}
