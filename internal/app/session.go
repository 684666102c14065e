package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Session identifies the signed-in user. It is persisted as a small JSON file
// under the user config dir and survives across invocations; an absent file
// means anonymous. Login and logout return/remove whole session values rather
// than mutating shared state.
type Session struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

var ErrNotSignedIn = errors.New("not signed in")

func (s Session) Anonymous() bool {
	return strings.TrimSpace(s.UserID) == ""
}

func LoadSession(path string) (Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, ErrNotSignedIn
		}
		return Session{}, fmt.Errorf("read session file: %w", err)
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("decode session file: %w", err)
	}
	if s.Anonymous() {
		return Session{}, ErrNotSignedIn
	}
	return s, nil
}

func SaveSession(path string, s Session) error {
	if s.Anonymous() {
		return fmt.Errorf("refusing to save anonymous session")
	}
	if err := EnsureDir(path); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// ClearSession is idempotent: clearing an absent session is not an error.
func ClearSession(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
