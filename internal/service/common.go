package service

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

func today() string {
	return time.Now().Format(dateLayout)
}

// normalizeDate defaults an empty date to today and rejects anything that is
// not a plain YYYY-MM-DD day string.
func normalizeDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return today(), nil
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return date, nil
}

func validateNonNegativeInt(name string, value int) error {
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

// normalizeIntensity keeps "" as unset so the merge path can tell "override"
// from "leave alone"; callers apply the medium default on create.
func normalizeIntensity(intensity string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(intensity))
	switch v {
	case "", "low", "medium", "high":
		return v, nil
	default:
		return "", fmt.Errorf("invalid intensity %q (use low, medium or high)", intensity)
	}
}

const defaultIntensity = "medium"

// joinNotes concatenates two note fields with a separator when both are
// present.
func joinNotes(existing, added string) string {
	existing = strings.TrimSpace(existing)
	added = strings.TrimSpace(added)
	switch {
	case existing == "":
		return added
	case added == "":
		return existing
	default:
		return existing + " + " + added
	}
}
