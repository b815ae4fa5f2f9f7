package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// IsNilID reports whether id is empty or the all-zero UUID the backend
// returns in place of "nothing found".
func IsNilID(id string) bool {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return true
	}
	parsed, err := uuid.Parse(trimmed)
	if err != nil {
		return false
	}
	return parsed == uuid.Nil
}

// IsPlaceholderDate reports whether t is a zero value, the Unix epoch or the
// .NET DateTime.MinValue placeholder.
func IsPlaceholderDate(t time.Time) bool {
	if t.IsZero() {
		return true
	}
	if t.Equal(time.Unix(0, 0)) {
		return true
	}
	return t.Year() <= 1
}

// IsEmptySession reports whether s is the empty sentinel returned by the
// active-session endpoint rather than a real session.
func IsEmptySession(s Session) bool {
	return IsNilID(string(s.ID)) || strings.TrimSpace(s.Name) == "" || IsPlaceholderDate(s.Date)
}

func IsEmptyProject(p Project) bool {
	return IsNilID(string(p.ID))
}
