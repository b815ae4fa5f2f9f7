package domain

import (
	"strings"
	"time"
)

type UserID string

type User struct {
	ID        UserID
	Name      string
	Email     string
	President bool
}

func (u User) Role() string {
	if u.President {
		return "Presidente"
	}
	return "Vereador"
}

// Chamber is the municipal chamber ("câmara") the user belongs to.
type Chamber struct {
	ID   string
	Name string
	City string
}

type Credentials struct {
	AccessToken           string
	ExpiresAt             time.Time
	User                  User
	Chamber               Chamber
	PasswordResetRequired bool
}

// Valid reports whether a token is present and its expiration lies after now.
func (c Credentials) Valid(now time.Time) bool {
	if strings.TrimSpace(c.AccessToken) == "" || c.ExpiresAt.IsZero() {
		return false
	}
	return c.ExpiresAt.After(now)
}

type LoginRequest struct {
	UserName string
	Password string
}

func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.UserName) == "" || strings.TrimSpace(r.Password) == "" {
		return ErrInvalidCredentials
	}
	return nil
}

type ChangePasswordRequest struct {
	CurrentPassword string
	NewPassword     string
	Confirmation    string
}
