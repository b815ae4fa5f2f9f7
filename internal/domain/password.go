package domain

import (
	"fmt"
	"strings"
	"unicode"
)

const MinPasswordLength = 6

// ValidatePassword enforces the first-login policy: at least six characters
// with upper case, lower case, a digit and a special character.
func ValidatePassword(password string) error {
	var missing []string
	if len([]rune(password)) < MinPasswordLength {
		missing = append(missing, fmt.Sprintf("at least %d characters", MinPasswordLength))
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	if !upper {
		missing = append(missing, "an upper-case letter")
	}
	if !lower {
		missing = append(missing, "a lower-case letter")
	}
	if !digit {
		missing = append(missing, "a digit")
	}
	if !special {
		missing = append(missing, "a special character")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: needs %s", ErrWeakPassword, strings.Join(missing, ", "))
	}
	return nil
}

func (r ChangePasswordRequest) Validate() error {
	if strings.TrimSpace(r.CurrentPassword) == "" {
		return fmt.Errorf("current password is required")
	}
	if r.NewPassword != r.Confirmation {
		return fmt.Errorf("new password and confirmation do not match")
	}
	if r.NewPassword == r.CurrentPassword {
		return fmt.Errorf("new password must differ from the current one")
	}
	return ValidatePassword(r.NewPassword)
}
