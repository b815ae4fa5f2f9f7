package toml

import "fmt"

const currentSchemaVersion = 1

type profileSchema struct {
	Version int           `toml:"version"`
	User    userSchema    `toml:"user"`
	Chamber chamberSchema `toml:"chamber"`
	Auth    authSchema    `toml:"auth"`
}

func (s *profileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s profileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported profile schema version %d (current %d)", s.Version, currentSchemaVersion)
	}
	return nil
}

type userSchema struct {
	ID        string `toml:"id"`
	Name      string `toml:"name"`
	Email     string `toml:"email,omitempty"`
	President bool   `toml:"president"`
}

type chamberSchema struct {
	ID   string `toml:"id,omitempty"`
	Name string `toml:"name,omitempty"`
	City string `toml:"city,omitempty"`
}

type authSchema struct {
	ExpiresAt     string `toml:"expires_at"`
	PasswordReset bool   `toml:"password_reset"`
	SecretRef     string `toml:"secret_ref"`
}
