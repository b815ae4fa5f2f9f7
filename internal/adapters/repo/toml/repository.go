// Package toml persists the signed-in profile as a TOML document; the access
// token itself goes to a SecretStore and the profile keeps only its key.
package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/camaradigital/camara-cli/internal/domain"
	"github.com/camaradigital/camara-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	profileFileMode = 0o600
	profileDirMode  = 0o700
	tempFilePattern = ".profile-*.toml.tmp"
	secretKeyPrefix = "access_token"
)

type ProfileRepository struct {
	path    string
	secrets ports.SecretStore
	mu      *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.CredentialStore = (*ProfileRepository)(nil)

func NewProfileRepository(path string, secrets ports.SecretStore) (*ProfileRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("profile path is empty")
	}
	if secrets == nil {
		return nil, errors.New("secret store is nil")
	}

	normalized, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &ProfileRepository{path: normalized, secrets: secrets, mu: lockForPath(normalized)}, nil
}

// Load returns domain.ErrNotAuthenticated when no profile or no token is stored.
func (r *ProfileRepository) Load(ctx context.Context) (domain.Credentials, error) {
	if err := ctx.Err(); err != nil {
		return domain.Credentials{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, found, err := r.readSchema()
	if err != nil {
		return domain.Credentials{}, err
	}
	if !found || profile.Auth.SecretRef == "" {
		return domain.Credentials{}, domain.ErrNotAuthenticated
	}

	token, err := r.secrets.Get(ctx, profile.Auth.SecretRef)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return domain.Credentials{}, domain.ErrNotAuthenticated
		}
		return domain.Credentials{}, fmt.Errorf("load access token: %w", err)
	}

	creds := fromSchema(profile)
	creds.AccessToken = token
	return creds, nil
}

// Save writes the token first and the profile second; a failed profile write
// removes the token again so the two never disagree.
func (r *ProfileRepository) Save(ctx context.Context, creds domain.Credentials) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(creds.AccessToken) == "" {
		return errors.New("save profile: access token is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ref := secretKey(creds.User.ID)
	previous, _, err := r.readSchema()
	if err != nil {
		return err
	}

	if err := r.secrets.Put(ctx, ref, creds.AccessToken); err != nil {
		return fmt.Errorf("store access token: %w", err)
	}

	profile := toSchema(creds)
	profile.Auth.SecretRef = ref
	if err := r.writeSchema(profile); err != nil {
		if rollbackErr := r.secrets.Delete(context.WithoutCancel(ctx), ref); rollbackErr != nil {
			return errors.Join(err, fmt.Errorf("rollback access token: %w", rollbackErr))
		}
		return err
	}

	if old := previous.Auth.SecretRef; old != "" && old != ref {
		_ = r.secrets.Delete(ctx, old)
	}
	return nil
}

// Clear removes the profile and its token together. Missing items are not an error.
func (r *ProfileRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	profile, found, readErr := r.readSchema()

	var errs []error
	if readErr != nil {
		errs = append(errs, readErr)
	}
	if found && profile.Auth.SecretRef != "" {
		if err := r.secrets.Delete(ctx, profile.Auth.SecretRef); err != nil {
			errs = append(errs, fmt.Errorf("delete access token: %w", err))
		}
	}
	if err := os.Remove(r.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		errs = append(errs, fmt.Errorf("remove profile file: %w", err))
	}
	return errors.Join(errs...)
}

func (r *ProfileRepository) readSchema() (profileSchema, bool, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return profileSchema{}, false, nil
		}
		return profileSchema{}, false, fmt.Errorf("read profile file: %w", err)
	}

	var profile profileSchema
	if err := toml.Unmarshal(data, &profile); err != nil {
		return profileSchema{}, false, fmt.Errorf("decode profile file: %w", err)
	}
	if err := profile.validateVersion(); err != nil {
		return profileSchema{}, false, err
	}
	profile.applyDefaults()

	return profile, true, nil
}

func (r *ProfileRepository) writeSchema(profile profileSchema) error {
	profile.applyDefaults()

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, profileDirMode); err != nil {
		return fmt.Errorf("create profile directory: %w", err)
	}

	data, err := toml.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile file: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp profile file: %w", err)
	}
	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if err := tempFile.Chmod(profileFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp profile file: %w", err)
	}
	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp profile file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp profile file: %w", err)
	}
	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace profile file: %w", err)
	}
	cleanup = false

	return nil
}

func secretKey(id domain.UserID) string {
	user := strings.TrimSpace(string(id))
	if user == "" {
		user = "default"
	}
	return user + "/" + secretKeyPrefix
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve profile path: %w", err)
	}
	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}
	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(creds domain.Credentials) profileSchema {
	return profileSchema{
		User: userSchema{
			ID:        string(creds.User.ID),
			Name:      creds.User.Name,
			Email:     creds.User.Email,
			President: creds.User.President,
		},
		Chamber: chamberSchema{
			ID:   creds.Chamber.ID,
			Name: creds.Chamber.Name,
			City: creds.Chamber.City,
		},
		Auth: authSchema{
			ExpiresAt:     formatTime(creds.ExpiresAt),
			PasswordReset: creds.PasswordResetRequired,
		},
	}
}

func fromSchema(profile profileSchema) domain.Credentials {
	return domain.Credentials{
		ExpiresAt: parseTime(profile.Auth.ExpiresAt),
		User: domain.User{
			ID:        domain.UserID(profile.User.ID),
			Name:      profile.User.Name,
			Email:     profile.User.Email,
			President: profile.User.President,
		},
		Chamber: domain.Chamber{
			ID:   profile.Chamber.ID,
			Name: profile.Chamber.Name,
			City: profile.Chamber.City,
		},
		PasswordResetRequired: profile.Auth.PasswordReset,
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.UTC().Format(time.RFC3339)
}
