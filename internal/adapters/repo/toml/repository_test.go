package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	filestore "github.com/camaradigital/camara-cli/internal/adapters/secrets/file"
	"github.com/camaradigital/camara-cli/internal/domain"
	portmocks "github.com/camaradigital/camara-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleCredentials() domain.Credentials {
	return domain.Credentials{
		AccessToken: "eyJ.token",
		ExpiresAt:   time.Date(2026, 10, 15, 18, 0, 0, 0, time.UTC),
		User: domain.User{
			ID:        "vereador-1",
			Name:      "Ana Souza",
			Email:     "ana@camara.example",
			President: true,
		},
		Chamber:               domain.Chamber{ID: "camara-1", Name: "Câmara Municipal", City: "Testópolis"},
		PasswordResetRequired: true,
	}
}

func newRepo(t *testing.T) (*ProfileRepository, string, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.toml")
	secretsRoot := filepath.Join(dir, "secrets")
	repo, err := NewProfileRepository(path, filestore.NewStore(secretsRoot))
	require.NoError(t, err)
	return repo, path, secretsRoot
}

func TestProfileRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo, path, secretsRoot := newRepo(t)
	want := sampleCredentials()

	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), want.AccessToken)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "secret_ref")
	assert.Contains(t, string(data), "vereador-1/access_token")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(profileFileMode), info.Mode().Perm())

	_, err = os.Stat(filepath.Join(secretsRoot, "vereador-1", "access_token"))
	require.NoError(t, err)
}

func TestProfileRepositoryLoadWithoutProfileIsNotAuthenticated(t *testing.T) {
	t.Parallel()

	repo, _, _ := newRepo(t)
	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestProfileRepositoryLoadWithoutTokenIsNotAuthenticated(t *testing.T) {
	t.Parallel()

	repo, _, secretsRoot := newRepo(t)
	require.NoError(t, repo.Save(context.Background(), sampleCredentials()))
	require.NoError(t, os.RemoveAll(secretsRoot))

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestProfileRepositoryClearRemovesProfileAndToken(t *testing.T) {
	t.Parallel()

	repo, path, secretsRoot := newRepo(t)
	require.NoError(t, repo.Save(context.Background(), sampleCredentials()))

	require.NoError(t, repo.Clear(context.Background()))
	require.NoError(t, repo.Clear(context.Background()))

	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = os.Stat(filepath.Join(secretsRoot, "vereador-1", "access_token"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = repo.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestProfileRepositorySaveForOtherUserDropsPreviousToken(t *testing.T) {
	t.Parallel()

	repo, _, secretsRoot := newRepo(t)
	require.NoError(t, repo.Save(context.Background(), sampleCredentials()))

	other := sampleCredentials()
	other.User.ID = "vereador-2"
	other.AccessToken = "eyJ.other"
	require.NoError(t, repo.Save(context.Background(), other))

	_, err := os.Stat(filepath.Join(secretsRoot, "vereador-1", "access_token"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "eyJ.other", got.AccessToken)
}

func TestProfileRepositorySaveRollsBackTokenWhenProfileWriteFails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		rollbackErr error
		wantErr     []string
	}{
		{name: "token removed", wantErr: []string{"create profile directory"}},
		{name: "rollback fails too", rollbackErr: errors.New("keyring locked"), wantErr: []string{"create profile directory", "rollback access token", "keyring locked"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// The profile directory does not exist yet, so the read finds
			// nothing; a file takes its place once the token is stored.
			profileDir := filepath.Join(t.TempDir(), "camara")
			secrets := portmocks.NewMockSecretStore(t)
			repo, err := NewProfileRepository(filepath.Join(profileDir, "profile.toml"), secrets)
			require.NoError(t, err)

			secrets.EXPECT().Put(mock.Anything, "vereador-1/access_token", "eyJ.token").
				Run(func(context.Context, string, string) {
					require.NoError(t, os.WriteFile(profileDir, []byte("x"), 0o600))
				}).
				Return(nil).Once()
			secrets.EXPECT().Delete(mock.Anything, "vereador-1/access_token").Return(tt.rollbackErr).Once()

			err = repo.Save(context.Background(), sampleCredentials())
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.ErrorContains(t, err, want)
			}
		})
	}
}

func TestProfileRepositorySaveRejectsEmptyToken(t *testing.T) {
	t.Parallel()

	repo, _, _ := newRepo(t)
	creds := sampleCredentials()
	creds.AccessToken = " "
	assert.Error(t, repo.Save(context.Background(), creds))
}

func TestProfileRepositoryCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo, _, _ := newRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, repo.Save(ctx, sampleCredentials()), context.Canceled)
	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProfileRepositoryMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	repo, path, _ := newRepo(t)
	require.NoError(t, os.WriteFile(path, []byte("version = ["), 0o600))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode profile file")
}

func TestProfileRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	repo, path, _ := newRepo(t)
	require.NoError(t, os.WriteFile(path, []byte("version = 99\n"), 0o600))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported profile schema version 99")
}

func TestNewProfileRepositoryValidatesArguments(t *testing.T) {
	t.Parallel()

	_, err := NewProfileRepository("", filestore.NewStore(t.TempDir()))
	assert.Error(t, err)

	_, err = NewProfileRepository(filepath.Join(t.TempDir(), "p.toml"), nil)
	assert.Error(t, err)
}
