package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/camaradigital/camara-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	tokenKey   = "vereador-1/access_token"
	tokenEntry = "camara-cli/vereador-1/access_token"
)

func TestStorePutUsesPassInsertUnderPrefix(t *testing.T) {
	t.Parallel()

	called := false
	store := NewStore("")
	store.run = func(ctx context.Context, input string, args ...string) (string, string, error) {
		called = true
		assert.Equal(t, []string{"insert", "-m", "-f", tokenEntry}, args)
		assert.Equal(t, "eyJ.token\n", input)
		return "", "", nil
	}

	require.NoError(t, store.Put(context.Background(), tokenKey, "eyJ.token"))
	assert.True(t, called)
}

func TestStorePutRejectsMultilineValue(t *testing.T) {
	t.Parallel()

	store := NewStore("camara")
	store.run = func(context.Context, string, ...string) (string, string, error) {
		t.Fatal("pass must not be invoked")
		return "", "", nil
	}

	assert.Error(t, store.Put(context.Background(), tokenKey, "a\nb"))
}

func TestStoreGetReturnsFirstLine(t *testing.T) {
	t.Parallel()

	store := NewStore("/custom/")
	store.run = func(ctx context.Context, input string, args ...string) (string, string, error) {
		assert.Equal(t, []string{"show", "custom/vereador-1/access_token"}, args)
		assert.Empty(t, input)
		return "eyJ.token\nnote: camara\n", "", nil
	}

	value, err := store.Get(context.Background(), tokenKey)
	require.NoError(t, err)
	assert.Equal(t, "eyJ.token", value)
}

func TestStoreGetMapsMissingEntryToNotFound(t *testing.T) {
	t.Parallel()

	store := NewStore("")
	store.run = func(context.Context, string, ...string) (string, string, error) {
		return "", "Error: camara-cli/vereador-1/access_token is not in the password store.", errors.New("exit status 1")
	}

	_, err := store.Get(context.Background(), tokenKey)
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreGetReturnsClearError(t *testing.T) {
	t.Parallel()

	store := NewStore("")
	store.run = func(context.Context, string, ...string) (string, string, error) {
		return "", "gpg: decryption failed", errors.New("exit status 2")
	}

	_, err := store.Get(context.Background(), tokenKey)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrSecretNotFound)
	assert.ErrorContains(t, err, "pass get")
	assert.ErrorContains(t, err, tokenEntry)
	assert.ErrorContains(t, err, "decryption failed")
}

func TestStoreDeleteIgnoresMissingEntry(t *testing.T) {
	t.Parallel()

	store := NewStore("")
	store.run = func(ctx context.Context, input string, args ...string) (string, string, error) {
		assert.Equal(t, []string{"rm", "-f", tokenEntry}, args)
		return "", "Error: camara-cli/vereador-1/access_token is not in the password store.", errors.New("exit status 1")
	}

	require.NoError(t, store.Delete(context.Background(), tokenKey))
}

func TestStoreRejectsTraversal(t *testing.T) {
	t.Parallel()

	store := NewStore("")
	_, err := store.Get(context.Background(), "../../etc")
	assert.ErrorContains(t, err, "invalid secret key")
}
