// Package chain combines two secret stores: writes and reads prefer the
// primary, and deletes always reach both so a logout leaves no copy behind.
package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/camaradigital/camara-cli/internal/adapters/secrets/file"
	passstore "github.com/camaradigital/camara-cli/internal/adapters/secrets/pass"
	"github.com/camaradigital/camara-cli/internal/domain"
	"github.com/camaradigital/camara-cli/internal/ports"
	"go.uber.org/zap"
)

type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
	logger   *zap.Logger
}

var _ ports.SecretStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary secret store is nil")
	errNilFallbackStore = errors.New("fallback secret store is nil")
)

func NewStore(primary ports.SecretStore, fallback ports.SecretStore, logger *zap.Logger) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{primary: primary, fallback: fallback, logger: logger}, nil
}

// NewPassFirstWithFileFallback uses pass when installed and a file store
// rooted at fileRoot otherwise.
func NewPassFirstWithFileFallback(fileRoot string, logger *zap.Logger) (*Store, error) {
	return NewStore(passstore.NewStore(passstore.DefaultPrefix), filestore.NewStore(fileRoot), logger)
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil {
		return nil
	}
	if isContextErr(err) {
		return err
	}
	s.logger.Debug("primary secret store put failed, using fallback", zap.String("key", key), zap.Error(err))

	fallbackErr := s.fallback.Put(ctx, key, value)
	if fallbackErr == nil {
		return nil
	}
	return fmt.Errorf("primary backend put failed: %w; fallback backend put failed: %w", err, fallbackErr)
}

// Get falls back on any primary failure, including a missing entry, since a
// token written while pass was unavailable lives only in the fallback.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if isContextErr(err) {
		return "", err
	}

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, nil
	}
	if errors.Is(err, domain.ErrSecretNotFound) && errors.Is(fallbackErr, domain.ErrSecretNotFound) {
		return "", fmt.Errorf("secret %q: %w", key, domain.ErrSecretNotFound)
	}
	return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
}

// Delete removes key from both stores. A store that is unavailable counts as
// failed only when the other one also failed.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.primary.Delete(ctx, key)
	if isContextErr(err) {
		return err
	}
	fallbackErr := s.fallback.Delete(ctx, key)

	switch {
	case err == nil || fallbackErr == nil:
		if err != nil {
			s.logger.Debug("primary secret store delete failed", zap.String("key", key), zap.Error(err))
		}
		if fallbackErr != nil {
			s.logger.Debug("fallback secret store delete failed", zap.String("key", key), zap.Error(fallbackErr))
		}
		return nil
	default:
		return fmt.Errorf("primary backend delete failed: %w; fallback backend delete failed: %w", err, fallbackErr)
	}
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
