package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/camaradigital/camara-cli/internal/domain"
	"github.com/camaradigital/camara-cli/internal/ports"
	"go.uber.org/zap"
)

// AuthService owns the signed-in identity: it is the only writer of the
// credential store.
type AuthService struct {
	gateway ports.AuthGateway
	store   ports.CredentialStore
	clock   ports.Clock
	logger  *zap.Logger
}

func NewAuthService(gateway ports.AuthGateway, store ports.CredentialStore, clock ports.Clock, logger *zap.Logger) *AuthService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{gateway: gateway, store: store, clock: clock, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (domain.Credentials, error) {
	if err := req.Validate(); err != nil {
		return domain.Credentials{}, err
	}

	creds, err := s.gateway.SignIn(ctx, req)
	if err != nil {
		return domain.Credentials{}, err
	}
	if !creds.Valid(s.clock.Now()) {
		return domain.Credentials{}, errors.New("sign in: backend returned an expired token")
	}

	if err := s.store.Save(ctx, creds); err != nil {
		return domain.Credentials{}, fmt.Errorf("persist credentials: %w", err)
	}

	s.logger.Info("signed in",
		zap.String("user", string(creds.User.ID)),
		zap.Bool("president", creds.User.President),
		zap.Bool("password_reset", creds.PasswordResetRequired),
	)
	return creds, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}

// Current returns the stored credentials while the token is still valid.
// Expired credentials are wiped and reported as domain.ErrNotAuthenticated.
func (s *AuthService) Current(ctx context.Context) (domain.Credentials, error) {
	creds, err := s.store.Load(ctx)
	if err != nil {
		return domain.Credentials{}, err
	}
	if !creds.Valid(s.clock.Now()) {
		s.logger.Debug("stored token expired", zap.Time("expires_at", creds.ExpiresAt))
		if err := s.store.Clear(ctx); err != nil {
			return domain.Credentials{}, errors.Join(domain.ErrNotAuthenticated, err)
		}
		return domain.Credentials{}, domain.ErrNotAuthenticated
	}
	return creds, nil
}

// RequireSession is Current plus the forced password-change gate.
func (s *AuthService) RequireSession(ctx context.Context) (domain.Credentials, error) {
	creds, err := s.Current(ctx)
	if err != nil {
		return domain.Credentials{}, err
	}
	if creds.PasswordResetRequired {
		return creds, domain.ErrPasswordChange
	}
	return creds, nil
}

func (s *AuthService) RequirePresident(ctx context.Context) (domain.Credentials, error) {
	creds, err := s.RequireSession(ctx)
	if err != nil {
		return domain.Credentials{}, err
	}
	if !creds.User.President {
		return creds, domain.ErrNotPresident
	}
	return creds, nil
}

// ChangePassword validates the policy locally before calling the backend and
// lifts the password-reset flag on success.
func (s *AuthService) ChangePassword(ctx context.Context, req domain.ChangePasswordRequest) error {
	creds, err := s.Current(ctx)
	if err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.gateway.ChangePassword(ctx, req); err != nil {
		return err
	}

	creds.PasswordResetRequired = false
	if err := s.store.Save(ctx, creds); err != nil {
		return fmt.Errorf("persist credentials: %w", err)
	}
	return nil
}

func (s *AuthService) Refresh(ctx context.Context) (domain.Credentials, error) {
	creds, err := s.Current(ctx)
	if err != nil {
		return domain.Credentials{}, err
	}

	token, expiresAt, err := s.gateway.RefreshToken(ctx)
	if err != nil {
		return domain.Credentials{}, err
	}
	creds.AccessToken = token
	creds.ExpiresAt = expiresAt

	if err := s.store.Save(ctx, creds); err != nil {
		return domain.Credentials{}, fmt.Errorf("persist credentials: %w", err)
	}
	return creds, nil
}

// Token returns the stored bearer token, or "" when nobody is signed in.
func (s *AuthService) Token(ctx context.Context) (string, error) {
	creds, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			return "", nil
		}
		return "", err
	}
	return creds.AccessToken, nil
}

// HandleUnauthorized wipes every persisted credential after the backend
// rejected the token.
func (s *AuthService) HandleUnauthorized(ctx context.Context) {
	s.logger.Warn("backend rejected the access token; clearing local credentials")
	if err := s.store.Clear(context.WithoutCancel(ctx)); err != nil {
		s.logger.Error("clear credentials after 401", zap.Error(err))
	}
}
