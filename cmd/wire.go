package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/camaradigital/camara-cli/internal/adapters/api"
	"github.com/camaradigital/camara-cli/internal/adapters/realtime"
	tomlrepo "github.com/camaradigital/camara-cli/internal/adapters/repo/toml"
	chainstore "github.com/camaradigital/camara-cli/internal/adapters/secrets/chain"
	filestore "github.com/camaradigital/camara-cli/internal/adapters/secrets/file"
	passstore "github.com/camaradigital/camara-cli/internal/adapters/secrets/pass"
	"github.com/camaradigital/camara-cli/internal/application"
	"github.com/camaradigital/camara-cli/internal/config"
	"github.com/camaradigital/camara-cli/internal/domain"
	"github.com/camaradigital/camara-cli/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	cfg       config.Config
	logger    *zap.Logger
	level     zap.AtomicLevel
	client    *api.Client
	auth      *application.AuthService
	resolver  *application.SessionResolver
	directory *application.DirectoryService
	now       func() time.Time

	// creds is filled by the session gate before a command runs.
	creds domain.Credentials
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := zap.NewAtomicLevelAt(zap.WarnLevel)
	logger, err := newLogger(level)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	secrets, err := newSecretStore(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("wire secret store: %w", err)
	}

	profiles, err := tomlrepo.NewProfileRepository(cfg.ProfilePath, secrets)
	if err != nil {
		return nil, fmt.Errorf("wire profile repository: %w", err)
	}

	// The client needs the auth service for tokens and 401 handling, and the
	// auth service needs the client as its gateway.
	var auth *application.AuthService
	client, err := api.New(api.Options{
		BaseURL:        cfg.APIURL,
		RequestTimeout: cfg.HTTPTimeout,
		Logger:         logger,
		Token: func(ctx context.Context) (string, error) {
			return auth.Token(ctx)
		},
		OnUnauthorized: func(ctx context.Context) {
			auth.HandleUnauthorized(ctx)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("wire api client: %w", err)
	}

	clock := ports.SystemClock{}
	auth = application.NewAuthService(client, profiles, clock, logger)

	return &app{
		cfg:       cfg,
		logger:    logger,
		level:     level,
		client:    client,
		auth:      auth,
		resolver:  application.NewSessionResolver(client, clock, logger),
		directory: application.NewDirectoryService(client, client, logger),
		now:       time.Now,
	}, nil
}

func newLogger(level zap.AtomicLevel) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

func newSecretStore(cfg config.Config, logger *zap.Logger) (ports.SecretStore, error) {
	fileRoot := filepath.Join(cfg.Dir, "secrets")
	switch cfg.SecretsBackend {
	case config.SecretsFile:
		return filestore.NewStore(fileRoot), nil
	case config.SecretsPass:
		return passstore.NewStore(passstore.DefaultPrefix), nil
	default:
		return chainstore.NewPassFirstWithFileFallback(fileRoot, logger)
	}
}

func (a *app) votingFlow(onChange func(application.VotingSnapshot)) *application.VotingFlow {
	return application.NewVotingFlow(a.client, a.client, application.VotingFlowOptions{
		President: a.creds.User.President,
		OnChange:  onChange,
		Resolve:   a.resolver.Refresh,
		Logger:    a.logger,
	})
}

func (a *app) confirmationFlow(onChange func(domain.ConfirmationBoard)) *application.ConfirmationFlow {
	return application.NewConfirmationFlow(a.client, a.client, application.ConfirmationFlowOptions{
		Strategy: application.ConfirmAllStrategy(a.cfg.ConfirmAllMode),
		OnChange: onChange,
		Logger:   a.logger,
	})
}

func (a *app) eventFeed(onState func(domain.ConnState), maxAttempts uint) (*realtime.Feed, error) {
	return realtime.New(realtime.Options{
		URL:         a.cfg.RealtimeURL,
		Token:       a.auth.Token,
		MaxAttempts: maxAttempts,
		OnState:     onState,
		Logger:      a.logger,
	})
}

func (a *app) requirePresident() error {
	if !a.creds.User.President {
		return domain.ErrNotPresident
	}
	return nil
}
