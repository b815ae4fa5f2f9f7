// Package config resolves client settings from ~/.camara/config.toml and
// CAMARA_* environment variables, the latter taking precedence.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".camara"

	apiURLKey         = "api.url"
	realtimeURLKey    = "realtime.url"
	profilePathKey    = "profile.path"
	confirmAllModeKey = "confirm_all.mode"
	httpTimeoutKey    = "http.timeout"
	secretsBackendKey = "secrets.backend"

	DefaultAPIURL      = "http://localhost:5097"
	DefaultHTTPTimeout = 10 * time.Second
	profileFileName    = "profile.toml"
	realtimePath       = "/hubs/votacao"
)

// ConfirmAllMode selects how "confirm all" is sent to the backend.
type ConfirmAllMode string

const (
	// ConfirmAllBulk issues the single bulk confirmation call.
	ConfirmAllBulk ConfirmAllMode = "bulk"
	// ConfirmAllSequential confirms each pending vote with its own call, one
	// at a time. Deprecated: kept for backends without the bulk endpoint.
	ConfirmAllSequential ConfirmAllMode = "sequential"
)

// SecretsBackend selects where the access token is kept.
type SecretsBackend string

const (
	// SecretsAuto tries pass first and falls back to files under Dir/secrets.
	SecretsAuto SecretsBackend = "auto"
	SecretsPass SecretsBackend = "pass"
	SecretsFile SecretsBackend = "file"
)

type Config struct {
	APIURL         string         `env:"CAMARA_API_URL"`
	RealtimeURL    string         `env:"CAMARA_REALTIME_URL"`
	ProfilePath    string         `env:"CAMARA_PROFILE_PATH"`
	ConfirmAllMode ConfirmAllMode `env:"CAMARA_CONFIRM_ALL_MODE"`
	HTTPTimeout    time.Duration  `env:"CAMARA_HTTP_TIMEOUT"`
	SecretsBackend SecretsBackend `env:"CAMARA_SECRETS_BACKEND"`
	Dir            string         `env:"-"`
}

// Load reads the config file (if any) through v, overlays the environment
// and fills derived defaults.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	dir := filepath.Join(homeDir, configDir)

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)
	v.SetDefault(apiURLKey, DefaultAPIURL)
	v.SetDefault(profilePathKey, filepath.Join(dir, profileFileName))
	v.SetDefault(confirmAllModeKey, string(ConfirmAllBulk))
	v.SetDefault(httpTimeoutKey, DefaultHTTPTimeout)
	v.SetDefault(secretsBackendKey, string(SecretsAuto))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		APIURL:         v.GetString(apiURLKey),
		RealtimeURL:    v.GetString(realtimeURLKey),
		ProfilePath:    v.GetString(profilePathKey),
		ConfirmAllMode: ConfirmAllMode(v.GetString(confirmAllModeKey)),
		HTTPTimeout:    v.GetDuration(httpTimeoutKey),
		SecretsBackend: SecretsBackend(v.GetString(secretsBackendKey)),
		Dir:            dir,
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg.normalize()
}

func (c Config) normalize() (Config, error) {
	c.APIURL = strings.TrimRight(strings.TrimSpace(c.APIURL), "/")
	if c.APIURL == "" {
		return Config{}, errors.New("api url is empty")
	}

	if strings.TrimSpace(c.RealtimeURL) == "" {
		derived, err := DeriveRealtimeURL(c.APIURL)
		if err != nil {
			return Config{}, err
		}
		c.RealtimeURL = derived
	}

	if strings.TrimSpace(c.ProfilePath) == "" {
		c.ProfilePath = filepath.Join(c.Dir, profileFileName)
	}

	mode := ConfirmAllMode(strings.ToLower(strings.TrimSpace(string(c.ConfirmAllMode))))
	switch mode {
	case "":
		mode = ConfirmAllBulk
	case ConfirmAllBulk, ConfirmAllSequential:
	default:
		return Config{}, fmt.Errorf("unsupported confirm_all.mode %q (want %q or %q)", c.ConfirmAllMode, ConfirmAllBulk, ConfirmAllSequential)
	}
	c.ConfirmAllMode = mode

	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = DefaultHTTPTimeout
	}

	backend := SecretsBackend(strings.ToLower(strings.TrimSpace(string(c.SecretsBackend))))
	switch backend {
	case "":
		backend = SecretsAuto
	case SecretsAuto, SecretsPass, SecretsFile:
	default:
		return Config{}, fmt.Errorf("unsupported secrets.backend %q (want auto, pass or file)", c.SecretsBackend)
	}
	c.SecretsBackend = backend

	return c, nil
}

// DeriveRealtimeURL maps the REST base URL onto the voting hub endpoint.
func DeriveRealtimeURL(apiURL string) (string, error) {
	parsed, err := url.Parse(apiURL)
	if err != nil {
		return "", fmt.Errorf("parse api url: %w", err)
	}
	switch parsed.Scheme {
	case "http":
		parsed.Scheme = "ws"
	case "https":
		parsed.Scheme = "wss"
	default:
		return "", fmt.Errorf("api url must use http or https, got %q", parsed.Scheme)
	}
	parsed.Path = strings.TrimRight(parsed.Path, "/") + realtimePath
	parsed.RawQuery = ""
	return parsed.String(), nil
}
