package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "TMT"
	DirName   = ".takemetrip"

	KeyAPIBaseURL     = "api.base_url"
	KeyAPITimeout     = "api.timeout"
	KeyAPIRateLimit   = "api.rate_limit"
	KeyCacheDir       = "cache.dir"
	KeySecretsDir     = "secrets.dir"
	KeySecretsBackend = "secrets.backend"
	KeyDraftsPath     = "drafts.path"
	KeyLogDebug       = "log.debug"

	DefaultAPIBaseURL = "http://127.0.0.1:8000"
)

// Settings is the resolved configuration used to wire the CLI.
type Settings struct {
	APIBaseURL string
	APITimeout time.Duration
	// RateLimit is requests per second; zero disables limiting.
	RateLimit      float64
	CacheDir       string
	SecretsDir     string
	SecretsBackend string
	DraftsPath     string
	Debug          bool
}

// Load reads, in increasing precedence, built-in defaults,
// ~/.takemetrip/config.toml, a .env file in the working directory and TMT_*
// environment variables.
func Load() (*viper.Viper, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env file: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	baseDir := filepath.Join(homeDir, DirName)

	cfg := viper.New()
	cfg.SetConfigName("config")
	cfg.SetConfigType("toml")
	cfg.AddConfigPath(baseDir)
	cfg.SetEnvPrefix(EnvPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(KeyAPIBaseURL, DefaultAPIBaseURL)
	cfg.SetDefault(KeyAPITimeout, 30*time.Second)
	cfg.SetDefault(KeyAPIRateLimit, 5.0)
	cfg.SetDefault(KeyCacheDir, filepath.Join(baseDir, "cache"))
	cfg.SetDefault(KeySecretsDir, filepath.Join(baseDir, "secrets"))
	cfg.SetDefault(KeySecretsBackend, "auto")
	cfg.SetDefault(KeyDraftsPath, filepath.Join(baseDir, "draft.toml"))
	cfg.SetDefault(KeyLogDebug, false)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return cfg, nil
}

// Resolve validates cfg and converts it into Settings.
func Resolve(cfg *viper.Viper) (Settings, error) {
	settings := Settings{
		APIBaseURL:     strings.TrimRight(strings.TrimSpace(cfg.GetString(KeyAPIBaseURL)), "/"),
		APITimeout:     cfg.GetDuration(KeyAPITimeout),
		RateLimit:      cfg.GetFloat64(KeyAPIRateLimit),
		CacheDir:       cfg.GetString(KeyCacheDir),
		SecretsDir:     cfg.GetString(KeySecretsDir),
		SecretsBackend: cfg.GetString(KeySecretsBackend),
		DraftsPath:     cfg.GetString(KeyDraftsPath),
		Debug:          cfg.GetBool(KeyLogDebug),
	}

	if settings.APIBaseURL == "" {
		return Settings{}, errors.New("api.base_url is empty")
	}
	if settings.APITimeout <= 0 {
		return Settings{}, fmt.Errorf("api.timeout must be positive, got %s", settings.APITimeout)
	}
	if settings.RateLimit < 0 {
		return Settings{}, fmt.Errorf("api.rate_limit must not be negative, got %g", settings.RateLimit)
	}
	if settings.SecretsDir == "" {
		return Settings{}, errors.New("secrets.dir is empty")
	}

	return settings, nil
}
