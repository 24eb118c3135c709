package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jimezsa/salarycli/internal/estimator"
	"github.com/jimezsa/salarycli/internal/models"
	"github.com/yosuke-furukawa/json5/encoding/json5"
)

const (
	DirName        = "salarycli"
	ConfigFileName = "config.json"

	envPrefix = "SALARYCLI_"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config contains the estimation service settings.
type Config struct {
	Endpoint        string `json:"endpoint"`
	TimeoutSeconds  int    `json:"timeout_seconds"`
	DefaultCurrency string `json:"default_currency"`
	Language        string `json:"language"`
	Proxy           string `json:"proxy"`
}

func DefaultConfig() Config {
	return Config{
		Endpoint:        estimator.DefaultEndpoint,
		TimeoutSeconds:  30,
		DefaultCurrency: estimator.DefaultCurrency,
		Language:        string(estimator.English),
	}
}

// ConfigDir honours SALARYCLI_CONFIG_DIR before the user config directory.
func ConfigDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv(envPrefix + "CONFIG_DIR")); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, DirName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// Load layers defaults, the config file (json5, comments allowed) and
// SALARYCLI_* environment variables, in increasing precedence.
func Load() (Config, error) {
	cfg := DefaultConfig()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, err
	case len(strings.TrimSpace(string(data))) > 0:
		if err := json5.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	u, err := url.Parse(strings.TrimSpace(c.Endpoint))
	if err != nil {
		return fmt.Errorf("%w: endpoint: %v", ErrInvalidConfig, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: endpoint %q must be an absolute http(s) URL", ErrInvalidConfig, c.Endpoint)
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("%w: timeout_seconds must not be negative", ErrInvalidConfig)
	}
	if proxy := strings.TrimSpace(c.Proxy); proxy != "" {
		if _, err := url.Parse(proxy); err != nil {
			return fmt.Errorf("%w: proxy: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}

// Service converts the config into transport and client options.
func (c Config) Service() models.ServiceConfig {
	return models.ServiceConfig{
		Endpoint:        strings.TrimSpace(c.Endpoint),
		Timeout:         time.Duration(c.TimeoutSeconds) * time.Second,
		DefaultCurrency: strings.TrimSpace(c.DefaultCurrency),
		Proxy:           strings.TrimSpace(c.Proxy),
	}
}

// Init writes a default config.json if it doesn't already exist.
func Init() ([]string, error) {
	var created []string

	dir, err := ConfigDir()
	if err != nil {
		return created, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return created, err
	}

	configPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := writeConfig(configPath, DefaultConfig()); err != nil {
			return created, err
		}
		created = append(created, configPath)
	}

	return created, nil
}

func writeConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func applyEnv(cfg *Config) {
	cfg.Endpoint = envString(envPrefix+"ENDPOINT", cfg.Endpoint)
	cfg.TimeoutSeconds = envInt(envPrefix+"TIMEOUT_SECONDS", cfg.TimeoutSeconds)
	cfg.DefaultCurrency = envString(envPrefix+"DEFAULT_CURRENCY", cfg.DefaultCurrency)
	cfg.Language = envString(envPrefix+"LANG", cfg.Language)
	cfg.Proxy = envString(envPrefix+"PROXY", cfg.Proxy)
}

func envString(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func envInt(key string, fallback int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
