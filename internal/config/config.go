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
	"github.com/pelletier/go-toml/v2"

	"maidadmin/internal/domain"
)

const (
	appDirName     = "maidadmin"
	configFileName = "config.toml"
	dbFileName     = "prefs.db"
	logFileName    = "maidadmin.log"

	// DefaultAPIURL is the backend address used when nothing else is configured
	DefaultAPIURL = "http://localhost:5000"
)

// Config represents the application configuration
type Config struct {
	Version        int        `toml:"version"`
	APIURL         string     `toml:"api_url" env:"MAID_API_URL"`
	DBPath         string     `toml:"db_path" env:"MAID_DB_PATH"`
	RequestTimeout string     `toml:"request_timeout" env:"MAID_REQUEST_TIMEOUT"`
	UISettings     UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	DefaultResource string `toml:"default_resource"`
	StatusTimeout   string `toml:"status_timeout"` // how long status messages stay visible
	PageSize        int    `toml:"page_size"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// Dir returns the per-user application directory
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, appDirName)
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	return filepath.Join(Dir(), configFileName)
}

// LogPath returns the log file location next to the config
func LogPath() string {
	return filepath.Join(Dir(), logFileName)
}

// NewConfigService creates a config service for the default location
func NewConfigService() ConfigService {
	return NewConfigServiceAt(DefaultPath())
}

// NewConfigServiceAt creates a config service for a specific file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when the
// file does not exist. Environment variables override file values.
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else {
		loaded, err := cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Missing fields are
// filled from DefaultConfig.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ApplyEnv overrides config values with MAID_* environment variables
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks values that cannot be defaulted silently
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid api_url %q", c.APIURL)
	}
	if _, err := parseDuration(c.RequestTimeout); err != nil {
		return fmt.Errorf("invalid request_timeout: %w", err)
	}
	if _, err := parseDuration(c.UISettings.StatusTimeout); err != nil {
		return fmt.Errorf("invalid ui.status_timeout: %w", err)
	}
	if c.UISettings.DefaultResource != "" {
		if _, err := domain.ParseResource(c.UISettings.DefaultResource); err != nil {
			return fmt.Errorf("invalid ui.default_resource: %w", err)
		}
	}
	if c.UISettings.PageSize < 0 {
		return fmt.Errorf("invalid ui.page_size %d", c.UISettings.PageSize)
	}
	return nil
}

// APIBase returns the REST root, i.e. the configured URL with /api appended
func (c *Config) APIBase() string {
	return strings.TrimRight(c.APIURL, "/") + "/api"
}

// Timeout returns the per-request timeout
func (c *Config) Timeout() time.Duration {
	d, _ := parseDuration(c.RequestTimeout)
	if d <= 0 {
		return 15 * time.Second
	}
	return d
}

// StatusTimeout returns how long transient status messages stay visible
func (c *Config) StatusTimeout() time.Duration {
	d, _ := parseDuration(c.UISettings.StatusTimeout)
	if d <= 0 {
		return 4 * time.Second
	}
	return d
}

// DefaultResource returns the resource shown first in the UI
func (c *Config) DefaultResource() domain.Resource {
	r, err := domain.ParseResource(c.UISettings.DefaultResource)
	if err != nil {
		return domain.ResourceUsers
	}
	return r
}

// DatabasePath returns the preference database location
func (c *Config) DatabasePath() string {
	if c.DBPath != "" {
		return c.DBPath
	}
	return filepath.Join(Dir(), dbFileName)
}

func parseDuration(s string) (time.Duration, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:        1,
		APIURL:         DefaultAPIURL,
		RequestTimeout: "15s",
		UISettings: UISettings{
			DefaultResource: string(domain.ResourceUsers),
			StatusTimeout:   "4s",
			PageSize:        0,
		},
	}
}
