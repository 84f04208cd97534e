package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Defaults shared with packages that validate against configured limits
const (
	DefaultUsername             = "john-doe"
	DefaultTitleMaxLength       = 0 // no limit
	DefaultDescriptionMaxLength = 0 // no limit
	DefaultRecentLimit          = 3
)

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds all configuration options for the task tracker
type Config struct {
	Storage     StorageConfig     `yaml:"storage"`
	Identity    IdentityConfig    `yaml:"identity"`
	Validation  ValidationConfig  `yaml:"validation"`
	Display     DisplayConfig     `yaml:"display"`
	Application ApplicationConfig `yaml:"application"`
}

// StorageConfig holds key-value storage configuration
type StorageConfig struct {
	Backend        string        `yaml:"backend" env:"TD_STORE_BACKEND"`
	Dir            string        `yaml:"dir" env:"TD_STORE_DIR"`
	Filename       string        `yaml:"filename" env:"TD_STORE_FILENAME"`
	ReadTimeout    time.Duration `yaml:"read_timeout" env:"TD_STORE_READ_TIMEOUT"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"TD_STORE_WRITE_TIMEOUT"`
	DirPermissions uint32        `yaml:"dir_permissions" env:"TD_STORE_DIR_PERMISSIONS"`
}

// IdentityConfig holds username resolution configuration
type IdentityConfig struct {
	DefaultUsername string `yaml:"default_username" env:"TD_DEFAULT_USERNAME"`
	URL             string `yaml:"url" env:"TD_URL"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TitleMaxLength       int `yaml:"title_max_length" env:"TD_VALIDATION_TITLE_MAX"`
	DescriptionMaxLength int `yaml:"description_max_length" env:"TD_VALIDATION_DESCRIPTION_MAX"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	TimeFormat  string `yaml:"time_format" env:"TD_TIME_DISPLAY_FORMAT"`
	RecentLimit int    `yaml:"recent_limit" env:"TD_DISPLAY_RECENT_LIMIT"`
	NoColor     bool   `yaml:"no_color" env:"TD_DISPLAY_NO_COLOR"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"TD_APP_TIMEOUT"`
	Verbose bool          `yaml:"verbose" env:"TD_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDir := filepath.Join(homeDir, ".td")

	return &Config{
		Storage: StorageConfig{
			Backend:        BackendSQLite,
			Dir:            defaultDir,
			Filename:       "td.db",
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Identity: IdentityConfig{
			DefaultUsername: DefaultUsername,
		},
		Validation: ValidationConfig{
			TitleMaxLength:       DefaultTitleMaxLength,
			DescriptionMaxLength: DefaultDescriptionMaxLength,
		},
		Display: DisplayConfig{
			TimeFormat:  "Jan 2, 2006 at 15:04",
			RecentLimit: DefaultRecentLimit,
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
		},
	}
}

// GetStoragePath returns the full path to the storage database file
func (c *Config) GetStoragePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// GetReadTimeout returns the storage read timeout
func (c *Config) GetReadTimeout() time.Duration {
	return c.Storage.ReadTimeout
}

// GetWriteTimeout returns the storage write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Storage.WriteTimeout
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if backend := os.Getenv("TD_STORE_BACKEND"); backend != "" {
		c.Storage.Backend = strings.ToLower(backend)
	}
	if dir := os.Getenv("TD_STORE_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("TD_STORE_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if timeout := os.Getenv("TD_STORE_READ_TIMEOUT"); timeout != "" {
		c.Storage.ReadTimeout = ParseDurationWithFallback(timeout, c.Storage.ReadTimeout)
	}
	if timeout := os.Getenv("TD_STORE_WRITE_TIMEOUT"); timeout != "" {
		c.Storage.WriteTimeout = ParseDurationWithFallback(timeout, c.Storage.WriteTimeout)
	}
	if perms := os.Getenv("TD_STORE_DIR_PERMISSIONS"); perms != "" {
		c.Storage.DirPermissions = ParseUint32WithFallback(perms, 8, c.Storage.DirPermissions)
	}

	// Identity configuration
	if username := os.Getenv("TD_DEFAULT_USERNAME"); username != "" {
		c.Identity.DefaultUsername = username
	}
	if url := os.Getenv("TD_URL"); url != "" {
		c.Identity.URL = url
	}

	// Validation configuration
	if maxLen := os.Getenv("TD_VALIDATION_TITLE_MAX"); maxLen != "" {
		c.Validation.TitleMaxLength = ParseIntWithFallback(maxLen, c.Validation.TitleMaxLength)
	}
	if maxLen := os.Getenv("TD_VALIDATION_DESCRIPTION_MAX"); maxLen != "" {
		c.Validation.DescriptionMaxLength = ParseIntWithFallback(maxLen, c.Validation.DescriptionMaxLength)
	}

	// Display configuration
	if format := os.Getenv("TD_TIME_DISPLAY_FORMAT"); format != "" {
		c.Display.TimeFormat = format
	}
	if limit := os.Getenv("TD_DISPLAY_RECENT_LIMIT"); limit != "" {
		c.Display.RecentLimit = ParseIntWithFallback(limit, c.Display.RecentLimit)
	}
	if noColor := os.Getenv("TD_DISPLAY_NO_COLOR"); noColor != "" {
		c.Display.NoColor = ParseBoolWithFallback(noColor, c.Display.NoColor)
	}

	// Application configuration
	if timeout := os.Getenv("TD_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("TD_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate storage configuration
	switch c.Storage.Backend {
	case BackendSQLite:
		if c.Storage.Dir == "" {
			return &ConfigError{Field: "storage.dir", Message: "storage directory cannot be empty"}
		}
		if c.Storage.Filename == "" {
			return &ConfigError{Field: "storage.filename", Message: "storage filename cannot be empty"}
		}
	case BackendMemory:
	default:
		return &ConfigError{Field: "storage.backend", Message: "storage backend must be one of: sqlite, memory"}
	}
	if c.Storage.ReadTimeout <= 0 {
		return &ConfigError{Field: "storage.read_timeout", Message: "read timeout must be positive"}
	}
	if c.Storage.WriteTimeout <= 0 {
		return &ConfigError{Field: "storage.write_timeout", Message: "write timeout must be positive"}
	}

	// Validate identity configuration; format is checked by the identity service
	if c.Identity.DefaultUsername == "" {
		return &ConfigError{Field: "identity.default_username", Message: "default username cannot be empty"}
	}

	// Validate validation configuration
	if c.Validation.TitleMaxLength < 0 {
		return &ConfigError{Field: "validation.title_max_length", Message: "title maximum length cannot be negative"}
	}
	if c.Validation.DescriptionMaxLength < 0 {
		return &ConfigError{Field: "validation.description_max_length", Message: "description maximum length cannot be negative"}
	}

	// Validate display configuration
	if c.Display.TimeFormat == "" {
		return &ConfigError{Field: "display.time_format", Message: "time format cannot be empty"}
	}
	if c.Display.RecentLimit < 1 {
		return &ConfigError{Field: "display.recent_limit", Message: "recent limit must be at least 1"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
