package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config   *Config
	filePath string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// WithFile makes the loader read the given YAML file instead of the default location
func (l *Loader) WithFile(path string) *Loader {
	l.filePath = path
	return l
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML config file, if present
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	if err := l.loadFile(); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		overrides.Apply(config)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigFilePath returns the config file the loader reads. TD_CONFIG_FILE
// takes precedence over the default of config.yaml in the storage directory.
func (l *Loader) ConfigFilePath() string {
	if l.filePath != "" {
		return l.filePath
	}
	if path := os.Getenv("TD_CONFIG_FILE"); path != "" {
		return path
	}
	dir := l.config.Storage.Dir
	if envDir := os.Getenv("TD_STORE_DIR"); envDir != "" {
		dir = envDir
	}
	return filepath.Join(dir, "config.yaml")
}

// loadFile merges the YAML config file over the current configuration.
// A missing file is not an error.
func (l *Loader) loadFile() error {
	path := l.ConfigFilePath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, l.config); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Storage overrides
	StoreBackend      *string
	StoreDir          *string
	StoreFilename     *string
	StoreWriteTimeout *time.Duration

	// Identity overrides
	DefaultUsername *string
	URL             *string

	// Display overrides
	TimeFormat  *string
	RecentLimit *int
	NoColor     *bool

	// Application overrides
	Timeout *time.Duration
	Verbose *bool
}

// Apply applies command line overrides to the configuration
func (o *ConfigOverrides) Apply(config *Config) {
	// Storage overrides
	if o.StoreBackend != nil {
		config.Storage.Backend = *o.StoreBackend
	}
	if o.StoreDir != nil {
		config.Storage.Dir = *o.StoreDir
	}
	if o.StoreFilename != nil {
		config.Storage.Filename = *o.StoreFilename
	}
	if o.StoreWriteTimeout != nil {
		config.Storage.WriteTimeout = *o.StoreWriteTimeout
	}

	// Identity overrides
	if o.DefaultUsername != nil {
		config.Identity.DefaultUsername = *o.DefaultUsername
	}
	if o.URL != nil {
		config.Identity.URL = *o.URL
	}

	// Display overrides
	if o.TimeFormat != nil {
		config.Display.TimeFormat = *o.TimeFormat
	}
	if o.RecentLimit != nil {
		config.Display.RecentLimit = *o.RecentLimit
	}
	if o.NoColor != nil {
		config.Display.NoColor = *o.NoColor
	}

	// Application overrides
	if o.Timeout != nil {
		config.Application.Timeout = *o.Timeout
	}
	if o.Verbose != nil {
		config.Application.Verbose = *o.Verbose
	}
}
