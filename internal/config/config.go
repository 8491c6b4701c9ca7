package config

import (
	"fmt"
	"os"
	"path/filepath"

	"smartrename/internal/errors"
	"smartrename/pkg/types"

	"gopkg.in/yaml.v3"
)

// Defaults are the naming options used when the command line does not set them.
// Numbers are kept as text so a malformed value falls back to the documented
// default instead of failing the whole file.
type Defaults struct {
	Prefix        string   `yaml:"prefix"`         // Prefix prepended to every new name
	UseSequential bool     `yaml:"use_sequential"` // Replace the stem with a sequence number
	StartNumber   string   `yaml:"start_number"`   // First sequence value (default 1)
	DigitPadding  string   `yaml:"digit_padding"`  // Minimum digits of the sequence (default 3)
	Types         []string `yaml:"types"`          // Categories to rename: image, video, document, other
	Match         string   `yaml:"match"`          // Optional glob narrowing the file list
}

// Settings control program behaviour rather than naming.
type Settings struct {
	Confirm  bool   `yaml:"confirm"`   // Ask before renaming
	Debug    bool   `yaml:"debug"`     // Enable debug logging
	LogJSON  bool   `yaml:"log_json"`  // Emit JSON log lines
	LogFile  string `yaml:"log_file"`  // Also append logs to this file
	LogLevel string `yaml:"log_level"` // Minimum log level
}

// Config represents the application configuration structure.
type Config struct {
	Defaults    Defaults            `yaml:"defaults"`
	Settings    Settings            `yaml:"settings"`
	Extensions  map[string][]string `yaml:"extensions"` // Extra extensions per category
	Directories struct {
		Default string `yaml:"default"` // Directory used when none is given
	} `yaml:"directories"`
}

// DefaultPath returns ~/.config/smartrename/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "smartrename", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
// Keys missing from the file keep their default values.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.NewConfigError("error reading config file", path, errors.ConfigNotFound, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Defaults.StartNumber = fmt.Sprint(types.DefaultStartNumber)
	cfg.Defaults.DigitPadding = fmt.Sprint(types.DefaultDigitPadding)
	cfg.Defaults.Types = types.AllCategorySet().Names()

	cfg.Settings.Confirm = true // Always ask before touching files
	cfg.Settings.LogLevel = "warn"

	cfg.Extensions = map[string][]string{}
	cfg.Directories.Default = "."

	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write config file %s", path)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Malformed numbers are not errors; they fall back to defaults in Policy.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewKind(errors.InvalidConfig, "nil config")
	}

	if _, err := types.ParseCategories(c.Defaults.Types); err != nil {
		return errors.NewConfigError("invalid file type", "defaults.types", errors.InvalidConfig, err)
	}

	for name := range c.Extensions {
		if _, err := types.ParseCategory(name); err != nil {
			return errors.NewConfigError("invalid extension category", "extensions."+name, errors.InvalidConfig, err)
		}
	}

	switch c.Settings.LogLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return errors.NewConfigError("invalid log level", "settings.log_level", errors.InvalidConfig, nil)
	}

	return nil
}

// Policy returns the configured naming policy with numbering fallbacks applied.
func (c *Config) Policy() types.NamingPolicy {
	return types.NamingPolicy{
		Prefix:        c.Defaults.Prefix,
		UseSequential: c.Defaults.UseSequential,
		StartNumber:   types.ParseStartNumber(c.Defaults.StartNumber),
		DigitPadding:  types.ParseDigitPadding(c.Defaults.DigitPadding),
	}
}

// Categories returns the configured type filter.
func (c *Config) Categories() (types.CategorySet, error) {
	return types.ParseCategories(c.Defaults.Types)
}

// ExtraExtensions returns the extension overrides keyed by category.
func (c *Config) ExtraExtensions() map[types.Category][]string {
	extra := make(map[types.Category][]string)
	for name, exts := range c.Extensions {
		category, err := types.ParseCategory(name)
		if err != nil {
			continue
		}
		extra[category] = append(extra[category], exts...)
	}
	return extra
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig() *Config {
	cfg := defaultConfig()
	cfg.Defaults.Prefix = "test_"
	cfg.Settings.Confirm = false
	return cfg
}
