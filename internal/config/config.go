// Package config loads gomech settings from defaults, an optional YAML
// file and GOMECH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gomech/internal/record"
)

const (
	// AppName is the application name.
	AppName = "gomech"
	// EnvPrefix prefixes every environment override, e.g. GOMECH_UNITS_SYSTEM.
	EnvPrefix = "GOMECH"
	// LocalFileName is looked up in the working directory.
	LocalFileName = "gomech.yaml"
	// UserFileName is looked up in the user config directory.
	UserFileName = "config.yaml"
)

// ErrInvalidConfig is wrapped by InvalidConfigError.
var ErrInvalidConfig = errors.New("invalid config")

// InvalidConfigError names the setting that failed validation.
type InvalidConfigError struct {
	Key   string
	Value string
	Err   error
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("%s: %s = %q: %v", ErrInvalidConfig, e.Key, e.Value, e.Err)
}

func (e *InvalidConfigError) Unwrap() []error { return []error{ErrInvalidConfig, e.Err} }

type (
	// Config is the resolved configuration.
	Config struct {
		Units UnitsConfig `mapstructure:"units" yaml:"units"`
		Data  DataConfig  `mapstructure:"data" yaml:"data"`
		Log   LogConfig   `mapstructure:"log" yaml:"log"`
	}

	// UnitsConfig selects the unit system records are expressed in.
	UnitsConfig struct {
		System string `mapstructure:"system" yaml:"system"`
	}

	// DataConfig points at dataset overrides. Both are optional.
	DataConfig struct {
		// Dir holds <dataset>.csv or <dataset>.yaml files.
		Dir string `mapstructure:"dir" yaml:"dir"`
		// SQLite is a database file holding one table per dataset.
		SQLite string `mapstructure:"sqlite" yaml:"sqlite"`
	}

	// LogConfig sets the log level: debug, info, warn or error.
	LogConfig struct {
		Level string `mapstructure:"level" yaml:"level"`
	}

	// LoadOptions overrides where Load looks for a file.
	LoadOptions struct {
		// ConfigFilePath is used exclusively when set, and must exist.
		ConfigFilePath string
		// ConfigDirPath replaces the user config directory.
		ConfigDirPath string
	}
)

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Units: UnitsConfig{System: record.SI.String()},
		Log:   LogConfig{Level: log.WarnLevel.String()},
	}
}

// ConfigDir returns $XDG_CONFIG_HOME/gomech, defaulting to ~/.config/gomech.
//
//nolint:revive // ConfigDir reads better than Dir at call sites
func ConfigDir() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, AppName), nil
}

// Load resolves the configuration and returns it with the path of the file
// it read, empty when only defaults and environment applied.
func Load(opts LoadOptions) (*Config, string, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("units.system", defaults.Units.System)
	v.SetDefault("data.dir", defaults.Data.Dir)
	v.SetDefault("data.sqlite", defaults.Data.SQLite)
	v.SetDefault("log.level", defaults.Log.Level)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path, err := resolvePath(opts)
	if err != nil {
		return nil, "", err
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, path, nil
}

func resolvePath(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return "", fmt.Errorf("config file not found: %s", opts.ConfigFilePath)
		}
		return opts.ConfigFilePath, nil
	}

	if fileExists(LocalFileName) {
		return LocalFileName, nil
	}

	dir := opts.ConfigDirPath
	if dir == "" {
		var err error
		if dir, err = ConfigDir(); err != nil {
			return "", err
		}
	}
	if p := filepath.Join(dir, UserFileName); fileExists(p) {
		return p, nil
	}
	return "", nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	if _, err := record.ParseUnitSystem(c.Units.System); err != nil {
		return &InvalidConfigError{Key: "units.system", Value: c.Units.System, Err: err}
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return &InvalidConfigError{Key: "log.level", Value: c.Log.Level, Err: err}
	}
	return nil
}

// UnitSystem returns the parsed units.system.
func (c *Config) UnitSystem() record.UnitSystem {
	sys, err := record.ParseUnitSystem(c.Units.System)
	if err != nil {
		return record.SI
	}
	return sys
}

// LogLevel returns the parsed log.level.
func (c *Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}

// YAML renders the resolved settings in the file format Load reads.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
