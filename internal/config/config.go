// Package config resolves sequencer settings from flags, the environment,
// .env files and an optional .sequencer.yaml file.
//
// Precedence, highest first: command-line flags, SEQUENCER_* environment
// variables, the config file, .env values, built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sequencer/internal/logger"
	"sequencer/internal/theme"
)

// EnvPrefix is the prefix of every environment variable the sequencer reads.
const EnvPrefix = "SEQUENCER"

// DefaultCapacity is the number of fragment slots when none is configured.
const DefaultCapacity = 8

// Configuration keys. Flag names match these so BindPFlags maps them directly.
const (
	KeyCapacity = "capacity"
	KeyLogLevel = "log-level"
	KeyLogFile  = "log-file"
	KeyFile     = "file"
	KeyStrict   = "strict"
	KeyTheme    = "theme"
	KeyTestMode = "test-mode"
)

var logLevels = []string{"", "debug", "info", "warn", "warning", "error", "fatal"}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the resolved settings for one invocation.
type Config struct {
	Capacity int
	LogLevel string
	LogFile  string
	File     string
	Strict   bool
	Theme    string
	TestMode bool
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyCapacity, DefaultCapacity)
	v.SetDefault(KeyTheme, "default")
	v.SetDefault(KeyStrict, false)
	v.SetDefault(KeyTestMode, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds the local and persistent flags of cmd to v.
func BindFlags(v *viper.Viper, cmd *cobra.Command) error {
	if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
		return fmt.Errorf("failed to bind persistent flags: %w", err)
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	return nil
}

// DefaultSearchPaths returns the directories searched for .env and
// .sequencer.yaml: the working directory, then the user config directory.
func DefaultSearchPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "sequencer"))
	}
	return paths
}

// Load reads .env files and the config file from dirs into v and returns
// the validated configuration.
func Load(v *viper.Viper, dirs ...string) (*Config, error) {
	// Later directories have lower priority, so apply them first.
	for i := len(dirs) - 1; i >= 0; i-- {
		if err := loadDotEnv(v, filepath.Join(dirs[i], ".env")); err != nil {
			return nil, err
		}
	}

	v.SetConfigName(".sequencer")
	v.SetConfigType("yaml")
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		logger.Debug("Loaded config file", "path", v.ConfigFileUsed())
	}

	cfg := FromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromViper builds a Config from the current values in v.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		Capacity: v.GetInt(KeyCapacity),
		LogLevel: strings.ToLower(v.GetString(KeyLogLevel)),
		LogFile:  v.GetString(KeyLogFile),
		File:     v.GetString(KeyFile),
		Strict:   v.GetBool(KeyStrict),
		Theme:    strings.ToLower(v.GetString(KeyTheme)),
		TestMode: v.GetBool(KeyTestMode),
	}
}

// Validate rejects settings the interpreter cannot run with.
func (c *Config) Validate() error {
	if c.Capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative, got %d", ErrInvalidConfig, c.Capacity)
	}
	if !slices.Contains(logLevels, c.LogLevel) {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.Theme != "" && !slices.Contains(theme.Names(), c.Theme) {
		return fmt.Errorf("%w: unknown theme %q (available: %s)", ErrInvalidConfig, c.Theme, strings.Join(theme.Names(), ", "))
	}
	return nil
}

// loadDotEnv registers SEQUENCER_* entries of a .env file as defaults.
// A missing file is not an error.
func loadDotEnv(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	envMap, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("failed to parse .env file %s: %w", path, err)
	}

	for key, value := range envMap {
		name, ok := strings.CutPrefix(key, EnvPrefix+"_")
		if !ok {
			continue
		}
		v.SetDefault(strings.ReplaceAll(strings.ToLower(name), "_", "-"), value)
	}
	logger.Debug("Loaded .env file", "path", path, "entries", len(envMap))
	return nil
}
