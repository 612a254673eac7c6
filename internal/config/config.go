package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFile is where records are kept when nothing else is configured.
	DefaultFile = "answers.json"

	// DefaultConfigFile is read from the working directory when --config is
	// not given. It is optional.
	DefaultConfigFile = "footprint.yaml"

	EnvFile     = "FOOTPRINT_FILE"
	EnvLogLevel = "FOOTPRINT_LOG_LEVEL"
)

// Config holds settings from footprint.yaml and the environment.
type Config struct {
	// File is the path of the answers file.
	File string `yaml:"file"`

	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		File:     DefaultFile,
		LogLevel: "warn",
	}
}

// Load reads configuration from path on top of the defaults.
//
// With an empty path the default config file is tried and silently skipped
// if it does not exist. An explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	if cfg.File == "" {
		cfg.File = DefaultFile
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables. getenv is usually
// os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvFile)); v != "" {
		c.File = v
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
}

// Level parses LogLevel. An empty level means warn.
func (c *Config) Level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.WarnLevel, nil
	}
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.WarnLevel, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}
