// Package config loads application configuration from YAML with
// environment-variable overrides.
package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LogConfig mirrors the logger settings in the YAML file.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Config is the application configuration. UseDemo defaults to true so a
// missing or partial config never points at the live environment.
type Config struct {
	Identifier  string    `yaml:"identifier"`
	APIKey      string    `yaml:"api_key"`
	APIPassword string    `yaml:"api_password"`
	UseDemo     bool      `yaml:"use_demo"`
	Log         LogConfig `yaml:"log"`
}

// Default returns the baseline configuration: demo environment, info logging.
func Default() Config {
	return Config{
		UseDemo: true,
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads the YAML file at path (when non-empty) over the defaults, then
// applies CAPITAL_* environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrap(err, "read config")
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrap(err, "parse config")
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("CAPITAL_IDENTIFIER"); v != "" {
		c.Identifier = v
	}
	if v := os.Getenv("CAPITAL_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("CAPITAL_API_PASSWORD"); v != "" {
		c.APIPassword = v
	}
	if v := os.Getenv("CAPITAL_USE_DEMO"); v != "" {
		if demo, err := strconv.ParseBool(v); err == nil {
			c.UseDemo = demo
		}
	}
}

// Validate checks that the credential fields are present.
func (c Config) Validate() error {
	if c.Identifier == "" {
		return errors.New("identifier is required")
	}
	if c.APIKey == "" {
		return errors.New("api_key is required")
	}
	if c.APIPassword == "" {
		return errors.New("api_password is required")
	}
	return nil
}
