// Package config loads application configuration from a config file and
// FITBUDDY_-prefixed environment variables, with defaults in code.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Advice   AdviceConfig   `mapstructure:"advice"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
	// Verbose logs every dialogue turn to stderr.
	Verbose bool `mapstructure:"verbose"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type AdviceConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Endpoint   string `mapstructure:"endpoint"`
	TimeoutMs  int    `mapstructure:"timeout_ms"`
	MaxRetries int    `mapstructure:"max_retries"`
	LogCalls   bool   `mapstructure:"log_calls"`
}

type ScheduleConfig struct {
	// DefaultTime is the time label used when a plan is confirmed without
	// an explicit time of day.
	DefaultTime string `mapstructure:"default_time"`
}

// DefaultDBPath returns the database location under the user home
// directory.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "fitbuddy.db"
	}
	return filepath.Join(home, ".fitbuddy", "fitbuddy.db")
}

// Load reads configuration from an optional config.yaml in path plus
// FITBUDDY_ environment variables (e.g. FITBUDDY_SERVER_ADDRESS).
func Load(path string) (Config, error) {
	v := viper.New()
	if path != "" {
		v.AddConfigPath(path)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("FITBUDDY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("server.address", ":8080")
	v.SetDefault("database.path", DefaultDBPath())
	v.SetDefault("advice.enabled", false)
	v.SetDefault("advice.endpoint", "http://localhost:8080")
	v.SetDefault("advice.timeout_ms", 10000)
	v.SetDefault("advice.max_retries", 1)
	v.SetDefault("advice.log_calls", false)
	v.SetDefault("schedule.default_time", "7:00 AM")
	v.SetDefault("verbose", false)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; env vars and defaults apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}
