package advice

import (
	"os"
	"strconv"
)

// Topic identifies the kind of guidance being requested.
type Topic string

const (
	TopicGeneral    Topic = "general"
	TopicNutrition  Topic = "nutrition"
	TopicMotivation Topic = "motivation"
	TopicStress     Topic = "stress"
	TopicRecovery   Topic = "recovery"
	TopicEmotional  Topic = "emotional"
)

// Config holds all configuration for the advice subsystem.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	TimeoutMs  int
	MaxRetries int
}

// DefaultConfig returns a Config with sensible defaults. The remote
// backend is disabled by default; fixed templates answer instead.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "http://localhost:8080",
		TimeoutMs:  10000,
		MaxRetries: 1,
	}
}

// LoadConfig reads advice configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("FITBUDDY_ADVICE_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("FITBUDDY_ADVICE_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("FITBUDDY_ADVICE_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("FITBUDDY_ADVICE_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("FITBUDDY_ADVICE_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	return cfg
}
