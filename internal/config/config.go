// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	// sendgrid
	SendGridAPIKey string

	// email addressing
	SenderEmail string
	BCC         string

	// sandbox mode: emails are validated by the provider but not delivered
	Development bool

	// address-list reset recurrence
	Reset ResetSchedule

	// server
	HTTPPort int

	// logging
	LogLevel string
	LogFile  string
}

// ResetSchedule is the optional recurrence at which the submission tracker
// is cleared. A nil field means "every value" (cron wildcard); all fields
// nil means no recurring reset at all.
type ResetSchedule struct {
	Minute    *int
	Hour      *int
	DayOfWeek *int // 0-6, 0 = Sunday
}

// IsZero reports whether no recurrence field is set.
func (s ResetSchedule) IsZero() bool {
	return s.Minute == nil && s.Hour == nil && s.DayOfWeek == nil
}

// Load reads configuration from environment variables.
// SENDGRID_API_KEY and EMAIL are required; everything else has a default
// or is optional.
func Load() (*Config, error) {
	cfg := &Config{
		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		SenderEmail:    os.Getenv("EMAIL"),
		BCC:            getEnv("BCC", ""),
		Development:    os.Getenv("DEVELOPMENT") != "",
		HTTPPort:       getEnvInt("HTTP_PORT", 8080),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFile:        getEnv("LOG_FILE", ""),
	}

	if cfg.SendGridAPIKey == "" {
		return nil, fmt.Errorf("SENDGRID_API_KEY environment variable is not set")
	}
	if cfg.SenderEmail == "" {
		return nil, fmt.Errorf("EMAIL environment variable is not set")
	}

	var err error
	if cfg.Reset.Minute, err = getEnvOptInt("MINUTE", 0, 59); err != nil {
		return nil, err
	}
	if cfg.Reset.Hour, err = getEnvOptInt("HOUR", 0, 23); err != nil {
		return nil, err
	}
	if cfg.Reset.DayOfWeek, err = getEnvOptInt("DAY_OF_WEEK", 0, 6); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// getEnvOptInt returns nil when the variable is unset, and errors on
// non-numeric or out-of-range values rather than silently ignoring them.
func getEnvOptInt(key string, min, max int) (*int, error) {
	val := os.Getenv(key)
	if val == "" {
		return nil, nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer, got %q", key, val)
	}
	if i < min || i > max {
		return nil, fmt.Errorf("%s must be between %d and %d, got %d", key, min, max, i)
	}
	return &i, nil
}
