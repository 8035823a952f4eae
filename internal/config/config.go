package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Config struct {
	// Record storage
	DataDir     string
	DataBackend string

	// Settings database
	SettingsDBPath string

	// Reminder worker
	ReminderPollInterval time.Duration
}

func Load() *Config {
	return &Config{
		DataDir:     getEnv("HOURTRACK_DATA_DIR", "./user_data"),
		DataBackend: getEnv("HOURTRACK_BACKEND", "csv"),

		SettingsDBPath: getEnv("HOURTRACK_SETTINGS_DB", "./data/settings.db"),

		ReminderPollInterval: getEnvDuration("HOURTRACK_REMINDER_POLL", time.Minute),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	validBackends := []string{"csv", "memory"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.DataBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	if c.DataBackend == "csv" && c.DataDir == "" {
		errors = append(errors, "data directory cannot be empty when using csv backend")
	}

	if c.SettingsDBPath == "" {
		errors = append(errors, "settings database path cannot be empty")
	} else {
		dir := filepath.Dir(c.SettingsDBPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create settings directory '%s': %v", dir, err))
				}
			}
		}
	}

	if c.ReminderPollInterval < time.Second {
		errors = append(errors, fmt.Sprintf("invalid reminder poll interval %v: must be at least 1 second", c.ReminderPollInterval))
	} else if c.ReminderPollInterval > time.Hour {
		errors = append(errors, fmt.Sprintf("invalid reminder poll interval %v: must be at most 1 hour", c.ReminderPollInterval))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
