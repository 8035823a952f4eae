package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid csv backend config",
			config: Config{
				DataDir:              "./user_data",
				DataBackend:          "csv",
				SettingsDBPath:       "./settings.db",
				ReminderPollInterval: time.Minute,
			},
			wantErr: false,
		},
		{
			name: "valid memory backend config",
			config: Config{
				DataBackend:          "memory",
				SettingsDBPath:       "./settings.db",
				ReminderPollInterval: time.Minute,
			},
			wantErr: false,
		},
		{
			name: "invalid data backend",
			config: Config{
				DataDir:              "./user_data",
				DataBackend:          "postgres",
				SettingsDBPath:       "./settings.db",
				ReminderPollInterval: time.Minute,
			},
			wantErr:     true,
			errorString: "invalid data backend 'postgres'",
		},
		{
			name: "csv backend needs data dir",
			config: Config{
				DataBackend:          "csv",
				SettingsDBPath:       "./settings.db",
				ReminderPollInterval: time.Minute,
			},
			wantErr:     true,
			errorString: "data directory cannot be empty",
		},
		{
			name: "empty settings path",
			config: Config{
				DataDir:              "./user_data",
				DataBackend:          "csv",
				ReminderPollInterval: time.Minute,
			},
			wantErr:     true,
			errorString: "settings database path cannot be empty",
		},
		{
			name: "poll interval too small",
			config: Config{
				DataDir:              "./user_data",
				DataBackend:          "csv",
				SettingsDBPath:       "./settings.db",
				ReminderPollInterval: 100 * time.Millisecond,
			},
			wantErr:     true,
			errorString: "must be at least 1 second",
		},
		{
			name: "poll interval too large",
			config: Config{
				DataDir:              "./user_data",
				DataBackend:          "csv",
				SettingsDBPath:       "./settings.db",
				ReminderPollInterval: 2 * time.Hour,
			},
			wantErr:     true,
			errorString: "must be at most 1 hour",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("error %q does not contain %q", err, tt.errorString)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_ValidateCreatesSettingsDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "deep")
	cfg := Config{
		DataDir:              "./user_data",
		DataBackend:          "csv",
		SettingsDBPath:       filepath.Join(dir, "settings.db"),
		ReminderPollInterval: time.Minute,
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("settings directory not created: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"HOURTRACK_DATA_DIR", "HOURTRACK_BACKEND", "HOURTRACK_SETTINGS_DB", "HOURTRACK_REMINDER_POLL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	cfg := Load()
	if cfg.DataDir != "./user_data" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.DataBackend != "csv" {
		t.Errorf("DataBackend = %q", cfg.DataBackend)
	}
	if cfg.ReminderPollInterval != time.Minute {
		t.Errorf("ReminderPollInterval = %v", cfg.ReminderPollInterval)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HOURTRACK_DATA_DIR", "/tmp/records")
	t.Setenv("HOURTRACK_BACKEND", "memory")
	t.Setenv("HOURTRACK_REMINDER_POLL", "30s")
	cfg := Load()
	if cfg.DataDir != "/tmp/records" || cfg.DataBackend != "memory" {
		t.Fatalf("env not honored: %+v", cfg)
	}
	if cfg.ReminderPollInterval != 30*time.Second {
		t.Fatalf("ReminderPollInterval = %v", cfg.ReminderPollInterval)
	}
}
