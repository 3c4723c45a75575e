package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/existflow/shootcal/internal/model"
)

// DefaultReminderSchedule fires the daily shoot-status check at 17:00.
const DefaultReminderSchedule = "0 17 * * *"

// Config holds user preferences
type Config struct {
	DBPath           string `yaml:"db_path" json:"db_path"`                     // SQLite file holding the calendar records
	DefaultColor     string `yaml:"default_color" json:"default_color"`         // Color for projects blocked without one
	ReminderSchedule string `yaml:"reminder_schedule" json:"reminder_schedule"` // Cron spec for the shoot-status check
	Timezone         string `yaml:"timezone" json:"timezone"`                   // IANA zone for day keys, empty means local

	// Logging configuration
	LogLevel   string `yaml:"log_level" json:"log_level"`     // Log level: DEBUG, INFO, WARN, ERROR
	LogFile    string `yaml:"log_file" json:"log_file"`       // Path to log file
	LogConsole bool   `yaml:"log_console" json:"log_console"` // Enable console logging
}

// Dir returns the application directory (~/.shootcal)
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".shootcal"), nil
}

// DefaultPath returns the config file location (~/.shootcal/config.yaml)
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DefaultConfig returns default settings
func DefaultConfig() *Config {
	dir, _ := Dir()
	logPath := ""
	dbPath := ""
	if dir != "" {
		logPath = filepath.Join(dir, "logs", "shootcal.log")
		dbPath = filepath.Join(dir, "calendar.db")
	}

	return &Config{
		DBPath:           getEnv("SHOOTCAL_DB", dbPath),
		DefaultColor:     model.DefaultColor,
		ReminderSchedule: DefaultReminderSchedule,
		LogLevel:         getEnv("SHOOTCAL_LOG_LEVEL", "INFO"),
		LogFile:          getEnv("SHOOTCAL_LOG_FILE", logPath),
		LogConsole:       getEnv("SHOOTCAL_LOG_CONSOLE", "false") == "true",
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Normalize fills in blank values so partially written files still work
func (c *Config) Normalize() {
	defaults := DefaultConfig()
	if c.DBPath == "" {
		c.DBPath = defaults.DBPath
	}
	if c.DefaultColor == "" {
		c.DefaultColor = defaults.DefaultColor
	}
	if c.ReminderSchedule == "" {
		c.ReminderSchedule = defaults.ReminderSchedule
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
}

// Location resolves Timezone, falling back to the local zone
func (c *Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Load loads config from ~/.shootcal/config.yaml
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom loads config from path, returning defaults if the file is missing
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Normalize()

	return cfg, nil
}

// Save saves config to ~/.shootcal/config.yaml
func (c *Config) Save() error {
	path, err := DefaultPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config as YAML to path
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
