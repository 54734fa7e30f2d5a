// Package config loads the projects configuration from YAML, .env and the environment
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `yaml:"database" envPrefix:"PROJECTS_DB_"`
	Log      LogConfig      `yaml:"log" envPrefix:"PROJECTS_LOG_"`
	Theme    ColorScheme    `yaml:"theme"`
}

// DatabaseConfig holds the fixed connection parameters.
// Path is used by sqlite; the server drivers use Host/Port/Schema/User/Password.
type DatabaseConfig struct {
	Driver      string `yaml:"driver" env:"DRIVER"`
	Path        string `yaml:"path" env:"PATH"`
	Host        string `yaml:"host" env:"HOST"`
	Port        int    `yaml:"port" env:"PORT"`
	Schema      string `yaml:"schema" env:"SCHEMA"`
	User        string `yaml:"user" env:"USER"`
	Password    string `yaml:"password" env:"PASSWORD"`
	BusyTimeout int    `yaml:"busy_timeout_ms" env:"BUSY_TIMEOUT_MS"`
	AutoMigrate bool   `yaml:"auto_migrate" env:"AUTO_MIGRATE"`
}

// LogConfig controls where and how verbosely the app logs
type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL"`
	Path  string `yaml:"path" env:"PATH"`
}

// Default returns the configuration used when no file or overrides exist
func Default() *Config {
	cfg := &Config{
		Database: DatabaseConfig{
			Driver:      DriverSQLite,
			BusyTimeout: 5000,
			AutoMigrate: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
	if dir, err := DataDir(); err == nil {
		cfg.Database.Path = filepath.Join(dir, "projects.db")
		cfg.Log.Path = filepath.Join(dir, "logs", "projects.log")
	}
	return cfg
}

// Load builds the config in layers: defaults, then config.yaml, then a .env
// file in the working directory, then PROJECTS_* environment variables.
func Load() (*Config, error) {
	cfg := Default()

	configPath, err := getConfigPath()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("failed to read %s: %w", configPath, err)
		}
	}

	// godotenv never overrides variables that are already set
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o600)
}

// Validate checks that the database parameters are usable for the chosen driver
func (c *Config) Validate() error {
	db := c.Database
	switch db.Driver {
	case DriverSQLite:
		if strings.TrimSpace(db.Path) == "" {
			return errors.New("database.path is required for the sqlite driver")
		}
	case DriverMySQL, DriverPostgres:
		if db.Host == "" {
			return fmt.Errorf("database.host is required for the %s driver", db.Driver)
		}
		if db.Schema == "" {
			return fmt.Errorf("database.schema is required for the %s driver", db.Driver)
		}
		if db.User == "" {
			return fmt.Errorf("database.user is required for the %s driver", db.Driver)
		}
		if db.Port <= 0 || db.Port > 65535 {
			return fmt.Errorf("database.port %d is out of range", db.Port)
		}
	default:
		return fmt.Errorf("unsupported database driver %q (must be: sqlite, mysql, postgres)", db.Driver)
	}
	return nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	if c.Database.Port == 0 {
		switch c.Database.Driver {
		case DriverMySQL:
			c.Database.Port = 3306
		case DriverPostgres:
			c.Database.Port = 5432
		}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	c.Theme.ApplyDefaults()
}

// DataDir returns ~/.projects, where the sqlite database and logs live by default
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".projects"), nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if explicit := os.Getenv("PROJECTS_CONFIG"); explicit != "" {
		return explicit, nil
	}

	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "projects", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "projects", "config.yaml"), nil
}
