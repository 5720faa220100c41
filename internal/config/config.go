package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/yukikurage/project-todo/internal/constants"
)

// Store backends
const (
	StoreDatabase = "database"
	StoreFile     = "file"
	StoreMemory   = "memory"
)

// Database drivers
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	GinMode      string `env:"GIN_MODE" envDefault:"debug"`
	StoreBackend string `env:"STORE_BACKEND" envDefault:"database"`
	StateKey     string `env:"STATE_KEY"`
	StateFile    string `env:"STATE_FILE" envDefault:"todo-state.json"`
	DBDriver     string `env:"DB_DRIVER" envDefault:"sqlite"`
	DBHost       string `env:"DB_HOST" envDefault:"localhost"`
	DBPort       string `env:"DB_PORT" envDefault:"3306"`
	DBUser       string `env:"DB_USER" envDefault:"todouser"`
	DBPassword   string `env:"DB_PASSWORD" envDefault:"todopassword"`
	DBName       string `env:"DB_NAME" envDefault:"todo"`
	SQLitePath   string `env:"SQLITE_PATH" envDefault:"todo.db"`
	DBLogLevel   string `env:"DB_LOG_LEVEL" envDefault:"warn"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case StoreDatabase, StoreFile, StoreMemory:
	default:
		return fmt.Errorf("unsupported STORE_BACKEND %q", c.StoreBackend)
	}

	switch c.DBDriver {
	case DriverSQLite, DriverMySQL, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	if c.StateKey == "" {
		c.StateKey = constants.DefaultStateKey
	}
	return nil
}
