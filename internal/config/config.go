package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings for the canteen server.
type Config struct {
	HTTPPort     string `envconfig:"HTTP_PORT" default:"9446"`
	DatabasePath string `envconfig:"DATABASE_PATH" default:"canteen.db"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`

	// AdminPassword is a plaintext shared secret. There is no session or
	// rate-limit model; the dashboard is single-tenant and local.
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"adminpass"`

	// WastePollInterval is how often the re-poll backstop compares the
	// stored waste totals against the last value it broadcast.
	WastePollInterval time.Duration `envconfig:"WASTE_POLL_INTERVAL" default:"1s"`

	// WasteCapacityKg is the amount of waste that fills a progress bar.
	WasteCapacityKg int `envconfig:"WASTE_CAPACITY_KG" default:"100"`
}

func (c *Config) Validate() error {
	if c.HTTPPort == "" {
		return fmt.Errorf("HTTP_PORT must not be empty")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH must not be empty")
	}
	if c.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD must not be empty")
	}
	if c.WastePollInterval <= 0 {
		return fmt.Errorf("WASTE_POLL_INTERVAL must be positive")
	}
	if c.WasteCapacityKg <= 0 {
		return fmt.Errorf("WASTE_CAPACITY_KG must be positive")
	}
	return nil
}

// ProcessEnvironmentVariables reads the environment into a Config.
func ProcessEnvironmentVariables() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
