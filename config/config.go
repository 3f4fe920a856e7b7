package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	DefaultPort            = 3000
	DefaultShutdownTimeout = 10 * time.Second
)

// Config holds the service settings. Values come from the environment
// (optionally seeded from a .env file) and may be overridden by CLI flags.
type Config struct {
	Port            int
	Debug           bool
	BodyLimit       string
	ShutdownTimeout time.Duration
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Port:            DefaultPort,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// Load reads PORT, DEBUG, BODY_LIMIT and SHUTDOWN_TIMEOUT on top of Default.
func Load() (Config, error) {
	return load(os.LookupEnv)
}

func load(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse PORT: %w", err)
		}
		cfg.Port = port
	}
	if v, ok := lookup("DEBUG"); ok {
		cfg.Debug = v == "true"
	}
	if v, ok := lookup("BODY_LIMIT"); ok {
		cfg.BodyLimit = v
	}
	if v, ok := lookup("SHUTDOWN_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, cfg.Validate()
}

// Validate reports settings the server cannot start with.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout %s must be positive", c.ShutdownTimeout)
	}
	return nil
}

// Address is the listen address for the configured port.
func (c Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}
