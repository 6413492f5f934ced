package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

const (
	minRequestTimeout = 100 * time.Millisecond
	maxRequestTimeout = time.Minute

	minShutdownTimeout = time.Second
	maxShutdownTimeout = 5 * time.Minute
)

// Validate checks every configuration value and reports all problems at once
// using errors.Join.
func (c *Config) Validate() error {
	var errs []error

	if _, _, err := c.Database(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateAddrs(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateRequestTimeout(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateShutdownTimeout(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateLogLevel(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %w", errors.Join(errs...))
	}

	return nil
}

func (c *Config) validateAddrs() error {
	var errs []error

	if c.HTTPAddr == "" {
		errs = append(errs, fmt.Errorf("HTTP_ADDR cannot be empty"))
	}
	if c.MetricsAddr == "" {
		errs = append(errs, fmt.Errorf("METRICS_ADDR cannot be empty"))
	}
	if c.HTTPAddr != "" && c.HTTPAddr == c.MetricsAddr {
		errs = append(errs, fmt.Errorf("HTTP_ADDR and METRICS_ADDR must differ, both are %q", c.HTTPAddr))
	}

	return errors.Join(errs...)
}

func (c *Config) validateRequestTimeout() error {
	if c.RequestTimeout < minRequestTimeout || c.RequestTimeout > maxRequestTimeout {
		return fmt.Errorf(
			"REQUEST_TIMEOUT must be between %v and %v, got %v",
			minRequestTimeout, maxRequestTimeout, c.RequestTimeout,
		)
	}
	return nil
}

func (c *Config) validateShutdownTimeout() error {
	if c.ShutdownTimeout < minShutdownTimeout || c.ShutdownTimeout > maxShutdownTimeout {
		return fmt.Errorf(
			"SHUTDOWN_TIMEOUT must be between %v and %v, got %v",
			minShutdownTimeout, maxShutdownTimeout, c.ShutdownTimeout,
		)
	}
	return nil
}

func (c *Config) validateLogLevel() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps LOG_LEVEL onto a slog level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", c.LogLevel)
	}
	return level, nil
}
