package config

import (
	"fmt"
	"strings"
)

type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

// Database resolves DATABASE_URL into a store driver and the DSN that driver expects.
// postgres:// and postgresql:// URLs are passed through unchanged; sqlite:// URLs and
// bare paths yield a file path.
func (c *Config) Database() (Driver, string, error) {
	raw := strings.TrimSpace(c.DatabaseURL)
	switch {
	case raw == "":
		return "", "", fmt.Errorf("DATABASE_URL is empty")
	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		return DriverPostgres, raw, nil
	case strings.HasPrefix(raw, "sqlite://"):
		path := strings.TrimPrefix(raw, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("DATABASE_URL %q has no sqlite file path", raw)
		}
		return DriverSQLite, path, nil
	case strings.Contains(raw, "://"):
		scheme, _, _ := strings.Cut(raw, "://")
		return "", "", fmt.Errorf("DATABASE_URL scheme %q is not supported (use postgres:// or sqlite://)", scheme)
	default:
		return DriverSQLite, raw, nil
	}
}
