package config

import (
	"errors"
	"fmt"

	"rowgroup/internal/matching"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateMatching() error {
	for name, cols := range c.Matching.Columns {
		if _, err := matching.ParseFieldGroup(name); err != nil {
			return fmt.Errorf("matching.columns: %w", err)
		}
		if len(cols) == 0 {
			return fmt.Errorf("matching.columns.%s must list at least one column", name)
		}
	}
	return nil
}

func (c *Config) validateOutput() error {
	if c.Output.IDHeader == "" {
		return errors.New("output.id_header must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	return nil
}
