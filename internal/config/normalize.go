package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeMatching()
	c.normalizeOutput()
	return c.normalizeLogging()
}

func (c *Config) normalizeMatching() {
	if len(c.Matching.Columns) == 0 {
		c.Matching.Columns = nil
		return
	}
	normalized := make(map[string][]string, len(c.Matching.Columns))
	for name, cols := range c.Matching.Columns {
		key := strings.ToLower(strings.TrimSpace(name))
		trimmed := make([]string, 0, len(cols))
		for _, col := range cols {
			// Headers match exactly; only surrounding whitespace is dropped.
			if col = strings.TrimSpace(col); col != "" {
				trimmed = append(trimmed, col)
			}
		}
		normalized[key] = trimmed
	}
	c.Matching.Columns = normalized
}

func (c *Config) normalizeOutput() {
	c.Output.IDHeader = strings.TrimSpace(c.Output.IDHeader)
	if c.Output.IDHeader == "" {
		c.Output.IDHeader = defaultIDHeader
	}
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv("ROWGROUP_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	if value, ok := os.LookupEnv("ROWGROUP_LOG_FORMAT"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Format = value
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}

	if strings.TrimSpace(c.Logging.File) != "" {
		expanded, err := expandPath(strings.TrimSpace(c.Logging.File))
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}
