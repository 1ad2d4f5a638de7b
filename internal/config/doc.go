// Package config loads, normalizes, and validates rowgroup configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// ROWGROUP_LOG_LEVEL. A missing configuration file is not an error: the
// defaults reproduce the built-in column lists and output format exactly.
//
// Always obtain settings through this package so downstream code receives
// trimmed column names, canonical log settings, and clear validation errors.
package config
