// Package config handles configuration loading and defaults.
package config

import "fmt"

// Default values.
const (
	DefaultStoreFile = "tareas.json"
	DefaultOrder     = "priority"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config holds the full configuration for tareas.
type Config struct {
	// StoreFile is the path of the JSON store file.
	StoreFile string `toml:"store_file"`

	// Order is the default sort key for listings: "priority" or "date".
	Order string `toml:"order"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
}

// validate checks values that have a closed set of options.
func validate(cfg *Config) error {
	switch cfg.Order {
	case "priority", "date":
	default:
		return fmt.Errorf("invalid order %q: must be \"priority\" or \"date\"", cfg.Order)
	}
	switch cfg.LogFormat {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("invalid log format %q: must be text, json, or logfmt", cfg.LogFormat)
	}
	return nil
}

func setDefaults(cfg *Config) {
	cfg.StoreFile = DefaultStoreFile
	cfg.Order = DefaultOrder
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}
