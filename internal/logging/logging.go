// Package logging provides leveled console logging with charmbracelet/log.
package logging

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/rubenelices/tareas/internal/config"
)

// Options holds configuration for console logging.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
	Prefix          string
}

// DefaultOptions returns default options for console logging.
func DefaultOptions() Options {
	return Options{
		Level:           log.InfoLevel,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		Prefix:          "tareas",
	}
}

// FromConfig builds logger options from the loaded configuration.
// Unrecognized level or format strings fall back to the defaults.
func FromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()

	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		opts.Level = lvl
	}

	switch cfg.LogFormat {
	case "json":
		opts.Formatter = log.JSONFormatter
	case "logfmt":
		opts.Formatter = log.LogfmtFormatter
	case "text":
		opts.Formatter = log.TextFormatter
	}

	opts.ReportTimestamp = cfg.LogTimestamps
	return opts
}

// New creates a console logger writing to w with the given options.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
}
