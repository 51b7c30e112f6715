package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (OS config dir, tareas/tareas.toml)
// 3. Project config file (tareas.toml or .tareas.toml in current directory)
// 4. Environment variables (TAREAS_*)
// 5. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if userFile := findUserConfigFile(); userFile != "" {
		if err := loadConfigFile(cfg, userFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userFile, err)
		}
	}

	if projectFile := findProjectConfigFile(); projectFile != "" {
		if err := loadConfigFile(cfg, projectFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectFile, err)
		}
	}

	loadFromEnv(cfg)

	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findUserConfigFile returns the path of the user config file, or "" when
// absent.
func findUserConfigFile() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(configDir, "tareas", "tareas.toml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// findProjectConfigFile returns the config file in the current directory,
// or "" when absent. tareas.toml wins over .tareas.toml.
func findProjectConfigFile() string {
	for _, name := range []string{"tareas.toml", ".tareas.toml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

func loadConfigFile(cfg *Config, path string) error {
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown config keys: %v", undecoded)
	}
	return nil
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TAREAS_STORE"); v != "" {
		cfg.StoreFile = v
	}
	if v := os.Getenv("TAREAS_ORDER"); v != "" {
		cfg.Order = v
	}
	if v := os.Getenv("TAREAS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TAREAS_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}

// parseFlags registers global flags on fs and parses args; flags override
// everything else.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	fs.StringVar(&cfg.StoreFile, "store", cfg.StoreFile, "Path of the task store file")
	fs.StringVar(&cfg.Order, "order", cfg.Order, "Default list order (priority|date)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|json|logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in log output")
	return fs.Parse(args)
}
