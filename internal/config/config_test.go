package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

// clearEnv unsets every TAREAS_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"TAREAS_STORE", "TAREAS_ORDER", "TAREAS_LOG_LEVEL", "TAREAS_LOG_FORMAT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// chdir changes into dir and restores the previous working directory when the
// test ends. It stands in for t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWd) })
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := Load(fs, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.StoreFile != DefaultStoreFile {
		t.Errorf("StoreFile: got %q, want %q", cfg.StoreFile, DefaultStoreFile)
	}
	if cfg.Order != DefaultOrder {
		t.Errorf("Order: got %q, want %q", cfg.Order, DefaultOrder)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel: got %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.LogFormat != DefaultLogFormat {
		t.Errorf("LogFormat: got %q, want %q", cfg.LogFormat, DefaultLogFormat)
	}
}

func TestLoadProjectFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)

	contents := "store_file = \"work-tasks.json\"\norder = \"date\"\nlog_level = \"debug\"\n"
	if err := os.WriteFile(filepath.Join(dir, "tareas.toml"), []byte(contents), 0644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := Load(fs, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.StoreFile != "work-tasks.json" {
		t.Errorf("StoreFile: got %q, want work-tasks.json", cfg.StoreFile)
	}
	if cfg.Order != "date" {
		t.Errorf("Order: got %q, want date", cfg.Order)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want debug", cfg.LogLevel)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.WriteFile(filepath.Join(dir, "tareas.toml"), []byte("no_such_key = true\n"), 0644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	if _, err := Load(fs, nil); err == nil {
		t.Error("Load with unknown config key: got nil error")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.WriteFile(filepath.Join(dir, "tareas.toml"), []byte("store_file = \"from-file.json\"\n"), 0644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("TAREAS_STORE", "from-env.json")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := Load(fs, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.StoreFile != "from-env.json" {
		t.Errorf("StoreFile: got %q, want from-env.json", cfg.StoreFile)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("TAREAS_ORDER", "date")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := Load(fs, []string{"-order", "priority", "-store", "cli.json"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Order != "priority" {
		t.Errorf("Order: got %q, want priority", cfg.Order)
	}
	if cfg.StoreFile != "cli.json" {
		t.Errorf("StoreFile: got %q, want cli.json", cfg.StoreFile)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "date order", mutate: func(c *Config) { c.Order = "date" }},
		{name: "bad order", mutate: func(c *Config) { c.Order = "urgency" }, wantErr: true},
		{name: "json log format", mutate: func(c *Config) { c.LogFormat = "json" }},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			setDefaults(cfg)
			tt.mutate(cfg)
			err := validate(cfg)
			if tt.wantErr && err == nil {
				t.Error("validate: got nil error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("validate: got %v", err)
			}
		})
	}
}
