// Package cmd implements the CLI command structure for tareas.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rubenelices/tareas/internal/config"
	"github.com/rubenelices/tareas/internal/logging"
	"github.com/rubenelices/tareas/internal/store"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the tareas CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tareas", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	logger := logging.New(os.Stderr, logging.FromConfig(cfg))

	// Determine the subcommand; listing is the default action.
	subcommand := "list"
	remaining := fs.Args()
	if len(remaining) > 0 && !strings.HasPrefix(remaining[0], "-") {
		subcommand = remaining[0]
		remaining = remaining[1:]
	}

	switch subcommand {
	case "add":
		return addCommand(cfg, logger, remaining)
	case "list":
		return listCommand(cfg, remaining)
	case "done":
		return doneCommand(cfg, logger, remaining)
	case "next":
		return nextCommand(cfg, remaining)
	case "runnable":
		return runnableCommand(cfg, remaining)
	case "check":
		return checkCommand(cfg, remaining)
	case "tui":
		return tuiCommand(ctx, cfg, remaining)
	case "version", "--version", "-v":
		return versionCommand()
	case "help", "--help", "-h":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// openStore constructs the store from the configured file path.
func openStore(cfg *config.Config) (*store.Store, error) {
	s, err := store.Open(cfg.StoreFile)
	if err != nil {
		return nil, fmt.Errorf("opening task store: %w", err)
	}
	return s, nil
}

// splitAndTrim splits s on sep, trims whitespace, and drops empty parts.
func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func versionCommand() error {
	fmt.Printf("tareas %s\n", Version)
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `tareas - personal task tracker

Usage:
  tareas [global flags] <command> [command flags]

Commands:
  add       Add a new task (-name, -priority, -due, -deps)
  list      List pending tasks (-by priority|date)
  done      Mark one or more tasks as completed
  next      Show the highest-priority pending task
  runnable  Check whether a task's dependencies are all completed
  check     Validate the store file against its schema
  tui       Open the interactive task view
  version   Show version
  help      Show this help

Global flags:
`)
	fs.SetOutput(w)
	fs.PrintDefaults()
}
