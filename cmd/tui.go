package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/rubenelices/tareas/internal/config"
	"github.com/rubenelices/tareas/internal/ui"
)

// tuiCommand launches the interactive task view.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tareas tui", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if rest := fs.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected arguments: %v", rest)
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	return ui.Run(ctx, cfg, s)
}
