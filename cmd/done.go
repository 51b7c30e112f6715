package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/rubenelices/tareas/internal/config"
)

// doneCommand marks one or more tasks as completed.
func doneCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("tareas done", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	names := fs.Args()
	if len(names) == 0 {
		return fmt.Errorf("usage: tareas done NAME...")
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}

	for _, name := range names {
		recorded, err := s.Complete(name)
		if err != nil {
			return err
		}
		if !recorded {
			logger.Info("task was already completed", "name", name)
			continue
		}
		logger.Info("task completed", "name", name)
	}
	return nil
}
