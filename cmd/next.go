package cmd

import (
	"flag"
	"fmt"

	"github.com/rubenelices/tareas/internal/config"
)

// nextCommand shows the highest-priority pending task.
func nextCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tareas next", flag.ContinueOnError)
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

	task, ok := s.Next()
	if !ok {
		fmt.Println("No tasks available.")
		return nil
	}
	fmt.Printf("Next task: %s\n", task)
	return nil
}
