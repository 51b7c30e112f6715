package cmd

import (
	"flag"
	"fmt"

	"github.com/rubenelices/tareas/internal/config"
	"github.com/rubenelices/tareas/internal/store"
)

// listCommand prints the pending tasks in the requested order.
func listCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tareas list", flag.ContinueOnError)
	by := fs.String("by", cfg.Order, "Sort key (priority|date)")

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

	tasks, err := s.List(store.Order(*by))
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No pending tasks.")
		return nil
	}
	fmt.Printf("Pending tasks by %s:\n", *by)
	for _, task := range tasks {
		fmt.Printf("- %s\n", task)
	}
	return nil
}
