package cmd

import (
	"flag"
	"fmt"

	"github.com/rubenelices/tareas/internal/config"
)

// runnableCommand reports whether every dependency of the named task is
// completed.
func runnableCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tareas runnable", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	names := fs.Args()
	if len(names) != 1 {
		return fmt.Errorf("usage: tareas runnable NAME")
	}
	name := names[0]

	s, err := openStore(cfg)
	if err != nil {
		return err
	}

	if s.IsRunnable(name) {
		fmt.Printf("Task %q is runnable.\n", name)
		return nil
	}
	fmt.Printf("Task %q is not runnable: it is missing or has uncompleted dependencies.\n", name)
	return nil
}
