package cmd

import (
	"flag"
	"fmt"

	"github.com/rubenelices/tareas/internal/config"
	"github.com/rubenelices/tareas/internal/store"
)

// checkCommand validates the store file against the embedded schema.
func checkCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tareas check", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if rest := fs.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected arguments: %v", rest)
	}

	errs, err := store.ValidateFile(cfg.StoreFile)
	if err != nil {
		return err
	}
	if len(errs) == 0 {
		fmt.Printf("%s: OK\n", cfg.StoreFile)
		return nil
	}

	for _, e := range errs {
		fmt.Printf("  %v\n", e)
	}
	return fmt.Errorf("%s: %d schema violation(s)", cfg.StoreFile, len(errs))
}
