package cmd

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/rubenelices/tareas/internal/config"
	"github.com/rubenelices/tareas/internal/store"
)

// addCommand adds a new task to the store.
func addCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("tareas add", flag.ContinueOnError)
	name := fs.String("name", "", "Task name")
	priorityStr := fs.String("priority", "", "Task priority (non-negative integer, higher is more urgent)")
	due := fs.String("due", "", "Due date (YYYY-MM-DD)")
	depsStr := fs.String("deps", "", "Comma-separated dependency task names")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if rest := fs.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected arguments: %v", rest)
	}
	if *name == "" {
		return fmt.Errorf("missing required flag: -name")
	}

	priority, err := strconv.Atoi(strings.TrimSpace(*priorityStr))
	if err != nil {
		return fmt.Errorf("%w: got %q", store.ErrInvalidPriority, *priorityStr)
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	if s.HasPending(*name) {
		logger.Warn("a pending task with this name already exists", "name", *name)
	}

	task, err := s.Add(*name, priority, *due, splitAndTrim(*depsStr, ","))
	if err != nil {
		return err
	}

	logger.Info("task added",
		"name", task.Name,
		"priority", task.Priority,
		"due", task.Due.String(),
		"deps", len(task.Dependencies),
	)
	return nil
}
