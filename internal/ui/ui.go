// Package ui provides the interactive terminal interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rubenelices/tareas/internal/config"
	"github.com/rubenelices/tareas/internal/store"
)

// Run starts the interactive task view backed by the given store.
func Run(ctx context.Context, cfg *config.Config, s *store.Store) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("interactive mode requires a TTY")
	}

	model := newUIModel(cfg, s)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(*uiModel); ok && m.fatalErr != nil {
		return m.fatalErr
	}
	return nil
}

type uiModel struct {
	st       *store.Store
	order    store.Order
	tasks    []store.Task
	cursor   int
	status   string
	showHelp bool
	fatalErr error
}

func newUIModel(cfg *config.Config, s *store.Store) *uiModel {
	order := store.OrderByPriority
	if cfg.Order == "date" {
		order = store.OrderByDate
	}
	return &uiModel{st: s, order: order}
}

func (m *uiModel) Init() tea.Cmd {
	m.refresh()
	return nil
}

func (m *uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "h", "?":
		m.showHelp = !m.showHelp
	case "p":
		m.order = store.OrderByPriority
		m.refresh()
	case "d":
		m.order = store.OrderByDate
		m.refresh()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case "enter", "c":
		m.completeSelected()
	case "n":
		if next, okNext := m.st.Next(); okNext {
			m.status = "Next up: " + next.String()
		} else {
			m.status = "No tasks available."
		}
	case "r":
		if task, okSel := m.selected(); okSel {
			if m.st.IsRunnable(task.Name) {
				m.status = fmt.Sprintf("%q is runnable.", task.Name)
			} else {
				m.status = fmt.Sprintf("%q has unmet dependencies.", task.Name)
			}
		}
	}
	return m, nil
}

func (m *uiModel) selected() (store.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return store.Task{}, false
	}
	return m.tasks[m.cursor], true
}

func (m *uiModel) completeSelected() {
	task, ok := m.selected()
	if !ok {
		return
	}
	recorded, err := m.st.Complete(task.Name)
	if err != nil {
		m.fatalErr = err
		return
	}
	if recorded {
		m.status = fmt.Sprintf("Completed %q.", task.Name)
	} else {
		m.status = fmt.Sprintf("%q was already completed.", task.Name)
	}
	m.refresh()
}

func (m *uiModel) refresh() {
	tasks, err := m.st.List(m.order)
	if err != nil {
		m.fatalErr = err
		return
	}
	m.tasks = tasks
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *uiModel) View() string {
	if m.fatalErr != nil {
		return fmt.Sprintf("Error: %v\n", m.fatalErr)
	}

	var b strings.Builder
	writeTitle(&b, m.order)

	if m.showHelp {
		writeHelp(&b)
		return b.String()
	}

	if len(m.tasks) == 0 {
		b.WriteString("  No pending tasks.\n")
	}
	for i, task := range m.tasks {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		b.WriteString(marker + task.String() + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	writeFooter(&b)
	return b.String()
}

func writeTitle(b *strings.Builder, order store.Order) {
	title := fmt.Sprintf("Pending Tasks (by %s)", order)
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  q, esc       Quit\n")
	b.WriteString("  j/k, arrows  Move cursor\n")
	b.WriteString("  p            Order by priority\n")
	b.WriteString("  d            Order by due date\n")
	b.WriteString("  enter, c     Complete selected task\n")
	b.WriteString("  n            Show the next task\n")
	b.WriteString("  r            Check if the selected task is runnable\n")
	b.WriteString("  h, ?         Toggle this help screen\n")
}

func writeFooter(b *strings.Builder) {
	b.WriteString("\nPress h for help | q to quit\n")
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
