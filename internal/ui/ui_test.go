package ui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rubenelices/tareas/internal/config"
	"github.com/rubenelices/tareas/internal/store"
)

func newTestModel(t *testing.T) *uiModel {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "tareas.json"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := s.Add("high", 9, "2025-03-01", nil); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := s.Add("soon", 1, "2025-01-01", nil); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	m := newUIModel(&config.Config{Order: "priority"}, s)
	m.Init()
	return m
}

func press(m *uiModel, key string) {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg(tea.Key{Type: tea.KeyEnter})
	default:
		msg = tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(key)})
	}
	m.Update(msg)
}

func TestViewListsTasksInOrder(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	highIdx := strings.Index(view, "high")
	soonIdx := strings.Index(view, "soon")
	if highIdx < 0 || soonIdx < 0 {
		t.Fatalf("view missing tasks:\n%s", view)
	}
	if highIdx > soonIdx {
		t.Errorf("priority order: %q should come before %q:\n%s", "high", "soon", view)
	}

	press(m, "d")
	view = m.View()
	if !strings.Contains(view, "by date") {
		t.Errorf("view not in date order after pressing d:\n%s", view)
	}
	if strings.Index(view, "soon") > strings.Index(view, "high") {
		t.Errorf("date order: %q should come before %q:\n%s", "soon", "high", view)
	}
}

func TestCompleteSelectedRemovesTask(t *testing.T) {
	m := newTestModel(t)

	// Cursor starts on the highest-priority task.
	press(m, "enter")

	view := m.View()
	if strings.Contains(view, "high (") {
		t.Errorf("completed task still listed:\n%s", view)
	}
	if !strings.Contains(view, "Completed") {
		t.Errorf("missing completion status line:\n%s", view)
	}

	// Completing the last remaining task leaves an empty list.
	press(m, "enter")
	if !strings.Contains(m.View(), "No pending tasks") {
		t.Errorf("expected empty list:\n%s", m.View())
	}
}

func TestNextKeyShowsNextTask(t *testing.T) {
	m := newTestModel(t)
	press(m, "n")
	if !strings.Contains(m.View(), "Next up: high") {
		t.Errorf("missing next-task status:\n%s", m.View())
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)
	press(m, "?")
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Errorf("help screen not shown:\n%s", m.View())
	}
	press(m, "?")
	if strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Errorf("help screen still shown after toggle:\n%s", m.View())
	}
}
