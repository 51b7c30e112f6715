package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// dateLayout is the wire and display format for due dates.
const dateLayout = "2006-01-02"

// Date is a calendar date at day granularity.
type Date struct {
	t time.Time
}

// ParseDate parses a YYYY-MM-DD string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: got %q", ErrInvalidDate, s)
	}
	return Date{t: t}, nil
}

// String returns the date in YYYY-MM-DD form.
func (d Date) String() string {
	return d.t.Format(dateLayout)
}

// Before reports whether d falls on an earlier day than other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// Equal reports whether d and other fall on the same day.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// MarshalJSON encodes the date as a quoted YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a quoted YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Task represents a single task in the store.
//
// Name acts as the task's identifier in completion and dependency checks,
// but the store does not enforce uniqueness; see the package documentation.
// Dependencies keeps the names exactly as given, order and duplicates
// included.
type Task struct {
	Name         string   `json:"nombre"`
	Priority     int      `json:"prioridad"`
	Due          Date     `json:"fecha_vencimiento"`
	Dependencies []string `json:"dependencias"`
}

// String renders the task as a single line: name, priority, due date, and
// comma-joined dependency names.
func (t Task) String() string {
	if len(t.Dependencies) == 0 {
		return fmt.Sprintf("%s (priority %d, due %s)", t.Name, t.Priority, t.Due)
	}
	return fmt.Sprintf("%s (priority %d, due %s, depends on: %s)",
		t.Name, t.Priority, t.Due, strings.Join(t.Dependencies, ", "))
}
