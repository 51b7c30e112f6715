package store

import (
	"container/heap"
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Order selects the sort key for List.
type Order string

const (
	// OrderByPriority lists tasks by descending priority.
	OrderByPriority Order = "priority"
	// OrderByDate lists tasks by ascending due date.
	OrderByDate Order = "date"
)

// Store holds pending tasks in a max-priority heap plus the set of
// completed task names, and mirrors both to a JSON file after every
// mutation. It is not safe for concurrent use; the tool is single-user
// and single-process.
type Store struct {
	path      string
	pending   taskHeap
	completed map[string]struct{}
	seq       uint64
}

// Open constructs a store backed by the file at path. A missing file
// yields an empty store; any other read, schema, or parse failure is a
// construction error.
func Open(path string) (*Store, error) {
	s := &Store{
		path:      path,
		completed: make(map[string]struct{}),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrPersistence, path, err)
	}

	if errs := ValidateBytes(data); len(errs) > 0 {
		return nil, fmt.Errorf("store file %s: %w", path, errs[0])
	}

	var f fileData
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse store file %s: %w", path, err)
	}

	for _, t := range f.Tasks {
		s.push(t)
	}
	for _, name := range f.Completed {
		s.completed[name] = struct{}{}
	}
	return s, nil
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) push(t Task) {
	heap.Push(&s.pending, &entry{task: t, seq: s.seq})
	s.seq++
}

func (s *Store) isCompleted(name string) bool {
	_, done := s.completed[name]
	return done
}

// Add validates and inserts a new task, then persists the store. A nil
// dependency list is treated as empty. The returned task is the stored
// value; on a persist failure it has already been inserted in memory and
// the error wraps ErrPersistence.
func (s *Store) Add(name string, priority int, dueDate string, dependencies []string) (Task, error) {
	if priority < 0 {
		return Task{}, fmt.Errorf("%w: got %d", ErrInvalidPriority, priority)
	}
	due, err := ParseDate(dueDate)
	if err != nil {
		return Task{}, err
	}
	if dependencies == nil {
		dependencies = []string{}
	}

	t := Task{
		Name:         name,
		Priority:     priority,
		Due:          due,
		Dependencies: dependencies,
	}
	s.push(t)
	if err := s.persist(); err != nil {
		return t, err
	}
	return t, nil
}

// List returns the pending tasks (completed names filtered out) sorted by
// the given order. Priority order is descending with insertion as the
// tie-break; date order is ascending with priority, then insertion, as
// tie-breaks. List never mutates the store.
func (s *Store) List(by Order) ([]Task, error) {
	switch by {
	case OrderByPriority, OrderByDate:
	default:
		return nil, fmt.Errorf("%w: got %q", ErrInvalidSortKey, by)
	}

	entries := make([]*entry, 0, len(s.pending))
	for _, e := range s.pending {
		if !s.isCompleted(e.task.Name) {
			entries = append(entries, e)
		}
	}

	switch by {
	case OrderByPriority:
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].task.Priority != entries[j].task.Priority {
				return entries[i].task.Priority > entries[j].task.Priority
			}
			return entries[i].seq < entries[j].seq
		})
	case OrderByDate:
		sort.Slice(entries, func(i, j int) bool {
			if !entries[i].task.Due.Equal(entries[j].task.Due) {
				return entries[i].task.Due.Before(entries[j].task.Due)
			}
			if entries[i].task.Priority != entries[j].task.Priority {
				return entries[i].task.Priority > entries[j].task.Priority
			}
			return entries[i].seq < entries[j].seq
		})
	}

	tasks := make([]Task, len(entries))
	for i, e := range entries {
		tasks[i] = e.task
	}
	return tasks, nil
}

// Complete records name as done and persists. It reports false when the
// name was already completed, in which case nothing changes. Names with no
// matching task are accepted and recorded all the same.
func (s *Store) Complete(name string) (bool, error) {
	if s.isCompleted(name) {
		return false, nil
	}
	s.completed[name] = struct{}{}
	if err := s.persist(); err != nil {
		return true, err
	}
	return true, nil
}

// Next returns the highest-priority task whose name is not completed,
// without removing it. Completed entries found at the heap top are
// discarded for good; this is the only path that physically prunes the
// pending collection. The second result is false when no task remains.
func (s *Store) Next() (Task, bool) {
	for len(s.pending) > 0 {
		top := s.pending[0]
		if !s.isCompleted(top.task.Name) {
			return top.task, true
		}
		heap.Pop(&s.pending)
	}
	return Task{}, false
}

// IsRunnable reports whether every dependency of the named task is
// completed. It returns false when no entry with that name exists. The
// lookup scans all stored entries, including ones whose own name is
// already completed, and uses the first match when names are duplicated.
func (s *Store) IsRunnable(name string) bool {
	for _, e := range s.pending {
		if e.task.Name != name {
			continue
		}
		for _, dep := range e.task.Dependencies {
			if !s.isCompleted(dep) {
				return false
			}
		}
		return true
	}
	return false
}

// HasPending reports whether a not-yet-completed task with the given name
// is stored.
func (s *Store) HasPending(name string) bool {
	if s.isCompleted(name) {
		return false
	}
	for _, e := range s.pending {
		if e.task.Name == name {
			return true
		}
	}
	return false
}

// persist rewrites the store file from the current in-memory state. Every
// stored entry is written, completed or not, plus the sorted completed
// set.
func (s *Store) persist() error {
	f := fileData{
		Tasks:     make([]Task, 0, len(s.pending)),
		Completed: make([]string, 0, len(s.completed)),
	}
	for _, e := range s.pending {
		f.Tasks = append(f.Tasks, e.task)
	}
	for name := range s.completed {
		f.Completed = append(f.Completed, name)
	}
	sort.Strings(f.Completed)

	if err := f.write(s.path); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
