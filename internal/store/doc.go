// Package store implements the task store: a priority-ordered collection
// of tasks with due dates and named dependencies, persisted to a JSON file.
//
// The store file format (tareas.json) follows the schema defined in
// tareas.schema.json:
//
//	{
//	  "tareas": [
//	    {
//	      "nombre": "Write report",
//	      "prioridad": 5,
//	      "fecha_vencimiento": "2025-01-10",
//	      "dependencias": ["Collect data"]
//	    }
//	  ],
//	  "completadas": ["Collect data"]
//	}
//
// # Completion model
//
// Completing a task records its name in the completed set; the task entry
// itself stays in the pending collection. Read paths (List, Next) filter
// completed names out. Next is the one operation that physically discards
// completed entries, popping them off the heap top as it scans, so stale
// entries do not accumulate over repeated calls.
//
// # Ordering
//
// Pending tasks are held in a max-heap keyed on priority alone. Tasks with
// equal priority are ordered by insertion: the task added first wins. After
// a restart, insertion order is the order of entries in the store file.
//
// # Persistence
//
// Every mutation (Add, first Complete of a name) rewrites the whole file:
// 2-space indentation, trailing newline, completed names sorted. The write
// goes through a temp file and rename, so the file is replaced atomically.
// A failed write is reported as an error wrapping ErrPersistence; the
// in-memory mutation is kept.
package store
