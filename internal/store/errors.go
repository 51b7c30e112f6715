package store

import "errors"

var (
	// ErrInvalidPriority reports a negative priority passed to Add.
	ErrInvalidPriority = errors.New("priority must be a non-negative integer")

	// ErrInvalidDate reports a due date that does not parse as YYYY-MM-DD.
	ErrInvalidDate = errors.New("due date must have the format YYYY-MM-DD")

	// ErrInvalidSortKey reports an unrecognized List order.
	ErrInvalidSortKey = errors.New(`sort key must be "priority" or "date"`)

	// ErrPersistence reports a failed read or write of the store file.
	ErrPersistence = errors.New("store file persistence failure")
)
