package todo

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by id-keyed operations when no task has the id.
	ErrNotFound = errors.New("task not found")

	// ErrDuplicateID is returned when a seed list reuses an id.
	ErrDuplicateID = errors.New("duplicate task id")
)

func notFound(op string, id int) error {
	return fmt.Errorf("%s task %d: %w", op, id, ErrNotFound)
}

// IsNotFound reports whether err is (or wraps) ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
