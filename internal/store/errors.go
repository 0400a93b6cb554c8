package store

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateDescription = errors.New("task with this description already exists")
	ErrTaskNotFound         = errors.New("task not found")
	ErrEmptyDescription     = errors.New("task description is required")
	ErrCorruptStore         = errors.New("task store is corrupt")
)

// IOError reports a filesystem failure while reading or writing the store.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func ioErr(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}

func corrupt(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrCorruptStore, path, err)
}

func notFound(id int) error {
	return fmt.Errorf("task %d: %w", id, ErrTaskNotFound)
}
