package services

import (
	"errors"
	"fmt"
)

// Business error kinds. InvalidInput, ValidationError, ErrNotFound and
// ErrNotAuthorized are terminal for a given request; only StorageError is
// worth a caller-side retry.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrNotAuthorized = errors.New("not authorized")
)

// ValidationError reports the first offending element of a composite input,
// such as a set list. SetIndex is zero-based.
type ValidationError struct {
	SetIndex int
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.SetIndex >= 0 {
		return fmt.Sprintf("set %d: %s", e.SetIndex+1, e.Reason)
	}
	return e.Reason
}

// StorageError wraps a persistence failure. It is always retryable.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func invalidInput(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidInput)...)
}

func storage(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// IsStorage reports whether err originated at the persistence boundary.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
