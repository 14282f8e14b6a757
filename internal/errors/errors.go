package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/reptrack/reptrack/internal/logger"
)

// ErrNotFound is returned when an operation expects an existing row that is
// absent. Stores translate their driver's no-rows sentinel into this error so
// callers can distinguish "no data" from "load failed".
var ErrNotFound = errors.New("record not found")

// ValidationError reports malformed input rejected before it reaches the
// store (negative targets, unparseable dates, future-dated completion logs).
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// NewValidation creates a ValidationError for the given field.
func NewValidation(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StorageError wraps an I/O failure from the underlying persistence engine.
// It is propagated unchanged to the caller; this layer never retries.
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

// Storage wraps err as a StorageError for the named operation. ErrNotFound
// passes through untouched so absence never masquerades as an I/O failure.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

// IsNotFound reports whether err is (or wraps) ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Is, As and New re-export the stdlib helpers so callers only import this package.
var (
	Is  = errors.Is
	As  = errors.As
	New = errors.New
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
