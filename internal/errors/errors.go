// Package errors defines the application's error taxonomy and the helpers the
// CLI uses to present failures consistently.
package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/learntrack/learntrack/internal/logger"
)

// ValidationError reports caller-supplied input that violates a precondition
// (empty title, non-positive duration, empty entry text). The attempted
// mutation is never applied.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// NotFoundError reports a challenge id with no matching record, usually a
// stale reference to a deleted challenge.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("challenge not found: %s", e.ID) }

// NotFound builds a NotFoundError for the given challenge id.
func NotFound(id string) error { return &NotFoundError{ID: id} }

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// PersistenceError wraps a storage read/write failure. It is recovered
// locally: logged, treated as "no data" on load, skipped on save. It never
// blocks a store mutation.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Persistence wraps err as a PersistenceError for the given operation.
func Persistence(op string, err error) error { return &PersistenceError{Op: op, Err: err} }

// IsPersistence reports whether err is a PersistenceError.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}

// ImportFormatError reports an imported file that is not valid snapshot data.
// It is propagated to the import caller; the in-memory collection stays
// unchanged.
type ImportFormatError struct {
	Err error
}

func (e *ImportFormatError) Error() string { return fmt.Sprintf("invalid import data: %v", e.Err) }

func (e *ImportFormatError) Unwrap() error { return e.Err }

// ImportFormat wraps err as an ImportFormatError.
func ImportFormat(err error) error { return &ImportFormatError{Err: err} }

// IsImportFormat reports whether err is an ImportFormatError.
func IsImportFormat(err error) bool {
	var ie *ImportFormatError
	return errors.As(err, &ie)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
