package braciole

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrAlreadyInitialized indicates Init was called twice without a Close.
	ErrAlreadyInitialized = errors.New("framework already initialized")

	// ErrNotInitialized indicates a call that requires Init first.
	ErrNotInitialized = errors.New("framework not initialized")

	// ErrCancelled indicates the user backed out or quit rather than
	// completing a flow. Run returns it when the user dismisses the root
	// screen; treat it as normal flow control, not a failure.
	ErrCancelled = errors.New("operation cancelled by user")
)

// IsCancelled checks if an error is a user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// FrameworkError represents a failure inside braciole itself: SDL setup
// failed, a font is missing, rendering broke. Consuming applications
// usually cannot recover from these at the domain level.
type FrameworkError struct {
	Op  string // Operation that failed (e.g. "init", "run")
	Err error  // Underlying error
}

func (e *FrameworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("braciole: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("braciole: %s", e.Op)
}

func (e *FrameworkError) Unwrap() error {
	return e.Err
}

// NewFrameworkError creates a new framework error.
func NewFrameworkError(op string, err error) *FrameworkError {
	return &FrameworkError{Op: op, Err: err}
}

// IsFrameworkError checks if an error originated inside the framework.
func IsFrameworkError(err error) bool {
	var fe *FrameworkError
	return errors.As(err, &fe)
}
