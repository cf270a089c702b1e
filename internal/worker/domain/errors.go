package domain

import "errors"

var (
	// ErrInvalidEvent is returned when an event message is malformed
	ErrInvalidEvent = errors.New("invalid audit event")

	// ErrDuplicateEvent is returned when an event with the same ID was
	// already recorded. Redeliveries land here; they are not failures.
	ErrDuplicateEvent = errors.New("audit event already recorded")
)

// RetryableError wraps transient errors that should trigger a requeue
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return "retryable error: " + e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// NewRetryableError creates a new retryable error
func NewRetryableError(err error) error {
	return &RetryableError{Err: err}
}
