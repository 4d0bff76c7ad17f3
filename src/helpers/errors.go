package helpers

import (
	"fmt"
	"time"
)

// -----------------------------------------------------------------------------
// Custom Error Types
// -----------------------------------------------------------------------------

type StreamerError struct {
	Message string
	Cause   error
}

func (e *StreamerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *StreamerError) Unwrap() error {
	return e.Cause
}

// -----------------------------------------------------------------------------

// UpstreamError: the data source returned no data or failed. Recovered inside
// the streaming task with a fixed backoff; never fatal to the task.
type UpstreamError struct{ StreamerError }

// DeliveryError: pushing to the client connection failed. Fatal to the task
// that observed it, invisible to everything else.
type DeliveryError struct{ StreamerError }

// ValidationError: a protocol message failed validation. Surfaced to the
// originating connection, which stays open.
type ValidationError struct{ StreamerError }

// StorageError: archiving a pushed bar failed. Logged and dropped.
type StorageError struct{ StreamerError }

// -----------------------------------------------------------------------------

func NewUpstreamError(msg string, cause error) *UpstreamError {
	return &UpstreamError{StreamerError{Message: msg, Cause: cause}}
}

func NewDeliveryError(msg string, cause error) *DeliveryError {
	return &DeliveryError{StreamerError{Message: msg, Cause: cause}}
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{StreamerError{Message: msg}}
}

func NewStorageError(msg string, cause error) *StorageError {
	return &StorageError{StreamerError{Message: msg, Cause: cause}}
}

// -----------------------------------------------------------------------------
// Retry Logic
// -----------------------------------------------------------------------------

// RetryWithBackoff attempts to execute the operation up to maxRetries times with exponential backoff.
func RetryWithBackoff(operation string, maxRetries int, baseDelay time.Duration, fn func() (interface{}, error)) (interface{}, error) {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		res, err := fn()
		if err == nil {
			return res, nil
		}

		lastErr = err
		if attempt == maxRetries-1 {
			break
		}

		delay := baseDelay * (1 << attempt)
		fmt.Printf("Warning: Attempt %d/%d failed for %s: %v. Retrying in %v\n", attempt+1, maxRetries, operation, err, delay)
		time.Sleep(delay)
	}

	return nil, lastErr
}
