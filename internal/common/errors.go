package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Pipeline error taxonomy. The server edge maps these onto HTTP status codes;
// the trawler maps stage failures onto the job record.
var (
	ErrNotFound = errors.New("resource not found")

	// ErrValidation marks bad or missing caller input. No side effects occurred.
	ErrValidation = errors.New("validation failed")

	// ErrSafetyRejected marks a URL blocked by the safety validator.
	// No network access was performed.
	ErrSafetyRejected = errors.New("url rejected by safety validator")

	// ErrFetch marks a network, timeout, size or content-type failure while
	// retrieving menu content.
	ErrFetch = errors.New("fetch failed")

	// ErrExtraction marks the extraction capability being unavailable or
	// returning unusable output.
	ErrExtraction = errors.New("extraction failed")

	// ErrConflict marks a per-item storage constraint violation. Recovered
	// locally; the ingestion pass continues.
	ErrConflict = errors.New("constraint violation")

	// ErrDatabase marks lost storage connectivity. Aborts the whole pass.
	ErrDatabase = errors.New("database error")

	// ErrJobTerminal is returned when a terminal job is asked to transition again.
	ErrJobTerminal = errors.New("job already in terminal state")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
