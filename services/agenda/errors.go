package agenda

import "fmt"

// Validation error codes.
const (
	CodeInvalidInput = "invalidInput"
	CodePastDate     = "pastDate"
	CodePastTime     = "pastTime"
	CodeOutOfHours   = "outOfHours"
)

// ValidationError means the request itself is logically invalid. These are
// expected outcomes, reported to the caller as a structured rejection.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(code, msg string) error {
	return &ValidationError{Code: code, Message: msg}
}

// ConflictError means the request was valid but the slot is already taken.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slotTaken: %s", e.Message)
}

// RetrievalError wraps a failure reading from the calendar backend.
type RetrievalError struct {
	Err error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("calendar retrieval failed: %v", e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// WriteError wraps a failure writing the event to the calendar backend.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("calendar write failed: %v", e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
