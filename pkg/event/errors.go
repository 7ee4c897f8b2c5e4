package event

import (
	"errors"
	"fmt"
)

// Common conversion error types
var (
	ErrInvalidMethod   = errors.New("invalid HTTP method")
	ErrInvalidEncoding = errors.New("invalid base64 encoding")
	ErrBodyReadFailure = errors.New("response body read failure")
	ErrInvalidStatus   = errors.New("invalid HTTP status code")
)

// ConversionError represents a failure to translate between an API Gateway
// event and the framework's request/response types. Conversions are purely
// structural: a ConversionError always indicates malformed input, never a
// transient condition.
type ConversionError struct {
	Op  string // Operation that failed (e.g., "DecodeBody", "NewRequest")
	Err error  // Underlying error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("event %s conversion failed: %v", e.Op, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError
func NewConversionError(op string, err error) *ConversionError {
	return &ConversionError{Op: op, Err: err}
}

// IsConversionError returns true if the error is a ConversionError
func IsConversionError(err error) bool {
	var convErr *ConversionError
	return errors.As(err, &convErr)
}
