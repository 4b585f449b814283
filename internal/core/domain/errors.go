package domain

import (
	"errors"
	"fmt"
)

// BenchError represents a benchmark error with a structured error code.
type BenchError struct {
	Code    string // Error code (e.g., "ACPB-ARG-4000")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *BenchError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *BenchError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *BenchError) Is(target error) bool {
	t, ok := target.(*BenchError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewBenchError creates a new BenchError with the given code and message.
func NewBenchError(code, message string) *BenchError {
	return &BenchError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *BenchError) WithDetails(details string) *BenchError {
	return &BenchError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *BenchError) WithCause(cause error) *BenchError {
	return &BenchError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// GetErrorCode extracts the error code from an error if it's a BenchError.
func GetErrorCode(err error) string {
	var be *BenchError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

// ============================================================================
// Argument Errors (ARG)
// ============================================================================

var (
	// ErrInvalidMode indicates the requested mode is not one of Modes().
	ErrInvalidMode = NewBenchError("ACPB-ARG-4000", "invalid mode")

	// ErrInvalidCount indicates a negative iteration count.
	ErrInvalidCount = NewBenchError("ACPB-ARG-4001", "count must not be negative")

	// ErrInvalidTokens indicates a negative token count.
	ErrInvalidTokens = NewBenchError("ACPB-ARG-4002", "tokens must not be negative")

	// ErrUnknownCodec indicates no codec is registered under the given name.
	ErrUnknownCodec = NewBenchError("ACPB-ARG-4003", "unknown codec")

	// ErrInvalidOutput indicates an unsupported output format.
	ErrInvalidOutput = NewBenchError("ACPB-ARG-4004", "invalid output format")

	// ErrInvalidLogConfig indicates an unknown log level, format or backend.
	ErrInvalidLogConfig = NewBenchError("ACPB-ARG-4005", "invalid log configuration")
)

// ============================================================================
// Codec Errors (CODEC)
// ============================================================================

var (
	// ErrCodecFailure indicates a sample failed to decode or a response
	// failed to encode. The run is aborted without a result.
	ErrCodecFailure = NewBenchError("ACPB-CODEC-5000", "codec failure")
)
