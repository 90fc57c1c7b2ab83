package errors

import (
	"fmt"
	"strings"
)

// ErrorType classifies extraction errors.
type ErrorType string

const (
	ErrTypeParsing           ErrorType = "PARSING"
	ErrTypeValidation        ErrorType = "VALIDATION"
	ErrTypeConfig            ErrorType = "CONFIG"
	ErrTypeStorage           ErrorType = "STORAGE"
	ErrTypeNoRequiredMetrics ErrorType = "NO_REQUIRED_METRICS"
	ErrTypeNoOutletBlocks    ErrorType = "NO_OUTLET_BLOCKS"
)

// ExtractionError is the application error type for the extraction
// pipeline. Details carries the diagnostic capture (sample labels, fuzzy
// near-matches) that accompanies structural failures so layout drift can be
// diagnosed by hand.
type ExtractionError struct {
	Type    ErrorType
	Message string
	Cause   error
	Details []string
}

// Error implements the error interface.
func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to reach the cause.
func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// Diagnostic joins the captured detail lines into a single trace string.
func (e *ExtractionError) Diagnostic() string {
	return strings.Join(e.Details, "\n")
}

// WithDetails appends diagnostic lines to the error.
func (e *ExtractionError) WithDetails(lines ...string) *ExtractionError {
	e.Details = append(e.Details, lines...)
	return e
}

// New creates a new extraction error.
func New(errType ErrorType, message string, cause error) *ExtractionError {
	return &ExtractionError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewParsingError wraps a workbook decoding failure.
func NewParsingError(message string, cause error) *ExtractionError {
	return New(ErrTypeParsing, message, cause)
}

// NewValidationError reports an invalid input file or directory.
func NewValidationError(message string) *ExtractionError {
	return New(ErrTypeValidation, message, nil)
}

// NewConfigError reports a configuration problem.
func NewConfigError(message string, cause error) *ExtractionError {
	return New(ErrTypeConfig, message, cause)
}

// NewStorageError reports a failure writing output artifacts.
func NewStorageError(message string, cause error) *ExtractionError {
	return New(ErrTypeStorage, message, cause)
}

// NewNoRequiredMetricsError reports that none of the required metric rows
// were found under Particulars. This is fatal for the raw-format path.
func NewNoRequiredMetricsError(details []string) *ExtractionError {
	return &ExtractionError{
		Type:    ErrTypeNoRequiredMetrics,
		Message: "none of the required rows were found under 'Particulars'",
		Details: details,
	}
}

// NewNoOutletBlocksError reports that no adjacent month/percent column
// pairs were detected. This is fatal for the raw-format path.
func NewNoOutletBlocksError(details []string) *ExtractionError {
	return &ExtractionError{
		Type:    ErrTypeNoOutletBlocks,
		Message: "no Month/% column pairs detected (e.g. 'June-25' followed by '%')",
		Details: details,
	}
}
