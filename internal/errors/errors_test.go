package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractionErrorMessage(t *testing.T) {
	err := New(ErrTypeValidation, "not an Excel file", nil)
	assert.Equal(t, "[VALIDATION] not an Excel file", err.Error())
}

func TestExtractionErrorWrapsCause(t *testing.T) {
	cause := stderrors.New("zip: not a valid zip file")
	err := NewParsingError("failed to decode workbook", cause)

	assert.Equal(t, "[PARSING] failed to decode workbook: zip: not a valid zip file", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestExtractionErrorAs(t *testing.T) {
	var wrapped error = NewNoRequiredMetricsError([]string{"available Particulars values"})

	var xerr *ExtractionError
	require.ErrorAs(t, wrapped, &xerr)
	assert.Equal(t, ErrTypeNoRequiredMetrics, xerr.Type)
	assert.Contains(t, xerr.Error(), "none of the required rows were found under 'Particulars'")
}

func TestDiagnosticJoinsDetails(t *testing.T) {
	err := NewNoOutletBlocksError([]string{"line one", "line two"})
	assert.Equal(t, "line one\nline two", err.Diagnostic())

	assert.Empty(t, NewValidationError("x").Diagnostic())
}

func TestWithDetailsAppends(t *testing.T) {
	err := NewStorageError("write failed", nil).WithDetails("path: out.csv")
	err.WithDetails("disk full")

	assert.Equal(t, []string{"path: out.csv", "disk full"}, err.Details)
}
