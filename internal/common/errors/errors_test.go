package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Conversion Tests
// ==========================

func TestConvertToBPMNError(t *testing.T) {
	tests := []struct {
		name            string
		err             *StandardError
		expectedCode    string
		expectedRetries int
		retryable       bool
	}{
		{
			name:            "database connection retries three times",
			err:             NewDatabaseConnectionFailedError(stderrors.New("dial tcp: refused")),
			expectedCode:    "DATABASE_CONNECTION_FAILED",
			expectedRetries: 3,
			retryable:       true,
		},
		{
			name:            "session busy retries twice",
			err:             NewSessionBusyError("s-1"),
			expectedCode:    "SESSION_BUSY",
			expectedRetries: 2,
			retryable:       true,
		},
		{
			name:            "customer not found is a business error",
			err:             NewCustomerNotFoundError("9999999999"),
			expectedCode:    "CUSTOMER_NOT_FOUND",
			expectedRetries: 0,
		},
		{
			name:            "invalid input is never retried",
			err:             NewInvalidLoanInputError("tenure: must be positive"),
			expectedCode:    "INVALID_LOAN_INPUT",
			expectedRetries: 0,
		},
		{
			name:            "unmapped code passes through",
			err:             NewInternalError(stderrors.New("boom")),
			expectedCode:    "INTERNAL_ERROR",
			expectedRetries: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bpmnErr := ConvertToBPMNError(tt.err)

			assert.Equal(t, tt.expectedCode, bpmnErr.Code)
			assert.Equal(t, tt.expectedRetries, bpmnErr.Retries)
			assert.Equal(t, tt.retryable, bpmnErr.Retryable)
			assert.Equal(t, string(tt.err.Code), bpmnErr.ErrorVariables["originalErrorCode"])
		})
	}
}

func TestConvertToBPMNError_RetryableFlagWins(t *testing.T) {
	stdErr := NewQueryExecutionFailedError("find_customer", stderrors.New("syntax"))
	stdErr.Retryable = false

	assert.Zero(t, ConvertToBPMNError(stdErr).Retries)
}

func TestEligibilityDeclined_MetadataBecomesVariable(t *testing.T) {
	bpmnErr := ConvertToBPMNError(NewEligibilityDeclinedError("credit_score"))
	vars := bpmnErr.ToErrorVariables()

	assert.Equal(t, "ELIGIBILITY_DECLINED", vars["errorCode"])
	assert.Equal(t, "credit_score", vars["reason"])
	assert.Equal(t, false, vars["retryable"])
}

// ==========================
// Utility Tests
// ==========================

func TestAsStandardError(t *testing.T) {
	original := NewSessionNotFoundError("abc")
	wrapped := fmt.Errorf("process turn: %w", original)

	assert.Same(t, original, AsStandardError(wrapped))

	plain := AsStandardError(stderrors.New("unexpected"))
	require.NotNil(t, plain)
	assert.Equal(t, ErrCodeInternal, plain.Code)
	assert.Equal(t, "unexpected", plain.Details)
}

func TestGetErrorCategory(t *testing.T) {
	tests := map[ErrorCode]string{
		ErrCodeQueryExecutionFailed:   "DATABASE",
		ErrCodeSessionBusy:            "SESSION",
		ErrCodeDocumentRejected:       "DOCUMENT",
		ErrCodeExtractionFailed:       "DOCUMENT",
		ErrCodeNotificationSendFailed: "NOTIFICATION",
		ErrCodeEligibilityDeclined:    "UNDERWRITING",
		ErrCodeEMICalculationFailed:   "UNDERWRITING",
		ErrCodeInvalidLoanInput:       "VALIDATION",
		ErrCodeInternal:               "OTHER",
	}
	for code, want := range tests {
		assert.Equal(t, want, GetErrorCategory(code), string(code))
	}
}

func TestIsRetryableErrorCode(t *testing.T) {
	assert.True(t, IsRetryableErrorCode(ErrCodeNotificationSendFailed))
	assert.True(t, IsRetryableErrorCode(ErrCodeTimeout))
	assert.False(t, IsRetryableErrorCode(ErrCodeDocumentRejected))
}
