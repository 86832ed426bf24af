// Package errors carries structured job errors from the loan workers to the
// Zeebe broker.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode is a stable, broker-visible error code.
type ErrorCode string

const (
	ErrCodeInvalidLoanInput     ErrorCode = "INVALID_LOAN_INPUT"
	ErrCodeCustomerNotFound     ErrorCode = "CUSTOMER_NOT_FOUND"
	ErrCodeEMICalculationFailed ErrorCode = "EMI_CALCULATION_FAILED"
	ErrCodeEligibilityDeclined  ErrorCode = "ELIGIBILITY_DECLINED"

	ErrCodeDocumentRejected ErrorCode = "DOCUMENT_REJECTED"
	ErrCodeExtractionFailed ErrorCode = "EXTRACTION_FAILED"

	ErrCodeSessionNotFound ErrorCode = "SESSION_NOT_FOUND"
	ErrCodeSessionBusy     ErrorCode = "SESSION_BUSY"

	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeQueryExecutionFailed     ErrorCode = "QUERY_EXECUTION_FAILED"

	ErrCodeWorkflowEngine ErrorCode = "WORKFLOW_ENGINE_ERROR"
	ErrCodeTimeout        ErrorCode = "TIMEOUT_ERROR"
	ErrCodeInternal       ErrorCode = "INTERNAL_ERROR"
)

// StandardError is a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// WithMetadata attaches a key that is forwarded as a job variable.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = map[string]interface{}{}
	}
	e.Metadata[key] = value
	return e
}

func newError(code ErrorCode, message, details string, retryable bool) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError is thrown to the workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns the variables set on the failed or thrown job.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}
	for k, v := range e.ErrorVariables {
		vars[k] = v
	}
	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

func NewInvalidLoanInputError(details string) *StandardError {
	return newError(ErrCodeInvalidLoanInput, "Invalid loan input", details, false)
}

func NewCustomerNotFoundError(mobile string) *StandardError {
	return newError(ErrCodeCustomerNotFound, "No customer registered for mobile number",
		fmt.Sprintf("mobile: %s", mobile), false)
}

func NewEMICalculationFailedError(err error) *StandardError {
	return newError(ErrCodeEMICalculationFailed, "EMI could not be calculated", err.Error(), false)
}

// NewEligibilityDeclinedError is thrown when a workflow should branch on a
// decline instead of reading the decision from variables.
func NewEligibilityDeclinedError(reason string) *StandardError {
	return newError(ErrCodeEligibilityDeclined, "Loan application declined",
		fmt.Sprintf("reason: %s", reason), false).WithMetadata("reason", reason)
}

func NewDocumentRejectedError(err error) *StandardError {
	return newError(ErrCodeDocumentRejected, "Uploaded document rejected", err.Error(), false)
}

func NewExtractionFailedError(err error) *StandardError {
	return newError(ErrCodeExtractionFailed, "Document extraction failed", err.Error(), true)
}

func NewSessionNotFoundError(sessionID string) *StandardError {
	return newError(ErrCodeSessionNotFound, "Conversation session not found",
		fmt.Sprintf("sessionId: %s", sessionID), false)
}

func NewSessionBusyError(sessionID string) *StandardError {
	return newError(ErrCodeSessionBusy, "Conversation session is locked by another turn",
		fmt.Sprintf("sessionId: %s", sessionID), true)
}

func NewNotificationSendFailedError(channel string, err error) *StandardError {
	return newError(ErrCodeNotificationSendFailed, "Failed to send notification",
		fmt.Sprintf("channel: %s, error: %s", channel, err.Error()), true)
}

func NewDatabaseConnectionFailedError(err error) *StandardError {
	return newError(ErrCodeDatabaseConnectionFailed, "Database connection error", err.Error(), true)
}

func NewQueryExecutionFailedError(query string, err error) *StandardError {
	return newError(ErrCodeQueryExecutionFailed, "Database query execution error",
		fmt.Sprintf("query: %s, error: %s", query, err.Error()), true)
}

func NewWorkflowEngineError(operation string, err error, retryable bool) *StandardError {
	return newError(ErrCodeWorkflowEngine, fmt.Sprintf("Zeebe operation '%s' failed", operation), err.Error(), retryable)
}

func NewTimeoutError(operation string, err error) *StandardError {
	return newError(ErrCodeTimeout, fmt.Sprintf("Operation '%s' timed out", operation), err.Error(), true)
}

func NewInternalError(err error) *StandardError {
	return newError(ErrCodeInternal, "Unexpected error", err.Error(), false)
}

// AsStandardError returns the StandardError in err's chain, or wraps err as an
// internal error.
func AsStandardError(err error) *StandardError {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}
	return NewInternalError(err)
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// BPMNErrorMapping maps internal codes to the error codes caught by boundary
// events in the loan process. Codes not listed are passed through.
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeInvalidLoanInput:         "INVALID_LOAN_INPUT",
	ErrCodeCustomerNotFound:         "CUSTOMER_NOT_FOUND",
	ErrCodeEMICalculationFailed:     "EMI_CALCULATION_FAILED",
	ErrCodeEligibilityDeclined:      "ELIGIBILITY_DECLINED",
	ErrCodeDocumentRejected:         "DOCUMENT_REJECTED",
	ErrCodeExtractionFailed:         "EXTRACTION_FAILED",
	ErrCodeSessionNotFound:          "SESSION_NOT_FOUND",
	ErrCodeSessionBusy:              "SESSION_BUSY",
	ErrCodeNotificationSendFailed:   "NOTIFICATION_SEND_FAILED",
	ErrCodeDatabaseConnectionFailed: "DATABASE_CONNECTION_FAILED",
	ErrCodeQueryExecutionFailed:     "QUERY_EXECUTION_FAILED",
}

// GetRetryCount returns how many times the broker should retry a code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeDatabaseConnectionFailed,
		ErrCodeQueryExecutionFailed,
		ErrCodeNotificationSendFailed,
		ErrCodeExtractionFailed:
		return 3

	case ErrCodeSessionBusy, ErrCodeTimeout, ErrCodeWorkflowEngine:
		return 2

	default:
		return 0 // business outcomes
	}
}

func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code)
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	vars := map[string]interface{}{
		"originalErrorCode": string(stdErr.Code),
		"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
	}
	for k, v := range stdErr.Metadata {
		vars[k] = v
	}

	return &BPMNError{
		Code:           bpmnCode,
		Message:        stdErr.Message,
		Details:        stdErr.Details,
		Retryable:      stdErr.Retryable,
		Retries:        retries,
		ErrorVariables: vars,
	}
}

// ==========================
// 5. Utility Functions
// ==========================

func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory groups codes for log fields and dashboards.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "DATABASE") || strings.Contains(codeStr, "QUERY"):
		return "DATABASE"
	case strings.Contains(codeStr, "SESSION"):
		return "SESSION"
	case strings.Contains(codeStr, "DOCUMENT") || strings.Contains(codeStr, "EXTRACTION"):
		return "DOCUMENT"
	case strings.Contains(codeStr, "NOTIFICATION"):
		return "NOTIFICATION"
	case strings.Contains(codeStr, "ELIGIBILITY") || strings.Contains(codeStr, "CUSTOMER") || strings.Contains(codeStr, "EMI"):
		return "UNDERWRITING"
	case strings.Contains(codeStr, "INVALID"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
