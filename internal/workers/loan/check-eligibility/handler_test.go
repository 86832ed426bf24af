package checkeligibility

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-assistant/internal/common/errors"
	"loan-assistant/internal/common/logger"
	"loan-assistant/internal/customer"
	"loan-assistant/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

type failingDirectory struct{}

func (failingDirectory) FindByMobile(context.Context, string) (*models.CustomerProfile, error) {
	return nil, stderrors.New("connection refused")
}

func createTestHandler(t *testing.T, directory customer.Directory) *Handler {
	if directory == nil {
		directory = customer.NewDemoDirectory()
	}
	return NewHandler(LoadConfig(), directory, nil, logger.NewTestLogger(t))
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_Success(t *testing.T) {
	tests := []struct {
		name             string
		input            *Input
		expectedStatus   string
		expectedReason   string
		expectedCustomer string
		needsSalarySlip  bool
	}{
		{
			name:             "within pre-approved limit",
			input:            &Input{Mobile: "9876543212", Amount: 300000},
			expectedStatus:   "approved",
			expectedReason:   "instant",
			expectedCustomer: "CUST003",
		},
		{
			name:             "exactly at the limit",
			input:            &Input{Mobile: "9876543210", Amount: 400000},
			expectedStatus:   "approved",
			expectedReason:   "instant",
			expectedCustomer: "CUST001",
		},
		{
			name:             "up to twice the limit needs a salary slip",
			input:            &Input{Mobile: "9876543210", Amount: 600000},
			expectedStatus:   "conditional",
			expectedReason:   "salary_slip",
			expectedCustomer: "CUST001",
			needsSalarySlip:  true,
		},
		{
			name:             "beyond twice the limit",
			input:            &Input{Mobile: "9876543210", Amount: 800001},
			expectedStatus:   "declined",
			expectedReason:   "excess",
			expectedCustomer: "CUST001",
		},
		{
			name:             "low credit score",
			input:            &Input{Mobile: "9876543213", Amount: 50000},
			expectedStatus:   "declined",
			expectedReason:   "credit",
			expectedCustomer: "CUST004",
		},
		{
			name:             "surrounding whitespace is ignored",
			input:            &Input{Mobile: " 9876543214 ", Amount: 100000},
			expectedStatus:   "approved",
			expectedReason:   "instant",
			expectedCustomer: "CUST005",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := createTestHandler(t, nil).Execute(context.Background(), tt.input)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedStatus, output.Status)
			assert.Equal(t, tt.expectedReason, output.Reason)
			assert.Equal(t, tt.expectedCustomer, output.CustomerID)
			assert.Equal(t, tt.needsSalarySlip, output.NeedsSalarySlip)
			assert.NotEmpty(t, output.Message)
		})
	}
}

func TestHandler_Execute_ProfileFields(t *testing.T) {
	output, err := createTestHandler(t, nil).Execute(context.Background(), &Input{Mobile: "9876543214", Amount: 750000})
	require.NoError(t, err)

	assert.Equal(t, "Rajesh Gupta", output.CustomerName)
	assert.Equal(t, 800, output.CreditScore)
	assert.Equal(t, int64(125000), output.MonthlySalary)
	assert.Equal(t, int64(43000), output.TotalExistingEMI)
	assert.Equal(t, int64(750000), output.PreApprovedLimit)
}

// ==========================
// Error Handling Tests
// ==========================

func TestHandler_Execute_Errors(t *testing.T) {
	tests := []struct {
		name         string
		directory    customer.Directory
		input        *Input
		expectedCode errors.ErrorCode
	}{
		{name: "short mobile", input: &Input{Mobile: "98765", Amount: 1000}, expectedCode: errors.ErrCodeInvalidLoanInput},
		{name: "zero amount", input: &Input{Mobile: "9876543210", Amount: 0}, expectedCode: errors.ErrCodeInvalidLoanInput},
		{name: "unknown customer", input: &Input{Mobile: "9999999999", Amount: 1000}, expectedCode: errors.ErrCodeCustomerNotFound},
		{name: "directory failure", directory: failingDirectory{}, input: &Input{Mobile: "9876543210", Amount: 1000}, expectedCode: errors.ErrCodeQueryExecutionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := createTestHandler(t, tt.directory).Execute(context.Background(), tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.expectedCode, errors.AsStandardError(err).Code)
		})
	}
}
