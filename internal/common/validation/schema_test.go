package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var amountSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"mobile", "amount"},
	"properties": map[string]interface{}{
		"mobile": map[string]interface{}{"type": "string", "pattern": `^\d{10}$`},
		"amount": map[string]interface{}{"type": "integer", "minimum": 1},
	},
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name          string
		document      interface{}
		expectedValid bool
		invalidFields []string
	}{
		{
			name:          "valid map",
			document:      map[string]interface{}{"mobile": "9876543210", "amount": 300000},
			expectedValid: true,
		},
		{
			name:          "valid raw json",
			document:      []byte(`{"mobile":"9876543210","amount":1}`),
			expectedValid: true,
		},
		{
			name:          "missing amount",
			document:      map[string]interface{}{"mobile": "9876543210"},
			invalidFields: []string{"amount"},
		},
		{
			name:          "bad mobile and zero amount",
			document:      map[string]interface{}{"mobile": "98765", "amount": 0},
			invalidFields: []string{"mobile", "amount"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate(amountSchema, tt.document)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedValid, result.Valid)
			for _, field := range tt.invalidFields {
				assert.True(t, result.HasErrors(field), "expected error for %s, got %v", field, result.GetErrorMessages())
			}
			if tt.expectedValid {
				assert.NoError(t, result.Err())
			} else {
				assert.Error(t, result.Err())
			}
		})
	}
}

func TestValidate_RequiredCode(t *testing.T) {
	result, err := Validate(amountSchema, map[string]interface{}{"amount": 5})
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "mobile", result.Errors[0].Field)
	assert.Equal(t, "REQUIRED", result.Errors[0].Code)
}

func TestValidate_BrokenSchema(t *testing.T) {
	_, err := Validate([]byte(`{"type": 12}`), map[string]interface{}{})
	assert.Error(t, err)
}

func TestValidateMobile(t *testing.T) {
	assert.True(t, ValidateMobile("9876543210"))
	assert.False(t, ValidateMobile("987654321"))
	assert.False(t, ValidateMobile("+919876543210"))
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("amit.kumar@email.com"))
	assert.False(t, ValidateEmail("amit.kumar"))
}

func TestValidateTaskType(t *testing.T) {
	assert.NoError(t, ValidateTaskType("calculate-emi"))
	assert.NoError(t, ValidateTaskType("process-conversation-turn"))
	assert.Error(t, ValidateTaskType("calculateEmi"))
	assert.Error(t, ValidateTaskType("emi"))
}
