package document

import (
	"errors"

	"loan-assistant/internal/common/validation"
)

var errNetAboveGross = errors.New("net pay exceeds gross salary")

var salarySlipSchema = []byte(`{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name", "employer", "salary", "net_pay", "date"],
	"properties": {
		"name":          {"type": "string", "minLength": 1},
		"employer":      {"type": "string", "minLength": 1},
		"salary":        {"type": "integer", "minimum": 1},
		"net_pay":       {"type": "integer", "minimum": 0},
		"date":          {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
		"employee_id":   {"type": "string"},
		"designation":   {"type": "string"},
		"bank_account":  {"type": "string"},
		"pf_deduction":  {"type": "integer", "minimum": 0},
		"tax_deduction": {"type": "integer", "minimum": 0}
	}
}`)

// ValidateRecord rejects extracted records that are missing mandatory fields
// or carry impossible values.
func ValidateRecord(slip SalarySlip) error {
	result, err := validation.Validate(salarySlipSchema, slip)
	if err != nil {
		return err
	}
	if err := result.Err(); err != nil {
		return err
	}
	if slip.NetPay > slip.Salary {
		return errNetAboveGross
	}
	return nil
}
