package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Validate checks document against a JSON schema. Both may be Go values
// (maps, structs) or raw JSON given as []byte. An error is returned only when
// the schema itself cannot be loaded.
func Validate(schema, document interface{}) (*ValidationResult, error) {
	result, err := gojsonschema.Validate(loaderFor(schema), loaderFor(document))
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, desc := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   fieldOf(desc),
			Message: desc.Description(),
			Code:    strings.ToUpper(desc.Type()),
		})
	}
	return out, nil
}

func loaderFor(v interface{}) gojsonschema.JSONLoader {
	switch raw := v.(type) {
	case []byte:
		return gojsonschema.NewBytesLoader(raw)
	case string:
		return gojsonschema.NewStringLoader(raw)
	default:
		return gojsonschema.NewGoLoader(v)
	}
}

// fieldOf names the offending property; for missing required properties
// gojsonschema reports the parent, so the property name is appended.
func fieldOf(desc gojsonschema.ResultError) string {
	field := desc.Field()
	if desc.Type() != "required" {
		return field
	}
	prop, ok := desc.Details()["property"].(string)
	if !ok {
		return field
	}
	if field == "(root)" {
		return prop
	}
	return field + "." + prop
}

// Err returns nil for a valid result, otherwise an error listing every
// violation.
func (vr *ValidationResult) Err() error {
	if vr.Valid {
		return nil
	}
	return fmt.Errorf("data validation failed: %v", vr.GetErrorMessages())
}

// GetErrorMessages returns a simple list of error messages
func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

// HasErrors checks if validation has errors for specific field
func (vr *ValidationResult) HasErrors(field string) bool {
	return len(vr.GetErrorsForField(field)) > 0
}

// GetErrorsForField returns errors for a field and its nested properties
func (vr *ValidationResult) GetErrorsForField(field string) []ValidationError {
	var fieldErrors []ValidationError
	for _, err := range vr.Errors {
		if err.Field == field || strings.HasPrefix(err.Field, field+".") {
			fieldErrors = append(fieldErrors, err)
		}
	}
	return fieldErrors
}

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	mobilePattern   = regexp.MustCompile(`^\d{10}$`)
	taskTypePattern = regexp.MustCompile(`^[a-z]+(-[a-z]+)+$`)
)

// ValidateEmail validates email format
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateMobile accepts exactly ten digits with no country code.
func ValidateMobile(mobile string) bool {
	return mobilePattern.MatchString(mobile)
}

// ValidateTaskType enforces kebab-case task types such as calculate-emi.
func ValidateTaskType(taskType string) error {
	if !taskTypePattern.MatchString(taskType) {
		return fmt.Errorf("task type must be kebab-case (e.g. calculate-emi): %q", taskType)
	}
	return nil
}
