// Package registry loads the activity registry and validates job variables
// against each activity's input schema.
package registry

import (
	"encoding/json"
	"fmt"
	"os"

	"loan-assistant/internal/common/validation"
)

func LoadRegistry(path string) (*ActivityRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a registry document and checks every entry.
func Parse(data []byte) (*ActivityRegistry, error) {
	var reg ActivityRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("decode registry: %w", err)
	}
	if err := reg.Check(); err != nil {
		return nil, err
	}
	return &reg, nil
}

// Check rejects malformed task types and duplicate entries.
func (r *ActivityRegistry) Check() error {
	seen := make(map[string]bool, len(r.Activities))
	for _, a := range r.Activities {
		if err := validation.ValidateTaskType(a.TaskType); err != nil {
			return fmt.Errorf("activity %q: %w", a.ID, err)
		}
		if seen[a.TaskType] {
			return fmt.Errorf("activity %q: duplicate task type %s", a.ID, a.TaskType)
		}
		seen[a.TaskType] = true
	}
	return nil
}

func (r *ActivityRegistry) Find(taskType string) (*Activity, bool) {
	for i := range r.Activities {
		if r.Activities[i].TaskType == taskType {
			return &r.Activities[i], true
		}
	}
	return nil, false
}

// ValidateInput checks job variables against the activity's input schema.
// Activities without a schema accept any input.
func (r *ActivityRegistry) ValidateInput(taskType string, variables interface{}) error {
	activity, ok := r.Find(taskType)
	if !ok {
		return fmt.Errorf("unknown task type %s", taskType)
	}
	if len(activity.InputSchema) == 0 {
		return nil
	}

	result, err := validation.Validate(activity.InputSchema, variables)
	if err != nil {
		return err
	}
	return result.Err()
}
