package registry

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repoRegistryPath(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(file), "..", "..", "configs", "activities.json")
}

func TestLoadRegistry_ShippedFile(t *testing.T) {
	reg, err := LoadRegistry(repoRegistryPath(t))
	require.NoError(t, err)

	for _, taskType := range []string{
		"check-loan-eligibility",
		"calculate-emi",
		"run-credit-check",
		"process-conversation-turn",
		"notify-sanction",
	} {
		_, ok := reg.Find(taskType)
		assert.True(t, ok, taskType)
	}
}

func TestValidateInput(t *testing.T) {
	reg, err := LoadRegistry(repoRegistryPath(t))
	require.NoError(t, err)

	tests := []struct {
		name      string
		taskType  string
		variables map[string]interface{}
		wantErr   bool
	}{
		{
			name:      "valid emi input",
			taskType:  "calculate-emi",
			variables: map[string]interface{}{"principal": 300000, "tenure": 36},
		},
		{
			name:      "missing tenure",
			taskType:  "calculate-emi",
			variables: map[string]interface{}{"principal": 300000},
			wantErr:   true,
		},
		{
			name:      "tenure above maximum",
			taskType:  "calculate-emi",
			variables: map[string]interface{}{"principal": 300000, "tenure": 1000000000, "includeSchedule": true},
			wantErr:   true,
		},
		{
			name:      "principal above maximum",
			taskType:  "calculate-emi",
			variables: map[string]interface{}{"principal": int64(9e18), "tenure": 24},
			wantErr:   true,
		},
		{
			name:      "short mobile",
			taskType:  "check-loan-eligibility",
			variables: map[string]interface{}{"mobile": "98765", "amount": 100000},
			wantErr:   true,
		},
		{
			name:      "unsupported language",
			taskType:  "process-conversation-turn",
			variables: map[string]interface{}{"language": "fr"},
			wantErr:   true,
		},
		{
			name:      "unknown task type",
			taskType:  "approve-everything",
			variables: map[string]interface{}{},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := reg.ValidateInput(tt.taskType, tt.variables)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParse_Rejects(t *testing.T) {
	tests := map[string]string{
		"bad json":        `{"activities": [`,
		"bad task type":   `{"activities": [{"id": "x", "taskType": "CalculateEMI"}]}`,
		"duplicate types": `{"activities": [{"id": "a", "taskType": "calculate-emi"}, {"id": "b", "taskType": "calculate-emi"}]}`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "absent.json"))
	assert.True(t, os.IsNotExist(err))
}
