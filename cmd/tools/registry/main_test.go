package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registryPath(t *testing.T) string {
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "configs", "activities.json")
}

func TestRunCommand_Validate(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runCommand("validate", []string{"-path", registryPath(t)}, &out))
	assert.Contains(t, out.String(), "is valid (5 activities)")
}

func TestRunCommand_List(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runCommand("list", []string{"-path", registryPath(t)}, &out))
	assert.Contains(t, out.String(), "calculate-emi")
	assert.Contains(t, out.String(), "notify-sanction")
}

func TestRunCommand_CheckInput(t *testing.T) {
	path := registryPath(t)

	var out bytes.Buffer
	err := runCommand("check-input", []string{"-path", path, "-task", "calculate-emi", "-vars", `{"principal":300000,"tenure":36}`}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Variables are valid for calculate-emi")

	vars := filepath.Join(t.TempDir(), "vars.json")
	require.NoError(t, os.WriteFile(vars, []byte(`{"tenure":36}`), 0o600))
	err = runCommand("check-input", []string{"-path", path, "-task", "calculate-emi", "-vars", "@" + vars}, &out)
	assert.Error(t, err)
}

func TestRunCommand_Unknown(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, runCommand("add", nil, &out))
	assert.Contains(t, out.String(), "Usage: registry")
}
