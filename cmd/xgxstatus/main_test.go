package main

import (
	"bytes"
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestConditions_Table(t *testing.T) {
	out, _, err := run(t, "conditions", "posix")
	require.NoError(t, err)
	assert.Contains(t, out, "EAGAIN")
	assert.Contains(t, out, "Resource unavailable, try again.")
	assert.Contains(t, out, "EXDEV")
}

func TestConditions_JSON(t *testing.T) {
	out, _, err := run(t, "conditions", "win32", "--json")
	require.NoError(t, err)

	var views []conditionView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.NotEmpty(t, views)
	assert.Equal(t, "ERROR_INVALID_FUNCTION", views[0].Name)
	assert.Equal(t, 0, views[0].ID)
	assert.Zero(t, views[0].Errno)
}

func TestConditions_UnknownDomain(t *testing.T) {
	_, _, err := run(t, "conditions", "vms")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown domain")
}

func TestLookup(t *testing.T) {
	out, _, err := run(t, "lookup", "posix", "eagain")
	require.NoError(t, err)
	assert.Contains(t, out, "condition: EAGAIN")
	assert.Contains(t, out, "message:   Resource unavailable, try again.")
	assert.Contains(t, out, "grpc:      Unavailable")
}

func TestLookup_Missing(t *testing.T) {
	_, _, err := run(t, "lookup", "win32", "ERROR_NOPE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no condition")
}

func TestErrno(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("errno numbering checked on linux only")
	}
	out, logs, err := run(t, "--log-level", "info", "errno", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "condition=ENOENT")
	assert.Contains(t, out, "platform_error: 2")
	assert.Contains(t, out, "grpc: NotFound")
	assert.Contains(t, logs, "raised")
}

func TestErrno_Invalid(t *testing.T) {
	_, _, err := run(t, "errno", "abc")
	require.Error(t, err)

	_, _, err = run(t, "errno", "0")
	require.Error(t, err)
}

func TestLogLevel_Invalid(t *testing.T) {
	_, _, err := run(t, "--log-level", "loud", "conditions", "posix")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --log-level")
}
