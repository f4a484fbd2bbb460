package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/bunkwise/internal/attendance"
	"github.com/abhisek/bunkwise/internal/report"
)

func runCalcCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("BUNKWISE_CONFIG", "")
	return executeCalc(t, args...)
}

// runCalcCmdWithConfig runs calc against a config file holding data.
func runCalcCmdWithConfig(t *testing.T, data string, args ...string) (string, string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	t.Setenv("BUNKWISE_CONFIG", path)
	return executeCalc(t, args...)
}

func executeCalc(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("BUNKWISE_MAX_TOTAL", "")

	c := newCalcCmd()
	var stdout, stderr bytes.Buffer
	c.SetOut(&stdout)
	c.SetErr(&stderr)
	c.SetArgs(args)
	err := c.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCalcText(t *testing.T) {
	out, errOut, err := runCalcCmd(t, "--attended", "48", "--remaining", "2", "--required", "75")
	require.NoError(t, err)

	assert.Contains(t, out, "You're doing great!")
	assert.Contains(t, out, "Current attendance: 96.0% (required 75%)")
	assert.Contains(t, out, "Can bunk: 2")
	assert.Empty(t, errOut)
}

func TestCalcDefaultsRequiredFromConfig(t *testing.T) {
	out, _, err := runCalcCmd(t, "--attended", "75", "--remaining", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "required 75%")
}

func TestCalcKeepsConfiguredRequiredPrecision(t *testing.T) {
	out, _, err := runCalcCmdWithConfig(t, "defaults:\n  required_percentage: 33.333\n",
		"--attended", "1", "--remaining", "2", "--format", "json")
	require.NoError(t, err)

	var r report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 33.333, r.Inputs.RequiredPercentage)
	assert.Equal(t, attendance.StatusGood, r.Result.Status)
}

func TestCalcNoticesGoToStderr(t *testing.T) {
	out, errOut, err := runCalcCmd(t, "--total", "100", "--attended", "120", "--remaining", "0")
	require.NoError(t, err)

	assert.Contains(t, errOut, "Attended Lectures adjusted from 120 to 100")
	assert.NotContains(t, out, "adjusted")
	assert.Contains(t, out, "Lectures: 100 attended, 0 remaining, 100 total")
}

func TestCalcJSONIncludesNotices(t *testing.T) {
	out, errOut, err := runCalcCmd(t,
		"--total", "40", "--attended", "25", "--remaining", "10", "--required", "75", "--format", "json")
	require.NoError(t, err)
	assert.Empty(t, errOut)

	var r report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 35, r.Inputs.TotalLectures)
	assert.Equal(t, 2, r.Result.LecturesStillNeeded)
	require.Len(t, r.Notices, 1)
	assert.Equal(t, attendance.FieldTotal, r.Notices[0].Field)
}

func TestCalcInvalidNumber(t *testing.T) {
	_, _, err := runCalcCmd(t, "--attended", "abc", "--remaining", "10")
	require.Error(t, err)

	var inv *attendance.InvalidInputError
	require.True(t, errors.As(err, &inv))
	assert.Equal(t, attendance.FieldAttended, inv.Field)
}

func TestCalcInvalidFormat(t *testing.T) {
	_, _, err := runCalcCmd(t, "--attended", "1", "--remaining", "1", "--format", "xml")
	assert.ErrorContains(t, err, "invalid format")
}

func TestCalcMissingRequiredFlag(t *testing.T) {
	_, _, err := runCalcCmd(t, "--attended", "1")
	assert.Error(t, err)
}
