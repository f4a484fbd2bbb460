package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 500, cfg.AttendanceLimits().MaxTotalLectures)
	assert.Equal(t, 300*time.Millisecond, cfg.UI.Debounce)
	assert.Equal(t, 500*time.Millisecond, cfg.UI.Delay)
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
defaults:
  attended_lectures: 30
  remaining_lectures: 10
limits:
  max_total_lectures: 200
ui:
  delay: 0s
log:
  level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Defaults.AttendedLectures)
	assert.Equal(t, 10, cfg.Defaults.RemainingLectures)
	assert.Equal(t, 100, cfg.Defaults.TotalLectures, "unset keys keep defaults")
	assert.Equal(t, 75.0, cfg.Defaults.RequiredPercentage)
	assert.Equal(t, 200, cfg.Limits.MaxTotalLectures)
	assert.Equal(t, time.Duration(0), cfg.UI.Delay)
	assert.Equal(t, 300*time.Millisecond, cfg.UI.Debounce)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse([]byte("  \n"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown top-level key", "courses: []\n"},
		{"unknown nested key", "limits:\n  max_lectures: 10\n"},
		{"non-integer limit", "limits:\n  max_total_lectures: many\n"},
		{"zero limit", "limits:\n  max_total_lectures: 0\n"},
		{"bad duration", "ui:\n  debounce: soon\n"},
		{"numeric duration", "ui:\n  delay: 500\n"},
		{"bad level", "log:\n  level: verbose\n"},
		{"fractional count", "defaults:\n  total_lectures: 10.5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "schema validation failed")
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("defaults: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvMaxTotal: "300",
		EnvDelay:    "1s",
		EnvLogFile:  "/tmp/bunkwise.log",
		EnvLogLevel: "WARN",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, ApplyEnv(&cfg, lookup))
	assert.Equal(t, 300, cfg.Limits.MaxTotalLectures)
	assert.Equal(t, time.Second, cfg.UI.Delay)
	assert.Equal(t, "/tmp/bunkwise.log", cfg.Log.File)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestApplyEnvErrors(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{EnvMaxTotal, "12abc"},
		{EnvDelay, "forever"},
	}

	for _, tt := range tests {
		cfg := Default()
		err := ApplyEnv(&cfg, func(k string) (string, bool) {
			if k == tt.key {
				return tt.value, true
			}
			return "", false
		})
		assert.Error(t, err, tt.key)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Limits.MaxTotalLectures = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.UI.Delay = -time.Second
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Log.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestResolveMissingDefaultFile(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvMaxTotal, "")
	t.Setenv(EnvDelay, "")
	t.Setenv(EnvLogLevel, "")

	cfg, path, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, Default().Defaults, cfg.Defaults)
	assert.Equal(t, "config.yaml", filepath.Base(path))
}

func TestResolveExplicitMissingFile(t *testing.T) {
	_, _, err := Resolve(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolveFromFile(t *testing.T) {
	t.Setenv(EnvMaxTotal, "")
	t.Setenv(EnvDelay, "")
	t.Setenv(EnvLogLevel, "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  required_percentage: 80\n"), 0o644))

	cfg, got, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.Equal(t, 80.0, cfg.Defaults.RequiredPercentage)
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))
	ui := doc["ui"].(map[string]any)
	assert.Equal(t, "300ms", ui["debounce"])

	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
