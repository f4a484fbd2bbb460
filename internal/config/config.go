package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/bunkwise/internal/attendance"
)

// Environment variables consulted by Resolve.
const (
	EnvConfigPath = "BUNKWISE_CONFIG"
	EnvMaxTotal   = "BUNKWISE_MAX_TOTAL"
	EnvDelay      = "BUNKWISE_DELAY"
	EnvLogFile    = "BUNKWISE_LOG_FILE"
	EnvLogLevel   = "BUNKWISE_LOG_LEVEL"
)

// Config is the effective application configuration.
type Config struct {
	// Defaults are the initial form values.
	Defaults attendance.NormalizedInputs `yaml:"defaults"`
	Limits   Limits                      `yaml:"limits"`
	UI       UI                          `yaml:"ui"`
	Log      Log                         `yaml:"log"`
}

// Limits bounds form input.
type Limits struct {
	MaxTotalLectures int `yaml:"max_total_lectures"`
}

// UI holds presentation timing.
type UI struct {
	// Debounce is the quiet period after an edit before recalculating.
	Debounce time.Duration `yaml:"debounce"`

	// Delay is an artificial pause shown as a loading state before results
	// appear. Zero disables it.
	Delay time.Duration `yaml:"delay"`
}

// Log configures the debug log.
type Log struct {
	// File is the log destination. Empty disables logging.
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Defaults: attendance.NormalizedInputs{
			TotalLectures:      100,
			AttendedLectures:   75,
			RemainingLectures:  25,
			RequiredPercentage: 75,
		},
		Limits: Limits{MaxTotalLectures: attendance.DefaultMaxTotalLectures},
		UI: UI{
			Debounce: 300 * time.Millisecond,
			Delay:    500 * time.Millisecond,
		},
		Log: Log{Level: "info"},
	}
}

// AttendanceLimits converts the limits for the calculator.
func (c Config) AttendanceLimits() attendance.Limits {
	return attendance.Limits{MaxTotalLectures: c.Limits.MaxTotalLectures}
}

// Validate checks values that the schema cannot express.
func (c Config) Validate() error {
	if c.Limits.MaxTotalLectures < 1 {
		return fmt.Errorf("limits.max_total_lectures must be at least 1, got %d", c.Limits.MaxTotalLectures)
	}
	if c.UI.Debounce < 0 {
		return fmt.Errorf("ui.debounce cannot be negative")
	}
	if c.UI.Delay < 0 {
		return fmt.Errorf("ui.delay cannot be negative")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	return nil
}

// Load reads and validates the YAML file at path. Keys absent from the
// file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration on top of the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := validateDocument(doc); err != nil {
		return Config{}, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Resolve loads the configuration from flagPath, or from DefaultPath when
// flagPath is empty, then applies environment overrides. A missing file at
// the default location is not an error. It returns the path consulted.
func Resolve(flagPath string) (Config, string, error) {
	path := flagPath
	explicit := path != ""
	if !explicit {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Config{}, "", err
		}
		explicit = os.Getenv(EnvConfigPath) != ""
	}

	cfg, err := Load(path)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, os.ErrNotExist):
		cfg = Default()
	default:
		return Config{}, path, err
	}

	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, path, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, path, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, path, nil
}

// ApplyEnv overlays environment overrides using lookup.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvMaxTotal); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: invalid integer %q", EnvMaxTotal, v)
		}
		cfg.Limits.MaxTotalLectures = n
	}
	if v, ok := lookup(EnvDelay); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDelay, err)
		}
		cfg.UI.Delay = d
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.Log.File = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	return nil
}

// DefaultPath resolves the configuration file path in priority order:
// 1. BUNKWISE_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/bunkwise/config.yaml
// 3. ~/.config/bunkwise/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "bunkwise", "config.yaml"), nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
