// Package config loads buckle's YAML configuration.
//
// Files are layered: defaults, then the user file (~/.buckle/config.yaml),
// then the project file (./.buckle/config.yaml), then BUCKLE_* environment
// overrides. The result is validated before it is returned.
package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/odvcencio/buckle/pkg/errors"
	"github.com/odvcencio/buckle/pkg/logging"
)

// Corner names accepted by render.corners.
const (
	CornersSquare  = "square"
	CornersRounded = "rounded"
)

const (
	// DefaultMaxVirtualExtent is the default scroll box ceiling.
	DefaultMaxVirtualExtent = 1000
	maxVirtualExtentLimit   = 100_000

	dirName  = ".buckle"
	fileName = "config.yaml"
)

// Config is the top-level configuration.
type Config struct {
	Render    RenderConfig    `yaml:"render"`
	Logging   LoggingConfig   `yaml:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// RenderConfig controls layout and drawing defaults.
type RenderConfig struct {
	// MaxVirtualExtent caps the scroll axis of scroll boxes.
	MaxVirtualExtent int `yaml:"max_virtual_extent"`
	// Corners is the default border corner style: square or rounded.
	Corners string `yaml:"corners"`
	// Theme is an optional path to a theme YAML file.
	Theme string `yaml:"theme"`
}

// LoggingConfig controls the event logger.
type LoggingConfig struct {
	// Dir receives session logs. Empty logs warnings to stderr only.
	Dir   string `yaml:"dir"`
	Level string `yaml:"level"`
}

// TelemetryConfig toggles metrics and tracing.
type TelemetryConfig struct {
	Metrics     bool   `yaml:"metrics"`
	MetricsAddr string `yaml:"metrics_addr"`
	Trace       bool   `yaml:"trace"`
	TraceFile   string `yaml:"trace_file"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			MaxVirtualExtent: DefaultMaxVirtualExtent,
			Corners:          CornersSquare,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Telemetry: TelemetryConfig{
			Metrics: true,
		},
	}
}

// Load builds the layered configuration.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	if home != "" {
		if err := loadAndMerge(cfg, filepath.Join(home, dirName, fileName)); err != nil && !stderrors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if err := loadAndMerge(cfg, filepath.Join(".", dirName, fileName)); err != nil && !stderrors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	applyEnvOverrides(cfg)
	cfg.expandPaths()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath loads defaults overlaid with a single file.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := loadAndMerge(cfg, path); err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrap(err, errors.ErrCodeConfigLoad, "config file not found").
				WithContext("path", path)
		}
		return nil, err
	}
	applyEnvOverrides(cfg)
	cfg.expandPaths()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadAndMerge decodes path over cfg. Keys absent from the file keep
// their current values. A missing file is returned unwrapped so callers
// can test it with os.ErrNotExist.
func loadAndMerge(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return err
		}
		return errors.Wrap(err, errors.ErrCodeConfigLoad, "reading config").
			WithContext("path", path)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return errors.Wrap(err, errors.ErrCodeConfigParse, "parsing config").
			WithContext("path", path).
			WithRemediation("check the file against the documented keys")
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("BUCKLE_THEME")); v != "" {
		cfg.Render.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("BUCKLE_CORNERS")); v != "" {
		cfg.Render.Corners = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("BUCKLE_MAX_VIRTUAL_EXTENT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Render.MaxVirtualExtent = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("BUCKLE_LOG_DIR")); v != "" {
		cfg.Logging.Dir = v
	}
	if v := strings.TrimSpace(os.Getenv("BUCKLE_LOG_LEVEL")); v != "" {
		cfg.Logging.Level = v
	}
	if v, ok := envBool("BUCKLE_METRICS"); ok {
		cfg.Telemetry.Metrics = v
	}
	if v := strings.TrimSpace(os.Getenv("BUCKLE_METRICS_ADDR")); v != "" {
		cfg.Telemetry.MetricsAddr = v
	}
	if v, ok := envBool("BUCKLE_TRACE"); ok {
		cfg.Telemetry.Trace = v
	}
}

func envBool(key string) (bool, bool) {
	val := os.Getenv(key)
	if val == "" {
		return false, false
	}
	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	default:
		return false, false
	}
}

func (c *Config) expandPaths() {
	c.Render.Theme = expandHomeDir(c.Render.Theme)
	c.Logging.Dir = expandHomeDir(c.Logging.Dir)
	c.Telemetry.TraceFile = expandHomeDir(c.Telemetry.TraceFile)
}

func expandHomeDir(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil && strings.TrimSpace(home) != "" {
			return home
		}
		return path
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil && strings.TrimSpace(home) != "" {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// Validate checks field ranges and enumerations.
func (c *Config) Validate() error {
	if c.Render.MaxVirtualExtent <= 0 || c.Render.MaxVirtualExtent > maxVirtualExtentLimit {
		return invalid("render.max_virtual_extent", fmt.Sprintf("must be between 1 and %d", maxVirtualExtentLimit), c.Render.MaxVirtualExtent)
	}
	switch c.Render.Corners {
	case CornersSquare, CornersRounded:
	default:
		return invalid("render.corners", "must be square or rounded", c.Render.Corners)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return invalid("logging.level", "must be debug, info, warn or error", c.Logging.Level)
	}
	return nil
}

func invalid(key, msg string, value any) error {
	return errors.New(errors.ErrCodeConfigInvalid, key+" "+msg).
		WithContext("key", key).
		WithContext("value", value).
		WithRemediation("fix " + key + " in the config file or its BUCKLE_ environment override")
}

// Rounded reports whether borders default to rounded corners.
func (r RenderConfig) Rounded() bool {
	return r.Corners == CornersRounded
}
