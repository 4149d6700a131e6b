package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the optional settings file looked up in the working directory.
const DefaultFile = "evaluator.yaml"

// Settings holds presentation options. Evaluation thresholds live in the
// constants of this package and cannot be set here.
type Settings struct {
	Title  string         `yaml:"title"`
	Report ReportSettings `yaml:"report"`
	Log    LogSettings    `yaml:"log"`
}

// ReportSettings controls where the report file is written. Week is
// appended to the report header; 0 omits it.
type ReportSettings struct {
	Path string `yaml:"path"`
	Week int    `yaml:"week"`
}

// LogSettings configures the diagnostic logger
type LogSettings struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the settings used when no file is present
func Default() *Settings {
	return &Settings{
		Title: "Weekly Performance Evaluator",
		Report: ReportSettings{
			Path: "report.txt",
			Week: 7,
		},
		Log: LogSettings{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load reads settings from disk on top of the defaults. If no file exists,
// it returns the defaults and no error.
func Load(path string) (*Settings, error) {
	settings := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings file: %w", err)
	}

	return settings, nil
}

// Validate checks the fields the program cannot run without
func (s *Settings) Validate() error {
	if s.Report.Path == "" {
		return fmt.Errorf("report.path is required")
	}
	if s.Report.Week < 0 {
		return fmt.Errorf("report.week must not be negative, got %d", s.Report.Week)
	}
	if _, err := zapcore.ParseLevel(s.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch s.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", s.Log.Format)
	}
	return nil
}
