package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Color modes accepted by Settings.Color
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Settings holds presentation options that do not change which lines match
type Settings struct {
	// LogLevel sets the stderr logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Color controls match highlighting: auto, always or never
	Color string `yaml:"color"`

	// Highlight enables coloring the query inside printed lines
	Highlight bool `yaml:"highlight"`
}

// DefaultSettings returns Settings with default values
func DefaultSettings() *Settings {
	return &Settings{
		LogLevel:  "warn",
		Color:     ColorAuto,
		Highlight: false,
	}
}

// LoadSettings loads settings from the specified file path.
// If the file doesn't exist, returns defaults without error.
// If the file exists but is malformed, returns an error.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	// Pointers distinguish "absent" from the zero value.
	var raw struct {
		LogLevel  *string `yaml:"log_level"`
		Color     *string `yaml:"color"`
		Highlight *bool   `yaml:"highlight"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	if raw.LogLevel != nil {
		s.LogLevel = *raw.LogLevel
	}
	if raw.Color != nil {
		s.Color = *raw.Color
	}
	if raw.Highlight != nil {
		s.Highlight = *raw.Highlight
	}

	return s, nil
}

// LoadSettingsFromDir loads settings from .minigrep/config.yaml in dir
func LoadSettingsFromDir(dir string) (*Settings, error) {
	return LoadSettings(filepath.Join(dir, ".minigrep", "config.yaml"))
}

// MergeWithFlags lets non-nil CLI flag values override file settings
func (s *Settings) MergeWithFlags(logLevel *string, color *string, highlight *bool) {
	if logLevel != nil {
		s.LogLevel = *logLevel
	}
	if color != nil {
		s.Color = *color
	}
	if highlight != nil {
		s.Highlight = *highlight
	}
}

// Validate validates the settings values
func (s *Settings) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[s.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", s.LogLevel)
	}

	switch s.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", s.Color)
	}

	return nil
}
