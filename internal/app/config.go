package app

import (
	"errors"

	"github.com/vk/stanza/internal/registry"
	"github.com/vk/stanza/internal/resolver"
)

// Config holds everything one invocation needs to run. It is built by the
// CLI layer, validated here, and read-only afterwards.
type Config struct {
	Mode registry.Mode

	// Preset is the requested preset name; empty means direct mode.
	Preset string
	// PresetFiles are the preset file paths in command-line order. A path
	// naming a directory expands to its .ini files.
	PresetFiles []string

	ShowPresets bool
	// ExpandOnly prints the expanded driver invocation without running it.
	ExpandOnly bool

	// DriverPath is the downstream build driver executable.
	DriverPath string

	Substitutions map[string]string
	Overrides     []resolver.Override
	PassThrough   []string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a configuration.
func NewConfig(cfg Config) (*Config, error) {
	if _, err := registry.ParseMode(string(cfg.Mode)); err != nil {
		return nil, err
	}
	if cfg.DriverPath == "" {
		return nil, errors.New("DriverPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
