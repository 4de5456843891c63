package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	// SettingsFile is the repo-local settings file name.
	SettingsFile = ".cimeta.toml"
	// DefaultInputsFile is where the workflow driver writes inputs by default.
	DefaultInputsFile = ".cimeta/workflow_inputs.json"
)

// Settings is the repo-local cimeta configuration.
type Settings struct {
	InputsFile             string `toml:"inputs_file"`
	TolerateMissingHistory bool   `toml:"tolerate_missing_history"`
}

// LoadSettings reads .cimeta.toml from dir. A missing file yields defaults;
// a malformed one is an error.
func LoadSettings(dir string) (*Settings, error) {
	s := &Settings{InputsFile: DefaultInputsFile}

	data, err := os.ReadFile(filepath.Join(dir, SettingsFile))
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if s.InputsFile == "" {
		s.InputsFile = DefaultInputsFile
	}
	return s, nil
}
