package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings controls which dependency tables are scanned.
type Settings struct {
	Tables         []string `yaml:"tables"`
	IncludeTargets bool     `yaml:"include_targets"`
}

// DefaultTables are the tables scanned when no settings file overrides them.
//
//nolint:gochecknoglobals // default configuration
var DefaultTables = []string{"dependencies", "dev-dependencies"}

// settingsFileNames are tried in order inside the crate directory.
//
//nolint:gochecknoglobals // lookup order
var settingsFileNames = []string{
	".craterename.yaml",
	".craterename.yml",
	"craterename.yaml",
	"craterename.yml",
}

// NewDefaultSettings returns the settings used when no file is present.
func NewDefaultSettings() *Settings {
	return &Settings{
		Tables:         append([]string(nil), DefaultTables...),
		IncludeTargets: false,
	}
}

// NewSettings reads and validates a YAML settings file. Fields left out of the
// file keep their default values.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %q: %w", path, err)
	}

	settings := NewDefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", unmarshalErr)
	}

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

// FindSettingsFile returns the first settings file found in dir.
func FindSettingsFile(dir string) (string, error) {
	for _, name := range settingsFileNames {
		p := filepath.Join(dir, name)
		if info, statErr := os.Stat(p); statErr == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", errors.New("settings file not found")
}

// Validate checks that every table name is set and appears once.
func (s *Settings) Validate() error {
	if len(s.Tables) == 0 {
		return fmt.Errorf("%w: at least one table must be listed", ErrInvalidSettings)
	}

	seen := make(map[string]bool, len(s.Tables))
	for i, name := range s.Tables {
		if name == "" {
			return fmt.Errorf("%w: tables[%d] is empty", ErrInvalidSettings, i)
		}
		if seen[name] {
			return fmt.Errorf("%w: table %q is listed twice", ErrInvalidSettings, name)
		}
		seen[name] = true
	}
	return nil
}
