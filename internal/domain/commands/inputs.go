package commands

import (
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/craterename/internal/domain/entities"
	"github.com/rios0rios0/craterename/internal/domain/repositories"
)

// loadManifestAndSettings loads the manifest first so that an unreadable
// manifest is reported before anything else happens, then resolves the
// settings next to it unless an explicit file was given.
func loadManifestAndSettings(
	manifestRepository repositories.ManifestRepository,
	path, settingsPath string,
) (*entities.Manifest, *entities.Settings, error) {
	manifest, err := manifestRepository.Load(path)
	if err != nil {
		return nil, nil, err
	}

	if settingsPath == "" {
		found, findErr := entities.FindSettingsFile(manifest.CrateDir())
		if findErr != nil {
			logger.Debugf("No settings file in %s, scanning %v", manifest.CrateDir(), entities.DefaultTables)
			return manifest, entities.NewDefaultSettings(), nil
		}
		settingsPath = found
	}

	logger.Infof("Using settings file: %s", settingsPath)
	settings, err := entities.NewSettings(settingsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return manifest, settings, nil
}
