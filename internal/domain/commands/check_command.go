package commands

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/craterename/internal/domain/entities"
	"github.com/rios0rios0/craterename/internal/domain/repositories"
)

// Check is the interface for the check command (CI mode).
type Check interface {
	Execute(ctx context.Context, opts CheckOptions) error
}

// CheckOptions holds runtime options for a single check.
type CheckOptions struct {
	Path         string
	SettingsPath string
	Verbose      bool
}

// CheckCommand reports renamed dependencies without generating a script.
type CheckCommand struct {
	manifestRepository repositories.ManifestRepository
}

// NewCheckCommand creates a new CheckCommand.
func NewCheckCommand(manifestRepository repositories.ManifestRepository) *CheckCommand {
	return &CheckCommand{manifestRepository: manifestRepository}
}

// Execute fails with entities.ErrRenamesFound when at least one rename exists.
func (it *CheckCommand) Execute(_ context.Context, opts CheckOptions) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	manifest, settings, err := loadManifestAndSettings(it.manifestRepository, opts.Path, opts.SettingsPath)
	if err != nil {
		return err
	}

	var errs []error
	total := 0
	for _, ref := range entities.SelectTables(manifest, settings) {
		table, decodeErr := entities.DecodeDependencyTable(ref.Name, ref.Value)
		if decodeErr != nil {
			errs = append(errs, decodeErr)
			continue
		}
		for _, pair := range table.Renames() {
			logger.Warnf("%s: %s -> %s", table.Name, pair.Alias, pair.RealName)
			total++
		}
	}

	if total > 0 {
		errs = append(errs, fmt.Errorf("%w: %d in %s", entities.ErrRenamesFound, total, manifest.Path))
	} else {
		logger.Infof("No renamed dependencies in %s", manifest.Path)
	}
	return errors.Join(errs...)
}
