package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/craterename/internal/domain/entities"
	"github.com/rios0rios0/craterename/internal/domain/repositories"
)

// Rename is the interface for the rename command (script generation).
type Rename interface {
	Execute(ctx context.Context, opts RenameOptions) error
}

// RenameOptions holds runtime options for a single script generation.
type RenameOptions struct {
	Path         string    // Crate directory or Cargo.toml path
	SettingsPath string    // Explicit settings file, empty for auto-detect
	Verbose      bool      // Switch logging to debug level
	Output       io.Writer // Destination of the generated script
}

// RenameCommand prints the shell commands that undo every dependency rename
// of a manifest.
type RenameCommand struct {
	manifestRepository repositories.ManifestRepository
	worktreeRepository repositories.WorktreeRepository
}

// NewRenameCommand creates a new RenameCommand.
func NewRenameCommand(
	manifestRepository repositories.ManifestRepository,
	worktreeRepository repositories.WorktreeRepository,
) *RenameCommand {
	return &RenameCommand{
		manifestRepository: manifestRepository,
		worktreeRepository: worktreeRepository,
	}
}

// Execute writes the script to opts.Output. Every table is processed even
// when an earlier one fails; the failures are joined into the returned error.
func (it *RenameCommand) Execute(_ context.Context, opts RenameOptions) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	manifest, settings, err := loadManifestAndSettings(it.manifestRepository, opts.Path, opts.SettingsPath)
	if err != nil {
		return err
	}

	it.warnOnDirtyWorktree(manifest.CrateDir())

	if _, writeErr := fmt.Fprintln(opts.Output, entities.ScriptPreamble); writeErr != nil {
		return fmt.Errorf("failed to write script: %w", writeErr)
	}

	var tableErrs []error
	for _, ref := range entities.SelectTables(manifest, settings) {
		table, decodeErr := entities.DecodeDependencyTable(ref.Name, ref.Value)
		if decodeErr != nil {
			tableErrs = append(tableErrs, decodeErr)
			continue
		}

		pairs := table.Renames()
		logger.Debugf("[%s] %d dependencies, %d renamed", table.Name, len(table.Dependencies), len(pairs))
		for _, pair := range pairs {
			logger.Debugf("[%s] %s -> %s", table.Name, pair.Alias, pair.RealName)
		}

		block := entities.RenderTable(pairs, manifest.Path, manifest.SourceDir())
		if _, writeErr := io.WriteString(opts.Output, block); writeErr != nil {
			return fmt.Errorf("failed to write script: %w", writeErr)
		}
	}

	return errors.Join(tableErrs...)
}

// warnOnDirtyWorktree only logs: the script is printed either way.
func (it *RenameCommand) warnOnDirtyWorktree(dir string) {
	clean, err := it.worktreeRepository.IsClean(dir)
	if err != nil {
		logger.Warnf("Could not check Git status of %s: %v", dir, err)
		return
	}
	if !clean {
		logger.Warnf("%s has uncommitted changes; the generated script edits files in place", dir)
	}
}
