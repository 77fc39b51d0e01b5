package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/craterename/internal/domain/commands"
	"github.com/rios0rios0/craterename/internal/domain/entities"
)

// RenameController prints the rename-removal script for a crate. It also
// backs the root command.
type RenameController struct {
	command commands.Rename
}

// NewRenameController creates a new RenameController.
func NewRenameController(command commands.Rename) *RenameController {
	return &RenameController{command: command}
}

// GetBind returns the Cobra command metadata for the rename controller.
func (it *RenameController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "rename <path>",
		Short: "Print a shell script that removes dependency renames",
		Long: `Read Cargo.toml from the given crate directory (or the given Cargo.toml file),
find dependencies declared under an alias with a "package" override, and print
the sed/find commands that rewrite the manifest and the Rust sources to use the
real package name. Nothing is modified; pipe the output to a shell to apply it.`,
	}
}

// Execute runs the script generation for the path in args[0].
func (it *RenameController) Execute(cmd *cobra.Command, args []string) error {
	settingsPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	return it.command.Execute(context.Background(), commands.RenameOptions{
		Path:         args[0],
		SettingsPath: settingsPath,
		Verbose:      verbose,
		Output:       cmd.OutOrStdout(),
	})
}
