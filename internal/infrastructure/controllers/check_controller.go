package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/craterename/internal/domain/commands"
	"github.com/rios0rios0/craterename/internal/domain/entities"
)

// CheckController handles the "check" subcommand.
type CheckController struct {
	command commands.Check
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Check) *CheckController {
	return &CheckController{command: command}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check <path>",
		Short: "Fail when the manifest declares renamed dependencies",
		Long: `Report every renamed dependency of the crate on stderr and exit with a
non-zero status if there is at least one. Intended for CI pipelines.`,
	}
}

// Execute runs the check for the path in args[0].
func (it *CheckController) Execute(cmd *cobra.Command, args []string) error {
	settingsPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	return it.command.Execute(context.Background(), commands.CheckOptions{
		Path:         args[0],
		SettingsPath: settingsPath,
		Verbose:      verbose,
	})
}
