package entities

import "github.com/spf13/cobra"

// ControllerBind holds the Cobra metadata a controller is registered with.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is a CLI entry point backed by a domain command.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string) error
}
