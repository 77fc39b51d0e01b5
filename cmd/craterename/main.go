package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/craterename/internal"
)

func buildRootCommand(appContext *internal.AppInternal) *cobra.Command {
	renameController := appContext.GetRenameController()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "craterename <path>",
		Short: "Remove crate renames from Cargo.toml",
		Long: `Finds dependencies in Cargo.toml that are declared under an alias
(foo = { package = "bar" }) and prints the shell commands that replace the alias
with the real package name in the manifest and in every Rust source file.

Usage modes:
  craterename .                  Print the script for the crate in the current directory
  craterename path/Cargo.toml    Print the script for a specific manifest
  craterename check .            Exit non-zero when renames exist (CI)

The script is only printed; review it, then pipe it to sh to apply it.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          renameController.Execute,
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to settings file (default: auto-detect in the crate directory)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.ExactArgs(1),
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}
		rootCmd.AddCommand(subCmd)
	}
}

func newCommandTree(appContext *internal.AppInternal) *cobra.Command {
	root := buildRootCommand(appContext)
	addSubcommands(root, appContext)
	return root
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stderr)
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	appContext := injectAppContext()
	cobraRoot := newCommandTree(appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'craterename': %s", err)
	}
}
