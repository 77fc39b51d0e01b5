//go:build unit

package controllers_test

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/craterename/internal/domain/entities"
	"github.com/rios0rios0/craterename/internal/infrastructure/controllers"
	commanddoubles "github.com/rios0rios0/craterename/test/domain/commanddoubles"
)

func newFlaggedCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	//nolint:exhaustruct // test command
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringP("config", "c", "", "")
	cmd.Flags().BoolP("verbose", "v", false, "")
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestRenameControllerExecute(t *testing.T) {
	t.Parallel()

	t.Run("should forward path, flags and output to the command", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubRenameCommand{}
		controller := controllers.NewRenameController(stub)
		cmd := newFlaggedCommand(t, "--config", "settings.yaml", "--verbose")
		var out bytes.Buffer
		cmd.SetOut(&out)

		// when
		err := controller.Execute(cmd, []string{"crates/demo"})

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, "crates/demo", stub.LastOpts.Path)
		assert.Equal(t, "settings.yaml", stub.LastOpts.SettingsPath)
		assert.True(t, stub.LastOpts.Verbose)
		assert.Same(t, &out, stub.LastOpts.Output)
	})

	t.Run("should return the command error", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubRenameCommand{ExecuteErr: entities.ErrManifestIO}
		controller := controllers.NewRenameController(stub)

		// when
		err := controller.Execute(newFlaggedCommand(t), []string{"."})

		// then
		require.ErrorIs(t, err, entities.ErrManifestIO)
	})

	t.Run("should expose rename metadata", func(t *testing.T) {
		t.Parallel()

		// given
		controller := controllers.NewRenameController(&commanddoubles.StubRenameCommand{})

		// when
		bind := controller.GetBind()

		// then
		assert.Equal(t, "rename <path>", bind.Use)
		assert.NotEmpty(t, bind.Short)
	})
}

func TestCheckControllerExecute(t *testing.T) {
	t.Parallel()

	t.Run("should forward path and flags to the command", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCheckCommand{}
		controller := controllers.NewCheckController(stub)

		// when
		err := controller.Execute(newFlaggedCommand(t, "-c", "ci.yaml"), []string{"Cargo.toml"})

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, "Cargo.toml", stub.LastOpts.Path)
		assert.Equal(t, "ci.yaml", stub.LastOpts.SettingsPath)
		assert.False(t, stub.LastOpts.Verbose)
	})

	t.Run("should return ErrRenamesFound from the command", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCheckCommand{ExecuteErr: entities.ErrRenamesFound}
		controller := controllers.NewCheckController(stub)

		// when
		err := controller.Execute(newFlaggedCommand(t), []string{"."})

		// then
		require.ErrorIs(t, err, entities.ErrRenamesFound)
	})
}

func TestNewControllers(t *testing.T) {
	t.Parallel()

	t.Run("should list rename before check", func(t *testing.T) {
		t.Parallel()

		// given
		rename := controllers.NewRenameController(&commanddoubles.StubRenameCommand{})
		check := controllers.NewCheckController(&commanddoubles.StubCheckCommand{})

		// when
		list := controllers.NewControllers(rename, check)

		// then
		require.Len(t, *list, 2)
		assert.Equal(t, "rename <path>", (*list)[0].GetBind().Use)
		assert.Equal(t, "check <path>", (*list)[1].GetBind().Use)
	})
}
