//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/craterename/internal/domain/commands"
)

// StubRenameCommand is a stub implementation of commands.Rename.
type StubRenameCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.RenameOptions
}

var _ commands.Rename = (*StubRenameCommand)(nil)

func (s *StubRenameCommand) Execute(
	_ context.Context,
	opts commands.RenameOptions,
) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteErr
}
