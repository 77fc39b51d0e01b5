//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/craterename/internal/domain/repositories"
)

// SpyWorktreeRepository implements repositories.WorktreeRepository as a configurable spy.
type SpyWorktreeRepository struct {
	// --- IsClean ---
	Clean      bool
	IsCleanErr error
	// spy: directories that were checked
	CheckedDirs []string
}

var _ repositories.WorktreeRepository = (*SpyWorktreeRepository)(nil)

func (s *SpyWorktreeRepository) IsClean(dir string) (bool, error) {
	s.CheckedDirs = append(s.CheckedDirs, dir)
	return s.Clean, s.IsCleanErr
}

// DummyWorktreeRepository reports every directory as clean.
type DummyWorktreeRepository struct{}

var _ repositories.WorktreeRepository = (*DummyWorktreeRepository)(nil)

func (d *DummyWorktreeRepository) IsClean(_ string) (bool, error) {
	return true, nil
}
