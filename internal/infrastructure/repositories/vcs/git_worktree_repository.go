package vcs

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/craterename/internal/domain/repositories"
)

// WorktreeRepository inspects Git worktrees with go-git.
type WorktreeRepository struct{}

var _ repositories.WorktreeRepository = (*WorktreeRepository)(nil)

// NewWorktreeRepository creates a new WorktreeRepository.
func NewWorktreeRepository() *WorktreeRepository {
	return &WorktreeRepository{}
}

// IsClean opens the repository containing dir, walking up to the first .git.
func (it *WorktreeRepository) IsClean(dir string) (bool, error) {
	//nolint:exhaustruct // only parent lookup is needed
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			logger.Debugf("%s is not inside a Git repository", dir)
			return true, nil
		}
		return false, fmt.Errorf("failed to open repository at %s: %w", dir, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return true, nil
		}
		return false, fmt.Errorf("failed to open worktree: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return false, fmt.Errorf("failed to read worktree status: %w", err)
	}
	return status.IsClean(), nil
}
