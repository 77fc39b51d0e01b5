package repositories

// WorktreeRepository reports on the version control state of a directory.
type WorktreeRepository interface {
	// IsClean returns true when dir is not tracked by Git or when its
	// worktree has no uncommitted changes.
	IsClean(dir string) (bool, error)
}
