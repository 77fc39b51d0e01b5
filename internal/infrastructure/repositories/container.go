package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/craterename/internal/domain/repositories"
	cargoRepo "github.com/rios0rios0/craterename/internal/infrastructure/repositories/cargo"
	vcsRepo "github.com/rios0rios0/craterename/internal/infrastructure/repositories/vcs"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register repository constructors
	if err := container.Provide(cargoRepo.NewManifestRepository); err != nil {
		return err
	}
	if err := container.Provide(vcsRepo.NewWorktreeRepository); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *cargoRepo.ManifestRepository) domainRepos.ManifestRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *vcsRepo.WorktreeRepository) domainRepos.WorktreeRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
