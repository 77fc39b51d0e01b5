//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/craterename/internal/domain/entities"
	"github.com/rios0rios0/craterename/internal/domain/repositories"
)

// SpyManifestRepository implements repositories.ManifestRepository as a configurable spy.
type SpyManifestRepository struct {
	// --- Load ---
	Manifest *entities.Manifest
	LoadErr  error
	// spy: paths that were requested
	LoadedPaths []string
}

var _ repositories.ManifestRepository = (*SpyManifestRepository)(nil)

func (s *SpyManifestRepository) Load(path string) (*entities.Manifest, error) {
	s.LoadedPaths = append(s.LoadedPaths, path)
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return s.Manifest, nil
}
