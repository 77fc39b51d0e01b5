package cargo

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/craterename/internal/domain/entities"
	"github.com/rios0rios0/craterename/internal/domain/repositories"
)

// ManifestRepository reads Cargo.toml files from the local filesystem.
type ManifestRepository struct{}

var _ repositories.ManifestRepository = (*ManifestRepository)(nil)

// NewManifestRepository creates a new ManifestRepository.
func NewManifestRepository() *ManifestRepository {
	return &ManifestRepository{}
}

// Load resolves, reads and parses the manifest.
func (it *ManifestRepository) Load(path string) (*entities.Manifest, error) {
	manifestPath := entities.ResolveManifestPath(path)
	logger.Infof("Reading manifest: %s", manifestPath)

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", entities.ErrManifestIO, manifestPath, err)
	}

	return ParseManifest(manifestPath, data)
}

// ParseManifest parses manifest content that was already read from path.
func ParseManifest(path string, data []byte) (*entities.Manifest, error) {
	var tree any
	if _, err := toml.Decode(string(data), &tree); err != nil {
		return nil, fmt.Errorf("%w %s: %w", entities.ErrManifestParse, path, err)
	}
	return newManifest(path, tree)
}

func newManifest(path string, tree any) (*entities.Manifest, error) {
	root, ok := tree.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w %s: top-level value is not a table", entities.ErrManifestSchema, path)
	}
	logger.Debugf("Parsed %s with %d top-level keys", path, len(root))
	return &entities.Manifest{Path: path, Root: root}, nil
}
