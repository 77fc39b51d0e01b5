package repositories

import (
	"github.com/rios0rios0/craterename/internal/domain/entities"
)

// ManifestRepository loads Cargo manifests from storage.
type ManifestRepository interface {
	// Load resolves the manifest path for the given crate directory or
	// manifest file and parses it. Errors wrap entities.ErrManifestIO,
	// entities.ErrManifestParse or entities.ErrManifestSchema.
	Load(path string) (*entities.Manifest, error)
}
