package entities

import "path/filepath"

// ManifestFileName is the name of the Cargo package manifest.
const ManifestFileName = "Cargo.toml"

const sourceDirName = "src"

// Manifest is the parsed Cargo.toml tree. It is never mutated after loading.
type Manifest struct {
	Path string
	Root map[string]any
}

// ResolveManifestPath returns the manifest path for a crate directory or a
// path that already points at a Cargo.toml.
func ResolveManifestPath(path string) string {
	if filepath.Base(path) == ManifestFileName {
		return path
	}
	return filepath.Join(path, ManifestFileName)
}

// SourceDir returns the src directory that sits next to the manifest.
func (m *Manifest) SourceDir() string {
	return filepath.Join(filepath.Dir(m.Path), sourceDirName)
}

// CrateDir returns the directory containing the manifest.
func (m *Manifest) CrateDir() string {
	return filepath.Dir(m.Path)
}

// Table returns the raw value stored under a top-level key.
func (m *Manifest) Table(name string) (any, bool) {
	value, ok := m.Root[name]
	return value, ok
}
