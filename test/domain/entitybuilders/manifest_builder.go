//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"maps"

	"github.com/rios0rios0/craterename/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// ManifestBuilder helps create test manifests with a fluent interface.
type ManifestBuilder struct {
	*testkit.BaseBuilder
	path string
	root map[string]any
}

// NewManifestBuilder creates a new manifest builder with sensible defaults.
func NewManifestBuilder() *ManifestBuilder {
	return &ManifestBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		path:        "crate/Cargo.toml",
		root:        map[string]any{},
	}
}

// WithPath sets the manifest path.
func (b *ManifestBuilder) WithPath(path string) *ManifestBuilder {
	b.path = path
	return b
}

// WithVersion adds a plain `alias = "version"` entry to a table.
func (b *ManifestBuilder) WithVersion(table, alias, version string) *ManifestBuilder {
	b.table(table)[alias] = version
	return b
}

// WithRename adds an `alias = { version = "1.0", package = "real" }` entry to a table.
func (b *ManifestBuilder) WithRename(table, alias, realName string) *ManifestBuilder {
	b.table(table)[alias] = map[string]any{
		"version": "1.0",
		"package": realName,
	}
	return b
}

// WithEntry adds an arbitrary raw entry to a table.
func (b *ManifestBuilder) WithEntry(table, alias string, value any) *ManifestBuilder {
	b.table(table)[alias] = value
	return b
}

// WithRaw sets a top-level key to an arbitrary value.
func (b *ManifestBuilder) WithRaw(key string, value any) *ManifestBuilder {
	b.root[key] = value
	return b
}

// Build creates the manifest (satisfies testkit.Builder interface).
func (b *ManifestBuilder) Build() interface{} {
	return b.BuildManifest()
}

// BuildManifest creates the manifest with a concrete return type.
func (b *ManifestBuilder) BuildManifest() *entities.Manifest {
	return &entities.Manifest{
		Path: b.path,
		Root: maps.Clone(b.root),
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ManifestBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.path = "crate/Cargo.toml"
	b.root = map[string]any{}
	return b
}

// Clone creates a copy of the ManifestBuilder.
func (b *ManifestBuilder) Clone() testkit.Builder {
	return &ManifestBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		path:        b.path,
		root:        maps.Clone(b.root),
	}
}

// table returns the named top-level table, creating it when missing.
func (b *ManifestBuilder) table(name string) map[string]any {
	existing, ok := b.root[name].(map[string]any)
	if !ok {
		existing = map[string]any{}
		b.root[name] = existing
	}
	return existing
}
