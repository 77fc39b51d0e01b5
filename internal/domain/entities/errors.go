package entities

import "errors"

var (
	// ErrManifestIO is returned when the manifest cannot be opened or read.
	ErrManifestIO = errors.New("cannot read manifest")
	// ErrManifestParse is returned when the manifest is not valid TOML.
	ErrManifestParse = errors.New("cannot parse manifest")
	// ErrManifestSchema is returned when the manifest root is not a table.
	ErrManifestSchema = errors.New("invalid manifest")
	// ErrDependencySchema is returned when a dependency table has an unexpected shape.
	ErrDependencySchema = errors.New("unable to parse deps")
	// ErrRenamesFound is returned by the check mode when renamed dependencies exist.
	ErrRenamesFound = errors.New("renamed dependencies found")
	// ErrInvalidSettings is returned when the settings file fails validation.
	ErrInvalidSettings = errors.New("invalid settings")
)
