package cargo

// NewManifest exports newManifest for testing.
var NewManifest = newManifest //nolint:gochecknoglobals // test export
