//go:build unit

package main //nolint:testpackage // tests unexported functions

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/craterename/internal/domain/entities"
)

func writeCrate(t *testing.T, manifest string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte(manifest), 0o644))
	return dir
}

func TestCommandTree(t *testing.T) {
	t.Parallel()

	t.Run("should print the script for the example manifest", func(t *testing.T) {
		t.Parallel()

		// given
		dir := writeCrate(t, "[dependencies]\nfoo = { version = \"1.0\", package = \"bar\" }\nbaz = \"2.0\"\n")
		root := newCommandTree(injectAppContext())
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetArgs([]string{dir})

		// when
		err := root.Execute()

		// then
		require.NoError(t, err)
		manifestPath := filepath.Join(dir, "Cargo.toml")
		src := filepath.Join(dir, "src")
		expected := "set -eux\n" +
			`sed -i "s~foo = ~bar = ~" ` + manifestPath + "\n" +
			`sed -i "s~package = \"bar\",~~" ` + manifestPath + "\n" +
			`sed -i "s~\"foo/std\"~\"bar/std\"~" ` + manifestPath + "\n" +
			`sed -i "s~\"foo\",~\"bar\",~" ` + manifestPath + "\n" +
			`find ` + src + ` -type f -name "*.rs" -exec sed -i "s~\bfoo::~bar::~g" {} +` + "\n" +
			`find ` + src + ` -type f -name "*.rs" -exec sed -i "s~use foo\b~use bar~g" {} +` + "\n"
		assert.Equal(t, expected, out.String())
	})

	t.Run("should accept the rename subcommand with a manifest path", func(t *testing.T) {
		t.Parallel()

		// given
		dir := writeCrate(t, "[dev-dependencies]\nmy-crate = { version = \"1\", package = \"real-crate\" }\n")
		root := newCommandTree(injectAppContext())
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetArgs([]string{"rename", filepath.Join(dir, "Cargo.toml")})

		// when
		err := root.Execute()

		// then
		require.NoError(t, err)
		assert.Contains(t, out.String(), "my_crate::~real_crate::")
		assert.Contains(t, out.String(), "my-crate = ~real-crate = ")
	})

	t.Run("should fail the check subcommand when renames exist", func(t *testing.T) {
		t.Parallel()

		// given
		dir := writeCrate(t, "[dependencies]\nfoo = { version = \"1.0\", package = \"bar\" }\n")
		root := newCommandTree(injectAppContext())
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetArgs([]string{"check", dir})

		// when
		err := root.Execute()

		// then
		require.ErrorIs(t, err, entities.ErrRenamesFound)
		assert.Empty(t, out.String())
	})

	t.Run("should fail without output for a missing manifest", func(t *testing.T) {
		t.Parallel()

		// given
		root := newCommandTree(injectAppContext())
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetArgs([]string{filepath.Join(t.TempDir(), "missing")})

		// when
		err := root.Execute()

		// then
		require.ErrorIs(t, err, entities.ErrManifestIO)
		assert.Empty(t, out.String())
	})

	t.Run("should require exactly one path", func(t *testing.T) {
		t.Parallel()

		// given
		root := newCommandTree(injectAppContext())
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})
		root.SetArgs([]string{})

		// when
		err := root.Execute()

		// then
		require.Error(t, err)
	})
}
