// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "allowlist.yaml")
	store := NewLocalStore(path)

	exists, err := store.Exists()
	require.NoError(t, err)
	assert.False(t, exists)

	saved := &Config{
		AllowedDirectories:   []string{"/data/docs", "~/notes"},
		AllowedPatterns:      []string{"*.md", "*.txt"},
		BlockedPatterns:      []string{".*"},
		MaxFileSizeMB:        25,
		MaxFilesPerDirectory: 200,
	}
	require.NoError(t, store.Save(saved))

	exists, err = store.Exists()
	require.NoError(t, err)
	assert.True(t, exists)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)

	// The file must not be world readable.
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLocalStoreLoadMissing(t *testing.T) {
	t.Parallel()

	store := NewLocalStore(filepath.Join(t.TempDir(), "allowlist.yaml"))
	_, err := store.Load()
	require.ErrorIs(t, err, ErrNotInitialized)
}

func TestLocalStoreLoadInvalidYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "allowlist.yaml")
	require.NoError(t, os.WriteFile(path, []byte("allowed_directories: {not a list"), 0600))

	_, err := NewLocalStore(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLocalStorePath(t *testing.T) {
	t.Parallel()

	store := NewLocalStore("/tmp/kgmcp//allowlist.yaml")
	path, err := store.Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("/tmp/kgmcp/allowlist.yaml"), path)
}

func TestDefaultPathEnvOverride(t *testing.T) {
	override := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv(PathEnvVar, override)

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, override, path)

	store := NewLocalStore("")
	got, err := store.Path()
	require.NoError(t, err)
	assert.Equal(t, override, got)
}

func TestDefaultConfigStartsEmpty(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	assert.Empty(t, cfg.AllowedDirectories)
	assert.NotEmpty(t, cfg.AllowedPatterns)
	assert.NotEmpty(t, cfg.BlockedPatterns)
	assert.Positive(t, cfg.MaxFileSizeMB)
	assert.Positive(t, cfg.MaxFilesPerDirectory)
}

func TestSaveStarterRoundTrips(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.AllowedDirectories = []string{"/work/notes", "~/Documents"}

	path := filepath.Join(t.TempDir(), "allowlist.yaml")
	store := NewLocalStore(path)
	require.NoError(t, store.SaveStarter(cfg))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "# kgmcp ingestion allowlist.")
	assert.Contains(t, string(raw), "\"~/Documents\"")

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
