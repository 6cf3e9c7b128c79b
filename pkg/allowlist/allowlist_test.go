// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package allowlist_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kgfoundry/kgmcp/pkg/allowlist"
	"github.com/kgfoundry/kgmcp/pkg/config"
)

func newValidator(t *testing.T, cfg *config.Config) *allowlist.Validator {
	t.Helper()
	v, err := allowlist.New(cfg, "/etc/kgmcp/allowlist.yaml")
	require.NoError(t, err)
	return v
}

func TestValidatePath_NotInitialized(t *testing.T) {
	t.Parallel()

	v := newValidator(t, nil)
	d := v.ValidatePath("/tmp/notes.md")

	assert.False(t, d.Allowed)
	assert.Contains(t, d.Reason, "no ingestion allowlist")
	assert.Contains(t, d.Hint, "kgmcp allowlist init")
}

func TestValidatePath(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.md"), []byte("# hi"), 0600))

	cfg := &config.Config{
		AllowedDirectories: []string{root},
		AllowedPatterns:    []string{"*.md", "*.txt"},
		BlockedPatterns:    []string{"*.exe", "secret*"},
		MaxFileSizeMB:      1,
	}
	v := newValidator(t, cfg)

	tests := []struct {
		name        string
		path        string
		wantAllowed bool
		reasonHas   string
	}{
		{
			name:        "allowed file under allowed directory",
			path:        filepath.Join(root, "notes.md"),
			wantAllowed: true,
		},
		{
			name:        "nested file is still contained",
			path:        filepath.Join(root, "deep", "nested", "doc.txt"),
			wantAllowed: true,
		},
		{
			name:        "outside allowed directories",
			path:        "/var/data/notes.md",
			wantAllowed: false,
			reasonHas:   "outside the allowed directories",
		},
		{
			name:        "no allowed pattern matches",
			path:        filepath.Join(root, "archive.tar.gz"),
			wantAllowed: false,
			reasonHas:   "no allowed pattern matches",
		},
		{
			name:        "blocked extension",
			path:        filepath.Join(root, "setup.exe"),
			wantAllowed: false,
			reasonHas:   `blocked pattern "*.exe"`,
		},
		{
			name:        "blocked name prefix",
			path:        filepath.Join(root, "secret-keys.md"),
			wantAllowed: false,
			reasonHas:   `blocked pattern "secret*"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := v.ValidatePath(tt.path)

			assert.Equal(t, tt.wantAllowed, d.Allowed)
			if tt.reasonHas != "" {
				assert.Contains(t, d.Reason, tt.reasonHas)
				assert.Contains(t, d.Reason, "not allowed")
			}
			assert.True(t, filepath.IsAbs(d.Path))
		})
	}
}

// Blocked patterns win even when an allowed pattern also matches.
func TestValidatePath_BlockedWinsOverAllowed(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	cfg := &config.Config{
		AllowedDirectories: []string{root},
		AllowedPatterns:    []string{"*"},
		BlockedPatterns:    []string{"*.md"},
	}
	v := newValidator(t, cfg)

	d := v.ValidatePath(filepath.Join(root, "readme.md"))
	assert.False(t, d.Allowed)
	assert.Contains(t, d.Reason, `blocked pattern "*.md"`)
}

func TestValidatePath_TildeExpansion(t *testing.T) { //nolint:paralleltest // uses t.Setenv
	home := t.TempDir()
	t.Setenv("HOME", home)

	docs := filepath.Join(home, "docs")
	require.NoError(t, os.MkdirAll(docs, 0750))

	cfg := &config.Config{
		AllowedDirectories: []string{docs},
		AllowedPatterns:    []string{"*.md"},
	}
	v := newValidator(t, cfg)

	d := v.ValidatePath("~/docs/plan.md")
	assert.True(t, d.Allowed)
	assert.Equal(t, filepath.Join(docs, "plan.md"), d.Path)
}

func TestValidatePath_DotDotCanonicalized(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	cfg := &config.Config{
		AllowedDirectories: []string{root},
		AllowedPatterns:    []string{"*.md"},
	}
	v := newValidator(t, cfg)

	d := v.ValidatePath(filepath.Join(root, "sub", "..", "plan.md"))
	assert.True(t, d.Allowed)
	assert.Equal(t, filepath.Join(root, "plan.md"), d.Path)
	assert.NotContains(t, d.Path, "..")
}

// Escaping an allowed directory through .. components must be caught by
// canonicalization before the containment check.
func TestValidatePath_DotDotEscapeDenied(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	cfg := &config.Config{
		AllowedDirectories: []string{filepath.Join(root, "inside")},
		AllowedPatterns:    []string{"*.md"},
	}
	v := newValidator(t, cfg)

	d := v.ValidatePath(filepath.Join(root, "inside", "..", "outside.md"))
	assert.False(t, d.Allowed)
	assert.Contains(t, d.Reason, "outside the allowed directories")
}

func TestValidatePath_SizeCap(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	big := filepath.Join(root, "big.md")
	require.NoError(t, os.WriteFile(big, bytes.Repeat([]byte("a"), 1<<20+1), 0600))

	cfg := &config.Config{
		AllowedDirectories: []string{root},
		AllowedPatterns:    []string{"*.md"},
		MaxFileSizeMB:      1,
	}
	v := newValidator(t, cfg)

	d := v.ValidatePath(big)
	assert.False(t, d.Allowed)
	assert.Contains(t, d.Reason, "exceeds")
}

func TestValidateDirectory(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	crowded := filepath.Join(root, "crowded")
	require.NoError(t, os.MkdirAll(crowded, 0750))
	for i := 0; i < 4; i++ {
		name := filepath.Join(crowded, "f"+strconv.Itoa(i)+".md")
		require.NoError(t, os.WriteFile(name, []byte("x"), 0600))
	}

	cfg := &config.Config{
		AllowedDirectories:   []string{root},
		AllowedPatterns:      []string{"*.md"},
		MaxFilesPerDirectory: 3,
	}
	v := newValidator(t, cfg)

	t.Run("existing directory under cap", func(t *testing.T) {
		t.Parallel()
		empty := filepath.Join(root, "empty")
		require.NoError(t, os.MkdirAll(empty, 0750))

		d := v.ValidateDirectory(empty)
		assert.True(t, d.Allowed)
		assert.Equal(t, empty, d.Path)
	})

	t.Run("too many entries", func(t *testing.T) {
		t.Parallel()
		d := v.ValidateDirectory(crowded)
		assert.False(t, d.Allowed)
		assert.Contains(t, d.Reason, "exceeds the limit of 3")
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		d := v.ValidateDirectory(filepath.Join(root, "nope"))
		assert.False(t, d.Allowed)
		assert.Contains(t, d.Reason, "cannot access directory")
	})

	t.Run("file is not a directory", func(t *testing.T) {
		t.Parallel()
		f := filepath.Join(root, "plain.md")
		require.NoError(t, os.WriteFile(f, []byte("x"), 0600))

		d := v.ValidateDirectory(f)
		assert.False(t, d.Allowed)
		assert.Contains(t, d.Reason, "not a directory")
	})

	t.Run("outside allowed directories", func(t *testing.T) {
		t.Parallel()
		d := v.ValidateDirectory("/var/elsewhere")
		assert.False(t, d.Allowed)
		assert.Contains(t, d.Reason, "outside the allowed directories")
	})
}

func TestResolveReturnsAbsolute(t *testing.T) {
	t.Parallel()

	p, err := allowlist.Resolve("relative/notes.md")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(p))
}

func TestFromStore(t *testing.T) {
	t.Parallel()

	t.Run("missing config denies with hint", func(t *testing.T) {
		t.Parallel()
		store := config.NewLocalStore(filepath.Join(t.TempDir(), "allowlist.yaml"))

		v, err := allowlist.FromStore(store)
		require.NoError(t, err)
		assert.Nil(t, v.Config())

		d := v.ValidatePath("/tmp/x.md")
		assert.False(t, d.Allowed)
		assert.Contains(t, d.Hint, "kgmcp allowlist init")
	})

	t.Run("existing config is compiled", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		store := config.NewLocalStore(filepath.Join(root, "allowlist.yaml"))
		require.NoError(t, store.Save(&config.Config{
			AllowedDirectories: []string{root},
			AllowedPatterns:    []string{"*.md"},
		}))

		v, err := allowlist.FromStore(store)
		require.NoError(t, err)
		require.NotNil(t, v.Config())

		assert.True(t, v.ValidatePath(filepath.Join(root, "a.md")).Allowed)
	})
}
