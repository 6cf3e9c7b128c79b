// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package config loads and persists the ingestion allowlist configuration.
// The file lives under the user's XDG config directory by default and is
// only ever created explicitly; a missing file is reported as
// ErrNotInitialized rather than silently materialized with defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/adrg/xdg"
)

// PathEnvVar overrides the default allowlist file location when set.
const PathEnvVar = "KGMCP_ALLOWLIST_FILE"

// Config describes which parts of the local filesystem may be ingested.
type Config struct {
	// AllowedDirectories are the roots that ingestion paths must resolve
	// into. Entries may use ~ for the home directory.
	AllowedDirectories []string `yaml:"allowed_directories"`
	// AllowedPatterns are glob patterns (matched against the base name)
	// that a file must match, e.g. "*.md". Empty means any name.
	AllowedPatterns []string `yaml:"allowed_patterns,omitempty"`
	// BlockedPatterns are glob patterns that always deny a file, checked
	// before anything else.
	BlockedPatterns []string `yaml:"blocked_patterns,omitempty"`
	// MaxFileSizeMB caps the size of a single ingested file. Zero means
	// no limit.
	MaxFileSizeMB int64 `yaml:"max_file_size_mb,omitempty"`
	// MaxFilesPerDirectory caps the entry count of an ingested directory.
	// Zero means no limit.
	MaxFilesPerDirectory int `yaml:"max_files_per_directory,omitempty"`
}

// DefaultConfig returns the starter configuration written by
// `kgmcp allowlist init`. It allows nothing until the user adds
// directories, but ships sensible pattern and size limits.
func DefaultConfig() *Config {
	return &Config{
		AllowedDirectories:   []string{},
		AllowedPatterns:      []string{"*.md", "*.txt", "*.pdf", "*.png", "*.jpg", "*.jpeg"},
		BlockedPatterns:      []string{".*", "*.key", "*.pem", "*.env"},
		MaxFileSizeMB:        50,
		MaxFilesPerDirectory: 1000,
	}
}

// DefaultPath returns the allowlist file location: the PathEnvVar
// override when set, otherwise the XDG config location.
func DefaultPath() (string, error) {
	if path := os.Getenv(PathEnvVar); path != "" {
		return path, nil
	}
	path, err := xdg.ConfigFile("kgmcp/allowlist.yaml")
	if err != nil {
		return "", fmt.Errorf("unable to resolve allowlist path: %w", err)
	}
	return path, nil
}

// StarterYAML renders cfg as a commented YAML document. `kgmcp allowlist
// init` writes this instead of a bare marshal so the file explains itself
// when the user opens it to add directories.
func StarterYAML(cfg *Config) []byte {
	var b strings.Builder
	b.WriteString("# kgmcp ingestion allowlist.\n")
	b.WriteString("#\n")
	b.WriteString("# File and directory ingestion is refused unless the path resolves into\n")
	b.WriteString("# one of the directories below. Patterns match the file's base name;\n")
	b.WriteString("# blocked patterns win over allowed ones.\n\n")

	b.WriteString("# Directories whose files may be ingested. Entries may use ~ for the\n")
	b.WriteString("# home directory.\n")
	writeList(&b, "allowed_directories", cfg.AllowedDirectories)

	b.WriteString("\n# A file must match one of these patterns to be ingested.\n")
	writeList(&b, "allowed_patterns", cfg.AllowedPatterns)

	b.WriteString("\n# Never ingested, even inside an allowed directory.\n")
	writeList(&b, "blocked_patterns", cfg.BlockedPatterns)

	if cfg.MaxFileSizeMB > 0 {
		b.WriteString("\n# Per-file size cap in megabytes.\n")
		fmt.Fprintf(&b, "max_file_size_mb: %d\n", cfg.MaxFileSizeMB)
	}
	if cfg.MaxFilesPerDirectory > 0 {
		b.WriteString("\n# Maximum number of files accepted from one directory.\n")
		fmt.Fprintf(&b, "max_files_per_directory: %d\n", cfg.MaxFilesPerDirectory)
	}
	return []byte(b.String())
}

func writeList(b *strings.Builder, key string, values []string) {
	if len(values) == 0 {
		fmt.Fprintf(b, "%s: []\n", key)
		return
	}
	fmt.Fprintf(b, "%s:\n", key)
	for _, v := range values {
		fmt.Fprintf(b, "  - %q\n", v)
	}
}
