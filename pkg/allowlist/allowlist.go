// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package allowlist validates filesystem paths offered for ingestion
// against the operator-configured allowlist.
//
// Validation order matters: blocked patterns are checked before anything
// else and always win over allowed patterns. Only resolved absolute paths
// leave this package; a relative path is never forwarded downstream.
package allowlist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/kgfoundry/kgmcp/pkg/config"
)

// InitHint points users at the command that creates the configuration.
const InitHint = "Run 'kgmcp allowlist init' to create one."

// Decision is the outcome of validating a single path.
type Decision struct {
	// Allowed reports whether the path may be forwarded to the backend.
	Allowed bool

	// Path is the resolved absolute path. Callers must use it, not the
	// raw input, for the backend call and in responses.
	Path string

	// Reason explains a denial in human-readable form.
	Reason string

	// Hint optionally suggests how to fix a denial.
	Hint string
}

// Validator checks paths against a compiled allowlist configuration.
type Validator struct {
	cfg        *config.Config
	configPath string
	dirs       []string
	allowed    []compiledPattern
	blocked    []compiledPattern
}

type compiledPattern struct {
	raw string
	g   glob.Glob
}

// New creates a Validator for the given configuration. A nil config means
// the allowlist was never initialized; every path is denied with InitHint.
func New(cfg *config.Config, configPath string) (*Validator, error) {
	v := &Validator{cfg: cfg, configPath: configPath}
	if cfg == nil {
		return v, nil
	}

	var err error
	if v.allowed, err = compilePatterns(cfg.AllowedPatterns); err != nil {
		return nil, err
	}
	if v.blocked, err = compilePatterns(cfg.BlockedPatterns); err != nil {
		return nil, err
	}

	// Allowed directories may be written with a leading ~ by hand-edited
	// configs; resolve them once here.
	for _, dir := range cfg.AllowedDirectories {
		abs, err := Resolve(dir)
		if err != nil {
			return nil, fmt.Errorf("invalid allowed directory %q: %w", dir, err)
		}
		v.dirs = append(v.dirs, abs)
	}
	return v, nil
}

// FromStore builds a Validator from an allowlist store. A missing
// configuration yields a validator that denies every path with InitHint.
func FromStore(store config.Store) (*Validator, error) {
	path, err := store.Path()
	if err != nil {
		return nil, err
	}
	cfg, err := store.Load()
	if err != nil {
		if errors.Is(err, config.ErrNotInitialized) {
			return New(nil, path)
		}
		return nil, err
	}
	return New(cfg, path)
}

func compilePatterns(patterns []string) ([]compiledPattern, error) {
	out := make([]compiledPattern, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid allowlist pattern %q: %w", p, err)
		}
		out = append(out, compiledPattern{raw: p, g: g})
	}
	return out, nil
}

// Config returns the loaded configuration, or nil when uninitialized.
func (v *Validator) Config() *config.Config {
	return v.cfg
}

// ConfigPath returns the location of the allowlist configuration file.
func (v *Validator) ConfigPath() string {
	return v.configPath
}

// Resolve expands a leading ~ against the home directory and canonicalizes
// the result to an absolute path with all ".." components removed.
func Resolve(raw string) (string, error) {
	p := raw
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand ~: %w", err)
		}
		p = filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("cannot resolve %q: %w", raw, err)
	}
	return filepath.Clean(abs), nil
}

// ValidatePath validates a single file path against the allowlist.
func (v *Validator) ValidatePath(raw string) Decision {
	d, abs, ok := v.preamble(raw)
	if !ok {
		return d
	}

	if d, ok := v.checkPatternsAndContainment(abs); !ok {
		return d
	}

	if info, err := os.Stat(abs); err == nil && info.Mode().IsRegular() && v.cfg.MaxFileSizeMB > 0 {
		if info.Size() > v.cfg.MaxFileSizeMB*1024*1024 {
			return Decision{
				Path:   abs,
				Reason: fmt.Sprintf("file is %d bytes, which exceeds the %d MB limit", info.Size(), v.cfg.MaxFileSizeMB),
			}
		}
	}

	return Decision{Allowed: true, Path: abs}
}

// ValidateDirectory validates a directory path against the allowlist.
// The allowed-pattern check is skipped: patterns describe files, and the
// files inside the directory are validated individually at ingest time.
func (v *Validator) ValidateDirectory(raw string) Decision {
	d, abs, ok := v.preamble(raw)
	if !ok {
		return d
	}

	for _, p := range v.blocked {
		if p.g.Match(abs) || p.g.Match(filepath.Base(abs)) {
			return Decision{
				Path:   abs,
				Reason: fmt.Sprintf("path not allowed: matches blocked pattern %q", p.raw),
			}
		}
	}

	if len(v.dirs) > 0 && !v.underAllowedDir(abs) {
		return v.denyOutsideDirs(abs)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return Decision{Path: abs, Reason: fmt.Sprintf("cannot access directory: %v", err)}
	}
	if !info.IsDir() {
		return Decision{Path: abs, Reason: "not a directory"}
	}

	if v.cfg.MaxFilesPerDirectory > 0 {
		entries, err := os.ReadDir(abs)
		if err != nil {
			return Decision{Path: abs, Reason: fmt.Sprintf("cannot read directory: %v", err)}
		}
		if len(entries) > v.cfg.MaxFilesPerDirectory {
			return Decision{
				Path:   abs,
				Reason: fmt.Sprintf("directory holds %d entries, which exceeds the limit of %d", len(entries), v.cfg.MaxFilesPerDirectory),
			}
		}
	}

	return Decision{Allowed: true, Path: abs}
}

// preamble handles the shared uninitialized-config and resolution steps.
func (v *Validator) preamble(raw string) (Decision, string, bool) {
	if v.cfg == nil {
		return Decision{
			Path:   raw,
			Reason: "no ingestion allowlist is configured",
			Hint:   InitHint,
		}, "", false
	}

	abs, err := Resolve(raw)
	if err != nil {
		return Decision{Path: raw, Reason: err.Error()}, "", false
	}
	return Decision{}, abs, true
}

func (v *Validator) checkPatternsAndContainment(abs string) (Decision, bool) {
	base := filepath.Base(abs)

	// Blocked wins over allowed.
	for _, p := range v.blocked {
		if p.g.Match(abs) || p.g.Match(base) {
			return Decision{
				Path:   abs,
				Reason: fmt.Sprintf("path not allowed: matches blocked pattern %q", p.raw),
			}, false
		}
	}

	if len(v.dirs) > 0 && !v.underAllowedDir(abs) {
		return v.denyOutsideDirs(abs), false
	}

	if len(v.allowed) > 0 {
		matched := false
		for _, p := range v.allowed {
			if p.g.Match(abs) || p.g.Match(base) {
				matched = true
				break
			}
		}
		if !matched {
			return Decision{
				Path:   abs,
				Reason: "path not allowed: no allowed pattern matches",
				Hint:   fmt.Sprintf("Allowed patterns: %s", strings.Join(v.cfg.AllowedPatterns, ", ")),
			}, false
		}
	}

	return Decision{}, true
}

func (v *Validator) underAllowedDir(abs string) bool {
	for _, dir := range v.dirs {
		if abs == dir || strings.HasPrefix(abs, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (v *Validator) denyOutsideDirs(abs string) Decision {
	return Decision{
		Path:   abs,
		Reason: "path not allowed: outside the allowed directories",
		Hint:   fmt.Sprintf("Allowed directories: %s", strings.Join(v.dirs, ", ")),
	}
}
