// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// lockTimeout is the maximum time to wait for the allowlist file lock.
const lockTimeout = 1 * time.Second

// ErrNotInitialized is returned by Load when no allowlist file exists.
var ErrNotInitialized = errors.New("allowlist not initialized")

// Store defines the interface for allowlist storage operations.
type Store interface {
	// Path returns the location the store reads from and writes to.
	Path() (string, error)
	// Load loads the configuration. A missing file yields
	// ErrNotInitialized.
	Load() (*Config, error)
	// Save persists the configuration, creating parent directories as
	// needed.
	Save(config *Config) error
	// Exists reports whether a configuration file is present.
	Exists() (bool, error)
}

// LocalStore implements Store using the local file system.
type LocalStore struct {
	configPath string
}

// NewLocalStore creates a file-based allowlist store. An empty path means
// the default location.
func NewLocalStore(configPath string) *LocalStore {
	return &LocalStore{configPath: configPath}
}

// NewDefaultStore creates a store at the default allowlist location.
func NewDefaultStore() (*LocalStore, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return NewLocalStore(path), nil
}

// Path returns the resolved allowlist file location.
func (s *LocalStore) Path() (string, error) {
	if s.configPath != "" {
		return filepath.Clean(s.configPath), nil
	}
	return DefaultPath()
}

// Load loads the allowlist configuration from the local file.
func (s *LocalStore) Load() (*Config, error) {
	configPath, err := s.Path()
	if err != nil {
		return nil, err
	}

	// #nosec G304: the path comes from the user's own configuration.
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotInitialized, configPath)
		}
		return nil, fmt.Errorf("unable to read allowlist file %s: %w", configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse allowlist file yaml: %w", err)
	}
	return &config, nil
}

// Save persists the allowlist configuration, serializing writers through a
// lock file next to the config.
func (s *LocalStore) Save(config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing allowlist file: %w", err)
	}
	return s.write(data)
}

// SaveStarter writes the commented starter rendering of config. Used by
// `kgmcp allowlist init`; parses back identically to a Save of the same
// config.
func (s *LocalStore) SaveStarter(config *Config) error {
	return s.write(StarterYAML(config))
}

func (s *LocalStore) write(data []byte) error {
	configPath, err := s.Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Use a separate lock file for cross-platform compatibility.
	lockPath := configPath + ".lock"
	fileLock := flock.New(lockPath)
	lockCtx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	locked, err := fileLock.TryLockContext(lockCtx, 100*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("failed to acquire lock: timeout after %v", lockTimeout)
	}
	defer fileLock.Unlock()

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("error writing allowlist file: %w", err)
	}
	return nil
}

// Exists checks whether the allowlist file is present.
func (s *LocalStore) Exists() (bool, error) {
	configPath, err := s.Path()
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(configPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat allowlist file: %w", err)
	}
	return true, nil
}
