// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kgfoundry/kgmcp/pkg/config"
)

// newAllowlistCmd creates the 'allowlist' command group
func newAllowlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allowlist",
		Short: "Manage the ingestion path allowlist",
		Long: `Manage the allowlist that gates file and directory ingestion.

The MCP server refuses to ingest any path that does not resolve into one
of the allowed directories, so ingestion is disabled until this file
exists. The file is read at server startup; restart the server after
editing it.`,
	}

	cmd.AddCommand(newAllowlistInitCmd())
	cmd.AddCommand(newAllowlistShowCmd())
	cmd.AddCommand(newAllowlistPathCmd())

	return cmd
}

// newAllowlistInitCmd creates the 'allowlist init' subcommand
func newAllowlistInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a starter allowlist file",
		Long: `Write a commented starter allowlist allowing the current directory and
~/Documents, with conservative pattern and size limits. Fails if the file
already exists; edit it in place instead.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := config.NewDefaultStore()
			if err != nil {
				return err
			}
			path, err := store.Path()
			if err != nil {
				return err
			}
			exists, err := store.Exists()
			if err != nil {
				return err
			}
			if exists {
				return fmt.Errorf("allowlist already exists at %s", path)
			}

			cfg := config.DefaultConfig()
			if cwd, err := os.Getwd(); err == nil {
				cfg.AllowedDirectories = append(cfg.AllowedDirectories, cwd)
			}
			cfg.AllowedDirectories = append(cfg.AllowedDirectories, "~/Documents")

			if err := store.SaveStarter(cfg); err != nil {
				return err
			}
			fmt.Printf("Created %s\n", path)
			fmt.Println("Edit allowed_directories to control what may be ingested, then restart the server.")
			return nil
		},
	}
}

// newAllowlistShowCmd creates the 'allowlist show' subcommand
func newAllowlistShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective allowlist configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := config.NewDefaultStore()
			if err != nil {
				return err
			}
			path, err := store.Path()
			if err != nil {
				return err
			}
			cfg, err := store.Load()
			if err != nil {
				if errors.Is(err, config.ErrNotInitialized) {
					return fmt.Errorf("no allowlist at %s, run 'kgmcp allowlist init' to create one", path)
				}
				return err
			}

			out, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to render allowlist: %w", err)
			}
			fmt.Printf("# %s\n%s", path, out)
			return nil
		},
	}
}

// newAllowlistPathCmd creates the 'allowlist path' subcommand
func newAllowlistPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the allowlist file location",
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := config.NewDefaultStore()
			if err != nil {
				return err
			}
			path, err := store.Path()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
}
