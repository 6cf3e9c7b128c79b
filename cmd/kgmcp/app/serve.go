// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kgfoundry/kgmcp/pkg/allowlist"
	"github.com/kgfoundry/kgmcp/pkg/auth"
	"github.com/kgfoundry/kgmcp/pkg/config"
	"github.com/kgfoundry/kgmcp/pkg/kgclient"
	"github.com/kgfoundry/kgmcp/pkg/logger"
	"github.com/kgfoundry/kgmcp/pkg/mcp/server"
)

var serveAPIURL string

// newServeCmd creates the 'serve' subcommand
func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server on stdio",
		Long: `Start the MCP (Model Context Protocol) server. It reads requests on stdin
and writes responses to stdout, so it is meant to be launched by an MCP
host rather than run interactively. The process exits cleanly when the
host closes the stream.

The backend location comes from --api-url or the KG_API_URL environment
variable. When KG_OAUTH_CLIENT_ID and KG_OAUTH_CLIENT_SECRET are both set
the server authenticates against the backend's token endpoint; otherwise
every request goes out unauthenticated.`,
		RunE: serveCmdFunc,
	}

	cmd.Flags().StringVar(&serveAPIURL, "api-url", kgclient.BaseURLFromEnv(),
		"Base URL of the knowledge-graph API (can also be set via KG_API_URL env var)")

	return cmd
}

// serveCmdFunc is the main function for the serve command
func serveCmdFunc(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Acquire a token when credentials are configured. A missing or failing
	// credential never blocks startup: the backend decides what anonymous
	// callers may do.
	var opts []kgclient.Option
	if authCfg, ok := auth.FromEnv(serveAPIURL); ok {
		manager := auth.NewManager(authCfg)
		if err := manager.Initialize(ctx); err != nil {
			logger.Warnf("OAuth token acquisition failed, continuing unauthenticated: %v", err)
		}
		defer manager.Close()
		opts = append(opts, kgclient.WithTokenSource(manager))
	} else {
		logger.Info("OAuth credentials not configured, connecting unauthenticated")
	}

	backend, err := kgclient.New(serveAPIURL, opts...)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	store, err := config.NewDefaultStore()
	if err != nil {
		return fmt.Errorf("failed to resolve allowlist location: %w", err)
	}
	validator, err := allowlist.FromStore(store)
	if err != nil {
		return fmt.Errorf("failed to load ingestion allowlist: %w", err)
	}
	if validator.Config() == nil {
		logger.Warnf("No ingestion allowlist at %s, file ingestion is disabled until one is created",
			validator.ConfigPath())
	}

	logger.Infof("Connecting to knowledge-graph API at %s", serveAPIURL)
	return server.New(backend, validator).Serve()
}
