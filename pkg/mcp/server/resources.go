// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kgfoundry/kgmcp/pkg/format"
)

// registerResources declares the read-only kg:// resources. All bodies
// are rendered prose; the allowed-paths resource is answered from local
// configuration without touching the backend.
//
// The list advertises application/json to match the backend endpoints the
// resources wrap, but bodies are served as text/plain prose.
func registerResources(mcpServer *server.MCPServer, handler *Handler) {
	register := func(uri, name, description string, render func(ctx context.Context) (string, error)) {
		mcpServer.AddResource(mcp.Resource{
			URI:         uri,
			Name:        name,
			Description: description,
			MIMEType:    "application/json",
		}, func(ctx context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			text, err := render(ctx)
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", uri, err)
			}
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      uri,
					MIMEType: "text/plain",
					Text:     text,
				},
			}, nil
		})
	}

	register("kg://database/stats", "Database Statistics",
		"Node and relationship counts by type",
		func(ctx context.Context) (string, error) {
			resp, err := handler.backend.GetDatabaseStats(ctx)
			if err != nil {
				return "", err
			}
			return format.DatabaseStats(resp), nil
		})

	register("kg://database/info", "Database Info",
		"Graph database edition, version and connection details",
		func(ctx context.Context) (string, error) {
			resp, err := handler.backend.GetDatabaseInfo(ctx)
			if err != nil {
				return "", err
			}
			return format.DatabaseInfo(resp), nil
		})

	register("kg://database/health", "Database Health",
		"Graph database connectivity check",
		func(ctx context.Context) (string, error) {
			resp, err := handler.backend.GetDatabaseHealth(ctx)
			if err != nil {
				return "", err
			}
			return format.DatabaseHealth(resp), nil
		})

	register("kg://system/status", "System Status",
		"Docker, database and environment status of the backend deployment",
		func(ctx context.Context) (string, error) {
			resp, err := handler.backend.GetSystemStatus(ctx)
			if err != nil {
				return "", err
			}
			return format.SystemStatus(resp), nil
		})

	register("kg://api/health", "API Health",
		"Backend API health, job queue depth and background workers",
		func(ctx context.Context) (string, error) {
			resp, err := handler.backend.GetAPIHealth(ctx)
			if err != nil {
				return "", err
			}
			return format.APIHealth(resp), nil
		})

	register("kg://mcp/allowed-paths", "Allowed Ingestion Paths",
		"Directories and patterns this server may ingest from",
		func(_ context.Context) (string, error) {
			return format.AllowedPaths(handler.allow.Config(), handler.allow.ConfigPath()), nil
		})
}
