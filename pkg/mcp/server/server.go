// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/kgfoundry/kgmcp/pkg/allowlist"
	"github.com/kgfoundry/kgmcp/pkg/logger"
	"github.com/kgfoundry/kgmcp/pkg/versions"
)

const serverInstructions = `kgmcp exposes a knowledge graph built from ingested documents. Start with the search tool to find concepts, then concept (details/related/connect) to follow evidence and relationships. Long-running work (ingestion, measurements, polarity analysis) returns a job id; poll it with the job tool. File and directory ingestion is restricted to an operator-configured allowlist; read kg://mcp/allowed-paths to see it.`

// Server is the stdio MCP server for the knowledge-graph backend.
type Server struct {
	mcpServer *server.MCPServer
	handler   *Handler
}

// New assembles the MCP server: tool dispatch, resources and the
// exploration prompt, all backed by the given client.
func New(backend Backend, allow *allowlist.Validator) *Server {
	versionInfo := versions.GetVersionInfo()
	mcpServer := server.NewMCPServer(
		"kgmcp",
		versionInfo.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithPromptCapabilities(true),
		server.WithLogging(),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions),
	)

	handler := NewHandler(backend, allow)
	registerTools(mcpServer, handler)
	registerResources(mcpServer, handler)
	registerPrompts(mcpServer)

	return &Server{
		mcpServer: mcpServer,
		handler:   handler,
	}
}

// Serve runs the line-delimited JSON-RPC loop on stdin/stdout until the
// transport closes. Logs go to stderr only; stdout carries nothing but
// protocol frames.
func (s *Server) Serve() error {
	logger.Infof("Starting kgmcp MCP server (version %s)", versions.GetVersionInfo().Version)
	return server.ServeStdio(s.mcpServer)
}
