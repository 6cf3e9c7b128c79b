// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const exploreGraphText = `You are connected to a knowledge graph through the kgmcp tools. A good exploration session:

1. Orient yourself. List the ontologies (ontology action=list) and read the database statistics resource to see how much is loaded.
2. Search before you create. Use the search tool (type=concepts) to find existing concepts for your topic. Lower min_similarity to 0.5 if nothing comes back.
3. Follow the evidence. Fetch promising concepts with concept action=details and read the cited sources. Use the source tool to pull a passage's full text when a quote looks important.
4. Map the neighborhood. concept action=related walks outward from a concept; concept action=connect finds paths between two concepts, either by id (connection_mode=exact) or by description (connection_mode=semantic).
5. Mind the grounding. Concepts marked Contested or Unexplored have weak or conflicting source support; prefer Well-supported concepts when drawing conclusions, and say so when you rely on weaker ones.
6. Extend carefully. Add missing knowledge with ingest (text or allowed local files) or targeted graph mutations. Queue related graph edits together (graph action=queue) so they apply in order.

Report what you found, what the evidence supports, and where the graph is thin.`

// registerPrompts declares the static exploration prompt.
func registerPrompts(mcpServer *server.MCPServer) {
	mcpServer.AddPrompt(mcp.NewPrompt("explore-graph",
		mcp.WithPromptDescription("A guided workflow for exploring the knowledge graph with these tools"),
	), func(_ context.Context, _ mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return &mcp.GetPromptResult{
			Description: "Knowledge-graph exploration workflow",
			Messages: []mcp.PromptMessage{
				{
					Role:    "assistant",
					Content: mcp.NewTextContent(exploreGraphText),
				},
			},
		}, nil
	})
}
