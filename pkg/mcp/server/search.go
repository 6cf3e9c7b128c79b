// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kgfoundry/kgmcp/pkg/format"
	"github.com/kgfoundry/kgmcp/pkg/kgclient"
)

// searchArgs covers all three search types; fields irrelevant to a type
// are ignored by its handler.
type searchArgs struct {
	Query            string   `json:"query"`
	Type             string   `json:"type,omitempty"`
	Limit            *int     `json:"limit,omitempty"`
	MinSimilarity    *float64 `json:"min_similarity,omitempty"`
	Offset           *int     `json:"offset,omitempty"`
	Ontology         string   `json:"ontology,omitempty"`
	IncludeGrounding *bool    `json:"include_grounding,omitempty"`
	IncludeEvidence  *bool    `json:"include_evidence,omitempty"`
	IncludeDiversity *bool    `json:"include_diversity,omitempty"`
	DiversityMaxHops *int     `json:"diversity_max_hops,omitempty"`
	IncludeConcepts  *bool    `json:"include_concepts,omitempty"`
	IncludeFullText  *bool    `json:"include_full_text,omitempty"`
}

func (h *Handler) searchConcepts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &searchArgs{}
	if errResult := bindArguments(request, args); errResult != nil {
		return errResult, nil
	}
	if args.Query == "" {
		return validationError("Missing required argument: query"), nil
	}

	resp, err := h.backend.SearchConcepts(ctx, &kgclient.SearchRequest{
		Query:            args.Query,
		Limit:            orInt(args.Limit, 10),
		MinSimilarity:    orFloat(args.MinSimilarity, 0.7),
		Offset:           orInt(args.Offset, 0),
		IncludeEvidence:  orBool(args.IncludeEvidence, true),
		IncludeGrounding: orBool(args.IncludeGrounding, true),
		IncludeDiversity: orBool(args.IncludeDiversity, true),
		DiversityMaxHops: orInt(args.DiversityMaxHops, 2),
	})
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.ConceptSearch(resp)), nil
}

func (h *Handler) searchSources(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &searchArgs{}
	if errResult := bindArguments(request, args); errResult != nil {
		return errResult, nil
	}
	if args.Query == "" {
		return validationError("Missing required argument: query"), nil
	}

	resp, err := h.backend.SearchSources(ctx, &kgclient.SourceSearchRequest{
		Query:           args.Query,
		Limit:           orInt(args.Limit, 10),
		MinSimilarity:   orFloat(args.MinSimilarity, 0.7),
		Ontology:        args.Ontology,
		IncludeConcepts: orBool(args.IncludeConcepts, true),
		IncludeFullText: orBool(args.IncludeFullText, true),
	})
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.SourceSearch(resp)), nil
}

func (h *Handler) searchDocuments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &searchArgs{}
	if errResult := bindArguments(request, args); errResult != nil {
		return errResult, nil
	}
	if args.Query == "" {
		return validationError("Missing required argument: query"), nil
	}

	resp, err := h.backend.SearchDocuments(ctx, &kgclient.DocumentSearchRequest{
		Query:         args.Query,
		MinSimilarity: orFloat(args.MinSimilarity, 0.7),
		Limit:         orInt(args.Limit, 10),
		Ontology:      args.Ontology,
	})
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.DocumentSearch(resp)), nil
}
