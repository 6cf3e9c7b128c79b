// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kgfoundry/kgmcp/pkg/format"
	"github.com/kgfoundry/kgmcp/pkg/kgclient"
)

type conceptArgs struct {
	Action                 string   `json:"action"`
	ConceptID              string   `json:"concept_id,omitempty"`
	IncludeGrounding       *bool    `json:"include_grounding,omitempty"`
	IncludeDiversity       *bool    `json:"include_diversity,omitempty"`
	DiversityMaxHops       *int     `json:"diversity_max_hops,omitempty"`
	TruncateEvidence       *bool    `json:"truncate_evidence,omitempty"`
	RelationshipTypes      []string `json:"relationship_types,omitempty"`
	MaxDepth               *int     `json:"max_depth,omitempty"`
	ConnectionMode         string   `json:"connection_mode,omitempty"`
	FromID                 string   `json:"from_id,omitempty"`
	ToID                   string   `json:"to_id,omitempty"`
	FromQuery              string   `json:"from_query,omitempty"`
	ToQuery                string   `json:"to_query,omitempty"`
	MaxHops                *int     `json:"max_hops,omitempty"`
	Threshold              *float64 `json:"threshold,omitempty"`
	IncludeEvidence        *bool    `json:"include_evidence,omitempty"`
	IncludeEpistemicStatus []string `json:"include_epistemic_status,omitempty"`
	ExcludeEpistemicStatus []string `json:"exclude_epistemic_status,omitempty"`
}

func (h *Handler) conceptDetails(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &conceptArgs{}
	if errResult := bindArguments(request, args); errResult != nil {
		return errResult, nil
	}
	if args.ConceptID == "" {
		return validationError("Missing required argument: concept_id"), nil
	}

	details, err := h.backend.GetConceptDetails(ctx, args.ConceptID, kgclient.ConceptDetailsOptions{
		IncludeGrounding: orBool(args.IncludeGrounding, true),
		IncludeDiversity: orBool(args.IncludeDiversity, false),
		DiversityMaxHops: orInt(args.DiversityMaxHops, 2),
	})
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.ConceptDetails(details, orBool(args.TruncateEvidence, true))), nil
}

func (h *Handler) conceptRelated(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &conceptArgs{}
	if errResult := bindArguments(request, args); errResult != nil {
		return errResult, nil
	}
	if args.ConceptID == "" {
		return validationError("Missing required argument: concept_id"), nil
	}

	resp, err := h.backend.FindRelatedConcepts(ctx, &kgclient.RelatedRequest{
		ConceptID:              args.ConceptID,
		RelationshipTypes:      args.RelationshipTypes,
		MaxDepth:               orInt(args.MaxDepth, 2),
		IncludeEpistemicStatus: args.IncludeEpistemicStatus,
		ExcludeEpistemicStatus: args.ExcludeEpistemicStatus,
	})
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.RelatedConcepts(resp)), nil
}

func (h *Handler) conceptConnect(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &conceptArgs{}
	if errResult := bindArguments(request, args); errResult != nil {
		return errResult, nil
	}

	switch mode := orString(args.ConnectionMode, "semantic"); mode {
	case "exact":
		return h.connectExact(ctx, args)
	case "semantic":
		return h.connectSemantic(ctx, args)
	default:
		return validationError(fmt.Sprintf("Unknown connection_mode: %s", mode)), nil
	}
}

func (h *Handler) connectExact(ctx context.Context, args *conceptArgs) (*mcp.CallToolResult, error) {
	if args.FromID == "" || args.ToID == "" {
		return validationError("Exact connection mode requires from_id and to_id"), nil
	}

	resp, err := h.backend.FindConnection(ctx, &kgclient.ConnectionRequest{
		FromID:                 args.FromID,
		ToID:                   args.ToID,
		MaxHops:                orInt(args.MaxHops, 3),
		IncludeEvidence:        orBool(args.IncludeEvidence, true),
		IncludeGrounding:       orBool(args.IncludeGrounding, true),
		IncludeEpistemicStatus: args.IncludeEpistemicStatus,
		ExcludeEpistemicStatus: args.ExcludeEpistemicStatus,
	})
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.Connection(resp)), nil
}

func (h *Handler) connectSemantic(ctx context.Context, args *conceptArgs) (*mcp.CallToolResult, error) {
	if args.FromQuery == "" || args.ToQuery == "" {
		return validationError("Semantic connection mode requires from_query and to_query"), nil
	}

	resp, err := h.backend.FindConnectionBySearch(ctx, &kgclient.ConnectionSearchRequest{
		FromQuery:              args.FromQuery,
		ToQuery:                args.ToQuery,
		MaxHops:                orInt(args.MaxHops, 3),
		Threshold:              orFloat(args.Threshold, 0.75),
		IncludeEvidence:        orBool(args.IncludeEvidence, true),
		IncludeGrounding:       orBool(args.IncludeGrounding, true),
		IncludeEpistemicStatus: args.IncludeEpistemicStatus,
		ExcludeEpistemicStatus: args.ExcludeEpistemicStatus,
	})
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.ConnectionBySearch(resp)), nil
}
