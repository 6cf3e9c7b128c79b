// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kgfoundry/kgmcp/pkg/format"
	"github.com/kgfoundry/kgmcp/pkg/kgclient"
)

type artifactArgs struct {
	Action       string `json:"action"`
	ArtifactID   *int   `json:"artifact_id,omitempty"`
	ArtifactType string `json:"artifact_type,omitempty"`
	Ontology     string `json:"ontology,omitempty"`
	Limit        *int   `json:"limit,omitempty"`
	Offset       *int   `json:"offset,omitempty"`
}

func bindArtifactArgs(request mcp.CallToolRequest, needID bool) (*artifactArgs, *mcp.CallToolResult) {
	args := &artifactArgs{}
	if errResult := bindArguments(request, args); errResult != nil {
		return nil, errResult
	}
	if needID && args.ArtifactID == nil {
		return nil, validationError("Missing required argument: artifact_id")
	}
	return args, nil
}

func (h *Handler) artifactList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, errResult := bindArtifactArgs(request, false)
	if errResult != nil {
		return errResult, nil
	}
	resp, err := h.backend.ListArtifacts(ctx, kgclient.ArtifactFilters{
		ArtifactType: args.ArtifactType,
		Ontology:     args.Ontology,
		Limit:        orInt(args.Limit, 50),
		Offset:       orInt(args.Offset, 0),
	})
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.ArtifactList(resp)), nil
}

func (h *Handler) artifactShow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, errResult := bindArtifactArgs(request, true)
	if errResult != nil {
		return errResult, nil
	}
	resp, err := h.backend.GetArtifact(ctx, *args.ArtifactID)
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.ArtifactDetail(resp)), nil
}

func (h *Handler) artifactPayload(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, errResult := bindArtifactArgs(request, true)
	if errResult != nil {
		return errResult, nil
	}
	resp, err := h.backend.GetArtifactPayload(ctx, *args.ArtifactID)
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.ArtifactPayload(resp)), nil
}
