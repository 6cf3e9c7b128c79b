// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kgfoundry/kgmcp/pkg/format"
)

type documentArgs struct {
	Action     string `json:"action"`
	DocumentID string `json:"document_id,omitempty"`
	Ontology   string `json:"ontology,omitempty"`
	Limit      *int   `json:"limit,omitempty"`
	Offset     *int   `json:"offset,omitempty"`
}

func bindDocumentArgs(request mcp.CallToolRequest, needID bool) (*documentArgs, *mcp.CallToolResult) {
	args := &documentArgs{}
	if errResult := bindArguments(request, args); errResult != nil {
		return nil, errResult
	}
	if needID && args.DocumentID == "" {
		return nil, validationError("Missing required argument: document_id")
	}
	return args, nil
}

func (h *Handler) documentList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, errResult := bindDocumentArgs(request, false)
	if errResult != nil {
		return errResult, nil
	}
	resp, err := h.backend.ListDocuments(ctx, args.Ontology, orInt(args.Limit, 50), orInt(args.Offset, 0))
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.DocumentList(resp)), nil
}

func (h *Handler) documentShow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, errResult := bindDocumentArgs(request, true)
	if errResult != nil {
		return errResult, nil
	}
	resp, err := h.backend.GetDocumentContent(ctx, args.DocumentID)
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.DocumentContent(resp)), nil
}

func (h *Handler) documentConcepts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, errResult := bindDocumentArgs(request, true)
	if errResult != nil {
		return errResult, nil
	}
	resp, err := h.backend.GetDocumentConcepts(ctx, args.DocumentID)
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.DocumentConcepts(resp)), nil
}
