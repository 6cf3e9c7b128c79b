// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kgfoundry/kgmcp/pkg/errors"
	"github.com/kgfoundry/kgmcp/pkg/format"
	"github.com/kgfoundry/kgmcp/pkg/kgclient"
	"github.com/kgfoundry/kgmcp/pkg/logger"
)

type sourceArgs struct {
	SourceID string `json:"source_id"`
}

// sourceGet fetches one source's stored metadata. Image sources get the
// stored image returned alongside the caption so the host can render it.
func (h *Handler) sourceGet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &sourceArgs{}
	if errResult := bindArguments(request, args); errResult != nil {
		return errResult, nil
	}
	if args.SourceID == "" {
		return validationError("Missing required argument: source_id"), nil
	}

	meta, err := h.backend.GetSourceMetadata(ctx, args.SourceID)
	if err != nil {
		if kgclient.IsNotFound(err) {
			return errorResult(errors.NewNotFoundError(fmt.Sprintf("Source %s not found", args.SourceID), err)), nil
		}
		return backendError(err), nil
	}

	if meta.ContentType != "image" {
		return mcp.NewToolResultText(format.SourceMetadata(meta)), nil
	}

	img, err := h.backend.GetSourceImage(ctx, args.SourceID)
	if err != nil {
		// The metadata is still useful when the binary fetch fails.
		logger.Errorf("Fetching image for source %s: %v", args.SourceID, err)
		return mcp.NewToolResultText(format.SourceMetadata(meta)), nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewImageContent(img.Data, img.MediaType),
			mcp.NewTextContent(format.SourceImageCaption(meta)),
		},
	}, nil
}
