// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kgfoundry/kgmcp/pkg/format"
	"github.com/kgfoundry/kgmcp/pkg/kgclient"
)

type epistemicArgs struct {
	Action     string   `json:"action"`
	Scope      string   `json:"scope,omitempty"`
	VocabTypes []string `json:"vocab_types,omitempty"`
	SampleSize *int     `json:"sample_size,omitempty"`
	Store      *bool    `json:"store,omitempty"`
	Verbose    *bool    `json:"verbose,omitempty"`
}

func (h *Handler) epistemicList(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resp, err := h.backend.ListEpistemicStatus(ctx)
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.EpistemicStatusList(resp)), nil
}

func (h *Handler) epistemicShow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &epistemicArgs{}
	if errResult := bindArguments(request, args); errResult != nil {
		return errResult, nil
	}
	if args.Scope == "" {
		return validationError("Missing required argument: scope"), nil
	}
	resp, err := h.backend.GetEpistemicStatus(ctx, args.Scope)
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.EpistemicStatusDetail(resp)), nil
}

func (h *Handler) epistemicMeasure(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &epistemicArgs{}
	if errResult := bindArguments(request, args); errResult != nil {
		return errResult, nil
	}
	ack, err := h.backend.MeasureEpistemicStatus(ctx, &kgclient.MeasureEpistemicRequest{
		VocabTypes: args.VocabTypes,
		SampleSize: orInt(args.SampleSize, 100),
		Store:      orBool(args.Store, true),
		Verbose:    orBool(args.Verbose, false),
	})
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.EpistemicMeasureSubmitted(ack)), nil
}

type polarityArgs struct {
	PositivePoleID string   `json:"positive_pole_id"`
	NegativePoleID string   `json:"negative_pole_id"`
	CandidateIDs   []string `json:"candidate_ids,omitempty"`
	AutoDiscover   *bool    `json:"auto_discover,omitempty"`
	MaxCandidates  *int     `json:"max_candidates,omitempty"`
	MaxHops        *int     `json:"max_hops,omitempty"`
}

func (h *Handler) analyzePolarityAxis(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &polarityArgs{}
	if errResult := bindArguments(request, args); errResult != nil {
		return errResult, nil
	}
	if args.PositivePoleID == "" {
		return validationError("Missing required argument: positive_pole_id"), nil
	}
	if args.NegativePoleID == "" {
		return validationError("Missing required argument: negative_pole_id"), nil
	}
	ack, err := h.backend.AnalyzePolarityAxis(ctx, &kgclient.PolarityRequest{
		PositivePoleID: args.PositivePoleID,
		NegativePoleID: args.NegativePoleID,
		CandidateIDs:   args.CandidateIDs,
		AutoDiscover:   orBool(args.AutoDiscover, true),
		MaxCandidates:  orInt(args.MaxCandidates, 20),
		MaxHops:        orInt(args.MaxHops, 1),
	})
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.PolarityAnalysisSubmitted(ack)), nil
}
