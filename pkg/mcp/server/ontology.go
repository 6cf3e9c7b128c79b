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

type ontologyArgs struct {
	Action         string   `json:"action"`
	Name           string   `json:"name,omitempty"`
	Description    string   `json:"description,omitempty"`
	NewName        string   `json:"new_name,omitempty"`
	Force          *bool    `json:"force,omitempty"`
	State          string   `json:"state,omitempty"`
	Limit          *int     `json:"limit,omitempty"`
	TargetOntology string   `json:"target_ontology,omitempty"`
	SourceIDs      []string `json:"source_ids,omitempty"`
	ProposalID     string   `json:"proposal_id,omitempty"`
	Status         string   `json:"status,omitempty"`
	Notes          string   `json:"notes,omitempty"`
}

// bindOntologyArgs binds and enforces the name argument for the actions
// that operate on a single ontology.
func bindOntologyArgs(request mcp.CallToolRequest, needName bool) (*ontologyArgs, *mcp.CallToolResult) {
	args := &ontologyArgs{}
	if errResult := bindArguments(request, args); errResult != nil {
		return nil, errResult
	}
	if needName && args.Name == "" {
		return nil, validationError("Missing required argument: name")
	}
	return args, nil
}

func (h *Handler) ontologyList(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resp, err := h.backend.ListOntologies(ctx)
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.OntologyList(resp)), nil
}

func (h *Handler) ontologyInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, errResult := bindOntologyArgs(request, true)
	if errResult != nil {
		return errResult, nil
	}
	resp, err := h.backend.GetOntologyInfo(ctx, args.Name)
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.OntologyInfo(resp)), nil
}

func (h *Handler) ontologyFiles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, errResult := bindOntologyArgs(request, true)
	if errResult != nil {
		return errResult, nil
	}
	resp, err := h.backend.GetOntologyFiles(ctx, args.Name)
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.OntologyFiles(resp)), nil
}

func (h *Handler) ontologyCreate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, errResult := bindOntologyArgs(request, true)
	if errResult != nil {
		return errResult, nil
	}
	resp, err := h.backend.CreateOntology(ctx, &kgclient.CreateOntologyRequest{
		Name:        args.Name,
		Description: args.Description,
	})
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.OntologyCreated(resp)), nil
}

func (h *Handler) ontologyRename(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, errResult := bindOntologyArgs(request, true)
	if errResult != nil {
		return errResult, nil
	}
	if args.NewName == "" {
		return validationError("Missing required argument: new_name"), nil
	}
	resp, err := h.backend.RenameOntology(ctx, args.Name, &kgclient.RenameOntologyRequest{NewName: args.NewName})
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.OntologyRenamed(resp)), nil
}

func (h *Handler) ontologyDelete(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, errResult := bindOntologyArgs(request, true)
	if errResult != nil {
		return errResult, nil
	}
	resp, err := h.backend.DeleteOntology(ctx, args.Name, orBool(args.Force, false))
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.OntologyDeleted(resp)), nil
}

func (h *Handler) ontologyLifecycle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, errResult := bindOntologyArgs(request, true)
	if errResult != nil {
		return errResult, nil
	}
	if args.State == "" {
		return validationError("Missing required argument: state"), nil
	}
	resp, err := h.backend.SetOntologyLifecycle(ctx, args.Name, &kgclient.LifecycleRequest{State: args.State})
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.OntologyLifecycleChanged(resp)), nil
}

func (h *Handler) ontologyScores(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, errResult := bindOntologyArgs(request, true)
	if errResult != nil {
		return errResult, nil
	}
	resp, err := h.backend.GetOntologyScores(ctx, args.Name)
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.OntologyScoreCard(resp)), nil
}

func (h *Handler) ontologyScore(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, errResult := bindOntologyArgs(request, true)
	if errResult != nil {
		return errResult, nil
	}
	resp, err := h.backend.ScoreOntology(ctx, args.Name)
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.OntologyScoreCard(resp)), nil
}

func (h *Handler) ontologyScoreAll(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resp, err := h.backend.ScoreAllOntologies(ctx)
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.AllOntologyScores(resp)), nil
}

func (h *Handler) ontologyCandidates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, errResult := bindOntologyArgs(request, true)
	if errResult != nil {
		return errResult, nil
	}
	resp, err := h.backend.GetOntologyCandidates(ctx, args.Name, orInt(args.Limit, 20))
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.OntologyCandidates(resp)), nil
}

func (h *Handler) ontologyAffinity(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, errResult := bindOntologyArgs(request, true)
	if errResult != nil {
		return errResult, nil
	}
	resp, err := h.backend.GetOntologyAffinity(ctx, args.Name)
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.OntologyAffinity(resp)), nil
}

func (h *Handler) ontologyEdges(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, errResult := bindOntologyArgs(request, true)
	if errResult != nil {
		return errResult, nil
	}
	resp, err := h.backend.GetOntologyEdges(ctx, args.Name, orInt(args.Limit, 50))
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.OntologyEdgeList(resp)), nil
}

func (h *Handler) ontologyReassign(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, errResult := bindOntologyArgs(request, true)
	if errResult != nil {
		return errResult, nil
	}
	if args.TargetOntology == "" {
		return validationError("Missing required argument: target_ontology"), nil
	}
	if len(args.SourceIDs) == 0 {
		return validationError("Missing required argument: source_ids"), nil
	}
	resp, err := h.backend.ReassignSources(ctx, args.Name, &kgclient.ReassignRequest{
		TargetOntology: args.TargetOntology,
		SourceIDs:      args.SourceIDs,
	})
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.SourcesReassigned(resp)), nil
}

func (h *Handler) ontologyDissolve(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, errResult := bindOntologyArgs(request, true)
	if errResult != nil {
		return errResult, nil
	}
	resp, err := h.backend.DissolveOntology(ctx, args.Name, &kgclient.DissolveRequest{
		TargetOntology: args.TargetOntology,
	})
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.OntologyDissolved(resp)), nil
}

func (h *Handler) ontologyProposals(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, errResult := bindOntologyArgs(request, false)
	if errResult != nil {
		return errResult, nil
	}
	resp, err := h.backend.ListProposals(ctx, args.Status)
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.ProposalsList(resp)), nil
}

func (h *Handler) ontologyProposalReview(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, errResult := bindOntologyArgs(request, false)
	if errResult != nil {
		return errResult, nil
	}
	if args.ProposalID == "" {
		return validationError("Missing required argument: proposal_id"), nil
	}
	if args.Status != "approved" && args.Status != "rejected" {
		return validationError(fmt.Sprintf("Invalid proposal status %q: must be approved or rejected", args.Status)), nil
	}
	resp, err := h.backend.ReviewProposal(ctx, args.ProposalID, &kgclient.ProposalReviewRequest{
		Status: args.Status,
		Notes:  args.Notes,
	})
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.ProposalReviewed(resp)), nil
}

func (h *Handler) ontologyAnnealingCycle(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resp, err := h.backend.TriggerAnnealingCycle(ctx)
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.AnnealingCycle(resp)), nil
}
