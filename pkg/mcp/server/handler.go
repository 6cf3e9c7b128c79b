// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package server provides the MCP (Model Context Protocol) server that
// bridges an AI host to the knowledge-graph API.
package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kgfoundry/kgmcp/pkg/allowlist"
	"github.com/kgfoundry/kgmcp/pkg/errors"
	"github.com/kgfoundry/kgmcp/pkg/kgclient"
	"github.com/kgfoundry/kgmcp/pkg/logger"
)

// actionFunc executes one (tool, action) binding.
type actionFunc func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// Handler routes tool calls to the backend client and renders the
// responses. It is stateless across requests.
type Handler struct {
	backend Backend
	allow   *allowlist.Validator
	actions map[string]map[string]actionFunc
}

// NewHandler creates a handler and builds its dispatch table. Tools
// without an action discriminator bind under the empty action.
func NewHandler(backend Backend, allow *allowlist.Validator) *Handler {
	h := &Handler{backend: backend, allow: allow}
	h.actions = map[string]map[string]actionFunc{
		"search": {
			"concepts":  h.searchConcepts,
			"sources":   h.searchSources,
			"documents": h.searchDocuments,
		},
		"concept": {
			"details": h.conceptDetails,
			"related": h.conceptRelated,
			"connect": h.conceptConnect,
		},
		"ontology": {
			"list":            h.ontologyList,
			"info":            h.ontologyInfo,
			"files":           h.ontologyFiles,
			"create":          h.ontologyCreate,
			"rename":          h.ontologyRename,
			"delete":          h.ontologyDelete,
			"lifecycle":       h.ontologyLifecycle,
			"scores":          h.ontologyScores,
			"score":           h.ontologyScore,
			"score_all":       h.ontologyScoreAll,
			"candidates":      h.ontologyCandidates,
			"affinity":        h.ontologyAffinity,
			"edges":           h.ontologyEdges,
			"reassign":        h.ontologyReassign,
			"dissolve":        h.ontologyDissolve,
			"proposals":       h.ontologyProposals,
			"proposal_review": h.ontologyProposalReview,
			"annealing_cycle": h.ontologyAnnealingCycle,
		},
		"job": {
			"status":  h.jobStatus,
			"list":    h.jobList,
			"approve": h.jobApprove,
			"cancel":  h.jobCancel,
			"delete":  h.jobDelete,
			"cleanup": h.jobCleanup,
		},
		"ingest": {
			"text":         h.ingestText,
			"inspect-file": h.ingestInspectFile,
			"file":         h.ingestFile,
			"directory":    h.ingestDirectory,
		},
		"source": {
			"": h.sourceGet,
		},
		"epistemic_status": {
			"list":    h.epistemicList,
			"show":    h.epistemicShow,
			"measure": h.epistemicMeasure,
		},
		"analyze_polarity_axis": {
			"": h.analyzePolarityAxis,
		},
		"artifact": {
			"list":    h.artifactList,
			"show":    h.artifactShow,
			"payload": h.artifactPayload,
		},
		"document": {
			"list":     h.documentList,
			"show":     h.documentShow,
			"concepts": h.documentConcepts,
		},
		"graph": {
			"create": h.graphCreate,
			"edit":   h.graphEdit,
			"delete": h.graphDelete,
			"list":   h.graphList,
			"queue":  h.graphQueue,
		},
	}
	return h
}

// dispatch resolves the (tool, action) binding and runs it. Panics from
// a binding are converted into an error response so a formatter bug
// never takes down the server.
func (h *Handler) dispatch(ctx context.Context, tool, action string, request mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("Panic in %s handler: %v", tool, r)
			result = errorResult(errors.NewInternalError(fmt.Sprintf("Internal error: %v", r), nil))
			err = nil
		}
	}()

	actions, ok := h.actions[tool]
	if !ok {
		return validationError(fmt.Sprintf("Unknown tool: %s", tool)), nil
	}
	fn, ok := actions[action]
	if !ok {
		if action == "" {
			return validationError("Missing required argument: action"), nil
		}
		return validationError(fmt.Sprintf("Unknown %s action: %s", tool, action)), nil
	}
	return fn(ctx, request)
}

// Search routes by the type discriminator; concepts is the default.
func (h *Handler) Search(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.dispatch(ctx, "search", request.GetString("type", "concepts"), request)
}

// Concept handles the concept tool.
func (h *Handler) Concept(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.dispatch(ctx, "concept", request.GetString("action", ""), request)
}

// Ontology handles the ontology tool.
func (h *Handler) Ontology(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.dispatch(ctx, "ontology", request.GetString("action", ""), request)
}

// Job handles the job tool.
func (h *Handler) Job(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.dispatch(ctx, "job", request.GetString("action", ""), request)
}

// Ingest handles the ingest tool.
func (h *Handler) Ingest(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.dispatch(ctx, "ingest", request.GetString("action", ""), request)
}

// Source handles the source tool; it has a single implicit action.
func (h *Handler) Source(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.dispatch(ctx, "source", "", request)
}

// EpistemicStatus handles the epistemic_status tool.
func (h *Handler) EpistemicStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.dispatch(ctx, "epistemic_status", request.GetString("action", ""), request)
}

// AnalyzePolarityAxis handles the analyze_polarity_axis tool; it has a
// single implicit action.
func (h *Handler) AnalyzePolarityAxis(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.dispatch(ctx, "analyze_polarity_axis", "", request)
}

// Artifact handles the artifact tool.
func (h *Handler) Artifact(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.dispatch(ctx, "artifact", request.GetString("action", ""), request)
}

// Document handles the document tool.
func (h *Handler) Document(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.dispatch(ctx, "document", request.GetString("action", ""), request)
}

// Graph handles the graph tool.
func (h *Handler) Graph(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.dispatch(ctx, "graph", request.GetString("action", ""), request)
}

// errorResult renders a typed error as the uniform envelope: a single
// text part whose body is {"error": ..., "details": ...} with the
// is_error flag set. The MCP response itself stays a success. The error
// type picks the details: backend failures carry the backend's own
// response body verbatim, everything else carries none.
func errorResult(e *errors.Error) *mcp.CallToolResult {
	var details any
	switch {
	case errors.IsBackend(e), errors.IsNotFound(e):
		details = backendBody(e)
	case errors.IsPathDenied(e):
		logger.Debugf("Allowlist denied a path: %s", e.Message)
	case errors.IsValidation(e):
		// Caller mistake; the message is the whole story.
	}

	encoded, err := json.Marshal(map[string]any{
		"error":   e.Message,
		"details": details,
	})
	if err != nil {
		// The envelope itself failed to serialize; fall back to bare text.
		return mcp.NewToolResultError(e.Message)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(string(encoded))},
		IsError: true,
	}
}

// backendBody extracts the backend's own error body from the cause chain.
func backendBody(e *errors.Error) any {
	var apiErr *kgclient.APIError
	if !stderrors.As(e, &apiErr) || len(apiErr.Body) == 0 {
		return nil
	}
	if json.Valid(apiErr.Body) {
		return json.RawMessage(apiErr.Body)
	}
	return string(apiErr.Body)
}

// validationError is an envelope for a caller mistake: unknown tool,
// unknown action, missing or malformed arguments.
func validationError(message string) *mcp.CallToolResult {
	return errorResult(errors.NewValidationError(message, nil))
}

// backendError shapes a failed backend call. API errors carry the
// backend's own body verbatim in the details field; a 404 is classified
// as not-found so handlers can special-case missing entities.
func backendError(err error) *mcp.CallToolResult {
	if kgclient.IsNotFound(err) {
		return errorResult(errors.NewNotFoundError(err.Error(), err))
	}
	return errorResult(errors.NewBackendError(err.Error(), err))
}

// bindArguments decodes the request arguments into args, shaping a
// decode failure as a validation error.
func bindArguments(request mcp.CallToolRequest, args any) *mcp.CallToolResult {
	if err := request.BindArguments(args); err != nil {
		return validationError(fmt.Sprintf("Failed to parse arguments: %v", err))
	}
	return nil
}
