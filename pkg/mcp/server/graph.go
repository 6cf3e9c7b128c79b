// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kgfoundry/kgmcp/pkg/format"
	"github.com/kgfoundry/kgmcp/pkg/kgclient"
)

const maxQueueOps = 20

// mutationArgs are the fields shared by direct graph actions and queued
// operations. Pointer fields distinguish absent from explicitly set.
type mutationArgs struct {
	Entity           string    `json:"entity,omitempty"`
	ConceptID        string    `json:"concept_id,omitempty"`
	EdgeID           string    `json:"edge_id,omitempty"`
	Label            *string   `json:"label,omitempty"`
	Ontology         string    `json:"ontology,omitempty"`
	Description      *string   `json:"description,omitempty"`
	SearchTerms      *[]string `json:"search_terms,omitempty"`
	MatchingMode     string    `json:"matching_mode,omitempty"`
	FromConceptID    string    `json:"from_concept_id,omitempty"`
	ToConceptID      string    `json:"to_concept_id,omitempty"`
	FromLabel        string    `json:"from_label,omitempty"`
	ToLabel          string    `json:"to_label,omitempty"`
	RelationshipType *string   `json:"relationship_type,omitempty"`
	Category         *string   `json:"category,omitempty"`
	Confidence       *float64  `json:"confidence,omitempty"`
	Cascade          *bool     `json:"cascade,omitempty"`
}

type queueOp struct {
	Op string `json:"op"`
	mutationArgs
}

type graphArgs struct {
	Action string `json:"action"`
	mutationArgs
	Limit           *int      `json:"limit,omitempty"`
	Offset          *int      `json:"offset,omitempty"`
	Operations      []queueOp `json:"operations,omitempty"`
	ContinueOnError *bool     `json:"continue_on_error,omitempty"`
}

func (m *mutationArgs) conceptCreateRequest() (*kgclient.CreateConceptRequest, error) {
	label := deref(m.Label)
	if label == "" {
		return nil, errors.New("Missing required argument: label")
	}
	if m.Ontology == "" {
		return nil, errors.New("Missing required argument: ontology")
	}
	req := &kgclient.CreateConceptRequest{
		Label:          label,
		Ontology:       m.Ontology,
		Description:    deref(m.Description),
		MatchingMode:   m.MatchingMode,
		CreationMethod: "mcp",
	}
	if m.SearchTerms != nil {
		req.SearchTerms = *m.SearchTerms
	}
	return req, nil
}

func (m *mutationArgs) conceptUpdateRequest() (*kgclient.UpdateConceptRequest, error) {
	if m.ConceptID == "" {
		return nil, errors.New("Missing required argument: concept_id")
	}
	return &kgclient.UpdateConceptRequest{
		Label:       m.Label,
		Description: m.Description,
		SearchTerms: m.SearchTerms,
	}, nil
}

func (m *mutationArgs) edgeCreateRequest() (*kgclient.CreateEdgeRequest, error) {
	relType := deref(m.RelationshipType)
	if relType == "" {
		return nil, errors.New("Missing required argument: relationship_type")
	}
	if m.FromConceptID == "" && m.FromLabel == "" {
		return nil, errors.New("Edge create requires from_concept_id or from_label")
	}
	if m.ToConceptID == "" && m.ToLabel == "" {
		return nil, errors.New("Edge create requires to_concept_id or to_label")
	}
	return &kgclient.CreateEdgeRequest{
		FromConceptID:    m.FromConceptID,
		ToConceptID:      m.ToConceptID,
		FromLabel:        m.FromLabel,
		ToLabel:          m.ToLabel,
		Ontology:         m.Ontology,
		RelationshipType: relType,
		Category:         orString(deref(m.Category), "structural"),
		Confidence:       orFloat(m.Confidence, 1.0),
		Source:           "mcp",
	}, nil
}

func (m *mutationArgs) edgeUpdateRequest() (*kgclient.UpdateEdgeRequest, error) {
	if m.EdgeID == "" {
		return nil, errors.New("Missing required argument: edge_id")
	}
	return &kgclient.UpdateEdgeRequest{
		RelationshipType: m.RelationshipType,
		Category:         m.Category,
		Confidence:       m.Confidence,
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (h *Handler) graphCreate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &graphArgs{}
	if errResult := bindArguments(request, args); errResult != nil {
		return errResult, nil
	}
	switch args.Entity {
	case "concept":
		req, err := args.conceptCreateRequest()
		if err != nil {
			return validationError(err.Error()), nil
		}
		c, err := h.backend.CreateConcept(ctx, req)
		if err != nil {
			return backendError(err), nil
		}
		return mcp.NewToolResultText(format.ConceptCreated(c)), nil
	case "edge":
		req, err := args.edgeCreateRequest()
		if err != nil {
			return validationError(err.Error()), nil
		}
		e, err := h.backend.CreateEdge(ctx, req)
		if err != nil {
			return backendError(err), nil
		}
		return mcp.NewToolResultText(format.EdgeCreated(e)), nil
	default:
		return unknownEntity(args.Entity), nil
	}
}

func (h *Handler) graphEdit(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &graphArgs{}
	if errResult := bindArguments(request, args); errResult != nil {
		return errResult, nil
	}
	switch args.Entity {
	case "concept":
		req, err := args.conceptUpdateRequest()
		if err != nil {
			return validationError(err.Error()), nil
		}
		c, err := h.backend.UpdateConcept(ctx, args.ConceptID, req)
		if err != nil {
			return backendError(err), nil
		}
		return mcp.NewToolResultText(format.ConceptUpdated(c)), nil
	case "edge":
		req, err := args.edgeUpdateRequest()
		if err != nil {
			return validationError(err.Error()), nil
		}
		e, err := h.backend.UpdateEdge(ctx, args.EdgeID, req)
		if err != nil {
			return backendError(err), nil
		}
		return mcp.NewToolResultText(format.EdgeUpdated(e)), nil
	default:
		return unknownEntity(args.Entity), nil
	}
}

func (h *Handler) graphDelete(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &graphArgs{}
	if errResult := bindArguments(request, args); errResult != nil {
		return errResult, nil
	}
	switch args.Entity {
	case "concept":
		if args.ConceptID == "" {
			return validationError("Missing required argument: concept_id"), nil
		}
		cascade := orBool(args.Cascade, false)
		if err := h.backend.DeleteConcept(ctx, args.ConceptID, cascade); err != nil {
			return backendError(err), nil
		}
		return mcp.NewToolResultText(format.ConceptDeleted(args.ConceptID, cascade)), nil
	case "edge":
		if args.EdgeID == "" {
			return validationError("Missing required argument: edge_id"), nil
		}
		if err := h.backend.DeleteEdge(ctx, args.EdgeID); err != nil {
			return backendError(err), nil
		}
		return mcp.NewToolResultText(format.EdgeDeleted(args.EdgeID)), nil
	default:
		return unknownEntity(args.Entity), nil
	}
}

func (h *Handler) graphList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &graphArgs{}
	if errResult := bindArguments(request, args); errResult != nil {
		return errResult, nil
	}
	switch args.Entity {
	case "concept":
		resp, err := h.backend.ListConcepts(ctx, args.Ontology, orInt(args.Limit, 50), orInt(args.Offset, 0))
		if err != nil {
			return backendError(err), nil
		}
		return mcp.NewToolResultText(format.ConceptListing(resp)), nil
	case "edge":
		resp, err := h.backend.ListEdges(ctx, kgclient.EdgeFilters{
			ConceptID:        args.ConceptID,
			RelationshipType: deref(args.RelationshipType),
			Limit:            orInt(args.Limit, 50),
			Offset:           orInt(args.Offset, 0),
		})
		if err != nil {
			return backendError(err), nil
		}
		return mcp.NewToolResultText(format.EdgeListing(resp)), nil
	default:
		return unknownEntity(args.Entity), nil
	}
}

func unknownEntity(entity string) *mcp.CallToolResult {
	if entity == "" {
		return validationError("Missing required argument: entity")
	}
	return validationError(fmt.Sprintf("Unknown graph entity: %s", entity))
}

// graphQueue executes up to maxQueueOps mutations sequentially in array
// order. The first failure stops execution unless continue_on_error is set;
// operations never started are reported as skipped. The summary is a normal
// text response even when individual operations failed.
func (h *Handler) graphQueue(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &graphArgs{}
	if errResult := bindArguments(request, args); errResult != nil {
		return errResult, nil
	}
	if len(args.Operations) == 0 {
		return validationError("operations array cannot be empty"), nil
	}
	if len(args.Operations) > maxQueueOps {
		return validationError(fmt.Sprintf("Queue too large: %d operations (max %d)", len(args.Operations), maxQueueOps)), nil
	}
	for i := range args.Operations {
		if args.Operations[i].Op == "" {
			return validationError(fmt.Sprintf("Operation %d: missing required field: op", i)), nil
		}
		if args.Operations[i].Entity == "" {
			return validationError(fmt.Sprintf("Operation %d: missing required field: entity", i)), nil
		}
	}

	continueOnError := orBool(args.ContinueOnError, false)
	outcomes := make([]format.QueueOpOutcome, 0, len(args.Operations))
	halted := false
	for i := range args.Operations {
		op := &args.Operations[i]
		outcome := format.QueueOpOutcome{Index: i, Op: op.Op, Entity: op.Entity}
		if halted {
			outcome.Status = "skipped"
			outcome.Detail = "not executed after earlier failure"
			outcomes = append(outcomes, outcome)
			continue
		}
		detail, err := h.executeQueueOp(ctx, op)
		if err != nil {
			outcome.Status = "error"
			outcome.Detail = err.Error()
			if !continueOnError {
				halted = true
			}
		} else {
			outcome.Status = "ok"
			outcome.Detail = detail
		}
		outcomes = append(outcomes, outcome)
	}
	return mcp.NewToolResultText(format.QueueSummary(outcomes)), nil
}

func (h *Handler) executeQueueOp(ctx context.Context, op *queueOp) (string, error) {
	switch op.Op {
	case "create":
		switch op.Entity {
		case "concept":
			req, err := op.conceptCreateRequest()
			if err != nil {
				return "", err
			}
			c, err := h.backend.CreateConcept(ctx, req)
			if err != nil {
				return "", err
			}
			if c.MatchedExisting {
				return fmt.Sprintf("matched existing concept %s (%s)", c.ConceptID, c.Label), nil
			}
			return fmt.Sprintf("created concept %s (%s)", c.ConceptID, c.Label), nil
		case "edge":
			req, err := op.edgeCreateRequest()
			if err != nil {
				return "", err
			}
			e, err := h.backend.CreateEdge(ctx, req)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("created edge %s (%s -[%s]-> %s)", e.EdgeID, e.FromConceptID, e.RelationshipType, e.ToConceptID), nil
		}
	case "edit":
		switch op.Entity {
		case "concept":
			req, err := op.conceptUpdateRequest()
			if err != nil {
				return "", err
			}
			c, err := h.backend.UpdateConcept(ctx, op.ConceptID, req)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("updated concept %s", c.ConceptID), nil
		case "edge":
			req, err := op.edgeUpdateRequest()
			if err != nil {
				return "", err
			}
			e, err := h.backend.UpdateEdge(ctx, op.EdgeID, req)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("updated edge %s", e.EdgeID), nil
		}
	case "delete":
		switch op.Entity {
		case "concept":
			if op.ConceptID == "" {
				return "", errors.New("Missing required argument: concept_id")
			}
			if err := h.backend.DeleteConcept(ctx, op.ConceptID, orBool(op.Cascade, false)); err != nil {
				return "", err
			}
			return fmt.Sprintf("deleted concept %s", op.ConceptID), nil
		case "edge":
			if op.EdgeID == "" {
				return "", errors.New("Missing required argument: edge_id")
			}
			if err := h.backend.DeleteEdge(ctx, op.EdgeID); err != nil {
				return "", err
			}
			return fmt.Sprintf("deleted edge %s", op.EdgeID), nil
		}
	default:
		return "", fmt.Errorf("Unknown queue op: %s", op.Op)
	}
	return "", fmt.Errorf("Unknown graph entity: %s", op.Entity)
}
