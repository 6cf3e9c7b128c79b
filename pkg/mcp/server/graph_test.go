// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package server_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kgfoundry/kgmcp/pkg/kgclient"
	"github.com/kgfoundry/kgmcp/pkg/mcp/server"
)

func conceptOp(label string) map[string]any {
	return map[string]any{
		"op":       "create",
		"entity":   "concept",
		"label":    label,
		"ontology": "physics",
	}
}

func TestGraphQueueRejectsEmptyOperations(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t, &backendFake{}, "")

	result, err := h.Graph(context.Background(), callReq(map[string]any{
		"action":     "queue",
		"operations": []any{},
	}))
	require.NoError(t, err)

	env := envelopeOf(t, result)
	assert.Equal(t, "operations array cannot be empty", env.Error)
}

func TestGraphQueueRejectsOversizedBatch(t *testing.T) {
	t.Parallel()
	called := false
	fake := &backendFake{
		createConcept: func(_ context.Context, _ *kgclient.CreateConceptRequest) (*kgclient.ConceptResult, error) {
			called = true
			return &kgclient.ConceptResult{ConceptID: "c1", Label: "x"}, nil
		},
	}
	h := newTestHandler(t, fake, "")

	ops := make([]any, 21)
	for i := range ops {
		ops[i] = conceptOp(fmt.Sprintf("concept-%d", i))
	}
	result, err := h.Graph(context.Background(), callReq(map[string]any{
		"action":     "queue",
		"operations": ops,
	}))
	require.NoError(t, err)

	env := envelopeOf(t, result)
	assert.Equal(t, "Queue too large: 21 operations (max 20)", env.Error)
	assert.False(t, called, "no operation may run when the batch is rejected")
}

func TestGraphQueueAcceptsMaxBatch(t *testing.T) {
	t.Parallel()
	calls := 0
	fake := &backendFake{
		createConcept: func(_ context.Context, req *kgclient.CreateConceptRequest) (*kgclient.ConceptResult, error) {
			calls++
			return &kgclient.ConceptResult{ConceptID: fmt.Sprintf("c%d", calls), Label: req.Label}, nil
		},
	}
	h := newTestHandler(t, fake, "")

	ops := make([]any, server.MaxQueueOps)
	for i := range ops {
		ops[i] = conceptOp(fmt.Sprintf("concept-%d", i))
	}
	result, err := h.Graph(context.Background(), callReq(map[string]any{
		"action":     "queue",
		"operations": ops,
	}))
	require.NoError(t, err)

	require.False(t, result.IsError)
	text := textOf(t, result)
	assert.Contains(t, text, "# Queue: 20 operation(s)")
	assert.Contains(t, text, "Succeeded: 20, failed: 0, skipped: 0")
	assert.Equal(t, server.MaxQueueOps, calls)
}

func TestGraphQueueValidatesEveryOpUpfront(t *testing.T) {
	t.Parallel()
	called := false
	fake := &backendFake{
		createConcept: func(_ context.Context, _ *kgclient.CreateConceptRequest) (*kgclient.ConceptResult, error) {
			called = true
			return &kgclient.ConceptResult{ConceptID: "c1", Label: "x"}, nil
		},
	}
	h := newTestHandler(t, fake, "")

	// The second element is missing op; even the valid first element
	// must not run.
	result, err := h.Graph(context.Background(), callReq(map[string]any{
		"action": "queue",
		"operations": []any{
			conceptOp("valid"),
			map[string]any{"entity": "concept", "label": "orphan", "ontology": "physics"},
		},
	}))
	require.NoError(t, err)

	env := envelopeOf(t, result)
	assert.Equal(t, "Operation 1: missing required field: op", env.Error)
	assert.False(t, called, "upfront validation must precede execution")

	result, err = h.Graph(context.Background(), callReq(map[string]any{
		"action": "queue",
		"operations": []any{
			map[string]any{"op": "create", "label": "no-entity", "ontology": "physics"},
		},
	}))
	require.NoError(t, err)
	assert.Equal(t, "Operation 0: missing required field: entity", envelopeOf(t, result).Error)
}

func TestGraphQueueStopsOnFirstFailure(t *testing.T) {
	t.Parallel()
	calls := 0
	fake := &backendFake{
		createConcept: func(_ context.Context, req *kgclient.CreateConceptRequest) (*kgclient.ConceptResult, error) {
			calls++
			if req.Label == "doomed" {
				return nil, &kgclient.APIError{StatusCode: 422, Detail: "label already exists"}
			}
			return &kgclient.ConceptResult{ConceptID: "c1", Label: req.Label}, nil
		},
	}
	h := newTestHandler(t, fake, "")

	result, err := h.Graph(context.Background(), callReq(map[string]any{
		"action": "queue",
		"operations": []any{
			conceptOp("first"),
			conceptOp("doomed"),
			conceptOp("never-reached"),
		},
	}))
	require.NoError(t, err)

	// Per-op failures live in the summary; the call itself succeeds.
	require.False(t, result.IsError)
	text := textOf(t, result)
	assert.Contains(t, text, "Succeeded: 1, failed: 1, skipped: 1")
	assert.Contains(t, text, "## 1. create concept — ok")
	assert.Contains(t, text, "created concept c1 (first)")
	assert.Contains(t, text, "## 2. create concept — error")
	assert.Contains(t, text, "label already exists")
	assert.Contains(t, text, "## 3. create concept — skipped")
	assert.Contains(t, text, "not executed after earlier failure")
	assert.Equal(t, 2, calls, "execution must stop at the failing operation")
}

func TestGraphQueueContinueOnError(t *testing.T) {
	t.Parallel()
	calls := 0
	fake := &backendFake{
		createConcept: func(_ context.Context, req *kgclient.CreateConceptRequest) (*kgclient.ConceptResult, error) {
			calls++
			if req.Label == "doomed" {
				return nil, &kgclient.APIError{StatusCode: 422, Detail: "label already exists"}
			}
			return &kgclient.ConceptResult{ConceptID: fmt.Sprintf("c%d", calls), Label: req.Label}, nil
		},
	}
	h := newTestHandler(t, fake, "")

	result, err := h.Graph(context.Background(), callReq(map[string]any{
		"action": "queue",
		"operations": []any{
			conceptOp("first"),
			conceptOp("doomed"),
			conceptOp("third"),
		},
		"continue_on_error": true,
	}))
	require.NoError(t, err)

	require.False(t, result.IsError)
	text := textOf(t, result)
	assert.Contains(t, text, "Succeeded: 2, failed: 1, skipped: 0")
	assert.Contains(t, text, "## 3. create concept — ok")
	assert.Equal(t, 3, calls)
}

func TestGraphQueueUnknownOpFailsThatOp(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t, &backendFake{
		deleteEdge: func(_ context.Context, _ string) error { return nil },
	}, "")

	result, err := h.Graph(context.Background(), callReq(map[string]any{
		"action": "queue",
		"operations": []any{
			map[string]any{"op": "upsert", "entity": "concept", "label": "x", "ontology": "physics"},
			map[string]any{"op": "delete", "entity": "edge", "edge_id": "e1"},
		},
		"continue_on_error": true,
	}))
	require.NoError(t, err)

	require.False(t, result.IsError)
	text := textOf(t, result)
	assert.Contains(t, text, "## 1. upsert concept — error")
	assert.Contains(t, text, "Unknown queue op: upsert")
	assert.Contains(t, text, "## 2. delete edge — ok")
	assert.Contains(t, text, "deleted edge e1")
}

func TestGraphQueueUnknownEntityFailsThatOp(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t, &backendFake{}, "")

	result, err := h.Graph(context.Background(), callReq(map[string]any{
		"action": "queue",
		"operations": []any{
			map[string]any{"op": "create", "entity": "node", "label": "x"},
		},
	}))
	require.NoError(t, err)

	require.False(t, result.IsError)
	text := textOf(t, result)
	assert.Contains(t, text, "## 1. create node — error")
	assert.Contains(t, text, "Unknown graph entity: node")
}

func TestGraphQueueMixedEntities(t *testing.T) {
	t.Parallel()
	var edgeReq *kgclient.CreateEdgeRequest
	fake := &backendFake{
		createEdge: func(_ context.Context, req *kgclient.CreateEdgeRequest) (*kgclient.EdgeResult, error) {
			edgeReq = req
			return &kgclient.EdgeResult{
				EdgeID:           "e1",
				FromConceptID:    "c1",
				ToConceptID:      "c2",
				RelationshipType: "SUPPORTS",
			}, nil
		},
		deleteConcept: func(_ context.Context, conceptID string, cascade bool) error {
			assert.Equal(t, "c9", conceptID)
			assert.False(t, cascade)
			return nil
		},
	}
	h := newTestHandler(t, fake, "")

	result, err := h.Graph(context.Background(), callReq(map[string]any{
		"action": "queue",
		"operations": []any{
			map[string]any{
				"op":                "create",
				"entity":            "edge",
				"from_concept_id":   "c1",
				"to_concept_id":     "c2",
				"relationship_type": "SUPPORTS",
			},
			map[string]any{"op": "delete", "entity": "concept", "concept_id": "c9"},
		},
	}))
	require.NoError(t, err)

	require.False(t, result.IsError)
	text := textOf(t, result)
	assert.Contains(t, text, "created edge e1 (c1 -[SUPPORTS]-> c2)")
	assert.Contains(t, text, "deleted concept c9")

	require.NotNil(t, edgeReq)
	assert.Equal(t, "structural", edgeReq.Category)
	assert.Equal(t, 1.0, edgeReq.Confidence)
	assert.Equal(t, "mcp", edgeReq.Source)
}

func TestGraphQueueReportsMatchedExisting(t *testing.T) {
	t.Parallel()
	fake := &backendFake{
		createConcept: func(_ context.Context, req *kgclient.CreateConceptRequest) (*kgclient.ConceptResult, error) {
			return &kgclient.ConceptResult{ConceptID: "c7", Label: req.Label, MatchedExisting: true}, nil
		},
	}
	h := newTestHandler(t, fake, "")

	result, err := h.Graph(context.Background(), callReq(map[string]any{
		"action":     "queue",
		"operations": []any{conceptOp("entropy")},
	}))
	require.NoError(t, err)

	assert.Contains(t, textOf(t, result), "matched existing concept c7 (entropy)")
}

func TestGraphCreateConceptStampsProvenance(t *testing.T) {
	t.Parallel()
	var got *kgclient.CreateConceptRequest
	fake := &backendFake{
		createConcept: func(_ context.Context, req *kgclient.CreateConceptRequest) (*kgclient.ConceptResult, error) {
			got = req
			return &kgclient.ConceptResult{ConceptID: "c1", Label: req.Label}, nil
		},
	}
	h := newTestHandler(t, fake, "")

	result, err := h.Graph(context.Background(), callReq(map[string]any{
		"action":       "create",
		"entity":       "concept",
		"label":        "entropy",
		"ontology":     "physics",
		"search_terms": []any{"disorder", "second law"},
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	require.NotNil(t, got)
	assert.Equal(t, "mcp", got.CreationMethod)
	assert.Equal(t, []string{"disorder", "second law"}, got.SearchTerms)
}

func TestGraphCreateConceptRequiresLabelAndOntology(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t, &backendFake{}, "")

	result, err := h.Graph(context.Background(), callReq(map[string]any{
		"action": "create",
		"entity": "concept",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Missing required argument: label", envelopeOf(t, result).Error)

	result, err = h.Graph(context.Background(), callReq(map[string]any{
		"action": "create",
		"entity": "concept",
		"label":  "entropy",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Missing required argument: ontology", envelopeOf(t, result).Error)
}

func TestGraphCreateEdgeRequiresEndpoints(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t, &backendFake{}, "")

	result, err := h.Graph(context.Background(), callReq(map[string]any{
		"action":            "create",
		"entity":            "edge",
		"relationship_type": "SUPPORTS",
		"to_concept_id":     "c2",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Edge create requires from_concept_id or from_label", envelopeOf(t, result).Error)

	result, err = h.Graph(context.Background(), callReq(map[string]any{
		"action":            "create",
		"entity":            "edge",
		"relationship_type": "SUPPORTS",
		"from_label":        "entropy",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Edge create requires to_concept_id or to_label", envelopeOf(t, result).Error)
}

func TestGraphCreateEdgeHonorsExplicitConfidence(t *testing.T) {
	t.Parallel()
	var got *kgclient.CreateEdgeRequest
	fake := &backendFake{
		createEdge: func(_ context.Context, req *kgclient.CreateEdgeRequest) (*kgclient.EdgeResult, error) {
			got = req
			return &kgclient.EdgeResult{EdgeID: "e1", FromConceptID: "c1", ToConceptID: "c2", RelationshipType: "SUPPORTS"}, nil
		},
	}
	h := newTestHandler(t, fake, "")

	_, err := h.Graph(context.Background(), callReq(map[string]any{
		"action":            "create",
		"entity":            "edge",
		"from_label":        "entropy",
		"to_label":          "heat death",
		"relationship_type": "SUPPORTS",
		"category":          "semantic",
		"confidence":        0.25,
	}))
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, "semantic", got.Category)
	assert.Equal(t, 0.25, got.Confidence)
}

func TestGraphEditConceptForwardsOnlySetFields(t *testing.T) {
	t.Parallel()
	var got *kgclient.UpdateConceptRequest
	fake := &backendFake{
		updateConcept: func(_ context.Context, conceptID string, req *kgclient.UpdateConceptRequest) (*kgclient.ConceptResult, error) {
			assert.Equal(t, "c1", conceptID)
			got = req
			return &kgclient.ConceptResult{ConceptID: conceptID, Label: "renamed"}, nil
		},
	}
	h := newTestHandler(t, fake, "")

	result, err := h.Graph(context.Background(), callReq(map[string]any{
		"action":     "edit",
		"entity":     "concept",
		"concept_id": "c1",
		"label":      "renamed",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	require.NotNil(t, got)
	require.NotNil(t, got.Label)
	assert.Equal(t, "renamed", *got.Label)
	assert.Nil(t, got.Description, "unset fields must stay nil so the backend leaves them untouched")
	assert.Nil(t, got.SearchTerms)
}

func TestGraphEntityValidation(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t, &backendFake{}, "")

	result, err := h.Graph(context.Background(), callReq(map[string]any{"action": "delete"}))
	require.NoError(t, err)
	assert.Equal(t, "Missing required argument: entity", envelopeOf(t, result).Error)

	result, err = h.Graph(context.Background(), callReq(map[string]any{
		"action": "delete",
		"entity": "hyperedge",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Unknown graph entity: hyperedge", envelopeOf(t, result).Error)
}
