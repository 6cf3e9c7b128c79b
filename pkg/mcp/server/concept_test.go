// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package server_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kgfoundry/kgmcp/pkg/kgclient"
)

func TestConceptDetailsDefaults(t *testing.T) {
	t.Parallel()
	var gotID string
	var gotOpts kgclient.ConceptDetailsOptions
	fake := &backendFake{
		getConceptDetails: func(_ context.Context, conceptID string, opts kgclient.ConceptDetailsOptions) (*kgclient.ConceptDetails, error) {
			gotID, gotOpts = conceptID, opts
			return &kgclient.ConceptDetails{ConceptID: conceptID, Label: "entropy"}, nil
		},
	}
	h := newTestHandler(t, fake, "")

	result, err := h.Concept(context.Background(), callReq(map[string]any{
		"action":     "details",
		"concept_id": "c1",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	assert.Equal(t, "c1", gotID)
	assert.True(t, gotOpts.IncludeGrounding)
	assert.False(t, gotOpts.IncludeDiversity, "diversity is an expensive opt-in")
	assert.Equal(t, 2, gotOpts.DiversityMaxHops)
}

func TestConceptDetailsRequiresConceptID(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t, &backendFake{}, "")

	result, err := h.Concept(context.Background(), callReq(map[string]any{"action": "details"}))
	require.NoError(t, err)
	assert.Equal(t, "Missing required argument: concept_id", envelopeOf(t, result).Error)
}

func TestConceptConnectDefaultsToSemantic(t *testing.T) {
	t.Parallel()
	var got *kgclient.ConnectionSearchRequest
	fake := &backendFake{
		findConnectionSearch: func(_ context.Context, req *kgclient.ConnectionSearchRequest) (*kgclient.ConnectionSearchResponse, error) {
			got = req
			return &kgclient.ConnectionSearchResponse{
				FromQuery: req.FromQuery,
				ToQuery:   req.ToQuery,
				MaxHops:   req.MaxHops,
			}, nil
		},
	}
	h := newTestHandler(t, fake, "")

	result, err := h.Concept(context.Background(), callReq(map[string]any{
		"action":     "connect",
		"from_query": "entropy",
		"to_query":   "information",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	require.NotNil(t, got)
	assert.Equal(t, 3, got.MaxHops)
	assert.Equal(t, 0.75, got.Threshold)
	assert.True(t, got.IncludeEvidence)
	assert.True(t, got.IncludeGrounding)
}

func TestConceptConnectExactRequiresIDs(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t, &backendFake{}, "")

	result, err := h.Concept(context.Background(), callReq(map[string]any{
		"action":          "connect",
		"connection_mode": "exact",
		"from_id":         "c1",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Exact connection mode requires from_id and to_id", envelopeOf(t, result).Error)
}

func TestConceptConnectSemanticRequiresQueries(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t, &backendFake{}, "")

	result, err := h.Concept(context.Background(), callReq(map[string]any{
		"action":     "connect",
		"from_query": "entropy",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Semantic connection mode requires from_query and to_query", envelopeOf(t, result).Error)
}

func TestConceptConnectExactRoutesByMode(t *testing.T) {
	t.Parallel()
	var got *kgclient.ConnectionRequest
	fake := &backendFake{
		findConnection: func(_ context.Context, req *kgclient.ConnectionRequest) (*kgclient.ConnectionResponse, error) {
			got = req
			return &kgclient.ConnectionResponse{FromID: req.FromID, ToID: req.ToID, MaxHops: req.MaxHops}, nil
		},
	}
	h := newTestHandler(t, fake, "")

	result, err := h.Concept(context.Background(), callReq(map[string]any{
		"action":          "connect",
		"connection_mode": "exact",
		"from_id":         "c1",
		"to_id":           "c2",
		"max_hops":        5,
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	require.NotNil(t, got)
	assert.Equal(t, "c1", got.FromID)
	assert.Equal(t, "c2", got.ToID)
	assert.Equal(t, 5, got.MaxHops)
}

func TestConceptConnectUnknownMode(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t, &backendFake{}, "")

	result, err := h.Concept(context.Background(), callReq(map[string]any{
		"action":          "connect",
		"connection_mode": "psychic",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Unknown connection_mode: psychic", envelopeOf(t, result).Error)
}
