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

func TestSearchConceptsAppliesDefaults(t *testing.T) {
	t.Parallel()
	var got *kgclient.SearchRequest
	fake := &backendFake{
		searchConcepts: func(_ context.Context, req *kgclient.SearchRequest) (*kgclient.SearchResponse, error) {
			got = req
			return &kgclient.SearchResponse{Query: req.Query}, nil
		},
	}
	h := newTestHandler(t, fake, "")

	result, err := h.Search(context.Background(), callReq(map[string]any{"query": "entropy"}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	require.NotNil(t, got)
	assert.Equal(t, "entropy", got.Query)
	assert.Equal(t, 10, got.Limit)
	assert.Equal(t, 0.7, got.MinSimilarity)
	assert.Equal(t, 0, got.Offset)
	assert.True(t, got.IncludeEvidence)
	assert.True(t, got.IncludeGrounding)
	assert.True(t, got.IncludeDiversity)
	assert.Equal(t, 2, got.DiversityMaxHops)
}

func TestSearchConceptsHonorsExplicitValues(t *testing.T) {
	t.Parallel()
	var got *kgclient.SearchRequest
	fake := &backendFake{
		searchConcepts: func(_ context.Context, req *kgclient.SearchRequest) (*kgclient.SearchResponse, error) {
			got = req
			return &kgclient.SearchResponse{Query: req.Query}, nil
		},
	}
	h := newTestHandler(t, fake, "")

	_, err := h.Search(context.Background(), callReq(map[string]any{
		"query":             "entropy",
		"limit":             3,
		"min_similarity":    0.0,
		"include_evidence":  false,
		"include_diversity": false,
	}))
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, 3, got.Limit)
	assert.Equal(t, 0.0, got.MinSimilarity, "explicit zero must not be replaced by the default")
	assert.False(t, got.IncludeEvidence)
	assert.False(t, got.IncludeDiversity)
}

func TestSearchRequiresQuery(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t, &backendFake{}, "")

	for _, searchType := range []string{"concepts", "sources", "documents"} {
		searchType := searchType
		t.Run(searchType, func(t *testing.T) {
			t.Parallel()
			result, err := h.Search(context.Background(), callReq(map[string]any{"type": searchType}))
			require.NoError(t, err)
			assert.Equal(t, "Missing required argument: query", envelopeOf(t, result).Error)
		})
	}
}

func TestSearchDefaultsToConcepts(t *testing.T) {
	t.Parallel()
	called := false
	fake := &backendFake{
		searchConcepts: func(_ context.Context, req *kgclient.SearchRequest) (*kgclient.SearchResponse, error) {
			called = true
			return &kgclient.SearchResponse{Query: req.Query}, nil
		},
	}
	h := newTestHandler(t, fake, "")

	result, err := h.Search(context.Background(), callReq(map[string]any{"query": "entropy"}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.True(t, called, "omitting type must search concepts")
}

func TestSearchSourcesForwardsOntology(t *testing.T) {
	t.Parallel()
	var got *kgclient.SourceSearchRequest
	fake := &backendFake{
		searchSources: func(_ context.Context, req *kgclient.SourceSearchRequest) (*kgclient.SourceSearchResponse, error) {
			got = req
			return &kgclient.SourceSearchResponse{Query: req.Query}, nil
		},
	}
	h := newTestHandler(t, fake, "")

	result, err := h.Search(context.Background(), callReq(map[string]any{
		"query":    "phase transitions",
		"type":     "sources",
		"ontology": "physics",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	require.NotNil(t, got)
	assert.Equal(t, "physics", got.Ontology)
	assert.True(t, got.IncludeConcepts)
	assert.True(t, got.IncludeFullText)
}

func TestSearchUnknownType(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t, &backendFake{}, "")

	result, err := h.Search(context.Background(), callReq(map[string]any{
		"query": "entropy",
		"type":  "emotions",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Unknown search action: emotions", envelopeOf(t, result).Error)
}
