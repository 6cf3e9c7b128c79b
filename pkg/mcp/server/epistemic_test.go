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

func TestEpistemicMeasureDefaults(t *testing.T) {
	t.Parallel()
	var got *kgclient.MeasureEpistemicRequest
	fake := &backendFake{
		measureEpistemic: func(_ context.Context, req *kgclient.MeasureEpistemicRequest) (*kgclient.JobSubmitAck, error) {
			got = req
			return &kgclient.JobSubmitAck{JobID: "job-1", Status: "queued"}, nil
		},
	}
	h := newTestHandler(t, fake, "")

	result, err := h.EpistemicStatus(context.Background(), callReq(map[string]any{"action": "measure"}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	require.NotNil(t, got)
	assert.Equal(t, 100, got.SampleSize)
	assert.True(t, got.Store)
	assert.False(t, got.Verbose)
	assert.Empty(t, got.VocabTypes)
}

func TestEpistemicShowRequiresScope(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t, &backendFake{}, "")

	result, err := h.EpistemicStatus(context.Background(), callReq(map[string]any{"action": "show"}))
	require.NoError(t, err)
	assert.Equal(t, "Missing required argument: scope", envelopeOf(t, result).Error)
}

func TestPolarityRequiresBothPoles(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t, &backendFake{}, "")

	result, err := h.AnalyzePolarityAxis(context.Background(), callReq(map[string]any{
		"negative_pole_id": "c2",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Missing required argument: positive_pole_id", envelopeOf(t, result).Error)

	result, err = h.AnalyzePolarityAxis(context.Background(), callReq(map[string]any{
		"positive_pole_id": "c1",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Missing required argument: negative_pole_id", envelopeOf(t, result).Error)
}

func TestPolarityDefaults(t *testing.T) {
	t.Parallel()
	var got *kgclient.PolarityRequest
	fake := &backendFake{
		analyzePolarity: func(_ context.Context, req *kgclient.PolarityRequest) (*kgclient.JobSubmitAck, error) {
			got = req
			return &kgclient.JobSubmitAck{JobID: "job-2", Status: "queued"}, nil
		},
	}
	h := newTestHandler(t, fake, "")

	result, err := h.AnalyzePolarityAxis(context.Background(), callReq(map[string]any{
		"positive_pole_id": "c1",
		"negative_pole_id": "c2",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	require.NotNil(t, got)
	assert.True(t, got.AutoDiscover)
	assert.Equal(t, 20, got.MaxCandidates)
	assert.Equal(t, 1, got.MaxHops)
	assert.Contains(t, textOf(t, result), "job-2")
}

func TestArtifactShowRequiresID(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t, &backendFake{}, "")

	for _, action := range []string{"show", "payload"} {
		action := action
		t.Run(action, func(t *testing.T) {
			t.Parallel()
			result, err := h.Artifact(context.Background(), callReq(map[string]any{"action": action}))
			require.NoError(t, err)
			assert.Equal(t, "Missing required argument: artifact_id", envelopeOf(t, result).Error)
		})
	}
}

func TestArtifactListDefaults(t *testing.T) {
	t.Parallel()
	var got kgclient.ArtifactFilters
	fake := &backendFake{
		listArtifacts: func(_ context.Context, filters kgclient.ArtifactFilters) (*kgclient.ArtifactList, error) {
			got = filters
			return &kgclient.ArtifactList{}, nil
		},
	}
	h := newTestHandler(t, fake, "")

	result, err := h.Artifact(context.Background(), callReq(map[string]any{
		"action":        "list",
		"artifact_type": "polarity",
		"ontology":      "physics",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	assert.Equal(t, kgclient.ArtifactFilters{
		ArtifactType: "polarity",
		Ontology:     "physics",
		Limit:        50,
		Offset:       0,
	}, got)
}
