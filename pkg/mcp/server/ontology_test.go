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

func TestOntologyActionsRequireName(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t, &backendFake{}, "")

	for _, action := range []string{
		"info", "files", "create", "rename", "delete", "lifecycle",
		"scores", "score", "candidates", "affinity", "edges",
		"reassign", "dissolve",
	} {
		action := action
		t.Run(action, func(t *testing.T) {
			t.Parallel()
			result, err := h.Ontology(context.Background(), callReq(map[string]any{"action": action}))
			require.NoError(t, err)
			assert.Equal(t, "Missing required argument: name", envelopeOf(t, result).Error)
		})
	}
}

func TestOntologyCandidatesDefaultLimit(t *testing.T) {
	t.Parallel()
	var gotName string
	var gotLimit int
	fake := &backendFake{
		getOntologyCandidates: func(_ context.Context, name string, limit int) (*kgclient.ConceptDegrees, error) {
			gotName, gotLimit = name, limit
			return &kgclient.ConceptDegrees{Ontology: name}, nil
		},
	}
	h := newTestHandler(t, fake, "")

	result, err := h.Ontology(context.Background(), callReq(map[string]any{
		"action": "candidates",
		"name":   "physics",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.Equal(t, "physics", gotName)
	assert.Equal(t, 20, gotLimit)

	_, err = h.Ontology(context.Background(), callReq(map[string]any{
		"action": "candidates",
		"name":   "physics",
		"limit":  5,
	}))
	require.NoError(t, err)
	assert.Equal(t, 5, gotLimit)
}

func TestOntologyProposalReviewValidatesStatus(t *testing.T) {
	t.Parallel()
	called := false
	fake := &backendFake{
		reviewProposal: func(_ context.Context, _ string, _ *kgclient.ProposalReviewRequest) (*kgclient.Proposal, error) {
			called = true
			return &kgclient.Proposal{ID: "prop-1", Status: "approved"}, nil
		},
	}
	h := newTestHandler(t, fake, "")

	result, err := h.Ontology(context.Background(), callReq(map[string]any{
		"action":      "proposal_review",
		"proposal_id": "prop-1",
		"status":      "maybe",
	}))
	require.NoError(t, err)
	assert.Equal(t, `Invalid proposal status "maybe": must be approved or rejected`, envelopeOf(t, result).Error)
	assert.False(t, called)

	result, err = h.Ontology(context.Background(), callReq(map[string]any{
		"action": "proposal_review",
		"status": "approved",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Missing required argument: proposal_id", envelopeOf(t, result).Error)
}

func TestOntologyProposalReviewForwardsNotes(t *testing.T) {
	t.Parallel()
	var gotID string
	var gotReq *kgclient.ProposalReviewRequest
	fake := &backendFake{
		reviewProposal: func(_ context.Context, proposalID string, req *kgclient.ProposalReviewRequest) (*kgclient.Proposal, error) {
			gotID, gotReq = proposalID, req
			return &kgclient.Proposal{ID: proposalID, Status: req.Status}, nil
		},
	}
	h := newTestHandler(t, fake, "")

	result, err := h.Ontology(context.Background(), callReq(map[string]any{
		"action":      "proposal_review",
		"proposal_id": "prop-7",
		"status":      "rejected",
		"notes":       "splits an established cluster",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	assert.Equal(t, "prop-7", gotID)
	require.NotNil(t, gotReq)
	assert.Equal(t, "rejected", gotReq.Status)
	assert.Equal(t, "splits an established cluster", gotReq.Notes)
}

func TestOntologyRenameRequiresNewName(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t, &backendFake{}, "")

	result, err := h.Ontology(context.Background(), callReq(map[string]any{
		"action": "rename",
		"name":   "physics",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Missing required argument: new_name", envelopeOf(t, result).Error)
}

func TestOntologyReassignRequiresTargetAndSources(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t, &backendFake{}, "")

	result, err := h.Ontology(context.Background(), callReq(map[string]any{
		"action": "reassign",
		"name":   "physics",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Missing required argument: target_ontology", envelopeOf(t, result).Error)

	result, err = h.Ontology(context.Background(), callReq(map[string]any{
		"action":          "reassign",
		"name":            "physics",
		"target_ontology": "thermodynamics",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Missing required argument: source_ids", envelopeOf(t, result).Error)
}
