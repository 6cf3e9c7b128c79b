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

func TestJobCleanupDefaultsToDryRun(t *testing.T) {
	t.Parallel()
	var gotConfirm, gotDryRun bool
	var gotFilters kgclient.CleanupFilters
	fake := &backendFake{
		cleanupJobs: func(_ context.Context, confirm, dryRun bool, filters kgclient.CleanupFilters) (*kgclient.CleanupResponse, error) {
			gotConfirm, gotDryRun, gotFilters = confirm, dryRun, filters
			return &kgclient.CleanupResponse{
				DryRun:       true,
				JobsToDelete: 3,
				Jobs: []kgclient.CleanupJobItem{
					{JobID: "job-1", Status: "failed", JobType: "text", CreatedAt: "2025-06-01"},
				},
			}, nil
		},
	}
	h := newTestHandler(t, fake, "")

	// dry_run from the caller is not an accepted argument; only an
	// explicit confirm=true may turn the preview into a deletion.
	result, err := h.Job(context.Background(), callReq(map[string]any{
		"action":     "cleanup",
		"dry_run":    false,
		"status":     "failed",
		"older_than": "7d",
		"job_type":   "text",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	assert.False(t, gotConfirm)
	assert.True(t, gotDryRun, "an unconfirmed cleanup must stay a dry run")
	assert.Equal(t, kgclient.CleanupFilters{Status: "failed", OlderThan: "7d", JobType: "text"}, gotFilters)

	text := textOf(t, result)
	assert.Contains(t, text, "# Cleanup Preview: 3 job(s) would be deleted")
	assert.Contains(t, text, "Re-run with confirm=true to delete.")
}

func TestJobCleanupConfirmed(t *testing.T) {
	t.Parallel()
	var gotConfirm, gotDryRun bool
	fake := &backendFake{
		cleanupJobs: func(_ context.Context, confirm, dryRun bool, _ kgclient.CleanupFilters) (*kgclient.CleanupResponse, error) {
			gotConfirm, gotDryRun = confirm, dryRun
			return &kgclient.CleanupResponse{Success: true, JobsDeleted: 3}, nil
		},
	}
	h := newTestHandler(t, fake, "")

	result, err := h.Job(context.Background(), callReq(map[string]any{
		"action":  "cleanup",
		"confirm": true,
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	assert.True(t, gotConfirm)
	assert.False(t, gotDryRun)
	assert.Contains(t, textOf(t, result), "# Cleanup Complete: 3 job(s) deleted")
}

func TestJobActionsRequireJobID(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t, &backendFake{}, "")

	for _, action := range []string{"status", "approve", "cancel", "delete"} {
		action := action
		t.Run(action, func(t *testing.T) {
			t.Parallel()
			result, err := h.Job(context.Background(), callReq(map[string]any{"action": action}))
			require.NoError(t, err)
			assert.Equal(t, "Missing required argument: job_id", envelopeOf(t, result).Error)
		})
	}
}

func TestJobDeleteForwardsForce(t *testing.T) {
	t.Parallel()
	var gotID string
	var gotForce bool
	fake := &backendFake{
		deleteJob: func(_ context.Context, jobID string, force bool) (*kgclient.CancelJobResponse, error) {
			gotID, gotForce = jobID, force
			return &kgclient.CancelJobResponse{JobID: jobID, Deleted: true}, nil
		},
	}
	h := newTestHandler(t, fake, "")

	result, err := h.Job(context.Background(), callReq(map[string]any{
		"action": "delete",
		"job_id": "job-9",
		"force":  true,
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	assert.Equal(t, "job-9", gotID)
	assert.True(t, gotForce)
	assert.Contains(t, textOf(t, result), "# Job Deleted: job-9")
}

func TestJobListForwardsStatusFilter(t *testing.T) {
	t.Parallel()
	var gotStatus string
	fake := &backendFake{
		listJobs: func(_ context.Context, status string) ([]kgclient.JobStatus, error) {
			gotStatus = status
			return nil, nil
		},
	}
	h := newTestHandler(t, fake, "")

	result, err := h.Job(context.Background(), callReq(map[string]any{
		"action": "list",
		"status": "awaiting_approval",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.Equal(t, "awaiting_approval", gotStatus)
}
