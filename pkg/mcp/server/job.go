// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kgfoundry/kgmcp/pkg/format"
	"github.com/kgfoundry/kgmcp/pkg/kgclient"
)

type jobArgs struct {
	Action    string `json:"action"`
	JobID     string `json:"job_id,omitempty"`
	Status    string `json:"status,omitempty"`
	Force     *bool  `json:"force,omitempty"`
	Confirm   *bool  `json:"confirm,omitempty"`
	OlderThan string `json:"older_than,omitempty"`
	JobType   string `json:"job_type,omitempty"`
}

func bindJobArgs(request mcp.CallToolRequest, needJobID bool) (*jobArgs, *mcp.CallToolResult) {
	args := &jobArgs{}
	if errResult := bindArguments(request, args); errResult != nil {
		return nil, errResult
	}
	if needJobID && args.JobID == "" {
		return nil, validationError("Missing required argument: job_id")
	}
	return args, nil
}

func (h *Handler) jobStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, errResult := bindJobArgs(request, true)
	if errResult != nil {
		return errResult, nil
	}
	job, err := h.backend.GetJobStatus(ctx, args.JobID)
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.JobStatus(job)), nil
}

func (h *Handler) jobList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, errResult := bindJobArgs(request, false)
	if errResult != nil {
		return errResult, nil
	}
	jobs, err := h.backend.ListJobs(ctx, args.Status)
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.JobList(jobs, args.Status)), nil
}

func (h *Handler) jobApprove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, errResult := bindJobArgs(request, true)
	if errResult != nil {
		return errResult, nil
	}
	resp, err := h.backend.ApproveJob(ctx, args.JobID)
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.JobApproved(resp)), nil
}

func (h *Handler) jobCancel(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, errResult := bindJobArgs(request, true)
	if errResult != nil {
		return errResult, nil
	}
	resp, err := h.backend.CancelJob(ctx, args.JobID)
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.JobAck(resp)), nil
}

func (h *Handler) jobDelete(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, errResult := bindJobArgs(request, true)
	if errResult != nil {
		return errResult, nil
	}
	resp, err := h.backend.DeleteJob(ctx, args.JobID, orBool(args.Force, false))
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.JobAck(resp)), nil
}

// jobCleanup always runs as a dry run unless the caller explicitly confirms;
// a dry_run argument from the caller is ignored so a bad default can never
// bulk-delete jobs.
func (h *Handler) jobCleanup(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, errResult := bindJobArgs(request, false)
	if errResult != nil {
		return errResult, nil
	}
	confirm := orBool(args.Confirm, false)
	resp, err := h.backend.CleanupJobs(ctx, confirm, !confirm, kgclient.CleanupFilters{
		Status:    args.Status,
		OlderThan: args.OlderThan,
		JobType:   args.JobType,
	})
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.JobsCleanup(resp)), nil
}
