// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"fmt"
	"strings"

	"github.com/kgfoundry/kgmcp/pkg/kgclient"
)

// JobStatus renders the full status of one ingestion job.
func JobStatus(j *kgclient.JobStatus) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Job %s: %s\n", j.JobID, j.Status)
	kv(&b, "Type", j.JobType)
	kv(&b, "Ontology", j.Ontology)
	kv(&b, "Filename", j.Filename)
	kv(&b, "Source type", j.SourceType)
	kv(&b, "Processing mode", j.ProcessingMode)
	kv(&b, "Created", j.CreatedAt)
	kv(&b, "Started", j.StartedAt)
	kv(&b, "Completed", j.CompletedAt)
	kv(&b, "Approved", j.ApprovedAt)
	kv(&b, "Approved by", j.ApprovedBy)
	kv(&b, "Expires", j.ExpiresAt)
	kv(&b, "Content hash", j.ContentHash)

	if j.Progress != nil {
		writeJobProgress(&b, j.Progress)
	}
	if len(j.Analysis) > 0 {
		b.WriteString("\n## Analysis\n")
		for _, key := range sortedKeys(j.Analysis) {
			fmt.Fprintf(&b, "- %s: %s\n", key, renderValue(j.Analysis[key]))
		}
	}
	if len(j.Result) > 0 {
		b.WriteString("\n## Result\n")
		for _, key := range sortedKeys(j.Result) {
			fmt.Fprintf(&b, "- %s: %s\n", key, renderValue(j.Result[key]))
		}
	}
	if j.Error != "" {
		fmt.Fprintf(&b, "\nError: %s\n", j.Error)
	}
	if j.Status == "awaiting_approval" {
		fmt.Fprintf(&b, "\nApprove with the job tool: action=approve, job_id=%s.\n", j.JobID)
	}
	return b.String()
}

func writeJobProgress(b *strings.Builder, p *kgclient.JobProgress) {
	b.WriteString("\n## Progress\n")
	kv(b, "Stage", p.Stage)
	if p.ChunksTotal > 0 {
		fmt.Fprintf(b, "- Chunks: %d/%d (%.0f%%)\n", p.ChunksProcessed, p.ChunksTotal, p.Percent)
	}
	if p.ConceptsCreated > 0 {
		fmt.Fprintf(b, "- Concepts created: %d\n", p.ConceptsCreated)
	}
	if p.SourcesCreated > 0 {
		fmt.Fprintf(b, "- Sources created: %d\n", p.SourcesCreated)
	}
}

// JobList renders a one-line-per-job summary, newest first as returned
// by the backend.
func JobList(jobs []kgclient.JobStatus, statusFilter string) string {
	if len(jobs) == 0 {
		if statusFilter != "" {
			return noResults("jobs", fmt.Sprintf("No jobs with status %q.", statusFilter))
		}
		return noResults("jobs", "Ingest a document to start one.")
	}

	var b strings.Builder
	if statusFilter != "" {
		fmt.Fprintf(&b, "# Jobs (%d, status=%s)\n\n", len(jobs), statusFilter)
	} else {
		fmt.Fprintf(&b, "# Jobs (%d)\n\n", len(jobs))
	}
	for i := range jobs {
		j := &jobs[i]
		fmt.Fprintf(&b, "- %s [%s] %s", j.JobID, j.Status, j.JobType)
		if j.Filename != "" {
			fmt.Fprintf(&b, " — %s", j.Filename)
		}
		if j.Ontology != "" {
			fmt.Fprintf(&b, " (ontology: %s)", j.Ontology)
		}
		if j.Progress != nil && j.Progress.Percent > 0 {
			fmt.Fprintf(&b, " %.0f%%", j.Progress.Percent)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// JobApproved renders an approval acknowledgement.
func JobApproved(resp *kgclient.ApproveJobResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Job Approved: %s\n", resp.JobID)
	kv(&b, "Status", resp.Status)
	kv(&b, "Message", resp.Message)
	return b.String()
}

// JobAck renders a cancel or delete acknowledgement; the backend sets
// exactly one of the two flags depending on the purge mode.
func JobAck(resp *kgclient.CancelJobResponse) string {
	var b strings.Builder
	switch {
	case resp.Deleted:
		fmt.Fprintf(&b, "# Job Deleted: %s\n", resp.JobID)
	case resp.Cancelled:
		fmt.Fprintf(&b, "# Job Cancelled: %s\n", resp.JobID)
	default:
		fmt.Fprintf(&b, "# Job %s: no change\n", resp.JobID)
	}
	kv(&b, "Message", resp.Message)
	return b.String()
}

// JobsCleanup renders the cleanup report. A dry run lists what would be
// deleted and how to confirm; a confirmed run reports the deletion count.
func JobsCleanup(resp *kgclient.CleanupResponse) string {
	var b strings.Builder
	if resp.DryRun {
		fmt.Fprintf(&b, "# Cleanup Preview: %d job(s) would be deleted\n", resp.JobsToDelete)
		writeCleanupDetails(&b, resp)
		b.WriteString("\nThis was a dry run. Re-run with confirm=true to delete.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "# Cleanup Complete: %d job(s) deleted\n", resp.JobsDeleted)
	writeCleanupDetails(&b, resp)
	if resp.Message != "" {
		fmt.Fprintf(&b, "\n%s\n", resp.Message)
	}
	return b.String()
}

func writeCleanupDetails(b *strings.Builder, resp *kgclient.CleanupResponse) {
	if len(resp.Filters) > 0 {
		b.WriteString("\nFilters:\n")
		for _, key := range sortedKeys(resp.Filters) {
			fmt.Fprintf(b, "- %s: %s\n", key, renderValue(resp.Filters[key]))
		}
	}
	if len(resp.Jobs) > 0 {
		b.WriteString("\nJobs:\n")
		for _, j := range resp.Jobs {
			fmt.Fprintf(b, "- %s [%s] %s (created %s)\n", j.JobID, j.Status, j.JobType, j.CreatedAt)
		}
	}
}
