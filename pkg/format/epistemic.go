// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"fmt"
	"strings"

	"github.com/kgfoundry/kgmcp/pkg/kgclient"
)

// EpistemicStatusList renders the status of every measured vocab type as
// one summary line each.
func EpistemicStatusList(resp *kgclient.EpistemicStatusList) string {
	if len(resp.Statuses) == 0 {
		return noResults("epistemic statuses", "Run the measure action to compute them.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Epistemic Status (%d vocab type(s))\n\n", resp.Count)
	for i := range resp.Statuses {
		s := &resp.Statuses[i]
		fmt.Fprintf(&b, "- %s: %s — avg grounding %s over %d concept(s)\n",
			s.VocabType, s.Status, GroundingPercent(s.AvgGrounding), s.MeasuredConcepts)
	}
	return b.String()
}

// EpistemicStatusDetail renders the measurement record of one vocab type
// or relationship scope.
func EpistemicStatusDetail(s *kgclient.EpistemicStatus) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Epistemic Status: %s\n", s.VocabType)
	kv(&b, "Classification", s.Status)
	fmt.Fprintf(&b, "- Grounding: avg %s, std %s\n", GroundingPercent(s.AvgGrounding), num(s.StdGrounding))
	fmt.Fprintf(&b, "- Range: %s to %s\n", GroundingPercent(s.MinGrounding), GroundingPercent(s.MaxGrounding))
	fmt.Fprintf(&b, "- Edges: %d total, %d sampled\n", s.TotalEdges, s.SampledEdges)
	fmt.Fprintf(&b, "- Concepts measured: %d\n", s.MeasuredConcepts)
	kv(&b, "Measured at", s.MeasurementTimestamp)
	return b.String()
}

// EpistemicMeasureSubmitted renders the ack for a measurement job.
func EpistemicMeasureSubmitted(ack *kgclient.JobSubmitAck) string {
	return jobSubmitted("Epistemic Measurement", ack)
}

// PolarityAnalysisSubmitted renders the ack for a polarity-axis job.
func PolarityAnalysisSubmitted(ack *kgclient.JobSubmitAck) string {
	return jobSubmitted("Polarity Axis Analysis", ack)
}

func jobSubmitted(what string, ack *kgclient.JobSubmitAck) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s Submitted\n", what)
	kv(&b, "Job", ack.JobID)
	kv(&b, "Status", ack.Status)
	kv(&b, "Message", ack.Message)
	fmt.Fprintf(&b, "\nTrack it with the job tool: action=status, job_id=%s.\n", ack.JobID)
	return b.String()
}
