// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"fmt"
	"strings"

	"github.com/kgfoundry/kgmcp/pkg/kgclient"
)

// ConceptCreated renders a direct concept creation or match.
func ConceptCreated(c *kgclient.ConceptResult) string {
	var b strings.Builder
	if c.MatchedExisting {
		fmt.Fprintf(&b, "# Matched Existing Concept: %s\n", c.Label)
	} else {
		fmt.Fprintf(&b, "# Concept Created: %s\n", c.Label)
	}
	writeConceptResult(&b, c)
	return b.String()
}

// ConceptUpdated renders a concept edit.
func ConceptUpdated(c *kgclient.ConceptResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Concept Updated: %s\n", c.Label)
	writeConceptResult(&b, c)
	return b.String()
}

func writeConceptResult(b *strings.Builder, c *kgclient.ConceptResult) {
	kv(b, "ID", c.ConceptID)
	kv(b, "Ontology", c.Ontology)
	kv(b, "Description", c.Description)
	if len(c.SearchTerms) > 0 {
		fmt.Fprintf(b, "- Search terms: %s\n", strings.Join(c.SearchTerms, ", "))
	}
	kv(b, "Creation method", c.CreationMethod)
	if c.HasEmbedding {
		b.WriteString("- Embedding: stored\n")
	}
}

// ConceptDeleted renders a concept deletion; the backend returns no body.
func ConceptDeleted(conceptID string, cascade bool) string {
	if cascade {
		return fmt.Sprintf("Deleted concept %s and its relationships.", conceptID)
	}
	return fmt.Sprintf("Deleted concept %s.", conceptID)
}

// ConceptListing renders a page of concepts.
func ConceptListing(resp *kgclient.ConceptList) string {
	if len(resp.Concepts) == 0 {
		return noResults("concepts", "Create one with the graph tool or ingest a document.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Concepts (%d of %d)\n\n", len(resp.Concepts), resp.Total)
	for i := range resp.Concepts {
		c := &resp.Concepts[i]
		fmt.Fprintf(&b, "- %s (%s)", c.Label, c.ConceptID)
		if c.Ontology != "" {
			fmt.Fprintf(&b, " [%s]", c.Ontology)
		}
		if c.Description != "" {
			fmt.Fprintf(&b, " — %s", truncate(c.Description, evidenceLimit))
		}
		b.WriteString("\n")
	}
	if resp.Total > len(resp.Concepts) {
		fmt.Fprintf(&b, "\nUse offset=%d for the next page.\n", resp.Offset+len(resp.Concepts))
	}
	return b.String()
}

// EdgeCreated renders a direct edge creation.
func EdgeCreated(e *kgclient.EdgeResult) string {
	var b strings.Builder
	b.WriteString("# Edge Created\n")
	writeEdgeResult(&b, e)
	return b.String()
}

// EdgeUpdated renders an edge edit.
func EdgeUpdated(e *kgclient.EdgeResult) string {
	var b strings.Builder
	b.WriteString("# Edge Updated\n")
	writeEdgeResult(&b, e)
	return b.String()
}

func writeEdgeResult(b *strings.Builder, e *kgclient.EdgeResult) {
	kv(b, "ID", e.EdgeID)
	fmt.Fprintf(b, "- %s -[%s]-> %s\n", e.FromConceptID, e.RelationshipType, e.ToConceptID)
	kv(b, "Category", e.Category)
	if e.Confidence > 0 {
		fmt.Fprintf(b, "- Confidence: %s\n", num(e.Confidence))
	}
	kv(b, "Source", e.Source)
}

// EdgeDeleted renders an edge deletion; the backend returns no body.
func EdgeDeleted(edgeID string) string {
	return fmt.Sprintf("Deleted edge %s.", edgeID)
}

// EdgeListing renders a page of edges.
func EdgeListing(resp *kgclient.EdgeList) string {
	if len(resp.Edges) == 0 {
		return noResults("edges", "Create one with the graph tool; ingestion also extracts them.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Edges (%d of %d)\n\n", len(resp.Edges), resp.Total)
	for i := range resp.Edges {
		e := &resp.Edges[i]
		fmt.Fprintf(&b, "- %s: %s -[%s]-> %s", e.EdgeID, e.FromConceptID, e.RelationshipType, e.ToConceptID)
		if e.Category != "" {
			fmt.Fprintf(&b, " (%s)", e.Category)
		}
		if e.Confidence > 0 {
			fmt.Fprintf(&b, " confidence %s", num(e.Confidence))
		}
		b.WriteString("\n")
	}
	if resp.Total > len(resp.Edges) {
		fmt.Fprintf(&b, "\nUse offset=%d for the next page.\n", resp.Offset+len(resp.Edges))
	}
	return b.String()
}

// QueueOpOutcome records what happened to one queued graph operation.
// Status is "ok", "error", or "skipped"; Detail carries the per-op
// rendering or the error text.
type QueueOpOutcome struct {
	Index  int
	Op     string
	Entity string
	Status string
	Detail string
}

// QueueSummary renders the outcome of a queued batch in input order. The
// summary is informational even when operations failed; per-op status
// carries the failures.
func QueueSummary(outcomes []QueueOpOutcome) string {
	succeeded, failed, skipped := 0, 0, 0
	for i := range outcomes {
		switch outcomes[i].Status {
		case "ok":
			succeeded++
		case "error":
			failed++
		case "skipped":
			skipped++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Queue: %d operation(s)\n\n", len(outcomes))
	fmt.Fprintf(&b, "Succeeded: %d, failed: %d, skipped: %d\n", succeeded, failed, skipped)
	for i := range outcomes {
		o := &outcomes[i]
		fmt.Fprintf(&b, "\n## %d. %s %s — %s\n", o.Index+1, o.Op, o.Entity, o.Status)
		if o.Detail != "" {
			fmt.Fprintf(&b, "%s\n", o.Detail)
		}
	}
	return b.String()
}
