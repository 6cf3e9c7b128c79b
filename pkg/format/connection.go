// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"fmt"
	"strings"

	"github.com/kgfoundry/kgmcp/pkg/kgclient"
)

// Connection renders the result of an exact (ID-to-ID) connection search.
// Paths longer than five hops are rendered in segments.
func Connection(resp *kgclient.ConnectionResponse) string {
	if len(resp.Paths) == 0 {
		return noResults("connection paths",
			fmt.Sprintf("No route within %d hop(s); try a larger max_hops.", resp.MaxHops))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Connection: %s → %s\n\n", resp.FromID, resp.ToID)
	fmt.Fprintf(&b, "Found %d path(s) within %d hop(s)\n", resp.Count, resp.MaxHops)
	writePaths(&b, resp.Paths)
	return b.String()
}

// ConnectionBySearch renders the result of a semantic connection search,
// including how each query resolved to a concept.
func ConnectionBySearch(resp *kgclient.ConnectionSearchResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Connection: %q → %q\n\n", resp.FromQuery, resp.ToQuery)

	if resp.FromConcept == nil || resp.ToConcept == nil {
		writeUnresolved(&b, "from_query", resp.FromQuery, resp.FromConcept,
			resp.FromNearMisses, resp.FromSuggestedThreshold)
		writeUnresolved(&b, "to_query", resp.ToQuery, resp.ToConcept,
			resp.ToNearMisses, resp.ToSuggestedThreshold)
		return b.String()
	}

	b.WriteString("Resolved endpoints:\n")
	writeEndpoint(&b, "From", resp.FromConcept, resp.FromSimilarity)
	writeEndpoint(&b, "To", resp.ToConcept, resp.ToSimilarity)

	if len(resp.Paths) == 0 {
		b.WriteString("\n")
		b.WriteString(noResults("connection paths",
			fmt.Sprintf("No route within %d hop(s); try a larger max_hops.", resp.MaxHops)))
		return b.String()
	}

	fmt.Fprintf(&b, "\nFound %d path(s) within %d hop(s)\n", resp.Count, resp.MaxHops)
	writePaths(&b, resp.Paths)
	return b.String()
}

func writeEndpoint(b *strings.Builder, role string, node *kgclient.PathNode, similarity *float64) {
	fmt.Fprintf(b, "- %s: %s (%s)", role, node.Label, node.ID)
	if similarity != nil {
		fmt.Fprintf(b, ", similarity %s", num(*similarity))
	}
	b.WriteString("\n")
}

func writeUnresolved(b *strings.Builder, field, query string, node *kgclient.PathNode, nearMisses *int, suggested *float64) {
	if node != nil {
		return
	}
	fmt.Fprintf(b, "Could not resolve %s %q to a concept.", field, query)
	if nearMisses != nil && *nearMisses > 0 {
		fmt.Fprintf(b, " %d near miss(es) below the threshold.", *nearMisses)
	}
	if suggested != nil {
		fmt.Fprintf(b, " Retry with threshold=%s.", num(*suggested))
	}
	b.WriteString("\n")
}

func writePaths(b *strings.Builder, paths []kgclient.ConnectionPath) {
	for i, path := range paths {
		b.WriteString("\n---\n\n")
		fmt.Fprintf(b, "## Path %d (%d hop(s))\n\n", i+1, path.Hops)

		segments := SegmentPath(path.Nodes, path.Relationships)
		for si, seg := range segments {
			if len(segments) > 1 {
				fmt.Fprintf(b, "Segment %d/%d:\n", si+1, len(segments))
			}
			b.WriteString(chain(seg.Nodes, seg.Relationships))
			b.WriteString("\n")
		}
		writeNodeNotes(b, path.Nodes)
	}
}

// chain renders "A → [REL] → B → [REL] → C".
func chain(nodes []kgclient.PathNode, relationships []string) string {
	var parts []string
	for i, node := range nodes {
		parts = append(parts, node.Label)
		if i < len(relationships) {
			parts = append(parts, "["+relationships[i]+"]")
		}
	}
	return strings.Join(parts, " → ")
}

func writeNodeNotes(b *strings.Builder, nodes []kgclient.PathNode) {
	var notes []string
	for _, node := range nodes {
		if node.GroundingStrength == nil && len(node.SampleEvidence) == 0 {
			continue
		}
		line := fmt.Sprintf("- %s (%s)", node.Label, node.ID)
		if node.GroundingStrength != nil {
			line += ": " + grounding(*node.GroundingStrength)
		}
		if len(node.SampleEvidence) > 0 {
			line += fmt.Sprintf(" — %q", node.SampleEvidence[0].Quote)
		}
		notes = append(notes, line)
	}
	if len(notes) == 0 {
		return
	}
	b.WriteString("\nNodes:\n")
	for _, note := range notes {
		b.WriteString(note + "\n")
	}
}
