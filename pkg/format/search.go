// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"fmt"
	"strings"

	"github.com/kgfoundry/kgmcp/pkg/kgclient"
)

// ConceptSearch renders a concept search response.
func ConceptSearch(resp *kgclient.SearchResponse) string {
	if len(resp.Results) == 0 {
		return conceptSearchEmpty(resp)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Search Results: %q\n\n", resp.Query)
	fmt.Fprintf(&b, "Found %d concept(s)", resp.Count)
	if resp.ThresholdUsed != nil {
		fmt.Fprintf(&b, " at similarity >= %s", num(*resp.ThresholdUsed))
	}
	b.WriteString("\n")

	for i, r := range resp.Results {
		b.WriteString("\n---\n\n")
		fmt.Fprintf(&b, "## %d. %s (similarity %s)\n", i+1, r.Label, num(r.Score))
		kv(&b, "ID", r.ConceptID)
		kv(&b, "Description", r.Description)
		if r.GroundingStrength != nil {
			kv(&b, "Grounding", grounding(*r.GroundingStrength))
		}
		if r.DiversityScore != nil {
			b.WriteString(diversityLine(r.GroundingStrength, *r.DiversityScore, r.DiversityRelatedCount))
		}
		if r.EvidenceCount > 0 {
			kv(&b, "Evidence", fmt.Sprintf("%d instance(s)", r.EvidenceCount))
		}
		if len(r.Documents) > 0 {
			kv(&b, "Documents", strings.Join(r.Documents, ", "))
		}
		writeSampleEvidence(&b, r.SampleEvidence)
	}

	if resp.BelowThresholdCount != nil && *resp.BelowThresholdCount > 0 {
		b.WriteString("\n---\n\n")
		fmt.Fprintf(&b, "%d additional match(es) fell below the threshold.", *resp.BelowThresholdCount)
		if resp.SuggestedThreshold != nil {
			fmt.Fprintf(&b, " Retry with min_similarity=%s to include them.", num(*resp.SuggestedThreshold))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func conceptSearchEmpty(resp *kgclient.SearchResponse) string {
	var b strings.Builder
	b.WriteString(noResults("concepts", "Try a lower min_similarity or a broader query."))
	if resp.TopMatch != nil {
		fmt.Fprintf(&b, "\nClosest match below threshold: %s (similarity %s).",
			resp.TopMatch.Label, num(resp.TopMatch.Score))
	}
	if resp.SuggestedThreshold != nil {
		fmt.Fprintf(&b, "\nSuggested min_similarity: %s.", num(*resp.SuggestedThreshold))
	}
	return b.String()
}

func diversityLine(groundingStrength *float64, diversity float64, relatedCount *int) string {
	g := 0.0
	if groundingStrength != nil {
		g = *groundingStrength
	}
	line := fmt.Sprintf("- Diversity: %s %s", DiversityGlyph(g, diversity), DiversityPercent(diversity))
	if relatedCount != nil {
		line += fmt.Sprintf(" (%d related concept(s))", *relatedCount)
	}
	return line + "\n"
}

func writeSampleEvidence(b *strings.Builder, instances []kgclient.ConceptInstance) {
	if len(instances) == 0 {
		return
	}
	b.WriteString("- Sample evidence:\n")
	for _, inst := range instances {
		fmt.Fprintf(b, "  - %q", inst.Quote)
		if inst.Document != "" {
			fmt.Fprintf(b, " — %s", inst.Document)
			if inst.Paragraph > 0 {
				fmt.Fprintf(b, " ¶%d", inst.Paragraph)
			}
		}
		b.WriteString("\n")
	}
}

// SourceSearch renders a source passage search response.
func SourceSearch(resp *kgclient.SourceSearchResponse) string {
	if len(resp.Results) == 0 {
		return noResults("matching sources", "Try a lower min_similarity or a broader query.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Source Search: %q\n\n", resp.Query)
	fmt.Fprintf(&b, "Found %d source(s)", resp.Count)
	if resp.ThresholdUsed != nil {
		fmt.Fprintf(&b, " at similarity >= %s", num(*resp.ThresholdUsed))
	}
	b.WriteString("\n")

	for i, r := range resp.Results {
		b.WriteString("\n---\n\n")
		fmt.Fprintf(&b, "## %d. %s", i+1, r.SourceID)
		if r.IsStale {
			b.WriteString(" (stale)")
		}
		b.WriteString("\n")
		kv(&b, "Similarity", num(r.Similarity))
		if r.Document != "" {
			location := r.Document
			if r.Paragraph > 0 {
				location = fmt.Sprintf("%s ¶%d", r.Document, r.Paragraph)
			}
			kv(&b, "Document", location)
		}
		if r.MatchedChunk != nil && r.MatchedChunk.ChunkText != "" {
			fmt.Fprintf(&b, "- Matched chunk: %q\n", truncate(r.MatchedChunk.ChunkText, evidenceLimit))
		} else if r.FullText != "" {
			fmt.Fprintf(&b, "- Text: %q\n", truncate(r.FullText, evidenceLimit))
		}
		if len(r.Concepts) > 0 {
			labels := make([]string, 0, len(r.Concepts))
			for _, c := range r.Concepts {
				labels = append(labels, c.Label)
			}
			kv(&b, "Concepts", strings.Join(labels, ", "))
		}
	}
	return b.String()
}

// DocumentSearch renders a document-level search response.
func DocumentSearch(resp *kgclient.DocumentSearchResponse) string {
	if len(resp.Documents) == 0 {
		return noResults("matching documents", "Try a lower min_similarity or a broader query.")
	}

	var b strings.Builder
	b.WriteString("# Document Search\n\n")
	fmt.Fprintf(&b, "Showing %d of %d matching document(s)\n", resp.Returned, resp.TotalMatches)

	for i, d := range resp.Documents {
		b.WriteString("\n---\n\n")
		fmt.Fprintf(&b, "## %d. %s (similarity %s)\n", i+1, d.Filename, num(d.BestSimilarity))
		kv(&b, "ID", d.DocumentID)
		kv(&b, "Ontology", d.Ontology)
		kv(&b, "Content type", d.ContentType)
		if d.SourceCount > 0 {
			kv(&b, "Sources", fmt.Sprintf("%d", d.SourceCount))
		}
		if len(d.ConceptIDs) > 0 {
			kv(&b, "Concepts", fmt.Sprintf("%d", len(d.ConceptIDs)))
		}
	}
	return b.String()
}
