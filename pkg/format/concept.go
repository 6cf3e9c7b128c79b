// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kgfoundry/kgmcp/pkg/kgclient"
)

// ConceptDetails renders the full record of one concept. When
// truncateEvidence is true, per-instance full text is clamped to 200
// characters; quotes are never clamped.
func ConceptDetails(d *kgclient.ConceptDetails, truncateEvidence bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Concept: %s\n\n", d.Label)
	kv(&b, "ID", d.ConceptID)
	kv(&b, "Description", d.Description)
	if len(d.SearchTerms) > 0 {
		kv(&b, "Search terms", strings.Join(d.SearchTerms, ", "))
	}
	if d.GroundingStrength != nil {
		kv(&b, "Grounding", grounding(*d.GroundingStrength))
	}
	if d.DiversityScore != nil {
		b.WriteString(diversityLine(d.GroundingStrength, *d.DiversityScore, d.DiversityRelatedCount))
	}
	if len(d.Documents) > 0 {
		kv(&b, "Documents", strings.Join(d.Documents, ", "))
	}

	if len(d.Instances) > 0 {
		fmt.Fprintf(&b, "\n## Evidence (%d instance(s))\n\n", len(d.Instances))
		for i, inst := range d.Instances {
			fmt.Fprintf(&b, "%d. %q", i+1, inst.Quote)
			if inst.Document != "" {
				fmt.Fprintf(&b, " — %s", inst.Document)
				if inst.Paragraph > 0 {
					fmt.Fprintf(&b, " ¶%d", inst.Paragraph)
				}
			}
			b.WriteString("\n")
			if inst.FullText != "" && inst.FullText != inst.Quote {
				text := inst.FullText
				if truncateEvidence {
					text = truncate(text, evidenceLimit)
				}
				fmt.Fprintf(&b, "   Context: %q\n", text)
			}
		}
	}

	if len(d.Relationships) > 0 {
		fmt.Fprintf(&b, "\n## Relationships (%d)\n", len(d.Relationships))
		byType := make(map[string][]kgclient.ConceptRelationship)
		for _, rel := range d.Relationships {
			byType[rel.RelType] = append(byType[rel.RelType], rel)
		}
		for _, relType := range sortedKeys(byType) {
			fmt.Fprintf(&b, "\n### %s\n", relType)
			for _, rel := range byType[relType] {
				fmt.Fprintf(&b, "- %s (%s)", rel.ToLabel, rel.ToID)
				var notes []string
				if rel.Confidence != nil {
					notes = append(notes, "confidence "+num(*rel.Confidence))
				}
				if rel.EpistemicStatus != "" {
					notes = append(notes, rel.EpistemicStatus)
				}
				if len(notes) > 0 {
					fmt.Fprintf(&b, " [%s]", strings.Join(notes, ", "))
				}
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

// RelatedConcepts renders the neighborhood of a concept grouped by
// distance.
func RelatedConcepts(resp *kgclient.RelatedResponse) string {
	if len(resp.Results) == 0 {
		return noResults("related concepts", "Try a larger max_depth or different relationship types.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Related Concepts: %s\n\n", resp.ConceptID)
	fmt.Fprintf(&b, "Found %d concept(s) within %d hop(s)\n", resp.Count, resp.MaxDepth)

	byDistance := make(map[int][]kgclient.RelatedConcept)
	for _, r := range resp.Results {
		byDistance[r.Distance] = append(byDistance[r.Distance], r)
	}
	distances := make([]int, 0, len(byDistance))
	for d := range byDistance {
		distances = append(distances, d)
	}
	sort.Ints(distances)

	for _, distance := range distances {
		fmt.Fprintf(&b, "\n## Distance %d\n", distance)
		for _, r := range byDistance[distance] {
			fmt.Fprintf(&b, "- %s (%s)", r.Label, r.ConceptID)
			if len(r.PathTypes) > 0 {
				fmt.Fprintf(&b, " via %s", strings.Join(r.PathTypes, " → "))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
