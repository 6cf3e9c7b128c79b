// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package format_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kgfoundry/kgmcp/pkg/format"
	"github.com/kgfoundry/kgmcp/pkg/kgclient"
)

func TestConceptSearchRendersAnalytics(t *testing.T) {
	t.Parallel()

	resp := &kgclient.SearchResponse{
		Query:         "quantum entanglement",
		Count:         2,
		ThresholdUsed: ptr(0.7),
		Results: []kgclient.ConceptSearchResult{
			{
				ConceptID:             "c-1",
				Label:                 "Entanglement",
				Score:                 0.91,
				EvidenceCount:         4,
				GroundingStrength:     ptr(0.8),
				DiversityScore:        ptr(0.65),
				DiversityRelatedCount: ptr(3),
				Documents:             []string{"physics.pdf"},
				SampleEvidence: []kgclient.ConceptInstance{
					{Quote: "spooky action at a distance", Document: "physics.pdf", Paragraph: 7},
				},
			},
			{ConceptID: "c-2", Label: "Bell Inequality", Score: 0.74, EvidenceCount: 1},
		},
		BelowThresholdCount: ptr(3),
		SuggestedThreshold:  ptr(0.55),
	}

	out := format.ConceptSearch(resp)
	assert.Contains(t, out, `# Search Results: "quantum entanglement"`)
	assert.Contains(t, out, "Found 2 concept(s) at similarity >= 0.70")
	assert.Contains(t, out, "## 1. Entanglement (similarity 0.91)")
	assert.Contains(t, out, "Well-supported (+80%)")
	assert.Contains(t, out, "✅ 65% (3 related concept(s))")
	assert.Contains(t, out, `"spooky action at a distance" — physics.pdf ¶7`)
	assert.Contains(t, out, "3 additional match(es) fell below the threshold.")
	assert.Contains(t, out, "min_similarity=0.55")
}

func TestConceptSearchEmptyReportsNearMiss(t *testing.T) {
	t.Parallel()

	resp := &kgclient.SearchResponse{
		Query: "phlogiston",
		TopMatch: &kgclient.ConceptSearchResult{
			Label: "Combustion",
			Score: 0.62,
		},
		SuggestedThreshold: ptr(0.55),
	}

	out := format.ConceptSearch(resp)
	assert.Contains(t, out, "No concepts found.")
	assert.Contains(t, out, "Closest match below threshold: Combustion (similarity 0.62).")
	assert.Contains(t, out, "Suggested min_similarity: 0.55.")
}

func TestConceptSearchDeterministic(t *testing.T) {
	t.Parallel()

	resp := &kgclient.SearchResponse{
		Query: "energy",
		Count: 1,
		Results: []kgclient.ConceptSearchResult{
			{ConceptID: "c-9", Label: "Energy", Score: 0.8, EvidenceCount: 2},
		},
	}
	assert.Equal(t, format.ConceptSearch(resp), format.ConceptSearch(resp))
}

func TestSourceSearchMarksStale(t *testing.T) {
	t.Parallel()

	resp := &kgclient.SourceSearchResponse{
		Query: "thermodynamics",
		Count: 1,
		Results: []kgclient.SourceSearchResult{
			{
				SourceID:   "src-42",
				Document:   "notes.md",
				Paragraph:  3,
				Similarity: 0.82,
				IsStale:    true,
				MatchedChunk: &kgclient.SourceChunk{
					ChunkText:  strings.Repeat("entropy ", 40),
					ChunkIndex: 2,
					Similarity: 0.82,
				},
			},
		},
	}

	out := format.SourceSearch(resp)
	assert.Contains(t, out, "## 1. src-42 (stale)")
	assert.Contains(t, out, "notes.md ¶3")
	assert.Contains(t, out, "...")
}

func TestConceptDetailsTruncatesContextNotQuote(t *testing.T) {
	t.Parallel()

	longText := strings.Repeat("x", 300)
	details := &kgclient.ConceptDetails{
		ConceptID: "c-1",
		Label:     "Entropy",
		Instances: []kgclient.ConceptInstance{
			{Quote: "disorder always increases", FullText: longText, Document: "notes.md"},
		},
	}

	truncated := format.ConceptDetails(details, true)
	assert.Contains(t, truncated, `"disorder always increases"`)
	assert.Contains(t, truncated, strings.Repeat("x", 200)+"...")
	assert.NotContains(t, truncated, strings.Repeat("x", 201))

	full := format.ConceptDetails(details, false)
	assert.Contains(t, full, longText)
}
