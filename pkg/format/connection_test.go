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

func TestConnectionShortPathHasNoSegmentLabels(t *testing.T) {
	t.Parallel()

	nodes, rels := makePath(3)
	resp := &kgclient.ConnectionResponse{
		FromID:  "c1",
		ToID:    "c4",
		MaxHops: 5,
		Count:   1,
		Paths:   []kgclient.ConnectionPath{{Nodes: nodes, Relationships: rels, Hops: 3}},
	}

	out := format.Connection(resp)
	assert.Contains(t, out, "# Connection: c1 → c4")
	assert.Contains(t, out, "## Path 1 (3 hop(s))")
	assert.Contains(t, out, "Concept 1 → [REL_1] → Concept 2 → [REL_2] → Concept 3 → [REL_3] → Concept 4")
	assert.NotContains(t, out, "Segment")
}

func TestConnectionLongPathIsSegmented(t *testing.T) {
	t.Parallel()

	nodes, rels := makePath(7)
	resp := &kgclient.ConnectionResponse{
		FromID:  "c1",
		ToID:    "c8",
		MaxHops: 8,
		Count:   1,
		Paths:   []kgclient.ConnectionPath{{Nodes: nodes, Relationships: rels, Hops: 7}},
	}

	out := format.Connection(resp)
	assert.Contains(t, out, "Segment 1/2:")
	assert.Contains(t, out, "Segment 2/2:")
	// The shared node ends the first segment and starts the second.
	assert.Equal(t, 2, strings.Count(out, "Concept 6"))
}

func TestConnectionNoPathsSuggestsLargerMaxHops(t *testing.T) {
	t.Parallel()

	out := format.Connection(&kgclient.ConnectionResponse{FromID: "c1", ToID: "c2", MaxHops: 3})
	assert.Contains(t, out, "No connection paths found.")
	assert.Contains(t, out, "No route within 3 hop(s); try a larger max_hops.")
}

func TestConnectionBySearchUnresolvedEndpoint(t *testing.T) {
	t.Parallel()

	resp := &kgclient.ConnectionSearchResponse{
		FromQuery:              "caloric fluid",
		ToQuery:                "heat",
		ToConcept:              &kgclient.PathNode{ID: "c-7", Label: "Heat"},
		FromNearMisses:         ptr(2),
		FromSuggestedThreshold: ptr(0.6),
		MaxHops:                3,
	}

	out := format.ConnectionBySearch(resp)
	assert.Contains(t, out, `Could not resolve from_query "caloric fluid" to a concept.`)
	assert.Contains(t, out, "2 near miss(es) below the threshold.")
	assert.Contains(t, out, "Retry with threshold=0.60.")
	assert.NotContains(t, out, "Resolved endpoints")
}

func TestConnectionBySearchResolved(t *testing.T) {
	t.Parallel()

	nodes, rels := makePath(2)
	resp := &kgclient.ConnectionSearchResponse{
		FromQuery:      "entropy",
		ToQuery:        "information",
		FromConcept:    &kgclient.PathNode{ID: "c-1", Label: "Entropy"},
		ToConcept:      &kgclient.PathNode{ID: "c-2", Label: "Information"},
		FromSimilarity: ptr(0.92),
		ToSimilarity:   ptr(0.88),
		MaxHops:        3,
		Count:          1,
		Paths:          []kgclient.ConnectionPath{{Nodes: nodes, Relationships: rels, Hops: 2}},
	}

	out := format.ConnectionBySearch(resp)
	assert.Contains(t, out, "Resolved endpoints:")
	assert.Contains(t, out, "- From: Entropy (c-1), similarity 0.92")
	assert.Contains(t, out, "- To: Information (c-2), similarity 0.88")
	assert.Contains(t, out, "Found 1 path(s) within 3 hop(s)")
}
