// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kgfoundry/kgmcp/pkg/kgclient"
)

// ArtifactList renders a page of stored analysis artifacts.
func ArtifactList(resp *kgclient.ArtifactList) string {
	if len(resp.Artifacts) == 0 {
		return noResults("artifacts", "Analysis jobs store their results here when they complete.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Artifacts (%d of %d)\n\n", len(resp.Artifacts), resp.Total)
	for i := range resp.Artifacts {
		a := &resp.Artifacts[i]
		fmt.Fprintf(&b, "- #%d %s", a.ID, a.ArtifactType)
		if a.Name != "" {
			fmt.Fprintf(&b, " %q", a.Name)
		}
		if a.Ontology != "" {
			fmt.Fprintf(&b, " (ontology: %s)", a.Ontology)
		}
		if !a.IsFresh {
			b.WriteString(" [stale]")
		}
		if a.CreatedAt != "" {
			fmt.Fprintf(&b, " — %s", a.CreatedAt)
		}
		b.WriteString("\n")
	}
	if resp.Total > len(resp.Artifacts) {
		fmt.Fprintf(&b, "\nUse offset=%d for the next page.\n", resp.Offset+len(resp.Artifacts))
	}
	return b.String()
}

// ArtifactDetail renders one artifact's metadata.
func ArtifactDetail(a *kgclient.ArtifactMetadata) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Artifact #%d: %s\n", a.ID, a.ArtifactType)
	kv(&b, "Name", a.Name)
	kv(&b, "Representation", a.Representation)
	kv(&b, "Ontology", a.Ontology)
	if a.GraphEpoch > 0 {
		fmt.Fprintf(&b, "- Graph epoch: %d\n", a.GraphEpoch)
	}
	fmt.Fprintf(&b, "- Fresh: %t\n", a.IsFresh)
	kv(&b, "Created", a.CreatedAt)
	kv(&b, "Expires", a.ExpiresAt)
	if len(a.ConceptIDs) > 0 {
		fmt.Fprintf(&b, "- Concepts: %s\n", strings.Join(a.ConceptIDs, ", "))
	}
	if len(a.Parameters) > 0 {
		b.WriteString("\n## Parameters\n")
		for _, key := range sortedKeys(a.Parameters) {
			fmt.Fprintf(&b, "- %s: %s\n", key, renderValue(a.Parameters[key]))
		}
	}
	if a.HasInlineResult {
		fmt.Fprintf(&b, "\nFetch the stored result with action=payload, artifact_id=%d.\n", a.ID)
	}
	return b.String()
}

// ArtifactPayload renders an artifact together with its stored result.
// The payload keeps its structure: it is emitted as indented JSON so the
// host can reason over it without a lossy prose rendering.
func ArtifactPayload(a *kgclient.ArtifactWithPayload) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Artifact #%d Payload: %s\n", a.ID, a.ArtifactType)
	kv(&b, "Name", a.Name)
	if len(a.Payload) == 0 {
		b.WriteString("\nNo inline payload is stored for this artifact.\n")
		return b.String()
	}

	encoded, err := json.MarshalIndent(a.Payload, "", "  ")
	if err != nil {
		fmt.Fprintf(&b, "\nPayload could not be rendered: %v\n", err)
		return b.String()
	}
	fmt.Fprintf(&b, "\n```json\n%s\n```\n", encoded)
	return b.String()
}
