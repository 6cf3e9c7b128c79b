// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"fmt"
	"strings"

	"github.com/kgfoundry/kgmcp/pkg/kgclient"
)

// DocumentList renders a page of ingested documents.
func DocumentList(resp *kgclient.DocumentList) string {
	if len(resp.Documents) == 0 {
		return noResults("documents", "Ingest a file or text to create one.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Documents (%d of %d)\n\n", len(resp.Documents), resp.Total)
	for _, d := range resp.Documents {
		fmt.Fprintf(&b, "- %s", d.DocumentID)
		if d.Filename != "" {
			fmt.Fprintf(&b, " — %s", d.Filename)
		}
		if d.Ontology != "" {
			fmt.Fprintf(&b, " (ontology: %s)", d.Ontology)
		}
		fmt.Fprintf(&b, ": %d source(s), %d concept(s)", d.SourceCount, d.ConceptCount)
		if d.ContentType != "" {
			fmt.Fprintf(&b, " [%s]", d.ContentType)
		}
		b.WriteString("\n")
	}
	if resp.Total > len(resp.Documents) {
		fmt.Fprintf(&b, "\nUse offset=%d for the next page.\n", resp.Offset+len(resp.Documents))
	}
	return b.String()
}

// DocumentContent renders a document's stored chunks in paragraph order
// as returned by the backend.
func DocumentContent(resp *kgclient.DocumentContent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Document: %s\n", resp.DocumentID)
	kv(&b, "Content type", resp.ContentType)
	if len(resp.Content) > 0 {
		for _, key := range sortedKeys(resp.Content) {
			kv(&b, key, renderValue(resp.Content[key]))
		}
	}
	if len(resp.Chunks) == 0 {
		b.WriteString("\nNo stored chunks for this document.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "\n## Content (%d chunk(s))\n", len(resp.Chunks))
	for _, c := range resp.Chunks {
		fmt.Fprintf(&b, "\n¶%d (%s)\n%s\n", c.Paragraph, c.SourceID, c.FullText)
	}
	return b.String()
}

// DocumentConcepts renders the concepts evidenced in one document.
func DocumentConcepts(resp *kgclient.DocumentConcepts) string {
	if len(resp.Concepts) == 0 {
		return noResults("concepts", fmt.Sprintf("Document %s has no extracted concepts.", resp.DocumentID))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Concepts in %s (%d)\n", resp.DocumentID, resp.Total)
	if resp.Filename != "" {
		fmt.Fprintf(&b, "\nFile: %s\n", resp.Filename)
	}
	b.WriteString("\n")
	for _, c := range resp.Concepts {
		fmt.Fprintf(&b, "- %s (%s)", c.Name, c.ConceptID)
		if c.InstanceCount > 0 {
			fmt.Fprintf(&b, " — %d instance(s)", c.InstanceCount)
		}
		b.WriteString("\n")
	}
	return b.String()
}
