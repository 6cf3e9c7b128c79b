// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"fmt"
	"strings"

	"github.com/kgfoundry/kgmcp/pkg/kgclient"
)

// SourceMetadata renders the full provenance record of one source. The
// full text is never truncated here; this tool exists to recover the
// evidence verbatim.
func SourceMetadata(m *kgclient.SourceMetadata) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Source: %s\n", m.SourceID)
	kv(&b, "Document", m.Document)
	if m.Paragraph > 0 {
		fmt.Fprintf(&b, "- Paragraph: %d\n", m.Paragraph)
	}
	kv(&b, "File path", m.FilePath)
	kv(&b, "Content type", m.ContentType)
	kv(&b, "Storage key", m.StorageKey)
	fmt.Fprintf(&b, "- Embeddings: text=%t, visual=%t\n", m.HasTextEmbedding, m.HasVisualEmbedding)
	if m.FullText != "" {
		fmt.Fprintf(&b, "\n## Full Text\n\n%s\n", m.FullText)
	}
	return b.String()
}

// SourceImageCaption is the text part that accompanies an image source's
// image part.
func SourceImageCaption(m *kgclient.SourceMetadata) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Image source %s", m.SourceID)
	if m.Document != "" {
		fmt.Fprintf(&b, " from %s", m.Document)
	}
	if m.Paragraph > 0 {
		fmt.Fprintf(&b, " ¶%d", m.Paragraph)
	}
	b.WriteString(".")
	if m.FullText != "" {
		fmt.Fprintf(&b, " Extracted text:\n\n%s", m.FullText)
	}
	return b.String()
}
