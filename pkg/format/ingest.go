// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"fmt"
	"strings"

	"github.com/kgfoundry/kgmcp/pkg/kgclient"
)

// mimeByExtension maps the ingestible file extensions to their MIME
// types. Membership in this map is what makes a file "supported".
var mimeByExtension = map[string]string{
	".txt":  "text/plain",
	".md":   "text/markdown",
	".pdf":  "application/pdf",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
}

// MIMEForExtension reports the MIME type for ext and whether ext is a
// supported ingestion type. Matching is membership on the lowercased
// extension, so an unknown extension is unsupported rather than an error.
func MIMEForExtension(ext string) (string, bool) {
	mime, ok := mimeByExtension[strings.ToLower(ext)]
	return mime, ok
}

// SupportedExtensions lists the ingestible extensions in lexical order.
func SupportedExtensions() []string {
	return sortedKeys(mimeByExtension)
}

// FileInspection describes a local file checked ahead of ingestion. The
// caller performs the stat; this package only renders the outcome.
type FileInspection struct {
	Path      string
	SizeBytes int64
	Extension string
	MIMEType  string
	Supported bool
}

// BatchItem is the outcome of one file in a multi-file ingestion. Err is
// non-empty when the file failed; Ack is set when the backend accepted it.
type BatchItem struct {
	Path string
	Ack  *kgclient.IngestAck
	Err  string
}

// IngestAck renders an ingestion acknowledgement, including the
// duplicate-content branch.
func IngestAck(ack *kgclient.IngestAck) string {
	var b strings.Builder
	if ack.Duplicate {
		b.WriteString("# Duplicate Content Detected\n")
		kv(&b, "Existing job", ack.ExistingJobID)
		kv(&b, "Content hash", ack.ContentHash)
		kv(&b, "Message", ack.Message)
		if ack.UseForce {
			b.WriteString("\nThis content was already ingested. Re-run with force=true to re-ingest.\n")
		}
		return b.String()
	}

	fmt.Fprintf(&b, "# Ingestion %s: %s\n", ackVerb(ack.Status), ack.JobID)
	kv(&b, "Status", ack.Status)
	if ack.Position != nil {
		fmt.Fprintf(&b, "- Queue position: %d\n", *ack.Position)
	}
	kv(&b, "Content hash", ack.ContentHash)
	kv(&b, "Created", ack.CreatedAt)
	kv(&b, "Completed", ack.CompletedAt)
	kv(&b, "Message", ack.Message)
	if len(ack.Result) > 0 {
		b.WriteString("\n## Result\n")
		for _, key := range sortedKeys(ack.Result) {
			fmt.Fprintf(&b, "- %s: %s\n", key, renderValue(ack.Result[key]))
		}
	}
	if ack.Status == "awaiting_approval" {
		fmt.Fprintf(&b, "\nApprove with the job tool: action=approve, job_id=%s.\n", ack.JobID)
	}
	return b.String()
}

func ackVerb(status string) string {
	switch status {
	case "completed":
		return "Complete"
	case "awaiting_approval":
		return "Awaiting Approval"
	default:
		return "Queued"
	}
}

// InspectedFile renders a pre-ingestion file inspection.
func InspectedFile(f *FileInspection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# File: %s\n", f.Path)
	fmt.Fprintf(&b, "- Size: %s\n", byteSize(f.SizeBytes))
	kv(&b, "Extension", f.Extension)
	kv(&b, "MIME type", f.MIMEType)
	if f.Supported {
		b.WriteString("- Supported: yes\n")
		if strings.HasPrefix(f.MIMEType, "image/") {
			b.WriteString("\nImages are stored for visual grounding and OCR-derived text.\n")
		}
	} else {
		b.WriteString("- Supported: no\n")
		fmt.Fprintf(&b, "\nUnsupported file type %q. Supported extensions: %s.\n",
			f.Extension, strings.Join(SupportedExtensions(), ", "))
	}
	return b.String()
}

// IngestBatch renders a per-file aggregation of a multi-file ingestion.
// Failed files are reported alongside accepted ones; a failure never
// hides the rest of the batch.
func IngestBatch(items []BatchItem) string {
	queued, duplicates, failed := 0, 0, 0
	for i := range items {
		switch {
		case items[i].Err != "":
			failed++
		case items[i].Ack != nil && items[i].Ack.Duplicate:
			duplicates++
		default:
			queued++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Batch Ingestion: %d file(s)\n\n", len(items))
	fmt.Fprintf(&b, "Queued: %d, duplicates: %d, failed: %d\n", queued, duplicates, failed)
	for i := range items {
		item := &items[i]
		switch {
		case item.Err != "":
			fmt.Fprintf(&b, "\n- %s: FAILED — %s\n", item.Path, item.Err)
		case item.Ack != nil && item.Ack.Duplicate:
			fmt.Fprintf(&b, "\n- %s: duplicate of job %s\n", item.Path, item.Ack.ExistingJobID)
		case item.Ack != nil:
			fmt.Fprintf(&b, "\n- %s: job %s [%s]\n", item.Path, item.Ack.JobID, item.Ack.Status)
		}
	}
	return b.String()
}

// DirectoryIngest renders the directory-scan placeholder: the paths are
// collected and validated but bulk submission is not implemented.
func DirectoryIngest(dir, ontology string, files []string, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Directory Scan: %s\n\n", dir)
	kv(&b, "Ontology", ontology)
	fmt.Fprintf(&b, "- Files found: %d\n", total)
	if len(files) > 0 {
		fmt.Fprintf(&b, "\nShowing %d:\n", len(files))
		for _, f := range files {
			fmt.Fprintf(&b, "- %s\n", f)
		}
	}
	b.WriteString("\nStatus: not_implemented. Directory ingestion does not submit files yet; ")
	b.WriteString("pass the paths above to the ingest tool with action=file.\n")
	return b.String()
}

func byteSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
