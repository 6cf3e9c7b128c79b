// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kgfoundry/kgmcp/pkg/allowlist"
	"github.com/kgfoundry/kgmcp/pkg/errors"
	"github.com/kgfoundry/kgmcp/pkg/format"
	"github.com/kgfoundry/kgmcp/pkg/kgclient"
)

type ingestArgs struct {
	Action         string          `json:"action"`
	Text           string          `json:"text,omitempty"`
	Ontology       string          `json:"ontology,omitempty"`
	Filename       string          `json:"filename,omitempty"`
	Path           json.RawMessage `json:"path,omitempty"`
	Directory      string          `json:"directory,omitempty"`
	Force          *bool           `json:"force,omitempty"`
	AutoApprove    *bool           `json:"auto_approve,omitempty"`
	ProcessingMode string          `json:"processing_mode,omitempty"`
	TargetWords    *int            `json:"target_words,omitempty"`
	OverlapWords   *int            `json:"overlap_words,omitempty"`
	Recursive      *bool           `json:"recursive,omitempty"`
	Limit          *int            `json:"limit,omitempty"`
	Offset         *int            `json:"offset,omitempty"`
}

// paths decodes the path argument, which accepts a single string or an
// array of strings. The bool reports whether an array was given.
func (a *ingestArgs) paths() ([]string, bool, error) {
	if len(a.Path) == 0 {
		return nil, false, stderrors.New("Missing required argument: path")
	}
	var single string
	if err := json.Unmarshal(a.Path, &single); err == nil {
		return []string{single}, false, nil
	}
	var many []string
	if err := json.Unmarshal(a.Path, &many); err == nil {
		if len(many) == 0 {
			return nil, true, stderrors.New("path array cannot be empty")
		}
		return many, true, nil
	}
	return nil, false, stderrors.New("path must be a string or an array of strings")
}

// denialText renders an allowlist denial for inclusion in an error message.
func denialText(d allowlist.Decision) string {
	if d.Hint == "" {
		return d.Reason
	}
	return d.Reason + ". " + d.Hint
}

func denialError(d allowlist.Decision) *mcp.CallToolResult {
	return errorResult(errors.NewPathDeniedError(fmt.Sprintf("Cannot ingest %s: %s", d.Path, denialText(d)), nil))
}

func (h *Handler) ingestText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &ingestArgs{}
	if errResult := bindArguments(request, args); errResult != nil {
		return errResult, nil
	}
	if args.Text == "" {
		return validationError("Missing required argument: text"), nil
	}
	if args.Ontology == "" {
		return validationError("Missing required argument: ontology"), nil
	}
	ack, err := h.backend.IngestText(ctx, &kgclient.IngestTextRequest{
		Text:           args.Text,
		Ontology:       args.Ontology,
		Filename:       args.Filename,
		Force:          orBool(args.Force, false),
		AutoApprove:    orBool(args.AutoApprove, true),
		ProcessingMode: orString(args.ProcessingMode, "serial"),
		TargetWords:    orInt(args.TargetWords, 1000),
		OverlapWords:   orInt(args.OverlapWords, 200),
		SourceType:     "mcp",
	})
	if err != nil {
		return backendError(err), nil
	}
	return mcp.NewToolResultText(format.IngestAck(ack)), nil
}

func (h *Handler) ingestInspectFile(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &ingestArgs{}
	if errResult := bindArguments(request, args); errResult != nil {
		return errResult, nil
	}
	raw, multi, err := args.paths()
	if err != nil {
		return validationError(err.Error()), nil
	}
	if multi {
		return validationError("inspect-file takes a single path"), nil
	}

	d := h.allow.ValidatePath(raw[0])
	if !d.Allowed {
		return denialError(d), nil
	}

	info, err := os.Stat(d.Path)
	if err != nil {
		return validationError(fmt.Sprintf("Cannot inspect %s: %v", d.Path, err)), nil
	}
	ext := strings.ToLower(filepath.Ext(d.Path))
	mimeType, supported := format.MIMEForExtension(ext)
	return mcp.NewToolResultText(format.InspectedFile(&format.FileInspection{
		Path:      d.Path,
		SizeBytes: info.Size(),
		Extension: ext,
		MIMEType:  mimeType,
		Supported: supported,
	})), nil
}

func (h *Handler) ingestFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &ingestArgs{}
	if errResult := bindArguments(request, args); errResult != nil {
		return errResult, nil
	}
	if args.Ontology == "" {
		return validationError("Missing required argument: ontology"), nil
	}
	rawPaths, batch, err := args.paths()
	if err != nil {
		return validationError(err.Error()), nil
	}

	if !batch {
		d := h.allow.ValidatePath(rawPaths[0])
		if !d.Allowed {
			return denialError(d), nil
		}
		ack, err := h.backend.IngestFile(ctx, h.fileRequest(d.Path, args))
		if err != nil {
			return backendError(err), nil
		}
		return mcp.NewToolResultText(format.IngestAck(ack)), nil
	}

	// Batch mode: one file failing never aborts the rest.
	items := make([]format.BatchItem, 0, len(rawPaths))
	for _, raw := range rawPaths {
		d := h.allow.ValidatePath(raw)
		if !d.Allowed {
			items = append(items, format.BatchItem{Path: d.Path, Err: denialText(d)})
			continue
		}
		ack, err := h.backend.IngestFile(ctx, h.fileRequest(d.Path, args))
		if err != nil {
			items = append(items, format.BatchItem{Path: d.Path, Err: err.Error()})
			continue
		}
		items = append(items, format.BatchItem{Path: d.Path, Ack: ack})
	}
	return mcp.NewToolResultText(format.IngestBatch(items)), nil
}

func (h *Handler) fileRequest(path string, args *ingestArgs) *kgclient.IngestFileRequest {
	hostname, _ := os.Hostname()
	return &kgclient.IngestFileRequest{
		Path:           path,
		Filename:       args.Filename,
		Ontology:       args.Ontology,
		Force:          orBool(args.Force, false),
		AutoApprove:    orBool(args.AutoApprove, true),
		ProcessingMode: args.ProcessingMode,
		TargetWords:    orInt(args.TargetWords, 0),
		OverlapWords:   orInt(args.OverlapWords, 0),
		SourceType:     "mcp",
		SourcePath:     path,
		SourceHostname: hostname,
	}
}

func (h *Handler) ingestDirectory(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &ingestArgs{}
	if errResult := bindArguments(request, args); errResult != nil {
		return errResult, nil
	}
	if args.Directory == "" {
		return validationError("Missing required argument: directory"), nil
	}

	d := h.allow.ValidateDirectory(args.Directory)
	if !d.Allowed {
		return denialError(d), nil
	}
	ontology := orString(args.Ontology, filepath.Base(d.Path))

	files, err := h.collectIngestable(d.Path, orBool(args.Recursive, false))
	if err != nil {
		return validationError(fmt.Sprintf("Cannot scan %s: %v", d.Path, err)), nil
	}

	total := len(files)
	offset := orInt(args.Offset, 0)
	limit := orInt(args.Limit, 10)
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	window := files[offset:]
	if limit > 0 && len(window) > limit {
		window = window[:limit]
	}

	return mcp.NewToolResultText(format.DirectoryIngest(d.Path, ontology, window, total)), nil
}

// collectIngestable lists the files under dir that carry a supported
// extension and pass the allowlist, sorted for stable pagination.
func (h *Handler) collectIngestable(dir string, recursive bool) ([]string, error) {
	var files []string
	add := func(path string) {
		ext := strings.ToLower(filepath.Ext(path))
		if _, ok := format.MIMEForExtension(ext); !ok {
			return
		}
		if d := h.allow.ValidatePath(path); d.Allowed {
			files = append(files, d.Path)
		}
	}

	if recursive {
		err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.Type().IsRegular() {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.Type().IsRegular() {
				add(filepath.Join(dir, entry.Name()))
			}
		}
	}

	sort.Strings(files)
	return files, nil
}
