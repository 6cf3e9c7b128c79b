// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package kgclient

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// IngestText submits raw text for asynchronous ingestion.
func (c *Client) IngestText(ctx context.Context, req *IngestTextRequest) (*IngestAck, error) {
	form := url.Values{}
	form.Set("text", req.Text)
	form.Set("ontology", req.Ontology)
	if req.Filename != "" {
		form.Set("filename", req.Filename)
	}
	form.Set("force", strconv.FormatBool(req.Force))
	form.Set("auto_approve", strconv.FormatBool(req.AutoApprove))
	if req.ProcessingMode != "" {
		form.Set("processing_mode", req.ProcessingMode)
	}
	if req.TargetWords > 0 {
		form.Set("target_words", strconv.Itoa(req.TargetWords))
	}
	if req.OverlapWords > 0 {
		form.Set("overlap_words", strconv.Itoa(req.OverlapWords))
	}
	if req.SourceType != "" {
		form.Set("source_type", req.SourceType)
	}
	if req.SourcePath != "" {
		form.Set("source_path", req.SourcePath)
	}
	if req.SourceHostname != "" {
		form.Set("source_hostname", req.SourceHostname)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.endpoint("/ingest/text", nil), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	return c.decodeIngestAck(ctx, httpReq)
}

// IngestFile streams a local file to the unified ingestion endpoint as a
// multipart upload. The file is never buffered whole in memory.
func (c *Client) IngestFile(ctx context.Context, req *IngestFileRequest) (*IngestAck, error) {
	// #nosec G304: the path was validated by the allowlist before we get here.
	file, err := os.Open(req.Path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", req.Path, err)
	}
	defer file.Close()

	filename := req.Filename
	if filename == "" {
		filename = filepath.Base(req.Path)
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		err := writeIngestParts(mw, file, filename, req)
		if cerr := mw.Close(); err == nil {
			err = cerr
		}
		pw.CloseWithError(err)
	}()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.endpoint("/ingest", nil), pr)
	if err != nil {
		pr.Close()
		return nil, err
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	return c.decodeIngestAck(ctx, httpReq)
}

func writeIngestParts(mw *multipart.Writer, file io.Reader, filename string, req *IngestFileRequest) error {
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, file); err != nil {
		return err
	}

	fields := map[string]string{
		"ontology":     req.Ontology,
		"force":        strconv.FormatBool(req.Force),
		"auto_approve": strconv.FormatBool(req.AutoApprove),
	}
	if req.ProcessingMode != "" {
		fields["processing_mode"] = req.ProcessingMode
	}
	if req.TargetWords > 0 {
		fields["target_words"] = strconv.Itoa(req.TargetWords)
	}
	if req.OverlapWords > 0 {
		fields["overlap_words"] = strconv.Itoa(req.OverlapWords)
	}
	if req.SourceType != "" {
		fields["source_type"] = req.SourceType
	}
	if req.SourcePath != "" {
		fields["source_path"] = req.SourcePath
	}
	if req.SourceHostname != "" {
		fields["source_hostname"] = req.SourceHostname
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) decodeIngestAck(ctx context.Context, req *http.Request) (*IngestAck, error) {
	resp, err := c.send(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newAPIError(resp.StatusCode, data)
	}
	var ack IngestAck
	if err := json.Unmarshal(data, &ack); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &ack, nil
}

// GetSourceImage fetches a source's stored image and returns it
// base64-encoded with the media type the backend reported.
func (c *Client) GetSourceImage(ctx context.Context, sourceID string) (*SourceImage, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.endpoint("/sources/"+url.PathEscape(sourceID)+"/image", nil), nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("User-Agent", c.userAgent)

	resp, err := c.send(ctx, httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newAPIError(resp.StatusCode, data)
	}

	mediaType := resp.Header.Get("Content-Type")
	if mediaType == "" {
		mediaType = "image/png"
	}
	return &SourceImage{
		Data:      base64.StdEncoding.EncodeToString(data),
		MediaType: mediaType,
	}, nil
}
