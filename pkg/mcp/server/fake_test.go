// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package server_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"

	"github.com/kgfoundry/kgmcp/pkg/allowlist"
	"github.com/kgfoundry/kgmcp/pkg/config"
	"github.com/kgfoundry/kgmcp/pkg/kgclient"
	"github.com/kgfoundry/kgmcp/pkg/logger"
	"github.com/kgfoundry/kgmcp/pkg/mcp/server"
)

func init() {
	// Initialize the logger for tests
	logger.Initialize()
}

// backendFake stubs the Backend methods a test cares about. Calling a
// method without a stub panics, which dispatch surfaces as an internal
// error response and the test's assertions catch.
type backendFake struct {
	server.Backend

	searchConcepts        func(ctx context.Context, req *kgclient.SearchRequest) (*kgclient.SearchResponse, error)
	searchSources         func(ctx context.Context, req *kgclient.SourceSearchRequest) (*kgclient.SourceSearchResponse, error)
	getConceptDetails     func(ctx context.Context, conceptID string, opts kgclient.ConceptDetailsOptions) (*kgclient.ConceptDetails, error)
	findConnection        func(ctx context.Context, req *kgclient.ConnectionRequest) (*kgclient.ConnectionResponse, error)
	findConnectionSearch  func(ctx context.Context, req *kgclient.ConnectionSearchRequest) (*kgclient.ConnectionSearchResponse, error)
	getOntologyCandidates func(ctx context.Context, name string, limit int) (*kgclient.ConceptDegrees, error)
	reviewProposal        func(ctx context.Context, proposalID string, req *kgclient.ProposalReviewRequest) (*kgclient.Proposal, error)
	listJobs              func(ctx context.Context, status string) ([]kgclient.JobStatus, error)
	deleteJob             func(ctx context.Context, jobID string, force bool) (*kgclient.CancelJobResponse, error)
	cleanupJobs           func(ctx context.Context, confirm, dryRun bool, filters kgclient.CleanupFilters) (*kgclient.CleanupResponse, error)
	ingestText            func(ctx context.Context, req *kgclient.IngestTextRequest) (*kgclient.IngestAck, error)
	ingestFile            func(ctx context.Context, req *kgclient.IngestFileRequest) (*kgclient.IngestAck, error)
	getSourceMetadata     func(ctx context.Context, sourceID string) (*kgclient.SourceMetadata, error)
	getSourceImage        func(ctx context.Context, sourceID string) (*kgclient.SourceImage, error)
	measureEpistemic      func(ctx context.Context, req *kgclient.MeasureEpistemicRequest) (*kgclient.JobSubmitAck, error)
	analyzePolarity       func(ctx context.Context, req *kgclient.PolarityRequest) (*kgclient.JobSubmitAck, error)
	listArtifacts         func(ctx context.Context, filters kgclient.ArtifactFilters) (*kgclient.ArtifactList, error)
	createConcept         func(ctx context.Context, req *kgclient.CreateConceptRequest) (*kgclient.ConceptResult, error)
	updateConcept         func(ctx context.Context, conceptID string, req *kgclient.UpdateConceptRequest) (*kgclient.ConceptResult, error)
	createEdge            func(ctx context.Context, req *kgclient.CreateEdgeRequest) (*kgclient.EdgeResult, error)
	deleteConcept         func(ctx context.Context, conceptID string, cascade bool) error
	deleteEdge            func(ctx context.Context, edgeID string) error
}

func (f *backendFake) SearchConcepts(ctx context.Context, req *kgclient.SearchRequest) (*kgclient.SearchResponse, error) {
	return f.searchConcepts(ctx, req)
}

func (f *backendFake) SearchSources(ctx context.Context, req *kgclient.SourceSearchRequest) (*kgclient.SourceSearchResponse, error) {
	return f.searchSources(ctx, req)
}

func (f *backendFake) GetConceptDetails(ctx context.Context, conceptID string, opts kgclient.ConceptDetailsOptions) (*kgclient.ConceptDetails, error) {
	return f.getConceptDetails(ctx, conceptID, opts)
}

func (f *backendFake) FindConnection(ctx context.Context, req *kgclient.ConnectionRequest) (*kgclient.ConnectionResponse, error) {
	return f.findConnection(ctx, req)
}

func (f *backendFake) FindConnectionBySearch(ctx context.Context, req *kgclient.ConnectionSearchRequest) (*kgclient.ConnectionSearchResponse, error) {
	return f.findConnectionSearch(ctx, req)
}

func (f *backendFake) GetOntologyCandidates(ctx context.Context, name string, limit int) (*kgclient.ConceptDegrees, error) {
	return f.getOntologyCandidates(ctx, name, limit)
}

func (f *backendFake) ReviewProposal(ctx context.Context, proposalID string, req *kgclient.ProposalReviewRequest) (*kgclient.Proposal, error) {
	return f.reviewProposal(ctx, proposalID, req)
}

func (f *backendFake) ListJobs(ctx context.Context, status string) ([]kgclient.JobStatus, error) {
	return f.listJobs(ctx, status)
}

func (f *backendFake) DeleteJob(ctx context.Context, jobID string, force bool) (*kgclient.CancelJobResponse, error) {
	return f.deleteJob(ctx, jobID, force)
}

func (f *backendFake) CleanupJobs(ctx context.Context, confirm, dryRun bool, filters kgclient.CleanupFilters) (*kgclient.CleanupResponse, error) {
	return f.cleanupJobs(ctx, confirm, dryRun, filters)
}

func (f *backendFake) IngestText(ctx context.Context, req *kgclient.IngestTextRequest) (*kgclient.IngestAck, error) {
	return f.ingestText(ctx, req)
}

func (f *backendFake) IngestFile(ctx context.Context, req *kgclient.IngestFileRequest) (*kgclient.IngestAck, error) {
	return f.ingestFile(ctx, req)
}

func (f *backendFake) GetSourceMetadata(ctx context.Context, sourceID string) (*kgclient.SourceMetadata, error) {
	return f.getSourceMetadata(ctx, sourceID)
}

func (f *backendFake) GetSourceImage(ctx context.Context, sourceID string) (*kgclient.SourceImage, error) {
	return f.getSourceImage(ctx, sourceID)
}

func (f *backendFake) MeasureEpistemicStatus(ctx context.Context, req *kgclient.MeasureEpistemicRequest) (*kgclient.JobSubmitAck, error) {
	return f.measureEpistemic(ctx, req)
}

func (f *backendFake) AnalyzePolarityAxis(ctx context.Context, req *kgclient.PolarityRequest) (*kgclient.JobSubmitAck, error) {
	return f.analyzePolarity(ctx, req)
}

func (f *backendFake) ListArtifacts(ctx context.Context, filters kgclient.ArtifactFilters) (*kgclient.ArtifactList, error) {
	return f.listArtifacts(ctx, filters)
}

func (f *backendFake) CreateConcept(ctx context.Context, req *kgclient.CreateConceptRequest) (*kgclient.ConceptResult, error) {
	return f.createConcept(ctx, req)
}

func (f *backendFake) UpdateConcept(ctx context.Context, conceptID string, req *kgclient.UpdateConceptRequest) (*kgclient.ConceptResult, error) {
	return f.updateConcept(ctx, conceptID, req)
}

func (f *backendFake) CreateEdge(ctx context.Context, req *kgclient.CreateEdgeRequest) (*kgclient.EdgeResult, error) {
	return f.createEdge(ctx, req)
}

func (f *backendFake) DeleteConcept(ctx context.Context, conceptID string, cascade bool) error {
	return f.deleteConcept(ctx, conceptID, cascade)
}

func (f *backendFake) DeleteEdge(ctx context.Context, edgeID string) error {
	return f.deleteEdge(ctx, edgeID)
}

// newTestHandler wires a fake backend to a handler with an open
// allowlist rooted at dir. An empty dir leaves the allowlist
// uninitialized so every path is denied.
func newTestHandler(t *testing.T, fake *backendFake, dir string) *server.Handler {
	t.Helper()
	var cfg *config.Config
	if dir != "" {
		cfg = &config.Config{AllowedDirectories: []string{dir}}
	}
	validator, err := allowlist.New(cfg, "/tmp/kgmcp-test-allowlist.yaml")
	require.NoError(t, err)
	return server.NewHandler(fake, validator)
}

func callReq(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// textOf returns the body of a single-text-part result.
func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	tc, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok, "expected text content")
	return tc.Text
}

type errorEnvelope struct {
	Error   string          `json:"error"`
	Details json.RawMessage `json:"details"`
}

// envelopeOf asserts result is an error response and decodes its body.
func envelopeOf(t *testing.T, result *mcp.CallToolResult) errorEnvelope {
	t.Helper()
	require.True(t, result.IsError, "expected an error response")
	var env errorEnvelope
	require.NoError(t, json.Unmarshal([]byte(textOf(t, result)), &env))
	return env
}
