// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package kgclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Search

// SearchConcepts searches concepts by semantic similarity.
func (c *Client) SearchConcepts(ctx context.Context, req *SearchRequest) (*SearchResponse, error) {
	var out SearchResponse
	if err := c.post(ctx, "/query/search", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchSources searches stored source passages by semantic similarity.
func (c *Client) SearchSources(ctx context.Context, req *SourceSearchRequest) (*SourceSearchResponse, error) {
	var out SourceSearchResponse
	if err := c.post(ctx, "/sources/search", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchDocuments searches whole documents by semantic similarity.
func (c *Client) SearchDocuments(ctx context.Context, req *DocumentSearchRequest) (*DocumentSearchResponse, error) {
	var out DocumentSearchResponse
	if err := c.post(ctx, "/documents/search", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Concepts and connections

// GetConceptDetails fetches the full record for one concept.
func (c *Client) GetConceptDetails(ctx context.Context, conceptID string, opts ConceptDetailsOptions) (*ConceptDetails, error) {
	query := url.Values{}
	query.Set("include_grounding", strconv.FormatBool(opts.IncludeGrounding))
	query.Set("include_diversity", strconv.FormatBool(opts.IncludeDiversity))
	if opts.DiversityMaxHops > 0 {
		query.Set("diversity_max_hops", strconv.Itoa(opts.DiversityMaxHops))
	}
	var out ConceptDetails
	if err := c.get(ctx, "/query/concept/"+url.PathEscape(conceptID), query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindRelatedConcepts walks the neighborhood of a concept.
func (c *Client) FindRelatedConcepts(ctx context.Context, req *RelatedRequest) (*RelatedResponse, error) {
	var out RelatedResponse
	if err := c.post(ctx, "/query/related", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindConnection finds paths between two concepts identified by ID.
func (c *Client) FindConnection(ctx context.Context, req *ConnectionRequest) (*ConnectionResponse, error) {
	var out ConnectionResponse
	if err := c.post(ctx, "/query/connect", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindConnectionBySearch resolves two natural-language queries to concepts
// and finds paths between them.
func (c *Client) FindConnectionBySearch(ctx context.Context, req *ConnectionSearchRequest) (*ConnectionSearchResponse, error) {
	var out ConnectionSearchResponse
	if err := c.post(ctx, "/query/connect-by-search", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ontologies

// ListOntologies lists every ontology with its stats.
func (c *Client) ListOntologies(ctx context.Context) (*OntologyList, error) {
	var out OntologyList
	if err := c.get(ctx, "/ontology", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOntologyInfo fetches detailed information about one ontology.
func (c *Client) GetOntologyInfo(ctx context.Context, name string) (*OntologyInfo, error) {
	var out OntologyInfo
	if err := c.get(ctx, "/ontology/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOntologyFiles lists the files tracked under an ontology.
func (c *Client) GetOntologyFiles(ctx context.Context, name string) (*OntologyFiles, error) {
	var out OntologyFiles
	if err := c.get(ctx, "/ontology/"+url.PathEscape(name)+"/files", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateOntology registers a new empty ontology.
func (c *Client) CreateOntology(ctx context.Context, req *CreateOntologyRequest) (*CreateOntologyResponse, error) {
	var out CreateOntologyResponse
	if err := c.post(ctx, "/ontology", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RenameOntology renames an ontology and updates its sources.
func (c *Client) RenameOntology(ctx context.Context, name string, req *RenameOntologyRequest) (*RenameOntologyResponse, error) {
	var out RenameOntologyResponse
	if err := c.post(ctx, "/ontology/"+url.PathEscape(name)+"/rename", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteOntology deletes an ontology and optionally its sources.
func (c *Client) DeleteOntology(ctx context.Context, name string, force bool) (*DeleteOntologyResponse, error) {
	query := url.Values{}
	query.Set("force", strconv.FormatBool(force))
	var out DeleteOntologyResponse
	if err := c.del(ctx, "/ontology/"+url.PathEscape(name), query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetOntologyLifecycle transitions an ontology's lifecycle state.
func (c *Client) SetOntologyLifecycle(ctx context.Context, name string, req *LifecycleRequest) (*LifecycleResponse, error) {
	var out LifecycleResponse
	if err := c.put(ctx, "/ontology/"+url.PathEscape(name)+"/lifecycle", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOntologyScores fetches the stored annealing scores for an ontology.
func (c *Client) GetOntologyScores(ctx context.Context, name string) (*OntologyScores, error) {
	var out OntologyScores
	if err := c.get(ctx, "/ontology/"+url.PathEscape(name)+"/scores", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ScoreOntology recomputes the annealing scores for one ontology.
func (c *Client) ScoreOntology(ctx context.Context, name string) (*OntologyScores, error) {
	var out OntologyScores
	if err := c.post(ctx, "/ontology/"+url.PathEscape(name)+"/scores", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ScoreAllOntologies recomputes annealing scores for every ontology.
func (c *Client) ScoreAllOntologies(ctx context.Context) (*OntologyScoresList, error) {
	var out OntologyScoresList
	if err := c.post(ctx, "/ontology/scores", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOntologyCandidates lists anchor-concept candidates by degree.
func (c *Client) GetOntologyCandidates(ctx context.Context, name string, limit int) (*ConceptDegrees, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var out ConceptDegrees
	if err := c.get(ctx, "/ontology/"+url.PathEscape(name)+"/candidates", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOntologyAffinity computes concept overlap with other ontologies.
func (c *Client) GetOntologyAffinity(ctx context.Context, name string) (*Affinity, error) {
	var out Affinity
	if err := c.get(ctx, "/ontology/"+url.PathEscape(name)+"/affinity", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOntologyEdges lists computed edges between this ontology and others.
func (c *Client) GetOntologyEdges(ctx context.Context, name string, limit int) (*OntologyEdges, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var out OntologyEdges
	if err := c.get(ctx, "/ontology/"+url.PathEscape(name)+"/edges", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReassignSources moves sources from one ontology to a target ontology.
func (c *Client) ReassignSources(ctx context.Context, name string, req *ReassignRequest) (*ReassignResponse, error) {
	var out ReassignResponse
	if err := c.post(ctx, "/ontology/"+url.PathEscape(name)+"/reassign", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DissolveOntology dissolves an ontology, reassigning its sources.
func (c *Client) DissolveOntology(ctx context.Context, name string, req *DissolveRequest) (*DissolveResponse, error) {
	var out DissolveResponse
	if err := c.post(ctx, "/ontology/"+url.PathEscape(name)+"/dissolve", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListProposals lists annealing proposals, optionally filtered by status.
func (c *Client) ListProposals(ctx context.Context, status string) (*ProposalList, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"status": {status}}
	}
	var out ProposalList
	if err := c.get(ctx, "/ontology/proposals", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReviewProposal approves or rejects an annealing proposal.
func (c *Client) ReviewProposal(ctx context.Context, proposalID string, req *ProposalReviewRequest) (*Proposal, error) {
	var out Proposal
	if err := c.post(ctx, "/ontology/proposals/"+url.PathEscape(proposalID)+"/review", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TriggerAnnealingCycle runs one ontology annealing cycle.
func (c *Client) TriggerAnnealingCycle(ctx context.Context) (*AnnealingCycleResult, error) {
	var out AnnealingCycleResult
	if err := c.post(ctx, "/ontology/annealing/cycle", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Jobs

// GetJobStatus fetches the status of one background job.
func (c *Client) GetJobStatus(ctx context.Context, jobID string) (*JobStatus, error) {
	var out JobStatus
	if err := c.get(ctx, "/jobs/"+url.PathEscape(jobID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListJobs lists background jobs, optionally filtered by status.
func (c *Client) ListJobs(ctx context.Context, status string) ([]JobStatus, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"status": {status}}
	}
	var out []JobStatus
	if err := c.get(ctx, "/jobs", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ApproveJob approves a job awaiting approval so processing can start.
func (c *Client) ApproveJob(ctx context.Context, jobID string) (*ApproveJobResponse, error) {
	var out ApproveJobResponse
	if err := c.post(ctx, "/jobs/"+url.PathEscape(jobID)+"/approve", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelJob cancels a pending or queued job.
func (c *Client) CancelJob(ctx context.Context, jobID string) (*CancelJobResponse, error) {
	var out CancelJobResponse
	if err := c.del(ctx, "/jobs/"+url.PathEscape(jobID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteJob permanently deletes a job record. force overrides the guard
// against deleting jobs that are still processing.
func (c *Client) DeleteJob(ctx context.Context, jobID string, force bool) (*CancelJobResponse, error) {
	query := url.Values{}
	query.Set("purge", "true")
	query.Set("force", strconv.FormatBool(force))
	var out CancelJobResponse
	if err := c.del(ctx, "/jobs/"+url.PathEscape(jobID), query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CleanupJobs bulk-deletes jobs matching the filters. The backend only
// deletes when confirm is true and dryRun is false.
func (c *Client) CleanupJobs(ctx context.Context, confirm, dryRun bool, filters CleanupFilters) (*CleanupResponse, error) {
	query := url.Values{}
	query.Set("confirm", strconv.FormatBool(confirm))
	query.Set("dry_run", strconv.FormatBool(dryRun))
	if filters.Status != "" {
		query.Set("status", filters.Status)
	}
	if filters.OlderThan != "" {
		query.Set("older_than", filters.OlderThan)
	}
	if filters.JobType != "" {
		query.Set("job_type", filters.JobType)
	}
	var out CleanupResponse
	if err := c.del(ctx, "/jobs", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Sources

// GetSourceMetadata fetches the stored record for one source passage.
func (c *Client) GetSourceMetadata(ctx context.Context, sourceID string) (*SourceMetadata, error) {
	var out SourceMetadata
	if err := c.get(ctx, "/sources/"+url.PathEscape(sourceID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Epistemic status

// ListEpistemicStatus lists the grounding profile of every vocab type.
func (c *Client) ListEpistemicStatus(ctx context.Context) (*EpistemicStatusList, error) {
	var out EpistemicStatusList
	if err := c.get(ctx, "/epistemic/status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetEpistemicStatus fetches the grounding profile of one vocab type.
func (c *Client) GetEpistemicStatus(ctx context.Context, scope string) (*EpistemicStatus, error) {
	var out EpistemicStatus
	if err := c.get(ctx, "/epistemic/status/"+url.PathEscape(scope), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MeasureEpistemicStatus queues a re-measurement job.
func (c *Client) MeasureEpistemicStatus(ctx context.Context, req *MeasureEpistemicRequest) (*JobSubmitAck, error) {
	var out JobSubmitAck
	if err := c.post(ctx, "/epistemic/measure", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Analysis

// AnalyzePolarityAxis queues a polarity-axis analysis job.
func (c *Client) AnalyzePolarityAxis(ctx context.Context, req *PolarityRequest) (*JobSubmitAck, error) {
	var out JobSubmitAck
	if err := c.post(ctx, "/analysis/polarity-axis", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Artifacts

// ListArtifacts lists stored analysis artifacts.
func (c *Client) ListArtifacts(ctx context.Context, filters ArtifactFilters) (*ArtifactList, error) {
	query := url.Values{}
	if filters.ArtifactType != "" {
		query.Set("artifact_type", filters.ArtifactType)
	}
	if filters.Ontology != "" {
		query.Set("ontology", filters.Ontology)
	}
	if filters.Limit > 0 {
		query.Set("limit", strconv.Itoa(filters.Limit))
	}
	if filters.Offset > 0 {
		query.Set("offset", strconv.Itoa(filters.Offset))
	}
	var out ArtifactList
	if err := c.get(ctx, "/artifacts", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetArtifact fetches one artifact's metadata.
func (c *Client) GetArtifact(ctx context.Context, id int) (*ArtifactMetadata, error) {
	var out ArtifactMetadata
	if err := c.get(ctx, fmt.Sprintf("/artifacts/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetArtifactPayload fetches an artifact with its inline result.
func (c *Client) GetArtifactPayload(ctx context.Context, id int) (*ArtifactWithPayload, error) {
	var out ArtifactWithPayload
	if err := c.get(ctx, fmt.Sprintf("/artifacts/%d/payload", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Documents

// ListDocuments lists ingested documents.
func (c *Client) ListDocuments(ctx context.Context, ontology string, limit, offset int) (*DocumentList, error) {
	query := url.Values{}
	if ontology != "" {
		query.Set("ontology", ontology)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	}
	var out DocumentList
	if err := c.get(ctx, "/documents", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDocumentContent fetches a document's reconstructed content.
func (c *Client) GetDocumentContent(ctx context.Context, documentID string) (*DocumentContent, error) {
	var out DocumentContent
	if err := c.get(ctx, "/documents/"+url.PathEscape(documentID)+"/content", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDocumentConcepts lists the concepts evidenced in a document.
func (c *Client) GetDocumentConcepts(ctx context.Context, documentID string) (*DocumentConcepts, error) {
	var out DocumentConcepts
	if err := c.get(ctx, "/documents/"+url.PathEscape(documentID)+"/concepts", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Graph CRUD

// CreateConcept creates a concept directly in the graph.
func (c *Client) CreateConcept(ctx context.Context, req *CreateConceptRequest) (*ConceptResult, error) {
	var out ConceptResult
	if err := c.post(ctx, "/concepts", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateConcept edits an existing concept.
func (c *Client) UpdateConcept(ctx context.Context, conceptID string, req *UpdateConceptRequest) (*ConceptResult, error) {
	var out ConceptResult
	if err := c.patch(ctx, "/concepts/"+url.PathEscape(conceptID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteConcept deletes a concept and its relationships. cascade also
// removes orphaned synthetic sources.
func (c *Client) DeleteConcept(ctx context.Context, conceptID string, cascade bool) error {
	query := url.Values{}
	query.Set("cascade", strconv.FormatBool(cascade))
	return c.del(ctx, "/concepts/"+url.PathEscape(conceptID), query, nil)
}

// ListConcepts lists concepts, optionally scoped to an ontology.
func (c *Client) ListConcepts(ctx context.Context, ontology string, limit, offset int) (*ConceptList, error) {
	query := url.Values{}
	if ontology != "" {
		query.Set("ontology", ontology)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	}
	var out ConceptList
	if err := c.get(ctx, "/concepts", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateEdge creates a relationship between two concepts.
func (c *Client) CreateEdge(ctx context.Context, req *CreateEdgeRequest) (*EdgeResult, error) {
	var out EdgeResult
	if err := c.post(ctx, "/edges", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEdge edits an existing edge.
func (c *Client) UpdateEdge(ctx context.Context, edgeID string, req *UpdateEdgeRequest) (*EdgeResult, error) {
	var out EdgeResult
	if err := c.patch(ctx, "/edges/"+url.PathEscape(edgeID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteEdge deletes an edge.
func (c *Client) DeleteEdge(ctx context.Context, edgeID string) error {
	return c.del(ctx, "/edges/"+url.PathEscape(edgeID), nil, nil)
}

// ListEdges lists edges matching the filters.
func (c *Client) ListEdges(ctx context.Context, filters EdgeFilters) (*EdgeList, error) {
	query := url.Values{}
	if filters.ConceptID != "" {
		query.Set("concept_id", filters.ConceptID)
	}
	if filters.RelationshipType != "" {
		query.Set("relationship_type", filters.RelationshipType)
	}
	if filters.Limit > 0 {
		query.Set("limit", strconv.Itoa(filters.Limit))
	}
	if filters.Offset > 0 {
		query.Set("offset", strconv.Itoa(filters.Offset))
	}
	var out EdgeList
	if err := c.get(ctx, "/edges", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// System

// GetDatabaseStats counts nodes and relationships by type.
func (c *Client) GetDatabaseStats(ctx context.Context) (*DatabaseStats, error) {
	var out DatabaseStats
	if err := c.get(ctx, "/database/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDatabaseInfo describes the graph database connection.
func (c *Client) GetDatabaseInfo(ctx context.Context) (*DatabaseInfo, error) {
	var out DatabaseInfo
	if err := c.get(ctx, "/database/info", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDatabaseHealth probes the graph database.
func (c *Client) GetDatabaseHealth(ctx context.Context) (*DatabaseHealth, error) {
	var out DatabaseHealth
	if err := c.get(ctx, "/database/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSystemStatus fetches the full system status report.
func (c *Client) GetSystemStatus(ctx context.Context) (*SystemStatus, error) {
	var out SystemStatus
	if err := c.get(ctx, "/admin/status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAPIHealth probes the API itself.
func (c *Client) GetAPIHealth(ctx context.Context) (*APIHealth, error) {
	var out APIHealth
	if err := c.get(ctx, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
