// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"

	"github.com/kgfoundry/kgmcp/pkg/kgclient"
)

// Backend is the slice of the knowledge-graph API the tool handlers
// call. *kgclient.Client implements it; tests substitute a fake.
type Backend interface {
	// Search
	SearchConcepts(ctx context.Context, req *kgclient.SearchRequest) (*kgclient.SearchResponse, error)
	SearchSources(ctx context.Context, req *kgclient.SourceSearchRequest) (*kgclient.SourceSearchResponse, error)
	SearchDocuments(ctx context.Context, req *kgclient.DocumentSearchRequest) (*kgclient.DocumentSearchResponse, error)

	// Concepts
	GetConceptDetails(ctx context.Context, conceptID string, opts kgclient.ConceptDetailsOptions) (*kgclient.ConceptDetails, error)
	FindRelatedConcepts(ctx context.Context, req *kgclient.RelatedRequest) (*kgclient.RelatedResponse, error)
	FindConnection(ctx context.Context, req *kgclient.ConnectionRequest) (*kgclient.ConnectionResponse, error)
	FindConnectionBySearch(ctx context.Context, req *kgclient.ConnectionSearchRequest) (*kgclient.ConnectionSearchResponse, error)

	// Ontologies
	ListOntologies(ctx context.Context) (*kgclient.OntologyList, error)
	GetOntologyInfo(ctx context.Context, name string) (*kgclient.OntologyInfo, error)
	GetOntologyFiles(ctx context.Context, name string) (*kgclient.OntologyFiles, error)
	CreateOntology(ctx context.Context, req *kgclient.CreateOntologyRequest) (*kgclient.CreateOntologyResponse, error)
	RenameOntology(ctx context.Context, name string, req *kgclient.RenameOntologyRequest) (*kgclient.RenameOntologyResponse, error)
	DeleteOntology(ctx context.Context, name string, force bool) (*kgclient.DeleteOntologyResponse, error)
	SetOntologyLifecycle(ctx context.Context, name string, req *kgclient.LifecycleRequest) (*kgclient.LifecycleResponse, error)
	GetOntologyScores(ctx context.Context, name string) (*kgclient.OntologyScores, error)
	ScoreOntology(ctx context.Context, name string) (*kgclient.OntologyScores, error)
	ScoreAllOntologies(ctx context.Context) (*kgclient.OntologyScoresList, error)
	GetOntologyCandidates(ctx context.Context, name string, limit int) (*kgclient.ConceptDegrees, error)
	GetOntologyAffinity(ctx context.Context, name string) (*kgclient.Affinity, error)
	GetOntologyEdges(ctx context.Context, name string, limit int) (*kgclient.OntologyEdges, error)
	ReassignSources(ctx context.Context, name string, req *kgclient.ReassignRequest) (*kgclient.ReassignResponse, error)
	DissolveOntology(ctx context.Context, name string, req *kgclient.DissolveRequest) (*kgclient.DissolveResponse, error)
	ListProposals(ctx context.Context, status string) (*kgclient.ProposalList, error)
	ReviewProposal(ctx context.Context, proposalID string, req *kgclient.ProposalReviewRequest) (*kgclient.Proposal, error)
	TriggerAnnealingCycle(ctx context.Context) (*kgclient.AnnealingCycleResult, error)

	// Jobs
	GetJobStatus(ctx context.Context, jobID string) (*kgclient.JobStatus, error)
	ListJobs(ctx context.Context, status string) ([]kgclient.JobStatus, error)
	ApproveJob(ctx context.Context, jobID string) (*kgclient.ApproveJobResponse, error)
	CancelJob(ctx context.Context, jobID string) (*kgclient.CancelJobResponse, error)
	DeleteJob(ctx context.Context, jobID string, force bool) (*kgclient.CancelJobResponse, error)
	CleanupJobs(ctx context.Context, confirm, dryRun bool, filters kgclient.CleanupFilters) (*kgclient.CleanupResponse, error)

	// Ingestion
	IngestText(ctx context.Context, req *kgclient.IngestTextRequest) (*kgclient.IngestAck, error)
	IngestFile(ctx context.Context, req *kgclient.IngestFileRequest) (*kgclient.IngestAck, error)

	// Sources
	GetSourceMetadata(ctx context.Context, sourceID string) (*kgclient.SourceMetadata, error)
	GetSourceImage(ctx context.Context, sourceID string) (*kgclient.SourceImage, error)

	// Epistemic analytics
	ListEpistemicStatus(ctx context.Context) (*kgclient.EpistemicStatusList, error)
	GetEpistemicStatus(ctx context.Context, scope string) (*kgclient.EpistemicStatus, error)
	MeasureEpistemicStatus(ctx context.Context, req *kgclient.MeasureEpistemicRequest) (*kgclient.JobSubmitAck, error)
	AnalyzePolarityAxis(ctx context.Context, req *kgclient.PolarityRequest) (*kgclient.JobSubmitAck, error)

	// Artifacts
	ListArtifacts(ctx context.Context, filters kgclient.ArtifactFilters) (*kgclient.ArtifactList, error)
	GetArtifact(ctx context.Context, id int) (*kgclient.ArtifactMetadata, error)
	GetArtifactPayload(ctx context.Context, id int) (*kgclient.ArtifactWithPayload, error)

	// Documents
	ListDocuments(ctx context.Context, ontology string, limit, offset int) (*kgclient.DocumentList, error)
	GetDocumentContent(ctx context.Context, documentID string) (*kgclient.DocumentContent, error)
	GetDocumentConcepts(ctx context.Context, documentID string) (*kgclient.DocumentConcepts, error)

	// Graph CRUD
	CreateConcept(ctx context.Context, req *kgclient.CreateConceptRequest) (*kgclient.ConceptResult, error)
	UpdateConcept(ctx context.Context, conceptID string, req *kgclient.UpdateConceptRequest) (*kgclient.ConceptResult, error)
	DeleteConcept(ctx context.Context, conceptID string, cascade bool) error
	ListConcepts(ctx context.Context, ontology string, limit, offset int) (*kgclient.ConceptList, error)
	CreateEdge(ctx context.Context, req *kgclient.CreateEdgeRequest) (*kgclient.EdgeResult, error)
	UpdateEdge(ctx context.Context, edgeID string, req *kgclient.UpdateEdgeRequest) (*kgclient.EdgeResult, error)
	DeleteEdge(ctx context.Context, edgeID string) error
	ListEdges(ctx context.Context, filters kgclient.EdgeFilters) (*kgclient.EdgeList, error)

	// Database and system
	GetDatabaseStats(ctx context.Context) (*kgclient.DatabaseStats, error)
	GetDatabaseInfo(ctx context.Context) (*kgclient.DatabaseInfo, error)
	GetDatabaseHealth(ctx context.Context) (*kgclient.DatabaseHealth, error)
	GetSystemStatus(ctx context.Context) (*kgclient.SystemStatus, error)
	GetAPIHealth(ctx context.Context) (*kgclient.APIHealth, error)
}

var _ Backend = (*kgclient.Client)(nil)
