// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package kgclient

// Typed request and response shapes for the knowledge-graph API. Fields the
// formatters read are concrete; everything else stays loosely typed so the
// backend can evolve without breaking the client.

// SearchRequest queries concepts by semantic similarity.
type SearchRequest struct {
	Query            string  `json:"query"`
	Limit            int     `json:"limit"`
	MinSimilarity    float64 `json:"min_similarity"`
	Offset           int     `json:"offset"`
	IncludeEvidence  bool    `json:"include_evidence"`
	IncludeGrounding bool    `json:"include_grounding"`
	IncludeDiversity bool    `json:"include_diversity"`
	DiversityMaxHops int     `json:"diversity_max_hops,omitempty"`
}

// ConceptInstance is one evidence instance backing a concept.
type ConceptInstance struct {
	Quote       string `json:"quote"`
	Document    string `json:"document,omitempty"`
	Paragraph   int    `json:"paragraph,omitempty"`
	SourceID    string `json:"source_id,omitempty"`
	FullText    string `json:"full_text,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	HasImage    bool   `json:"has_image,omitempty"`
	ImageURI    string `json:"image_uri,omitempty"`
	Filename    string `json:"filename,omitempty"`
	SourceType  string `json:"source_type,omitempty"`
}

// ConceptSearchResult is one concept match with optional analytics.
type ConceptSearchResult struct {
	ConceptID              string            `json:"concept_id"`
	Label                  string            `json:"label"`
	Description            string            `json:"description,omitempty"`
	Score                  float64           `json:"score"`
	Documents              []string          `json:"documents,omitempty"`
	EvidenceCount          int               `json:"evidence_count"`
	GroundingStrength      *float64          `json:"grounding_strength,omitempty"`
	DiversityScore         *float64          `json:"diversity_score,omitempty"`
	DiversityRelatedCount  *int              `json:"diversity_related_count,omitempty"`
	AuthenticatedDiversity *float64          `json:"authenticated_diversity,omitempty"`
	SampleEvidence         []ConceptInstance `json:"sample_evidence,omitempty"`
}

// SearchResponse is the result of a concept search.
type SearchResponse struct {
	Query               string                `json:"query"`
	Count               int                   `json:"count"`
	Results             []ConceptSearchResult `json:"results"`
	BelowThresholdCount *int                  `json:"below_threshold_count,omitempty"`
	SuggestedThreshold  *float64              `json:"suggested_threshold,omitempty"`
	TopMatch            *ConceptSearchResult  `json:"top_match,omitempty"`
	ThresholdUsed       *float64              `json:"threshold_used,omitempty"`
	Offset              *int                  `json:"offset,omitempty"`
}

// SourceSearchRequest queries source passages by semantic similarity.
type SourceSearchRequest struct {
	Query           string  `json:"query"`
	Limit           int     `json:"limit"`
	MinSimilarity   float64 `json:"min_similarity"`
	Ontology        string  `json:"ontology,omitempty"`
	IncludeConcepts bool    `json:"include_concepts"`
	IncludeFullText bool    `json:"include_full_text"`
}

// SourceChunk is the best-matching chunk within a source passage.
type SourceChunk struct {
	ChunkText  string  `json:"chunk_text"`
	ChunkIndex int     `json:"chunk_index,omitempty"`
	Similarity float64 `json:"similarity,omitempty"`
}

// SourceConcept is a concept evidenced by a matched source.
type SourceConcept struct {
	ConceptID string `json:"concept_id"`
	Label     string `json:"label"`
}

// SourceSearchResult is one source passage match.
type SourceSearchResult struct {
	SourceID     string          `json:"source_id"`
	Document     string          `json:"document,omitempty"`
	Paragraph    int             `json:"paragraph,omitempty"`
	Similarity   float64         `json:"similarity"`
	IsStale      bool            `json:"is_stale,omitempty"`
	MatchedChunk *SourceChunk    `json:"matched_chunk,omitempty"`
	FullText     string          `json:"full_text,omitempty"`
	Concepts     []SourceConcept `json:"concepts,omitempty"`
}

// SourceSearchResponse is the result of a source search.
type SourceSearchResponse struct {
	Query         string               `json:"query"`
	Count         int                  `json:"count"`
	Results       []SourceSearchResult `json:"results"`
	ThresholdUsed *float64             `json:"threshold_used,omitempty"`
}

// DocumentSearchRequest queries whole documents by semantic similarity.
type DocumentSearchRequest struct {
	Query         string  `json:"query"`
	MinSimilarity float64 `json:"min_similarity"`
	Limit         int     `json:"limit"`
	Ontology      string  `json:"ontology,omitempty"`
}

// DocumentSearchResult is one document-level match.
type DocumentSearchResult struct {
	DocumentID     string   `json:"document_id"`
	Filename       string   `json:"filename,omitempty"`
	Ontology       string   `json:"ontology,omitempty"`
	ContentType    string   `json:"content_type,omitempty"`
	BestSimilarity float64  `json:"best_similarity"`
	SourceCount    int      `json:"source_count,omitempty"`
	ConceptIDs     []string `json:"concept_ids,omitempty"`
}

// DocumentSearchResponse is the result of a document search.
type DocumentSearchResponse struct {
	Documents    []DocumentSearchResult `json:"documents"`
	Returned     int                    `json:"returned"`
	TotalMatches int                    `json:"total_matches"`
}

// ConceptDetailsOptions selects optional analytics on a details fetch.
type ConceptDetailsOptions struct {
	IncludeGrounding bool
	IncludeDiversity bool
	DiversityMaxHops int
}

// ConceptRelationship is one outgoing relationship of a concept.
type ConceptRelationship struct {
	ToID            string   `json:"to_id"`
	ToLabel         string   `json:"to_label"`
	RelType         string   `json:"rel_type"`
	Confidence      *float64 `json:"confidence,omitempty"`
	Category        string   `json:"category,omitempty"`
	AvgGrounding    *float64 `json:"avg_grounding,omitempty"`
	EpistemicStatus string   `json:"epistemic_status,omitempty"`
}

// ConceptDetails is the full record for a single concept.
type ConceptDetails struct {
	ConceptID              string                `json:"concept_id"`
	Label                  string                `json:"label"`
	Description            string                `json:"description,omitempty"`
	SearchTerms            []string              `json:"search_terms,omitempty"`
	Documents              []string              `json:"documents,omitempty"`
	Instances              []ConceptInstance     `json:"instances,omitempty"`
	Relationships          []ConceptRelationship `json:"relationships,omitempty"`
	GroundingStrength      *float64              `json:"grounding_strength,omitempty"`
	DiversityScore         *float64              `json:"diversity_score,omitempty"`
	DiversityRelatedCount  *int                  `json:"diversity_related_count,omitempty"`
	AuthenticatedDiversity *float64              `json:"authenticated_diversity,omitempty"`
}

// RelatedRequest asks for the neighborhood of a concept.
type RelatedRequest struct {
	ConceptID              string   `json:"concept_id"`
	RelationshipTypes      []string `json:"relationship_types,omitempty"`
	MaxDepth               int      `json:"max_depth"`
	IncludeEpistemicStatus []string `json:"include_epistemic_status,omitempty"`
	ExcludeEpistemicStatus []string `json:"exclude_epistemic_status,omitempty"`
}

// RelatedConcept is one concept reachable from the query concept.
type RelatedConcept struct {
	ConceptID string   `json:"concept_id"`
	Label     string   `json:"label"`
	Distance  int      `json:"distance"`
	PathTypes []string `json:"path_types,omitempty"`
}

// RelatedResponse lists concepts reachable within max_depth.
type RelatedResponse struct {
	ConceptID string           `json:"concept_id"`
	MaxDepth  int              `json:"max_depth"`
	Count     int              `json:"count"`
	Results   []RelatedConcept `json:"results"`
}

// ConnectionRequest finds paths between two concepts by ID.
type ConnectionRequest struct {
	FromID                 string   `json:"from_id"`
	ToID                   string   `json:"to_id"`
	MaxHops                int      `json:"max_hops"`
	IncludeEvidence        bool     `json:"include_evidence"`
	IncludeGrounding       bool     `json:"include_grounding"`
	IncludeEpistemicStatus []string `json:"include_epistemic_status,omitempty"`
	ExcludeEpistemicStatus []string `json:"exclude_epistemic_status,omitempty"`
}

// PathNode is one node along a connection path.
type PathNode struct {
	ID                string            `json:"id"`
	Label             string            `json:"label"`
	Description       string            `json:"description,omitempty"`
	GroundingStrength *float64          `json:"grounding_strength,omitempty"`
	SampleEvidence    []ConceptInstance `json:"sample_evidence,omitempty"`
}

// ConnectionPath is one path through the graph: len(Nodes) == Hops+1 and
// len(Relationships) == Hops.
type ConnectionPath struct {
	Nodes         []PathNode `json:"nodes"`
	Relationships []string   `json:"relationships"`
	Hops          int        `json:"hops"`
}

// ConnectionResponse is the result of an exact connection search.
type ConnectionResponse struct {
	FromID  string           `json:"from_id"`
	ToID    string           `json:"to_id"`
	MaxHops int              `json:"max_hops"`
	Count   int              `json:"count"`
	Paths   []ConnectionPath `json:"paths"`
}

// ConnectionSearchRequest finds paths between two natural-language queries.
type ConnectionSearchRequest struct {
	FromQuery              string   `json:"from_query"`
	ToQuery                string   `json:"to_query"`
	MaxHops                int      `json:"max_hops"`
	Threshold              float64  `json:"threshold"`
	IncludeEvidence        bool     `json:"include_evidence"`
	IncludeGrounding       bool     `json:"include_grounding"`
	IncludeEpistemicStatus []string `json:"include_epistemic_status,omitempty"`
	ExcludeEpistemicStatus []string `json:"exclude_epistemic_status,omitempty"`
}

// ConnectionSearchResponse is the result of a semantic connection search.
// FromConcept/ToConcept are the resolved endpoints, nil when resolution
// failed; the near-miss fields describe matches just under the threshold.
type ConnectionSearchResponse struct {
	FromQuery              string           `json:"from_query"`
	ToQuery                string           `json:"to_query"`
	FromConcept            *PathNode        `json:"from_concept,omitempty"`
	ToConcept              *PathNode        `json:"to_concept,omitempty"`
	FromSimilarity         *float64         `json:"from_similarity,omitempty"`
	ToSimilarity           *float64         `json:"to_similarity,omitempty"`
	FromSuggestedThreshold *float64         `json:"from_suggested_threshold,omitempty"`
	ToSuggestedThreshold   *float64         `json:"to_suggested_threshold,omitempty"`
	FromNearMisses         *int             `json:"from_near_misses,omitempty"`
	ToNearMisses           *int             `json:"to_near_misses,omitempty"`
	MaxHops                int              `json:"max_hops"`
	Count                  int              `json:"count"`
	Paths                  []ConnectionPath `json:"paths"`
}

// OntologyItem is one entry in the ontology list.
type OntologyItem struct {
	Ontology       string `json:"ontology"`
	SourceCount    int    `json:"source_count"`
	FileCount      int    `json:"file_count"`
	ConceptCount   int    `json:"concept_count"`
	LifecycleState string `json:"lifecycle_state,omitempty"`
	CreatedBy      string `json:"created_by,omitempty"`
}

// OntologyList is the result of listing ontologies.
type OntologyList struct {
	Count      int            `json:"count"`
	Ontologies []OntologyItem `json:"ontologies"`
}

// OntologyInfo is the detail view of one ontology.
type OntologyInfo struct {
	Ontology   string         `json:"ontology"`
	Statistics map[string]any `json:"statistics,omitempty"`
	Files      []string       `json:"files,omitempty"`
}

// OntologyFileInfo is one file tracked under an ontology.
type OntologyFileInfo struct {
	FilePath     string `json:"file_path"`
	ChunkCount   int    `json:"chunk_count"`
	ConceptCount int    `json:"concept_count"`
}

// OntologyFiles lists the files tracked under an ontology.
type OntologyFiles struct {
	Ontology string             `json:"ontology"`
	Count    int                `json:"count"`
	Files    []OntologyFileInfo `json:"files"`
}

// CreateOntologyRequest registers a new empty ontology.
type CreateOntologyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CreateOntologyResponse acknowledges ontology creation.
type CreateOntologyResponse struct {
	Ontology string `json:"ontology"`
	Created  bool   `json:"created"`
	Message  string `json:"message,omitempty"`
}

// RenameOntologyRequest renames an ontology.
type RenameOntologyRequest struct {
	NewName string `json:"new_name"`
}

// RenameOntologyResponse reports the outcome of a rename.
type RenameOntologyResponse struct {
	OldName        string `json:"old_name"`
	NewName        string `json:"new_name"`
	SourcesUpdated int    `json:"sources_updated"`
	Success        bool   `json:"success"`
	Error          string `json:"error,omitempty"`
}

// DeleteOntologyResponse reports the outcome of a delete.
type DeleteOntologyResponse struct {
	Ontology                string `json:"ontology"`
	Deleted                 bool   `json:"deleted"`
	SourcesDeleted          int    `json:"sources_deleted"`
	OrphanedConceptsDeleted int    `json:"orphaned_concepts_deleted"`
	Error                   string `json:"error,omitempty"`
}

// LifecycleRequest transitions an ontology's lifecycle state.
type LifecycleRequest struct {
	State string `json:"state"`
}

// LifecycleResponse reports a lifecycle transition.
type LifecycleResponse struct {
	Ontology      string `json:"ontology"`
	PreviousState string `json:"previous_state"`
	NewState      string `json:"new_state"`
	Success       bool   `json:"success"`
}

// OntologyScores are the annealing scores for one ontology.
type OntologyScores struct {
	Ontology           string   `json:"ontology"`
	MassScore          *float64 `json:"mass_score,omitempty"`
	CoherenceScore     *float64 `json:"coherence_score,omitempty"`
	RawExposure        *float64 `json:"raw_exposure,omitempty"`
	WeightedExposure   *float64 `json:"weighted_exposure,omitempty"`
	ProtectionScore    *float64 `json:"protection_score,omitempty"`
	LastEvaluatedEpoch *int     `json:"last_evaluated_epoch,omitempty"`
}

// OntologyScoresList holds scores for every ontology.
type OntologyScoresList struct {
	Count       int              `json:"count"`
	GlobalEpoch int              `json:"global_epoch,omitempty"`
	Scores      []OntologyScores `json:"scores"`
}

// ConceptDegree is one concept ranked by connectivity.
type ConceptDegree struct {
	ConceptID string `json:"concept_id"`
	Label     string `json:"label"`
	Degree    int    `json:"degree"`
	InDegree  int    `json:"in_degree,omitempty"`
	OutDegree int    `json:"out_degree,omitempty"`
}

// ConceptDegrees lists anchor candidates for an ontology.
type ConceptDegrees struct {
	Ontology string          `json:"ontology"`
	Count    int             `json:"count"`
	Concepts []ConceptDegree `json:"concepts"`
}

// AffinityResult is the concept overlap with one other ontology.
type AffinityResult struct {
	OtherOntology      string  `json:"other_ontology"`
	SharedConceptCount int     `json:"shared_concept_count"`
	TotalConcepts      int     `json:"total_concepts"`
	AffinityScore      float64 `json:"affinity_score"`
}

// Affinity lists cross-ontology concept overlap.
type Affinity struct {
	Ontology   string           `json:"ontology"`
	Count      int              `json:"count"`
	Affinities []AffinityResult `json:"affinities"`
}

// OntologyEdge is one computed relationship between ontologies.
type OntologyEdge struct {
	FromOntology       string  `json:"from_ontology"`
	ToOntology         string  `json:"to_ontology"`
	EdgeType           string  `json:"edge_type"`
	Score              float64 `json:"score"`
	SharedConceptCount int     `json:"shared_concept_count,omitempty"`
	Direction          string  `json:"direction,omitempty"`
}

// OntologyEdges lists computed ontology-to-ontology edges.
type OntologyEdges struct {
	Ontology string         `json:"ontology"`
	Count    int            `json:"count"`
	Edges    []OntologyEdge `json:"edges"`
}

// ReassignRequest moves sources from one ontology to another.
type ReassignRequest struct {
	TargetOntology string   `json:"target_ontology"`
	SourceIDs      []string `json:"source_ids,omitempty"`
}

// ReassignResponse reports the outcome of a reassignment.
type ReassignResponse struct {
	FromOntology      string `json:"from_ontology"`
	ToOntology        string `json:"to_ontology"`
	SourcesReassigned int    `json:"sources_reassigned"`
	Success           bool   `json:"success"`
	Error             string `json:"error,omitempty"`
}

// DissolveRequest dissolves an ontology into a target.
type DissolveRequest struct {
	TargetOntology string `json:"target_ontology,omitempty"`
}

// DissolveResponse reports the outcome of a dissolution.
type DissolveResponse struct {
	DissolvedOntology   string         `json:"dissolved_ontology"`
	SourcesReassigned   int            `json:"sources_reassigned"`
	OntologyNodeDeleted bool           `json:"ontology_node_deleted"`
	ReassignmentTargets map[string]int `json:"reassignment_targets,omitempty"`
	Success             bool           `json:"success"`
	Error               string         `json:"error,omitempty"`
}

// Proposal is one pending or reviewed annealing proposal.
type Proposal struct {
	ID              string   `json:"id"`
	ProposalType    string   `json:"proposal_type"`
	OntologyName    string   `json:"ontology_name"`
	AnchorConceptID string   `json:"anchor_concept_id,omitempty"`
	TargetOntology  string   `json:"target_ontology,omitempty"`
	Reasoning       string   `json:"reasoning,omitempty"`
	MassScore       *float64 `json:"mass_score,omitempty"`
	CoherenceScore  *float64 `json:"coherence_score,omitempty"`
	ProtectionScore *float64 `json:"protection_score,omitempty"`
	Status          string   `json:"status"`
	CreatedAt       string   `json:"created_at,omitempty"`
	ReviewedAt      string   `json:"reviewed_at,omitempty"`
	ReviewedBy      string   `json:"reviewed_by,omitempty"`
	ReviewerNotes   string   `json:"reviewer_notes,omitempty"`
}

// ProposalList holds annealing proposals.
type ProposalList struct {
	Count     int        `json:"count"`
	Proposals []Proposal `json:"proposals"`
}

// ProposalReviewRequest approves or rejects a proposal.
type ProposalReviewRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

// AnnealingCycleResult summarizes one annealing cycle run.
type AnnealingCycleResult struct {
	ProposalsGenerated  int  `json:"proposals_generated"`
	DemotionCandidates  int  `json:"demotion_candidates"`
	PromotionCandidates int  `json:"promotion_candidates"`
	ScoresUpdated       int  `json:"scores_updated"`
	EdgesCreated        int  `json:"edges_created"`
	EdgesDeleted        int  `json:"edges_deleted"`
	CycleEpoch          int  `json:"cycle_epoch"`
	DryRun              bool `json:"dry_run"`
}

// JobProgress tracks how far an ingestion job has advanced.
type JobProgress struct {
	Stage           string  `json:"stage,omitempty"`
	ChunksTotal     int     `json:"chunks_total,omitempty"`
	ChunksProcessed int     `json:"chunks_processed,omitempty"`
	Percent         float64 `json:"percent,omitempty"`
	ConceptsCreated int     `json:"concepts_created,omitempty"`
	SourcesCreated  int     `json:"sources_created,omitempty"`
}

// JobStatus is the full record for one background job.
type JobStatus struct {
	JobID          string         `json:"job_id"`
	JobType        string         `json:"job_type"`
	Status         string         `json:"status"`
	Progress       *JobProgress   `json:"progress,omitempty"`
	Result         map[string]any `json:"result,omitempty"`
	Error          string         `json:"error,omitempty"`
	CreatedAt      string         `json:"created_at,omitempty"`
	StartedAt      string         `json:"started_at,omitempty"`
	CompletedAt    string         `json:"completed_at,omitempty"`
	ContentHash    string         `json:"content_hash,omitempty"`
	Ontology       string         `json:"ontology,omitempty"`
	ProcessingMode string         `json:"processing_mode,omitempty"`
	Analysis       map[string]any `json:"analysis,omitempty"`
	ApprovedAt     string         `json:"approved_at,omitempty"`
	ApprovedBy     string         `json:"approved_by,omitempty"`
	ExpiresAt      string         `json:"expires_at,omitempty"`
	Filename       string         `json:"filename,omitempty"`
	SourceType     string         `json:"source_type,omitempty"`
}

// ApproveJobResponse acknowledges job approval.
type ApproveJobResponse struct {
	JobID   string `json:"job_id"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// CancelJobResponse acknowledges job cancellation or purge.
type CancelJobResponse struct {
	JobID     string `json:"job_id"`
	Cancelled bool   `json:"cancelled,omitempty"`
	Deleted   bool   `json:"deleted,omitempty"`
	Message   string `json:"message,omitempty"`
}

// CleanupFilters selects which jobs a bulk cleanup touches.
type CleanupFilters struct {
	Status    string `json:"status,omitempty"`
	OlderThan string `json:"older_than,omitempty"`
	JobType   string `json:"job_type,omitempty"`
}

// CleanupJobItem is one job a dry-run cleanup would delete.
type CleanupJobItem struct {
	JobID     string `json:"job_id"`
	JobType   string `json:"job_type,omitempty"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// CleanupResponse reports a bulk job cleanup. DryRun responses carry
// JobsToDelete/Jobs; confirmed responses carry Success/JobsDeleted.
type CleanupResponse struct {
	DryRun       bool             `json:"dry_run,omitempty"`
	JobsToDelete int              `json:"jobs_to_delete,omitempty"`
	Jobs         []CleanupJobItem `json:"jobs,omitempty"`
	Success      bool             `json:"success,omitempty"`
	JobsDeleted  int              `json:"jobs_deleted,omitempty"`
	Filters      map[string]any   `json:"filters,omitempty"`
	Message      string           `json:"message,omitempty"`
}

// IngestTextRequest submits raw text for ingestion.
type IngestTextRequest struct {
	Text           string `json:"text"`
	Ontology       string `json:"ontology"`
	Filename       string `json:"filename,omitempty"`
	Force          bool   `json:"force"`
	AutoApprove    bool   `json:"auto_approve"`
	ProcessingMode string `json:"processing_mode,omitempty"`
	TargetWords    int    `json:"target_words,omitempty"`
	OverlapWords   int    `json:"overlap_words,omitempty"`
	SourceType     string `json:"source_type,omitempty"`
	SourcePath     string `json:"source_path,omitempty"`
	SourceHostname string `json:"source_hostname,omitempty"`
}

// IngestFileRequest uploads a local file for ingestion. Path is the
// resolved absolute path on this machine; the body is streamed.
type IngestFileRequest struct {
	Path           string
	Ontology       string
	Filename       string
	Force          bool
	AutoApprove    bool
	ProcessingMode string
	TargetWords    int
	OverlapWords   int
	SourceType     string
	SourcePath     string
	SourceHostname string
}

// IngestAck acknowledges an ingestion submission. When the backend
// detects previously ingested content it reports Duplicate with the
// existing job instead of queuing a new one.
type IngestAck struct {
	JobID         string         `json:"job_id,omitempty"`
	Status        string         `json:"status,omitempty"`
	ContentHash   string         `json:"content_hash,omitempty"`
	Position      *int           `json:"position,omitempty"`
	Message       string         `json:"message,omitempty"`
	Duplicate     bool           `json:"duplicate,omitempty"`
	ExistingJobID string         `json:"existing_job_id,omitempty"`
	CreatedAt     string         `json:"created_at,omitempty"`
	CompletedAt   string         `json:"completed_at,omitempty"`
	Result        map[string]any `json:"result,omitempty"`
	UseForce      bool           `json:"use_force,omitempty"`
}

// SourceMetadata is the stored record for one source passage.
type SourceMetadata struct {
	SourceID           string `json:"source_id"`
	Document           string `json:"document,omitempty"`
	Paragraph          int    `json:"paragraph,omitempty"`
	FullText           string `json:"full_text,omitempty"`
	FilePath           string `json:"file_path,omitempty"`
	ContentType        string `json:"content_type,omitempty"`
	StorageKey         string `json:"storage_key,omitempty"`
	HasVisualEmbedding bool   `json:"has_visual_embedding,omitempty"`
	HasTextEmbedding   bool   `json:"has_text_embedding,omitempty"`
}

// SourceImage is a source's stored image, base64-encoded.
type SourceImage struct {
	Data      string
	MediaType string
}

// EpistemicStatus is the measured grounding profile of one vocabulary type.
type EpistemicStatus struct {
	VocabType            string  `json:"vocab_type"`
	Status               string  `json:"status"`
	AvgGrounding         float64 `json:"avg_grounding"`
	StdGrounding         float64 `json:"std_grounding,omitempty"`
	MaxGrounding         float64 `json:"max_grounding,omitempty"`
	MinGrounding         float64 `json:"min_grounding,omitempty"`
	TotalEdges           int     `json:"total_edges"`
	SampledEdges         int     `json:"sampled_edges,omitempty"`
	MeasuredConcepts     int     `json:"measured_concepts"`
	MeasurementTimestamp string  `json:"measurement_timestamp,omitempty"`
}

// EpistemicStatusList holds the statuses of every measured vocab type.
type EpistemicStatusList struct {
	Count    int               `json:"count"`
	Statuses []EpistemicStatus `json:"statuses"`
}

// MeasureEpistemicRequest triggers a re-measurement job.
type MeasureEpistemicRequest struct {
	VocabTypes []string `json:"vocab_types,omitempty"`
	SampleSize int      `json:"sample_size"`
	Store      bool     `json:"store"`
	Verbose    bool     `json:"verbose"`
}

// JobSubmitAck acknowledges submission of an asynchronous analysis job.
type JobSubmitAck struct {
	JobID   string `json:"job_id"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// PolarityRequest positions candidate concepts along a semantic axis.
type PolarityRequest struct {
	PositivePoleID string   `json:"positive_pole_id"`
	NegativePoleID string   `json:"negative_pole_id"`
	CandidateIDs   []string `json:"candidate_ids,omitempty"`
	AutoDiscover   bool     `json:"auto_discover"`
	MaxCandidates  int      `json:"max_candidates"`
	MaxHops        int      `json:"max_hops"`
}

// ArtifactMetadata describes one stored analysis artifact.
type ArtifactMetadata struct {
	ID              int            `json:"id"`
	ArtifactType    string         `json:"artifact_type"`
	Representation  string         `json:"representation,omitempty"`
	Name            string         `json:"name,omitempty"`
	GraphEpoch      int            `json:"graph_epoch,omitempty"`
	IsFresh         bool           `json:"is_fresh"`
	CreatedAt       string         `json:"created_at,omitempty"`
	ExpiresAt       string         `json:"expires_at,omitempty"`
	Parameters      map[string]any `json:"parameters,omitempty"`
	Ontology        string         `json:"ontology,omitempty"`
	ConceptIDs      []string       `json:"concept_ids,omitempty"`
	HasInlineResult bool           `json:"has_inline_result,omitempty"`
}

// ArtifactList is a page of artifacts.
type ArtifactList struct {
	Artifacts []ArtifactMetadata `json:"artifacts"`
	Total     int                `json:"total"`
	Limit     int                `json:"limit,omitempty"`
	Offset    int                `json:"offset,omitempty"`
}

// ArtifactFilters narrows an artifact listing.
type ArtifactFilters struct {
	ArtifactType string
	Ontology     string
	Limit        int
	Offset       int
}

// ArtifactWithPayload is an artifact plus its inline result.
type ArtifactWithPayload struct {
	ArtifactMetadata
	Payload map[string]any `json:"payload,omitempty"`
}

// DocumentListItem is one document in a listing.
type DocumentListItem struct {
	DocumentID   string `json:"document_id"`
	Filename     string `json:"filename,omitempty"`
	Ontology     string `json:"ontology,omitempty"`
	ContentType  string `json:"content_type,omitempty"`
	SourceCount  int    `json:"source_count"`
	ConceptCount int    `json:"concept_count"`
}

// DocumentList is a page of documents.
type DocumentList struct {
	Documents []DocumentListItem `json:"documents"`
	Total     int                `json:"total"`
	Limit     int                `json:"limit,omitempty"`
	Offset    int                `json:"offset,omitempty"`
}

// DocumentChunk is one stored chunk of a document.
type DocumentChunk struct {
	SourceID  string `json:"source_id"`
	Paragraph int    `json:"paragraph"`
	FullText  string `json:"full_text"`
}

// DocumentContent is a document's reconstructed content.
type DocumentContent struct {
	DocumentID  string          `json:"document_id"`
	ContentType string          `json:"content_type,omitempty"`
	Content     map[string]any  `json:"content,omitempty"`
	Chunks      []DocumentChunk `json:"chunks"`
}

// DocumentConceptItem is one concept evidenced in a document.
type DocumentConceptItem struct {
	ConceptID     string `json:"concept_id"`
	Name          string `json:"name"`
	SourceID      string `json:"source_id,omitempty"`
	InstanceCount int    `json:"instance_count"`
}

// DocumentConcepts lists the concepts evidenced in a document.
type DocumentConcepts struct {
	DocumentID string                `json:"document_id"`
	Filename   string                `json:"filename,omitempty"`
	Concepts   []DocumentConceptItem `json:"concepts"`
	Total      int                   `json:"total"`
}

// CreateConceptRequest creates a concept directly in the graph.
type CreateConceptRequest struct {
	Label          string   `json:"label"`
	Ontology       string   `json:"ontology"`
	Description    string   `json:"description,omitempty"`
	SearchTerms    []string `json:"search_terms,omitempty"`
	MatchingMode   string   `json:"matching_mode,omitempty"`
	CreationMethod string   `json:"creation_method,omitempty"`
}

// UpdateConceptRequest edits an existing concept. Nil fields are left
// untouched.
type UpdateConceptRequest struct {
	Label       *string   `json:"label,omitempty"`
	Description *string   `json:"description,omitempty"`
	SearchTerms *[]string `json:"search_terms,omitempty"`
}

// ConceptResult is the backend's record of a created or edited concept.
type ConceptResult struct {
	ConceptID       string   `json:"concept_id"`
	Label           string   `json:"label"`
	Description     string   `json:"description,omitempty"`
	SearchTerms     []string `json:"search_terms,omitempty"`
	Ontology        string   `json:"ontology,omitempty"`
	CreationMethod  string   `json:"creation_method,omitempty"`
	HasEmbedding    bool     `json:"has_embedding,omitempty"`
	MatchedExisting bool     `json:"matched_existing,omitempty"`
}

// ConceptList is a page of concepts.
type ConceptList struct {
	Concepts []ConceptResult `json:"concepts"`
	Total    int             `json:"total"`
	Offset   int             `json:"offset,omitempty"`
	Limit    int             `json:"limit,omitempty"`
}

// CreateEdgeRequest creates a relationship between two concepts. Either
// IDs or labels identify the endpoints; labels are resolved server-side.
type CreateEdgeRequest struct {
	FromConceptID    string  `json:"from_concept_id,omitempty"`
	ToConceptID      string  `json:"to_concept_id,omitempty"`
	FromLabel        string  `json:"from_label,omitempty"`
	ToLabel          string  `json:"to_label,omitempty"`
	Ontology         string  `json:"ontology,omitempty"`
	RelationshipType string  `json:"relationship_type"`
	Category         string  `json:"category,omitempty"`
	Confidence       float64 `json:"confidence"`
	Source           string  `json:"source,omitempty"`
}

// UpdateEdgeRequest edits an existing edge.
type UpdateEdgeRequest struct {
	RelationshipType *string  `json:"relationship_type,omitempty"`
	Category         *string  `json:"category,omitempty"`
	Confidence       *float64 `json:"confidence,omitempty"`
}

// EdgeResult is the backend's record of a created or edited edge.
type EdgeResult struct {
	EdgeID           string  `json:"edge_id"`
	FromConceptID    string  `json:"from_concept_id"`
	ToConceptID      string  `json:"to_concept_id"`
	RelationshipType string  `json:"relationship_type"`
	Category         string  `json:"category,omitempty"`
	Confidence       float64 `json:"confidence,omitempty"`
	Source           string  `json:"source,omitempty"`
}

// EdgeList is a page of edges.
type EdgeList struct {
	Edges  []EdgeResult `json:"edges"`
	Total  int          `json:"total"`
	Offset int          `json:"offset,omitempty"`
	Limit  int          `json:"limit,omitempty"`
}

// EdgeFilters narrows an edge listing.
type EdgeFilters struct {
	ConceptID        string
	RelationshipType string
	Limit            int
	Offset           int
}

// DatabaseStats counts nodes and relationships by type.
type DatabaseStats struct {
	Nodes         map[string]int `json:"nodes"`
	Relationships map[string]any `json:"relationships"`
}

// DatabaseInfo describes the graph database connection.
type DatabaseInfo struct {
	URI       string `json:"uri,omitempty"`
	User      string `json:"user,omitempty"`
	Connected bool   `json:"connected"`
	Version   string `json:"version,omitempty"`
	Edition   string `json:"edition,omitempty"`
	Error     string `json:"error,omitempty"`
}

// DatabaseHealth is the database health probe result.
type DatabaseHealth struct {
	Status     string         `json:"status"`
	Responsive bool           `json:"responsive"`
	Checks     map[string]any `json:"checks,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// SystemStatus is the full system status report.
type SystemStatus struct {
	Docker             map[string]any `json:"docker,omitempty"`
	DatabaseConnection map[string]any `json:"database_connection,omitempty"`
	DatabaseStats      map[string]any `json:"database_stats,omitempty"`
	PythonEnv          map[string]any `json:"python_env,omitempty"`
	Configuration      map[string]any `json:"configuration,omitempty"`
	Neo4jBrowserURL    string         `json:"neo4j_browser_url,omitempty"`
	BoltURL            string         `json:"bolt_url,omitempty"`
}

// APIHealth is the backend's liveness report.
type APIHealth struct {
	Service string         `json:"service,omitempty"`
	Version string         `json:"version,omitempty"`
	Status  string         `json:"status"`
	Epoch   int            `json:"epoch,omitempty"`
	Queue   map[string]any `json:"queue,omitempty"`
}
