// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerTools declares every tool with its full input schema. Each
// property a handler binds is declared here so hosts can validate
// arguments before calling.
func registerTools(mcpServer *server.MCPServer, handler *Handler) {
	mcpServer.AddTool(mcp.Tool{
		Name:        "search",
		Description: "Search the knowledge graph. type=concepts finds concepts by semantic similarity, type=sources matches stored source passages, type=documents finds whole documents.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Natural-language search query",
				},
				"type": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"concepts", "sources", "documents"},
					"description": "What to search (default concepts)",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum results to return (default 10)",
				},
				"min_similarity": map[string]interface{}{
					"type":        "number",
					"description": "Similarity threshold between 0 and 1 (default 0.7)",
				},
				"offset": map[string]interface{}{
					"type":        "integer",
					"description": "Pagination offset (default 0)",
				},
				"ontology": map[string]interface{}{
					"type":        "string",
					"description": "Restrict results to one ontology (sources and documents only)",
				},
				"include_grounding": map[string]interface{}{
					"type":        "boolean",
					"description": "Include grounding scores (default true)",
				},
				"include_evidence": map[string]interface{}{
					"type":        "boolean",
					"description": "Include source evidence quotes (default true)",
				},
				"include_diversity": map[string]interface{}{
					"type":        "boolean",
					"description": "Include relationship-diversity analytics (default true)",
				},
				"diversity_max_hops": map[string]interface{}{
					"type":        "integer",
					"description": "Neighborhood radius for diversity (default 2)",
				},
				"include_concepts": map[string]interface{}{
					"type":        "boolean",
					"description": "For type=sources: include concepts grounded by each passage (default true)",
				},
				"include_full_text": map[string]interface{}{
					"type":        "boolean",
					"description": "For type=sources: include the matched passage text (default true)",
				},
			},
			Required: []string{"query"},
		},
	}, handler.Search)

	mcpServer.AddTool(mcp.Tool{
		Name:        "concept",
		Description: "Inspect concepts. action=details shows evidence and relationships, action=related walks neighbors, action=connect finds paths between two concepts by exact ids or semantic queries.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"action": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"details", "related", "connect"},
					"description": "Which concept operation to run",
				},
				"concept_id": map[string]interface{}{
					"type":        "string",
					"description": "Concept id for details and related",
				},
				"include_grounding": map[string]interface{}{
					"type":        "boolean",
					"description": "Include grounding scores (default true)",
				},
				"include_diversity": map[string]interface{}{
					"type":        "boolean",
					"description": "Include relationship-diversity analytics (default false)",
				},
				"diversity_max_hops": map[string]interface{}{
					"type":        "integer",
					"description": "Neighborhood radius for diversity (default 2)",
				},
				"truncate_evidence": map[string]interface{}{
					"type":        "boolean",
					"description": "Clamp evidence context to 200 characters (default true)",
				},
				"relationship_types": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "For action=related: restrict traversal to these relationship types",
				},
				"max_depth": map[string]interface{}{
					"type":        "integer",
					"description": "For action=related: traversal depth (default 2)",
				},
				"connection_mode": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"semantic", "exact"},
					"description": "For action=connect: endpoint resolution mode (default semantic)",
				},
				"from_id": map[string]interface{}{
					"type":        "string",
					"description": "Exact mode: starting concept id",
				},
				"to_id": map[string]interface{}{
					"type":        "string",
					"description": "Exact mode: target concept id",
				},
				"from_query": map[string]interface{}{
					"type":        "string",
					"description": "Semantic mode: query resolving the starting concept",
				},
				"to_query": map[string]interface{}{
					"type":        "string",
					"description": "Semantic mode: query resolving the target concept",
				},
				"max_hops": map[string]interface{}{
					"type":        "integer",
					"description": "Longest path to consider (default 3)",
				},
				"threshold": map[string]interface{}{
					"type":        "number",
					"description": "Semantic mode: endpoint similarity threshold (default 0.75)",
				},
				"include_evidence": map[string]interface{}{
					"type":        "boolean",
					"description": "Include evidence along the paths (default true)",
				},
				"include_epistemic_status": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Only traverse concepts with these epistemic statuses",
				},
				"exclude_epistemic_status": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Skip concepts with these epistemic statuses",
				},
			},
			Required: []string{"action"},
		},
	}, handler.Concept)

	mcpServer.AddTool(mcp.Tool{
		Name:        "ontology",
		Description: "Manage ontologies: listing, metadata, scoring, lifecycle, membership reassignment, dissolution, reorganization proposals and annealing.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"action": map[string]interface{}{
					"type": "string",
					"enum": []string{
						"list", "info", "files", "create", "rename", "delete",
						"lifecycle", "scores", "score", "score_all", "candidates",
						"affinity", "edges", "reassign", "dissolve", "proposals",
						"proposal_review", "annealing_cycle",
					},
					"description": "Which ontology operation to run",
				},
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Ontology name (required for all single-ontology actions)",
				},
				"description": map[string]interface{}{
					"type":        "string",
					"description": "For action=create: what this ontology covers",
				},
				"new_name": map[string]interface{}{
					"type":        "string",
					"description": "For action=rename: the new ontology name",
				},
				"force": map[string]interface{}{
					"type":        "boolean",
					"description": "For action=delete: delete even when the ontology still has sources",
				},
				"state": map[string]interface{}{
					"type":        "string",
					"description": "For action=lifecycle: the lifecycle state to set",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "For candidates (default 20) and edges (default 50)",
				},
				"target_ontology": map[string]interface{}{
					"type":        "string",
					"description": "Destination ontology for reassign; optional override for dissolve",
				},
				"source_ids": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "For action=reassign: sources to move",
				},
				"proposal_id": map[string]interface{}{
					"type":        "string",
					"description": "For action=proposal_review: the proposal to review",
				},
				"status": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"approved", "rejected"},
					"description": "For proposals (filter) and proposal_review (verdict)",
				},
				"notes": map[string]interface{}{
					"type":        "string",
					"description": "For action=proposal_review: reviewer notes",
				},
			},
			Required: []string{"action"},
		},
	}, handler.Ontology)

	mcpServer.AddTool(mcp.Tool{
		Name:        "job",
		Description: "Track and control asynchronous ingestion and analysis jobs: status, list, approve, cancel, delete, cleanup.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"action": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"status", "list", "approve", "cancel", "delete", "cleanup"},
					"description": "Which job operation to run",
				},
				"job_id": map[string]interface{}{
					"type":        "string",
					"description": "Job id (required for status, approve, cancel, delete)",
				},
				"status": map[string]interface{}{
					"type":        "string",
					"description": "For list and cleanup: filter by job status",
				},
				"force": map[string]interface{}{
					"type":        "boolean",
					"description": "For action=delete: remove a job that is still running",
				},
				"confirm": map[string]interface{}{
					"type":        "boolean",
					"description": "For action=cleanup: actually delete; without it the call is a dry run",
				},
				"older_than": map[string]interface{}{
					"type":        "string",
					"description": "For action=cleanup: only jobs older than this (e.g. 7d, 24h)",
				},
				"job_type": map[string]interface{}{
					"type":        "string",
					"description": "For action=cleanup: filter by job type",
				},
			},
			Required: []string{"action"},
		},
	}, handler.Job)

	mcpServer.AddTool(mcp.Tool{
		Name:        "ingest",
		Description: "Ingest content into the knowledge graph: raw text, a local file or batch of files, or a directory scan. File paths must be inside the configured allowlist.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"action": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"text", "inspect-file", "file", "directory"},
					"description": "Which ingest operation to run",
				},
				"text": map[string]interface{}{
					"type":        "string",
					"description": "For action=text: the raw text to ingest",
				},
				"ontology": map[string]interface{}{
					"type":        "string",
					"description": "Destination ontology (required for text and file; defaults to the directory basename for directory)",
				},
				"filename": map[string]interface{}{
					"type":        "string",
					"description": "Display filename for the ingested content",
				},
				"path": map[string]interface{}{
					"type":        []string{"string", "array"},
					"items":       map[string]interface{}{"type": "string"},
					"description": "For inspect-file and file: a local path, or an array of paths for a batch",
				},
				"directory": map[string]interface{}{
					"type":        "string",
					"description": "For action=directory: the directory to scan",
				},
				"force": map[string]interface{}{
					"type":        "boolean",
					"description": "Re-ingest even when identical content was already processed (default false)",
				},
				"auto_approve": map[string]interface{}{
					"type":        "boolean",
					"description": "Start processing without a manual approval step (default true)",
				},
				"processing_mode": map[string]interface{}{
					"type":        "string",
					"description": "Chunk processing mode (default serial)",
				},
				"target_words": map[string]interface{}{
					"type":        "integer",
					"description": "Target words per chunk (default 1000 for text)",
				},
				"overlap_words": map[string]interface{}{
					"type":        "integer",
					"description": "Overlapping words between chunks (default 200 for text)",
				},
				"recursive": map[string]interface{}{
					"type":        "boolean",
					"description": "For action=directory: descend into subdirectories (default false)",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "For action=directory: files per page (default 10)",
				},
				"offset": map[string]interface{}{
					"type":        "integer",
					"description": "For action=directory: pagination offset (default 0)",
				},
			},
			Required: []string{"action"},
		},
	}, handler.Ingest)

	mcpServer.AddTool(mcp.Tool{
		Name:        "source",
		Description: "Fetch a stored source passage by id, with its full text and provenance. Image sources return the stored image alongside the extracted text.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"source_id": map[string]interface{}{
					"type":        "string",
					"description": "The source id, as cited in evidence",
				},
			},
			Required: []string{"source_id"},
		},
	}, handler.Source)

	mcpServer.AddTool(mcp.Tool{
		Name:        "epistemic_status",
		Description: "Epistemic-status analytics: list measured vocabularies, show one scope, or submit a new measurement job.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"action": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"list", "show", "measure"},
					"description": "Which analytics operation to run",
				},
				"scope": map[string]interface{}{
					"type":        "string",
					"description": "For action=show: the vocabulary or ontology scope",
				},
				"vocab_types": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "For action=measure: restrict measurement to these vocabulary types",
				},
				"sample_size": map[string]interface{}{
					"type":        "integer",
					"description": "For action=measure: concepts to sample (default 100)",
				},
				"store": map[string]interface{}{
					"type":        "boolean",
					"description": "For action=measure: persist the measurement (default true)",
				},
				"verbose": map[string]interface{}{
					"type":        "boolean",
					"description": "For action=measure: include per-concept detail (default false)",
				},
			},
			Required: []string{"action"},
		},
	}, handler.EpistemicStatus)

	mcpServer.AddTool(mcp.Tool{
		Name:        "analyze_polarity_axis",
		Description: "Submit an asynchronous polarity-axis analysis between a positive and a negative pole concept, scoring candidates along the axis.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"positive_pole_id": map[string]interface{}{
					"type":        "string",
					"description": "Concept id of the positive pole",
				},
				"negative_pole_id": map[string]interface{}{
					"type":        "string",
					"description": "Concept id of the negative pole",
				},
				"candidate_ids": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Concepts to score along the axis",
				},
				"auto_discover": map[string]interface{}{
					"type":        "boolean",
					"description": "Discover candidates near the poles automatically (default true)",
				},
				"max_candidates": map[string]interface{}{
					"type":        "integer",
					"description": "Cap on discovered candidates (default 20)",
				},
				"max_hops": map[string]interface{}{
					"type":        "integer",
					"description": "Discovery neighborhood radius (default 1)",
				},
			},
			Required: []string{"positive_pole_id", "negative_pole_id"},
		},
	}, handler.AnalyzePolarityAxis)

	mcpServer.AddTool(mcp.Tool{
		Name:        "artifact",
		Description: "Browse stored analysis artifacts: list with filters, show one artifact's metadata, or fetch its stored payload.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"action": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"list", "show", "payload"},
					"description": "Which artifact operation to run",
				},
				"artifact_id": map[string]interface{}{
					"type":        "integer",
					"description": "Artifact id (required for show and payload)",
				},
				"artifact_type": map[string]interface{}{
					"type":        "string",
					"description": "For action=list: filter by artifact type",
				},
				"ontology": map[string]interface{}{
					"type":        "string",
					"description": "For action=list: filter by ontology",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "For action=list: page size (default 50)",
				},
				"offset": map[string]interface{}{
					"type":        "integer",
					"description": "For action=list: pagination offset (default 0)",
				},
			},
			Required: []string{"action"},
		},
	}, handler.Artifact)

	mcpServer.AddTool(mcp.Tool{
		Name:        "document",
		Description: "Browse ingested documents: list them, show one document's full content, or list the concepts extracted from it.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"action": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"list", "show", "concepts"},
					"description": "Which document operation to run",
				},
				"document_id": map[string]interface{}{
					"type":        "string",
					"description": "Document id (required for show and concepts)",
				},
				"ontology": map[string]interface{}{
					"type":        "string",
					"description": "For action=list: filter by ontology",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "For action=list: page size (default 50)",
				},
				"offset": map[string]interface{}{
					"type":        "integer",
					"description": "For action=list: pagination offset (default 0)",
				},
			},
			Required: []string{"action"},
		},
	}, handler.Document)

	mcpServer.AddTool(mcp.Tool{
		Name:        "graph",
		Description: "Direct graph mutations. create/edit/delete/list take an entity of concept or edge; queue executes up to 20 operations sequentially, stopping at the first failure unless continue_on_error is set.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"action": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"create", "edit", "delete", "list", "queue"},
					"description": "Which graph operation to run",
				},
				"entity": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"concept", "edge"},
					"description": "What kind of graph element to operate on",
				},
				"concept_id": map[string]interface{}{
					"type":        "string",
					"description": "Concept id for edit and delete",
				},
				"edge_id": map[string]interface{}{
					"type":        "string",
					"description": "Edge id for edit and delete",
				},
				"label": map[string]interface{}{
					"type":        "string",
					"description": "Concept label (required to create a concept)",
				},
				"ontology": map[string]interface{}{
					"type":        "string",
					"description": "Ontology for concept create, edge label resolution and list filtering",
				},
				"description": map[string]interface{}{
					"type":        "string",
					"description": "Concept description",
				},
				"search_terms": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Alternative matching terms for the concept",
				},
				"matching_mode": map[string]interface{}{
					"type":        "string",
					"description": "Duplicate handling when creating a concept",
				},
				"from_concept_id": map[string]interface{}{
					"type":        "string",
					"description": "Edge create: source concept id",
				},
				"to_concept_id": map[string]interface{}{
					"type":        "string",
					"description": "Edge create: target concept id",
				},
				"from_label": map[string]interface{}{
					"type":        "string",
					"description": "Edge create: source concept label, resolved server-side",
				},
				"to_label": map[string]interface{}{
					"type":        "string",
					"description": "Edge create: target concept label, resolved server-side",
				},
				"relationship_type": map[string]interface{}{
					"type":        "string",
					"description": "Edge relationship type (required to create an edge)",
				},
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Edge category (default structural)",
				},
				"confidence": map[string]interface{}{
					"type":        "number",
					"description": "Edge confidence between 0 and 1 (default 1.0)",
				},
				"cascade": map[string]interface{}{
					"type":        "boolean",
					"description": "Concept delete: also remove its relationships (default false)",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "For action=list: page size (default 50)",
				},
				"offset": map[string]interface{}{
					"type":        "integer",
					"description": "For action=list: pagination offset (default 0)",
				},
				"operations": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"op": map[string]interface{}{
								"type":        "string",
								"enum":        []string{"create", "edit", "delete"},
								"description": "The mutation to perform",
							},
							"entity": map[string]interface{}{
								"type":        "string",
								"enum":        []string{"concept", "edge"},
								"description": "What the mutation operates on",
							},
						},
						"required":             []string{"op", "entity"},
						"additionalProperties": true,
					},
					"description": "For action=queue: up to 20 mutations, each with op, entity and that mutation's fields",
				},
				"continue_on_error": map[string]interface{}{
					"type":        "boolean",
					"description": "For action=queue: keep executing after a failed operation (default false)",
				},
			},
			Required: []string{"action"},
		},
	}, handler.Graph)
}
