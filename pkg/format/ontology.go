// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"fmt"
	"strings"

	"github.com/kgfoundry/kgmcp/pkg/kgclient"
)

// OntologyList renders the ontology listing with per-ontology counts.
func OntologyList(resp *kgclient.OntologyList) string {
	if len(resp.Ontologies) == 0 {
		return noResults("ontologies", "Ingest a document to create one.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Ontologies (%d)\n", resp.Count)
	for _, o := range resp.Ontologies {
		fmt.Fprintf(&b, "\n## %s\n", o.Ontology)
		kv(&b, "Concepts", fmt.Sprintf("%d", o.ConceptCount))
		kv(&b, "Sources", fmt.Sprintf("%d", o.SourceCount))
		kv(&b, "Files", fmt.Sprintf("%d", o.FileCount))
		kv(&b, "Lifecycle", o.LifecycleState)
		kv(&b, "Created by", o.CreatedBy)
	}
	return b.String()
}

// OntologyInfo renders the detail view of one ontology.
func OntologyInfo(resp *kgclient.OntologyInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Ontology: %s\n", resp.Ontology)

	if len(resp.Statistics) > 0 {
		b.WriteString("\n## Statistics\n")
		for _, key := range sortedKeys(resp.Statistics) {
			fmt.Fprintf(&b, "- %s: %s\n", key, renderValue(resp.Statistics[key]))
		}
	}
	if len(resp.Files) > 0 {
		fmt.Fprintf(&b, "\n## Files (%d)\n", len(resp.Files))
		for _, f := range resp.Files {
			fmt.Fprintf(&b, "- %s\n", f)
		}
	}
	return b.String()
}

// OntologyFiles renders the files tracked under an ontology.
func OntologyFiles(resp *kgclient.OntologyFiles) string {
	if len(resp.Files) == 0 {
		return noResults("files", fmt.Sprintf("Ontology %q has no tracked files yet.", resp.Ontology))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Files in %s (%d)\n\n", resp.Ontology, resp.Count)
	for _, f := range resp.Files {
		fmt.Fprintf(&b, "- %s (%d chunk(s), %d concept(s))\n", f.FilePath, f.ChunkCount, f.ConceptCount)
	}
	return b.String()
}

// OntologyCreated renders a create acknowledgement.
func OntologyCreated(resp *kgclient.CreateOntologyResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Ontology Created: %s\n", resp.Ontology)
	kv(&b, "Status", boolWord(resp.Created, "created", "already existed"))
	kv(&b, "Message", resp.Message)
	return b.String()
}

// OntologyRenamed renders a rename acknowledgement.
func OntologyRenamed(resp *kgclient.RenameOntologyResponse) string {
	if !resp.Success {
		return fmt.Sprintf("Rename failed: %s", resp.Error)
	}
	var b strings.Builder
	b.WriteString("# Ontology Renamed\n\n")
	fmt.Fprintf(&b, "- %s → %s\n", resp.OldName, resp.NewName)
	fmt.Fprintf(&b, "- Sources updated: %d\n", resp.SourcesUpdated)
	return b.String()
}

// OntologyDeleted renders a delete acknowledgement.
func OntologyDeleted(resp *kgclient.DeleteOntologyResponse) string {
	if !resp.Deleted {
		if resp.Error != "" {
			return fmt.Sprintf("Delete failed: %s", resp.Error)
		}
		return fmt.Sprintf("Ontology %q was not deleted.", resp.Ontology)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Ontology Deleted: %s\n\n", resp.Ontology)
	fmt.Fprintf(&b, "- Sources deleted: %d\n", resp.SourcesDeleted)
	fmt.Fprintf(&b, "- Orphaned concepts deleted: %d\n", resp.OrphanedConceptsDeleted)
	return b.String()
}

// OntologyLifecycleChanged renders a lifecycle transition.
func OntologyLifecycleChanged(resp *kgclient.LifecycleResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Lifecycle: %s\n\n", resp.Ontology)
	fmt.Fprintf(&b, "- %s → %s\n", resp.PreviousState, resp.NewState)
	return b.String()
}

// OntologyScoreCard renders the annealing scores of one ontology.
func OntologyScoreCard(resp *kgclient.OntologyScores) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Scores: %s\n\n", resp.Ontology)
	writeScoreLines(&b, resp)
	return b.String()
}

// AllOntologyScores renders the score table for every ontology.
func AllOntologyScores(resp *kgclient.OntologyScoresList) string {
	if len(resp.Scores) == 0 {
		return noResults("ontology scores", "Run the score_all action after ingesting data.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Ontology Scores (%d)\n", resp.Count)
	if resp.GlobalEpoch > 0 {
		fmt.Fprintf(&b, "\nGraph epoch: %d\n", resp.GlobalEpoch)
	}
	for i := range resp.Scores {
		s := &resp.Scores[i]
		fmt.Fprintf(&b, "\n## %s\n", s.Ontology)
		writeScoreLines(&b, s)
	}
	return b.String()
}

func writeScoreLines(b *strings.Builder, s *kgclient.OntologyScores) {
	writeScore(b, "Mass", s.MassScore)
	writeScore(b, "Coherence", s.CoherenceScore)
	writeScore(b, "Raw exposure", s.RawExposure)
	writeScore(b, "Weighted exposure", s.WeightedExposure)
	writeScore(b, "Protection", s.ProtectionScore)
	if s.LastEvaluatedEpoch != nil {
		fmt.Fprintf(b, "- Last evaluated epoch: %d\n", *s.LastEvaluatedEpoch)
	}
}

func writeScore(b *strings.Builder, name string, v *float64) {
	if v != nil {
		fmt.Fprintf(b, "- %s: %s\n", name, num(*v))
	}
}

// OntologyCandidates renders anchor-concept candidates ranked by degree.
func OntologyCandidates(resp *kgclient.ConceptDegrees) string {
	if len(resp.Concepts) == 0 {
		return noResults("anchor candidates", fmt.Sprintf("Ontology %q has no connected concepts.", resp.Ontology))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Anchor Candidates: %s (%d)\n\n", resp.Ontology, resp.Count)
	for i, c := range resp.Concepts {
		fmt.Fprintf(&b, "%d. %s (%s) — degree %d", i+1, c.Label, c.ConceptID, c.Degree)
		if c.InDegree > 0 || c.OutDegree > 0 {
			fmt.Fprintf(&b, " (in %d, out %d)", c.InDegree, c.OutDegree)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// OntologyAffinity renders cross-ontology concept overlap.
func OntologyAffinity(resp *kgclient.Affinity) string {
	if len(resp.Affinities) == 0 {
		return noResults("affinities", fmt.Sprintf("Ontology %q shares no concepts with others.", resp.Ontology))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Affinity: %s (%d)\n\n", resp.Ontology, resp.Count)
	for _, a := range resp.Affinities {
		fmt.Fprintf(&b, "- %s: score %s (%d of %d concepts shared)\n",
			a.OtherOntology, num(a.AffinityScore), a.SharedConceptCount, a.TotalConcepts)
	}
	return b.String()
}

// OntologyEdgeList renders computed ontology-to-ontology edges.
func OntologyEdgeList(resp *kgclient.OntologyEdges) string {
	if len(resp.Edges) == 0 {
		return noResults("ontology edges", "Run an annealing cycle to compute them.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Ontology Edges: %s (%d)\n\n", resp.Ontology, resp.Count)
	for _, e := range resp.Edges {
		fmt.Fprintf(&b, "- %s → %s [%s] score %s", e.FromOntology, e.ToOntology, e.EdgeType, num(e.Score))
		if e.SharedConceptCount > 0 {
			fmt.Fprintf(&b, ", %d shared concept(s)", e.SharedConceptCount)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// SourcesReassigned renders a reassignment acknowledgement.
func SourcesReassigned(resp *kgclient.ReassignResponse) string {
	if !resp.Success {
		return fmt.Sprintf("Reassignment failed: %s", resp.Error)
	}
	var b strings.Builder
	b.WriteString("# Sources Reassigned\n\n")
	fmt.Fprintf(&b, "- %s → %s\n", resp.FromOntology, resp.ToOntology)
	fmt.Fprintf(&b, "- Sources moved: %d\n", resp.SourcesReassigned)
	return b.String()
}

// OntologyDissolved renders a dissolution acknowledgement.
func OntologyDissolved(resp *kgclient.DissolveResponse) string {
	if !resp.Success {
		return fmt.Sprintf("Dissolve failed: %s", resp.Error)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Ontology Dissolved: %s\n\n", resp.DissolvedOntology)
	fmt.Fprintf(&b, "- Sources reassigned: %d\n", resp.SourcesReassigned)
	fmt.Fprintf(&b, "- Ontology node deleted: %t\n", resp.OntologyNodeDeleted)
	if len(resp.ReassignmentTargets) > 0 {
		b.WriteString("- Reassignment targets:\n")
		for _, target := range sortedKeys(resp.ReassignmentTargets) {
			fmt.Fprintf(&b, "  - %s: %d\n", target, resp.ReassignmentTargets[target])
		}
	}
	return b.String()
}

// ProposalsList renders pending or reviewed annealing proposals.
func ProposalsList(resp *kgclient.ProposalList) string {
	if len(resp.Proposals) == 0 {
		return noResults("proposals", "Run an annealing cycle to generate proposals.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Annealing Proposals (%d)\n", resp.Count)
	for _, p := range resp.Proposals {
		fmt.Fprintf(&b, "\n## %s — %s\n", p.ID, p.ProposalType)
		kv(&b, "Ontology", p.OntologyName)
		kv(&b, "Target", p.TargetOntology)
		kv(&b, "Status", p.Status)
		kv(&b, "Reasoning", p.Reasoning)
		writeScore(&b, "Mass", p.MassScore)
		writeScore(&b, "Coherence", p.CoherenceScore)
		writeScore(&b, "Protection", p.ProtectionScore)
		kv(&b, "Created", p.CreatedAt)
		kv(&b, "Reviewed", p.ReviewedAt)
	}
	return b.String()
}

// ProposalReviewed renders a review acknowledgement.
func ProposalReviewed(p *kgclient.Proposal) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Proposal %s: %s\n", p.ID, p.Status)
	kv(&b, "Type", p.ProposalType)
	kv(&b, "Ontology", p.OntologyName)
	kv(&b, "Reviewer notes", p.ReviewerNotes)
	return b.String()
}

// AnnealingCycle renders the result of one annealing cycle.
func AnnealingCycle(resp *kgclient.AnnealingCycleResult) string {
	var b strings.Builder
	b.WriteString("# Annealing Cycle Complete\n\n")
	if resp.DryRun {
		b.WriteString("(dry run — no changes applied)\n\n")
	}
	fmt.Fprintf(&b, "- Proposals generated: %d\n", resp.ProposalsGenerated)
	fmt.Fprintf(&b, "- Demotion candidates: %d\n", resp.DemotionCandidates)
	fmt.Fprintf(&b, "- Promotion candidates: %d\n", resp.PromotionCandidates)
	fmt.Fprintf(&b, "- Scores updated: %d\n", resp.ScoresUpdated)
	fmt.Fprintf(&b, "- Edges created: %d, deleted: %d\n", resp.EdgesCreated, resp.EdgesDeleted)
	fmt.Fprintf(&b, "- Cycle epoch: %d\n", resp.CycleEpoch)
	return b.String()
}

func boolWord(v bool, yes, no string) string {
	if v {
		return yes
	}
	return no
}
