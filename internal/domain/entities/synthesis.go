package entities

import (
	"sort"
	"time"
)

// ParadigmFinding groups one paradigm's contribution to a hypothesis: its
// graded evidence, a free-text summary from the paradigm researcher, and the
// tradition-specific concepts the evidence references.
type ParadigmFinding struct {
	Paradigm Paradigm         `json:"paradigm"`
	Evidence []GradedEvidence `json:"evidence"`
	Summary  string           `json:"summary,omitempty"`
	Concepts []string         `json:"concepts,omitempty"`
}

// SynthesisRecord aggregates the cross-paradigm evidence picture for one
// hypothesis. A record is created once all findings are in and never mutated
// afterwards; re-synthesis produces a new record.
type SynthesisRecord struct {
	ID                  string                      `json:"id" db:"id"`
	Hypothesis          string                      `json:"hypothesis" db:"hypothesis"`
	Mineral             string                      `json:"mineral" db:"mineral"`
	PerParadigmFindings map[Paradigm]ParadigmFinding `json:"per_paradigm_findings" db:"findings"`
	ConsensusScore      float64                     `json:"consensus_score" db:"consensus_score"`
	ParadigmBreakdown   map[Paradigm]float64        `json:"paradigm_breakdown" db:"paradigm_breakdown"`
	ConceptMappingsUsed []ConceptMapping            `json:"concept_mappings_used" db:"concept_mappings"`
	ResearchGaps        []string                    `json:"research_gaps" db:"research_gaps"`
	GeneratedAt         time.Time                   `json:"generated_at" db:"generated_at"`
}

// ContributingParadigms returns the paradigms that supplied at least one
// graded evidence record, in lexical order.
func (r *SynthesisRecord) ContributingParadigms() []Paradigm {
	paradigms := make([]Paradigm, 0, len(r.PerParadigmFindings))
	for p, f := range r.PerParadigmFindings {
		if len(f.Evidence) > 0 {
			paradigms = append(paradigms, p)
		}
	}
	sort.Slice(paradigms, func(i, j int) bool { return paradigms[i] < paradigms[j] })
	return paradigms
}
