// Package synthesis combines per-paradigm graded findings into a single
// cross-paradigm consensus record.
package synthesis

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/tracemineral/synthesis-engine/internal/domain/entities"
	"github.com/tracemineral/synthesis-engine/internal/grading"
	"github.com/tracemineral/synthesis-engine/internal/mapping"
	"github.com/tracemineral/synthesis-engine/internal/paradigm"
	apperrors "github.com/tracemineral/synthesis-engine/pkg/errors"
)

// minSupportingParadigms is the number of paradigms that must reach grade B
// or better before the hypothesis counts as cross-validated.
const minSupportingParadigms = 2

// Synthesizer builds consensus records. It holds only immutable
// collaborators and is safe for concurrent use.
type Synthesizer struct {
	registry *paradigm.Registry
	mapper   *mapping.Mapper
	now      func() time.Time
}

// NewSynthesizer creates a synthesizer. The registry defines which absent
// paradigms count as research gaps. The mapper may be nil, in which case no
// concept cross-references are recorded.
func NewSynthesizer(registry *paradigm.Registry, mapper *mapping.Mapper) *Synthesizer {
	return &Synthesizer{registry: registry, mapper: mapper, now: time.Now}
}

// Synthesize aggregates per-paradigm findings for one hypothesis.
//
// Each contributing paradigm is anchored by its strongest single piece of
// evidence (max credibility, not mean): weak corroborating findings do not
// dilute a strong one. The consensus score is the mean of the contributing
// paradigms' aggregates normalized by the maximum attainable credibility and
// clamped to [0,1]. Paradigms without findings are excluded from both sides
// of the mean; their absence shows up as research gaps instead.
func (s *Synthesizer) Synthesize(hypothesis, mineral string, findings map[entities.Paradigm]entities.ParadigmFinding) (*entities.SynthesisRecord, error) {
	contributing := contributingParadigms(findings)
	if len(contributing) == 0 {
		return nil, apperrors.NewInsufficientEvidenceError("no paradigm submitted any graded evidence")
	}

	breakdown := make(map[entities.Paradigm]float64, len(contributing))
	total := 0.0
	for _, p := range contributing {
		aggregate := maxCredibility(findings[p].Evidence)
		normalized := clamp01(aggregate / grading.MaxAttainableScore)
		breakdown[p] = normalized
		total += normalized
	}
	consensus := clamp01(total / float64(len(contributing)))

	record := &entities.SynthesisRecord{
		ID:                  uuid.NewString(),
		Hypothesis:          hypothesis,
		Mineral:             mineral,
		PerParadigmFindings: copyFindings(findings),
		ConsensusScore:      consensus,
		ParadigmBreakdown:   breakdown,
		ConceptMappingsUsed: s.crossReferences(contributing, findings),
		ResearchGaps:        s.researchGaps(contributing, findings),
		GeneratedAt:         s.now().UTC(),
	}
	return record, nil
}

func contributingParadigms(findings map[entities.Paradigm]entities.ParadigmFinding) []entities.Paradigm {
	paradigms := make([]entities.Paradigm, 0, len(findings))
	for p, f := range findings {
		if len(f.Evidence) > 0 {
			paradigms = append(paradigms, p)
		}
	}
	sort.Slice(paradigms, func(i, j int) bool { return paradigms[i] < paradigms[j] })
	return paradigms
}

func maxCredibility(evidence []entities.GradedEvidence) float64 {
	best := 0.0
	for _, ev := range evidence {
		if ev.CredibilityScore > best {
			best = ev.CredibilityScore
		}
	}
	return best
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// crossReferences records curated mappings that link concepts referenced by
// two contributing paradigms. Agreement across a mapping is reported as
// supporting context only; it never moves the numeric consensus, because the
// mapping's own confidence is a statement about concept equivalence, not
// about evidence credibility.
func (s *Synthesizer) crossReferences(contributing []entities.Paradigm, findings map[entities.Paradigm]entities.ParadigmFinding) []entities.ConceptMapping {
	if s.mapper == nil || len(contributing) < 2 {
		return nil
	}

	var used []entities.ConceptMapping
	seen := make(map[string]struct{})
	for _, source := range contributing {
		for _, target := range contributing {
			if source == target {
				continue
			}
			for _, concept := range findings[source].Concepts {
				result, err := s.mapper.Translate(source, concept, target)
				if err != nil || !result.Found {
					continue
				}
				key := fmt.Sprintf("%s|%s|%s", result.Mapping.SourceParadigm, result.Mapping.SourceConcept, result.Mapping.TargetParadigm)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				used = append(used, *result.Mapping)
			}
		}
	}
	return used
}

// researchGaps names every paradigm absent from the input and flags weak
// cross-validation when fewer than two paradigms reach grade B or better.
func (s *Synthesizer) researchGaps(contributing []entities.Paradigm, findings map[entities.Paradigm]entities.ParadigmFinding) []string {
	var gaps []string

	present := make(map[entities.Paradigm]struct{}, len(contributing))
	for _, p := range contributing {
		present[p] = struct{}{}
	}
	for _, p := range s.registry.SupportedParadigms() {
		if _, ok := present[p]; !ok {
			gaps = append(gaps, fmt.Sprintf("no %s evidence was provided for this hypothesis", p))
		}
	}

	supporting := 0
	for _, p := range contributing {
		if bestGradeAtLeastB(findings[p].Evidence) {
			supporting++
		}
	}
	if supporting < minSupportingParadigms {
		gaps = append(gaps, fmt.Sprintf(
			"only %d paradigm(s) support the hypothesis at grade B or better; cross-paradigm validation is weak", supporting))
	}

	return gaps
}

func bestGradeAtLeastB(evidence []entities.GradedEvidence) bool {
	for _, ev := range evidence {
		if ev.Grade == entities.GradeA || ev.Grade == entities.GradeB {
			return true
		}
	}
	return false
}

func copyFindings(findings map[entities.Paradigm]entities.ParadigmFinding) map[entities.Paradigm]entities.ParadigmFinding {
	cp := make(map[entities.Paradigm]entities.ParadigmFinding, len(findings))
	for p, f := range findings {
		evidence := make([]entities.GradedEvidence, len(f.Evidence))
		copy(evidence, f.Evidence)
		concepts := make([]string, len(f.Concepts))
		copy(concepts, f.Concepts)
		f.Evidence = evidence
		f.Concepts = concepts
		cp[p] = f
	}
	return cp
}
