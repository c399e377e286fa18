// Package report renders a synthesis record into stakeholder-specific text.
// Rendering is pure templating: given the same record and stakeholder the
// output is byte-identical.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tracemineral/synthesis-engine/internal/domain/entities"
	apperrors "github.com/tracemineral/synthesis-engine/pkg/errors"
)

// Disclaimer appears on every rendered report regardless of stakeholder.
const Disclaimer = "This report is for research and education only. It is not medical advice. Consult qualified practitioners before acting on it."

var paradigmTitles = map[entities.Paradigm]string{
	entities.ParadigmAllopathy:   "Allopathic Medicine (Western/Evidence-Based)",
	entities.ParadigmNaturopathy: "Naturopathic Medicine",
	entities.ParadigmAyurveda:    "Ayurvedic Medicine",
	entities.ParadigmTCM:         "Traditional Chinese Medicine",
}

// Renderer renders synthesis records for the supported stakeholder kinds.
type Renderer struct{}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the report text for the given stakeholder.
func (r *Renderer) Render(record *entities.SynthesisRecord, stakeholder entities.StakeholderKind) (string, error) {
	if record == nil {
		return "", apperrors.NewValidationError("synthesis record is nil")
	}
	switch stakeholder {
	case entities.StakeholderResearchScientist:
		return r.renderResearchScientist(record), nil
	case entities.StakeholderProductTrainer:
		return r.renderProductTrainer(record), nil
	case entities.StakeholderDxProfessional:
		return r.renderDxProfessional(record), nil
	default:
		return "", apperrors.NewValidationError(fmt.Sprintf("unknown stakeholder kind %q", stakeholder))
	}
}

func (r *Renderer) renderResearchScientist(record *entities.SynthesisRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Multi-Paradigm Evidence Synthesis Report\n\n")
	fmt.Fprintf(&b, "**Hypothesis:** %s\n", record.Hypothesis)
	fmt.Fprintf(&b, "**Primary Compound:** %s\n", record.Mineral)
	fmt.Fprintf(&b, "**Date:** %s\n", record.GeneratedAt.Format("2006-01-02"))
	fmt.Fprintf(&b, "**Consensus Score:** %.2f / 1.00\n\n", record.ConsensusScore)

	b.WriteString("## Results by Paradigm\n\n")
	for _, p := range sortedParadigms(record.PerParadigmFindings) {
		finding := record.PerParadigmFindings[p]
		fmt.Fprintf(&b, "### %s\n\n", titleFor(p))
		if finding.Summary != "" {
			fmt.Fprintf(&b, "%s\n\n", finding.Summary)
		}
		if len(finding.Evidence) == 0 {
			fmt.Fprintf(&b, "_No significant %s evidence identified._\n\n", p)
			continue
		}
		for i, ev := range finding.Evidence {
			fmt.Fprintf(&b, "**Evidence %d** (%s): score %.2f, grade %s\n\n", i+1, ev.StudyType, ev.CredibilityScore, ev.Grade)
			b.WriteString("| Component | Contribution |\n|-----------|--------------|\n")
			for _, c := range ev.Components {
				fmt.Fprintf(&b, "| %s | %+.2f |\n", c.Label, c.Value)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("## Cross-Paradigm Analysis\n\n")
	fmt.Fprintf(&b, "| Paradigm | Normalized Aggregate |\n|----------|---------------------|\n")
	for _, p := range sortedBreakdown(record.ParadigmBreakdown) {
		fmt.Fprintf(&b, "| %s | %.2f |\n", p, record.ParadigmBreakdown[p])
	}
	b.WriteString("\n")

	if len(record.ConceptMappingsUsed) > 0 {
		b.WriteString("### Concept Equivalences Applied\n\n")
		for _, m := range record.ConceptMappingsUsed {
			fmt.Fprintf(&b, "- %s %q -> %s %q (confidence %.2f, %s band)\n",
				m.SourceParadigm, m.SourceConcept, m.TargetParadigm, m.TargetConcept, m.Confidence, m.Band())
		}
		b.WriteString("\nEquivalence confidence is reported separately from evidence credibility and does not alter the consensus score.\n\n")
	}

	if len(record.ResearchGaps) > 0 {
		b.WriteString("## Research Gaps & Future Directions\n\n")
		for i, gap := range record.ResearchGaps {
			fmt.Fprintf(&b, "%d. %s\n", i+1, gap)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Citations\n\n_Citation export pending; see the per-paradigm source registers._\n\n")
	b.WriteString("## Limitations\n\n")
	b.WriteString("- Traditional medicine evidence may not meet RCT standards\n")
	b.WriteString("- Translation of traditional concepts introduces uncertainty\n")
	b.WriteString("- Consensus scoring assumes equal paradigm weighting\n\n")

	writeFooter(&b)
	return b.String()
}

func (r *Renderer) renderProductTrainer(record *entities.SynthesisRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s Product Training Brief\n\n", capitalize(record.Mineral))
	fmt.Fprintf(&b, "**Date:** %s\n", record.GeneratedAt.Format("2006-01-02"))
	fmt.Fprintf(&b, "**Confidence Level:** %s\n\n", confidenceLevel(record.ConsensusScore))

	b.WriteString("## Key Talking Points\n\n")
	fmt.Fprintf(&b, "**Primary Benefit Claim:** %s\n\n", record.Hypothesis)
	fmt.Fprintf(&b, "**Cross-Tradition Consensus:** %.0f%% across %d tradition(s)\n\n",
		record.ConsensusScore*100, len(record.ParadigmBreakdown))

	b.WriteString("### What the Traditions Say\n\n")
	b.WriteString("| Tradition | Strength |\n|-----------|----------|\n")
	for _, p := range sortedBreakdown(record.ParadigmBreakdown) {
		fmt.Fprintf(&b, "| %s | %s |\n", titleFor(p), strengthWord(record.ParadigmBreakdown[p]))
	}
	b.WriteString("\n")

	b.WriteString("## How to Position\n\n")
	fmt.Fprintf(&b, "> %q has support across multiple healing traditions; lead with the consensus story, not any single study.\n\n", record.Mineral)

	if len(record.ResearchGaps) > 0 {
		b.WriteString("## What Not to Overclaim\n\n")
		for _, gap := range record.ResearchGaps {
			fmt.Fprintf(&b, "- %s\n", gap)
		}
		b.WriteString("\n")
	}

	writeFooter(&b)
	return b.String()
}

func (r *Renderer) renderDxProfessional(record *entities.SynthesisRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Clinical Integration Summary: %s\n\n", capitalize(record.Mineral))
	fmt.Fprintf(&b, "**Date:** %s\n", record.GeneratedAt.Format("2006-01-02"))
	fmt.Fprintf(&b, "**Evidence Consensus:** %.0f%%\n\n", record.ConsensusScore*100)

	b.WriteString("## Clinical Summary\n\n")
	fmt.Fprintf(&b, "**Indication:** %s\n", record.Hypothesis)
	fmt.Fprintf(&b, "**Compound:** %s\n\n", record.Mineral)

	b.WriteString("## Evidence Overview\n\n")
	for _, p := range sortedParadigms(record.PerParadigmFindings) {
		finding := record.PerParadigmFindings[p]
		fmt.Fprintf(&b, "### %s\n\n", titleFor(p))
		if finding.Summary != "" {
			fmt.Fprintf(&b, "%s\n\n", finding.Summary)
		}
		if len(finding.Evidence) == 0 {
			b.WriteString("Limited controlled data available; weigh traditional use accordingly.\n\n")
			continue
		}
		best := bestEvidence(finding.Evidence)
		fmt.Fprintf(&b, "Strongest evidence: %s at grade %s (score %.2f).\n\n", best.StudyType, best.Grade, best.CredibilityScore)
	}

	b.WriteString("## Protocol Considerations\n\n")
	b.WriteString("- Verify drug interactions for the specific mineral form before recommending\n")
	b.WriteString("- Establish baseline labs and a monitoring interval appropriate to the indication\n")
	b.WriteString("- Individual assessment is required; published ranges are informational only\n\n")

	if len(record.ResearchGaps) > 0 {
		b.WriteString("## Contraindication & Evidence Cautions\n\n")
		for _, gap := range record.ResearchGaps {
			fmt.Fprintf(&b, "- %s\n", gap)
		}
		b.WriteString("\n")
	}

	writeFooter(&b)
	return b.String()
}

func writeFooter(b *strings.Builder) {
	b.WriteString("---\n\n")
	b.WriteString("*" + Disclaimer + "*\n")
}

func confidenceLevel(consensus float64) string {
	switch {
	case consensus > 0.7:
		return "High"
	case consensus > 0.4:
		return "Moderate"
	default:
		return "Low"
	}
}

func strengthWord(normalized float64) string {
	switch {
	case normalized >= 0.6:
		return "Strong"
	case normalized >= 0.35:
		return "Moderate"
	default:
		return "Emerging"
	}
}

func titleFor(p entities.Paradigm) string {
	if title, ok := paradigmTitles[p]; ok {
		return title
	}
	return capitalize(string(p))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func bestEvidence(evidence []entities.GradedEvidence) entities.GradedEvidence {
	best := evidence[0]
	for _, ev := range evidence[1:] {
		if ev.CredibilityScore > best.CredibilityScore {
			best = ev
		}
	}
	return best
}

func sortedParadigms(findings map[entities.Paradigm]entities.ParadigmFinding) []entities.Paradigm {
	paradigms := make([]entities.Paradigm, 0, len(findings))
	for p := range findings {
		paradigms = append(paradigms, p)
	}
	sort.Slice(paradigms, func(i, j int) bool { return paradigms[i] < paradigms[j] })
	return paradigms
}

func sortedBreakdown(breakdown map[entities.Paradigm]float64) []entities.Paradigm {
	paradigms := make([]entities.Paradigm, 0, len(breakdown))
	for p := range breakdown {
		paradigms = append(paradigms, p)
	}
	sort.Slice(paradigms, func(i, j int) bool { return paradigms[i] < paradigms[j] })
	return paradigms
}
