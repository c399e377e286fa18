// Package grading scores individual evidence records using the adapted
// GRADE methodology: a sum of six bounded, independent contributions mapped
// onto an A-D letter scale.
package grading

import (
	"fmt"
	"math"

	"github.com/tracemineral/synthesis-engine/internal/domain/entities"
	"github.com/tracemineral/synthesis-engine/internal/paradigm"
	apperrors "github.com/tracemineral/synthesis-engine/pkg/errors"
)

// Component labels, in the fixed order they appear in every breakdown.
const (
	ComponentStudyType   = "study_type"
	ComponentSampleSize  = "sample_size"
	ComponentEffectSize  = "effect_size"
	ComponentPrecision   = "precision"
	ComponentPeerReview  = "peer_review"
	ComponentReplication = "replication"
)

// Grade thresholds are inclusive on the lower bound.
const (
	thresholdA = 0.70
	thresholdB = 0.50
	thresholdC = 0.30
)

// MaxAttainableScore is the practical ceiling of a credibility score: the
// highest study-type weight (0.30) plus every bonus at its maximum tier.
const MaxAttainableScore = 1.20

// Grader scores evidence records against a paradigm registry.
type Grader struct {
	registry *paradigm.Registry
}

// NewGrader creates a grader bound to the given registry.
func NewGrader(registry *paradigm.Registry) *Grader {
	return &Grader{registry: registry}
}

// Grade scores one evidence record. It is deterministic and performs no
// I/O. Unknown paradigm or study-type keys and negative numeric fields fail
// fast; nothing is defaulted or clamped silently.
func (g *Grader) Grade(ev entities.EvidenceRecord) (entities.GradedEvidence, error) {
	if err := validate(ev); err != nil {
		return entities.GradedEvidence{}, err
	}

	weight, err := g.registry.WeightFor(ev.Paradigm, ev.StudyType)
	if err != nil {
		return entities.GradedEvidence{}, err
	}

	components := []entities.ScoreComponent{
		{Label: ComponentStudyType, Value: weight},
		{Label: ComponentSampleSize, Value: sampleSizeBonus(ev.SampleSize)},
		{Label: ComponentEffectSize, Value: effectSizeBonus(ev.EffectSize)},
		{Label: ComponentPrecision, Value: precisionBonus(ev.ConfidenceIntervalWidth)},
		{Label: ComponentPeerReview, Value: peerReviewBonus(ev.PeerReviewed)},
		{Label: ComponentReplication, Value: replicationBonus(ev.ReplicationCount)},
	}

	score := 0.0
	for _, c := range components {
		score += c.Value
	}

	return entities.GradedEvidence{
		Paradigm:         ev.Paradigm,
		StudyType:        ev.StudyType,
		CredibilityScore: score,
		Grade:            GradeForScore(score),
		Components:       components,
	}, nil
}

// GradeForScore maps a credibility score onto the letter scale.
func GradeForScore(score float64) entities.Grade {
	switch {
	case score >= thresholdA:
		return entities.GradeA
	case score >= thresholdB:
		return entities.GradeB
	case score >= thresholdC:
		return entities.GradeC
	default:
		return entities.GradeD
	}
}

func validate(ev entities.EvidenceRecord) error {
	if ev.SampleSize < 0 {
		return apperrors.NewInvalidEvidenceError(fmt.Sprintf("sample size must be non-negative, got %d", ev.SampleSize))
	}
	if ev.ConfidenceIntervalWidth < 0 {
		return apperrors.NewInvalidEvidenceError(fmt.Sprintf("confidence interval width must be non-negative, got %g", ev.ConfidenceIntervalWidth))
	}
	return nil
}

func sampleSizeBonus(n int) float64 {
	switch {
	case n > 1000:
		return 0.25
	case n > 400:
		return 0.20
	case n > 100:
		return 0.10
	case n > 30:
		return 0.05
	default:
		return 0
	}
}

func effectSizeBonus(d float64) float64 {
	switch magnitude := math.Abs(d); {
	case magnitude > 0.8:
		return 0.15
	case magnitude > 0.5:
		return 0.10
	case magnitude > 0.2:
		return 0.05
	default:
		return 0
	}
}

// A width of exactly 0 signals "unknown", not perfect precision, and earns
// no bonus. The top tier is inclusive at 0.2 so a CI width of exactly 0.2
// still counts as narrow.
func precisionBonus(ciWidth float64) float64 {
	switch {
	case ciWidth == 0:
		return 0
	case ciWidth <= 0.2:
		return 0.10
	case ciWidth < 0.5:
		return 0.05
	default:
		return 0
	}
}

func peerReviewBonus(peerReviewed bool) float64 {
	if peerReviewed {
		return 0.10
	}
	return 0
}

func replicationBonus(count int) float64 {
	switch {
	case count >= 3:
		return 0.10
	case count == 2:
		return 0.05
	default:
		return 0
	}
}
