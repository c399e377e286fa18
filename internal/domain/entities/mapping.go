package entities

// ConfidenceBand is the informal band a curated mapping confidence falls in.
type ConfidenceBand string

const (
	BandHigh   ConfidenceBand = "high"   // >= 0.85
	BandMedium ConfidenceBand = "medium" // 0.60 - 0.84
	BandLow    ConfidenceBand = "low"    // < 0.60
)

// ConceptMapping is a directed, confidence-scored equivalence between a
// concept in one paradigm and a concept in another. Confidence values are
// curated inputs; the engine surfaces them but never recomputes them.
type ConceptMapping struct {
	SourceParadigm Paradigm `json:"source_paradigm"`
	SourceConcept  string   `json:"source_concept"`
	TargetParadigm Paradigm `json:"target_paradigm"`
	TargetConcept  string   `json:"target_concept"`
	Confidence     float64  `json:"confidence"`
	Notes          string   `json:"notes,omitempty"`
}

// Band returns the informal confidence band for the mapping.
func (m ConceptMapping) Band() ConfidenceBand {
	switch {
	case m.Confidence >= 0.85:
		return BandHigh
	case m.Confidence >= 0.60:
		return BandMedium
	default:
		return BandLow
	}
}
