package mapping

import "github.com/tracemineral/synthesis-engine/internal/domain/entities"

// Edge is a curated forward mapping plus load-time directives. A reverse
// edge with the same confidence is derived automatically unless suppressed.
type Edge struct {
	entities.ConceptMapping
	SuppressReverse bool `json:"suppress_reverse,omitempty"`
}

func edge(source entities.Paradigm, concept string, target entities.Paradigm, targetConcept string, confidence float64, notes string) Edge {
	return Edge{ConceptMapping: entities.ConceptMapping{
		SourceParadigm: source,
		SourceConcept:  concept,
		TargetParadigm: target,
		TargetConcept:  targetConcept,
		Confidence:     confidence,
		Notes:          notes,
	}}
}

// DefaultEdges returns the hand-curated cross-paradigm ontology the engine
// ships with. Confidence values are curated, not computed: the primary
// equivalent of each concept sits in the high band, secondary associations
// in the medium band, and loose correlates below it.
func DefaultEdges() []Edge {
	edges := []Edge{
		// TCM -> Allopathy
		edge(entities.ParadigmTCM, "kidney yang", entities.ParadigmAllopathy, "thyroid function", 0.85, "primary functional equivalent"),
		edge(entities.ParadigmTCM, "kidney yang", entities.ParadigmAllopathy, "adrenal function", 0.70, "secondary association"),
		edge(entities.ParadigmTCM, "kidney yang", entities.ParadigmAllopathy, "reproductive hormones", 0.70, ""),
		edge(entities.ParadigmTCM, "spleen qi", entities.ParadigmAllopathy, "digestive enzyme function", 0.85, "primary functional equivalent"),
		edge(entities.ParadigmTCM, "spleen qi", entities.ParadigmAllopathy, "metabolic rate", 0.70, ""),
		edge(entities.ParadigmTCM, "spleen qi", entities.ParadigmAllopathy, "immune function", 0.60, "loose correlate"),
		edge(entities.ParadigmTCM, "liver qi", entities.ParadigmAllopathy, "hepatic detox", 0.85, "primary functional equivalent"),
		edge(entities.ParadigmTCM, "liver qi", entities.ParadigmAllopathy, "autonomic regulation", 0.70, ""),
		edge(entities.ParadigmTCM, "phlegm dampness", entities.ParadigmAllopathy, "metabolic syndrome", 0.85, "primary functional equivalent"),
		edge(entities.ParadigmTCM, "phlegm dampness", entities.ParadigmAllopathy, "obesity", 0.70, ""),
		edge(entities.ParadigmTCM, "phlegm dampness", entities.ParadigmAllopathy, "dyslipidemia", 0.70, ""),
		edge(entities.ParadigmTCM, "blood stasis", entities.ParadigmAllopathy, "poor circulation", 0.85, "primary functional equivalent"),
		edge(entities.ParadigmTCM, "blood stasis", entities.ParadigmAllopathy, "thrombosis risk", 0.70, ""),
		edge(entities.ParadigmTCM, "yin deficiency", entities.ParadigmAllopathy, "hormonal imbalance", 0.70, ""),
		edge(entities.ParadigmTCM, "yin deficiency", entities.ParadigmAllopathy, "dehydration", 0.60, "loose correlate"),
		edge(entities.ParadigmTCM, "kidney essence", entities.ParadigmAllopathy, "bone marrow function", 0.85, "primary functional equivalent"),
		edge(entities.ParadigmTCM, "kidney essence", entities.ParadigmAllopathy, "reproductive health", 0.70, ""),
		edge(entities.ParadigmTCM, "heart fire", entities.ParadigmAllopathy, "anxiety", 0.70, ""),
		edge(entities.ParadigmTCM, "heart fire", entities.ParadigmAllopathy, "cardiovascular inflammation", 0.70, ""),

		// Ayurveda -> Allopathy
		edge(entities.ParadigmAyurveda, "kapha imbalance", entities.ParadigmAllopathy, "obesity", 0.85, "primary functional equivalent"),
		edge(entities.ParadigmAyurveda, "kapha imbalance", entities.ParadigmAllopathy, "fluid retention", 0.70, ""),
		edge(entities.ParadigmAyurveda, "kapha imbalance", entities.ParadigmAllopathy, "hypothyroidism", 0.65, ""),
		edge(entities.ParadigmAyurveda, "pitta excess", entities.ParadigmAllopathy, "inflammation", 0.85, "primary functional equivalent"),
		edge(entities.ParadigmAyurveda, "pitta excess", entities.ParadigmAllopathy, "hyperthyroidism", 0.65, ""),
		edge(entities.ParadigmAyurveda, "pitta excess", entities.ParadigmAllopathy, "acidosis", 0.60, "loose correlate"),
		edge(entities.ParadigmAyurveda, "vata aggravation", entities.ParadigmAllopathy, "anxiety", 0.75, ""),
		edge(entities.ParadigmAyurveda, "vata aggravation", entities.ParadigmAllopathy, "neurological dysfunction", 0.70, ""),
		edge(entities.ParadigmAyurveda, "vata aggravation", entities.ParadigmAllopathy, "irregular metabolism", 0.60, "loose correlate"),
		edge(entities.ParadigmAyurveda, "agni dysfunction", entities.ParadigmAllopathy, "metabolic rate", 0.85, "primary functional equivalent"),
		edge(entities.ParadigmAyurveda, "agni dysfunction", entities.ParadigmAllopathy, "enzyme deficiency", 0.70, ""),
		edge(entities.ParadigmAyurveda, "ama accumulation", entities.ParadigmAllopathy, "endotoxins", 0.60, "contested equivalence"),
		edge(entities.ParadigmAyurveda, "ama accumulation", entities.ParadigmAllopathy, "advanced glycation end-products", 0.55, "contested equivalence"),
		edge(entities.ParadigmAyurveda, "dhatu depletion", entities.ParadigmAllopathy, "tissue wasting", 0.80, ""),
		edge(entities.ParadigmAyurveda, "dhatu depletion", entities.ParadigmAllopathy, "malnutrition", 0.70, ""),
		edge(entities.ParadigmAyurveda, "ojas deficiency", entities.ParadigmAllopathy, "immune weakness", 0.70, ""),
		edge(entities.ParadigmAyurveda, "ojas deficiency", entities.ParadigmAllopathy, "chronic fatigue", 0.65, ""),
		edge(entities.ParadigmAyurveda, "prameha", entities.ParadigmAllopathy, "diabetes", 0.90, "classical description closely matches"),
		edge(entities.ParadigmAyurveda, "prameha", entities.ParadigmAllopathy, "metabolic syndrome", 0.75, ""),
		edge(entities.ParadigmAyurveda, "prameha", entities.ParadigmAllopathy, "urinary disorders", 0.70, ""),

		// Naturopathy -> Allopathy
		edge(entities.ParadigmNaturopathy, "vital force", entities.ParadigmAllopathy, "homeostatic mechanisms", 0.65, ""),
		edge(entities.ParadigmNaturopathy, "vital force", entities.ParadigmAllopathy, "immune function", 0.60, "loose correlate"),
		edge(entities.ParadigmNaturopathy, "detoxification", entities.ParadigmAllopathy, "hepatic phase i/ii metabolism", 0.85, "primary functional equivalent"),
		edge(entities.ParadigmNaturopathy, "detoxification", entities.ParadigmAllopathy, "renal clearance", 0.70, ""),
		edge(entities.ParadigmNaturopathy, "gut health", entities.ParadigmAllopathy, "microbiome balance", 0.85, "primary functional equivalent"),
		edge(entities.ParadigmNaturopathy, "gut health", entities.ParadigmAllopathy, "intestinal permeability", 0.75, ""),
		edge(entities.ParadigmNaturopathy, "adrenal fatigue", entities.ParadigmAllopathy, "hpa axis dysfunction", 0.80, ""),
		edge(entities.ParadigmNaturopathy, "adrenal fatigue", entities.ParadigmAllopathy, "cortisol dysregulation", 0.75, ""),
		edge(entities.ParadigmNaturopathy, "leaky gut", entities.ParadigmAllopathy, "intestinal permeability", 0.85, "primary functional equivalent"),
		edge(entities.ParadigmNaturopathy, "leaky gut", entities.ParadigmAllopathy, "food sensitivities", 0.65, ""),
		edge(entities.ParadigmNaturopathy, "oxidative stress", entities.ParadigmAllopathy, "free radical damage", 0.90, "shared terminology"),
		edge(entities.ParadigmNaturopathy, "oxidative stress", entities.ParadigmAllopathy, "antioxidant deficiency", 0.75, ""),
	}

	// "longevity" is not a clinical endpoint; keep the forward edge for
	// report context but do not let allopathic callers resolve it.
	longevity := edge(entities.ParadigmTCM, "kidney essence", entities.ParadigmAllopathy, "longevity", 0.55, "not a clinical endpoint")
	longevity.SuppressReverse = true
	edges = append(edges, longevity)

	return edges
}
