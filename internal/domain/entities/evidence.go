package entities

// Paradigm identifies a medical knowledge tradition treated as an
// independent evidentiary frame. The set of paradigms actually accepted at
// runtime is owned by the paradigm registry; these constants name the
// traditions shipped by default.
type Paradigm string

const (
	ParadigmAllopathy   Paradigm = "allopathy"
	ParadigmNaturopathy Paradigm = "naturopathy"
	ParadigmAyurveda    Paradigm = "ayurveda"
	ParadigmTCM         Paradigm = "tcm"
)

// StudyType classifies the design of a piece of evidence.
type StudyType string

const (
	StudyMetaAnalysis    StudyType = "meta_analysis"
	StudyRCT             StudyType = "rct"
	StudyCohort          StudyType = "cohort"
	StudyCaseControl     StudyType = "case_control"
	StudyCaseSeries      StudyType = "case_series"
	StudyExpertOpinion   StudyType = "expert_opinion"
	StudyTraditionalText StudyType = "traditional_text"
)

// ValidStudyTypes returns all valid study type values.
func ValidStudyTypes() []StudyType {
	return []StudyType{
		StudyMetaAnalysis,
		StudyRCT,
		StudyCohort,
		StudyCaseControl,
		StudyCaseSeries,
		StudyExpertOpinion,
		StudyTraditionalText,
	}
}

// IsValid checks if the study type is one of the defined constants.
func (s StudyType) IsValid() bool {
	switch s {
	case StudyMetaAnalysis, StudyRCT, StudyCohort, StudyCaseControl,
		StudyCaseSeries, StudyExpertOpinion, StudyTraditionalText:
		return true
	}
	return false
}

// EvidenceRecord is one already-extracted piece of evidence submitted for
// grading. Values are passed by value and never retained by the engine.
type EvidenceRecord struct {
	Paradigm                Paradigm  `json:"paradigm"`
	StudyType               StudyType `json:"study_type"`
	SampleSize              int       `json:"sample_size"`
	EffectSize              float64   `json:"effect_size"`
	ConfidenceIntervalWidth float64   `json:"confidence_interval_width"` // 0 means unknown/not applicable
	PeerReviewed            bool      `json:"peer_reviewed"`
	ReplicationCount        int       `json:"replication_count"`
}

// Grade is the letter grade assigned to a credibility score.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

// IsValid checks if the grade is one of the defined constants.
func (g Grade) IsValid() bool {
	switch g {
	case GradeA, GradeB, GradeC, GradeD:
		return true
	}
	return false
}

// ScoreComponent is one named contribution to a credibility score.
type ScoreComponent struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// GradedEvidence is the grader's output for a single evidence record. The
// component breakdown always lists every contribution, zero-valued ones
// included, in a fixed order, and sums to CredibilityScore.
type GradedEvidence struct {
	Paradigm         Paradigm         `json:"paradigm"`
	StudyType        StudyType        `json:"study_type"`
	CredibilityScore float64          `json:"credibility_score"`
	Grade            Grade            `json:"grade"`
	Components       []ScoreComponent `json:"component_breakdown"`
}
