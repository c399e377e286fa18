package calibration

import "github.com/tracemineral/synthesis-engine/internal/domain/entities"

// GoldenCase is a labeled evidence record with its expected grading outcome.
type GoldenCase struct {
	ID            string                  `json:"id"`
	Description   string                  `json:"description"`
	Evidence      entities.EvidenceRecord `json:"evidence"`
	ExpectedGrade entities.Grade          `json:"expected_grade"`
	ExpectedScore *float64                `json:"expected_score,omitempty"`
}

// CaseResult holds the calibration outcome for a single golden case.
type CaseResult struct {
	CaseID        string         `json:"case_id"`
	ExpectedGrade entities.Grade `json:"expected_grade"`
	ActualGrade   entities.Grade `json:"actual_grade"`
	ActualScore   float64        `json:"actual_score"`
	ScoreError    float64        `json:"score_error"` // abs(actual - expected), 0 when no expected score
	GradeMatch    bool           `json:"grade_match"`
}

// Summary holds aggregate calibration metrics across all golden cases.
type Summary struct {
	TotalCases        int                                          `json:"total_cases"`
	GradeMatches      int                                          `json:"grade_matches"`
	GradeAccuracy     float64                                      `json:"grade_accuracy"`
	MeanAbsScoreError float64                                      `json:"mean_abs_score_error"`
	ByParadigm        map[entities.Paradigm]*ParadigmSummary       `json:"by_paradigm"`
	Results           []CaseResult                                 `json:"results"`
}

// ParadigmSummary holds metrics grouped by paradigm.
type ParadigmSummary struct {
	Count         int     `json:"count"`
	GradeMatches  int     `json:"grade_matches"`
	GradeAccuracy float64 `json:"grade_accuracy"`
}
