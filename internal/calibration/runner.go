package calibration

import (
	"math"

	"github.com/tracemineral/synthesis-engine/internal/domain/entities"
	"github.com/tracemineral/synthesis-engine/internal/grading"
)

// Runner replays golden cases against a grader.
type Runner struct {
	grader *grading.Grader
}

// NewRunner creates a runner bound to the given grader.
func NewRunner(grader *grading.Grader) *Runner {
	return &Runner{grader: grader}
}

// Run grades every golden case and aggregates the outcome. A grading error
// aborts the run: the golden set is expected to be valid input.
func (r *Runner) Run(cases []GoldenCase) (*Summary, error) {
	summary := &Summary{
		TotalCases: len(cases),
		ByParadigm: make(map[entities.Paradigm]*ParadigmSummary),
	}

	for _, c := range cases {
		graded, err := r.grader.Grade(c.Evidence)
		if err != nil {
			return nil, err
		}

		result := CaseResult{
			CaseID:        c.ID,
			ExpectedGrade: c.ExpectedGrade,
			ActualGrade:   graded.Grade,
			ActualScore:   graded.CredibilityScore,
			GradeMatch:    graded.Grade == c.ExpectedGrade,
		}
		if c.ExpectedScore != nil {
			result.ScoreError = math.Abs(graded.CredibilityScore - *c.ExpectedScore)
		}

		r.updateSummary(summary, c.Evidence.Paradigm, result)
	}

	r.finalizeSummary(summary)
	return summary, nil
}

func (r *Runner) updateSummary(s *Summary, paradigm entities.Paradigm, res CaseResult) {
	s.Results = append(s.Results, res)
	s.MeanAbsScoreError += res.ScoreError
	if res.GradeMatch {
		s.GradeMatches++
	}

	if _, ok := s.ByParadigm[paradigm]; !ok {
		s.ByParadigm[paradigm] = &ParadigmSummary{}
	}
	ps := s.ByParadigm[paradigm]
	ps.Count++
	if res.GradeMatch {
		ps.GradeMatches++
	}
}

func (r *Runner) finalizeSummary(s *Summary) {
	if s.TotalCases > 0 {
		n := float64(s.TotalCases)
		s.GradeAccuracy = float64(s.GradeMatches) / n
		s.MeanAbsScoreError /= n
	}

	for _, ps := range s.ByParadigm {
		if ps.Count > 0 {
			ps.GradeAccuracy = float64(ps.GradeMatches) / float64(ps.Count)
		}
	}
}
