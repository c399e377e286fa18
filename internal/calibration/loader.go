// Package calibration replays a golden set of pre-graded evidence records
// through the grader and reports how closely the scoring tables track the
// labels. It guards the weight tables against accidental drift.
package calibration

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadGoldenCases reads and parses a golden case set from a JSON file.
func LoadGoldenCases(path string) ([]GoldenCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read golden cases file: %w", err)
	}

	var cases []GoldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("failed to parse golden cases: %w", err)
	}

	return cases, nil
}

// ValidateGoldenCases checks that all golden cases have required fields and
// valid values.
func ValidateGoldenCases(cases []GoldenCase) error {
	seen := make(map[string]struct{}, len(cases))

	for i, c := range cases {
		if c.ID == "" {
			return fmt.Errorf("case at index %d: missing id", i)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("case at index %d: duplicate id %q", i, c.ID)
		}
		seen[c.ID] = struct{}{}

		if !c.Evidence.StudyType.IsValid() {
			return fmt.Errorf("case %q: invalid study type %q", c.ID, c.Evidence.StudyType)
		}
		if c.Evidence.Paradigm == "" {
			return fmt.Errorf("case %q: missing paradigm", c.ID)
		}
		if !c.ExpectedGrade.IsValid() {
			return fmt.Errorf("case %q: invalid expected grade %q", c.ID, c.ExpectedGrade)
		}
	}

	return nil
}
