package calibration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tracemineral/synthesis-engine/internal/domain/entities"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "golden.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestLoadGoldenCases_ValidFile(t *testing.T) {
	content := `[
		{"id": "c1", "description": "strong meta", "evidence": {"paradigm": "allopathy", "study_type": "meta_analysis", "sample_size": 1422, "effect_size": 0.55, "confidence_interval_width": 0.2, "peer_reviewed": true, "replication_count": 5}, "expected_grade": "A", "expected_score": 0.95},
		{"id": "c2", "description": "weak text", "evidence": {"paradigm": "tcm", "study_type": "traditional_text"}, "expected_grade": "D"}
	]`
	path := writeTempFile(t, content)

	cases, err := LoadGoldenCases(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(cases))
	}
	if cases[0].ID != "c1" {
		t.Errorf("expected id c1, got %s", cases[0].ID)
	}
	if cases[0].ExpectedScore == nil || *cases[0].ExpectedScore != 0.95 {
		t.Errorf("expected score pointer 0.95, got %v", cases[0].ExpectedScore)
	}
	if cases[1].ExpectedScore != nil {
		t.Error("expected nil score pointer when the label omits it")
	}
	if cases[1].Evidence.Paradigm != entities.ParadigmTCM {
		t.Errorf("expected tcm, got %s", cases[1].Evidence.Paradigm)
	}
}

func TestLoadGoldenCases_NonexistentFile(t *testing.T) {
	_, err := LoadGoldenCases("/nonexistent/golden.json")
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestLoadGoldenCases_InvalidJSON(t *testing.T) {
	path := writeTempFile(t, `{broken`)
	_, err := LoadGoldenCases(path)
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestValidateGoldenCases(t *testing.T) {
	valid := GoldenCase{
		ID:            "ok",
		Evidence:      entities.EvidenceRecord{Paradigm: entities.ParadigmAllopathy, StudyType: entities.StudyRCT},
		ExpectedGrade: entities.GradeB,
	}

	tests := []struct {
		name    string
		mutate  func(GoldenCase) GoldenCase
		wantErr bool
	}{
		{"valid case", func(c GoldenCase) GoldenCase { return c }, false},
		{"missing id", func(c GoldenCase) GoldenCase { c.ID = ""; return c }, true},
		{"invalid study type", func(c GoldenCase) GoldenCase { c.Evidence.StudyType = "anecdote"; return c }, true},
		{"missing paradigm", func(c GoldenCase) GoldenCase { c.Evidence.Paradigm = ""; return c }, true},
		{"invalid grade", func(c GoldenCase) GoldenCase { c.ExpectedGrade = "F"; return c }, true},
	}
	for _, tt := range tests {
		err := ValidateGoldenCases([]GoldenCase{tt.mutate(valid)})
		if tt.wantErr && err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
	}
}

func TestValidateGoldenCases_DuplicateID(t *testing.T) {
	c := GoldenCase{
		ID:            "dup",
		Evidence:      entities.EvidenceRecord{Paradigm: entities.ParadigmAllopathy, StudyType: entities.StudyRCT},
		ExpectedGrade: entities.GradeB,
	}
	if err := ValidateGoldenCases([]GoldenCase{c, c}); err == nil {
		t.Error("expected error for duplicate id")
	}
}
