package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tracemineral/synthesis-engine/internal/domain/entities"
	"github.com/tracemineral/synthesis-engine/internal/paradigm"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mappings.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestLoadEdges_ValidFile(t *testing.T) {
	content := `[
		{"source_paradigm": "tcm", "source_concept": "kidney yang", "target_paradigm": "allopathy", "target_concept": "thyroid function", "confidence": 0.85, "notes": "primary functional equivalent"},
		{"source_paradigm": "tcm", "source_concept": "kidney essence", "target_paradigm": "allopathy", "target_concept": "longevity", "confidence": 0.55, "suppress_reverse": true}
	]`
	path := writeTempFile(t, content)

	edges, err := LoadEdges(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(edges) != 2 {
		t.Fatalf("expected 2 edges, got %d", len(edges))
	}
	if edges[0].SourceConcept != "kidney yang" {
		t.Errorf("expected kidney yang, got %q", edges[0].SourceConcept)
	}
	if edges[0].Confidence != 0.85 {
		t.Errorf("expected confidence 0.85, got %f", edges[0].Confidence)
	}
	if edges[0].SuppressReverse {
		t.Error("expected suppress_reverse to default to false")
	}
	if !edges[1].SuppressReverse {
		t.Error("expected suppress_reverse true on the second edge")
	}
}

func TestLoadEdges_NonexistentFile(t *testing.T) {
	_, err := LoadEdges("/nonexistent/mappings.json")
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestLoadEdges_InvalidJSON(t *testing.T) {
	path := writeTempFile(t, `not valid json`)
	_, err := LoadEdges(path)
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadEdges_RoundTripsIntoMapper(t *testing.T) {
	content := `[
		{"source_paradigm": "ayurveda", "source_concept": "prameha", "target_paradigm": "allopathy", "target_concept": "diabetes", "confidence": 0.9}
	]`
	path := writeTempFile(t, content)

	edges, err := LoadEdges(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m, err := NewMapper(paradigm.NewRegistry(), edges)
	if err != nil {
		t.Fatalf("failed to build mapper from loaded edges: %v", err)
	}
	result, err := m.Translate(entities.ParadigmAyurveda, "prameha", entities.ParadigmAllopathy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Found || result.Mapping.TargetConcept != "diabetes" {
		t.Errorf("expected prameha -> diabetes, got %+v", result)
	}
}
