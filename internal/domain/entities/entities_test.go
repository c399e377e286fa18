package entities

import "testing"

func TestConceptMapping_Band(t *testing.T) {
	tests := []struct {
		confidence float64
		band       ConfidenceBand
	}{
		{0.90, BandHigh},
		{0.85, BandHigh},
		{0.84, BandMedium},
		{0.60, BandMedium},
		{0.59, BandLow},
		{0, BandLow},
	}
	for _, tt := range tests {
		m := ConceptMapping{Confidence: tt.confidence}
		if got := m.Band(); got != tt.band {
			t.Errorf("confidence %f: expected %s, got %s", tt.confidence, tt.band, got)
		}
	}
}

func TestStudyType_IsValid(t *testing.T) {
	for _, st := range ValidStudyTypes() {
		if !st.IsValid() {
			t.Errorf("expected %s to be valid", st)
		}
	}
	if StudyType("anecdote").IsValid() {
		t.Error("expected anecdote to be invalid")
	}
}

func TestStakeholderKind_IsValid(t *testing.T) {
	for _, kind := range ValidStakeholderKinds() {
		if !kind.IsValid() {
			t.Errorf("expected %s to be valid", kind)
		}
	}
	if StakeholderKind("influencer").IsValid() {
		t.Error("expected influencer to be invalid")
	}
}

func TestSynthesisRecord_ContributingParadigms(t *testing.T) {
	record := &SynthesisRecord{
		PerParadigmFindings: map[Paradigm]ParadigmFinding{
			ParadigmTCM:       {Evidence: []GradedEvidence{{Grade: GradeC}}},
			ParadigmAllopathy: {Evidence: []GradedEvidence{{Grade: GradeA}}},
			ParadigmAyurveda:  {Summary: "no usable studies"},
		},
	}

	got := record.ContributingParadigms()
	want := []Paradigm{ParadigmAllopathy, ParadigmTCM}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}
