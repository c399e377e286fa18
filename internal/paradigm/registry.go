// Package paradigm holds the registry of supported medical paradigms and
// their study-type weight tables. Tables are plain data: adding a paradigm is
// a data addition, not a new code path.
package paradigm

import (
	"github.com/tracemineral/synthesis-engine/internal/domain/entities"
	apperrors "github.com/tracemineral/synthesis-engine/pkg/errors"
)

// WeightTable maps a study type to the base credibility weight it earns
// within one paradigm.
type WeightTable map[entities.StudyType]float64

// Allopathy recognizes controlled designs only; traditional texts carry no
// weight there. Traditional systems value texts and expert opinion.
// Naturopathy sits between the two.
var (
	allopathicWeights = WeightTable{
		entities.StudyMetaAnalysis:    0.30,
		entities.StudyRCT:             0.25,
		entities.StudyCohort:          0.15,
		entities.StudyCaseControl:     0.10,
		entities.StudyCaseSeries:      0.05,
		entities.StudyExpertOpinion:   0.02,
		entities.StudyTraditionalText: 0.00,
	}

	traditionalWeights = WeightTable{
		entities.StudyMetaAnalysis:    0.20,
		entities.StudyRCT:             0.20,
		entities.StudyCohort:          0.15,
		entities.StudyCaseControl:     0.10,
		entities.StudyCaseSeries:      0.10,
		entities.StudyExpertOpinion:   0.10,
		entities.StudyTraditionalText: 0.15,
	}

	naturopathicWeights = WeightTable{
		entities.StudyMetaAnalysis:    0.25,
		entities.StudyRCT:             0.22,
		entities.StudyCohort:          0.15,
		entities.StudyCaseControl:     0.10,
		entities.StudyCaseSeries:      0.08,
		entities.StudyExpertOpinion:   0.10,
		entities.StudyTraditionalText: 0.10,
	}
)

// Registry is the immutable set of supported paradigms and their weight
// tables. Build it once at startup and share it freely; it is read-only
// after construction.
type Registry struct {
	weights map[entities.Paradigm]WeightTable
	order   []entities.Paradigm
}

// Option customizes registry construction.
type Option func(*Registry)

// WithParadigm registers an additional paradigm with its weight table. The
// table is copied so later mutation by the caller cannot leak in.
func WithParadigm(p entities.Paradigm, table WeightTable) Option {
	return func(r *Registry) {
		r.add(p, table)
	}
}

// NewRegistry builds a registry with the four default paradigms, plus any
// extras supplied via options.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{weights: make(map[entities.Paradigm]WeightTable)}
	r.add(entities.ParadigmAllopathy, allopathicWeights)
	r.add(entities.ParadigmNaturopathy, naturopathicWeights)
	r.add(entities.ParadigmAyurveda, traditionalWeights)
	r.add(entities.ParadigmTCM, traditionalWeights)

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// TraditionalWeightTable returns a copy of the weight table shared by
// tradition-rooted systems, for registering further paradigms (unani,
// siddha) that grade evidence the same way.
func TraditionalWeightTable() WeightTable {
	return copyTable(traditionalWeights)
}

func (r *Registry) add(p entities.Paradigm, table WeightTable) {
	if _, exists := r.weights[p]; !exists {
		r.order = append(r.order, p)
	}
	r.weights[p] = copyTable(table)
}

func copyTable(table WeightTable) WeightTable {
	cp := make(WeightTable, len(table))
	for st, w := range table {
		cp[st] = w
	}
	return cp
}

// WeightFor returns the base weight a study type earns in the given
// paradigm. Unknown keys fail fast; there is no default weight.
func (r *Registry) WeightFor(p entities.Paradigm, studyType entities.StudyType) (float64, error) {
	table, ok := r.weights[p]
	if !ok {
		return 0, apperrors.NewUnknownParadigmError(string(p))
	}
	weight, ok := table[studyType]
	if !ok {
		return 0, apperrors.NewUnknownStudyTypeError(string(studyType))
	}
	return weight, nil
}

// Supports reports whether the paradigm is registered.
func (r *Registry) Supports(p entities.Paradigm) bool {
	_, ok := r.weights[p]
	return ok
}

// SupportedParadigms returns the registered paradigms in registration order.
func (r *Registry) SupportedParadigms() []entities.Paradigm {
	out := make([]entities.Paradigm, len(r.order))
	copy(out, r.order)
	return out
}
