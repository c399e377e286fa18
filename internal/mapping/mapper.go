// Package mapping translates concepts between medical paradigms using a
// curated, confidence-scored edge table. Lookup misses are not errors: they
// return a NotFound result with ranked suggestions instead.
package mapping

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/tracemineral/synthesis-engine/internal/domain/entities"
	"github.com/tracemineral/synthesis-engine/internal/paradigm"
	apperrors "github.com/tracemineral/synthesis-engine/pkg/errors"
)

const defaultSuggestionLimit = 5

type edgeKey struct {
	source  entities.Paradigm
	target  entities.Paradigm
	concept string
}

// Suggestion is a candidate concept offered when no curated mapping exists.
// Suggestions carry a rationale hint but never a fabricated confidence.
type Suggestion struct {
	Concept   string `json:"concept"`
	Rationale string `json:"rationale"`
}

// Result is the outcome of a translation lookup. When Found is false the
// suggestion list holds the closest known concepts for the target paradigm.
type Result struct {
	Found       bool                     `json:"found"`
	Mapping     *entities.ConceptMapping `json:"mapping,omitempty"`
	Suggestions []Suggestion             `json:"suggestions,omitempty"`
}

// Mapper is the immutable translation table: curated forward edges plus the
// reverse edges derived at construction time. A concept may map to several
// target concepts; lookups surface the highest-confidence edge first. Safe
// for concurrent use.
type Mapper struct {
	registry        *paradigm.Registry
	edges           map[edgeKey][]entities.ConceptMapping
	conceptsBySrc   map[entities.Paradigm][]string
	suggestionLimit int
}

// MapperOption customizes mapper construction.
type MapperOption func(*Mapper)

// WithSuggestionLimit caps the number of suggestions returned on a miss.
func WithSuggestionLimit(n int) MapperOption {
	return func(m *Mapper) {
		if n > 0 {
			m.suggestionLimit = n
		}
	}
}

// NewMapper builds the translation table from curated edges. For every
// forward edge a reverse edge with the same confidence is derived unless the
// edge suppresses it or a curated edge already covers the reverse triple.
func NewMapper(registry *paradigm.Registry, edges []Edge, opts ...MapperOption) (*Mapper, error) {
	m := &Mapper{
		registry:        registry,
		edges:           make(map[edgeKey][]entities.ConceptMapping, len(edges)*2),
		conceptsBySrc:   make(map[entities.Paradigm][]string),
		suggestionLimit: defaultSuggestionLimit,
	}
	for _, opt := range opts {
		opt(m)
	}

	type pair struct {
		key           edgeKey
		targetConcept string
	}
	seen := make(map[pair]struct{}, len(edges)*2)

	// Curated edges first so a hand-written reverse always wins over a
	// derived one.
	for i, e := range edges {
		if err := m.validateEdge(i, e); err != nil {
			return nil, err
		}
		key := edgeKey{e.SourceParadigm, e.TargetParadigm, NormalizeConcept(e.SourceConcept)}
		p := pair{key, NormalizeConcept(e.TargetConcept)}
		if _, dup := seen[p]; dup {
			return nil, apperrors.NewValidationError(fmt.Sprintf(
				"mapping at index %d: duplicate edge %s:%q -> %s:%q",
				i, e.SourceParadigm, e.SourceConcept, e.TargetParadigm, e.TargetConcept))
		}
		seen[p] = struct{}{}
		m.edges[key] = append(m.edges[key], e.ConceptMapping)
	}

	for _, e := range edges {
		if e.SuppressReverse {
			continue
		}
		key := edgeKey{e.TargetParadigm, e.SourceParadigm, NormalizeConcept(e.TargetConcept)}
		p := pair{key, NormalizeConcept(e.SourceConcept)}
		if _, exists := seen[p]; exists {
			continue
		}
		seen[p] = struct{}{}
		m.edges[key] = append(m.edges[key], entities.ConceptMapping{
			SourceParadigm: e.TargetParadigm,
			SourceConcept:  e.TargetConcept,
			TargetParadigm: e.SourceParadigm,
			TargetConcept:  e.SourceConcept,
			Confidence:     e.Confidence,
			Notes:          "derived reverse mapping",
		})
	}

	// Highest confidence first; ties break on target concept so lookups
	// stay deterministic.
	for key := range m.edges {
		list := m.edges[key]
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].Confidence != list[j].Confidence {
				return list[i].Confidence > list[j].Confidence
			}
			return list[i].TargetConcept < list[j].TargetConcept
		})
	}

	m.indexConcepts()
	return m, nil
}

func (m *Mapper) validateEdge(i int, e Edge) error {
	if !m.registry.Supports(e.SourceParadigm) {
		return apperrors.NewUnknownParadigmError(string(e.SourceParadigm))
	}
	if !m.registry.Supports(e.TargetParadigm) {
		return apperrors.NewUnknownParadigmError(string(e.TargetParadigm))
	}
	if e.SourceParadigm == e.TargetParadigm {
		return apperrors.NewValidationError(fmt.Sprintf("mapping at index %d: source and target paradigm are both %q", i, e.SourceParadigm))
	}
	if NormalizeConcept(e.SourceConcept) == "" || NormalizeConcept(e.TargetConcept) == "" {
		return apperrors.NewValidationError(fmt.Sprintf("mapping at index %d: empty concept", i))
	}
	if e.Confidence < 0 || e.Confidence > 1 {
		return apperrors.NewValidationError(fmt.Sprintf("mapping at index %d: confidence %g outside [0,1]", i, e.Confidence))
	}
	return nil
}

func (m *Mapper) indexConcepts() {
	seen := make(map[entities.Paradigm]map[string]struct{})
	for key := range m.edges {
		if seen[key.source] == nil {
			seen[key.source] = make(map[string]struct{})
		}
		seen[key.source][key.concept] = struct{}{}
	}
	for p, concepts := range seen {
		list := make([]string, 0, len(concepts))
		for c := range concepts {
			list = append(list, c)
		}
		sort.Strings(list)
		m.conceptsBySrc[p] = list
	}
}

// NormalizeConcept lowercases a concept and collapses whitespace.
// Underscores and hyphens count as word separators so "Kidney_Yang" and
// "kidney yang" resolve identically.
func NormalizeConcept(concept string) string {
	replaced := strings.NewReplacer("_", " ", "-", " ").Replace(strings.ToLower(concept))
	return strings.Join(strings.Fields(replaced), " ")
}

// Translate looks up the mapping for a concept between two paradigms.
// Unknown paradigms are caller errors; a missing mapping is a first-class
// NotFound result carrying suggestions.
func (m *Mapper) Translate(source entities.Paradigm, concept string, target entities.Paradigm) (Result, error) {
	if !m.registry.Supports(source) {
		return Result{}, apperrors.NewUnknownParadigmError(string(source))
	}
	if !m.registry.Supports(target) {
		return Result{}, apperrors.NewUnknownParadigmError(string(target))
	}

	normalized := NormalizeConcept(concept)
	if list, ok := m.edges[edgeKey{source, target, normalized}]; ok && len(list) > 0 {
		best := list[0]
		return Result{Found: true, Mapping: &best}, nil
	}

	return Result{Suggestions: m.suggest(normalized, target)}, nil
}

// TranslateAll returns every known mapping for the concept between the two
// paradigms, highest confidence first. A miss returns an empty slice; use
// Translate when suggestions are needed.
func (m *Mapper) TranslateAll(source entities.Paradigm, concept string, target entities.Paradigm) ([]entities.ConceptMapping, error) {
	if !m.registry.Supports(source) {
		return nil, apperrors.NewUnknownParadigmError(string(source))
	}
	if !m.registry.Supports(target) {
		return nil, apperrors.NewUnknownParadigmError(string(target))
	}

	list := m.edges[edgeKey{source, target, NormalizeConcept(concept)}]
	out := make([]entities.ConceptMapping, len(list))
	copy(out, list)
	return out, nil
}

// KnownConcepts returns the normalized concepts the mapper can translate
// out of the given paradigm, sorted.
func (m *Mapper) KnownConcepts(p entities.Paradigm) []string {
	concepts := m.conceptsBySrc[p]
	out := make([]string, len(concepts))
	copy(out, concepts)
	return out
}

func (m *Mapper) suggest(query string, target entities.Paradigm) []Suggestion {
	candidates := m.conceptsBySrc[target]
	if len(candidates) == 0 {
		return nil
	}

	type ranked struct {
		concept  string
		distance int
	}
	rankedCandidates := make([]ranked, 0, len(candidates))
	for _, c := range candidates {
		rankedCandidates = append(rankedCandidates, ranked{concept: c, distance: levenshtein.ComputeDistance(query, c)})
	}
	sort.Slice(rankedCandidates, func(i, j int) bool {
		if rankedCandidates[i].distance != rankedCandidates[j].distance {
			return rankedCandidates[i].distance < rankedCandidates[j].distance
		}
		return rankedCandidates[i].concept < rankedCandidates[j].concept
	})

	limit := m.suggestionLimit
	if limit > len(rankedCandidates) {
		limit = len(rankedCandidates)
	}

	suggestions := make([]Suggestion, 0, limit)
	queryTokens := strings.Fields(query)
	for _, rc := range rankedCandidates[:limit] {
		suggestions = append(suggestions, Suggestion{
			Concept:   rc.concept,
			Rationale: suggestionRationale(queryTokens, rc.concept, target),
		})
	}
	return suggestions
}

func suggestionRationale(queryTokens []string, candidate string, target entities.Paradigm) string {
	for _, token := range queryTokens {
		if token != "" && strings.Contains(candidate, token) {
			return fmt.Sprintf("shares the term %q with the requested concept", token)
		}
	}
	return fmt.Sprintf("closest curated %s concept by spelling", target)
}
