package services

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/tracemineral/synthesis-engine/internal/domain/entities"
	"github.com/tracemineral/synthesis-engine/internal/domain/providers"
	"github.com/tracemineral/synthesis-engine/internal/domain/repositories"
	"github.com/tracemineral/synthesis-engine/internal/grading"
	"github.com/tracemineral/synthesis-engine/internal/infrastructure/observability"
	"github.com/tracemineral/synthesis-engine/internal/report"
	"github.com/tracemineral/synthesis-engine/internal/synthesis"
)

const defaultReportTTLSeconds = 3600

// EvidenceSubmission is one paradigm researcher's contribution: raw evidence
// records plus the narrative summary and tradition-specific concepts they
// reference.
type EvidenceSubmission struct {
	Paradigm entities.Paradigm         `json:"paradigm"`
	Summary  string                    `json:"summary,omitempty"`
	Concepts []string                  `json:"concepts,omitempty"`
	Evidence []entities.EvidenceRecord `json:"evidence"`
}

// SynthesisService orchestrates the engine end to end: grade each submitted
// record, synthesize the consensus, render stakeholder reports, and
// optionally cache reports and persist the record. The engine components it
// wraps stay pure; all the I/O lives here.
type SynthesisService struct {
	grader      *grading.Grader
	synthesizer *synthesis.Synthesizer
	renderer    *report.Renderer
	history     repositories.SynthesisHistoryRepository
	cache       providers.CacheProvider
	metrics     *observability.Metrics
	reportTTL   int
}

// SynthesisServiceOption customizes service construction.
type SynthesisServiceOption func(*SynthesisService)

// WithHistory enables persisting every synthesis record.
func WithHistory(repo repositories.SynthesisHistoryRepository) SynthesisServiceOption {
	return func(s *SynthesisService) { s.history = repo }
}

// WithReportCache enables the rendered-report cache.
func WithReportCache(cache providers.CacheProvider, ttlSeconds int) SynthesisServiceOption {
	return func(s *SynthesisService) {
		s.cache = cache
		if ttlSeconds > 0 {
			s.reportTTL = ttlSeconds
		}
	}
}

// WithMetrics attaches engine metrics.
func WithMetrics(m *observability.Metrics) SynthesisServiceOption {
	return func(s *SynthesisService) { s.metrics = m }
}

// NewSynthesisService creates the orchestrating service.
func NewSynthesisService(
	grader *grading.Grader,
	synthesizer *synthesis.Synthesizer,
	renderer *report.Renderer,
	opts ...SynthesisServiceOption,
) *SynthesisService {
	s := &SynthesisService{
		grader:      grader,
		synthesizer: synthesizer,
		renderer:    renderer,
		reportTTL:   defaultReportTTLSeconds,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize grades all submitted evidence and produces the consensus
// record for one hypothesis. Grading errors abort the whole synthesis: a
// malformed record indicates a defect in the upstream extraction step, not
// a partial result to paper over.
func (s *SynthesisService) Synthesize(ctx context.Context, hypothesis, mineral string, submissions []EvidenceSubmission) (*entities.SynthesisRecord, error) {
	logger := observability.LoggerFromContext(ctx)
	start := time.Now()

	findings := make(map[entities.Paradigm]entities.ParadigmFinding, len(submissions))
	for _, sub := range submissions {
		finding := entities.ParadigmFinding{
			Paradigm: sub.Paradigm,
			Summary:  sub.Summary,
			Concepts: sub.Concepts,
		}
		for _, ev := range sub.Evidence {
			graded, err := s.grader.Grade(ev)
			if err != nil {
				logger.Error().
					Err(err).
					Str("paradigm", string(sub.Paradigm)).
					Str("study_type", string(ev.StudyType)).
					Msg("failed to grade evidence record")
				return nil, err
			}
			finding.Evidence = append(finding.Evidence, graded)
			s.countGrading(ctx, sub.Paradigm)
		}
		findings[sub.Paradigm] = finding
	}

	record, err := s.synthesizer.Synthesize(hypothesis, mineral, findings)
	if err != nil {
		return nil, err
	}

	if s.history != nil {
		if err := s.history.Create(ctx, record); err != nil {
			// History is best-effort; the record itself is still valid.
			logger.Warn().Err(err).Str("record_id", record.ID).Msg("failed to persist synthesis record")
		}
	}

	if s.metrics != nil {
		s.metrics.SynthesisCount.Add(ctx, 1)
		s.metrics.SynthesisDuration.Record(ctx, float64(time.Since(start).Milliseconds()))
	}

	logger.Info().
		Str("record_id", record.ID).
		Str("mineral", mineral).
		Float64("consensus_score", record.ConsensusScore).
		Int("paradigms", len(record.ParadigmBreakdown)).
		Msg("synthesis completed")

	return record, nil
}

// Report renders a synthesis record for a stakeholder, via the report cache
// when one is configured. Records are immutable, so a cached report never
// goes stale.
func (s *SynthesisService) Report(ctx context.Context, record *entities.SynthesisRecord, stakeholder entities.StakeholderKind) (string, error) {
	if s.cache == nil {
		return s.renderer.Render(record, stakeholder)
	}

	key := reportCacheKey(record, stakeholder)
	if cached, err := s.cache.Get(ctx, key); err == nil {
		if s.metrics != nil {
			s.metrics.ReportCacheHits.Add(ctx, 1)
		}
		return string(cached), nil
	}
	if s.metrics != nil {
		s.metrics.ReportCacheMisses.Add(ctx, 1)
	}

	text, err := s.renderer.Render(record, stakeholder)
	if err != nil {
		return "", err
	}

	if err := s.cache.Set(ctx, key, []byte(text), s.reportTTL); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("key", key).Msg("failed to cache rendered report")
	}

	return text, nil
}

// History returns the configured history repository, or nil.
func (s *SynthesisService) History() repositories.SynthesisHistoryRepository {
	return s.history
}

func (s *SynthesisService) countGrading(ctx context.Context, p entities.Paradigm) {
	if s.metrics == nil {
		return
	}
	s.metrics.GradingCount.Add(ctx, 1, metric.WithAttributes(attribute.String("paradigm", string(p))))
}

func reportCacheKey(record *entities.SynthesisRecord, stakeholder entities.StakeholderKind) string {
	return fmt.Sprintf("report:%s:%s", record.ID, stakeholder)
}
