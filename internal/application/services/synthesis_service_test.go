package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tracemineral/synthesis-engine/internal/domain/entities"
	"github.com/tracemineral/synthesis-engine/internal/grading"
	"github.com/tracemineral/synthesis-engine/internal/mapping"
	"github.com/tracemineral/synthesis-engine/internal/paradigm"
	"github.com/tracemineral/synthesis-engine/internal/report"
	"github.com/tracemineral/synthesis-engine/internal/synthesis"
	apperrors "github.com/tracemineral/synthesis-engine/pkg/errors"
)

// Mocks

type MockHistoryRepo struct {
	mock.Mock
}

func (m *MockHistoryRepo) Create(ctx context.Context, record *entities.SynthesisRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
func (m *MockHistoryRepo) GetByID(ctx context.Context, id string) (*entities.SynthesisRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SynthesisRecord), args.Error(1)
}
func (m *MockHistoryRepo) ListByMineral(ctx context.Context, mineral string, limit int) ([]*entities.SynthesisRecord, error) {
	args := m.Called(ctx, mineral, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.SynthesisRecord), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
func (m *MockCache) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	args := m.Called(ctx, key, value, expirationSeconds)
	return args.Error(0)
}
func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
func (m *MockCache) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// Helpers

func newService(t *testing.T, opts ...SynthesisServiceOption) *SynthesisService {
	t.Helper()
	registry := paradigm.NewRegistry()
	mapper, err := mapping.NewMapper(registry, mapping.DefaultEdges())
	require.NoError(t, err)
	return NewSynthesisService(
		grading.NewGrader(registry),
		synthesis.NewSynthesizer(registry, mapper),
		report.NewRenderer(),
		opts...,
	)
}

func validSubmissions() []EvidenceSubmission {
	return []EvidenceSubmission{
		{
			Paradigm: entities.ParadigmAllopathy,
			Summary:  "Meta-analytic support for improved glucose control.",
			Evidence: []entities.EvidenceRecord{
				{Paradigm: entities.ParadigmAllopathy, StudyType: entities.StudyMetaAnalysis, SampleSize: 1422, EffectSize: 0.55, ConfidenceIntervalWidth: 0.2, PeerReviewed: true, ReplicationCount: 5},
			},
		},
		{
			Paradigm: entities.ParadigmTCM,
			Concepts: []string{"kidney yang"},
			Evidence: []entities.EvidenceRecord{
				{Paradigm: entities.ParadigmTCM, StudyType: entities.StudyTraditionalText, EffectSize: 0.3, ReplicationCount: 2},
			},
		},
	}
}

// Tests

func TestSynthesize_GradesAndSynthesizes(t *testing.T) {
	service := newService(t)

	record, err := service.Synthesize(context.Background(), "chromium improves insulin sensitivity", "chromium", validSubmissions())
	require.NoError(t, err)

	assert.NotEmpty(t, record.ID)
	assert.Len(t, record.ParadigmBreakdown, 2)
	assert.Greater(t, record.ConsensusScore, 0.0)

	allo := record.PerParadigmFindings[entities.ParadigmAllopathy]
	require.Len(t, allo.Evidence, 1)
	assert.Equal(t, entities.GradeA, allo.Evidence[0].Grade)
	assert.InDelta(t, 0.95, allo.Evidence[0].CredibilityScore, 1e-9)
}

func TestSynthesize_GradingErrorAborts(t *testing.T) {
	service := newService(t)

	submissions := []EvidenceSubmission{
		{
			Paradigm: entities.ParadigmAllopathy,
			Evidence: []entities.EvidenceRecord{
				{Paradigm: entities.ParadigmAllopathy, StudyType: entities.StudyRCT, SampleSize: -5},
			},
		},
	}
	_, err := service.Synthesize(context.Background(), "h", "zinc", submissions)
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidEvidence(err))
}

func TestSynthesize_NoSubmissions(t *testing.T) {
	service := newService(t)

	_, err := service.Synthesize(context.Background(), "h", "zinc", nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsInsufficientEvidence(err))
}

func TestSynthesize_PersistsHistory(t *testing.T) {
	repo := new(MockHistoryRepo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entities.SynthesisRecord")).Return(nil)

	service := newService(t, WithHistory(repo))

	_, err := service.Synthesize(context.Background(), "h", "chromium", validSubmissions())
	require.NoError(t, err)
	repo.AssertCalled(t, "Create", mock.Anything, mock.AnythingOfType("*entities.SynthesisRecord"))
}

func TestSynthesize_HistoryFailureIsBestEffort(t *testing.T) {
	repo := new(MockHistoryRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	service := newService(t, WithHistory(repo))

	record, err := service.Synthesize(context.Background(), "h", "chromium", validSubmissions())
	require.NoError(t, err)
	assert.NotNil(t, record)
}

func TestReport_WithoutCacheRendersDirectly(t *testing.T) {
	service := newService(t)

	record, err := service.Synthesize(context.Background(), "h", "chromium", validSubmissions())
	require.NoError(t, err)

	text, err := service.Report(context.Background(), record, entities.StakeholderProductTrainer)
	require.NoError(t, err)
	assert.Contains(t, text, report.Disclaimer)
}

func TestReport_CacheHit(t *testing.T) {
	cache := new(MockCache)
	cache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return([]byte("cached report"), nil)

	service := newService(t, WithReportCache(cache, 60))

	record, err := service.Synthesize(context.Background(), "h", "chromium", validSubmissions())
	require.NoError(t, err)

	text, err := service.Report(context.Background(), record, entities.StakeholderProductTrainer)
	require.NoError(t, err)
	assert.Equal(t, "cached report", text)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReport_CacheMissRendersAndStores(t *testing.T) {
	cache := new(MockCache)
	cache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return(nil, errors.New("cache miss"))
	cache.On("Set", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("[]uint8"), 60).Return(nil)

	service := newService(t, WithReportCache(cache, 60))

	record, err := service.Synthesize(context.Background(), "h", "chromium", validSubmissions())
	require.NoError(t, err)

	text, err := service.Report(context.Background(), record, entities.StakeholderDxProfessional)
	require.NoError(t, err)
	assert.Contains(t, text, report.Disclaimer)
	cache.AssertExpectations(t)
}

func TestReport_CacheSetFailureDoesNotFailRender(t *testing.T) {
	cache := new(MockCache)
	cache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return(nil, errors.New("cache miss"))
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("cache down"))

	service := newService(t, WithReportCache(cache, 60))

	record, err := service.Synthesize(context.Background(), "h", "chromium", validSubmissions())
	require.NoError(t, err)

	text, err := service.Report(context.Background(), record, entities.StakeholderResearchScientist)
	require.NoError(t, err)
	assert.NotEmpty(t, text)
}

func TestReport_UnknownStakeholder(t *testing.T) {
	service := newService(t)

	record, err := service.Synthesize(context.Background(), "h", "chromium", validSubmissions())
	require.NoError(t, err)

	_, err = service.Report(context.Background(), record, "influencer")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestHistory_ReturnsConfiguredRepository(t *testing.T) {
	repo := new(MockHistoryRepo)
	service := newService(t, WithHistory(repo))
	assert.Equal(t, repo, service.History().(*MockHistoryRepo))

	bare := newService(t)
	assert.Nil(t, bare.History())
}
