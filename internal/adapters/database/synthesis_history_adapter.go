package database

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
	"github.com/tracemineral/synthesis-engine/internal/domain/entities"
	"github.com/tracemineral/synthesis-engine/internal/domain/repositories"
	"github.com/tracemineral/synthesis-engine/internal/infrastructure/clients/postgres"
	apperrors "github.com/tracemineral/synthesis-engine/pkg/errors"
)

var synthesisColumns = []interface{}{
	"id", "hypothesis", "mineral", "consensus_score",
	"findings", "paradigm_breakdown", "concept_mappings",
	"research_gaps", "generated_at",
}

// SynthesisHistoryAdapter implements SynthesisHistoryRepository on top of
// postgres. Structured sub-documents (findings, breakdown, mappings) are
// stored as jsonb; research gaps as a text array.
type SynthesisHistoryAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewSynthesisHistoryAdapter creates a new synthesis history adapter
func NewSynthesisHistoryAdapter(client *postgres.Client) repositories.SynthesisHistoryRepository {
	return &SynthesisHistoryAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create appends a synthesis record to the history
func (a *SynthesisHistoryAdapter) Create(ctx context.Context, record *entities.SynthesisRecord) error {
	findings, err := json.Marshal(record.PerParadigmFindings)
	if err != nil {
		return apperrors.NewInternalError("failed to marshal findings", err)
	}
	breakdown, err := json.Marshal(record.ParadigmBreakdown)
	if err != nil {
		return apperrors.NewInternalError("failed to marshal paradigm breakdown", err)
	}
	mappings, err := json.Marshal(record.ConceptMappingsUsed)
	if err != nil {
		return apperrors.NewInternalError("failed to marshal concept mappings", err)
	}

	row := goqu.Record{
		"id":                 record.ID,
		"hypothesis":         record.Hypothesis,
		"mineral":            record.Mineral,
		"consensus_score":    record.ConsensusScore,
		"findings":           findings,
		"paradigm_breakdown": breakdown,
		"concept_mappings":   mappings,
		"research_gaps":      pq.Array(record.ResearchGaps),
		"generated_at":       record.GeneratedAt,
	}

	query, args, err := a.db.Insert("synthesis_records").Rows(row).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err = a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create synthesis record", err)
	}

	return nil
}

// GetByID retrieves a synthesis record by ID
func (a *SynthesisHistoryAdapter) GetByID(ctx context.Context, id string) (*entities.SynthesisRecord, error) {
	query, args, err := a.db.Select(synthesisColumns...).
		From("synthesis_records").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	record, err := a.scanRecord(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("synthesis record not found")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get synthesis record", err)
	}
	return record, nil
}

// ListByMineral retrieves the most recent records for a mineral
func (a *SynthesisHistoryAdapter) ListByMineral(ctx context.Context, mineral string, limit int) ([]*entities.SynthesisRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	query, args, err := a.db.Select(synthesisColumns...).
		From("synthesis_records").
		Where(goqu.Ex{"mineral": mineral}).
		Order(goqu.I("generated_at").Desc()).
		Limit(uint(limit)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list synthesis records", err)
	}
	defer rows.Close()

	var records []*entities.SynthesisRecord
	for rows.Next() {
		record, err := a.scanRecord(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan synthesis record", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate synthesis records", err)
	}

	return records, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (a *SynthesisHistoryAdapter) scanRecord(row rowScanner) (*entities.SynthesisRecord, error) {
	record := &entities.SynthesisRecord{}
	var findings, breakdown, mappings []byte

	err := row.Scan(
		&record.ID,
		&record.Hypothesis,
		&record.Mineral,
		&record.ConsensusScore,
		&findings,
		&breakdown,
		&mappings,
		pq.Array(&record.ResearchGaps),
		&record.GeneratedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(findings, &record.PerParadigmFindings); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(breakdown, &record.ParadigmBreakdown); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(mappings, &record.ConceptMappingsUsed); err != nil {
		return nil, err
	}

	return record, nil
}
