package repositories

import (
	"context"

	"github.com/tracemineral/synthesis-engine/internal/domain/entities"
)

// SynthesisHistoryRepository defines the interface for persisting synthesis
// records. The engine itself is stateless; history is an orchestration
// concern layered on top of it.
type SynthesisHistoryRepository interface {
	// Create appends a synthesis record to the history
	Create(ctx context.Context, record *entities.SynthesisRecord) error

	// GetByID retrieves a synthesis record by ID
	GetByID(ctx context.Context, id string) (*entities.SynthesisRecord, error)

	// ListByMineral retrieves the most recent records for a mineral
	ListByMineral(ctx context.Context, mineral string, limit int) ([]*entities.SynthesisRecord, error)
}
