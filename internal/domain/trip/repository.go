package trip

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for trip repository operations
type Repository interface {
	GetByID(ctx context.Context, tripID, ownerID uuid.UUID) (*Trip, error)
	ListExpenses(ctx context.Context, tripID uuid.UUID) ([]*Expense, error)
	UpdateStatus(ctx context.Context, tripID uuid.UUID, status Status) error
	UpdateSummary(ctx context.Context, tripID uuid.UUID, summary *Summary) error
}
