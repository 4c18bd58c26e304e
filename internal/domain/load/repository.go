package load

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for load repository operations
type Repository interface {
	GetByID(ctx context.Context, loadID uuid.UUID) (*Load, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]*Load, error)
	MarkCODReceived(ctx context.Context, loadID uuid.UUID) error
}
