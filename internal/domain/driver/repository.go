package driver

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for driver pay plan access
type Repository interface {
	GetPayPlan(ctx context.Context, driverID uuid.UUID) (*PayPlan, error)
	UpsertPayPlan(ctx context.Context, plan *PayPlan) error
}
