package settlement

import (
	"context"

	"moveboss/internal/domain/driver"
	"moveboss/internal/domain/load"
	"moveboss/internal/domain/trip"

	"github.com/google/uuid"
)

// Repository defines the interface for settlement repository operations
type Repository interface {
	Create(ctx context.Context, s *Settlement) error
	CreateLineItems(ctx context.Context, items []*LineItem) error
	CreateReceivables(ctx context.Context, receivables []*Receivable) error
	CreatePayable(ctx context.Context, payable *Payable) error

	GetByTripID(ctx context.Context, tripID uuid.UUID) (*Settlement, error)
	ExistsForTrip(ctx context.Context, tripID uuid.UUID) (bool, error)

	// DeleteByTripID removes, in dependency order, the line items,
	// receivables, payables and settlement header for a trip.
	DeleteByTripID(ctx context.Context, tripID uuid.UUID) error
}

// Tx bundles the repositories participating in one settlement transaction.
type Tx struct {
	Trips       trip.Repository
	Loads       load.Repository
	PayPlans    driver.Repository
	Settlements Repository
}

// UnitOfWork runs fn inside a single storage transaction that holds an
// exclusive per-trip lock, so two concurrent settle calls on the same trip
// never interleave.
type UnitOfWork interface {
	WithTripLock(ctx context.Context, tripID uuid.UUID, fn func(tx Tx) error) error
}
