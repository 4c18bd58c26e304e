package postgres

import (
	"context"
	"fmt"
	"hash/fnv"

	"moveboss/internal/domain/settlement"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UnitOfWork wraps settlement writes in one transaction holding a Postgres
// advisory lock keyed on the trip. A second settle call on the same trip
// blocks until the first commits, then sees its settlement row and bails on
// the already-settled check instead of writing a duplicate.
type UnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) WithTripLock(ctx context.Context, tripID uuid.UUID, fn func(tx settlement.Tx) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", tripLockKey(tripID)).Error; err != nil {
			return fmt.Errorf("failed to acquire trip lock: %w", err)
		}

		return fn(settlement.Tx{
			Trips:       NewTripRepository(tx),
			Loads:       NewLoadRepository(tx),
			PayPlans:    NewPayPlanRepository(tx),
			Settlements: NewSettlementRepository(tx),
		})
	})
}

// tripLockKey folds the trip UUID into the signed 64-bit key space
// pg_advisory_xact_lock expects.
func tripLockKey(tripID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write(tripID[:])
	return int64(h.Sum64())
}
