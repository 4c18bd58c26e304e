package postgres

import (
	"context"
	"errors"
	"fmt"

	"moveboss/internal/domain/driver"
	"moveboss/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PayPlanRepository struct {
	db *gorm.DB
}

func NewPayPlanRepository(db *gorm.DB) *PayPlanRepository {
	return &PayPlanRepository{db: db}
}

func (r *PayPlanRepository) GetPayPlan(ctx context.Context, driverID uuid.UUID) (*driver.PayPlan, error) {
	var dbModel models.PayPlanModel
	err := r.db.WithContext(ctx).
		Where("driver_id = ?", driverID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, driver.ErrPayPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get driver pay plan: %w", err)
	}

	return &driver.PayPlan{
		ID:               dbModel.ID,
		DriverID:         dbModel.DriverID,
		Mode:             driver.PayMode(dbModel.PayMode),
		RatePerMile:      dbModel.RatePerMile,
		RatePerCuft:      dbModel.RatePerCuft,
		PercentOfRevenue: dbModel.PercentOfRevenue,
		FlatDailyRate:    dbModel.FlatDailyRate,
		CreatedAt:        dbModel.CreatedAt,
		UpdatedAt:        dbModel.UpdatedAt,
	}, nil
}

// UpsertPayPlan replaces a driver's pay plan, keyed by driver ID. A driver
// has at most one plan at a time.
func (r *PayPlanRepository) UpsertPayPlan(ctx context.Context, plan *driver.PayPlan) error {
	dbModel := models.PayPlanModel{
		ID:               plan.ID,
		DriverID:         plan.DriverID,
		PayMode:          string(plan.Mode),
		RatePerMile:      plan.RatePerMile,
		RatePerCuft:      plan.RatePerCuft,
		PercentOfRevenue: plan.PercentOfRevenue,
		FlatDailyRate:    plan.FlatDailyRate,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "driver_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"pay_mode", "rate_per_mile", "rate_per_cuft",
				"percent_of_revenue", "flat_daily_rate", "updated_at",
			}),
		}).
		Create(&dbModel).Error
	if err != nil {
		return fmt.Errorf("failed to upsert driver pay plan: %w", err)
	}
	return nil
}
