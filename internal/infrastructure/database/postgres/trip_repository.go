package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moveboss/internal/domain/trip"
	"moveboss/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

func (r *TripRepository) GetByID(ctx context.Context, tripID, ownerID uuid.UUID) (*trip.Trip, error) {
	var dbModel models.TripModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", tripID, ownerID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, trip.ErrTripNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return toTripEntity(&dbModel), nil
}

func (r *TripRepository) ListExpenses(ctx context.Context, tripID uuid.UUID) ([]*trip.Expense, error) {
	var dbModels []models.ExpenseModel
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("created_at ASC, id ASC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list trip expenses: %w", err)
	}

	expenses := make([]*trip.Expense, 0, len(dbModels))
	for i := range dbModels {
		expenses = append(expenses, toExpenseEntity(&dbModels[i]))
	}
	return expenses, nil
}

func (r *TripRepository) UpdateStatus(ctx context.Context, tripID uuid.UUID, status trip.Status) error {
	result := r.db.WithContext(ctx).
		Model(&models.TripModel{}).
		Where("id = ?", tripID).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update trip status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return trip.ErrTripNotFound
	}

	return nil
}

func (r *TripRepository) UpdateSummary(ctx context.Context, tripID uuid.UUID, summary *trip.Summary) error {
	result := r.db.WithContext(ctx).
		Model(&models.TripModel{}).
		Where("id = ?", tripID).
		Updates(map[string]interface{}{
			"total_revenue":        summary.TotalRevenue,
			"total_driver_pay":     summary.TotalDriverPay,
			"total_fuel":           summary.TotalFuel,
			"total_tolls":          summary.TotalTolls,
			"total_other_expenses": summary.TotalOtherExpenses,
			"total_profit":         summary.TotalProfit,
			"actual_miles":         summary.ActualMiles,
			"updated_at":           time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update trip summary: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return trip.ErrTripNotFound
	}

	return nil
}

func toTripEntity(m *models.TripModel) *trip.Trip {
	return &trip.Trip{
		ID:       m.ID,
		OwnerID:  m.OwnerID,
		DriverID: m.DriverID,
		TruckID:  m.TruckID,

		Status: trip.Status(m.Status),

		StartDate: m.StartDate,
		EndDate:   m.EndDate,

		OdometerStart:      m.OdometerStart,
		OdometerEnd:        m.OdometerEnd,
		OdometerStartPhoto: m.OdometerStartPhoto,
		OdometerEndPhoto:   m.OdometerEndPhoto,

		TotalRevenue:       m.TotalRevenue,
		TotalDriverPay:     m.TotalDriverPay,
		TotalFuel:          m.TotalFuel,
		TotalTolls:         m.TotalTolls,
		TotalOtherExpenses: m.TotalOtherExpenses,
		TotalProfit:        m.TotalProfit,
		ActualMiles:        m.ActualMiles,

		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toExpenseEntity(m *models.ExpenseModel) *trip.Expense {
	return &trip.Expense{
		ID:          m.ID,
		TripID:      m.TripID,
		Category:    m.Category,
		Description: m.Description,
		Amount:      m.Amount,
		PaidBy:      trip.PaidBy(m.PaidBy),
		CreatedAt:   m.CreatedAt,
	}
}
