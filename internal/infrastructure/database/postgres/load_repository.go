package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moveboss/internal/domain/load"
	"moveboss/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LoadRepository struct {
	db *gorm.DB
}

func NewLoadRepository(db *gorm.DB) *LoadRepository {
	return &LoadRepository{db: db}
}

func (r *LoadRepository) GetByID(ctx context.Context, loadID uuid.UUID) (*load.Load, error) {
	var dbModel models.LoadModel
	err := r.db.WithContext(ctx).
		Preload("Company").
		Where("id = ?", loadID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, load.ErrLoadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get load: %w", err)
	}

	return toLoadEntity(&dbModel), nil
}

// ListByTripID returns the trip's loads in a stable order so settlement
// recalculation walks them identically every time.
func (r *LoadRepository) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]*load.Load, error) {
	var dbModels []models.LoadModel
	err := r.db.WithContext(ctx).
		Preload("Company").
		Where("trip_id = ?", tripID).
		Order("created_at ASC, id ASC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list trip loads: %w", err)
	}

	loads := make([]*load.Load, 0, len(dbModels))
	for i := range dbModels {
		loads = append(loads, toLoadEntity(&dbModels[i]))
	}
	return loads, nil
}

func (r *LoadRepository) MarkCODReceived(ctx context.Context, loadID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.LoadModel{}).
		Where("id = ?", loadID).
		Updates(map[string]interface{}{
			"cod_received": true,
			"updated_at":   time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark COD received: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return load.ErrLoadNotFound
	}

	return nil
}

func toLoadEntity(m *models.LoadModel) *load.Load {
	l := &load.Load{
		ID:        m.ID,
		TripID:    m.TripID,
		CompanyID: m.CompanyID,

		CuftLoaded:          m.CuftLoaded,
		ContractRatePerCuft: m.ContractRatePerCuft,
		ListRatePerCuft:     m.ListRatePerCuft,

		Contract: load.Accessorials{
			Stairs:    m.ContractStairs,
			Shuttle:   m.ContractShuttle,
			LongCarry: m.ContractLongCarry,
			Packing:   m.ContractPacking,
			Bulky:     m.ContractBulky,
			Other:     m.ContractOther,
		},
		Extra: load.Accessorials{
			Stairs:    m.ExtraStairs,
			Shuttle:   m.ExtraShuttle,
			LongCarry: m.ExtraLongCarry,
			Packing:   m.ExtraPacking,
			Bulky:     m.ExtraBulky,
			Other:     m.ExtraOther,
		},

		StorageMoveInFee:  m.StorageMoveInFee,
		StorageDailyFee:   m.StorageDailyFee,
		StorageDaysBilled: m.StorageDaysBilled,
		IsStorageDrop:     m.IsStorageDrop,

		CollectedOnDelivery:   m.CollectedOnDelivery,
		PaidDirectlyToCompany: m.PaidDirectlyToCompany,

		CustomerBalance:          m.CustomerBalance,
		CODReceived:              m.CODReceived,
		CompanyApprovedException: m.CompanyApprovedException,

		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	if m.Company != nil {
		l.CompanyName = m.Company.Name
		l.CompanyTrust = load.TrustLevel(m.Company.TrustLevel)
	}

	return l
}
