package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moveboss/internal/domain/settlement"
	"moveboss/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SettlementRepository struct {
	db *gorm.DB
}

func NewSettlementRepository(db *gorm.DB) *SettlementRepository {
	return &SettlementRepository{db: db}
}

func (r *SettlementRepository) Create(ctx context.Context, s *settlement.Settlement) error {
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	s.UpdatedAt = time.Now()
	if s.Status == "" {
		s.Status = settlement.StatusDraft
	}

	dbModel := &models.SettlementModel{
		ID:             s.ID,
		TripID:         s.TripID,
		DriverID:       s.DriverID,
		Status:         string(s.Status),
		TotalRevenue:   s.TotalRevenue,
		TotalDriverPay: s.TotalDriverPay,
		TotalExpenses:  s.TotalExpenses,
		TotalProfit:    s.TotalProfit,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create settlement: %w", err)
	}

	return nil
}

func (r *SettlementRepository) CreateLineItems(ctx context.Context, items []*settlement.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	dbModels := make([]models.LineItemModel, 0, len(items))
	for _, item := range items {
		item.ID = uuid.New()
		dbModels = append(dbModels, models.LineItemModel{
			ID:           item.ID,
			SettlementID: item.SettlementID,
			Category:     string(item.Category),
			Description:  item.Description,
			Amount:       item.Amount,
			LoadID:       item.LoadID,
			CompanyID:    item.CompanyID,
			CreatedAt:    time.Now(),
		})
	}

	if err := r.db.WithContext(ctx).Create(&dbModels).Error; err != nil {
		return fmt.Errorf("failed to create settlement line items: %w", err)
	}

	return nil
}

func (r *SettlementRepository) CreateReceivables(ctx context.Context, receivables []*settlement.Receivable) error {
	if len(receivables) == 0 {
		return nil
	}

	dbModels := make([]models.ReceivableModel, 0, len(receivables))
	for _, rec := range receivables {
		rec.ID = uuid.New()
		rec.CreatedAt = time.Now()
		dbModels = append(dbModels, models.ReceivableModel{
			ID:           rec.ID,
			SettlementID: rec.SettlementID,
			TripID:       rec.TripID,
			CompanyID:    rec.CompanyID,
			CompanyName:  rec.CompanyName,
			Amount:       rec.Amount,
			CreatedAt:    rec.CreatedAt,
		})
	}

	if err := r.db.WithContext(ctx).Create(&dbModels).Error; err != nil {
		return fmt.Errorf("failed to create receivables: %w", err)
	}

	return nil
}

func (r *SettlementRepository) CreatePayable(ctx context.Context, payable *settlement.Payable) error {
	payable.ID = uuid.New()
	payable.CreatedAt = time.Now()

	dbModel := &models.PayableModel{
		ID:           payable.ID,
		SettlementID: payable.SettlementID,
		TripID:       payable.TripID,
		DriverID:     payable.DriverID,
		Amount:       payable.Amount,
		CreatedAt:    payable.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create payable: %w", err)
	}

	return nil
}

func (r *SettlementRepository) GetByTripID(ctx context.Context, tripID uuid.UUID) (*settlement.Settlement, error) {
	var dbModel models.SettlementModel
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, settlement.ErrSettlementNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settlement: %w", err)
	}

	result := &settlement.Settlement{
		ID:             dbModel.ID,
		TripID:         dbModel.TripID,
		DriverID:       dbModel.DriverID,
		Status:         settlement.Status(dbModel.Status),
		TotalRevenue:   dbModel.TotalRevenue,
		TotalDriverPay: dbModel.TotalDriverPay,
		TotalExpenses:  dbModel.TotalExpenses,
		TotalProfit:    dbModel.TotalProfit,
		CreatedAt:      dbModel.CreatedAt,
		UpdatedAt:      dbModel.UpdatedAt,
	}

	var itemModels []models.LineItemModel
	if err := r.db.WithContext(ctx).
		Where("settlement_id = ?", dbModel.ID).
		Order("created_at ASC, id ASC").
		Find(&itemModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list settlement line items: %w", err)
	}
	for i := range itemModels {
		m := &itemModels[i]
		result.LineItems = append(result.LineItems, &settlement.LineItem{
			ID:           m.ID,
			SettlementID: m.SettlementID,
			Category:     settlement.LineItemCategory(m.Category),
			Description:  m.Description,
			Amount:       m.Amount,
			LoadID:       m.LoadID,
			CompanyID:    m.CompanyID,
		})
	}

	var receivableModels []models.ReceivableModel
	if err := r.db.WithContext(ctx).
		Where("settlement_id = ?", dbModel.ID).
		Order("created_at ASC, id ASC").
		Find(&receivableModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list receivables: %w", err)
	}
	for i := range receivableModels {
		m := &receivableModels[i]
		result.Receivables = append(result.Receivables, &settlement.Receivable{
			ID:           m.ID,
			SettlementID: m.SettlementID,
			TripID:       m.TripID,
			CompanyID:    m.CompanyID,
			CompanyName:  m.CompanyName,
			Amount:       m.Amount,
			CreatedAt:    m.CreatedAt,
		})
	}

	var payableModel models.PayableModel
	err = r.db.WithContext(ctx).
		Where("settlement_id = ?", dbModel.ID).
		First(&payableModel).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get payable: %w", err)
	}
	if err == nil {
		result.Payable = &settlement.Payable{
			ID:           payableModel.ID,
			SettlementID: payableModel.SettlementID,
			TripID:       payableModel.TripID,
			DriverID:     payableModel.DriverID,
			Amount:       payableModel.Amount,
			CreatedAt:    payableModel.CreatedAt,
		}
	}

	return result, nil
}

func (r *SettlementRepository) ExistsForTrip(ctx context.Context, tripID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SettlementModel{}).
		Where("trip_id = ?", tripID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check for settlement: %w", err)
	}
	return count > 0, nil
}

// DeleteByTripID removes a trip's settlement artifacts in dependency order:
// line items first, then receivables and payables, then the header.
func (r *SettlementRepository) DeleteByTripID(ctx context.Context, tripID uuid.UUID) error {
	var header models.SettlementModel
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		First(&header).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to find settlement for deletion: %w", err)
	}

	if err := r.db.WithContext(ctx).
		Where("settlement_id = ?", header.ID).
		Delete(&models.LineItemModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete settlement line items: %w", err)
	}
	if err := r.db.WithContext(ctx).
		Where("settlement_id = ?", header.ID).
		Delete(&models.ReceivableModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete receivables: %w", err)
	}
	if err := r.db.WithContext(ctx).
		Where("settlement_id = ?", header.ID).
		Delete(&models.PayableModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete payables: %w", err)
	}
	if err := r.db.WithContext(ctx).
		Where("id = ?", header.ID).
		Delete(&models.SettlementModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete settlement: %w", err)
	}

	return nil
}
