package driverpay

import (
	"context"
	"errors"
	"fmt"

	"moveboss/internal/domain/driver"
	"moveboss/internal/logger"
	appErrors "moveboss/pkg/errors"
	"moveboss/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service manages driver compensation agreements. Plans are keyed by driver,
// one active plan each; an upsert replaces whatever was there before.
type Service struct {
	plans driver.Repository
}

func NewService(plans driver.Repository) *Service {
	return &Service{plans: plans}
}

func (s *Service) UpsertPayPlan(ctx context.Context, driverID uuid.UUID, req *UpsertPayPlanRequest) (*PayPlanResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "Invalid pay plan: "+err.Error(), err)
	}

	plan := &driver.PayPlan{
		ID:               uuid.New(),
		DriverID:         driverID,
		Mode:             driver.PayMode(req.Mode),
		RatePerMile:      req.RatePerMile,
		RatePerCuft:      req.RatePerCuft,
		PercentOfRevenue: req.PercentOfRevenue,
		FlatDailyRate:    req.FlatDailyRate,
	}

	if err := s.plans.UpsertPayPlan(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to save pay plan: %w", err)
	}

	saved, err := s.plans.GetPayPlan(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload pay plan: %w", err)
	}

	logger.Info("Driver pay plan updated",
		zap.String("driver_id", driverID.String()),
		zap.String("pay_mode", string(saved.Mode)),
	)

	return ToPayPlanResponse(saved), nil
}

func (s *Service) GetPayPlan(ctx context.Context, driverID uuid.UUID) (*PayPlanResponse, error) {
	plan, err := s.plans.GetPayPlan(ctx, driverID)
	if err != nil {
		if errors.Is(err, driver.ErrPayPlanNotFound) {
			return nil, appErrors.NewAppError(appErrors.CodeNotFound, "Driver has no pay plan", err)
		}
		return nil, fmt.Errorf("failed to get pay plan: %w", err)
	}
	return ToPayPlanResponse(plan), nil
}
