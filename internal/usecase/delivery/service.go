package delivery

import (
	"context"
	"errors"
	"fmt"

	domainLoad "moveboss/internal/domain/load"
	"moveboss/internal/finance"
	"moveboss/internal/logger"
	appErrors "moveboss/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service answers the two questions asked at the customer's door: what does
// this load's money look like, and may the driver unload without collecting
// COD first.
type Service struct {
	loads domainLoad.Repository
}

func NewService(loads domainLoad.Repository) *Service {
	return &Service{loads: loads}
}

// Financials returns the itemized financial breakdown for a load, shown
// verbatim on the billing screen.
func (s *Service) Financials(ctx context.Context, loadID uuid.UUID) (*finance.LoadFinancials, error) {
	l, err := s.resolveLoad(ctx, loadID)
	if err != nil {
		return nil, err
	}
	return finance.CalculateLoad(l), nil
}

// PreDeliveryCheck evaluates the COD decision for a load against the owning
// company's live trust level and COD state. Advisory only: nothing here
// mutates the load.
func (s *Service) PreDeliveryCheck(ctx context.Context, loadID uuid.UUID) (*finance.PreDeliveryCheck, error) {
	l, err := s.resolveLoad(ctx, loadID)
	if err != nil {
		return nil, err
	}

	result := finance.EvaluatePreDelivery(finance.PreDeliveryInput{
		CuftLoaded:               l.CuftLoaded,
		RatePerCuft:              l.RatePerCuft(),
		ContractAccessorials:     l.Contract,
		CustomerBalance:          l.CustomerBalance,
		TrustLevel:               l.CompanyTrust,
		CODReceived:              l.CODReceived,
		CompanyApprovedException: l.CompanyApprovedException,
		CompanyName:              l.CompanyName,
	})

	if result.RequiresCOD {
		logger.Warn("Pre-delivery check requires COD",
			zap.String("load_id", loadID.String()),
			zap.String("company", l.CompanyName),
			zap.Float64("cod_amount_required", result.CODAmountRequired),
			zap.String("event", "pre_delivery_cod_required"),
		)
	}

	return &result, nil
}

// MarkCODReceived records that the driver collected the COD at the door.
func (s *Service) MarkCODReceived(ctx context.Context, loadID uuid.UUID) error {
	if _, err := s.resolveLoad(ctx, loadID); err != nil {
		return err
	}

	if err := s.loads.MarkCODReceived(ctx, loadID); err != nil {
		return fmt.Errorf("failed to record COD receipt: %w", err)
	}

	logger.Info("COD recorded as received",
		zap.String("load_id", loadID.String()),
		zap.String("event", "cod_received"),
	)
	return nil
}

func (s *Service) resolveLoad(ctx context.Context, loadID uuid.UUID) (*domainLoad.Load, error) {
	l, err := s.loads.GetByID(ctx, loadID)
	if err != nil {
		if errors.Is(err, domainLoad.ErrLoadNotFound) {
			return nil, appErrors.NewAppError(appErrors.CodeNotFound, "Load not found", err)
		}
		return nil, fmt.Errorf("failed to resolve load: %w", err)
	}
	return l, nil
}
