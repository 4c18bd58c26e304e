package settlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moveboss/internal/domain/driver"
	"moveboss/internal/domain/load"
	domainSettlement "moveboss/internal/domain/settlement"
	domainTrip "moveboss/internal/domain/trip"
	"moveboss/internal/events"
	"moveboss/internal/finance"
	"moveboss/internal/logger"
	appErrors "moveboss/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service builds and rebuilds trip settlements. All writes for one settlement
// happen inside a single unit of work holding a per-trip lock, so concurrent
// settle calls on the same trip serialize and the second one fails cleanly.
type Service struct {
	trips       domainTrip.Repository
	settlements domainSettlement.Repository
	uow         domainSettlement.UnitOfWork
	events      *events.Publisher
}

func NewService(
	trips domainTrip.Repository,
	settlements domainSettlement.Repository,
	uow domainSettlement.UnitOfWork,
	publisher *events.Publisher,
) *Service {
	return &Service{
		trips:       trips,
		settlements: settlements,
		uow:         uow,
		events:      publisher,
	}
}

// Settle closes out a trip's financials: one settlement header, its line
// items, one receivable per company still owing, and at most one payable to
// the driver. The trip itself is marked settled and its summary fields are
// rewritten from the settlement.
func (s *Service) Settle(ctx context.Context, tripID, ownerID uuid.UUID) (*SettlementResponse, error) {
	t, err := s.resolveTrip(ctx, tripID, ownerID)
	if err != nil {
		return nil, err
	}
	if err := ValidatePreconditions(t); err != nil {
		return nil, err
	}

	var created *domainSettlement.Settlement
	err = s.uow.WithTripLock(ctx, tripID, func(tx domainSettlement.Tx) error {
		exists, err := tx.Settlements.ExistsForTrip(ctx, tripID)
		if err != nil {
			return fmt.Errorf("failed to check for existing settlement: %w", err)
		}
		if exists {
			return appErrors.NewAppError(appErrors.CodeConflict, "Trip is already settled", domainTrip.ErrAlreadySettled)
		}

		created, err = s.settleInTx(ctx, tx, t)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Trip settled",
		zap.String("trip_id", tripID.String()),
		zap.String("settlement_id", created.ID.String()),
		zap.Float64("total_revenue", created.TotalRevenue),
		zap.Float64("total_profit", created.TotalProfit),
		zap.String("event", "trip_settled"),
	)
	s.publish(created, false)

	return ToSettlementResponse(created), nil
}

// Recalculate tears down a trip's settlement artifacts in dependency order
// and rebuilds them from the current loads and expenses. With unchanged
// inputs the rebuilt settlement carries identical totals and identical
// receivable and payable rows, new row IDs aside.
func (s *Service) Recalculate(ctx context.Context, tripID, ownerID uuid.UUID) (*SettlementResponse, error) {
	t, err := s.resolveTrip(ctx, tripID, ownerID)
	if err != nil {
		return nil, err
	}
	if err := ValidatePreconditions(t); err != nil {
		return nil, err
	}

	var created *domainSettlement.Settlement
	err = s.uow.WithTripLock(ctx, tripID, func(tx domainSettlement.Tx) error {
		if _, err := tx.Settlements.GetByTripID(ctx, tripID); err != nil {
			if errors.Is(err, domainSettlement.ErrSettlementNotFound) {
				return appErrors.NewAppError(appErrors.CodeNotFound, "Trip has no settlement to recalculate", err)
			}
			return fmt.Errorf("failed to load settlement: %w", err)
		}

		if err := tx.Settlements.DeleteByTripID(ctx, tripID); err != nil {
			return fmt.Errorf("failed to tear down settlement: %w", err)
		}
		if err := tx.Trips.UpdateStatus(ctx, tripID, domainTrip.StatusCompleted); err != nil {
			return fmt.Errorf("failed to reset trip status: %w", err)
		}

		created, err = s.settleInTx(ctx, tx, t)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Trip settlement recalculated",
		zap.String("trip_id", tripID.String()),
		zap.String("settlement_id", created.ID.String()),
		zap.Float64("total_profit", created.TotalProfit),
		zap.String("event", "trip_settlement_recalculated"),
	)
	s.publish(created, true)

	return ToSettlementResponse(created), nil
}

// GetByTrip returns a trip's settlement with its full breakdown.
func (s *Service) GetByTrip(ctx context.Context, tripID, ownerID uuid.UUID) (*SettlementResponse, error) {
	if _, err := s.resolveTrip(ctx, tripID, ownerID); err != nil {
		return nil, err
	}

	settled, err := s.settlements.GetByTripID(ctx, tripID)
	if err != nil {
		if errors.Is(err, domainSettlement.ErrSettlementNotFound) {
			return nil, appErrors.NewAppError(appErrors.CodeNotFound, "Trip has no settlement", err)
		}
		return nil, fmt.Errorf("failed to load settlement: %w", err)
	}

	return ToSettlementResponse(settled), nil
}

func (s *Service) resolveTrip(ctx context.Context, tripID, ownerID uuid.UUID) (*domainTrip.Trip, error) {
	t, err := s.trips.GetByID(ctx, tripID, ownerID)
	if err != nil {
		if errors.Is(err, domainTrip.ErrTripNotFound) {
			return nil, appErrors.NewAppError(appErrors.CodeNotFound, "Trip not found", err)
		}
		return nil, fmt.Errorf("failed to resolve trip: %w", err)
	}
	return t, nil
}

// settleInTx runs the build inside an already-locked transaction and persists
// in order: header, line items, receivables, payable, trip summary and status.
func (s *Service) settleInTx(ctx context.Context, tx domainSettlement.Tx, t *domainTrip.Trip) (*domainSettlement.Settlement, error) {
	loads, err := tx.Loads.ListByTripID(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trip loads: %w", err)
	}
	expenses, err := tx.Trips.ListExpenses(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trip expenses: %w", err)
	}

	plan, err := tx.PayPlans.GetPayPlan(ctx, t.DriverID)
	if err != nil {
		if !errors.Is(err, driver.ErrPayPlanNotFound) {
			return nil, fmt.Errorf("failed to resolve driver pay plan: %w", err)
		}
		// A driver without a plan settles with zero pay.
		plan = nil
	}

	built := buildSettlement(t, plan, loads, expenses)

	if err := tx.Settlements.Create(ctx, built.settlement); err != nil {
		return nil, fmt.Errorf("failed to persist settlement: %w", err)
	}
	for _, item := range built.settlement.LineItems {
		item.SettlementID = built.settlement.ID
	}
	if err := tx.Settlements.CreateLineItems(ctx, built.settlement.LineItems); err != nil {
		return nil, fmt.Errorf("failed to persist line items: %w", err)
	}

	for _, r := range built.settlement.Receivables {
		r.SettlementID = built.settlement.ID
	}
	if len(built.settlement.Receivables) > 0 {
		if err := tx.Settlements.CreateReceivables(ctx, built.settlement.Receivables); err != nil {
			return nil, fmt.Errorf("failed to persist receivables: %w", err)
		}
	}

	if built.settlement.Payable != nil {
		built.settlement.Payable.SettlementID = built.settlement.ID
		if err := tx.Settlements.CreatePayable(ctx, built.settlement.Payable); err != nil {
			return nil, fmt.Errorf("failed to persist payable: %w", err)
		}
	}

	if err := tx.Trips.UpdateSummary(ctx, t.ID, built.summary); err != nil {
		return nil, fmt.Errorf("failed to update trip summary: %w", err)
	}
	if err := tx.Trips.UpdateStatus(ctx, t.ID, domainTrip.StatusSettled); err != nil {
		return nil, fmt.Errorf("failed to update trip status: %w", err)
	}

	return built.settlement, nil
}

func (s *Service) publish(settled *domainSettlement.Settlement, recalculated bool) {
	s.events.SettlementSettled(&events.SettlementEvent{
		SettlementID:   settled.ID,
		TripID:         settled.TripID,
		DriverID:       settled.DriverID,
		TotalRevenue:   settled.TotalRevenue,
		TotalDriverPay: settled.TotalDriverPay,
		TotalExpenses:  settled.TotalExpenses,
		TotalProfit:    settled.TotalProfit,
		Recalculated:   recalculated,
		OccurredAt:     time.Now().UTC(),
	})
}

type buildResult struct {
	settlement *domainSettlement.Settlement
	summary    *domainTrip.Summary
}

// buildSettlement derives the full settlement for a trip from its loads,
// expenses and the driver's pay plan. Pure: repeated calls over the same
// inputs produce identical totals and rows.
func buildSettlement(t *domainTrip.Trip, plan *driver.PayPlan, loads []*load.Load, expenses []*domainTrip.Expense) *buildResult {
	actualMiles := finance.Round(*t.OdometerEnd - *t.OdometerStart)

	items := make([]*domainSettlement.LineItem, 0, len(loads)*3+len(expenses))
	addItem := func(category domainSettlement.LineItemCategory, description string, amount float64, l *load.Load) {
		item := &domainSettlement.LineItem{
			Category:    category,
			Description: description,
			Amount:      amount,
		}
		if l != nil {
			loadID, companyID := l.ID, l.CompanyID
			item.LoadID = &loadID
			item.CompanyID = &companyID
		}
		items = append(items, item)
	}

	// Revenue line items and per-company receivable contributions.
	var (
		totalRevenue float64
		totalCuft    float64
		companyOrder []uuid.UUID
		companyOwed  = make(map[uuid.UUID]float64)
		companyNames = make(map[uuid.UUID]string)
	)
	for _, l := range loads {
		f := finance.CalculateLoad(l)
		totalCuft += f.CuftLoaded

		if f.BaseRevenue != 0 {
			addItem(domainSettlement.CategoryRevenue,
				fmt.Sprintf("Linehaul (%.0f cuft @ $%.2f/cuft)", f.CuftLoaded, f.RatePerCuft),
				f.BaseRevenue, l)
		}
		if f.Contract.Total != 0 {
			addItem(domainSettlement.CategoryRevenue, "Contract accessorials", f.Contract.Total, l)
		}
		if f.StorageMoveInFee != 0 {
			addItem(domainSettlement.CategoryRevenue, "Storage move-in", finance.Round(f.StorageMoveInFee), l)
		}
		if daily := finance.Round(f.StorageTotal - finance.Round(f.StorageMoveInFee)); daily != 0 {
			addItem(domainSettlement.CategoryRevenue,
				fmt.Sprintf("Storage (%d days @ $%.2f/day)", f.StorageDaysBilled, f.StorageDailyFee),
				daily, l)
		}
		if f.Extra.Total != 0 {
			addItem(domainSettlement.CategoryRevenue, "Driver-collected extras", f.Extra.Total, l)
		}

		totalRevenue = finance.Round(totalRevenue + f.TotalRevenue)

		// What this company still owes the carrier for this load. Extras are
		// the driver's to remit and never billed to the company; a storage
		// drop's delivery collection stays with the customer side.
		collected := l.CollectedOnDelivery
		if l.IsStorageDrop {
			collected = 0
		}
		contribution := finance.Round(f.ContractTotalBillable() - l.PaidDirectlyToCompany - collected)
		if contribution > 0 {
			if _, seen := companyOwed[l.CompanyID]; !seen {
				companyOrder = append(companyOrder, l.CompanyID)
				companyNames[l.CompanyID] = l.CompanyName
			}
			companyOwed[l.CompanyID] = finance.Round(companyOwed[l.CompanyID] + contribution)
		}
	}

	// Driver pay from trip aggregates.
	pay := finance.CalculateDriverPay(plan, finance.TripAggregates{
		ActualMiles:     actualMiles,
		TotalCuftLoaded: totalCuft,
		RevenueBase:     totalRevenue,
		DaysWorked:      finance.DaysWorked(t.StartDate, t.EndDate),
	})
	for _, p := range pay.Items {
		addItem(domainSettlement.CategoryDriverPay, p.Description, p.Amount, nil)
	}

	// Expenses by category. Driver-fronted expenses additionally produce a
	// reimbursement line item: the expense stays in its category for cost
	// reporting while the reimbursement tracks the cash owed back to the
	// driver, so both count toward total expenses.
	var fuel, tolls, other, reimbursed float64
	for _, e := range expenses {
		amt := finance.Round(e.Amount)

		switch e.Category {
		case "fuel":
			addItem(domainSettlement.CategoryFuel, e.Description, amt, nil)
			fuel = finance.Round(fuel + amt)
		case "tolls":
			addItem(domainSettlement.CategoryTolls, e.Description, amt, nil)
			tolls = finance.Round(tolls + amt)
		case "driver_pay":
			// Already covered by the computed driver pay items.
			continue
		default:
			addItem(domainSettlement.CategoryExpense, e.Description, amt, nil)
			other = finance.Round(other + amt)
		}

		if e.DriverFronted() {
			addItem(domainSettlement.CategoryReimbursement,
				fmt.Sprintf("Reimbursement: %s", e.Description), amt, nil)
			reimbursed = finance.Round(reimbursed + amt)
		}
	}

	totalExpenses := finance.Round(pay.Total + fuel + tolls + other + reimbursed)
	totalProfit := finance.Round(totalRevenue - totalExpenses)

	settled := &domainSettlement.Settlement{
		TripID:         t.ID,
		DriverID:       t.DriverID,
		Status:         domainSettlement.StatusDraft,
		TotalRevenue:   totalRevenue,
		TotalDriverPay: pay.Total,
		TotalExpenses:  totalExpenses,
		TotalProfit:    totalProfit,
		LineItems:      items,
	}

	for _, companyID := range companyOrder {
		settled.Receivables = append(settled.Receivables, &domainSettlement.Receivable{
			TripID:      t.ID,
			CompanyID:   companyID,
			CompanyName: companyNames[companyID],
			Amount:      companyOwed[companyID],
		})
	}

	if pay.Total > 0 {
		settled.Payable = &domainSettlement.Payable{
			TripID:   t.ID,
			DriverID: t.DriverID,
			Amount:   pay.Total,
		}
	}

	return &buildResult{
		settlement: settled,
		summary: &domainTrip.Summary{
			TotalRevenue:       totalRevenue,
			TotalDriverPay:     pay.Total,
			TotalFuel:          fuel,
			TotalTolls:         tolls,
			TotalOtherExpenses: finance.Round(other + reimbursed),
			TotalProfit:        totalProfit,
			ActualMiles:        actualMiles,
		},
	}
}
