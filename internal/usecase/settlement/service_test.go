package settlement

import (
	"context"
	"errors"
	"math"
	"os"
	"testing"
	"time"

	"moveboss/internal/domain/driver"
	"moveboss/internal/domain/load"
	domainSettlement "moveboss/internal/domain/settlement"
	domainTrip "moveboss/internal/domain/trip"
	"moveboss/internal/logger"
	appErrors "moveboss/pkg/errors"

	"github.com/google/uuid"
)

func TestMain(m *testing.M) {
	if err := logger.Init("production"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// store is a single in-memory backing shared by the fake repositories, so a
// settlement test observes exactly what the service persisted.
type store struct {
	trip     *domainTrip.Trip
	loads    []*load.Load
	expenses []*domainTrip.Expense
	plan     *driver.PayPlan

	header      *domainSettlement.Settlement
	lineItems   []*domainSettlement.LineItem
	receivables []*domainSettlement.Receivable
	payable     *domainSettlement.Payable
}

type fakeTrips struct{ s *store }

func (f *fakeTrips) GetByID(_ context.Context, tripID, _ uuid.UUID) (*domainTrip.Trip, error) {
	if f.s.trip == nil || f.s.trip.ID != tripID {
		return nil, domainTrip.ErrTripNotFound
	}
	cp := *f.s.trip
	return &cp, nil
}

func (f *fakeTrips) ListExpenses(_ context.Context, _ uuid.UUID) ([]*domainTrip.Expense, error) {
	return f.s.expenses, nil
}

func (f *fakeTrips) UpdateStatus(_ context.Context, _ uuid.UUID, status domainTrip.Status) error {
	f.s.trip.Status = status
	return nil
}

func (f *fakeTrips) UpdateSummary(_ context.Context, _ uuid.UUID, summary *domainTrip.Summary) error {
	f.s.trip.TotalRevenue = summary.TotalRevenue
	f.s.trip.TotalDriverPay = summary.TotalDriverPay
	f.s.trip.TotalFuel = summary.TotalFuel
	f.s.trip.TotalTolls = summary.TotalTolls
	f.s.trip.TotalOtherExpenses = summary.TotalOtherExpenses
	f.s.trip.TotalProfit = summary.TotalProfit
	f.s.trip.ActualMiles = summary.ActualMiles
	return nil
}

type fakeLoads struct{ s *store }

func (f *fakeLoads) GetByID(_ context.Context, loadID uuid.UUID) (*load.Load, error) {
	for _, l := range f.s.loads {
		if l.ID == loadID {
			return l, nil
		}
	}
	return nil, load.ErrLoadNotFound
}

func (f *fakeLoads) ListByTripID(_ context.Context, _ uuid.UUID) ([]*load.Load, error) {
	return f.s.loads, nil
}

func (f *fakeLoads) MarkCODReceived(_ context.Context, _ uuid.UUID) error { return nil }

type fakePlans struct{ s *store }

func (f *fakePlans) GetPayPlan(_ context.Context, _ uuid.UUID) (*driver.PayPlan, error) {
	if f.s.plan == nil {
		return nil, driver.ErrPayPlanNotFound
	}
	return f.s.plan, nil
}

func (f *fakePlans) UpsertPayPlan(_ context.Context, plan *driver.PayPlan) error {
	cp := *plan
	f.s.plan = &cp
	return nil
}

type fakeSettlements struct{ s *store }

func (f *fakeSettlements) Create(_ context.Context, settled *domainSettlement.Settlement) error {
	settled.ID = uuid.New()
	settled.CreatedAt = time.Now()
	cp := *settled
	f.s.header = &cp
	return nil
}

func (f *fakeSettlements) CreateLineItems(_ context.Context, items []*domainSettlement.LineItem) error {
	for _, item := range items {
		item.ID = uuid.New()
	}
	f.s.lineItems = append(f.s.lineItems, items...)
	return nil
}

func (f *fakeSettlements) CreateReceivables(_ context.Context, receivables []*domainSettlement.Receivable) error {
	for _, r := range receivables {
		r.ID = uuid.New()
	}
	f.s.receivables = append(f.s.receivables, receivables...)
	return nil
}

func (f *fakeSettlements) CreatePayable(_ context.Context, payable *domainSettlement.Payable) error {
	payable.ID = uuid.New()
	f.s.payable = payable
	return nil
}

func (f *fakeSettlements) GetByTripID(_ context.Context, tripID uuid.UUID) (*domainSettlement.Settlement, error) {
	if f.s.header == nil || f.s.header.TripID != tripID {
		return nil, domainSettlement.ErrSettlementNotFound
	}
	cp := *f.s.header
	cp.LineItems = f.s.lineItems
	cp.Receivables = f.s.receivables
	cp.Payable = f.s.payable
	return &cp, nil
}

func (f *fakeSettlements) ExistsForTrip(_ context.Context, tripID uuid.UUID) (bool, error) {
	return f.s.header != nil && f.s.header.TripID == tripID, nil
}

func (f *fakeSettlements) DeleteByTripID(_ context.Context, _ uuid.UUID) error {
	f.s.lineItems = nil
	f.s.receivables = nil
	f.s.payable = nil
	f.s.header = nil
	return nil
}

type fakeUoW struct{ s *store }

func (f *fakeUoW) WithTripLock(_ context.Context, _ uuid.UUID, fn func(tx domainSettlement.Tx) error) error {
	return fn(domainSettlement.Tx{
		Trips:       &fakeTrips{f.s},
		Loads:       &fakeLoads{f.s},
		PayPlans:    &fakePlans{f.s},
		Settlements: &fakeSettlements{f.s},
	})
}

func newService(s *store) *Service {
	return NewService(&fakeTrips{s}, &fakeSettlements{s}, &fakeUoW{s}, nil)
}

func ptr[T any](v T) *T { return &v }

func settleableTrip() *domainTrip.Trip {
	start := time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 5, 18, 0, 0, 0, time.UTC)
	return &domainTrip.Trip{
		ID:                 uuid.New(),
		OwnerID:            uuid.New(),
		DriverID:           uuid.New(),
		Status:             domainTrip.StatusCompleted,
		StartDate:          &start,
		EndDate:            &end,
		OdometerStart:      ptr(10000.0),
		OdometerEnd:        ptr(10400.0),
		OdometerStartPhoto: ptr("photos/odo-start.jpg"),
		OdometerEndPhoto:   ptr("photos/odo-end.jpg"),
	}
}

func nearly(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 0.01 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestSettle_FullTrip(t *testing.T) {
	companyA := uuid.New()
	companyB := uuid.New()
	s := &store{
		trip: settleableTrip(),
		plan: &driver.PayPlan{Mode: driver.PayPerMileAndCuft, RatePerMile: 0.55, RatePerCuft: 0.10},
	}
	s.loads = []*load.Load{
		{
			ID: uuid.New(), TripID: s.trip.ID, CompanyID: companyA, CompanyName: "Atlas Van Lines",
			CuftLoaded: 1000, ContractRatePerCuft: 2.00,
			Contract:         load.Accessorials{Stairs: 50},
			Extra:            load.Accessorials{Shuttle: 75},
			StorageMoveInFee: 40, StorageDailyFee: 10, StorageDaysBilled: 2,
			CollectedOnDelivery: 600,
		},
		{
			ID: uuid.New(), TripID: s.trip.ID, CompanyID: companyB, CompanyName: "Mayflower",
			CuftLoaded: 200, ContractRatePerCuft: 2.50,
			PaidDirectlyToCompany: 700,
		},
	}
	s.expenses = []*domainTrip.Expense{
		{ID: uuid.New(), Category: "fuel", Description: "Fuel stop", Amount: 300, PaidBy: domainTrip.PaidByCompanyCard},
		{ID: uuid.New(), Category: "tolls", Description: "Turnpike", Amount: 45.50, PaidBy: domainTrip.PaidByCompanyCard},
		{ID: uuid.New(), Category: "lodging", Description: "Motel", Amount: 120, PaidBy: domainTrip.PaidByCompanyCard},
	}

	resp, err := newService(s).Settle(context.Background(), s.trip.ID, s.trip.OwnerID)
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}

	// Revenue: load A 2185, load B 500.
	nearly(t, "totalRevenue", resp.TotalRevenue, 2685)
	// Driver pay: 400 miles at 0.55 plus 1200 cuft at 0.10.
	nearly(t, "totalDriverPay", resp.TotalDriverPay, 340)
	nearly(t, "totalExpenses", resp.TotalExpenses, 340+300+45.50+120)
	nearly(t, "totalProfit", resp.TotalProfit, 2685-805.50)

	// Line items per category must sum to the top-level totals.
	sums := map[string]float64{}
	for _, item := range resp.LineItems {
		sums[item.Category] += item.Amount
	}
	nearly(t, "revenue items", sums["revenue"], 2685)
	nearly(t, "driver_pay items", sums["driver_pay"], 340)
	nearly(t, "fuel items", sums["fuel"], 300)
	nearly(t, "tolls items", sums["tolls"], 45.50)
	nearly(t, "expense items", sums["expense"], 120)

	// Receivables: A owes 2110 - 600 collected = 1510 (extras excluded);
	// B's 500 contract is overpaid by the 700 direct payment, so no row.
	if len(resp.Receivables) != 1 {
		t.Fatalf("got %d receivables, want 1", len(resp.Receivables))
	}
	if resp.Receivables[0].CompanyID != companyA {
		t.Fatal("receivable should belong to the first company")
	}
	nearly(t, "receivable amount", resp.Receivables[0].Amount, 1510)

	if resp.Payable == nil {
		t.Fatal("expected a payable to the driver")
	}
	nearly(t, "payable amount", resp.Payable.Amount, 340)
	if resp.Payable.DriverID != s.trip.DriverID {
		t.Fatal("payable should reference the assigned driver")
	}

	if s.trip.Status != domainTrip.StatusSettled {
		t.Fatalf("trip status = %s, want settled", s.trip.Status)
	}
	nearly(t, "trip summary revenue", s.trip.TotalRevenue, 2685)
	nearly(t, "trip actual miles", s.trip.ActualMiles, 400)
}

func TestSettle_DriverFrontedExpenseCountsTwice(t *testing.T) {
	s := &store{trip: settleableTrip()}
	s.expenses = []*domainTrip.Expense{
		{ID: uuid.New(), Category: "fuel", Description: "Fuel stop", Amount: 45, PaidBy: domainTrip.PaidByDriverPersonal},
	}

	resp, err := newService(s).Settle(context.Background(), s.trip.ID, s.trip.OwnerID)
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}

	var fuelItems, reimbItems int
	for _, item := range resp.LineItems {
		switch item.Category {
		case "fuel":
			fuelItems++
			nearly(t, "fuel item", item.Amount, 45)
		case "reimbursement":
			reimbItems++
			nearly(t, "reimbursement item", item.Amount, 45)
		}
	}
	if fuelItems != 1 || reimbItems != 1 {
		t.Fatalf("got %d fuel and %d reimbursement items, want 1 and 1", fuelItems, reimbItems)
	}

	// The driver-fronted expense is a cost and a debt to the driver at once:
	// total expenses move by 90, not 45.
	nearly(t, "totalExpenses", resp.TotalExpenses, 90)
}

func TestSettle_PreconditionFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domainTrip.Trip)
	}{
		{"missing odometer end", func(tr *domainTrip.Trip) { tr.OdometerEnd = nil }},
		{"missing start photo", func(tr *domainTrip.Trip) { tr.OdometerStartPhoto = nil }},
		{"empty end photo", func(tr *domainTrip.Trip) { tr.OdometerEndPhoto = ptr("") }},
		{"zero miles", func(tr *domainTrip.Trip) { tr.OdometerEnd = tr.OdometerStart }},
		{"negative miles", func(tr *domainTrip.Trip) { tr.OdometerEnd = ptr(*tr.OdometerStart - 10) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &store{trip: settleableTrip()}
			tt.mutate(s.trip)

			_, err := newService(s).Settle(context.Background(), s.trip.ID, s.trip.OwnerID)
			appErr, ok := appErrors.AsAppError(err)
			if !ok || appErr.Code != appErrors.CodeValidation {
				t.Fatalf("got %v, want a validation error", err)
			}
			if s.header != nil || len(s.lineItems) != 0 {
				t.Fatal("a failed precondition must write nothing")
			}
		})
	}
}

func TestSettle_UnknownTrip(t *testing.T) {
	s := &store{trip: settleableTrip()}

	_, err := newService(s).Settle(context.Background(), uuid.New(), s.trip.OwnerID)
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.CodeNotFound {
		t.Fatalf("got %v, want not found", err)
	}
}

func TestSettle_TwiceConflicts(t *testing.T) {
	s := &store{trip: settleableTrip()}
	svc := newService(s)

	if _, err := svc.Settle(context.Background(), s.trip.ID, s.trip.OwnerID); err != nil {
		t.Fatalf("first settle: %v", err)
	}

	_, err := svc.Settle(context.Background(), s.trip.ID, s.trip.OwnerID)
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.CodeConflict {
		t.Fatalf("got %v, want conflict", err)
	}
	if !errors.Is(err, domainTrip.ErrAlreadySettled) {
		t.Fatalf("error %v should wrap ErrAlreadySettled", err)
	}
}

func TestRecalculate_Deterministic(t *testing.T) {
	companyID := uuid.New()
	s := &store{
		trip: settleableTrip(),
		plan: &driver.PayPlan{Mode: driver.PayPercentOfRevenue, PercentOfRevenue: 30},
	}
	s.loads = []*load.Load{{
		ID: uuid.New(), TripID: s.trip.ID, CompanyID: companyID, CompanyName: "Atlas Van Lines",
		CuftLoaded: 850, ContractRatePerCuft: 3.15,
		Contract:            load.Accessorials{LongCarry: 85, Packing: 240},
		CollectedOnDelivery: 1000,
	}}
	s.expenses = []*domainTrip.Expense{
		{ID: uuid.New(), Category: "fuel", Description: "Fuel", Amount: 417.88, PaidBy: domainTrip.PaidByDriverCash},
	}
	svc := newService(s)

	first, err := svc.Settle(context.Background(), s.trip.ID, s.trip.OwnerID)
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}

	second, err := svc.Recalculate(context.Background(), s.trip.ID, s.trip.OwnerID)
	if err != nil {
		t.Fatalf("Recalculate: %v", err)
	}
	third, err := svc.Recalculate(context.Background(), s.trip.ID, s.trip.OwnerID)
	if err != nil {
		t.Fatalf("second Recalculate: %v", err)
	}

	for _, got := range []*SettlementResponse{second, third} {
		nearly(t, "totalRevenue", got.TotalRevenue, first.TotalRevenue)
		nearly(t, "totalDriverPay", got.TotalDriverPay, first.TotalDriverPay)
		nearly(t, "totalExpenses", got.TotalExpenses, first.TotalExpenses)
		nearly(t, "totalProfit", got.TotalProfit, first.TotalProfit)
		if len(got.LineItems) != len(first.LineItems) {
			t.Fatalf("line item count changed: %d vs %d", len(got.LineItems), len(first.LineItems))
		}
		if len(got.Receivables) != len(first.Receivables) {
			t.Fatalf("receivable count changed: %d vs %d", len(got.Receivables), len(first.Receivables))
		}
		if got.Receivables[0].CompanyID != first.Receivables[0].CompanyID {
			t.Fatal("receivable company changed across recalculation")
		}
		nearly(t, "receivable amount", got.Receivables[0].Amount, first.Receivables[0].Amount)
	}

	// No orphans from the prior run.
	if len(s.receivables) != 1 {
		t.Fatalf("store holds %d receivables after recalculation, want 1", len(s.receivables))
	}
	if s.trip.Status != domainTrip.StatusSettled {
		t.Fatalf("trip status = %s, want settled", s.trip.Status)
	}
}

func TestRecalculate_WithoutSettlement(t *testing.T) {
	s := &store{trip: settleableTrip()}

	_, err := newService(s).Recalculate(context.Background(), s.trip.ID, s.trip.OwnerID)
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.CodeNotFound {
		t.Fatalf("got %v, want not found", err)
	}
}

func TestSettle_StorageDropKeepsDeliveryCollection(t *testing.T) {
	companyID := uuid.New()
	s := &store{trip: settleableTrip()}
	s.loads = []*load.Load{{
		ID: uuid.New(), TripID: s.trip.ID, CompanyID: companyID, CompanyName: "Atlas Van Lines",
		CuftLoaded: 500, ContractRatePerCuft: 2.00,
		IsStorageDrop:       true,
		CollectedOnDelivery: 400,
	}}

	resp, err := newService(s).Settle(context.Background(), s.trip.ID, s.trip.OwnerID)
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}

	// On a storage drop the delivery collection does not reduce what the
	// company owes: the full 1000 contract amount stays receivable.
	if len(resp.Receivables) != 1 {
		t.Fatalf("got %d receivables, want 1", len(resp.Receivables))
	}
	nearly(t, "receivable amount", resp.Receivables[0].Amount, 1000)
}

func TestSettle_NoPayPlanMeansNoPayable(t *testing.T) {
	s := &store{trip: settleableTrip()}
	s.loads = []*load.Load{{
		ID: uuid.New(), TripID: s.trip.ID, CompanyID: uuid.New(), CompanyName: "Mayflower",
		CuftLoaded: 100, ContractRatePerCuft: 2.00,
	}}

	resp, err := newService(s).Settle(context.Background(), s.trip.ID, s.trip.OwnerID)
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}

	nearly(t, "totalDriverPay", resp.TotalDriverPay, 0)
	if resp.Payable != nil {
		t.Fatal("zero driver pay must not produce a payable")
	}
	if s.payable != nil {
		t.Fatal("no payable row should be persisted")
	}
}
