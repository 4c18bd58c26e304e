package delivery

import (
	"context"
	"os"
	"strings"
	"testing"

	domainLoad "moveboss/internal/domain/load"
	"moveboss/internal/finance"
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

type fakeLoads struct {
	load        *domainLoad.Load
	codRecorded bool
}

func (f *fakeLoads) GetByID(_ context.Context, loadID uuid.UUID) (*domainLoad.Load, error) {
	if f.load == nil || f.load.ID != loadID {
		return nil, domainLoad.ErrLoadNotFound
	}
	return f.load, nil
}

func (f *fakeLoads) ListByTripID(_ context.Context, _ uuid.UUID) ([]*domainLoad.Load, error) {
	return []*domainLoad.Load{f.load}, nil
}

func (f *fakeLoads) MarkCODReceived(_ context.Context, _ uuid.UUID) error {
	f.codRecorded = true
	return nil
}

func deliveryLoad() *domainLoad.Load {
	return &domainLoad.Load{
		ID:                  uuid.New(),
		CompanyID:           uuid.New(),
		CompanyName:         "Atlas Van Lines",
		CompanyTrust:        domainLoad.TrustCODRequired,
		CuftLoaded:          250,
		ContractRatePerCuft: 3.00,
		Contract:            domainLoad.Accessorials{Stairs: 50},
		CustomerBalance:     500,
	}
}

func TestPreDeliveryCheck_ShortfallBlocksUnload(t *testing.T) {
	repo := &fakeLoads{load: deliveryLoad()}
	svc := NewService(repo)

	result, err := svc.PreDeliveryCheck(context.Background(), repo.load.ID)
	if err != nil {
		t.Fatalf("PreDeliveryCheck: %v", err)
	}

	if !result.RequiresCOD {
		t.Fatal("expected COD to be required")
	}
	if result.AlertLevel != finance.AlertDanger {
		t.Fatalf("alertLevel = %s, want danger", result.AlertLevel)
	}
	if !strings.Contains(result.ActionRequired, "DO NOT UNLOAD") {
		t.Fatalf("action %q should block unloading", result.ActionRequired)
	}
	if repo.codRecorded {
		t.Fatal("the check must not mutate COD state")
	}
}

func TestPreDeliveryCheck_TrustedCompany(t *testing.T) {
	repo := &fakeLoads{load: deliveryLoad()}
	repo.load.CompanyTrust = domainLoad.TrustTrusted
	svc := NewService(repo)

	result, err := svc.PreDeliveryCheck(context.Background(), repo.load.ID)
	if err != nil {
		t.Fatalf("PreDeliveryCheck: %v", err)
	}

	if result.RequiresCOD {
		t.Fatal("trusted company must never be blocked")
	}
	if result.AlertLevel != finance.AlertSuccess {
		t.Fatalf("alertLevel = %s, want success", result.AlertLevel)
	}
}

func TestPreDeliveryCheck_UnknownLoad(t *testing.T) {
	svc := NewService(&fakeLoads{load: deliveryLoad()})

	_, err := svc.PreDeliveryCheck(context.Background(), uuid.New())
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.CodeNotFound {
		t.Fatalf("got %v, want not found", err)
	}
}

func TestFinancials_Breakdown(t *testing.T) {
	repo := &fakeLoads{load: deliveryLoad()}
	svc := NewService(repo)

	result, err := svc.Financials(context.Background(), repo.load.ID)
	if err != nil {
		t.Fatalf("Financials: %v", err)
	}

	if result.BaseRevenue != 750 {
		t.Fatalf("baseRevenue = %v, want 750", result.BaseRevenue)
	}
	if result.TotalRevenue != 800 {
		t.Fatalf("totalRevenue = %v, want 800", result.TotalRevenue)
	}
}

func TestMarkCODReceived(t *testing.T) {
	repo := &fakeLoads{load: deliveryLoad()}
	svc := NewService(repo)

	if err := svc.MarkCODReceived(context.Background(), repo.load.ID); err != nil {
		t.Fatalf("MarkCODReceived: %v", err)
	}
	if !repo.codRecorded {
		t.Fatal("COD receipt was not recorded")
	}
}
