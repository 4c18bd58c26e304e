package finance

import (
	"math"
	"reflect"
	"testing"

	"moveboss/internal/domain/load"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 0.01 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestCalculateLoad_FullBreakdown(t *testing.T) {
	l := &load.Load{
		CuftLoaded:          1000,
		ContractRatePerCuft: 2.00,
		Contract:            load.Accessorials{Stairs: 50},
		Extra:               load.Accessorials{Shuttle: 75},
		StorageMoveInFee:    40,
		StorageDailyFee:     10,
		StorageDaysBilled:   2,
	}

	result := CalculateLoad(l)

	nearlyEqual(t, "baseRevenue", result.BaseRevenue, 2000)
	nearlyEqual(t, "contractTotal", result.Contract.Total, 50)
	nearlyEqual(t, "extraTotal", result.Extra.Total, 75)
	nearlyEqual(t, "storageTotal", result.StorageTotal, 60)
	nearlyEqual(t, "totalRevenue", result.TotalRevenue, 2185)
}

func TestCalculateLoad_Additivity(t *testing.T) {
	loads := []*load.Load{
		{CuftLoaded: 837, ListRatePerCuft: 3.17, Contract: load.Accessorials{Stairs: 12.5, Bulky: 99.99}},
		{CuftLoaded: 1, ContractRatePerCuft: 0.01, Extra: load.Accessorials{Other: 0.01}},
		{CuftLoaded: 450.5, ContractRatePerCuft: 2.95, StorageMoveInFee: 33.33, StorageDailyFee: 7.77, StorageDaysBilled: 13},
		{},
	}

	for i, l := range loads {
		result := CalculateLoad(l)
		sum := result.BaseRevenue + result.Contract.Total + result.Extra.Total + result.StorageTotal
		if math.Abs(result.TotalRevenue-sum) > 0.01 {
			t.Errorf("load %d: totalRevenue %v does not match component sum %v", i, result.TotalRevenue, sum)
		}
	}
}

func TestCalculateLoad_ContractRatePreferredOverListRate(t *testing.T) {
	withContract := CalculateLoad(&load.Load{CuftLoaded: 100, ContractRatePerCuft: 2.50, ListRatePerCuft: 4.00})
	listOnly := CalculateLoad(&load.Load{CuftLoaded: 100, ListRatePerCuft: 4.00})

	nearlyEqual(t, "withContract baseRevenue", withContract.BaseRevenue, 250)
	nearlyEqual(t, "listOnly baseRevenue", listOnly.BaseRevenue, 400)
}

func TestCalculateLoad_CompanyOwes(t *testing.T) {
	l := &load.Load{
		CuftLoaded:            500,
		ContractRatePerCuft:   3.00,
		CollectedOnDelivery:   400,
		PaidDirectlyToCompany: 250,
	}

	result := CalculateLoad(l)

	nearlyEqual(t, "totalCollected", result.TotalCollected, 650)
	nearlyEqual(t, "companyOwes", result.CompanyOwes, 850)
}

func TestCalculateLoad_RoundsEachAggregationStep(t *testing.T) {
	// 333.333 cuft at $1.115 is 371.666..., which must already be rounded
	// before it is combined into total revenue.
	l := &load.Load{
		CuftLoaded:          333.333,
		ContractRatePerCuft: 1.115,
		Contract:            load.Accessorials{Stairs: 0.005, Shuttle: 0.005},
	}

	result := CalculateLoad(l)

	nearlyEqual(t, "baseRevenue", result.BaseRevenue, 371.67)
	nearlyEqual(t, "contractTotal", result.Contract.Total, 0.01)
	nearlyEqual(t, "totalRevenue", result.TotalRevenue, 371.68)
}

func TestCalculateLoad_MalformedInputDegradesToZero(t *testing.T) {
	l := &load.Load{
		CuftLoaded:          math.NaN(),
		ContractRatePerCuft: math.Inf(1),
		StorageDaysBilled:   -4,
	}

	result := CalculateLoad(l)

	nearlyEqual(t, "baseRevenue", result.BaseRevenue, 0)
	nearlyEqual(t, "totalRevenue", result.TotalRevenue, 0)
	if result.StorageDaysBilled != 0 {
		t.Fatalf("storageDaysBilled = %d, want 0", result.StorageDaysBilled)
	}
}

func TestCalculateLoad_Deterministic(t *testing.T) {
	l := &load.Load{
		CuftLoaded:            712.4,
		ContractRatePerCuft:   2.85,
		Contract:              load.Accessorials{Stairs: 75, LongCarry: 50},
		Extra:                 load.Accessorials{Packing: 120},
		StorageMoveInFee:      60,
		StorageDailyFee:       15,
		StorageDaysBilled:     9,
		CollectedOnDelivery:   500,
		PaidDirectlyToCompany: 1000,
	}

	first := CalculateLoad(l)
	second := CalculateLoad(l)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated calculation diverged: %+v vs %+v", first, second)
	}
}

func TestContractTotalBillable_ExcludesExtras(t *testing.T) {
	l := &load.Load{
		CuftLoaded:          200,
		ContractRatePerCuft: 2.00,
		Contract:            load.Accessorials{Stairs: 50},
		Extra:               load.Accessorials{Shuttle: 300},
		StorageMoveInFee:    25,
	}

	result := CalculateLoad(l)

	nearlyEqual(t, "contractTotalBillable", result.ContractTotalBillable(), 475)
}
