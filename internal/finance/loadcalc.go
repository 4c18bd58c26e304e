package finance

import (
	"moveboss/internal/domain/load"
)

// AccessorialBreakdown echoes each accessorial charge back alongside its
// rounded total, so the billing UI can display the itemization verbatim.
type AccessorialBreakdown struct {
	Stairs    float64 `json:"stairs"`
	Shuttle   float64 `json:"shuttle"`
	LongCarry float64 `json:"long_carry"`
	Packing   float64 `json:"packing"`
	Bulky     float64 `json:"bulky"`
	Other     float64 `json:"other"`
	Total     float64 `json:"total"`
}

// LoadFinancials is the full derived picture of one load's money: revenue by
// source, what has been collected, and what the owning company still owes.
type LoadFinancials struct {
	CuftLoaded  float64 `json:"cuft_loaded"`
	RatePerCuft float64 `json:"rate_per_cuft"`
	BaseRevenue float64 `json:"base_revenue"`

	Contract AccessorialBreakdown `json:"contract_accessorials"`
	Extra    AccessorialBreakdown `json:"extra_accessorials"`

	StorageMoveInFee  float64 `json:"storage_move_in_fee"`
	StorageDailyFee   float64 `json:"storage_daily_fee"`
	StorageDaysBilled int     `json:"storage_days_billed"`
	StorageTotal      float64 `json:"storage_total"`

	TotalRevenue float64 `json:"total_revenue"`

	CollectedOnDelivery   float64 `json:"collected_on_delivery"`
	PaidDirectlyToCompany float64 `json:"paid_directly_to_company"`
	TotalCollected        float64 `json:"total_collected"`
	CompanyOwes           float64 `json:"company_owes"`
}

// CalculateLoad derives the financial result for one load. It is deterministic
// and side-effect free; settlement recalculation depends on identical input
// producing identical output.
func CalculateLoad(l *load.Load) *LoadFinancials {
	cuft := amount(l.CuftLoaded)
	rate := amount(l.RatePerCuft())

	contract := breakdownAccessorials(l.Contract)
	extra := breakdownAccessorials(l.Extra)

	moveIn := amount(l.StorageMoveInFee)
	daily := amount(l.StorageDailyFee)
	days := l.StorageDaysBilled
	if days < 0 {
		days = 0
	}

	baseRevenue := Round(cuft * rate)
	storageTotal := Round(moveIn + daily*float64(days))
	totalRevenue := Round(baseRevenue + contract.Total + extra.Total + storageTotal)

	collected := amount(l.CollectedOnDelivery)
	paidDirect := amount(l.PaidDirectlyToCompany)
	totalCollected := Round(collected + paidDirect)

	return &LoadFinancials{
		CuftLoaded:  cuft,
		RatePerCuft: rate,
		BaseRevenue: baseRevenue,

		Contract: contract,
		Extra:    extra,

		StorageMoveInFee:  moveIn,
		StorageDailyFee:   daily,
		StorageDaysBilled: days,
		StorageTotal:      storageTotal,

		TotalRevenue: totalRevenue,

		CollectedOnDelivery:   collected,
		PaidDirectlyToCompany: paidDirect,
		TotalCollected:        totalCollected,
		CompanyOwes:           Round(totalRevenue - totalCollected),
	}
}

// ContractTotalBillable is what the shipping company is on the hook for:
// linehaul, contract accessorials and storage. Driver-collected extras are the
// driver's to remit separately and are deliberately excluded.
func (f *LoadFinancials) ContractTotalBillable() float64 {
	return Round(f.BaseRevenue + f.Contract.Total + f.StorageTotal)
}

func breakdownAccessorials(a load.Accessorials) AccessorialBreakdown {
	b := AccessorialBreakdown{
		Stairs:    amount(a.Stairs),
		Shuttle:   amount(a.Shuttle),
		LongCarry: amount(a.LongCarry),
		Packing:   amount(a.Packing),
		Bulky:     amount(a.Bulky),
		Other:     amount(a.Other),
	}
	b.Total = Round(b.Stairs + b.Shuttle + b.LongCarry + b.Packing + b.Bulky + b.Other)
	return b
}
