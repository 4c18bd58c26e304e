package load

import (
	"time"

	"github.com/google/uuid"
)

// TrustLevel controls whether the carrier fronts the COD shortfall risk for a
// shipping company.
type TrustLevel string

const (
	TrustTrusted     TrustLevel = "trusted"
	TrustCODRequired TrustLevel = "cod_required"
)

// Accessorials are the six named extra-service charges priced on a load.
type Accessorials struct {
	Stairs    float64 `json:"stairs"`
	Shuttle   float64 `json:"shuttle"`
	LongCarry float64 `json:"long_carry"`
	Packing   float64 `json:"packing"`
	Bulky     float64 `json:"bulky"`
	Other     float64 `json:"other"`
}

// Load is one shipment on a trip: the commercial terms agreed at booking, the
// day-of actuals, and what has been collected so far.
type Load struct {
	ID     uuid.UUID `json:"id"`
	TripID uuid.UUID `json:"trip_id"`

	CompanyID    uuid.UUID  `json:"company_id"`
	CompanyName  string     `json:"company_name"`
	CompanyTrust TrustLevel `json:"company_trust"`

	CuftLoaded          float64 `json:"cuft_loaded"`
	ContractRatePerCuft float64 `json:"contract_rate_per_cuft"`
	ListRatePerCuft     float64 `json:"list_rate_per_cuft"`

	// Contract accessorials are pre-agreed at booking; extras are added by the
	// driver on the day of service.
	Contract Accessorials `json:"contract_accessorials"`
	Extra    Accessorials `json:"extra_accessorials"`

	StorageMoveInFee  float64 `json:"storage_move_in_fee"`
	StorageDailyFee   float64 `json:"storage_daily_fee"`
	StorageDaysBilled int     `json:"storage_days_billed"`
	IsStorageDrop     bool    `json:"is_storage_drop"`

	CollectedOnDelivery   float64 `json:"collected_on_delivery"`
	PaidDirectlyToCompany float64 `json:"paid_directly_to_company"`

	CustomerBalance          float64 `json:"customer_balance"`
	CODReceived              bool    `json:"cod_received"`
	CompanyApprovedException bool    `json:"company_approved_exception"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RatePerCuft prefers the contract rate; the list rate only applies when no
// contract rate was agreed.
func (l *Load) RatePerCuft() float64 {
	if l.ContractRatePerCuft > 0 {
		return l.ContractRatePerCuft
	}
	return l.ListRatePerCuft
}

// IsTrusted reports whether the owning company may take delivery on credit.
func (l *Load) IsTrusted() bool {
	return l.CompanyTrust == TrustTrusted
}
