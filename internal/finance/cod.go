package finance

import (
	"fmt"

	"moveboss/internal/domain/load"
)

type AlertLevel string

const (
	AlertSuccess AlertLevel = "success"
	AlertWarning AlertLevel = "warning"
	AlertDanger  AlertLevel = "danger"
)

// PreDeliveryInput is everything the COD decision needs, passed in explicitly.
// The evaluator never reads live company or load state on its own.
type PreDeliveryInput struct {
	CuftLoaded           float64
	RatePerCuft          float64
	ContractAccessorials load.Accessorials

	CustomerBalance float64

	TrustLevel               load.TrustLevel
	CODReceived              bool
	CompanyApprovedException bool
	CompanyName              string
}

// PreDeliveryCheck is the advisory result shown to the driver at the door.
// The status message, action and alert level are displayed verbatim by the
// mobile app.
type PreDeliveryCheck struct {
	CarrierRate     float64 `json:"carrier_rate"`
	CustomerBalance float64 `json:"customer_balance"`
	Shortfall       float64 `json:"shortfall"`

	IsTrusted         bool    `json:"is_trusted"`
	RequiresCOD       bool    `json:"requires_cod"`
	CODAmountRequired float64 `json:"cod_amount_required"`

	StatusMessage  string     `json:"status_message"`
	ActionRequired string     `json:"action_required"`
	AlertLevel     AlertLevel `json:"alert_level"`
}

// EvaluatePreDelivery decides whether cash must be collected before unloading.
// The carrier rate counts linehaul and contract accessorials only; extras and
// storage are day-of charges, not part of the pre-agreed rate being protected.
//
// COD is required only when all four hold: the company requires COD, there is
// a positive shortfall, COD has not already been received, and no
// company-approved exception exists. The branches below are ordered
// first-match-wins; each override answers before trust is even considered.
func EvaluatePreDelivery(in PreDeliveryInput) PreDeliveryCheck {
	contract := breakdownAccessorials(in.ContractAccessorials)
	carrierRate := Round(amount(in.CuftLoaded)*amount(in.RatePerCuft) + contract.Total)
	balance := amount(in.CustomerBalance)
	shortfall := Round(carrierRate - balance)

	result := PreDeliveryCheck{
		CarrierRate:     carrierRate,
		CustomerBalance: balance,
		Shortfall:       shortfall,
		IsTrusted:       in.TrustLevel == load.TrustTrusted,
		AlertLevel:      AlertSuccess,
	}

	collectAndDeliver := "Proceed with delivery."
	if balance > 0 {
		collectAndDeliver = fmt.Sprintf("Collect the remaining customer balance of $%.2f, then proceed with delivery.", balance)
	}

	switch {
	case in.CODReceived:
		result.StatusMessage = fmt.Sprintf("COD has already been received from %s.", in.CompanyName)
		result.ActionRequired = collectAndDeliver

	case in.CompanyApprovedException:
		result.StatusMessage = fmt.Sprintf("%s approved delivery without COD for this load.", in.CompanyName)
		result.ActionRequired = collectAndDeliver

	case result.IsTrusted:
		if shortfall > 0 {
			result.StatusMessage = fmt.Sprintf("%s is a trusted company and will pay the remaining $%.2f after delivery.", in.CompanyName, shortfall)
		} else {
			result.StatusMessage = "Customer balance covers the carrier rate."
		}
		result.ActionRequired = collectAndDeliver

	default:
		if shortfall > 0 {
			result.RequiresCOD = true
			result.CODAmountRequired = shortfall
			result.AlertLevel = AlertDanger
			result.StatusMessage = fmt.Sprintf("%s requires COD and the customer balance is $%.2f short of the carrier rate.", in.CompanyName, shortfall)
			result.ActionRequired = fmt.Sprintf("DO NOT UNLOAD. Collect $%.2f COD from %s before unloading.", shortfall, in.CompanyName)
		} else {
			result.StatusMessage = "Customer balance covers the carrier rate. No COD is required."
			result.ActionRequired = collectAndDeliver
		}
	}

	return result
}
