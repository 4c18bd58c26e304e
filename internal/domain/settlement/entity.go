package settlement

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusDraft   Status = "draft"
	StatusSettled Status = "settled"
)

// LineItemCategory is a closed set; the builder matches on it exhaustively so a
// new category cannot silently fall through to "expense".
type LineItemCategory string

const (
	CategoryRevenue       LineItemCategory = "revenue"
	CategoryDriverPay     LineItemCategory = "driver_pay"
	CategoryFuel          LineItemCategory = "fuel"
	CategoryTolls         LineItemCategory = "tolls"
	CategoryExpense       LineItemCategory = "expense"
	CategoryReimbursement LineItemCategory = "reimbursement"
)

// Settlement is the authoritative financial closure record for one trip.
type Settlement struct {
	ID       uuid.UUID `json:"id"`
	TripID   uuid.UUID `json:"trip_id"`
	DriverID uuid.UUID `json:"driver_id"`

	Status Status `json:"status"`

	TotalRevenue   float64 `json:"total_revenue"`
	TotalDriverPay float64 `json:"total_driver_pay"`
	TotalExpenses  float64 `json:"total_expenses"`
	TotalProfit    float64 `json:"total_profit"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	LineItems   []*LineItem   `json:"line_items,omitempty"`
	Receivables []*Receivable `json:"receivables,omitempty"`
	Payable     *Payable      `json:"payable,omitempty"`
}

// LineItem is one row of the settlement breakdown. Line items of a category
// must sum to the settlement's top-level total for that category.
type LineItem struct {
	ID           uuid.UUID        `json:"id"`
	SettlementID uuid.UUID        `json:"settlement_id"`
	Category     LineItemCategory `json:"category"`
	Description  string           `json:"description"`
	Amount       float64          `json:"amount"`
	LoadID       *uuid.UUID       `json:"load_id,omitempty"`
	CompanyID    *uuid.UUID       `json:"company_id,omitempty"`
}

// Receivable is money a shipping company owes the carrier after a trip.
type Receivable struct {
	ID           uuid.UUID `json:"id"`
	SettlementID uuid.UUID `json:"settlement_id"`
	TripID       uuid.UUID `json:"trip_id"`
	CompanyID    uuid.UUID `json:"company_id"`
	CompanyName  string    `json:"company_name"`
	Amount       float64   `json:"amount"`
	CreatedAt    time.Time `json:"created_at"`
}

// Payable is money the carrier owes the assigned driver after a trip.
type Payable struct {
	ID           uuid.UUID `json:"id"`
	SettlementID uuid.UUID `json:"settlement_id"`
	TripID       uuid.UUID `json:"trip_id"`
	DriverID     uuid.UUID `json:"driver_id"`
	Amount       float64   `json:"amount"`
	CreatedAt    time.Time `json:"created_at"`
}
