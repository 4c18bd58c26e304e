package trip

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPlanned   Status = "planned"   // Trip created, not yet dispatched
	StatusActive    Status = "active"    // Truck on the road
	StatusCompleted Status = "completed" // All loads delivered
	StatusSettled   Status = "settled"   // Financials closed out
)

type PaidBy string

const (
	PaidByCompanyCard    PaidBy = "company_card"
	PaidByDriverPersonal PaidBy = "driver_personal"
	PaidByDriverCash     PaidBy = "driver_cash"
)

// Trip represents one truck's run: a driver, a set of loads, and the expenses
// accumulated along the way.
type Trip struct {
	ID       uuid.UUID  `json:"id"`
	OwnerID  uuid.UUID  `json:"owner_id"`
	DriverID uuid.UUID  `json:"driver_id"`
	TruckID  *uuid.UUID `json:"truck_id"`

	Status Status `json:"status"`

	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`

	// Odometer evidence, required before settlement
	OdometerStart      *float64 `json:"odometer_start"`
	OdometerEnd        *float64 `json:"odometer_end"`
	OdometerStartPhoto *string  `json:"odometer_start_photo"`
	OdometerEndPhoto   *string  `json:"odometer_end_photo"`

	// Summary fields, written back at settlement time
	TotalRevenue       float64 `json:"total_revenue"`
	TotalDriverPay     float64 `json:"total_driver_pay"`
	TotalFuel          float64 `json:"total_fuel"`
	TotalTolls         float64 `json:"total_tolls"`
	TotalOtherExpenses float64 `json:"total_other_expenses"`
	TotalProfit        float64 `json:"total_profit"`
	ActualMiles        float64 `json:"actual_miles"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Expense is a cost recorded against a trip while it runs.
type Expense struct {
	ID          uuid.UUID `json:"id"`
	TripID      uuid.UUID `json:"trip_id"`
	Category    string    `json:"category"` // fuel, tolls, driver_pay, or free-form
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	PaidBy      PaidBy    `json:"paid_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// DriverFronted reports whether the driver paid out of pocket and is owed the
// amount back at settlement.
func (e *Expense) DriverFronted() bool {
	return e.PaidBy == PaidByDriverPersonal || e.PaidBy == PaidByDriverCash
}

// Summary carries the settlement-derived totals written back onto the trip row.
type Summary struct {
	TotalRevenue       float64
	TotalDriverPay     float64
	TotalFuel          float64
	TotalTolls         float64
	TotalOtherExpenses float64
	TotalProfit        float64
	ActualMiles        float64
}
