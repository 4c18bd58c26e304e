package driver

import (
	"time"

	"github.com/google/uuid"
)

// PayMode selects how a driver is paid for a trip. Exactly one mode applies;
// rate fields outside the selected mode are ignored even when populated.
type PayMode string

const (
	PayPerMile          PayMode = "per_mile"
	PayPerCuft          PayMode = "per_cuft"
	PayPerMileAndCuft   PayMode = "per_mile_and_cuft"
	PayPercentOfRevenue PayMode = "percent_of_revenue"
	PayFlatDailyRate    PayMode = "flat_daily_rate"
)

// PayPlan is a driver's compensation agreement.
type PayPlan struct {
	ID       uuid.UUID `json:"id"`
	DriverID uuid.UUID `json:"driver_id"`

	Mode PayMode `json:"pay_mode"`

	RatePerMile      float64 `json:"rate_per_mile"`
	RatePerCuft      float64 `json:"rate_per_cuft"`
	PercentOfRevenue float64 `json:"percent_of_revenue"`
	FlatDailyRate    float64 `json:"flat_daily_rate"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
