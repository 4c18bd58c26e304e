package finance

import (
	"time"

	"moveboss/internal/domain/driver"
)

// TripAggregates are the trip-level numbers driver pay is computed from.
type TripAggregates struct {
	ActualMiles     float64
	TotalCuftLoaded float64
	RevenueBase     float64
	DaysWorked      int
}

// PayItem is one named component of a driver's pay for a trip.
type PayItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// DriverPay is the itemized pay for one trip.
type DriverPay struct {
	Items []PayItem `json:"items"`
	Total float64   `json:"total"`
}

// CalculateDriverPay prices a trip under the driver's pay plan. Only the rate
// fields of the selected mode are read. Items that price to zero or less are
// dropped, and an unknown or missing plan yields zero pay rather than an
// error; plan validation belongs to whoever maintains pay plans.
func CalculateDriverPay(plan *driver.PayPlan, agg TripAggregates) DriverPay {
	pay := DriverPay{Items: []PayItem{}}
	if plan == nil {
		return pay
	}

	miles := amount(agg.ActualMiles)
	cuft := amount(agg.TotalCuftLoaded)
	revenue := amount(agg.RevenueBase)
	days := agg.DaysWorked
	if days < 1 {
		days = 1
	}

	switch plan.Mode {
	case driver.PayPerMile:
		pay.add("Per mile", Round(miles*amount(plan.RatePerMile)))
	case driver.PayPerCuft:
		pay.add("Per cuft", Round(cuft*amount(plan.RatePerCuft)))
	case driver.PayPerMileAndCuft:
		pay.add("Per mile", Round(miles*amount(plan.RatePerMile)))
		pay.add("Per cuft", Round(cuft*amount(plan.RatePerCuft)))
	case driver.PayPercentOfRevenue:
		pay.add("Percent of revenue", Round(revenue*amount(plan.PercentOfRevenue)/100))
	case driver.PayFlatDailyRate:
		pay.add("Daily rate", Round(amount(plan.FlatDailyRate)*float64(days)))
	}

	return pay
}

func (p *DriverPay) add(description string, amount float64) {
	if amount <= 0 {
		return
	}
	p.Items = append(p.Items, PayItem{Description: description, Amount: amount})
	p.Total = Round(p.Total + amount)
}

// DaysWorked is the inclusive day span between the trip's start and end dates.
// A trip missing either date counts as a single day.
func DaysWorked(start, end *time.Time) int {
	if start == nil || end == nil {
		return 1
	}
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	days := int(e.Sub(s).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}
