package finance

import (
	"testing"
	"time"

	"moveboss/internal/domain/driver"
)

func TestCalculateDriverPay_PerMileAndCuft(t *testing.T) {
	plan := &driver.PayPlan{
		Mode:        driver.PayPerMileAndCuft,
		RatePerMile: 0.55,
		RatePerCuft: 0.10,
	}
	agg := TripAggregates{ActualMiles: 400, TotalCuftLoaded: 1200}

	pay := CalculateDriverPay(plan, agg)

	if len(pay.Items) != 2 {
		t.Fatalf("got %d pay items, want 2", len(pay.Items))
	}
	if pay.Items[0].Description != "Per mile" {
		t.Errorf("first item = %q, want Per mile", pay.Items[0].Description)
	}
	nearlyEqual(t, "per mile", pay.Items[0].Amount, 220)
	if pay.Items[1].Description != "Per cuft" {
		t.Errorf("second item = %q, want Per cuft", pay.Items[1].Description)
	}
	nearlyEqual(t, "per cuft", pay.Items[1].Amount, 120)
	nearlyEqual(t, "total", pay.Total, 340)
}

func TestCalculateDriverPay_PercentOfRevenue(t *testing.T) {
	plan := &driver.PayPlan{Mode: driver.PayPercentOfRevenue, PercentOfRevenue: 25}
	pay := CalculateDriverPay(plan, TripAggregates{RevenueBase: 8421.37})

	if len(pay.Items) != 1 {
		t.Fatalf("got %d pay items, want 1", len(pay.Items))
	}
	nearlyEqual(t, "percent of revenue", pay.Items[0].Amount, 2105.34)
	nearlyEqual(t, "total", pay.Total, 2105.34)
}

func TestCalculateDriverPay_FlatDailyRate(t *testing.T) {
	plan := &driver.PayPlan{Mode: driver.PayFlatDailyRate, FlatDailyRate: 250}

	threeDays := CalculateDriverPay(plan, TripAggregates{DaysWorked: 3})
	nearlyEqual(t, "three days", threeDays.Total, 750)

	// Zero days defaults to one billable day.
	unset := CalculateDriverPay(plan, TripAggregates{})
	nearlyEqual(t, "default day", unset.Total, 250)
}

func TestCalculateDriverPay_IgnoresUnrelatedRateFields(t *testing.T) {
	plan := &driver.PayPlan{
		Mode:          driver.PayPerMile,
		RatePerMile:   0.60,
		RatePerCuft:   99,
		FlatDailyRate: 500,
	}
	pay := CalculateDriverPay(plan, TripAggregates{ActualMiles: 100, TotalCuftLoaded: 1000, DaysWorked: 5})

	if len(pay.Items) != 1 {
		t.Fatalf("got %d pay items, want 1", len(pay.Items))
	}
	nearlyEqual(t, "total", pay.Total, 60)
}

func TestCalculateDriverPay_ZeroItemsOmitted(t *testing.T) {
	plan := &driver.PayPlan{Mode: driver.PayPerMileAndCuft, RatePerMile: 0.55}
	pay := CalculateDriverPay(plan, TripAggregates{ActualMiles: 100, TotalCuftLoaded: 1200})

	if len(pay.Items) != 1 {
		t.Fatalf("got %d pay items, want 1 (zero cuft rate must be omitted)", len(pay.Items))
	}
	nearlyEqual(t, "total", pay.Total, 55)
}

func TestCalculateDriverPay_UnknownModeYieldsZero(t *testing.T) {
	plan := &driver.PayPlan{Mode: "per_stop", RatePerMile: 1}
	pay := CalculateDriverPay(plan, TripAggregates{ActualMiles: 100})

	if len(pay.Items) != 0 || pay.Total != 0 {
		t.Fatalf("unknown mode produced pay: %+v", pay)
	}

	nilPlan := CalculateDriverPay(nil, TripAggregates{ActualMiles: 100})
	if len(nilPlan.Items) != 0 || nilPlan.Total != 0 {
		t.Fatalf("nil plan produced pay: %+v", nilPlan)
	}
}

func TestDaysWorked(t *testing.T) {
	day := func(d int) *time.Time {
		ts := time.Date(2025, time.March, d, 14, 30, 0, 0, time.UTC)
		return &ts
	}

	tests := []struct {
		name  string
		start *time.Time
		end   *time.Time
		want  int
	}{
		{"same day", day(3), day(3), 1},
		{"inclusive span", day(3), day(7), 5},
		{"missing start", nil, day(7), 1},
		{"missing end", day(3), nil, 1},
		{"end before start", day(7), day(3), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysWorked(tt.start, tt.end); got != tt.want {
				t.Errorf("DaysWorked = %d, want %d", got, tt.want)
			}
		})
	}
}
