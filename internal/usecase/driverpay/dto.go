package driverpay

import (
	"time"

	"moveboss/internal/domain/driver"

	"github.com/google/uuid"
)

type UpsertPayPlanRequest struct {
	Mode             string  `json:"pay_mode" validate:"required,pay_mode"`
	RatePerMile      float64 `json:"rate_per_mile" validate:"gte=0"`
	RatePerCuft      float64 `json:"rate_per_cuft" validate:"gte=0"`
	PercentOfRevenue float64 `json:"percent_of_revenue" validate:"gte=0,lte=100"`
	FlatDailyRate    float64 `json:"flat_daily_rate" validate:"gte=0"`
}

type PayPlanResponse struct {
	ID               uuid.UUID `json:"id"`
	DriverID         uuid.UUID `json:"driver_id"`
	Mode             string    `json:"pay_mode"`
	RatePerMile      float64   `json:"rate_per_mile"`
	RatePerCuft      float64   `json:"rate_per_cuft"`
	PercentOfRevenue float64   `json:"percent_of_revenue"`
	FlatDailyRate    float64   `json:"flat_daily_rate"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func ToPayPlanResponse(plan *driver.PayPlan) *PayPlanResponse {
	return &PayPlanResponse{
		ID:               plan.ID,
		DriverID:         plan.DriverID,
		Mode:             string(plan.Mode),
		RatePerMile:      plan.RatePerMile,
		RatePerCuft:      plan.RatePerCuft,
		PercentOfRevenue: plan.PercentOfRevenue,
		FlatDailyRate:    plan.FlatDailyRate,
		CreatedAt:        plan.CreatedAt,
		UpdatedAt:        plan.UpdatedAt,
	}
}
