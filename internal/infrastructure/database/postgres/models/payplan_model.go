package models

import (
	"time"

	"github.com/google/uuid"
)

type PayPlanModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	DriverID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`

	PayMode string `gorm:"type:varchar(30);not null"`

	RatePerMile      float64 `gorm:"not null;default:0"`
	RatePerCuft      float64 `gorm:"not null;default:0"`
	PercentOfRevenue float64 `gorm:"not null;default:0"`
	FlatDailyRate    float64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PayPlanModel) TableName() string {
	return "driver_pay_plans"
}
