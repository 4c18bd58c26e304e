package models

import (
	"time"

	"github.com/google/uuid"
)

type TripModel struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	DriverID uuid.UUID  `gorm:"type:uuid;not null;index"`
	TruckID  *uuid.UUID `gorm:"type:uuid"`

	Status string `gorm:"type:varchar(20);not null;default:'planned'"`

	StartDate *time.Time
	EndDate   *time.Time

	OdometerStart      *float64
	OdometerEnd        *float64
	OdometerStartPhoto *string `gorm:"type:text"`
	OdometerEndPhoto   *string `gorm:"type:text"`

	TotalRevenue       float64 `gorm:"not null;default:0"`
	TotalDriverPay     float64 `gorm:"not null;default:0"`
	TotalFuel          float64 `gorm:"not null;default:0"`
	TotalTolls         float64 `gorm:"not null;default:0"`
	TotalOtherExpenses float64 `gorm:"not null;default:0"`
	TotalProfit        float64 `gorm:"not null;default:0"`
	ActualMiles        float64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (TripModel) TableName() string {
	return "trips"
}

type ExpenseModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TripID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Category    string    `gorm:"type:varchar(50);not null"`
	Description string    `gorm:"type:text"`
	Amount      float64   `gorm:"not null;default:0"`
	PaidBy      string    `gorm:"type:varchar(20);not null;default:'company_card'"`
	CreatedAt   time.Time
}

func (ExpenseModel) TableName() string {
	return "trip_expenses"
}
