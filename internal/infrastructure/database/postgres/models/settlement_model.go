package models

import (
	"time"

	"github.com/google/uuid"
)

type SettlementModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	TripID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	DriverID uuid.UUID `gorm:"type:uuid;not null;index"`

	Status string `gorm:"type:varchar(20);not null;default:'draft'"`

	TotalRevenue   float64 `gorm:"not null;default:0"`
	TotalDriverPay float64 `gorm:"not null;default:0"`
	TotalExpenses  float64 `gorm:"not null;default:0"`
	TotalProfit    float64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SettlementModel) TableName() string {
	return "trip_settlements"
}

type LineItemModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SettlementID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Category     string     `gorm:"type:varchar(20);not null"`
	Description  string     `gorm:"type:text"`
	Amount       float64    `gorm:"not null;default:0"`
	LoadID       *uuid.UUID `gorm:"type:uuid"`
	CompanyID    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time
}

func (LineItemModel) TableName() string {
	return "settlement_line_items"
}

type ReceivableModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	SettlementID uuid.UUID `gorm:"type:uuid;not null;index"`
	TripID       uuid.UUID `gorm:"type:uuid;not null;index"`
	CompanyID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CompanyName  string    `gorm:"type:varchar(255);not null"`
	Amount       float64   `gorm:"not null;default:0"`
	CreatedAt    time.Time
}

func (ReceivableModel) TableName() string {
	return "company_receivables"
}

type PayableModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	SettlementID uuid.UUID `gorm:"type:uuid;not null;index"`
	TripID       uuid.UUID `gorm:"type:uuid;not null;index"`
	DriverID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount       float64   `gorm:"not null;default:0"`
	CreatedAt    time.Time
}

func (PayableModel) TableName() string {
	return "driver_payables"
}
