package models

import (
	"time"

	"github.com/google/uuid"
)

type CompanyModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(255);not null"`
	TrustLevel string    `gorm:"type:varchar(20);not null;default:'cod_required'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (CompanyModel) TableName() string {
	return "companies"
}

type LoadModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TripID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`

	CuftLoaded          float64 `gorm:"not null;default:0"`
	ContractRatePerCuft float64 `gorm:"not null;default:0"`
	ListRatePerCuft     float64 `gorm:"not null;default:0"`

	ContractStairs    float64 `gorm:"not null;default:0"`
	ContractShuttle   float64 `gorm:"not null;default:0"`
	ContractLongCarry float64 `gorm:"not null;default:0"`
	ContractPacking   float64 `gorm:"not null;default:0"`
	ContractBulky     float64 `gorm:"not null;default:0"`
	ContractOther     float64 `gorm:"not null;default:0"`

	ExtraStairs    float64 `gorm:"not null;default:0"`
	ExtraShuttle   float64 `gorm:"not null;default:0"`
	ExtraLongCarry float64 `gorm:"not null;default:0"`
	ExtraPacking   float64 `gorm:"not null;default:0"`
	ExtraBulky     float64 `gorm:"not null;default:0"`
	ExtraOther     float64 `gorm:"not null;default:0"`

	StorageMoveInFee  float64 `gorm:"not null;default:0"`
	StorageDailyFee   float64 `gorm:"not null;default:0"`
	StorageDaysBilled int     `gorm:"not null;default:0"`
	IsStorageDrop     bool    `gorm:"not null;default:false"`

	CollectedOnDelivery   float64 `gorm:"not null;default:0"`
	PaidDirectlyToCompany float64 `gorm:"not null;default:0"`

	CustomerBalance          float64 `gorm:"not null;default:0"`
	CODReceived              bool    `gorm:"column:cod_received;not null;default:false"`
	CompanyApprovedException bool    `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Company *CompanyModel `gorm:"foreignKey:CompanyID"`
}

func (LoadModel) TableName() string {
	return "loads"
}
