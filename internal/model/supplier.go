package model

import (
	"time"

	"github.com/google/uuid"
)

type Supplier struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"not null"`
	ContactPerson string
	Email         string
	Phone         string
	City          string
	State         string
	Rating        float64   `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

// MaterialPrice хранит запись истории цен материала у конкретного поставщика
type MaterialPrice struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	MaterialID uuid.UUID `gorm:"type:uuid;not null;index"`
	SupplierID uuid.UUID `gorm:"type:uuid;not null;index"`
	UnitCost   float64   `gorm:"not null"`
	CostDate   time.Time `gorm:"not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`

	Material Material `gorm:"foreignKey:MaterialID"`
	Supplier Supplier `gorm:"foreignKey:SupplierID"`
}
