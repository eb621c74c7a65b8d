package model

import (
	"time"

	"github.com/google/uuid"
)

type MaterialCategory struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null;uniqueIndex"`
	Description string
	ParentID    *uuid.UUID `gorm:"type:uuid"`
	Level       int        `gorm:"not null;default:1"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
}

type Material struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"not null"`
	CategoryID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Unit            string    `gorm:"not null"`
	BaseCostPerUnit float64   `gorm:"not null"`
	Properties      string    // произвольные свойства в виде JSON
	IsActive        bool      `gorm:"not null;default:true"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`

	Category MaterialCategory `gorm:"foreignKey:CategoryID"`
}
