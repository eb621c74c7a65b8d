package model

import (
	"time"

	"github.com/google/uuid"
)

// LaborType описывает справочник видов работ с расценками
type LaborType struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"not null"`
	Category         string    `gorm:"not null"`
	SkillLevel       string    `gorm:"not null"`
	HourlyRate       float64   `gorm:"not null"`
	DailyRate        float64   `gorm:"not null"`
	JobRate          *float64
	Unit             string
	Description      string
	ApplicablePhases string    // идентификаторы фаз через запятую
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}
