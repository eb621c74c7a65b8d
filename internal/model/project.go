package model

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"not null"`
	Description      string
	LocationAddress  string
	City             string
	State            string
	Budget           float64 `gorm:"not null;default:0"`
	Status           string  `gorm:"not null;default:'planning'"`
	StartDate        *time.Time
	TargetCompletion *time.Time
	BuilderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Builder User `gorm:"foreignKey:BuilderID"`
}

// Статусы проекта
const (
	ProjectStatusPlanning   = "planning"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusCompleted  = "completed"
	ProjectStatusOnHold     = "on_hold"
	ProjectStatusCancelled  = "cancelled"
)

var ProjectStatuses = []string{
	ProjectStatusPlanning,
	ProjectStatusInProgress,
	ProjectStatusCompleted,
	ProjectStatusOnHold,
	ProjectStatusCancelled,
}

func IsValidProjectStatus(s string) bool {
	for _, v := range ProjectStatuses {
		if v == s {
			return true
		}
	}
	return false
}
