package model

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProjectID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	ParentTaskID      *uuid.UUID `gorm:"type:uuid"`
	Name              string     `gorm:"not null"`
	Description       string
	PhaseID           int `gorm:"index"`
	ComponentID       int
	DurationDays      int `gorm:"not null;default:1"`
	PlannedStartDate  *time.Time
	PlannedFinishDate *time.Time
	ActualStartDate   *time.Time
	ActualFinishDate  *time.Time
	PercentComplete   float64 `gorm:"not null;default:0"`
	Status            string  `gorm:"not null;default:'pending'"`
	Priority          string  `gorm:"not null;default:'medium'"`
	MaterialCost      float64 `gorm:"not null;default:0"`
	LaborCost         float64 `gorm:"not null;default:0"`
	TotalCost         float64 `gorm:"not null;default:0"`
	ActualCost        float64 `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Project   Project        `gorm:"foreignKey:ProjectID"`
	Materials []TaskMaterial `gorm:"foreignKey:TaskID"`
	Labor     []TaskLabor    `gorm:"foreignKey:TaskID"`
}

// TaskMaterial описывает строку сметы материалов задачи
type TaskMaterial struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	TaskID     uuid.UUID `gorm:"type:uuid;not null;index"`
	MaterialID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity   float64   `gorm:"not null"`
	UnitCost   float64   `gorm:"not null"`
	Position   int       `gorm:"not null"`
}

// TaskLabor описывает строку трудозатрат задачи. Поля Days и Hours заполняются
// в зависимости от типа: daily использует Days, hourly и skill_based используют Hours.
type TaskLabor struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	TaskID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Type     string    `gorm:"not null;check:type IN ('daily', 'hourly', 'skill_based')"`
	Workers  int       `gorm:"not null"`
	Rate     float64   `gorm:"not null"`
	Days     int
	Hours    float64
	Position int `gorm:"not null"`
}

// Статусы задачи
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
	TaskStatusOnHold     = "on_hold"
	TaskStatusCancelled  = "cancelled"
)

// Приоритеты задачи
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Типы трудозатрат
const (
	LaborTypeDaily      = "daily"
	LaborTypeHourly     = "hourly"
	LaborTypeSkillBased = "skill_based"
)

var TaskStatuses = []string{
	TaskStatusPending,
	TaskStatusInProgress,
	TaskStatusCompleted,
	TaskStatusOnHold,
	TaskStatusCancelled,
}

var TaskPriorities = []string{PriorityLow, PriorityMedium, PriorityHigh}

func IsValidTaskStatus(s string) bool {
	for _, v := range TaskStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func IsValidTaskPriority(p string) bool {
	for _, v := range TaskPriorities {
		if v == p {
			return true
		}
	}
	return false
}
