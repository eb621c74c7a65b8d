package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskDependency представляет ребро предшествования между двумя задачами
// одного проекта. Используется расчетом расписания (критический путь);
// поле Task.ParentTaskID остается независимой одиночной ссылкой.
type TaskDependency struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProjectID     uuid.UUID `gorm:"type:uuid;not null;index"`
	PredecessorID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_dependency_edge"`
	SuccessorID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_dependency_edge"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`

	Project     Project `gorm:"foreignKey:ProjectID"`
	Predecessor Task    `gorm:"foreignKey:PredecessorID"`
	Successor   Task    `gorm:"foreignKey:SuccessorID"`
}
