package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email          string    `gorm:"uniqueIndex;not null"`
	HashedPassword string    `gorm:"not null"`
	FullName       string    `gorm:"not null"`
	Role           string    `gorm:"not null;default:'builder'"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

// Роли пользователей системы
const (
	RoleAdmin   = "admin"   // полный доступ
	RoleBuilder = "builder" // владелец проектов
	RoleManager = "manager" // управление задачами
	RoleWorker  = "worker"  // обновление прогресса
	RoleViewer  = "viewer"  // только чтение
)
