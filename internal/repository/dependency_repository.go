package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"siteops/internal/model"
)

type DependencyRepository struct {
	db *gorm.DB
}

type DependencyRepositoryInterface interface {
	Create(ctx context.Context, dep *model.TaskDependency) error
	GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]model.TaskDependency, error)
	Delete(ctx context.Context, successorID, predecessorID uuid.UUID) error
}

var _ DependencyRepositoryInterface = (*DependencyRepository)(nil)

func NewDependencyRepository(db *gorm.DB) *DependencyRepository {
	return &DependencyRepository{db: db}
}

// Create adds a precedence edge, rejecting exact duplicates
func (r *DependencyRepository) Create(ctx context.Context, dep *model.TaskDependency) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TaskDependency{}).
		Where("predecessor_id = ? AND successor_id = ?", dep.PredecessorID, dep.SuccessorID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDependencyExists
	}
	return r.db.WithContext(ctx).Create(dep).Error
}

// GetByProjectID retrieves all precedence edges of a project
func (r *DependencyRepository) GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]model.TaskDependency, error) {
	var deps []model.TaskDependency
	result := r.db.WithContext(ctx).Where("project_id = ?", projectID).Find(&deps)
	if result.Error != nil {
		return nil, result.Error
	}
	return deps, nil
}

// Delete removes the edge predecessor -> successor
func (r *DependencyRepository) Delete(ctx context.Context, successorID, predecessorID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("successor_id = ? AND predecessor_id = ?", successorID, predecessorID).
		Delete(&model.TaskDependency{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDependencyNotFound
	}
	return nil
}
