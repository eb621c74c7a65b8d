package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"siteops/internal/model"
)

type TaskRepository struct {
	db *gorm.DB
}

type TaskRepositoryInterface interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error)
	GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	ReplaceLineItems(ctx context.Context, task *model.Task, materials []model.TaskMaterial, labor []model.TaskLabor) error
	Delete(ctx context.Context, id uuid.UUID) error
}

var _ TaskRepositoryInterface = (*TaskRepository)(nil)

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create adds a new task, including any line items already attached to it
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// GetByID retrieves a task with its material and labor line items in
// position order
func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	result := r.db.WithContext(ctx).
		Preload("Materials", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Labor", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&task, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, result.Error
	}
	return &task, nil
}

// GetByProjectID retrieves all tasks of a project ordered the way the
// planning view consumes them
func (r *TaskRepository) GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).
		Preload("Materials", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Labor", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("project_id = ?", projectID).
		Order("planned_start_date, phase_id, created_at").
		Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// Update saves scalar task fields
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	result := r.db.WithContext(ctx).Omit("Materials", "Labor").Save(task)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// ReplaceLineItems swaps the task's material and labor lines for the given
// sets and persists the task's recomputed cost fields in one transaction.
// The caller is expected to have run the cost aggregation on task already.
func (r *TaskRepository) ReplaceLineItems(ctx context.Context, task *model.Task, materials []model.TaskMaterial, labor []model.TaskLabor) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", task.ID).Delete(&model.TaskMaterial{}).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", task.ID).Delete(&model.TaskLabor{}).Error; err != nil {
			return err
		}
		for i := range materials {
			materials[i].ID = uuid.New()
			materials[i].TaskID = task.ID
			materials[i].Position = i
		}
		for i := range labor {
			labor[i].ID = uuid.New()
			labor[i].TaskID = task.ID
			labor[i].Position = i
		}
		if len(materials) > 0 {
			if err := tx.Create(&materials).Error; err != nil {
				return err
			}
		}
		if len(labor) > 0 {
			if err := tx.Create(&labor).Error; err != nil {
				return err
			}
		}
		task.Materials = materials
		task.Labor = labor
		return tx.Omit("Materials", "Labor").Save(task).Error
	})
}

// Delete removes a task by its ID together with its line items. Other
// tasks referencing it via parent_task_id are left untouched.
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&model.TaskMaterial{}).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", id).Delete(&model.TaskLabor{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Task{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTaskNotFound
		}
		return nil
	})
}
