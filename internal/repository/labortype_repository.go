package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"siteops/internal/model"
)

type LaborTypeRepository struct {
	db *gorm.DB
}

type LaborTypeRepositoryInterface interface {
	Create(ctx context.Context, laborType *model.LaborType) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.LaborType, error)
	GetAll(ctx context.Context, category, skillLevel string) ([]model.LaborType, error)
	Update(ctx context.Context, laborType *model.LaborType) error
	Delete(ctx context.Context, id uuid.UUID) error
}

var _ LaborTypeRepositoryInterface = (*LaborTypeRepository)(nil)

func NewLaborTypeRepository(db *gorm.DB) *LaborTypeRepository {
	return &LaborTypeRepository{db: db}
}

// Create adds a new labor type to the database
func (r *LaborTypeRepository) Create(ctx context.Context, laborType *model.LaborType) error {
	return r.db.WithContext(ctx).Create(laborType).Error
}

// GetByID retrieves a labor type by its ID
func (r *LaborTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.LaborType, error) {
	var laborType model.LaborType
	result := r.db.WithContext(ctx).First(&laborType, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrLaborTypeNotFound
		}
		return nil, result.Error
	}
	return &laborType, nil
}

// GetAll retrieves labor types with optional category and skill filters
func (r *LaborTypeRepository) GetAll(ctx context.Context, category, skillLevel string) ([]model.LaborType, error) {
	query := r.db.WithContext(ctx).Model(&model.LaborType{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if skillLevel != "" {
		query = query.Where("skill_level = ?", skillLevel)
	}
	var laborTypes []model.LaborType
	result := query.Order("category, skill_level, name").Find(&laborTypes)
	if result.Error != nil {
		return nil, result.Error
	}
	return laborTypes, nil
}

// Update updates an existing labor type
func (r *LaborTypeRepository) Update(ctx context.Context, laborType *model.LaborType) error {
	result := r.db.WithContext(ctx).Save(laborType)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLaborTypeNotFound
	}
	return nil
}

// Delete removes a labor type by its ID
func (r *LaborTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.LaborType{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLaborTypeNotFound
	}
	return nil
}
