package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"siteops/internal/model"
)

type MaterialRepository struct {
	db *gorm.DB
}

type MaterialRepositoryInterface interface {
	Create(ctx context.Context, material *model.Material) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Material, error)
	GetAll(ctx context.Context, categoryID *uuid.UUID, limit, offset int) ([]model.Material, error)
	Update(ctx context.Context, material *model.Material) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	GetCategories(ctx context.Context) ([]model.MaterialCategory, error)
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*model.MaterialCategory, error)
}

var _ MaterialRepositoryInterface = (*MaterialRepository)(nil)

func NewMaterialRepository(db *gorm.DB) *MaterialRepository {
	return &MaterialRepository{db: db}
}

// Create adds a new material to the database
func (r *MaterialRepository) Create(ctx context.Context, material *model.Material) error {
	return r.db.WithContext(ctx).Create(material).Error
}

// GetByID retrieves an active material by its ID
func (r *MaterialRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Material, error) {
	var material model.Material
	result := r.db.WithContext(ctx).First(&material, "id = ? AND is_active = ?", id, true)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrMaterialNotFound
		}
		return nil, result.Error
	}
	return &material, nil
}

// GetAll retrieves active materials with optional category filtering and
// pagination
func (r *MaterialRepository) GetAll(ctx context.Context, categoryID *uuid.UUID, limit, offset int) ([]model.Material, error) {
	query := r.db.WithContext(ctx).Where("is_active = ?", true)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	var materials []model.Material
	result := query.Order("name").Limit(limit).Offset(offset).Find(&materials)
	if result.Error != nil {
		return nil, result.Error
	}
	return materials, nil
}

// Update updates an existing material
func (r *MaterialRepository) Update(ctx context.Context, material *model.Material) error {
	result := r.db.WithContext(ctx).Save(material)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMaterialNotFound
	}
	return nil
}

// Deactivate soft-deletes a material by clearing is_active
func (r *MaterialRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.Material{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMaterialNotFound
	}
	return nil
}

// GetCategories retrieves all material categories
func (r *MaterialRepository) GetCategories(ctx context.Context) ([]model.MaterialCategory, error) {
	var categories []model.MaterialCategory
	result := r.db.WithContext(ctx).Order("level, name").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}

// GetCategoryByID retrieves one material category
func (r *MaterialRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (*model.MaterialCategory, error) {
	var category model.MaterialCategory
	result := r.db.WithContext(ctx).First(&category, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return &category, nil
}
