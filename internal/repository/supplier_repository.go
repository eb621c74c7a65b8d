package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"siteops/internal/model"
)

type SupplierRepository struct {
	db *gorm.DB
}

type SupplierRepositoryInterface interface {
	Create(ctx context.Context, supplier *model.Supplier) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Supplier, error)
	GetAll(ctx context.Context, city, state string, minRating float64) ([]model.Supplier, error)
	Update(ctx context.Context, supplier *model.Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddPrice(ctx context.Context, price *model.MaterialPrice) error
	GetPricesByMaterial(ctx context.Context, materialID uuid.UUID) ([]model.MaterialPrice, error)
}

var _ SupplierRepositoryInterface = (*SupplierRepository)(nil)

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

// Create adds a new supplier to the database
func (r *SupplierRepository) Create(ctx context.Context, supplier *model.Supplier) error {
	return r.db.WithContext(ctx).Create(supplier).Error
}

// GetByID retrieves a supplier by its ID
func (r *SupplierRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Supplier, error) {
	var supplier model.Supplier
	result := r.db.WithContext(ctx).First(&supplier, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, result.Error
	}
	return &supplier, nil
}

// GetAll retrieves suppliers with optional city/state/rating filters,
// best rated first
func (r *SupplierRepository) GetAll(ctx context.Context, city, state string, minRating float64) ([]model.Supplier, error) {
	query := r.db.WithContext(ctx).Model(&model.Supplier{})
	if city != "" {
		query = query.Where("city LIKE ?", "%"+city+"%")
	}
	if state != "" {
		query = query.Where("state LIKE ?", "%"+state+"%")
	}
	if minRating > 0 {
		query = query.Where("rating >= ?", minRating)
	}
	var suppliers []model.Supplier
	result := query.Order("rating DESC, name").Find(&suppliers)
	if result.Error != nil {
		return nil, result.Error
	}
	return suppliers, nil
}

// Update updates an existing supplier
func (r *SupplierRepository) Update(ctx context.Context, supplier *model.Supplier) error {
	result := r.db.WithContext(ctx).Save(supplier)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSupplierNotFound
	}
	return nil
}

// Delete removes a supplier by its ID
func (r *SupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Supplier{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSupplierNotFound
	}
	return nil
}

// AddPrice records a supplier quote for a material
func (r *SupplierRepository) AddPrice(ctx context.Context, price *model.MaterialPrice) error {
	return r.db.WithContext(ctx).Create(price).Error
}

// GetPricesByMaterial retrieves the price history of a material,
// newest first
func (r *SupplierRepository) GetPricesByMaterial(ctx context.Context, materialID uuid.UUID) ([]model.MaterialPrice, error) {
	var prices []model.MaterialPrice
	result := r.db.WithContext(ctx).
		Preload("Supplier").
		Where("material_id = ?", materialID).
		Order("cost_date DESC").
		Find(&prices)
	if result.Error != nil {
		return nil, result.Error
	}
	return prices, nil
}
