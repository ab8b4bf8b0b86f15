package repository

import (
	"context"
	"fmt"

	"property-manager-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PropertyRepository handles database operations for properties
type PropertyRepository struct {
	db *gorm.DB
}

// Ensure PropertyRepository implements PropertyRepositoryInterface
var _ PropertyRepositoryInterface = (*PropertyRepository)(nil)

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// List retrieves the overview columns of every property, newest first
func (r *PropertyRepository) List(ctx context.Context) ([]models.Property, error) {
	var properties []models.Property
	err := r.db.WithContext(ctx).
		Select("id", "name", "city", "monthly_rent", "status", "created_at").
		Order("created_at DESC").
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}

// GetByID retrieves a property by its ID
func (r *PropertyRepository) GetByID(ctx context.Context, id uint) (*models.Property, error) {
	var property models.Property
	if err := r.db.WithContext(ctx).First(&property, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

// Create creates a new property with a generated ID
func (r *PropertyRepository) Create(ctx context.Context, property *models.Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

// CreateWithID inserts a property under the ID it carries. It reports false,
// without error, when that ID is already taken.
func (r *PropertyRepository) CreateWithID(ctx context.Context, property *models.Property) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(property)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	if err := syncSequence(ctx, r.db, models.Property{}.TableName()); err != nil {
		return true, err
	}
	return true, nil
}

// Update applies column updates to a property and returns the stored result
func (r *PropertyRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) (*models.Property, error) {
	if err := updateByID(ctx, r.db, &models.Property{}, id, updates); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// UpdateStatus sets the status of a property
func (r *PropertyRepository) UpdateStatus(ctx context.Context, id uint, status models.PropertyStatus) (*models.Property, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if err := updateByID(ctx, r.db, &models.Property{}, id, map[string]interface{}{"status": status}); err != nil {
		return nil, err
	}
	var property models.Property
	if err := r.db.WithContext(ctx).Select("id", "name", "status").First(&property, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &property, nil
}
