package repository

import (
	"context"
	"fmt"

	"property-manager-backend/internal/database/models"

	"gorm.io/gorm"
)

// TenantRepository handles database operations for tenants
type TenantRepository struct {
	db *gorm.DB
}

// Ensure TenantRepository implements TenantRepositoryInterface
var _ TenantRepositoryInterface = (*TenantRepository)(nil)

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// List retrieves the overview columns of every tenant
func (r *TenantRepository) List(ctx context.Context) ([]models.Tenant, error) {
	var tenants []models.Tenant
	err := r.db.WithContext(ctx).
		Select("id", "name", "unit_number", "status").
		Order("id ASC").
		Find(&tenants).Error
	if err != nil {
		return nil, err
	}
	return tenants, nil
}

// GetByID retrieves a tenant by its ID
func (r *TenantRepository) GetByID(ctx context.Context, id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := r.db.WithContext(ctx).First(&tenant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetWithProperty retrieves a tenant with the id and name of its property
func (r *TenantRepository) GetWithProperty(ctx context.Context, id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.WithContext(ctx).
		Preload("Property", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		First(&tenant, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// Create creates a new tenant
func (r *TenantRepository) Create(ctx context.Context, tenant *models.Tenant) error {
	return r.db.WithContext(ctx).Omit("Property").Create(tenant).Error
}

// Update applies column updates to a tenant and returns the stored result
func (r *TenantRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) (*models.Tenant, error) {
	if err := updateByID(ctx, r.db, &models.Tenant{}, id, updates); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// UpdateStatus sets the status of a tenant
func (r *TenantRepository) UpdateStatus(ctx context.Context, id uint, status models.TenantStatus) (*models.Tenant, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if err := updateByID(ctx, r.db, &models.Tenant{}, id, map[string]interface{}{"status": status}); err != nil {
		return nil, err
	}
	var tenant models.Tenant
	if err := r.db.WithContext(ctx).Select("id", "name", "status").First(&tenant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}
