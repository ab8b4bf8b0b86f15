package service

import (
	"context"
	"fmt"

	"property-manager-backend/internal/database/models"
	"property-manager-backend/internal/repository"
	"property-manager-backend/internal/validation"

	"github.com/go-playground/validator/v10"
)

const tenantEntity = "Tenant"

// TenantService provides tenant-related business logic
type TenantService struct {
	repo      repository.TenantRepositoryInterface
	validator *validation.Validator
}

// Ensure TenantService implements TenantServiceInterface
var _ TenantServiceInterface = (*TenantService)(nil)

// NewTenantService creates a new TenantService
func NewTenantService(repo repository.TenantRepositoryInterface, validate *validator.Validate) *TenantService {
	return &TenantService{
		repo:      repo,
		validator: validation.New(validate),
	}
}

// List returns the tenant overview
func (s *TenantService) List(ctx context.Context) ([]TenantSummary, error) {
	tenants, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	summaries := make([]TenantSummary, len(tenants))
	for i := range tenants {
		summaries[i] = toTenantSummary(&tenants[i])
	}
	return summaries, nil
}

// Get returns a tenant together with the id and name of its property
func (s *TenantService) Get(ctx context.Context, id uint) (*TenantResponse, error) {
	tenant, err := s.repo.GetWithProperty(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant: %w", dbTarget{entity: tenantEntity, id: id}.translate(err))
	}
	return toTenantResponse(tenant), nil
}

// Create validates input and stores a new tenancy
func (s *TenantService) Create(ctx context.Context, input map[string]interface{}) (*TenantResponse, error) {
	return validateThen(s.validator, validation.TenantCreate, input, func(rec validation.Record) (*TenantResponse, error) {
		tenant := &models.Tenant{
			PropertyID:  rec.Uint("property_id"),
			UnitNumber:  rec.String("unit_number"),
			Name:        rec.String("name"),
			Email:       rec.StringPtr("email"),
			Phone:       rec.StringPtr("phone"),
			MonthlyRent: rec.Decimal("monthly_rent"),
			LeaseStart:  rec.Time("lease_start"),
			LeaseEnd:    rec.TimePtr("lease_end"),
			Status:      models.TenantStatus(rec.String("status")),
		}
		if err := s.repo.Create(ctx, tenant); err != nil {
			return nil, fmt.Errorf("failed to create tenant: %w", dbTarget{entity: tenantEntity, ref: propertyEntity}.translate(err))
		}
		return toTenantResponse(tenant), nil
	})
}

// Update replaces the mutable fields of a tenancy. The property and unit stay fixed;
// optional fields missing from input are cleared.
func (s *TenantService) Update(ctx context.Context, id uint, input map[string]interface{}) (*TenantResponse, error) {
	return validateThen(s.validator, validation.TenantUpdate, input, func(rec validation.Record) (*TenantResponse, error) {
		tenant, err := s.repo.Update(ctx, id, validation.TenantUpdate.ReplaceColumns(rec))
		if err != nil {
			return nil, fmt.Errorf("failed to update tenant: %w", dbTarget{entity: tenantEntity, id: id}.translate(err))
		}
		return toTenantResponse(tenant), nil
	})
}

// UpdateStatus changes only the status of a tenancy
func (s *TenantService) UpdateStatus(ctx context.Context, id uint, input map[string]interface{}) (*StatusResponse, error) {
	return validateThen(s.validator, validation.TenantStatus, input, func(rec validation.Record) (*StatusResponse, error) {
		tenant, err := s.repo.UpdateStatus(ctx, id, models.TenantStatus(rec.String("status")))
		if err != nil {
			return nil, fmt.Errorf("failed to update tenant status: %w", dbTarget{entity: tenantEntity, id: id}.translate(err))
		}
		return &StatusResponse{ID: tenant.ID, Name: tenant.Name, Status: string(tenant.Status)}, nil
	})
}
