package service

import (
	"context"
	"fmt"

	"property-manager-backend/internal/database/models"
	apperrors "property-manager-backend/internal/errors"
	"property-manager-backend/internal/repository"
	"property-manager-backend/internal/validation"

	"github.com/go-playground/validator/v10"
)

const propertyEntity = "Property"

// PropertyService provides property-related business logic
type PropertyService struct {
	repo      repository.PropertyRepositoryInterface
	validator *validation.Validator
}

// Ensure PropertyService implements PropertyServiceInterface
var _ PropertyServiceInterface = (*PropertyService)(nil)

// NewPropertyService creates a new PropertyService
func NewPropertyService(repo repository.PropertyRepositoryInterface, validate *validator.Validate) *PropertyService {
	return &PropertyService{
		repo:      repo,
		validator: validation.New(validate),
	}
}

// List returns the property overview, newest first
func (s *PropertyService) List(ctx context.Context) ([]PropertySummary, error) {
	properties, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	summaries := make([]PropertySummary, len(properties))
	for i := range properties {
		summaries[i] = toPropertySummary(&properties[i])
	}
	return summaries, nil
}

// Get returns a single property
func (s *PropertyService) Get(ctx context.Context, id uint) (*PropertyResponse, error) {
	property, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", dbTarget{entity: propertyEntity, id: id}.translate(err))
	}
	return toPropertyResponse(property), nil
}

// Create validates input and stores a new property with a generated ID
func (s *PropertyService) Create(ctx context.Context, input map[string]interface{}) (*PropertyResponse, error) {
	return validateThen(s.validator, validation.PropertyCreate, input, func(rec validation.Record) (*PropertyResponse, error) {
		property := propertyFromRecord(rec)
		if err := s.repo.Create(ctx, property); err != nil {
			return nil, fmt.Errorf("failed to create property: %w", dbTarget{entity: propertyEntity}.translate(err))
		}
		return toPropertyResponse(property), nil
	})
}

// CreateWithID stores a new property under a caller-chosen ID in one conditional insert
func (s *PropertyService) CreateWithID(ctx context.Context, id uint, input map[string]interface{}) (*PropertyResponse, error) {
	return validateThen(s.validator, validation.PropertyCreate, input, func(rec validation.Record) (*PropertyResponse, error) {
		property := propertyFromRecord(rec)
		property.ID = id

		inserted, err := s.repo.CreateWithID(ctx, property)
		if err != nil {
			return nil, fmt.Errorf("failed to create property: %w", dbTarget{entity: propertyEntity, id: id}.translate(err))
		}
		if !inserted {
			return nil, apperrors.AlreadyExistsWithID(propertyEntity, id)
		}
		return toPropertyResponse(property), nil
	})
}

// Update replaces every business field of a property
func (s *PropertyService) Update(ctx context.Context, id uint, input map[string]interface{}) (*PropertyResponse, error) {
	return validateThen(s.validator, validation.PropertyUpdate, input, func(rec validation.Record) (*PropertyResponse, error) {
		property, err := s.repo.Update(ctx, id, validation.PropertyUpdate.ReplaceColumns(rec))
		if err != nil {
			return nil, fmt.Errorf("failed to update property: %w", dbTarget{entity: propertyEntity, id: id}.translate(err))
		}
		return toPropertyResponse(property), nil
	})
}

// UpdateStatus changes only the status of a property
func (s *PropertyService) UpdateStatus(ctx context.Context, id uint, input map[string]interface{}) (*StatusResponse, error) {
	return validateThen(s.validator, validation.PropertyStatus, input, func(rec validation.Record) (*StatusResponse, error) {
		property, err := s.repo.UpdateStatus(ctx, id, models.PropertyStatus(rec.String("status")))
		if err != nil {
			return nil, fmt.Errorf("failed to update property status: %w", dbTarget{entity: propertyEntity, id: id}.translate(err))
		}
		return &StatusResponse{ID: property.ID, Name: property.Name, Status: string(property.Status)}, nil
	})
}

func propertyFromRecord(rec validation.Record) *models.Property {
	return &models.Property{
		Name:        rec.String("name"),
		Address:     rec.String("address"),
		Country:     rec.String("country"),
		City:        rec.String("city"),
		PostalCode:  rec.String("postal_code"),
		Type:        rec.String("type"),
		TotalUnits:  rec.Int("total_units"),
		MonthlyRent: rec.Decimal("monthly_rent"),
		Status:      models.PropertyStatus(rec.String("status")),
		Notes:       rec.StringPtr("notes"),
	}
}
