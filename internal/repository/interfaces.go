package repository

import (
	"context"

	"property-manager-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// PropertyRepositoryInterface defines the interface for property repository operations
type PropertyRepositoryInterface interface {
	List(ctx context.Context) ([]models.Property, error)
	GetByID(ctx context.Context, id uint) (*models.Property, error)
	Create(ctx context.Context, property *models.Property) error
	CreateWithID(ctx context.Context, property *models.Property) (bool, error)
	Update(ctx context.Context, id uint, updates map[string]interface{}) (*models.Property, error)
	UpdateStatus(ctx context.Context, id uint, status models.PropertyStatus) (*models.Property, error)
}

// TenantRepositoryInterface defines the interface for tenant repository operations
type TenantRepositoryInterface interface {
	List(ctx context.Context) ([]models.Tenant, error)
	GetByID(ctx context.Context, id uint) (*models.Tenant, error)
	GetWithProperty(ctx context.Context, id uint) (*models.Tenant, error)
	Create(ctx context.Context, tenant *models.Tenant) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) (*models.Tenant, error)
	UpdateStatus(ctx context.Context, id uint, status models.TenantStatus) (*models.Tenant, error)
}

// ExpenseRepositoryInterface defines the interface for expense repository operations
type ExpenseRepositoryInterface interface {
	List(ctx context.Context) ([]models.Expense, error)
	GetByID(ctx context.Context, id uint) (*models.Expense, error)
	Create(ctx context.Context, expense *models.Expense) error
}

// PaymentRepositoryInterface defines the interface for payment repository operations
type PaymentRepositoryInterface interface {
	List(ctx context.Context) ([]models.Payment, error)
	GetByID(ctx context.Context, id uint) (*models.Payment, error)
	Create(ctx context.Context, payment *models.Payment) error
}

// FinancialRepositoryInterface defines the interface for financial record repository operations
type FinancialRepositoryInterface interface {
	List(ctx context.Context) ([]models.Financial, error)
	GetByID(ctx context.Context, id uint) (*models.Financial, error)
	Create(ctx context.Context, financial *models.Financial) error
}
