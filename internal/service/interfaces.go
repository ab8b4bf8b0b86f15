package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// Request bodies are passed as decoded JSON objects; services validate them before touching the store.

// PropertyServiceInterface defines the interface for property service
type PropertyServiceInterface interface {
	List(ctx context.Context) ([]PropertySummary, error)
	Get(ctx context.Context, id uint) (*PropertyResponse, error)
	Create(ctx context.Context, input map[string]interface{}) (*PropertyResponse, error)
	CreateWithID(ctx context.Context, id uint, input map[string]interface{}) (*PropertyResponse, error)
	Update(ctx context.Context, id uint, input map[string]interface{}) (*PropertyResponse, error)
	UpdateStatus(ctx context.Context, id uint, input map[string]interface{}) (*StatusResponse, error)
}

// TenantServiceInterface defines the interface for tenant service
type TenantServiceInterface interface {
	List(ctx context.Context) ([]TenantSummary, error)
	Get(ctx context.Context, id uint) (*TenantResponse, error)
	Create(ctx context.Context, input map[string]interface{}) (*TenantResponse, error)
	Update(ctx context.Context, id uint, input map[string]interface{}) (*TenantResponse, error)
	UpdateStatus(ctx context.Context, id uint, input map[string]interface{}) (*StatusResponse, error)
}

// ExpenseServiceInterface defines the interface for expense service
type ExpenseServiceInterface interface {
	List(ctx context.Context) ([]ExpenseSummary, error)
	Get(ctx context.Context, id uint) (*ExpenseResponse, error)
	Create(ctx context.Context, input map[string]interface{}) (*ExpenseResponse, error)
}

// PaymentServiceInterface defines the interface for payment service
type PaymentServiceInterface interface {
	List(ctx context.Context) ([]PaymentSummary, error)
	Get(ctx context.Context, id uint) (*PaymentResponse, error)
	Create(ctx context.Context, input map[string]interface{}) (*PaymentResponse, error)
}

// FinancialServiceInterface defines the interface for financial record service
type FinancialServiceInterface interface {
	List(ctx context.Context) ([]FinancialResponse, error)
	Get(ctx context.Context, id uint) (*FinancialResponse, error)
	Create(ctx context.Context, input map[string]interface{}) (*FinancialResponse, error)
}
