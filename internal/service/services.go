package service

import (
	"property-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Services bundles every entity service so that the HTTP API and the
// operator CLI share the same validation and persistence path.
type Services struct {
	Properties PropertyServiceInterface
	Tenants    TenantServiceInterface
	Expenses   ExpenseServiceInterface
	Payments   PaymentServiceInterface
	Financials FinancialServiceInterface
}

// NewServices wires repositories and services over db
func NewServices(db *gorm.DB) *Services {
	validate := validator.New()

	return &Services{
		Properties: NewPropertyService(repository.NewPropertyRepository(db), validate),
		Tenants:    NewTenantService(repository.NewTenantRepository(db), validate),
		Expenses:   NewExpenseService(repository.NewExpenseRepository(db), validate),
		Payments:   NewPaymentService(repository.NewPaymentRepository(db), validate),
		Financials: NewFinancialService(repository.NewFinancialRepository(db), validate),
	}
}
