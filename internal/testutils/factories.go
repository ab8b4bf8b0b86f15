package testutils

import (
	"time"

	"property-manager-backend/internal/database/models"

	"github.com/shopspring/decimal"
)

// PropertyFactory provides methods to create test Property data
type PropertyFactory struct{}

// NewPropertyFactory creates a new PropertyFactory
func NewPropertyFactory() *PropertyFactory {
	return &PropertyFactory{}
}

// Create creates a test Property with default values
func (f *PropertyFactory) Create() *models.Property {
	return &models.Property{
		Name:        "Test Property",
		Address:     "1 Test Street",
		Country:     "US",
		City:        "Springfield",
		PostalCode:  "12345",
		Type:        "Apartment",
		TotalUnits:  12,
		MonthlyRent: decimal.NewFromInt(1500),
		Status:      models.PropertyStatusAvailable,
	}
}

// WithName sets a custom name for the property
func (f *PropertyFactory) WithName(name string) *models.Property {
	p := f.Create()
	p.Name = name
	return p
}

// WithStatus sets a custom status for the property
func (f *PropertyFactory) WithStatus(status models.PropertyStatus) *models.Property {
	p := f.Create()
	p.Status = status
	return p
}

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates a test Tenant with default values. PropertyID must be set by the caller.
func (f *TenantFactory) Create() *models.Tenant {
	return &models.Tenant{
		UnitNumber:  "1A",
		Name:        "Test Tenant",
		MonthlyRent: decimal.NewFromInt(1200),
		LeaseStart:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:      models.TenantStatusActive,
	}
}

// WithProperty sets the property of the tenancy
func (f *TenantFactory) WithProperty(propertyID uint) *models.Tenant {
	t := f.Create()
	t.PropertyID = propertyID
	return t
}

// ExpenseFactory provides methods to create test Expense data
type ExpenseFactory struct{}

// NewExpenseFactory creates a new ExpenseFactory
func NewExpenseFactory() *ExpenseFactory {
	return &ExpenseFactory{}
}

// WithProperty creates a test Expense for the given property
func (f *ExpenseFactory) WithProperty(propertyID uint) *models.Expense {
	return &models.Expense{
		PropertyID:  propertyID,
		Description: "Boiler service",
		Category:    "maintenance",
		Amount:      decimal.RequireFromString("249.99"),
		Date:        time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
	}
}

// PaymentFactory provides methods to create test Payment data
type PaymentFactory struct{}

// NewPaymentFactory creates a new PaymentFactory
func NewPaymentFactory() *PaymentFactory {
	return &PaymentFactory{}
}

// WithTenant creates a test Payment for the given tenant
func (f *PaymentFactory) WithTenant(tenantID uint) *models.Payment {
	method := "bank transfer"
	return &models.Payment{
		TenantID: tenantID,
		Amount:   decimal.NewFromInt(1200),
		Method:   &method,
		Date:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
}

// FinancialFactory provides methods to create test Financial data
type FinancialFactory struct{}

// NewFinancialFactory creates a new FinancialFactory
func NewFinancialFactory() *FinancialFactory {
	return &FinancialFactory{}
}

// WithProperty creates a test Financial record for the given property
func (f *FinancialFactory) WithProperty(propertyID uint) *models.Financial {
	return &models.Financial{
		PropertyID: propertyID,
		Category:   "insurance",
		Amount:     decimal.NewFromInt(320),
		Recurring:  true,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Property  *PropertyFactory
	Tenant    *TenantFactory
	Expense   *ExpenseFactory
	Payment   *PaymentFactory
	Financial *FinancialFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Property:  NewPropertyFactory(),
		Tenant:    NewTenantFactory(),
		Expense:   NewExpenseFactory(),
		Payment:   NewPaymentFactory(),
		Financial: NewFinancialFactory(),
	}
}
