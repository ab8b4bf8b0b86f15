package validation

import (
	"sort"

	"property-manager-backend/internal/database/models"
)

var propertyFields = []Field{
	{Name: "name", Kind: String, Required: true},
	{Name: "address", Kind: String, Required: true},
	{Name: "country", Kind: String, Required: true},
	{Name: "city", Kind: String, Required: true},
	{Name: "postal_code", Kind: String, Required: true},
	{Name: "type", Kind: String, Required: true},
	{Name: "total_units", Kind: Integer, Required: true, Min: 1, Max: 10000},
	{Name: "monthly_rent", Kind: Money, Required: true},
	{Name: "status", Kind: Enum, Required: true, Values: models.PropertyStatusValues()},
	{Name: "notes", Kind: String},
}

// Property schemas. Updates replace the whole record, so they require the same set as create.
var (
	PropertyCreate = NewSchema("property.create", propertyFields)
	PropertyUpdate = NewSchema("property.update", propertyFields)
	PropertyStatus = NewSchema("property.status", []Field{
		{Name: "status", Kind: Enum, Required: true, Values: models.PropertyStatusValues(), InvalidWhenMissing: true},
	})
)

// Tenant schemas. The property of a tenancy cannot be changed by an update.
var (
	TenantCreate = NewSchema("tenant.create", []Field{
		{Name: "property_id", Kind: Reference, Required: true, Label: "Property"},
		{Name: "unit_number", Kind: String, Required: true},
		{Name: "name", Kind: String, Required: true},
		{Name: "email", Kind: String},
		{Name: "phone", Kind: String},
		{Name: "monthly_rent", Kind: Money, Required: true},
		{Name: "lease_start", Kind: Date, Required: true},
		{Name: "lease_end", Kind: Date},
		{Name: "status", Kind: Enum, Required: true, Values: models.TenantStatusValues()},
	}, After("lease_end", "lease_start"))

	TenantUpdate = NewSchema("tenant.update", []Field{
		{Name: "name", Kind: String, Required: true},
		{Name: "email", Kind: String},
		{Name: "phone", Kind: String},
		{Name: "monthly_rent", Kind: Money, Required: true},
		{Name: "lease_start", Kind: Date, Required: true},
		{Name: "lease_end", Kind: Date},
		{Name: "status", Kind: Enum, Required: true, Values: models.TenantStatusValues()},
	}, After("lease_end", "lease_start"))

	TenantStatus = NewSchema("tenant.status", []Field{
		{Name: "status", Kind: Enum, Required: true, Values: models.TenantStatusValues(), InvalidWhenMissing: true},
	})
)

var (
	ExpenseCreate = NewSchema("expense.create", []Field{
		{Name: "property_id", Kind: Reference, Required: true, Label: "Property"},
		{Name: "description", Kind: String, Required: true},
		{Name: "category", Kind: String, Required: true},
		{Name: "amount", Kind: Money, Required: true},
		{Name: "date", Kind: Date, Required: true},
		{Name: "recurring", Kind: Bool},
		{Name: "notes", Kind: String},
	})

	PaymentCreate = NewSchema("payment.create", []Field{
		{Name: "tenant_id", Kind: Reference, Required: true, Label: "Tenant"},
		{Name: "amount", Kind: Money, Required: true},
		{Name: "method", Kind: String},
		{Name: "date", Kind: Date, Required: true},
	})

	FinancialCreate = NewSchema("financial.create", []Field{
		{Name: "property_id", Kind: Reference, Required: true, Label: "Property"},
		{Name: "category", Kind: String, Required: true},
		{Name: "amount", Kind: Money, Required: true},
		{Name: "recurring", Kind: Bool},
	})
)

var registry = map[string]*Schema{}

func init() {
	for _, s := range []*Schema{
		PropertyCreate, PropertyUpdate, PropertyStatus,
		TenantCreate, TenantUpdate, TenantStatus,
		ExpenseCreate, PaymentCreate, FinancialCreate,
	} {
		registry[s.Name()] = s
	}
}

// Lookup finds a schema by entity and operation, e.g. ("tenant", "update")
func Lookup(entity, op string) (*Schema, bool) {
	s, ok := registry[entity+"."+op]
	return s, ok
}

// Names lists the registered schema names, sorted
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
