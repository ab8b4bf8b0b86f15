package service

import (
	"time"

	"property-manager-backend/internal/database/models"

	"github.com/shopspring/decimal"
)

// TimeFormat is the ISO-8601 layout used for every date and timestamp in responses
const TimeFormat = "2006-01-02T15:04:05.000Z"

// PropertyResponse represents a property in API responses
type PropertyResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Country     string  `json:"country"`
	City        string  `json:"city"`
	PostalCode  string  `json:"postal_code"`
	Type        string  `json:"type"`
	TotalUnits  int     `json:"total_units"`
	MonthlyRent float64 `json:"monthly_rent"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// PropertySummary is a row of the property overview
type PropertySummary struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	City        string  `json:"city"`
	MonthlyRent float64 `json:"monthly_rent"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}

// StatusResponse is returned by status-only updates
type StatusResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// PropertyRef identifies the property of a tenancy
type PropertyRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// TenantResponse represents a tenant in API responses
type TenantResponse struct {
	ID          uint         `json:"id"`
	PropertyID  uint         `json:"property_id"`
	Property    *PropertyRef `json:"property,omitempty"`
	UnitNumber  string       `json:"unit_number"`
	Name        string       `json:"name"`
	Email       *string      `json:"email"`
	Phone       *string      `json:"phone"`
	MonthlyRent float64      `json:"monthly_rent"`
	LeaseStart  string       `json:"lease_start"`
	LeaseEnd    *string      `json:"lease_end"`
	Status      string       `json:"status"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
}

// TenantSummary is a row of the tenant overview
type TenantSummary struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	UnitNumber string `json:"unit_number"`
	Status     string `json:"status"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID          uint    `json:"id"`
	PropertyID  uint    `json:"property_id"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Recurring   bool    `json:"recurring"`
	Notes       *string `json:"notes"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ExpenseSummary is a row of the expense overview
type ExpenseSummary struct {
	ID          uint    `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID        uint    `json:"id"`
	TenantID  uint    `json:"tenant_id"`
	Amount    float64 `json:"amount"`
	Method    *string `json:"method"`
	Date      string  `json:"date"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// PaymentSummary is a row of the payment overview
type PaymentSummary struct {
	ID       uint    `json:"id"`
	TenantID uint    `json:"tenant_id"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}

// FinancialResponse represents a financial record in API responses
type FinancialResponse struct {
	ID         uint    `json:"id"`
	PropertyID uint    `json:"property_id"`
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Recurring  bool    `json:"recurring"`
}

// money converts a stored decimal to a JSON number
func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func isoTime(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

// isoTimePtr renders nil as JSON null
func isoTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := isoTime(*t)
	return &s
}

func toPropertyResponse(p *models.Property) *PropertyResponse {
	return &PropertyResponse{
		ID:          p.ID,
		Name:        p.Name,
		Address:     p.Address,
		Country:     p.Country,
		City:        p.City,
		PostalCode:  p.PostalCode,
		Type:        p.Type,
		TotalUnits:  p.TotalUnits,
		MonthlyRent: money(p.MonthlyRent),
		Status:      string(p.Status),
		Notes:       p.Notes,
		CreatedAt:   isoTime(p.CreatedAt),
		UpdatedAt:   isoTime(p.UpdatedAt),
	}
}

func toPropertySummary(p *models.Property) PropertySummary {
	return PropertySummary{
		ID:          p.ID,
		Name:        p.Name,
		City:        p.City,
		MonthlyRent: money(p.MonthlyRent),
		Status:      string(p.Status),
		CreatedAt:   isoTime(p.CreatedAt),
	}
}

func toTenantResponse(t *models.Tenant) *TenantResponse {
	resp := &TenantResponse{
		ID:          t.ID,
		PropertyID:  t.PropertyID,
		UnitNumber:  t.UnitNumber,
		Name:        t.Name,
		Email:       t.Email,
		Phone:       t.Phone,
		MonthlyRent: money(t.MonthlyRent),
		LeaseStart:  isoTime(t.LeaseStart),
		LeaseEnd:    isoTimePtr(t.LeaseEnd),
		Status:      string(t.Status),
		CreatedAt:   isoTime(t.CreatedAt),
		UpdatedAt:   isoTime(t.UpdatedAt),
	}
	if t.Property != nil {
		resp.Property = &PropertyRef{ID: t.Property.ID, Name: t.Property.Name}
	}
	return resp
}

func toTenantSummary(t *models.Tenant) TenantSummary {
	return TenantSummary{
		ID:         t.ID,
		Name:       t.Name,
		UnitNumber: t.UnitNumber,
		Status:     string(t.Status),
	}
}

func toExpenseResponse(e *models.Expense) *ExpenseResponse {
	return &ExpenseResponse{
		ID:          e.ID,
		PropertyID:  e.PropertyID,
		Description: e.Description,
		Category:    e.Category,
		Amount:      money(e.Amount),
		Date:        isoTime(e.Date),
		Recurring:   e.Recurring,
		Notes:       e.Notes,
		CreatedAt:   isoTime(e.CreatedAt),
		UpdatedAt:   isoTime(e.UpdatedAt),
	}
}

func toPaymentResponse(p *models.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:        p.ID,
		TenantID:  p.TenantID,
		Amount:    money(p.Amount),
		Method:    p.Method,
		Date:      isoTime(p.Date),
		CreatedAt: isoTime(p.CreatedAt),
		UpdatedAt: isoTime(p.UpdatedAt),
	}
}

func toFinancialResponse(f *models.Financial) *FinancialResponse {
	return &FinancialResponse{
		ID:         f.ID,
		PropertyID: f.PropertyID,
		Category:   f.Category,
		Amount:     money(f.Amount),
		Recurring:  f.Recurring,
	}
}
