package repository

import (
	"context"

	"property-manager-backend/internal/database/models"

	"gorm.io/gorm"
)

// ExpenseRepository handles database operations for expenses
type ExpenseRepository struct {
	db *gorm.DB
}

var _ ExpenseRepositoryInterface = (*ExpenseRepository)(nil)

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// List retrieves the overview columns of every expense
func (r *ExpenseRepository) List(ctx context.Context) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.WithContext(ctx).
		Select("id", "description", "amount", "date").
		Order("id ASC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id uint) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	return r.db.WithContext(ctx).Omit("Property").Create(expense).Error
}

// PaymentRepository handles database operations for payments
type PaymentRepository struct {
	db *gorm.DB
}

var _ PaymentRepositoryInterface = (*PaymentRepository)(nil)

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// List retrieves the overview columns of every payment
func (r *PaymentRepository) List(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.WithContext(ctx).
		Select("id", "tenant_id", "amount", "date").
		Order("id ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Omit("Tenant").Create(payment).Error
}

// FinancialRepository handles database operations for financial records
type FinancialRepository struct {
	db *gorm.DB
}

var _ FinancialRepositoryInterface = (*FinancialRepository)(nil)

// NewFinancialRepository creates a new financial record repository
func NewFinancialRepository(db *gorm.DB) *FinancialRepository {
	return &FinancialRepository{db: db}
}

// List retrieves every financial record
func (r *FinancialRepository) List(ctx context.Context) ([]models.Financial, error) {
	var financials []models.Financial
	err := r.db.WithContext(ctx).
		Select("id", "property_id", "category", "amount", "recurring").
		Order("id ASC").
		Find(&financials).Error
	if err != nil {
		return nil, err
	}
	return financials, nil
}

func (r *FinancialRepository) GetByID(ctx context.Context, id uint) (*models.Financial, error) {
	var financial models.Financial
	if err := r.db.WithContext(ctx).First(&financial, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &financial, nil
}

func (r *FinancialRepository) Create(ctx context.Context, financial *models.Financial) error {
	return r.db.WithContext(ctx).Omit("Property").Create(financial).Error
}
