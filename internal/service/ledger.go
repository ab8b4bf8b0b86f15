package service

import (
	"context"
	"fmt"

	"property-manager-backend/internal/database/models"
	"property-manager-backend/internal/repository"
	"property-manager-backend/internal/validation"

	"github.com/go-playground/validator/v10"
)

const (
	expenseEntity   = "Expense"
	paymentEntity   = "Payment"
	financialEntity = "Financial record"
)

// ExpenseService provides expense-related business logic
type ExpenseService struct {
	repo      repository.ExpenseRepositoryInterface
	validator *validation.Validator
}

var _ ExpenseServiceInterface = (*ExpenseService)(nil)

// NewExpenseService creates a new ExpenseService
func NewExpenseService(repo repository.ExpenseRepositoryInterface, validate *validator.Validate) *ExpenseService {
	return &ExpenseService{repo: repo, validator: validation.New(validate)}
}

func (s *ExpenseService) List(ctx context.Context) ([]ExpenseSummary, error) {
	expenses, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	summaries := make([]ExpenseSummary, len(expenses))
	for i, e := range expenses {
		summaries[i] = ExpenseSummary{
			ID:          e.ID,
			Description: e.Description,
			Amount:      money(e.Amount),
			Date:        isoTime(e.Date),
		}
	}
	return summaries, nil
}

func (s *ExpenseService) Get(ctx context.Context, id uint) (*ExpenseResponse, error) {
	expense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", dbTarget{entity: expenseEntity, id: id}.translate(err))
	}
	return toExpenseResponse(expense), nil
}

func (s *ExpenseService) Create(ctx context.Context, input map[string]interface{}) (*ExpenseResponse, error) {
	return validateThen(s.validator, validation.ExpenseCreate, input, func(rec validation.Record) (*ExpenseResponse, error) {
		expense := &models.Expense{
			PropertyID:  rec.Uint("property_id"),
			Description: rec.String("description"),
			Category:    rec.String("category"),
			Amount:      rec.Decimal("amount"),
			Date:        rec.Time("date"),
			Recurring:   rec.Bool("recurring"),
			Notes:       rec.StringPtr("notes"),
		}
		if err := s.repo.Create(ctx, expense); err != nil {
			return nil, fmt.Errorf("failed to create expense: %w", dbTarget{entity: expenseEntity, ref: propertyEntity}.translate(err))
		}
		return toExpenseResponse(expense), nil
	})
}

// PaymentService provides payment-related business logic
type PaymentService struct {
	repo      repository.PaymentRepositoryInterface
	validator *validation.Validator
}

var _ PaymentServiceInterface = (*PaymentService)(nil)

// NewPaymentService creates a new PaymentService
func NewPaymentService(repo repository.PaymentRepositoryInterface, validate *validator.Validate) *PaymentService {
	return &PaymentService{repo: repo, validator: validation.New(validate)}
}

func (s *PaymentService) List(ctx context.Context) ([]PaymentSummary, error) {
	payments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	summaries := make([]PaymentSummary, len(payments))
	for i, p := range payments {
		summaries[i] = PaymentSummary{
			ID:       p.ID,
			TenantID: p.TenantID,
			Amount:   money(p.Amount),
			Date:     isoTime(p.Date),
		}
	}
	return summaries, nil
}

func (s *PaymentService) Get(ctx context.Context, id uint) (*PaymentResponse, error) {
	payment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", dbTarget{entity: paymentEntity, id: id}.translate(err))
	}
	return toPaymentResponse(payment), nil
}

func (s *PaymentService) Create(ctx context.Context, input map[string]interface{}) (*PaymentResponse, error) {
	return validateThen(s.validator, validation.PaymentCreate, input, func(rec validation.Record) (*PaymentResponse, error) {
		payment := &models.Payment{
			TenantID: rec.Uint("tenant_id"),
			Amount:   rec.Decimal("amount"),
			Method:   rec.StringPtr("method"),
			Date:     rec.Time("date"),
		}
		if err := s.repo.Create(ctx, payment); err != nil {
			return nil, fmt.Errorf("failed to create payment: %w", dbTarget{entity: paymentEntity, ref: tenantEntity}.translate(err))
		}
		return toPaymentResponse(payment), nil
	})
}

// FinancialService provides business logic for budgeted income and cost lines
type FinancialService struct {
	repo      repository.FinancialRepositoryInterface
	validator *validation.Validator
}

var _ FinancialServiceInterface = (*FinancialService)(nil)

// NewFinancialService creates a new FinancialService
func NewFinancialService(repo repository.FinancialRepositoryInterface, validate *validator.Validate) *FinancialService {
	return &FinancialService{repo: repo, validator: validation.New(validate)}
}

func (s *FinancialService) List(ctx context.Context) ([]FinancialResponse, error) {
	financials, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list financial records: %w", err)
	}

	responses := make([]FinancialResponse, len(financials))
	for i := range financials {
		responses[i] = *toFinancialResponse(&financials[i])
	}
	return responses, nil
}

func (s *FinancialService) Get(ctx context.Context, id uint) (*FinancialResponse, error) {
	financial, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get financial record: %w", dbTarget{entity: financialEntity, id: id}.translate(err))
	}
	return toFinancialResponse(financial), nil
}

func (s *FinancialService) Create(ctx context.Context, input map[string]interface{}) (*FinancialResponse, error) {
	return validateThen(s.validator, validation.FinancialCreate, input, func(rec validation.Record) (*FinancialResponse, error) {
		financial := &models.Financial{
			PropertyID: rec.Uint("property_id"),
			Category:   rec.String("category"),
			Amount:     rec.Decimal("amount"),
			Recurring:  rec.Bool("recurring"),
		}
		if err := s.repo.Create(ctx, financial); err != nil {
			return nil, fmt.Errorf("failed to create financial record: %w", dbTarget{entity: financialEntity, ref: propertyEntity}.translate(err))
		}
		return toFinancialResponse(financial), nil
	})
}
