package handlers

import (
	"net/http"

	"property-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler handles HTTP requests for expenses
type ExpenseHandler struct {
	expenseService service.ExpenseServiceInterface
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService service.ExpenseServiceInterface) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ListExpenses handles GET /api/expenses
// @Summary List expenses
// @Tags expenses
// @Produce json
// @Success 200 {array} service.ExpenseSummary
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.expenseService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "fetch", "expenses")
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// GetExpense handles GET /api/expenses/:id
// @Summary Get an expense
// @Tags expenses
// @Produce json
// @Param id path int true "Expense ID"
// @Success 200 {object} service.ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses/{id} [get]
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	id, ok := parseID(c, "expense")
	if !ok {
		return
	}
	expense, err := h.expenseService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "fetch", "expense")
		return
	}
	c.JSON(http.StatusOK, expense)
}

// CreateExpense handles POST /api/expenses
// @Summary Record an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body map[string]interface{} true "Expense fields"
// @Success 201 {object} service.ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Property not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	body, ok := bindObject(c, "")
	if !ok {
		return
	}
	expense, err := h.expenseService.Create(c.Request.Context(), body)
	if err != nil {
		respondError(c, err, "create", "expense")
		return
	}
	c.JSON(http.StatusCreated, expense)
}

// PaymentHandler handles HTTP requests for payments
type PaymentHandler struct {
	paymentService service.PaymentServiceInterface
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService service.PaymentServiceInterface) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// ListPayments handles GET /api/payments
// @Summary List payments
// @Tags payments
// @Produce json
// @Success 200 {array} service.PaymentSummary
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.paymentService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "fetch", "payments")
		return
	}
	c.JSON(http.StatusOK, payments)
}

// GetPayment handles GET /api/payments/:id
// @Summary Get a payment
// @Tags payments
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} service.PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, ok := parseID(c, "payment")
	if !ok {
		return
	}
	payment, err := h.paymentService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "fetch", "payment")
		return
	}
	c.JSON(http.StatusOK, payment)
}

// CreatePayment handles POST /api/payments
// @Summary Record a payment
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body map[string]interface{} true "Payment fields"
// @Success 201 {object} service.PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	body, ok := bindObject(c, "")
	if !ok {
		return
	}
	payment, err := h.paymentService.Create(c.Request.Context(), body)
	if err != nil {
		respondError(c, err, "create", "payment")
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// FinancialHandler handles HTTP requests for financial records
type FinancialHandler struct {
	financialService service.FinancialServiceInterface
}

// NewFinancialHandler creates a new financial record handler
func NewFinancialHandler(financialService service.FinancialServiceInterface) *FinancialHandler {
	return &FinancialHandler{financialService: financialService}
}

// ListFinancials handles GET /api/financials
// @Summary List financial records
// @Tags financials
// @Produce json
// @Success 200 {array} service.FinancialResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /financials [get]
func (h *FinancialHandler) ListFinancials(c *gin.Context) {
	financials, err := h.financialService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "fetch", "financial records")
		return
	}
	c.JSON(http.StatusOK, financials)
}

// GetFinancial handles GET /api/financials/:id
// @Summary Get a financial record
// @Tags financials
// @Produce json
// @Param id path int true "Financial record ID"
// @Success 200 {object} service.FinancialResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /financials/{id} [get]
func (h *FinancialHandler) GetFinancial(c *gin.Context) {
	id, ok := parseID(c, "financial record")
	if !ok {
		return
	}
	financial, err := h.financialService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "fetch", "financial record")
		return
	}
	c.JSON(http.StatusOK, financial)
}

// CreateFinancial handles POST /api/financials
// @Summary Record a financial line
// @Tags financials
// @Accept json
// @Produce json
// @Param financial body map[string]interface{} true "Financial record fields"
// @Success 201 {object} service.FinancialResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Property not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /financials [post]
func (h *FinancialHandler) CreateFinancial(c *gin.Context) {
	body, ok := bindObject(c, "")
	if !ok {
		return
	}
	financial, err := h.financialService.Create(c.Request.Context(), body)
	if err != nil {
		respondError(c, err, "create", "financial record")
		return
	}
	c.JSON(http.StatusCreated, financial)
}
