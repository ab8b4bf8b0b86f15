package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"property-manager-backend/internal/api/handlers"
	apperrors "property-manager-backend/internal/errors"
	"property-manager-backend/internal/mocks"
	"property-manager-backend/internal/service"
	"property-manager-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LedgerHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	expenses   *mocks.MockExpenseServiceInterface
	payments   *mocks.MockPaymentServiceInterface
	financials *mocks.MockFinancialServiceInterface
	http       *testutils.HTTPTestSuite
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.expenses = mocks.NewMockExpenseServiceInterface(suite.ctrl)
	suite.payments = mocks.NewMockPaymentServiceInterface(suite.ctrl)
	suite.financials = mocks.NewMockFinancialServiceInterface(suite.ctrl)

	expenseHandler := handlers.NewExpenseHandler(suite.expenses)
	paymentHandler := handlers.NewPaymentHandler(suite.payments)
	financialHandler := handlers.NewFinancialHandler(suite.financials)

	suite.http = testutils.SetupHTTPTest()
	r := suite.http.Router
	r.GET("/expenses", expenseHandler.ListExpenses)
	r.GET("/expenses/:id", expenseHandler.GetExpense)
	r.POST("/expenses", expenseHandler.CreateExpense)
	r.GET("/payments", paymentHandler.ListPayments)
	r.GET("/payments/:id", paymentHandler.GetPayment)
	r.POST("/payments", paymentHandler.CreatePayment)
	r.GET("/financials", financialHandler.ListFinancials)
	r.GET("/financials/:id", financialHandler.GetFinancial)
	r.POST("/financials", financialHandler.CreateFinancial)
}

func (suite *LedgerHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LedgerHandlerTestSuite) TestExpenses() {
	suite.http.RunHTTPTestCases(suite.T(), []testutils.HTTPTestCase{
		{
			Name:   "list",
			Method: http.MethodGet,
			URL:    "/expenses",
			Setup: func() {
				suite.expenses.EXPECT().List(gomock.Any()).Return([]service.ExpenseSummary{{ID: 1}}, nil)
			},
			ExpectedStatus: http.StatusOK,
		},
		{
			Name:           "zero id",
			Method:         http.MethodGet,
			URL:            "/expenses/0",
			ExpectedStatus: http.StatusBadRequest,
			ExpectedError:  "Invalid expense ID. Must be a positive number.",
		},
		{
			Name:   "amount too large",
			Method: http.MethodPost,
			URL:    "/expenses",
			Body:   `{"amount":2000000}`,
			Setup: func() {
				suite.expenses.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, apperrors.NewValidationError("amount", "amount must be a positive number between $0 and $1,000,000"))
			},
			ExpectedStatus: http.StatusBadRequest,
			ExpectedError:  "amount must be a positive number between $0 and $1,000,000",
		},
		{
			Name:   "created",
			Method: http.MethodPost,
			URL:    "/expenses",
			Body:   `{"property_id":1}`,
			Setup: func() {
				suite.expenses.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&service.ExpenseResponse{ID: 3}, nil)
			},
			ExpectedStatus: http.StatusCreated,
		},
	})
}

func (suite *LedgerHandlerTestSuite) TestPayments() {
	suite.http.RunHTTPTestCases(suite.T(), []testutils.HTTPTestCase{
		{
			Name:   "unknown tenant",
			Method: http.MethodPost,
			URL:    "/payments",
			Body:   `{"tenant_id":77}`,
			Setup: func() {
				suite.payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrTenantNotFound)
			},
			ExpectedStatus: http.StatusNotFound,
			ExpectedError:  "Tenant not found",
		},
		{
			Name:   "missing payment",
			Method: http.MethodGet,
			URL:    "/payments/5",
			Setup: func() {
				suite.payments.EXPECT().Get(gomock.Any(), uint(5)).Return(nil, apperrors.NotFoundWithID("Payment", 5))
			},
			ExpectedStatus: http.StatusNotFound,
			ExpectedError:  "Payment with ID 5 not found",
		},
		{
			Name:   "store failure",
			Method: http.MethodGet,
			URL:    "/payments",
			Setup: func() {
				suite.payments.EXPECT().List(gomock.Any()).Return(nil, errors.New("boom"))
			},
			ExpectedStatus: http.StatusInternalServerError,
			ExpectedError:  "Failed to fetch payments. Please try again later.",
		},
	})
}

func (suite *LedgerHandlerTestSuite) TestFinancials() {
	suite.http.RunHTTPTestCases(suite.T(), []testutils.HTTPTestCase{
		{
			Name:           "array body",
			Method:         http.MethodPost,
			URL:            "/financials",
			Body:           `[{"category":"tax"}]`,
			ExpectedStatus: http.StatusBadRequest,
			ExpectedError:  "Request body is required and must be a valid JSON object",
		},
		{
			Name:   "store failure on create",
			Method: http.MethodPost,
			URL:    "/financials",
			Body:   `{"category":"tax"}`,
			Setup: func() {
				suite.financials.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk full"))
			},
			ExpectedStatus: http.StatusInternalServerError,
			ExpectedError:  "Failed to create financial record. Please try again later.",
		},
		{
			Name:   "get",
			Method: http.MethodGet,
			URL:    "/financials/2",
			Setup: func() {
				suite.financials.EXPECT().Get(gomock.Any(), uint(2)).Return(&service.FinancialResponse{ID: 2}, nil)
			},
			ExpectedStatus: http.StatusOK,
		},
	})
}

func (suite *LedgerHandlerTestSuite) TestListFinancials_EmptyIsArray() {
	suite.financials.EXPECT().List(gomock.Any()).Return([]service.FinancialResponse{}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/financials", "")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `[]`, w.Body.String())
}

func TestLedgerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
