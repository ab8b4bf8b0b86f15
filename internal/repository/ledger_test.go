package repository

import (
	"context"
	"testing"

	"property-manager-backend/internal/database/models"
	"property-manager-backend/internal/testutils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// LedgerRepositoryTestSuite covers expenses, payments and financial records
type LedgerRepositoryTestSuite struct {
	suite.Suite
	db        *gorm.DB
	factories *testutils.FactorySet
	property  *models.Property
	tenant    *models.Tenant
	ctx       context.Context
}

// SetupTest runs before each test
func (suite *LedgerRepositoryTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()

	suite.property = suite.factories.Property.Create()
	suite.Require().NoError(suite.db.Create(suite.property).Error)
	suite.tenant = suite.factories.Tenant.WithProperty(suite.property.ID)
	suite.Require().NoError(suite.db.Omit("Property").Create(suite.tenant).Error)
}

func (suite *LedgerRepositoryTestSuite) TestExpenses() {
	repo := NewExpenseRepository(suite.db)
	expense := suite.factories.Expense.WithProperty(suite.property.ID)
	suite.Require().NoError(repo.Create(suite.ctx, expense))

	list, err := repo.List(suite.ctx)
	suite.NoError(err)
	suite.Require().Len(list, 1)
	suite.Equal("Boiler service", list[0].Description)
	suite.True(decimal.RequireFromString("249.99").Equal(list[0].Amount))
	suite.Empty(list[0].Category)

	got, err := repo.GetByID(suite.ctx, expense.ID)
	suite.NoError(err)
	suite.Equal("maintenance", got.Category)
	suite.Equal(suite.property.ID, got.PropertyID)

	_, err = repo.GetByID(suite.ctx, expense.ID+1)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *LedgerRepositoryTestSuite) TestPayments() {
	repo := NewPaymentRepository(suite.db)
	payment := suite.factories.Payment.WithTenant(suite.tenant.ID)
	suite.Require().NoError(repo.Create(suite.ctx, payment))

	list, err := repo.List(suite.ctx)
	suite.NoError(err)
	suite.Require().Len(list, 1)
	suite.Equal(suite.tenant.ID, list[0].TenantID)
	suite.Nil(list[0].Method)

	got, err := repo.GetByID(suite.ctx, payment.ID)
	suite.NoError(err)
	suite.Require().NotNil(got.Method)
	suite.Equal("bank transfer", *got.Method)
}

func (suite *LedgerRepositoryTestSuite) TestPaymentForUnknownTenant() {
	repo := NewPaymentRepository(suite.db)

	err := repo.Create(suite.ctx, suite.factories.Payment.WithTenant(4242))

	suite.Error(err)
}

func (suite *LedgerRepositoryTestSuite) TestFinancials() {
	repo := NewFinancialRepository(suite.db)
	financial := suite.factories.Financial.WithProperty(suite.property.ID)
	suite.Require().NoError(repo.Create(suite.ctx, financial))

	list, err := repo.List(suite.ctx)
	suite.NoError(err)
	suite.Require().Len(list, 1)
	suite.Equal("insurance", list[0].Category)
	suite.True(list[0].Recurring)

	got, err := repo.GetByID(suite.ctx, financial.ID)
	suite.NoError(err)
	suite.True(decimal.NewFromInt(320).Equal(got.Amount))
}

// TestLedgerRepositoryTestSuite runs the test suite
func TestLedgerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerRepositoryTestSuite))
}
