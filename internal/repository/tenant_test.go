package repository

import (
	"context"
	"testing"
	"time"

	"property-manager-backend/internal/database/models"
	"property-manager-backend/internal/testutils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TenantRepositoryTestSuite tests the TenantRepository against an in-memory database
type TenantRepositoryTestSuite struct {
	suite.Suite
	db        *gorm.DB
	repo      *TenantRepository
	factories *testutils.FactorySet
	property  *models.Property
	ctx       context.Context
}

// SetupTest runs before each test
func (suite *TenantRepositoryTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.repo = NewTenantRepository(suite.db)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()

	suite.property = suite.factories.Property.WithName("Harbor View")
	suite.Require().NoError(suite.db.Create(suite.property).Error)
}

func (suite *TenantRepositoryTestSuite) TestCreateAndGetByID() {
	email := "jordan@example.com"
	leaseEnd := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tenant := suite.factories.Tenant.WithProperty(suite.property.ID)
	tenant.Email = &email
	tenant.LeaseEnd = &leaseEnd

	suite.NoError(suite.repo.Create(suite.ctx, tenant))
	suite.NotZero(tenant.ID)

	retrieved, err := suite.repo.GetByID(suite.ctx, tenant.ID)
	suite.NoError(err)
	suite.Equal(suite.property.ID, retrieved.PropertyID)
	suite.Equal("1A", retrieved.UnitNumber)
	suite.Equal("jordan@example.com", *retrieved.Email)
	suite.Nil(retrieved.Phone)
	suite.True(decimal.NewFromInt(1200).Equal(retrieved.MonthlyRent))
	suite.True(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Equal(retrieved.LeaseStart))
	suite.Require().NotNil(retrieved.LeaseEnd)
	suite.True(leaseEnd.Equal(*retrieved.LeaseEnd))
	suite.Nil(retrieved.Property)
}

func (suite *TenantRepositoryTestSuite) TestCreateUnknownProperty() {
	tenant := suite.factories.Tenant.WithProperty(9999)

	err := suite.repo.Create(suite.ctx, tenant)

	suite.Error(err)
}

func (suite *TenantRepositoryTestSuite) TestGetWithProperty() {
	tenant := suite.factories.Tenant.WithProperty(suite.property.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, tenant))

	retrieved, err := suite.repo.GetWithProperty(suite.ctx, tenant.ID)

	suite.NoError(err)
	suite.Require().NotNil(retrieved.Property)
	suite.Equal(suite.property.ID, retrieved.Property.ID)
	suite.Equal("Harbor View", retrieved.Property.Name)
	suite.Empty(retrieved.Property.Address)
}

func (suite *TenantRepositoryTestSuite) TestList() {
	first := suite.factories.Tenant.WithProperty(suite.property.ID)
	first.Name = "First"
	second := suite.factories.Tenant.WithProperty(suite.property.ID)
	second.Name = "Second"
	second.UnitNumber = "2B"
	suite.Require().NoError(suite.repo.Create(suite.ctx, first))
	suite.Require().NoError(suite.repo.Create(suite.ctx, second))

	tenants, err := suite.repo.List(suite.ctx)

	suite.NoError(err)
	suite.Require().Len(tenants, 2)
	suite.Equal("First", tenants[0].Name)
	suite.Equal("2B", tenants[1].UnitNumber)
	suite.Equal(models.TenantStatusActive, tenants[1].Status)
	suite.Zero(tenants[0].PropertyID)
}

func (suite *TenantRepositoryTestSuite) TestUpdate() {
	tenant := suite.factories.Tenant.WithProperty(suite.property.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, tenant))

	updated, err := suite.repo.Update(suite.ctx, tenant.ID, map[string]interface{}{
		"name":   "Renamed Tenant",
		"phone":  "555-0100",
		"status": "moved_out",
	})

	suite.NoError(err)
	suite.Equal("Renamed Tenant", updated.Name)
	suite.Equal("555-0100", *updated.Phone)
	suite.Equal(models.TenantStatusMovedOut, updated.Status)
	suite.Equal(suite.property.ID, updated.PropertyID)

	_, err = suite.repo.Update(suite.ctx, 777, map[string]interface{}{"name": "x"})
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *TenantRepositoryTestSuite) TestUpdateStatus() {
	tenant := suite.factories.Tenant.WithProperty(suite.property.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, tenant))

	updated, err := suite.repo.UpdateStatus(suite.ctx, tenant.ID, models.TenantStatusEvicted)

	suite.NoError(err)
	suite.Equal(tenant.ID, updated.ID)
	suite.Equal("Test Tenant", updated.Name)
	suite.Equal(models.TenantStatusEvicted, updated.Status)
}

func (suite *TenantRepositoryTestSuite) TestUpdateStatusRejectsUnknownStatus() {
	tenant := suite.factories.Tenant.WithProperty(suite.property.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, tenant))

	_, err := suite.repo.UpdateStatus(suite.ctx, tenant.ID, "")

	suite.ErrorIs(err, ErrInvalidStatus)
}

// TestTenantRepositoryTestSuite runs the test suite
func TestTenantRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TenantRepositoryTestSuite))
}
