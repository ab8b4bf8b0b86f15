package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"property-manager-backend/internal/database/models"
	apperrors "property-manager-backend/internal/errors"
	"property-manager-backend/internal/mocks"
	"property-manager-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type TenantServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *mocks.MockTenantRepositoryInterface
	tenantService *service.TenantService
	ctx           context.Context
}

func (suite *TenantServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockTenantRepositoryInterface(suite.ctrl)
	suite.tenantService = service.NewTenantService(suite.mockRepo, validator.New())
	suite.ctx = context.Background()
}

func (suite *TenantServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func tenantBody() map[string]interface{} {
	return map[string]interface{}{
		"property_id":  json.Number("1"),
		"unit_number":  "4B",
		"name":         "Jordan Lee",
		"email":        "jordan@example.com",
		"monthly_rent": json.Number("1200"),
		"lease_start":  "2024-01-01",
		"lease_end":    "2024-12-31",
		"status":       "active",
	}
}

func (suite *TenantServiceTestSuite) TestCreate_Success() {
	suite.mockRepo.EXPECT().Create(suite.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, t *models.Tenant) error {
		assert.Equal(suite.T(), uint(1), t.PropertyID)
		assert.Nil(suite.T(), t.Phone)
		t.ID = 9
		return nil
	})

	resp, err := suite.tenantService.Create(suite.ctx, tenantBody())

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(9), resp.ID)
	assert.Equal(suite.T(), "2024-01-01T00:00:00.000Z", resp.LeaseStart)
	require.NotNil(suite.T(), resp.LeaseEnd)
	assert.Equal(suite.T(), "2024-12-31T00:00:00.000Z", *resp.LeaseEnd)
	assert.Equal(suite.T(), "jordan@example.com", *resp.Email)
	assert.Nil(suite.T(), resp.Phone)
	assert.Nil(suite.T(), resp.Property)
}

func (suite *TenantServiceTestSuite) TestCreate_UnknownProperty() {
	suite.mockRepo.EXPECT().Create(suite.ctx, gomock.Any()).Return(gorm.ErrForeignKeyViolated)

	_, err := suite.tenantService.Create(suite.ctx, tenantBody())

	assert.True(suite.T(), apperrors.IsNotFound(err))
	assert.ErrorIs(suite.T(), err, apperrors.ErrPropertyNotFound)
}

func (suite *TenantServiceTestSuite) TestCreate_PostgresUniqueViolation() {
	suite.mockRepo.EXPECT().Create(suite.ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

	_, err := suite.tenantService.Create(suite.ctx, tenantBody())

	assert.ErrorIs(suite.T(), err, apperrors.ErrTenantExists)
}

func (suite *TenantServiceTestSuite) TestCreate_LeaseEndBeforeStart() {
	body := tenantBody()
	body["lease_end"] = "2023-06-01"

	_, err := suite.tenantService.Create(suite.ctx, body)

	msg, ok := apperrors.ValidationMessage(err)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), "lease_end must be after lease_start", msg)
}

func (suite *TenantServiceTestSuite) TestGet_IncludesProperty() {
	suite.mockRepo.EXPECT().GetWithProperty(suite.ctx, uint(4)).Return(&models.Tenant{
		BaseModel:   models.BaseModel{ID: 4},
		PropertyID:  2,
		Property:    &models.Property{BaseModel: models.BaseModel{ID: 2}, Name: "Harbor View"},
		Name:        "Sam",
		MonthlyRent: decimal.NewFromInt(900),
		LeaseStart:  time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Status:      models.TenantStatusPending,
	}, nil)

	resp, err := suite.tenantService.Get(suite.ctx, 4)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), &service.PropertyRef{ID: 2, Name: "Harbor View"}, resp.Property)
	assert.Nil(suite.T(), resp.LeaseEnd)
	assert.Equal(suite.T(), float64(900), resp.MonthlyRent)
}

func (suite *TenantServiceTestSuite) TestGet_NotFound() {
	suite.mockRepo.EXPECT().GetWithProperty(suite.ctx, uint(4)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.tenantService.Get(suite.ctx, 4)

	assert.ErrorIs(suite.T(), err, apperrors.ErrTenantNotFound)
}

func (suite *TenantServiceTestSuite) TestUpdate_RequiresFullSet() {
	_, err := suite.tenantService.Update(suite.ctx, 4, map[string]interface{}{"name": "Only Name"})

	msg, _ := apperrors.ValidationMessage(err)
	assert.Equal(suite.T(), "Missing required field: monthly_rent", msg)
}

func (suite *TenantServiceTestSuite) TestUpdate_Success() {
	body := tenantBody()
	delete(body, "property_id")
	delete(body, "unit_number")
	suite.mockRepo.EXPECT().Update(suite.ctx, uint(4), gomock.Any()).Return(&models.Tenant{
		BaseModel: models.BaseModel{ID: 4},
		Name:      "Jordan Lee",
		Status:    models.TenantStatusActive,
	}, nil)

	resp, err := suite.tenantService.Update(suite.ctx, 4, body)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Jordan Lee", resp.Name)
}

func (suite *TenantServiceTestSuite) TestUpdate_OmittedLeaseEndIsCleared() {
	body := tenantBody()
	delete(body, "property_id")
	delete(body, "unit_number")
	delete(body, "lease_end")
	delete(body, "email")
	body["lease_start"] = "2026-06-01"
	suite.mockRepo.EXPECT().Update(suite.ctx, uint(4), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uint, cols map[string]interface{}) (*models.Tenant, error) {
			for _, name := range []string{"lease_end", "email", "phone"} {
				v, ok := cols[name]
				assert.True(suite.T(), ok, name)
				assert.Nil(suite.T(), v, name)
			}
			assert.Equal(suite.T(), time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), cols["lease_start"])
			assert.NotContains(suite.T(), cols, "property_id")
			return &models.Tenant{BaseModel: models.BaseModel{ID: 4}, Name: "Jordan Lee"}, nil
		})

	resp, err := suite.tenantService.Update(suite.ctx, 4, body)

	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), resp.LeaseEnd)
}

func (suite *TenantServiceTestSuite) TestUpdateStatus_Bogus() {
	_, err := suite.tenantService.UpdateStatus(suite.ctx, 3, map[string]interface{}{"status": "bogus"})

	msg, _ := apperrors.ValidationMessage(err)
	assert.Equal(suite.T(), "Invalid status. Must be one of: active, moved_out, inactive, evicted, pending", msg)
}

func (suite *TenantServiceTestSuite) TestUpdateStatus_NotFound() {
	suite.mockRepo.EXPECT().UpdateStatus(suite.ctx, uint(3), models.TenantStatusMovedOut).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.tenantService.UpdateStatus(suite.ctx, 3, map[string]interface{}{"status": "moved_out"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrTenantNotFound)
}

func (suite *TenantServiceTestSuite) TestList() {
	suite.mockRepo.EXPECT().List(suite.ctx).Return([]models.Tenant{
		{BaseModel: models.BaseModel{ID: 1}, Name: "A", UnitNumber: "1", Status: models.TenantStatusActive},
	}, nil)

	list, err := suite.tenantService.List(suite.ctx)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []service.TenantSummary{{ID: 1, Name: "A", UnitNumber: "1", Status: "active"}}, list)
}

func TestTenantServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}
