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

type TenantHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTenantServiceInterface
	http        *testutils.HTTPTestSuite
}

func (suite *TenantHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTenantServiceInterface(suite.ctrl)
	handler := handlers.NewTenantHandler(suite.mockService)

	suite.http = testutils.SetupHTTPTest()
	r := suite.http.Router
	r.GET("/tenants", handler.ListTenants)
	r.POST("/tenants", handler.CreateTenant)
	r.GET("/tenants/:id", handler.GetTenant)
	r.PUT("/tenants/:id", handler.UpdateTenant)
	r.PATCH("/tenants/:id/status", handler.UpdateTenantStatus)
}

func (suite *TenantHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TenantHandlerTestSuite) TestErrorMapping() {
	suite.http.RunHTTPTestCases(suite.T(), []testutils.HTTPTestCase{
		{
			Name:           "non-numeric id",
			Method:         http.MethodGet,
			URL:            "/tenants/abc",
			ExpectedStatus: http.StatusBadRequest,
			ExpectedError:  "Invalid tenant ID. Must be a positive number.",
		},
		{
			Name:   "unknown property on create",
			Method: http.MethodPost,
			URL:    "/tenants",
			Body:   `{"property_id":999}`,
			Setup: func() {
				suite.mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrPropertyNotFound)
			},
			ExpectedStatus: http.StatusNotFound,
			ExpectedError:  "Property not found",
		},
		{
			Name:   "bad status",
			Method: http.MethodPatch,
			URL:    "/tenants/4/status",
			Body:   `{"status":"bogus"}`,
			Setup: func() {
				suite.mockService.EXPECT().UpdateStatus(gomock.Any(), uint(4), gomock.Any()).
					Return(nil, apperrors.NewValidationError("status", "Invalid status. Must be one of: active, moved_out, inactive, evicted, pending"))
			},
			ExpectedStatus: http.StatusBadRequest,
			ExpectedError:  "Invalid status. Must be one of: active, moved_out, inactive, evicted, pending",
		},
		{
			Name:           "empty status body",
			Method:         http.MethodPatch,
			URL:            "/tenants/4/status",
			Body:           `{}`,
			ExpectedStatus: http.StatusBadRequest,
			ExpectedError:  "No data provided for update",
		},
		{
			Name:   "missing tenant on update",
			Method: http.MethodPut,
			URL:    "/tenants/9",
			Body:   `{"name":"Ann"}`,
			Setup: func() {
				suite.mockService.EXPECT().Update(gomock.Any(), uint(9), gomock.Any()).
					Return(nil, apperrors.NotFoundWithID("Tenant", 9))
			},
			ExpectedStatus: http.StatusNotFound,
			ExpectedError:  "Tenant with ID 9 not found",
		},
		{
			Name:   "store failure",
			Method: http.MethodGet,
			URL:    "/tenants",
			Setup: func() {
				suite.mockService.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			ExpectedStatus: http.StatusInternalServerError,
			ExpectedError:  "Failed to fetch tenants. Please try again later.",
		},
	})
}

func (suite *TenantHandlerTestSuite) TestCreateTenant_Success() {
	suite.mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&service.TenantResponse{
		ID: 1, PropertyID: 2, UnitNumber: "4B", Name: "Ann", MonthlyRent: 1200.5,
		LeaseStart: "2024-01-01T00:00:00.000Z", Status: "active",
	}, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/tenants", `{"property_id":2}`)

	var got map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	assert.Equal(suite.T(), 1200.5, got["monthly_rent"])
	assert.Nil(suite.T(), got["lease_end"])
	assert.NotContains(suite.T(), got, "property")
}

func (suite *TenantHandlerTestSuite) TestGetTenant_IncludesProperty() {
	suite.mockService.EXPECT().Get(gomock.Any(), uint(3)).Return(&service.TenantResponse{
		ID: 3, PropertyID: 2, Property: &service.PropertyRef{ID: 2, Name: "Maple"},
	}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/tenants/3", "")

	var got service.TenantResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), "Maple", got.Property.Name)
}

func (suite *TenantHandlerTestSuite) TestUpdateTenantStatus_Success() {
	suite.mockService.EXPECT().UpdateStatus(gomock.Any(), uint(4), map[string]interface{}{"status": "evicted"}).
		Return(&service.StatusResponse{ID: 4, Name: "Ann", Status: "evicted"}, nil)

	w := suite.http.MakeRequest(http.MethodPatch, "/tenants/4/status", `{"status":"evicted"}`)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `{"id":4,"name":"Ann","status":"evicted"}`, w.Body.String())
}

func TestTenantHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TenantHandlerTestSuite))
}
