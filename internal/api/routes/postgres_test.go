//go:build integration

package routes_test

import (
	"net/http"
	"os"
	"testing"

	"property-manager-backend/internal/api/routes"
	"property-manager-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}

// PostgresRoutesTestSuite runs the HTTP scenarios against a real postgres
type PostgresRoutesTestSuite struct {
	suite.Suite
	base *testutils.BaseTestSuite
	http *testutils.HTTPTestSuite
}

func (s *PostgresRoutesTestSuite) SetupSuite() {
	s.base = testutils.SetupTestSuite(s.T())
	s.http = &testutils.HTTPTestSuite{Router: routes.SetupRoutes(s.base.DB, s.base.Config)}
}

func (s *PostgresRoutesTestSuite) SetupTest() {
	s.base.CleanTestDB()
}

func (s *PostgresRoutesTestSuite) TestExplicitIDThenGeneratedID() {
	first := s.http.MakeRequest(http.MethodPost, "/api/properties/10", propertyBody)
	require.Equal(s.T(), http.StatusCreated, first.Code, first.Body.String())

	dup := s.http.MakeRequest(http.MethodPost, "/api/properties/10", propertyBody)
	testutils.AssertErrorResponse(s.T(), dup, http.StatusConflict, "Property with ID 10 already exists")

	var created struct {
		ID uint `json:"id"`
	}
	testutils.AssertJSONResponse(s.T(), s.http.MakeRequest(http.MethodPost, "/api/properties", propertyBody), http.StatusCreated, &created)
	assert.Greater(s.T(), created.ID, uint(10))
}

func (s *PostgresRoutesTestSuite) TestTenantForMissingProperty() {
	w := s.http.MakeRequest(http.MethodPost, "/api/tenants",
		`{"property_id":404,"unit_number":"1A","name":"Ann","monthly_rent":900,"lease_start":"2024-01-01","status":"active"}`)

	testutils.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Property not found")
}

func TestPostgresRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(PostgresRoutesTestSuite))
}
