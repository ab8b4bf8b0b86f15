package seed_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "property-manager-backend/internal/errors"
	"property-manager-backend/internal/logger"
	"property-manager-backend/internal/mocks"
	"property-manager-backend/internal/seed"
	"property-manager-backend/internal/service"
	"property-manager-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const fixtures = `
properties:
  - id: 1
    name: Maple Court
    address: 1 Maple St
    country: NL
    city: Utrecht
    postal_code: 3511AA
    type: apartment
    total_units: 24
    monthly_rent: 1450.50
    status: available
tenants:
  - property_id: 1
    unit_number: 4B
    name: Ann de Vries
    email: ann@example.com
    monthly_rent: 900
    lease_start: 2024-01-01
    lease_end: 2025-01-01
    status: active
expenses:
  - property_id: 1
    description: Roof repair
    category: maintenance
    amount: 1200
    date: 2024-03-15
payments:
  - tenant_id: 1
    amount: 900
    method: bank transfer
    date: 2024-02-01
financials:
  - property_id: 1
    category: insurance
    amount: 85.5
    recurring: true
`

type SeedTestSuite struct {
	suite.Suite
	services *service.Services
}

func (s *SeedTestSuite) SetupTest() {
	logger.SetupWithOutput("error", io.Discard)
	s.services = service.NewServices(testutils.NewSQLiteDB(s.T()))
}

func (s *SeedTestSuite) load(doc string) (*seed.Result, error) {
	f, err := seed.Parse(strings.NewReader(doc))
	require.NoError(s.T(), err)
	return seed.NewLoader(s.services).Load(context.Background(), f)
}

func (s *SeedTestSuite) TestLoadsEveryEntity() {
	res, err := s.load(fixtures)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), map[string]int{
		"properties": 1, "tenants": 1, "expenses": 1, "payments": 1, "financials": 1,
	}, res.Created)

	property, err := s.services.Properties.Get(context.Background(), 1)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Maple Court", property.Name)
	assert.Equal(s.T(), 1450.5, property.MonthlyRent)

	tenant, err := s.services.Tenants.Get(context.Background(), 1)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "2024-01-01T00:00:00.000Z", tenant.LeaseStart)
	require.NotNil(s.T(), tenant.Property)
	assert.Equal(s.T(), "Maple Court", tenant.Property.Name)
}

func (s *SeedTestSuite) TestRerunSkipsExistingProperty() {
	_, err := s.load(fixtures)
	require.NoError(s.T(), err)

	res, err := s.load(fixtures)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 1, res.Skipped["properties"])
	assert.Zero(s.T(), res.Created["properties"])
}

func (s *SeedTestSuite) TestInvalidRowStopsTheRun() {
	doc := strings.Replace(fixtures, "status: active", "status: Active", 1)

	res, err := s.load(doc)

	require.Error(s.T(), err)
	assert.True(s.T(), apperrors.IsValidation(err))
	assert.Contains(s.T(), err.Error(), "tenants[0]")
	assert.Equal(s.T(), 1, res.Created["properties"])
	assert.Zero(s.T(), res.Created["tenants"])
}

func (s *SeedTestSuite) TestInvalidExplicitID() {
	_, err := s.load("properties:\n  - id: abc\n    name: X\n")

	require.Error(s.T(), err)
	assert.True(s.T(), apperrors.IsValidation(err))
}

func TestSeedTestSuite(t *testing.T) {
	suite.Run(t, new(SeedTestSuite))
}

func TestParse_RejectsUnknownSections(t *testing.T) {
	_, err := seed.Parse(strings.NewReader("owners:\n  - name: x\n"))
	assert.Error(t, err)
}

func TestParse_EmptyDocument(t *testing.T) {
	f, err := seed.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Properties)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixtures), 0o600))

	f, err := seed.ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, f.Properties, 1)
	assert.Len(t, f.Payments, 1)

	_, err = seed.ParseFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_PassesRowsWithoutIDToService(t *testing.T) {
	logger.SetupWithOutput("error", io.Discard)
	ctrl := gomock.NewController(t)
	properties := mocks.NewMockPropertyServiceInterface(ctrl)

	properties.EXPECT().CreateWithID(gomock.Any(), uint(5), map[string]interface{}{"name": "A"}).
		Return(nil, apperrors.AlreadyExistsWithID("Property", 5))
	properties.EXPECT().Create(gomock.Any(), map[string]interface{}{"name": "B"}).
		Return(&service.PropertyResponse{ID: 6}, nil)

	f := &seed.Fixtures{Properties: []map[string]interface{}{
		{"id": 5, "name": "A"},
		{"name": "B"},
	}}
	res, err := seed.NewLoader(&service.Services{Properties: properties}).Load(context.Background(), f)

	require.NoError(t, err)
	assert.Equal(t, 1, res.Created["properties"])
	assert.Equal(t, 1, res.Skipped["properties"])
	assert.Equal(t, 5, f.Properties[0]["id"], "fixtures are not mutated")
}
