package validation_test

import (
	"encoding/json"
	"sort"
	"strings"
	"testing"
	"time"

	apperrors "property-manager-backend/internal/errors"
	"property-manager-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
	v *validation.Validator
}

func (suite *ValidatorTestSuite) SetupTest() {
	suite.v = validation.New(validator.New())
}

func validProperty() map[string]interface{} {
	return map[string]interface{}{
		"name":         "Maple Court",
		"address":      "12 Maple St",
		"country":      "US",
		"city":         "Springfield",
		"postal_code":  "12345",
		"type":         "Apartment",
		"total_units":  json.Number("24"),
		"monthly_rent": json.Number("1850.50"),
		"status":       "available",
	}
}

func validTenant() map[string]interface{} {
	return map[string]interface{}{
		"property_id":  json.Number("1"),
		"unit_number":  "4B",
		"name":         "Jordan Lee",
		"monthly_rent": json.Number("1200"),
		"lease_start":  "2024-01-01",
		"status":       "active",
	}
}

// decode mimics the handlers: numbers arrive as json.Number
func decode(t *testing.T, body string) map[string]interface{} {
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	var m map[string]interface{}
	require.NoError(t, dec.Decode(&m))
	return m
}

func (suite *ValidatorTestSuite) message(err error) string {
	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
	msg, ok := apperrors.ValidationMessage(err)
	require.True(suite.T(), ok)
	return msg
}

func (suite *ValidatorTestSuite) TestValidProperty() {
	rec, err := suite.v.Validate(validation.PropertyCreate, validProperty())

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Maple Court", rec.String("name"))
	assert.Equal(suite.T(), 24, rec.Int("total_units"))
	assert.True(suite.T(), decimal.RequireFromString("1850.50").Equal(rec.Decimal("monthly_rent")))
	assert.False(suite.T(), rec.Has("notes"))
}

func (suite *ValidatorTestSuite) TestMissingRequiredField_NamesFirstInSchemaOrder() {
	in := validProperty()
	delete(in, "city")
	delete(in, "status")

	_, err := suite.v.Validate(validation.PropertyCreate, in)

	assert.Equal(suite.T(), "Missing required field: city", suite.message(err))
}

func (suite *ValidatorTestSuite) TestNullAndEmptyStringAreMissing() {
	in := validProperty()
	in["address"] = nil
	_, err := suite.v.Validate(validation.PropertyCreate, in)
	assert.Equal(suite.T(), "Missing required field: address", suite.message(err))

	in = validProperty()
	in["name"] = ""
	_, err = suite.v.Validate(validation.PropertyCreate, in)
	assert.Equal(suite.T(), "Missing required field: name", suite.message(err))

	in = validProperty()
	in["status"] = ""
	_, err = suite.v.Validate(validation.PropertyCreate, in)
	assert.Equal(suite.T(), "Missing required field: status", suite.message(err))
}

func (suite *ValidatorTestSuite) TestEmptyStringOnNumericFieldFailsTypeCheck() {
	in := validProperty()
	in["total_units"] = ""
	_, err := suite.v.Validate(validation.PropertyCreate, in)
	assert.Equal(suite.T(), "total_units must be a positive integer between 1 and 10,000", suite.message(err))

	in = validProperty()
	in["monthly_rent"] = ""
	_, err = suite.v.Validate(validation.PropertyCreate, in)
	assert.Equal(suite.T(), "monthly_rent must be a positive number between $0 and $1,000,000", suite.message(err))

	_, err = suite.v.Validate(validation.PaymentCreate, map[string]interface{}{
		"tenant_id": "",
		"amount":    json.Number("10"),
		"date":      "2024-03-01",
	})
	assert.Equal(suite.T(), "Tenant ID must be a valid positive number", suite.message(err))

	_, err = suite.v.Validate(validation.FinancialCreate, map[string]interface{}{
		"property_id": json.Number("2"),
		"category":    "insurance",
		"amount":      json.Number("300"),
		"recurring":   "",
	})
	assert.Equal(suite.T(), "recurring must be a boolean", suite.message(err))
}

func (suite *ValidatorTestSuite) TestMissingStatusOnStatusUpdateListsValues() {
	for _, in := range []map[string]interface{}{{}, {"status": nil}, {"status": ""}} {
		_, err := suite.v.Validate(validation.TenantStatus, in)
		assert.Equal(suite.T(), "Invalid status. Must be one of: active, moved_out, inactive, evicted, pending", suite.message(err))
	}

	_, err := suite.v.Validate(validation.PropertyStatus, map[string]interface{}{})
	assert.Equal(suite.T(), "Invalid status. Must be one of: available, occupied, maintenance, renovation, vacant, sold", suite.message(err))
}

func (suite *ValidatorTestSuite) TestZeroIsPresent() {
	in := validProperty()
	in["monthly_rent"] = json.Number("0")

	rec, err := suite.v.Validate(validation.PropertyCreate, in)

	require.NoError(suite.T(), err)
	assert.True(suite.T(), rec.Decimal("monthly_rent").IsZero())
}

func (suite *ValidatorTestSuite) TestFalseIsPresent() {
	rec, err := suite.v.Validate(validation.FinancialCreate, map[string]interface{}{
		"property_id": json.Number("2"),
		"category":    "insurance",
		"amount":      json.Number("300"),
		"recurring":   false,
	})

	require.NoError(suite.T(), err)
	assert.True(suite.T(), rec.Has("recurring"))
	assert.False(suite.T(), rec.Bool("recurring"))
}

func (suite *ValidatorTestSuite) TestInvalidFields_ListsEveryUnknownKey() {
	in := validProperty()
	in["id"] = json.Number("9")
	in["owner"] = "someone"

	_, err := suite.v.Validate(validation.PropertyUpdate, in)

	msg := suite.message(err)
	require.True(suite.T(), strings.HasPrefix(msg, "Invalid fields: "))
	keys := strings.Split(strings.TrimPrefix(msg, "Invalid fields: "), ", ")
	assert.ElementsMatch(suite.T(), []string{"id", "owner"}, keys)
}

func (suite *ValidatorTestSuite) TestMissingCheckedBeforeInvalidFields() {
	in := validProperty()
	delete(in, "type")
	in["bogus"] = true

	_, err := suite.v.Validate(validation.PropertyCreate, in)

	assert.Equal(suite.T(), "Missing required field: type", suite.message(err))
}

func (suite *ValidatorTestSuite) TestTotalUnitsRange() {
	cases := []struct {
		value interface{}
		ok    bool
	}{
		{json.Number("1"), true},
		{json.Number("10000"), true},
		{json.Number("0"), false},
		{json.Number("10001"), false},
		{json.Number("2.5"), false},
		{json.Number("-3"), false},
		{"12", true},
		{"twelve", false},
		{float64(7), true},
		{true, false},
	}

	for _, tc := range cases {
		in := validProperty()
		in["total_units"] = tc.value
		_, err := suite.v.Validate(validation.PropertyCreate, in)
		if tc.ok {
			assert.NoError(suite.T(), err, "%v", tc.value)
			continue
		}
		assert.Equal(suite.T(), "total_units must be a positive integer between 1 and 10,000", suite.message(err), "%v", tc.value)
	}
}

func (suite *ValidatorTestSuite) TestMoneyRange() {
	cases := []struct {
		value interface{}
		ok    bool
	}{
		{json.Number("0"), true},
		{json.Number("1000000"), true},
		{json.Number("999999.99"), true},
		{json.Number("1000000.01"), false},
		{json.Number("-0.01"), false},
		{"250.75", true},
		{"abc", false},
		{false, false},
	}

	for _, tc := range cases {
		in := validProperty()
		in["monthly_rent"] = tc.value
		_, err := suite.v.Validate(validation.PropertyCreate, in)
		if tc.ok {
			assert.NoError(suite.T(), err, "%v", tc.value)
			continue
		}
		assert.Equal(suite.T(), "monthly_rent must be a positive number between $0 and $1,000,000", suite.message(err), "%v", tc.value)
	}
}

func (suite *ValidatorTestSuite) TestMoneyRoundedToCents() {
	in := validProperty()
	in["monthly_rent"] = json.Number("100.129")

	rec, err := suite.v.Validate(validation.PropertyCreate, in)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "100.13", rec.Decimal("monthly_rent").StringFixed(2))
}

func (suite *ValidatorTestSuite) TestStatusEnum_CaseSensitive() {
	in := validProperty()
	in["status"] = "Available"

	_, err := suite.v.Validate(validation.PropertyCreate, in)

	assert.Equal(suite.T(),
		"Invalid status. Must be one of: available, occupied, maintenance, renovation, vacant, sold",
		suite.message(err))
}

func (suite *ValidatorTestSuite) TestTenantStatus_Bogus() {
	_, err := suite.v.Validate(validation.TenantStatus, map[string]interface{}{"status": "bogus"})

	assert.Equal(suite.T(),
		"Invalid status. Must be one of: active, moved_out, inactive, evicted, pending",
		suite.message(err))
}

func (suite *ValidatorTestSuite) TestRequiredStringTrimmedEmpty() {
	in := validProperty()
	in["city"] = "   "

	_, err := suite.v.Validate(validation.PropertyCreate, in)

	assert.Equal(suite.T(), "city cannot be empty", suite.message(err))
}

func (suite *ValidatorTestSuite) TestStringsAreTrimmed() {
	in := validProperty()
	in["name"] = "  Maple Court  "

	rec, err := suite.v.Validate(validation.PropertyCreate, in)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Maple Court", rec.String("name"))
}

func (suite *ValidatorTestSuite) TestNonStringForStringField() {
	in := validProperty()
	in["city"] = json.Number("42")

	_, err := suite.v.Validate(validation.PropertyCreate, in)

	assert.Equal(suite.T(), "city must be a string", suite.message(err))
}

func (suite *ValidatorTestSuite) TestOptionalCleared() {
	in := validProperty()
	in["notes"] = nil

	rec, err := suite.v.Validate(validation.PropertyUpdate, in)

	require.NoError(suite.T(), err)
	assert.True(suite.T(), rec.Has("notes"))
	assert.Nil(suite.T(), rec.StringPtr("notes"))
	cols := rec.Columns()
	v, ok := cols["notes"]
	assert.True(suite.T(), ok)
	assert.Nil(suite.T(), v)
}

func (suite *ValidatorTestSuite) TestReplaceColumnsClearsOmittedOptionals() {
	in := validTenant()
	delete(in, "property_id")
	delete(in, "unit_number")
	delete(in, "lease_end")

	rec, err := suite.v.Validate(validation.TenantUpdate, in)
	require.NoError(suite.T(), err)

	cols := validation.TenantUpdate.ReplaceColumns(rec)
	assert.Len(suite.T(), cols, len(validation.TenantUpdate.Fields()))
	v, ok := cols["lease_end"]
	assert.True(suite.T(), ok)
	assert.Nil(suite.T(), v)
	assert.NotContains(suite.T(), cols, "property_id")
}

func (suite *ValidatorTestSuite) TestReferenceID() {
	in := validTenant()
	in["property_id"] = json.Number("0")

	_, err := suite.v.Validate(validation.TenantCreate, in)

	assert.Equal(suite.T(), "Property ID must be a valid positive number", suite.message(err))

	in["property_id"] = json.Number("3")
	rec, err := suite.v.Validate(validation.TenantCreate, in)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(3), rec.Uint("property_id"))
}

func (suite *ValidatorTestSuite) TestDates() {
	in := validTenant()
	in["lease_start"] = "2024-03-01T10:00:00Z"
	in["lease_end"] = "2025-02-28"

	rec, err := suite.v.Validate(validation.TenantCreate, in)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), rec.Time("lease_start"))
	require.NotNil(suite.T(), rec.TimePtr("lease_end"))
	assert.Equal(suite.T(), time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), *rec.TimePtr("lease_end"))

	in["lease_start"] = "March 1st"
	_, err = suite.v.Validate(validation.TenantCreate, in)
	assert.Equal(suite.T(), "lease_start must be a valid ISO-8601 date", suite.message(err))
}

func (suite *ValidatorTestSuite) TestLeaseEndMustFollowLeaseStart() {
	in := validTenant()
	in["lease_end"] = "2024-01-01"

	_, err := suite.v.Validate(validation.TenantCreate, in)

	assert.Equal(suite.T(), "lease_end must be after lease_start", suite.message(err))

	in["lease_end"] = nil
	_, err = suite.v.Validate(validation.TenantCreate, in)
	assert.NoError(suite.T(), err)
}

func (suite *ValidatorTestSuite) TestTenantUpdateRejectsPropertyID() {
	in := validTenant()

	_, err := suite.v.Validate(validation.TenantUpdate, in)

	assert.Equal(suite.T(), "Invalid fields: property_id, unit_number", sortedInvalid(suite.message(err)))
}

func (suite *ValidatorTestSuite) TestBooleanField() {
	_, err := suite.v.Validate(validation.ExpenseCreate, map[string]interface{}{
		"property_id": json.Number("1"),
		"description": "Roof repair",
		"category":    "maintenance",
		"amount":      json.Number("1200"),
		"date":        "2024-05-01",
		"recurring":   "yes",
	})

	assert.Equal(suite.T(), "recurring must be a boolean", suite.message(err))
}

func (suite *ValidatorTestSuite) TestDecodedBody() {
	in := decode(suite.T(), `{"tenant_id": 4, "amount": 950.25, "date": "2024-06-01", "method": "bank transfer"}`)

	rec, err := suite.v.Validate(validation.PaymentCreate, in)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(4), rec.Uint("tenant_id"))
	assert.Equal(suite.T(), "950.25", rec.Decimal("amount").StringFixed(2))
	assert.Equal(suite.T(), "bank transfer", *rec.StringPtr("method"))
}

func (suite *ValidatorTestSuite) TestLookup() {
	s, ok := validation.Lookup("tenant", "update")
	require.True(suite.T(), ok)
	assert.Same(suite.T(), validation.TenantUpdate, s)

	_, ok = validation.Lookup("tenant", "delete")
	assert.False(suite.T(), ok)

	assert.Contains(suite.T(), validation.Names(), "property.status")
	assert.Equal(suite.T(), []string{"property_id", "unit_number", "name", "monthly_rent", "lease_start", "status"},
		validation.TenantCreate.Required())
}

func sortedInvalid(msg string) string {
	keys := strings.Split(strings.TrimPrefix(msg, "Invalid fields: "), ", ")
	sort.Strings(keys)
	return "Invalid fields: " + strings.Join(keys, ", ")
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
