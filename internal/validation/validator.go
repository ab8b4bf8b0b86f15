package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	apperrors "property-manager-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

var (
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
	minInt64 = decimal.NewFromInt(math.MinInt64)
)

// Validator applies schemas to request bodies. Range and membership rules are
// delegated to go-playground/validator tags.
type Validator struct {
	validate *validator.Validate
	printer  *message.Printer
}

// New creates a Validator. A nil validate gets a fresh validator instance.
func New(validate *validator.Validate) *Validator {
	if validate == nil {
		validate = validator.New()
	}
	return &Validator{
		validate: validate,
		printer:  message.NewPrinter(language.English),
	}
}

// Validate checks input against schema and returns the normalized record.
// Checks run as presence, allow-list, per-field, cross-field; the first failure
// is returned as a *errors.ValidationError and nothing else is checked.
func (v *Validator) Validate(schema *Schema, input map[string]interface{}) (Record, error) {
	for _, f := range schema.fields {
		if f.Required && f.absent(input[f.Name]) {
			if f.InvalidWhenMissing {
				return nil, v.invalid(f)
			}
			return nil, apperrors.NewValidationError(f.Name, "Missing required field: "+f.Name)
		}
	}

	var invalid []string
	for key := range input {
		if !schema.Allows(key) {
			invalid = append(invalid, key)
		}
	}
	if len(invalid) > 0 {
		return nil, apperrors.NewValidationError("", "Invalid fields: "+strings.Join(invalid, ", "))
	}

	rec := make(Record, len(input))
	for _, f := range schema.fields {
		raw, ok := input[f.Name]
		if !ok {
			continue
		}
		val, err := v.field(f, raw)
		if err != nil {
			return nil, err
		}
		rec[f.Name] = val
	}

	for _, rule := range schema.rules {
		if err := rule(rec); err != nil {
			return nil, err
		}
	}

	return rec, nil
}

func (v *Validator) field(f Field, raw interface{}) (interface{}, error) {
	if f.absent(raw) {
		// optional and explicitly cleared
		return nil, nil
	}

	switch f.Kind {
	case String:
		s, ok := raw.(string)
		if !ok {
			return nil, v.fail(f.Name, "%s must be a string", f.Name)
		}
		s = strings.TrimSpace(s)
		if s == "" {
			if f.Required {
				return nil, v.fail(f.Name, "%s cannot be empty", f.Name)
			}
			return nil, nil
		}
		return s, nil

	case Integer:
		n, ok := integerOf(raw)
		if !ok || v.validate.Var(n, fmt.Sprintf("min=%d,max=%d", f.Min, f.Max)) != nil {
			return nil, v.invalid(f)
		}
		return n, nil

	case Money:
		d, ok := decimalOf(raw)
		if !ok || v.validate.Var(d.InexactFloat64(), fmt.Sprintf("gte=0,lte=%d", MaxMoney)) != nil {
			return nil, v.invalid(f)
		}
		return d.Round(2), nil

	case Reference:
		n, ok := integerOf(raw)
		if !ok || v.validate.Var(n, "gt=0") != nil {
			return nil, v.invalid(f)
		}
		return uint(n), nil

	case Enum:
		s, ok := raw.(string)
		if !ok || v.validate.Var(s, "oneof="+strings.Join(f.Values, " ")) != nil {
			return nil, v.invalid(f)
		}
		return s, nil

	case Date:
		s, ok := raw.(string)
		if !ok {
			return nil, v.invalid(f)
		}
		t, ok := parseDate(strings.TrimSpace(s))
		if !ok {
			return nil, v.invalid(f)
		}
		return t, nil

	case Bool:
		b, ok := raw.(bool)
		if !ok {
			return nil, v.invalid(f)
		}
		return b, nil
	}

	return nil, fmt.Errorf("field %s: unknown kind %d", f.Name, f.Kind)
}

func (v *Validator) fail(field, format string, args ...interface{}) error {
	return apperrors.NewValidationError(field, v.printer.Sprintf(format, args...))
}

// invalid builds the type or range failure for f
func (v *Validator) invalid(f Field) error {
	switch f.Kind {
	case Integer:
		return v.fail(f.Name, "%s must be a positive integer between %d and %d", f.Name, f.Min, f.Max)
	case Money:
		return v.fail(f.Name, "%s must be a positive number between $%d and $%d", f.Name, 0, MaxMoney)
	case Reference:
		return v.fail(f.Name, "%s ID must be a valid positive number", f.Label)
	case Enum:
		return v.fail(f.Name, "Invalid %s. Must be one of: %s", f.Name, strings.Join(f.Values, ", "))
	case Date:
		return v.fail(f.Name, "%s must be a valid ISO-8601 date", f.Name)
	case Bool:
		return v.fail(f.Name, "%s must be a boolean", f.Name)
	}
	return v.fail(f.Name, "%s must be a string", f.Name)
}

func decimalOf(raw interface{}) (decimal.Decimal, bool) {
	switch t := raw.(type) {
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		return d, err == nil
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat(t), true
	case float32:
		return decimalOf(float64(t))
	case int:
		return decimal.NewFromInt(int64(t)), true
	case int32:
		return decimal.NewFromInt(int64(t)), true
	case int64:
		return decimal.NewFromInt(t), true
	case uint:
		return decimal.NewFromUint64(uint64(t)), true
	case uint64:
		return decimal.NewFromUint64(t), true
	case decimal.Decimal:
		return t, true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return decimal.Decimal{}, false
		}
		d, err := decimal.NewFromString(s)
		return d, err == nil
	}
	return decimal.Decimal{}, false
}

func integerOf(raw interface{}) (int64, bool) {
	d, ok := decimalOf(raw)
	if !ok || !d.IsInteger() {
		return 0, false
	}
	if d.GreaterThan(maxInt64) || d.LessThan(minInt64) {
		return 0, false
	}
	return d.IntPart(), true
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
