package validation

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record holds validated values keyed by field name. Only keys present in the
// request are set; an optional field sent as null or "" is present with a nil value.
type Record map[string]interface{}

// Has reports whether the request carried name
func (r Record) Has(name string) bool {
	_, ok := r[name]
	return ok
}

func (r Record) String(name string) string {
	s, _ := r[name].(string)
	return s
}

// StringPtr returns nil for absent or cleared values
func (r Record) StringPtr(name string) *string {
	s, ok := r[name].(string)
	if !ok {
		return nil
	}
	return &s
}

func (r Record) Int(name string) int {
	n, _ := r[name].(int64)
	return int(n)
}

func (r Record) Uint(name string) uint {
	n, _ := r[name].(uint)
	return n
}

func (r Record) Decimal(name string) decimal.Decimal {
	d, _ := r[name].(decimal.Decimal)
	return d
}

func (r Record) Time(name string) time.Time {
	t, _ := r[name].(time.Time)
	return t
}

// TimePtr returns nil for absent or cleared values
func (r Record) TimePtr(name string) *time.Time {
	t, ok := r[name].(time.Time)
	if !ok {
		return nil
	}
	return &t
}

func (r Record) Bool(name string) bool {
	b, _ := r[name].(bool)
	return b
}

// Columns returns the record as a column map for gorm Updates. Cleared values map to NULL.
func (r Record) Columns() map[string]interface{} {
	cols := make(map[string]interface{}, len(r))
	for k, v := range r {
		cols[k] = v
	}
	return cols
}
