// Package validation checks decoded JSON bodies against per-operation field tables
// and normalizes the accepted values for persistence.
package validation

import (
	"fmt"

	apperrors "property-manager-backend/internal/errors"
)

// Kind is the value type a field accepts
type Kind int

const (
	String Kind = iota
	Integer
	Money
	Reference
	Enum
	Date
	Bool
)

// MaxMoney bounds every monetary field
const MaxMoney = 1000000

// Field describes one accepted body key
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	Min, Max int64    // Integer bounds, inclusive
	Label    string   // Reference target shown in messages, e.g. "Property"
	Values   []string // Enum members in display order

	// InvalidWhenMissing reports an absent required value with the field's
	// type message instead of the missing-field message.
	InvalidWhenMissing bool
}

// absent reports whether raw counts as not sent. null is always absent; the empty
// string only for kinds whose values are text. 0 and false are present.
func (f Field) absent(raw interface{}) bool {
	if raw == nil {
		return true
	}
	s, ok := raw.(string)
	if !ok || s != "" {
		return false
	}
	switch f.Kind {
	case String, Date, Enum:
		return true
	}
	return false
}

// Rule is a cross-field check that runs once every field passed
type Rule func(Record) error

// Schema is an ordered field table; its field names are the operation's allow-list
type Schema struct {
	name    string
	fields  []Field
	allowed map[string]struct{}
	rules   []Rule
}

// NewSchema builds a schema. Field order decides which failure is reported first.
func NewSchema(name string, fields []Field, rules ...Rule) *Schema {
	allowed := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		allowed[f.Name] = struct{}{}
	}
	return &Schema{name: name, fields: fields, allowed: allowed, rules: rules}
}

// Name identifies the schema, e.g. "property.create"
func (s *Schema) Name() string {
	return s.name
}

// Fields returns the field table
func (s *Schema) Fields() []Field {
	return s.fields
}

// Allows reports whether key is on the allow-list
func (s *Schema) Allows(key string) bool {
	_, ok := s.allowed[key]
	return ok
}

// Required returns the names of the required fields in order
func (s *Schema) Required() []string {
	var names []string
	for _, f := range s.fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// ReplaceColumns returns the column map for a full replacement of a stored row:
// every field of the schema is written, and fields the request left out become NULL.
func (s *Schema) ReplaceColumns(r Record) map[string]interface{} {
	cols := make(map[string]interface{}, len(s.fields))
	for _, f := range s.fields {
		cols[f.Name] = r[f.Name]
	}
	return cols
}

// After requires the date field later, when set, to be strictly after earlier
func After(later, earlier string) Rule {
	return func(r Record) error {
		end := r.TimePtr(later)
		if end == nil || !r.Has(earlier) {
			return nil
		}
		if !end.After(r.Time(earlier)) {
			return apperrors.NewValidationError(later, fmt.Sprintf("%s must be after %s", later, earlier))
		}
		return nil
	}
}
