// Package seed loads YAML fixtures through the entity services, so every
// fixture row passes the same validation as an API request.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	apperrors "property-manager-backend/internal/errors"
	"property-manager-backend/internal/logger"
	"property-manager-backend/internal/service"

	"gopkg.in/yaml.v3"
)

// Fixtures is the document layout of a seed file. Property rows may carry an
// explicit id so that later rows can reference them.
type Fixtures struct {
	Properties []map[string]interface{} `yaml:"properties"`
	Tenants    []map[string]interface{} `yaml:"tenants"`
	Expenses   []map[string]interface{} `yaml:"expenses"`
	Payments   []map[string]interface{} `yaml:"payments"`
	Financials []map[string]interface{} `yaml:"financials"`
}

// Result counts what a run did per entity
type Result struct {
	Created map[string]int
	Skipped map[string]int
}

// Parse decodes a fixture document
func Parse(r io.Reader) (*Fixtures, error) {
	var f Fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}
	return &f, nil
}

// ParseFile decodes the fixture document at path
func ParseFile(path string) (*Fixtures, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixtures: %w", err)
	}
	defer file.Close()
	return Parse(file)
}

// Loader applies fixtures through the services
type Loader struct {
	services *service.Services
}

// NewLoader creates a loader over services
func NewLoader(services *service.Services) *Loader {
	return &Loader{services: services}
}

// Load inserts fixtures in dependency order: properties, tenants, then the ledgers.
// A property whose explicit id is taken is skipped, which makes re-running a
// seed file harmless. Any other failure stops the run.
func (l *Loader) Load(ctx context.Context, f *Fixtures) (*Result, error) {
	res := &Result{Created: map[string]int{}, Skipped: map[string]int{}}
	log := logger.WithContext(ctx)

	for i, row := range f.Properties {
		row = normalize(row)
		id, hasID, err := explicitID(row)
		if err != nil {
			return res, fmt.Errorf("properties[%d]: %w", i, err)
		}
		if hasID {
			_, err = l.services.Properties.CreateWithID(ctx, id, row)
			if apperrors.IsAlreadyExists(err) {
				log.WithField("property_id", id).Info("property already present, skipping")
				res.Skipped["properties"]++
				continue
			}
		} else {
			_, err = l.services.Properties.Create(ctx, row)
		}
		if err != nil {
			return res, fmt.Errorf("properties[%d]: %w", i, err)
		}
		res.Created["properties"]++
	}

	steps := []struct {
		name   string
		rows   []map[string]interface{}
		create func(context.Context, map[string]interface{}) error
	}{
		{"tenants", f.Tenants, func(ctx context.Context, in map[string]interface{}) error {
			_, err := l.services.Tenants.Create(ctx, in)
			return err
		}},
		{"expenses", f.Expenses, func(ctx context.Context, in map[string]interface{}) error {
			_, err := l.services.Expenses.Create(ctx, in)
			return err
		}},
		{"payments", f.Payments, func(ctx context.Context, in map[string]interface{}) error {
			_, err := l.services.Payments.Create(ctx, in)
			return err
		}},
		{"financials", f.Financials, func(ctx context.Context, in map[string]interface{}) error {
			_, err := l.services.Financials.Create(ctx, in)
			return err
		}},
	}

	for _, step := range steps {
		for i, row := range step.rows {
			if err := step.create(ctx, normalize(row)); err != nil {
				return res, fmt.Errorf("%s[%d]: %w", step.name, i, err)
			}
			res.Created[step.name]++
		}
	}

	log.WithFields(map[string]interface{}{
		"created": res.Created,
		"skipped": res.Skipped,
	}).Info("fixtures loaded")
	return res, nil
}

// explicitID removes "id" from row and returns it
func explicitID(row map[string]interface{}) (uint, bool, error) {
	raw, ok := row["id"]
	if !ok {
		return 0, false, nil
	}
	delete(row, "id")

	n, ok := raw.(int)
	if !ok || n <= 0 {
		return 0, false, apperrors.NewValidationError("id", "Invalid property ID. Must be a positive number.")
	}
	return uint(n), true, nil
}

// normalize copies row and renders YAML timestamps as the strings the validator expects
func normalize(row map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(row))
	for k, v := range row {
		if t, ok := v.(time.Time); ok {
			v = t.UTC().Format(time.RFC3339)
		}
		out[k] = v
	}
	return out
}
