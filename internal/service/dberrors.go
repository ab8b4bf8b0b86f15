package service

import (
	"errors"

	apperrors "property-manager-backend/internal/errors"
	"property-manager-backend/internal/validation"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes reported by postgres
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// dbTarget names what a query was about so backend errors can be reported in domain terms
type dbTarget struct {
	entity string // e.g. "Property"
	id     uint   // zero for creates
	ref    string // entity referenced by a foreign key, e.g. "Property" for a tenant
}

// translate maps gorm and postgres failures to the error taxonomy. Unknown errors pass through.
func (t dbTarget) translate(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.NotFoundWithID(t.entity, t.id)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return t.conflict()
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return t.missingReference()
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return t.conflict()
		case pgForeignKeyViolation:
			return t.missingReference()
		}
	}

	return err
}

func (t dbTarget) conflict() error {
	return apperrors.NewAlreadyExistsError(t.entity, "with this information")
}

func (t dbTarget) missingReference() error {
	if t.ref == "" {
		return apperrors.ErrRelatedNotFound
	}
	return apperrors.NewNotFoundError(t.ref)
}

// validateThen runs the validator and hands the accepted record to persist.
// Nothing reaches the database when validation fails.
func validateThen[R any](v *validation.Validator, schema *validation.Schema, input map[string]interface{}, persist func(validation.Record) (R, error)) (R, error) {
	rec, err := v.Validate(schema, input)
	if err != nil {
		var zero R
		return zero, err
	}
	return persist(rec)
}
