package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
	ID     uint // zero when the lookup was not by identifier
}

func (e *NotFoundError) Error() string {
	if e.ID > 0 {
		return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	ID      uint
	Context string // Additional context like "with this information"
}

func (e *AlreadyExistsError) Error() string {
	msg := e.Entity
	if e.ID > 0 {
		msg = fmt.Sprintf("%s with ID %d", e.Entity, e.ID)
	}
	msg += " already exists"
	if e.Context != "" {
		msg += " " + e.Context
	}
	return msg
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error. Message is safe to show to API callers.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrPropertyNotFound  = &NotFoundError{Entity: "Property"}
	ErrTenantNotFound    = &NotFoundError{Entity: "Tenant"}
	ErrExpenseNotFound   = &NotFoundError{Entity: "Expense"}
	ErrPaymentNotFound   = &NotFoundError{Entity: "Payment"}
	ErrFinancialNotFound = &NotFoundError{Entity: "Financial record"}
	ErrRelatedNotFound   = &NotFoundError{Entity: "Related record"}
)

// Already Exists Errors
var (
	ErrPropertyExists = &AlreadyExistsError{Entity: "Property", Context: "with this information"}
	ErrTenantExists   = &AlreadyExistsError{Entity: "Tenant", Context: "with this information"}
)

// Authentication Errors
var (
	ErrMissingAuthHeader = &AuthenticationError{Message: "Authorization header is required"}
	ErrInvalidAuthHeader = &AuthenticationError{Message: "Invalid authorization header format"}
	ErrInvalidToken      = &AuthenticationError{Message: "Invalid token"}
)

// Configuration Errors
var (
	ErrAuthSecretMissing = &ConfigurationError{Message: "AUTH_JWT_SECRET must be set in production"}
	ErrDatabaseNameEmpty = &ConfigurationError{Message: "database name is required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// ValidationMessage returns the caller-facing message of a ValidationError in err's chain.
func ValidationMessage(err error) (string, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message, true
	}
	return "", false
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NotFoundWithID creates a NotFoundError for a lookup by identifier
func NotFoundWithID(entity string, id uint) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// AlreadyExistsWithID creates an AlreadyExistsError for an explicit identifier
func AlreadyExistsWithID(entity string, id uint) error {
	return &AlreadyExistsError{Entity: entity, ID: id}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
