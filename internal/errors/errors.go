package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
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

// ValidationError represents a validation error
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

// Is enables errors.Is() comparison for ValidationError
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Field == t.Field && e.Message == t.Message
}

// SchemaError is returned when an export schema is missing anchor
// columns or has them out of place.
type SchemaError struct {
	Missing   []string
	Misplaced []string
}

func (e *SchemaError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing columns "+strings.Join(e.Missing, ", "))
	}
	if len(e.Misplaced) > 0 {
		parts = append(parts, "misplaced columns "+strings.Join(e.Misplaced, ", "))
	}
	return fmt.Sprintf("export schema invalid: %s", strings.Join(parts, "; "))
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
	ErrSailorNotFound = &NotFoundError{Entity: "sailor"}
	ErrQualNotFound   = &NotFoundError{Entity: "qual"}
	ErrEventNotFound  = &NotFoundError{Entity: "event"}
)

// Admin action errors
var (
	ErrEmptySelection = &ValidationError{Field: "ids", Message: "no sailors selected"}
	ErrUnknownAction  = &ValidationError{Field: "action", Message: "unknown action"}
	ErrInvalidFilter  = errors.New("invalid filter value")
	ErrInvalidOrder   = errors.New("invalid ordering field")
	ErrInvalidRRule   = errors.New("invalid recurrence rule")
	ErrSeriesTooLong  = errors.New("recurrence rule yields too many occurrences")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid username or password"}
	ErrMissingToken       = &AuthenticationError{Message: "authorization header is required"}
	ErrMalformedToken     = &AuthenticationError{Message: "invalid authorization header format"}
)

// Configuration Errors
var (
	ErrJWTSecretMissing = &ConfigurationError{Message: "JWT secret is required"}
	ErrLDAPHostMissing  = &ConfigurationError{Message: "LDAP host is required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError or one of the
// request-shape sentinels
func IsValidation(err error) bool {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return true
	}
	return errors.Is(err, ErrInvalidFilter) || errors.Is(err, ErrInvalidOrder) ||
		errors.Is(err, ErrInvalidRRule) || errors.Is(err, ErrSeriesTooLong)
}

// IsSchema checks if an error is a SchemaError
func IsSchema(err error) bool {
	var schemaErr *SchemaError
	return errors.As(err, &schemaErr)
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

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
