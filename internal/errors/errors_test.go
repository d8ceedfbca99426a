package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "sailor"}
		assert.Equal(t, "sailor not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "sailor"}
		err2 := &NotFoundError{Entity: "sailor"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrSailorNotFound, ErrEventNotFound))
	})

	t.Run("IsNotFound through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("acknowledge: %w", ErrSailorNotFound)
		assert.True(t, IsNotFound(wrapped))
		assert.True(t, errors.Is(wrapped, ErrSailorNotFound))
		assert.False(t, IsNotFound(ErrEmptySelection))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("email", "invalid")))
		assert.True(t, IsValidation(ErrEmptySelection))
		assert.True(t, IsValidation(fmt.Errorf("active__exact=maybe: %w", ErrInvalidFilter)))
		assert.False(t, IsValidation(ErrSailorNotFound))
	})
}

func TestSchemaError(t *testing.T) {
	err := &SchemaError{Missing: []string{"Quals", "Watches"}, Misplaced: []string{"Dinq"}}
	assert.Equal(t, "export schema invalid: missing columns Quals, Watches; misplaced columns Dinq", err.Error())
	assert.True(t, IsSchema(fmt.Errorf("build exporter: %w", err)))
	assert.False(t, IsSchema(ErrSailorNotFound))
}

func TestAuthAndConfigErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.True(t, IsAuthentication(ErrMissingToken))
	assert.True(t, IsAuthentication(ErrMalformedToken))
	assert.False(t, IsAuthentication(ErrJWTSecretMissing))
	assert.True(t, IsConfiguration(ErrJWTSecretMissing))
	assert.Equal(t, "LDAP host is required", ErrLDAPHostMissing.Error())
}
