package service

import (
	"errors"
	"fmt"
)

// Service-level sentinel errors, mapped to HTTP responses in the handlers.
var (
	ErrInvalidCategory = errors.New("category does not exist")
	ErrInvalidQuantity = errors.New("quantity must not be negative")
	ErrItemNotFound    = errors.New("menu item not found")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrOrderNotFound   = errors.New("order not found")
	ErrSessionNotFound = errors.New("session not found")
)

// ValidationError reports a missing or malformed customer field at checkout.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q is required", e.Field)
}

// NewValidationError builds a ValidationError for a named field.
func NewValidationError(field string) *ValidationError {
	return &ValidationError{Field: field}
}
