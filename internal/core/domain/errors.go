package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrShipmentNotFound    = errors.New("shipment not found")
	ErrReferenceNotFound   = errors.New("referenced entity not found")
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrConstraintViolation = errors.New("constraint violation")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
)

// ReferenceError reports which request field pointed at a missing reference
// row. It unwraps to ErrReferenceNotFound so callers can errors.Is on it.
type ReferenceError struct {
	Field string // request field, e.g. "carrier_id"
	Value string // the identifier that was not found
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s: %s %q does not exist", ErrReferenceNotFound, e.Field, e.Value)
}

func (e *ReferenceError) Unwrap() error { return ErrReferenceNotFound }

// ValidationError carries per-field validation messages.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
