package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller is not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInsufficientLots indicates a sale references more units than are open for a symbol.
var ErrInsufficientLots = errors.New("insufficient open lots")

// ErrUnsupportedCostBasisMethod indicates an unrecognized cost-basis method.
var ErrUnsupportedCostBasisMethod = errors.New("unsupported cost basis method")

// NewNotFoundError wraps ErrNotFound with a description of what was missing.
func NewNotFoundError(what string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, what)
}

// ValidationError describes malformed or out-of-range input.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidation.Error(), e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", ErrValidation.Error(), e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// InsufficientLotsError is returned when a sale exceeds the open quantity for its symbol.
type InsufficientLotsError struct {
	Symbol    string
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientLotsError) Error() string {
	return fmt.Sprintf("%s: %s requested %s, only %s open", ErrInsufficientLots.Error(), e.Symbol, e.Requested.String(), e.Available.String())
}

func (e *InsufficientLotsError) Unwrap() error { return ErrInsufficientLots }

// UnsupportedCostBasisMethodError carries the method string that could not be parsed.
type UnsupportedCostBasisMethodError struct {
	Method string
}

func (e *UnsupportedCostBasisMethodError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnsupportedCostBasisMethod.Error(), e.Method)
}

func (e *UnsupportedCostBasisMethodError) Unwrap() error { return ErrUnsupportedCostBasisMethod }

// AppError wraps infrastructure failures with an HTTP-ish status code.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }
