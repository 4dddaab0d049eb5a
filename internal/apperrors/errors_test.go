package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/bizos_calc/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTypedErrorsUnwrapToSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"validation", apperrors.NewValidationError("quantity", "must be >= 0"), apperrors.ErrValidation},
		{"insufficient lots", &apperrors.InsufficientLotsError{Symbol: "AAPL", Requested: decimal.NewFromInt(10), Available: decimal.NewFromInt(4)}, apperrors.ErrInsufficientLots},
		{"unsupported method", &apperrors.UnsupportedCostBasisMethodError{Method: "hifo"}, apperrors.ErrUnsupportedCostBasisMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("service call: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	err := apperrors.NewValidationError("items[0].quantity", "must not be negative, got %s", "-1")
	assert.Equal(t, "validation error: items[0].quantity: must not be negative, got -1", err.Error())

	var ve *apperrors.ValidationError
	assert.True(t, errors.As(fmt.Errorf("wrap: %w", err), &ve))
	assert.Equal(t, "items[0].quantity", ve.Field)
}

func TestInsufficientLotsError_Message(t *testing.T) {
	err := &apperrors.InsufficientLotsError{Symbol: "MSFT", Requested: decimal.RequireFromString("12.5"), Available: decimal.NewFromInt(10)}
	assert.Contains(t, err.Error(), "MSFT requested 12.5, only 10 open")
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperrors.NewAppError(500, "failed to save report", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to save report: connection reset", err.Error())
}

func TestNewNotFoundError(t *testing.T) {
	err := apperrors.NewNotFoundError("tax report r-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "resource not found: tax report r-1", err.Error())
}
