package dto

import (
	"fmt"
	"reflect"

	"github.com/SscSPs/bizos_calc/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators installs the custom binding tags used by the request DTOs
// on gin's default validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return RegisterValidatorsOn(v)
}

// RegisterValidatorsOn installs the custom tags on v.
func RegisterValidatorsOn(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	validations := map[string]validator.Func{
		"decimal_nonneg":    decimalNonNegative,
		"decimal_rate":      decimalRate,
		"line_item_kind":    lineItemKind,
		"payment_term":      paymentTerm,
		"cost_basis_method": costBasisMethod,
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s validator: %w", tag, err)
		}
	}
	return nil
}

// decimalValue exposes decimal fields to validator as their string form.
func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func fieldDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(field.String())
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

func decimalNonNegative(fl validator.FieldLevel) bool {
	d, ok := fieldDecimal(fl)
	return ok && !d.IsNegative()
}

// decimalRate accepts a ratio in [0, 1].
func decimalRate(fl validator.FieldLevel) bool {
	d, ok := fieldDecimal(fl)
	return ok && !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(1))
}

func lineItemKind(fl validator.FieldLevel) bool {
	return domain.LineItemKind(fl.Field().String()).IsValid()
}

// paymentTerm accepts loose spellings of the supported terms.
func paymentTerm(fl validator.FieldLevel) bool {
	return domain.ParsePaymentTerm(fl.Field().String()).IsKnown()
}

func costBasisMethod(fl validator.FieldLevel) bool {
	_, err := domain.ParseCostBasisMethod(fl.Field().String())
	return err == nil
}
