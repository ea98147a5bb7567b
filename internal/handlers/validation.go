package handlers

import (
	"errors"
	"reflect"

	"github.com/SscSPs/compta_maroc/internal/core/domain"
	"github.com/SscSPs/compta_maroc/internal/core/fiscal"
	"github.com/SscSPs/compta_maroc/internal/utils/money"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators installs the decimal type func and the custom binding tags
// on gin's validator engine:
//
//	dgte0      decimal >= 0
//	dscale2    decimal with at most 2 fractional digits
//	vattype    a known VAT type tag
//	entrytype  a known journal entry type
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}

	v.RegisterCustomTypeFunc(decimalString, decimal.Decimal{})

	if err := v.RegisterValidation("dgte0", nonNegativeDecimal); err != nil {
		return err
	}
	if err := v.RegisterValidation("dscale2", currencyScaleDecimal); err != nil {
		return err
	}
	if err := v.RegisterValidation("vattype", knownVatType); err != nil {
		return err
	}
	return v.RegisterValidation("entrytype", knownEntryType)
}

func decimalString(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func nonNegativeDecimal(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && !d.IsNegative()
}

func currencyScaleDecimal(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && money.IsCurrencyScale(d)
}

func knownVatType(fl validator.FieldLevel) bool {
	_, err := fiscal.ParseVatType(fl.Field().String())
	return err == nil
}

func knownEntryType(fl validator.FieldLevel) bool {
	_, err := domain.ParseEntryType(fl.Field().String())
	return err == nil
}
