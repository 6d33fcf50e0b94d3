package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// validCurrencyCode enforces the 3-letter uppercase currency code format used
// throughout the API.
func validCurrencyCode(fl validator.FieldLevel) bool {
	return currencyCodePattern.MatchString(fl.Field().String())
}

// RegisterCustomValidators wires custom binding validations into gin's
// validator engine. Must run once before routes start serving.
func RegisterCustomValidators() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return v.RegisterValidation("currencycode", validCurrencyCode)
	}
	return nil
}
