// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("period_type", validatePeriodType)
		_ = v.RegisterValidation("symbol", validateSymbol)
	}
}

func validatePeriodType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "annual", "quarterly":
		return true
	}
	return false
}

// validateSymbol rejects symbols with characters that could not appear in a
// ticker. Codes are otherwise stored exactly as supplied.
func validateSymbol(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r == '.' || r == '-' || r == '_' || r == '^' || r == '=':
		default:
			return false
		}
	}
	return true
}
