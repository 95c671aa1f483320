package api

import (
	"catalogapi.app/pkg/validation"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validateNotBlank rejects strings made only of whitespace
func validateNotBlank(fl validator.FieldLevel) bool {
	return validation.IsNotEmpty(fl.Field().String())
}

// RegisterValidators installs the custom binding rules on gin's validator
func RegisterValidators() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return v.RegisterValidation("notblank", validateNotBlank)
	}
	return nil
}
