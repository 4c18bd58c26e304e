package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	err := validate.RegisterValidation("pay_mode", validatePayMode)
	if err != nil {
		return
	}
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePayMode(fl validator.FieldLevel) bool {
	mode := fl.Field().String()
	validModes := []string{"per_mile", "per_cuft", "per_mile_and_cuft", "percent_of_revenue", "flat_daily_rate"}

	for _, validMode := range validModes {
		if mode == validMode {
			return true
		}
	}
	return false
}
