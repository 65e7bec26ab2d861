package validator

import "github.com/go-playground/validator/v10"

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("lat", validateLat)
	validate.RegisterValidation("lng", validateLng)
	validate.RegisterValidation("assistance", validateAssistance)
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}

// oneof cannot express values with spaces, so the external assistance
// choices get their own rule.
func validateAssistance(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "With external support", "Without external support":
		return true
	}
	return false
}
