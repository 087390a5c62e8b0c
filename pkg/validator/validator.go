package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

// Product codes: alphanumeric with optional hyphenated segments (P-001).
var productCodePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]*$`)

func init() {
	// uuid_required rejects the zero UUID on required reference fields
	validate.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		if id, ok := fl.Field().Interface().(uuid.UUID); ok {
			return id != uuid.Nil
		}
		return false
	})

	validate.RegisterValidation("product_code", func(fl validator.FieldLevel) bool {
		return productCodePattern.MatchString(fl.Field().String())
	})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}
