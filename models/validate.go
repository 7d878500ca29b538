package models

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their wire names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("menucategory", func(fl validator.FieldLevel) bool {
		return MenuCategory(fl.Field().String()).Valid()
	})

	return v
}

// Validate runs struct tag validation. Failures are validator.ValidationErrors.
func Validate(v interface{}) error {
	return validate.Struct(v)
}
