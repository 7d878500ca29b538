package helper

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ShriyanshSinghPatel/AngularForm/models"
	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

// DecodeJSON reads a single JSON value into dst. Failures, including data
// after the value, come back as a ValidationError on the "body" field.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ValidationError{Field: "body", Message: "request body is required"}
		}
		return ValidationError{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return ValidationError{Field: "body", Message: "invalid JSON: unexpected data after the request body"}
	}
	return nil
}

// Validate runs the struct tags of v and reports the first failure as a ValidationError.
func Validate(v interface{}) error {
	return ValidationFromError(models.Validate(v))
}

// ValidationFromError converts validator output into a ValidationError
// naming the first offending field.
func ValidationFromError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return ValidationError{Field: "body", Message: err.Error()}
	}

	fe := verrs[0]
	return ValidationError{Field: fieldPath(fe), Message: describe(fe)}
}

// fieldPath drops the struct name from the namespace: "OrderCreate.items[0].quantity" -> "items[0].quantity".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "min":
		if fe.Param() == "1" {
			return "must not be empty"
		}
		return "must be at least " + fe.Param()
	case "menucategory":
		names := make([]string, len(models.MenuCategories))
		for i, c := range models.MenuCategories {
			names[i] = string(c)
		}
		return "must be one of: " + strings.Join(names, ", ")
	default:
		return fmt.Sprintf("failed on the '%s' check", fe.Tag())
	}
}
