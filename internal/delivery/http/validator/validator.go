// Package validator checks request bodies against their `validate` struct tags.
package validator

import (
	"reflect"
	"strings"

	"authsvc/internal/delivery/http/httperr"
	"authsvc/internal/delivery/http/protocol"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// bodyParam names the request body itself when it is not a struct.
const bodyParam = "body"

// Validator reports the first tag violation as a MissingParamError or InvalidParamError
// named after the field's JSON key.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	return &Validator{validate: validate}
}

// NewValidation exposes the Validator as the controllers' Validation capability.
func NewValidation() protocol.Validation {
	return New()
}

// Validate implements protocol.Validation.
func (v *Validator) Validate(input any) error {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		if first.Tag() == "required" {
			return httperr.NewMissingParamError(first.Field())
		}

		return httperr.NewInvalidParamError(first.Field())
	}

	// Nil or non-struct input
	return httperr.NewInvalidParamError(bodyParam)
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}
