package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound request structs.
// Handlers translate the returned error into a 422 response.
type RequestValidator struct {
	v *validator.Validate
}

// NewRequestValidator builds the validator used for all request structs.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{v: validator.New()}
}

// Validate checks the struct tags and flattens failures into one error
// message naming the offending fields.
func (rv *RequestValidator) Validate(i interface{}) error {
	err := rv.v.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			parts = append(parts, fmt.Sprintf("%s failed %s validation",
				strings.ToLower(fe.Field()), fe.Tag()))
		}
		return errors.New(strings.Join(parts, "; "))
	}
	return err
}
