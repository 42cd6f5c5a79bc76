// Package validator adapts the shared validation engine to echo's Validator interface.
package validator

import (
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/validation"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// tagRank orders failures so credential rules are reported in the same order the use cases check them.
var tagRank = map[string]int{
	validation.TagPasswordShape:   0,
	validation.TagCredentialEmail: 1,
	"required":                    2,
}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *playground.Validate
}

// New returns a validator backed by the shared engine.
func New() *CustomValidator {
	return &CustomValidator{validate: validation.Engine()}
}

// Validate checks struct tags and converts the most relevant failure into a domain error.
func (v *CustomValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs playground.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return domainerrors.ErrValidationFailed
	}

	first := validationErrs[0]
	for _, fieldErr := range validationErrs[1:] {
		if rank(fieldErr.Tag()) < rank(first.Tag()) {
			first = fieldErr
		}
	}

	return toDomainError(first)
}

func rank(tag string) int {
	if r, ok := tagRank[tag]; ok {
		return r
	}

	return len(tagRank)
}

func toDomainError(fieldErr playground.FieldError) error {
	switch fieldErr.Tag() {
	case validation.TagPasswordShape:
		return domainerrors.ErrInvalidPassword
	case validation.TagCredentialEmail:
		return domainerrors.ErrInvalidEmail
	case "required":
		return domainerrors.NewMissingFieldError(fieldErr.Field())
	default:
		return domainerrors.ErrValidationFailed.WithDetails(fieldErr.Field())
	}
}
