// Package validation holds the credential shape rules shared by the use cases
// and the HTTP binder.
package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	domainerrors "authcore/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

const (
	// TagPasswordShape validates the password length window.
	TagPasswordShape = "password_shape"
	// TagCredentialEmail validates the login email shape.
	TagCredentialEmail = "credential_email"

	// PasswordMinLength and PasswordMaxLength bound the password, inclusive, in characters.
	PasswordMinLength = 7
	PasswordMaxLength = 12
)

// local@domain.tld where local is word characters joined by single '.', '-' or '_',
// domain is alphanumerics joined by single '.' or '-', and each tld segment is 2-10 letters.
var emailPattern = regexp.MustCompile(
	`^[A-Za-z0-9_]+([.\-_]?[A-Za-z0-9_]+)*@[A-Za-z0-9]+([.\-]?[A-Za-z0-9]+)*(\.[A-Za-z]{2,10})+$`,
)

var engine = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their request names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})
	v.RegisterAlias(TagPasswordShape, "min=7,max=12")
	if err := v.RegisterValidation(TagCredentialEmail, isCredentialEmail); err != nil {
		panic(err)
	}

	return v
})

// Engine returns the shared validator with the credential tags registered.
func Engine() *validator.Validate {
	return engine()
}

// ValidatePasswordShape fails with ErrInvalidPassword unless the password length is
// within [PasswordMinLength, PasswordMaxLength].
func ValidatePasswordShape(raw string) error {
	if err := Engine().Var(raw, TagPasswordShape); err != nil {
		return domainerrors.ErrInvalidPassword
	}

	return nil
}

// ValidateEmailFormat fails with ErrInvalidEmail unless raw has the local@domain.tld shape.
func ValidateEmailFormat(raw string) error {
	if err := Engine().Var(raw, TagCredentialEmail); err != nil {
		return domainerrors.ErrInvalidEmail
	}

	return nil
}

func isCredentialEmail(fl validator.FieldLevel) bool {
	return emailPattern.MatchString(fl.Field().String())
}
