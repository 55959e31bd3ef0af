// Package validation wraps a single shared go-playground validator with
// the application's custom format rules registered:
//
//	uni:         institutional id, 2-3 lowercase letters + 1-4 digits
//	course_code: 4 uppercase letters + 4 digits
//
// Both patterns are anchored; the entire string must match. A shared
// instance is used (rather than validator.New() per call) because the
// custom rules must be registered once, and *validator.Validate caches
// struct metadata and is safe for concurrent use.
package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	uniRX        = regexp.MustCompile(`^[a-z]{2,3}[0-9]{1,4}$`)
	courseCodeRX = regexp.MustCompile(`^[A-Z]{4}[0-9]{4}$`)
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	// RegisterValidation errors only on an empty tag name.
	_ = v.RegisterValidation("uni", func(fl validator.FieldLevel) bool {
		return uniRX.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("course_code", func(fl validator.FieldLevel) bool {
		return courseCodeRX.MatchString(fl.Field().String())
	})
	return v
}

// Struct validates all validate:"..." tags on s. Returns nil when every
// rule passes, or a validator.ValidationErrors describing each failing
// field.
func Struct(s any) error {
	return validate.Struct(s)
}

// Var validates a single value against a tag expression, e.g.
// Var(date, "datetime=2006-01-02"). Used for patch fields whose
// tri-state wrapper cannot carry struct tags.
func Var(field any, tag string) error {
	return validate.Var(field, tag)
}
