// Package forms validates submitted fields and turns them into entities.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/taxi-service/internal/models"
)

const (
	msgRequired = "This field is required."
	msgChoice   = "Select a valid choice."
	msgUsername = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	msgMismatch = "The two password fields didn't match."
)

// Field describes one input of a form.
type Field struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

var validate = newValidator()

// newValidator reports fields by their json names and knows the license
// and username rules.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("license", func(fl validator.FieldLevel) bool {
		return ValidateLicenseNumber(fl.Field().String()) == nil
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// check runs the validate tags of form and returns the failures keyed by
// field. Nothing is returned for a valid form.
func check(form any) models.ValidationErrors {
	errs := models.ValidationErrors{}

	err := validate.Struct(form)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs.Add(models.NonFieldErrors, err.Error())
		return errs
	}
	for _, fe := range fieldErrs {
		// "drivers[0]" reports on "drivers"
		field := strings.SplitN(fe.Field(), "[", 2)[0]
		errs.Add(field, message(fe))
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgRequired
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	case "gt":
		return msgChoice
	case "eqfield":
		return msgMismatch
	case "username":
		return msgUsername
	case "license":
		value, _ := fe.Value().(string)
		if err := ValidateLicenseNumber(value); err != nil {
			return err.Error()
		}
	}
	return fmt.Sprintf("Enter a valid value (%s).", fe.Tag())
}
