package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"showbook/internal/interfaces"
	"showbook/internal/models"
)

// newValidator returns a validator that knows the directory's enumerations
// and reports fields by their form names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		return models.IsGenre(fl.Field().String())
	})
	_ = v.RegisterValidation("usstate", func(fl validator.FieldLevel) bool {
		return models.IsState(fl.Field().String())
	})
	_ = v.RegisterValidation("starttime", func(fl validator.FieldLevel) bool {
		_, err := models.ParseStartTime(fl.Field().String())
		return err == nil
	})
	return v
}

// validate returns a *interfaces.ValidationError describing every failed field,
// or nil.
func validate(v *validator.Validate, req any) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		name := fe.Field()
		if i := strings.Index(name, "["); i >= 0 {
			name = name[:i]
		}
		if _, seen := fields[name]; !seen {
			fields[name] = fieldMessage(fe)
		}
	}
	return &interfaces.ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return "must have at least " + fe.Param() + " value"
		}
		return "must not be empty"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "url":
		return "must be a valid URL"
	case "url|len=0":
		return "must be a valid URL or empty"
	case "genre":
		return "is not a known genre"
	case "usstate":
		return "is not a known state"
	case "starttime":
		return "must be a date-time such as 2019-05-21T21:30:00"
	case "gt":
		return "must be a positive integer"
	default:
		return "is invalid"
	}
}
