// Package validation wraps go-playground/validator with a shared instance and
// human-readable error messages.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is a single failed validation rule.
type FieldError struct {
	Field string
	Tag   string
	Param string
	Value any
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, describe(e.Tag, e.Param))
}

// Errors aggregates field errors from one validation call.
type Errors []FieldError

func (ve Errors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(ve))
	for _, e := range ve {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Get returns the shared validator, creating it on first use.
func Get() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Struct validates s using its `validate` tags.
// Returns nil or an Errors value.
func Struct(s any) error {
	return translate("", Get().Struct(s))
}

// Var validates a single value against a tag expression such as
// "required,oneof=y n u". field names the value in error messages.
func Var(field string, value any, tag string) error {
	return translate(field, Get().Var(value, tag))
}

func translate(field string, err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		name := fe.Namespace()
		if field != "" {
			name = field
		}
		out = append(out, FieldError{
			Field: name,
			Tag:   fe.Tag(),
			Param: fe.Param(),
			Value: fe.Value(),
		})
	}
	return out
}

func describe(tag, param string) string {
	switch tag {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(param), ", ")
	case "gte", "min":
		return "must be at least " + param
	case "lte", "max":
		return "must be at most " + param
	case "numeric", "number":
		return "must be a number"
	case "alphanum":
		return "must contain only letters and digits"
	default:
		if param != "" {
			return fmt.Sprintf("failed %s=%s", tag, param)
		}
		return "failed " + tag
	}
}
