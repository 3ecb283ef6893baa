// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/matchbox/internal/matching"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is one rejected field.
type FieldError struct {
	// Field is the JSON path, e.g. "ageRange.max" or "interests[2]".
	Field   string      `json:"field"`
	Tag     string      `json:"tag"`
	Param   string      `json:"param,omitempty"`
	Value   interface{} `json:"value,omitempty"`
	Message string      `json:"message"`
}

func (e FieldError) Error() string {
	return e.Message
}

// Errors is the result of a failed validation pass.
type Errors []FieldError

// Error joins the field messages with "; ".
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, "; ")
}

// Details is the error envelope payload: the single field for one
// failure, or a "fields" list for several.
func (e Errors) Details() map[string]interface{} {
	switch len(e) {
	case 0:
		return nil
	case 1:
		return map[string]interface{}{
			"field": e[0].Field,
			"tag":   e[0].Tag,
			"value": e[0].Value,
		}
	default:
		return map[string]interface{}{"fields": []FieldError(e)}
	}
}

// Validator returns the shared validator with the matchbox tags
// registered. Field names in errors are the JSON names.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonName)

		// Registration only fails for empty tags or nil funcs.
		_ = validate.RegisterValidation("activitylevel", oneOf(matching.ActivityLevels))
		_ = validate.RegisterValidation("socialstyle", oneOf(matching.SocialStyles))
	})
	return validate
}

func jsonName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

func oneOf(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return slices.Contains(allowed, fl.Field().String())
	}
}

// Struct validates v and returns nil when it passes.
func Struct(v interface{}) Errors {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Errors{{Field: "unknown", Tag: "unknown", Message: err.Error()}}
	}

	out := make(Errors, len(fieldErrs))
	for i, fe := range fieldErrs {
		path := fieldPath(fe)
		out[i] = FieldError{
			Field:   path,
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Value:   fe.Value(),
			Message: message(fe, path),
		}
	}
	return out
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	if _, rest, ok := strings.Cut(fe.Namespace(), "."); ok {
		return rest
	}
	return fe.Field()
}

func message(fe validator.FieldError, field string) string {
	param := fe.Param()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "url":
		return field + " must be a valid URL"
	case "activitylevel":
		return field + " must be one of: " + strings.Join(matching.ActivityLevels, ", ")
	case "socialstyle":
		return field + " must be one of: " + strings.Join(matching.SocialStyles, ", ")
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "gte", "gtefield":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lt":
		return fmt.Sprintf("%s must be less than %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", field, param, unit(fe.Kind()))
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", field, param, unit(fe.Kind()))
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}

// unit is the length wording for min/max on strings and collections.
func unit(k reflect.Kind) string {
	switch k {
	case reflect.String:
		return " characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		return " items"
	}
	return ""
}
