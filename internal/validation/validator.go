// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared process-wide. Besides the built-in
// tags it registers:
//
//   - similarity: the value names a supported similarity algorithm
//   - kind: the value names an entity kind ("user" or "movie")
//
// Field names in error messages come from the json tag, so API clients see
// the same names they sent.
//
// Example usage:
//
//	type ratingRequest struct {
//	    UserID  int     `json:"user_id" validate:"required,gt=0"`
//	    MovieID int     `json:"movie_id" validate:"required,gt=0"`
//	    Rate    float64 `json:"rate" validate:"gt=0"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	}
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/recommend/similarity"
)

// ErrorCode is the API error code used for validation failures.
const ErrorCode = "VALIDATION_ERROR"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// ValidationError represents a single field validation error.
type ValidationError struct {
	field   string
	tag     string
	param   string
	value   interface{}
	message string
}

// Field returns the name of the field that failed validation.
func (e *ValidationError) Field() string { return e.field }

// Tag returns the validation tag that failed.
func (e *ValidationError) Tag() string { return e.tag }

// Param returns the parameter for the validation tag (e.g., "100" for "max=100").
func (e *ValidationError) Param() string { return e.param }

// Value returns the actual value that failed validation.
func (e *ValidationError) Value() interface{} { return e.value }

// Error returns a human-readable error message.
func (e *ValidationError) Error() string { return e.message }

// RequestValidationError represents a collection of validation errors.
type RequestValidationError struct {
	errors []ValidationError
}

// Errors returns the slice of validation errors.
func (ve *RequestValidationError) Errors() []ValidationError {
	return ve.errors
}

// Error implements the error interface, returning a combined error message.
func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}
	messages := make([]string, 0, len(ve.errors))
	for i := range ve.errors {
		messages = append(messages, ve.errors[i].message)
	}
	return strings.Join(messages, "; ")
}

// APIError is the error payload shape used by the HTTP layer.
type APIError struct {
	Code    string
	Message string
	Details map[string]interface{}
}

// ToAPIError converts validation errors to the API error format.
func (ve *RequestValidationError) ToAPIError() *APIError {
	switch len(ve.errors) {
	case 0:
		return &APIError{Code: ErrorCode, Message: "Validation failed"}
	case 1:
		err := ve.errors[0]
		return &APIError{
			Code:    ErrorCode,
			Message: err.message,
			Details: map[string]interface{}{
				"field": err.field,
				"tag":   err.tag,
				"value": err.value,
			},
		}
	}

	fields := make([]map[string]interface{}, len(ve.errors))
	messages := make([]string, len(ve.errors))
	for i, err := range ve.errors {
		fields[i] = map[string]interface{}{
			"field":   err.field,
			"tag":     err.tag,
			"message": err.message,
		}
		messages[i] = err.message
	}
	return &APIError{
		Code:    ErrorCode,
		Message: strings.Join(messages, "; "),
		Details: map[string]interface{}{"fields": fields},
	}
}

// GetValidator returns the shared validator instance.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "koanf"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})

		// Registration only fails for empty tags or nil functions.
		_ = validate.RegisterValidation("similarity", func(fl validator.FieldLevel) bool {
			_, err := similarity.ByName(fl.Field().String())
			return err == nil
		})
		_ = validate.RegisterValidation("kind", func(fl validator.FieldLevel) bool {
			_, err := recommend.ParseKind(fl.Field().String())
			return err == nil
		})
	})

	return validate
}

// ValidateStruct validates a struct using the shared validator.
// Returns nil if validation passes, or *RequestValidationError if it fails.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &RequestValidationError{
			errors: []ValidationError{{field: "unknown", tag: "unknown", message: err.Error()}},
		}
	}

	fieldErrors := make([]ValidationError, len(validationErrs))
	for i, fieldErr := range validationErrs {
		fieldErrors[i] = ValidationError{
			field:   fieldErr.Field(),
			tag:     fieldErr.Tag(),
			param:   fieldErr.Param(),
			value:   fieldErr.Value(),
			message: translateError(fieldErr),
		}
	}
	return &RequestValidationError{errors: fieldErrors}
}

// errorMessageTemplates maps validation tags to message templates.
var errorMessageTemplates = map[string]string{
	"required":   "%s is required",
	"hostname":   "%s must be a valid hostname",
	"ip":         "%s must be a valid IP address",
	"dir":        "%s must be an existing directory",
	"similarity": "%s must be a supported similarity algorithm (" + strings.Join(similarity.Names(), ", ") + ")",
	"kind":       "%s must be one of: user, movie",
}

// errorMessageWithParam maps validation tags to templates that include param.
var errorMessageWithParam = map[string]string{
	"oneof":    "%s must be one of: %s",
	"gte":      "%s must be greater than or equal to %s",
	"lte":      "%s must be less than or equal to %s",
	"gt":       "%s must be greater than %s",
	"lt":       "%s must be less than %s",
	"gtfield":  "%s must be greater than %s",
	"gtefield": "%s must be greater than or equal to %s",
}

// translateError converts a validator.FieldError to a human-readable message.
func translateError(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	if template, ok := errorMessageTemplates[tag]; ok {
		return fmt.Sprintf(template, field)
	}
	if template, ok := errorMessageWithParam[tag]; ok {
		return fmt.Sprintf(template, field, param)
	}

	isString := fe.Kind() == reflect.String
	switch tag {
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}
