// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

// Package validation checks request bodies with go-playground/validator.
//
// Field names come from json tags, so a bad entry in a content request
// reads as "vector[3] must be a finite number" rather than naming the Go
// field. Besides the built-in tags, "finite" rejects NaN and ±Inf.
//
//	type contentRequest struct {
//	    Vector []float64 `json:"vector" validate:"required,len=10,dive,finite"`
//	}
//
//	if errs := validation.ValidateStruct(&req); errs != nil {
//	    apiErr := errs.ToAPIError()
//	    ...
//	}
package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrorCode is the API error code for every validation failure.
const ErrorCode = "VALIDATION_ERROR"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// GetValidator returns the shared validator, building it on first use.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)
		if err := v.RegisterValidation("finite", isFinite); err != nil {
			panic(fmt.Sprintf("validation: register finite: %v", err))
		}
		validate = v
	})
	return validate
}

// FieldError is one failed rule.
type FieldError struct {
	Field   string // json path, e.g. "liked_items[2]"
	Tag     string
	Param   string
	Value   any
	Message string
}

func (e FieldError) Error() string { return e.Message }

// Errors collects every failed rule of one request. A nil Errors means the
// request is valid.
type Errors []FieldError

func (errs Errors) Error() string {
	if len(errs) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}

// APIError has the shape of models.APIError; this package stays free of
// API imports.
type APIError struct {
	Code    string
	Message string
	Details map[string]any
}

// ToAPIError renders errs for the response envelope. A single failure
// reports its field and tag directly; several are listed under "fields".
func (errs Errors) ToAPIError() *APIError {
	out := &APIError{Code: ErrorCode, Message: errs.Error()}
	switch len(errs) {
	case 0:
		out.Message = "Validation failed"
	case 1:
		out.Details = map[string]any{"field": errs[0].Field, "tag": errs[0].Tag}
	default:
		fields := make([]map[string]any, len(errs))
		for i, e := range errs {
			fields[i] = map[string]any{"field": e.Field, "tag": e.Tag, "message": e.Message}
		}
		out.Details = map[string]any{"fields": fields}
	}
	return out
}

// ValidateStruct runs the validate tags of s.
func ValidateStruct(s any) Errors {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// InvalidValidationError: s was not a struct.
		return Errors{{Field: "unknown", Tag: "unknown", Message: err.Error()}}
	}

	out := make(Errors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		path := fieldPath(fe)
		out = append(out, FieldError{
			Field:   path,
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Value:   fe.Value(),
			Message: describe(fe, path),
		})
	}
	return out
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

// fieldPath strips the struct name so dive errors read as "vector[3]".
func fieldPath(fe validator.FieldError) string {
	if _, rest, ok := strings.Cut(fe.Namespace(), "."); ok {
		return rest
	}
	return fe.Field()
}

func isFinite(fl validator.FieldLevel) bool {
	f := fl.Field()
	if k := f.Kind(); k != reflect.Float32 && k != reflect.Float64 {
		return false
	}
	return !math.IsNaN(f.Float()) && !math.IsInf(f.Float(), 0)
}

var comparisons = map[string]string{
	"oneof": "one of:",
	"gte":   "greater than or equal to",
	"lte":   "less than or equal to",
	"gt":    "greater than",
	"lt":    "less than",
}

var sizes = map[string]string{
	"len": "contain exactly",
	"min": "be at least",
	"max": "be at most",
}

func describe(fe validator.FieldError, path string) string {
	tag := fe.Tag()
	switch tag {
	case "required":
		return path + " is required"
	case "finite":
		return path + " must be a finite number"
	}
	if op, ok := comparisons[tag]; ok {
		return fmt.Sprintf("%s must be %s %s", path, op, fe.Param())
	}
	if verb, ok := sizes[tag]; ok {
		return fmt.Sprintf("%s must %s %s%s", path, verb, fe.Param(), sizeUnit(fe.Kind()))
	}
	return fmt.Sprintf("%s failed %s validation", path, tag)
}

func sizeUnit(k reflect.Kind) string {
	switch k {
	case reflect.String:
		return " characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		return " items"
	}
	return ""
}
