// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package recommend

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownBudgetLabel indicates a budget label outside Budget, Mid-range and Luxury.
	ErrUnknownBudgetLabel = errors.New("unknown budget label")

	// ErrInvalidDimension indicates a query vector that is not ten-dimensional.
	ErrInvalidDimension = errors.New("invalid vector dimension")

	// ErrInvalidAttribute indicates a NaN or infinite attribute or query value.
	ErrInvalidAttribute = errors.New("invalid attribute value")

	// ErrEmptyUserID indicates a feedback event without a user.
	ErrEmptyUserID = errors.New("user id is required")

	// ErrDuplicateProfile indicates two reference profiles with the same id.
	ErrDuplicateProfile = errors.New("duplicate reference profile")

	// ErrDuplicateItem indicates two catalog rows with the same city name.
	ErrDuplicateItem = errors.New("duplicate catalog item")
)

// ValidationError describes an input that the engine refuses to process.
// It unwraps to one of the sentinel errors above.
type ValidationError struct {
	Field string
	Value any
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v (got %v)", e.Field, e.Err, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is a caller input error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
