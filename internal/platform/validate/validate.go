// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used exclusively in the service layer — never in handlers or
// storage. It ensures that business logic only operates on semantically valid data.
package validate

import (
	"fmt"
	"math"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/quantoapp/quanto/internal/platform/apperr"
)

var (
	// slugRegex matches slug format: lowercase letters, digits, hyphens.
	slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.Validation("Invalid JSON payload")

	// ErrMissingBody is returned when a write endpoint receives no body.
	ErrMissingBody = apperr.Validation("Request body is required")
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "This field is required", value)
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.Add(field, fmt.Sprintf("Maximum %d characters", max), value)
	}
	return v
}

// MinLen fails if the Unicode character count is below min.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	if utf8.RuneCountInString(value) < min {
		v.Add(field, fmt.Sprintf("Minimum %d characters", min), value)
	}
	return v
}

// Range fails if the value is outside the [min, max] range (inclusive).
func (v *Validator) Range(field string, value, min, max int) *Validator {
	if value < min || value > max {
		v.Add(field, fmt.Sprintf("Must be between %d and %d", min, max), value)
	}
	return v
}

// Email fails if the value is not a valid RFC 5322 email address.
func (v *Validator) Email(field, value string) *Validator {
	if _, err := mail.ParseAddress(value); err != nil {
		v.Add(field, "Must be a valid email address", value)
	}
	return v
}

// Slug fails if the value is not a valid URL slug.
//
// # Format
//
// Slugs must consist only of lowercase letters, digits, and hyphens,
// with no leading or trailing hyphens.
func (v *Validator) Slug(field, value string) *Validator {
	if !slugRegex.MatchString(value) {
		v.Add(field, "Must be a valid URL slug (lowercase letters, digits, hyphens only)", value)
	}
	return v
}

// OneOf fails if the value is not in the allowed set of strings.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.Add(field, fmt.Sprintf("Must be one of: %s", strings.Join(allowed, ", ")), value)
	return v
}

// Amount fails unless the value is a positive monetary amount with at most
// two decimal places.
func (v *Validator) Amount(field string, value float64) *Validator {
	if value <= 0 {
		v.Add(field, "Must be a positive amount", value)
		return v
	}
	cents := value * 100
	if math.Abs(cents-math.Round(cents)) > 1e-6 {
		v.Add(field, "Must have at most two decimal places", value)
	}
	return v
}

// NonNegativeAmount fails unless the value is zero or a positive monetary
// amount with at most two decimal places.
func (v *Validator) NonNegativeAmount(field string, value float64) *Validator {
	if value < 0 {
		v.Add(field, "Must not be negative", value)
		return v
	}
	cents := value * 100
	if math.Abs(cents-math.Round(cents)) > 1e-6 {
		v.Add(field, "Must have at most two decimal places", value)
	}
	return v
}

// Percentage fails if the value is outside the 0–100 range.
func (v *Validator) Percentage(field string, value float64) *Validator {
	if value < 0 || value > 100 {
		v.Add(field, "Must be a percentage between 0 and 100", value)
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("deadline", deadline.Before(time.Now()), "Must be in the future", deadline)
func (v *Validator) Custom(field string, failed bool, message string, rejected any) *Validator {
	if failed {
		v.Add(field, message, rejected)
	}
	return v
}

// Err returns an [apperr.AppError] (VALIDATION) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method — call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.Validation("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// Add appends an [apperr.FieldError] to the internal slice.
//
// It is exported so that cross-entity rules evaluated outside this package
// (e.g., a service checking a foreign key) can contribute to the same chain.
func (v *Validator) Add(field, message string, rejected any) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message, RejectedValue: rejected})
}

// FieldFailure is a shortcut to create a single-field validation error.
func FieldFailure(field, message string, rejected any) *apperr.AppError {
	return apperr.Validation("Validation failed", apperr.FieldError{
		Field:         field,
		Message:       message,
		RejectedValue: rejected,
	})
}
