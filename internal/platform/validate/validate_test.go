// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantoapp/quanto/internal/platform/apperr"
	"github.com/quantoapp/quanto/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Groceries", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, apperr.KindValidation, ae.Kind)
				assert.Equal(t, tt.field, ae.Fields[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Email checks the email format validation rule.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"valid", "dev@quanto.app", true},
		{"missing_at", "quanto.app", false},
		{"missing_domain", "dev@", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("email", tt.email)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Amount checks positive monetary amounts with cent precision.
*/
func TestValidator_Amount(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		isValid bool
	}{
		{"whole", 100, true},
		{"cents", 19.99, true},
		{"zero", 0, false},
		{"negative", -5, false},
		{"sub_cent", 10.999, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Amount("amount", tt.value)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_OneOf checks enumeration membership.
*/
func TestValidator_OneOf(t *testing.T) {
	v := &validate.Validator{}
	v.OneOf("type", "income", "income", "expense")
	assert.False(t, v.HasErrors())

	v = &validate.Validator{}
	v.OneOf("type", "transfer", "income", "expense")
	require.True(t, v.HasErrors())

	ae := apperr.As(v.Err())
	require.NotNil(t, ae)
	assert.Equal(t, "transfer", ae.Fields[0].RejectedValue)
	assert.Contains(t, ae.Fields[0].Message, "income")
}

/*
TestValidator_Chain verifies multiple failures accumulate in order.
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}
	v.Required("name", "").
		OneOf("type", "bogus", "income", "expense").
		Amount("amount", -1)

	err := v.Err()
	require.NotNil(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	require.Len(t, ae.Fields, 3)
	assert.Equal(t, "name", ae.Fields[0].Field)
	assert.Equal(t, "type", ae.Fields[1].Field)
	assert.Equal(t, "amount", ae.Fields[2].Field)
}

/*
TestFieldFailure verifies the single-field shortcut carries the rejected value.
*/
func TestFieldFailure(t *testing.T) {
	err := validate.FieldFailure("id", "Must be a numeric id", "abc")

	assert.Equal(t, apperr.KindValidation, err.Kind)
	require.Len(t, err.Fields, 1)
	assert.Equal(t, "abc", err.Fields[0].RejectedValue)
}
