// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/noctoon/internal/platform/apperr"
	"github.com/taibuivan/noctoon/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		hasError bool
	}{
		{"valid_string", "Solo Leveling", false},
		{"empty_string", "", true},
		{"whitespace_only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required("title", tt.value)

			if !tt.hasError {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
				return
			}

			ae := apperr.As(v.Err())
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeValidation, ae.Code)
			assert.Equal(t, "title", ae.Details[0].Field)
		})
	}
}

/*
TestValidator_Range checks inclusive bounds used for series ratings.
*/
func TestValidator_Range(t *testing.T) {
	for _, tt := range []struct {
		value   int
		isValid bool
	}{
		{0, true}, {100, true}, {-1, false}, {101, false},
	} {
		v := &validate.Validator{}
		v.Range("rating", tt.value, 0, 100)
		assert.Equal(t, !tt.isValid, v.HasErrors(), "rating %d", tt.value)
	}
}

/*
TestValidator_Present flags omitted pointer fields only.
*/
func TestValidator_Present(t *testing.T) {
	zero := 0
	v := &validate.Validator{}
	validate.Present(v, "chapterNumber", &zero)
	assert.False(t, v.HasErrors())

	validate.Present[int](v, "chapterNumber", nil)
	assert.True(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("username", "").
		MinLen("password", "a", 4).
		OneOf("status", "paused", "ongoing", "completed", "hiatus").
		NonNegative("currentPage", -2).
		Email("email", "not-an-email").
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 5)
}
