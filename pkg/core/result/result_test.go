// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package result_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/momeni/carsweb/pkg/core/cerr"
	"github.com/momeni/carsweb/pkg/core/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOk(t *testing.T) {
	r := result.Ok(42)
	assert.True(t, r.Succeeded())
	assert.Equal(t, 42, r.Value())
	assert.Empty(t, r.Message())
	assert.Equal(t, result.KindOk, r.Kind())
	assert.NoError(t, r.Err())
}

func TestFailures(t *testing.T) {
	for _, tc := range []struct {
		name   string
		r      result.Result[*int]
		kind   result.Kind
		status int
	}{
		{
			name:   "not found",
			r:      result.NotFound[*int]("Car not found"),
			kind:   result.KindNotFound,
			status: http.StatusNotFound,
		},
		{
			name:   "error",
			r:      result.Error[*int]("Price must be greater than 0"),
			kind:   result.KindError,
			status: http.StatusBadRequest,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, tc.r.Succeeded())
			assert.Nil(t, tc.r.Value(), "failures hold a zero value")
			assert.Equal(t, tc.kind, tc.r.Kind())

			var ce *cerr.Error
			require.True(t, errors.As(tc.r.Err(), &ce))
			assert.Equal(t, tc.status, ce.HTTPStatusCode)
			assert.True(t, ce.PlainText)
			assert.Equal(t, tc.r.Message(), ce.Err.Error())
		})
	}
}

func TestZeroResultIsInvalid(t *testing.T) {
	var r result.Result[string]
	assert.False(t, r.Succeeded())
	assert.Equal(t, result.KindInvalid, r.Kind())
	assert.ErrorIs(t, r.Err(), result.ErrInvalid)
}

func TestCarry(t *testing.T) {
	v := result.Error[bool]("Make must not be null or whitespace")
	r := result.Carry[[]string](v)
	assert.Equal(t, result.KindError, r.Kind())
	assert.Equal(t, v.Message(), r.Message())
	assert.Nil(t, r.Value())

	assert.Panics(t, func() {
		result.Carry[int](result.Ok(true))
	})
	assert.Panics(t, func() {
		result.Carry[int](result.Result[bool]{})
	})
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "ok", result.KindOk.String())
	assert.Equal(t, "not-found", result.KindNotFound.String())
	assert.Equal(t, "error", result.KindError.String())
	assert.Equal(t, "unknown", result.KindInvalid.String())
}
