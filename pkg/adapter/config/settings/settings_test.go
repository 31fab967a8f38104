// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings_test

import (
	"testing"
	"time"

	"github.com/momeni/carsweb/pkg/adapter/config/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	var b *bool
	settings.Default(&b, true)
	require.NotNil(t, b)
	assert.True(t, *b)

	f := false
	b = &f
	settings.Default(&b, true)
	assert.False(t, *b, "non-nil settings must be kept")

	var n *int
	settings.Nil2Zero(&n)
	require.NotNil(t, n)
	assert.Zero(t, *n)
}

func TestDurationText(t *testing.T) {
	for _, tc := range []struct {
		in, out string
	}{
		{"10s", "10s"},
		{"2m", "2m"},
		{"1h0m0s", "1h"},
		{"1h30m", "1h30m"},
		{"1500ms", "1.5s"},
		{"0s", "0s"},
	} {
		var d settings.Duration
		require.NoError(t, d.UnmarshalText([]byte(tc.in)), tc.in)
		assert.Equal(t, tc.out, d.String(), tc.in)
	}
	var d settings.Duration
	assert.Error(t, d.UnmarshalText([]byte("soon")))
	assert.Zero(t, d)
}

func TestVerifyRange(t *testing.T) {
	minb, maxb := 1, 10
	v := 20
	p := &v
	err := settings.VerifyRange(&p, &minb, &maxb)
	require.NotNil(t, err)
	assert.False(t, err.LessThanMin)
	assert.Equal(t, 20, *err.Value)
	assert.Equal(t, 10, *p)
	assert.EqualError(t, err, "value (20) is greater than max (10)")

	v2 := 0
	p = &v2
	err = settings.VerifyRange(&p, &minb, &maxb)
	require.NotNil(t, err)
	assert.True(t, err.LessThanMin)
	assert.Equal(t, 1, *p)

	p = nil
	assert.Nil(t, settings.VerifyRange(&p, &minb, &maxb))
	assert.Nil(t, p)

	v3 := 5
	p = &v3
	err = settings.VerifyRange(&p, &maxb, &minb)
	require.NotNil(t, err)
	assert.True(t, err.InvalidRange)
	assert.Equal(t, 5, *p, "inconsistent boundaries must not clamp")

	d := settings.Duration(time.Minute)
	dp := &d
	dmax := settings.Duration(time.Second)
	assert.NotNil(t, settings.VerifyRange(&dp, nil, &dmax))
	assert.Equal(t, time.Second, time.Duration(*dp))
}
