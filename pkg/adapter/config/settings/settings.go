// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package settings provides the value types and helper functions
// which are shared by the configuration structs.
//
// Optional settings are declared as pointers, so a missing setting
// (nil) can be told apart from an explicit zero value. The Default
// and Nil2Zero functions fill in the missing settings, and the
// VerifyRange function clamps a setting within its boundaries.
package settings

// Default makes the (*t) pointer, if it is nil, point to a newly
// allocated T instance which is initialized with the v value.
// If the (*t) pointer was not nil, Default will perform no action.
func Default[T any](t **T, v T) {
	if (*t) != nil {
		return
	}
	(*t) = &v
}

// Nil2Zero is like Default, using the zero value of T.
func Nil2Zero[T any](t **T) {
	var zero T
	Default(t, zero)
}
