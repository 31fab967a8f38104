// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package carsuc

import (
	"errors"
	"time"
)

// Option is a functional option for the cars use case.
type Option func(uc *UseCase) error

// Clock returns the current time. It is consulted once per
// validation in order to find the current year.
type Clock func() time.Time

// WithClock option configures a cars UseCase instance in order to
// read the current time from the given clock instead of the system
// clock. This option may be passed to the New() function.
func WithClock(clock Clock) Option {
	return func(uc *UseCase) error {
		if clock == nil {
			return errors.New("clock is nil")
		}
		if uc.clock != nil {
			return errors.New("clock is already configured")
		}
		uc.clock = clock
		return nil
	}
}

// WithLocation option configures the time zone which is used to find
// the current year. Near the new year, UTC and local time zones may
// disagree about it. When not configured, UTC is used.
// The location is applied to the configured clock, so WithLocation
// and WithClock may be passed in any order.
func WithLocation(loc *time.Location) Option {
	return func(uc *UseCase) error {
		if loc == nil {
			return errors.New("location is nil")
		}
		if uc.loc != nil {
			return errors.New("location is already configured")
		}
		uc.loc = loc
		return nil
	}
}
