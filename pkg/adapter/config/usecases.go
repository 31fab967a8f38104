// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"fmt"
	"time"
	_ "time/tzdata" // so clock-location works on hosts without zoneinfo

	"github.com/momeni/carsweb/pkg/core/repo"
	"github.com/momeni/carsweb/pkg/core/usecase/carsuc"
)

// Usecases contains the configuration settings for all use cases.
type Usecases struct {
	Cars Cars `yaml:"cars"` // cars use cases related settings
}

// Cars contains the configuration settings for the cars use cases.
type Cars struct {
	// ClockLocation is the IANA time zone name, like Europe/Berlin,
	// which is used to find out the current year while validating the
	// model year of cars. It is UTC by default.
	ClockLocation string `yaml:"clock-location"`

	loc   *time.Location
	clock carsuc.Clock
}

// SetClock replaces the wall clock of the cars use cases which are
// created afterwards. It is meant for tests which need a fixed year.
func (c *Cars) SetClock(clock carsuc.Clock) {
	c.clock = clock
}

func (c *Cars) normalize() error {
	if c.ClockLocation == "" {
		c.ClockLocation = "UTC"
	}
	loc, err := time.LoadLocation(c.ClockLocation)
	if err != nil {
		return fmt.Errorf("loading clock-location: %w", err)
	}
	c.loc = loc
	return nil
}

// NewUseCase instantiates a new cars use case based on the settings
// in the c struct.
func (c Cars) NewUseCase(
	p repo.Pool, r repo.Cars,
) (*carsuc.UseCase, error) {
	opts := make([]carsuc.Option, 0, 2)
	if c.loc != nil {
		opts = append(opts, carsuc.WithLocation(c.loc))
	}
	if c.clock != nil {
		opts = append(opts, carsuc.WithClock(c.clock))
	}
	return carsuc.New(p, r, opts...)
}
