// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package carsuc contains the cars UseCase which supports the
// cars related use cases, namely listing, finding, creating,
// updating, and deleting cars.
//
// Expected outcomes, such as a missing car or a car which fails the
// validation rules, are reported as a result.Result value. Other
// errors, such as a broken database connection, are returned as a
// separate error value and must not be confused with those outcomes.
package carsuc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/momeni/carsweb/pkg/core/log"
	"github.com/momeni/carsweb/pkg/core/model"
	"github.com/momeni/carsweb/pkg/core/repo"
	"github.com/momeni/carsweb/pkg/core/result"
)

// MsgCarNotFound is reported by Get when the requested car is missing.
const MsgCarNotFound = "Car not found"

// UseCase represents a cars use case. It holds a database connection
// pool, the cars repository instance (to be guided with the DB pool),
// and the clock which decides about the current year.
type UseCase struct {
	pool   repo.Pool
	carsrp repo.Cars

	clock Clock
	loc   *time.Location
}

// New instantiates a cars use case.
// Required parameters are passed individually, so caller has to
// provision them and whenever they change, caller will notice and fix
// them due to a compilation error.
// Optional parameters are passed as a series of functional options
// in order to facilitate their validation and flexibility.
func New(p repo.Pool, c repo.Cars, opts ...Option) (*UseCase, error) {
	uc := &UseCase{pool: p, carsrp: c}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if uc.clock == nil {
		uc.clock = time.Now
	}
	if uc.loc == nil {
		uc.loc = time.UTC
	}
	return uc, nil
}

func (cars *UseCase) now() time.Time {
	return cars.clock().In(cars.loc)
}

// List returns all stored cars. It never reports a not-found outcome,
// so an empty list is a successful result too.
func (cars *UseCase) List(ctx context.Context) (
	res result.Result[[]model.Car], err error,
) {
	var cc []model.Car
	err = cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		cc, err = cars.carsrp.Conn(c).List(ctx)
		return err
	})
	if err != nil {
		return res, fmt.Errorf("listing cars: %w", err)
	}
	log.Debug(ctx, "listed cars", log.Count(len(cc)))
	return result.Ok(cc), nil
}

// Get finds the id car. A missing car is reported as a NotFound
// result with the MsgCarNotFound message.
func (cars *UseCase) Get(ctx context.Context, id int64) (
	res result.Result[*model.Car], err error,
) {
	var car *model.Car
	err = cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		car, err = cars.carsrp.Conn(c).Get(ctx, id)
		return err
	})
	switch {
	case errors.Is(err, repo.ErrNotFound):
		log.Debug(ctx, "car not found", log.CarID(id))
		return result.NotFound[*model.Car](MsgCarNotFound), nil
	case err != nil:
		return res, fmt.Errorf("getting car: %w", err)
	}
	return result.Ok(car), nil
}

// Create validates the candidate car and stores it.
// The stored car, having its new ID, is returned in an Ok result.
// The candidate ID is ignored. If validation fails, an Error result
// with the first violated rule message is returned and nothing is
// stored.
func (cars *UseCase) Create(ctx context.Context, candidate *model.Car) (
	res result.Result[*model.Car], err error,
) {
	if v := Validate(candidate, cars.now()); !v.Succeeded() {
		log.Info(
			ctx, "rejected car creation",
			log.Reason(v.Message()),
		)
		return result.Carry[*model.Car](v), nil
	}
	var car *model.Car
	err = cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		car, err = cars.carsrp.Conn(c).Create(ctx, candidate)
		return err
	})
	if err != nil {
		return res, fmt.Errorf("creating car: %w", err)
	}
	log.Debug(ctx, "created car", log.Car("car", car))
	return result.Ok(car), nil
}

// Update validates the candidate car and replaces all fields of the
// id car (except its ID) with the candidate fields.
// Updating a missing car is not detected and still yields Ok(true).
func (cars *UseCase) Update(
	ctx context.Context, id int64, candidate *model.Car,
) (res result.Result[bool], err error) {
	if v := Validate(candidate, cars.now()); !v.Succeeded() {
		log.Info(
			ctx, "rejected car update",
			log.CarID(id), log.Reason(v.Message()),
		)
		return v, nil
	}
	err = cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return cars.carsrp.Conn(c).Update(ctx, id, candidate)
	})
	if err != nil {
		return res, fmt.Errorf("updating car: %w", err)
	}
	log.Debug(ctx, "updated car", log.CarID(id))
	return result.Ok(true), nil
}

// Delete removes the id car. Deleting a missing car is not an error.
func (cars *UseCase) Delete(ctx context.Context, id int64) error {
	err := cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return cars.carsrp.Conn(c).Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("deleting car: %w", err)
	}
	log.Debug(ctx, "deleted car", log.CarID(id))
	return nil
}
