// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package initdbuc contains the database initialization use case.
// It creates the tables which are required by other use cases and
// may fill them with the development suitable sample cars.
package initdbuc

import (
	"context"
	"fmt"

	"github.com/momeni/carsweb/pkg/core/log"
	"github.com/momeni/carsweb/pkg/core/model"
	"github.com/momeni/carsweb/pkg/core/repo"
)

// UseCase represents the database initialization use case. It may
// be used to initialize database with development or production
// suitable data as asked by the InitDev and InitProd methods.
type UseCase struct {
	pool       repo.Pool
	schemaRepo repo.Schema
	carsRepo   repo.Cars
}

// New creates a database initialization UseCase instance.
func New(p repo.Pool, s repo.Schema, c repo.Cars) *UseCase {
	return &UseCase{pool: p, schemaRepo: s, carsRepo: c}
}

// InitProd creates the cars table unless it exists already.
// No rows are inserted, so production databases start empty.
// Calling InitProd on an initialized database causes no change.
func (iduc *UseCase) InitProd(ctx context.Context) error {
	return iduc.initDB(ctx, nil)
}

// InitDev creates the cars table unless it exists already and fills
// it with the sample cars (see model.SampleCars) if it is empty.
// Table creation and seeding happen in a single transaction, so a
// failure leaves no partially seeded table behind.
// Sample cars are inserted as they are, without validation.
func (iduc *UseCase) InitDev(ctx context.Context) error {
	return iduc.initDB(ctx, iduc.seed)
}

func (iduc *UseCase) initDB(
	ctx context.Context,
	fill func(context.Context, repo.Tx) error,
) error {
	return iduc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			sq := iduc.schemaRepo.Tx(tx)
			if err := sq.CreateTablesIfMissing(ctx); err != nil {
				return fmt.Errorf("creating tables: %w", err)
			}
			if fill == nil {
				return nil
			}
			return fill(ctx, tx)
		})
	})
}

func (iduc *UseCase) seed(ctx context.Context, tx repo.Tx) error {
	q := iduc.carsRepo.Tx(tx)
	n, err := q.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting cars: %w", err)
	}
	if n > 0 {
		log.Info(ctx, "skipped seeding non-empty database", log.Count(int(n)))
		return nil
	}
	cars := model.SampleCars()
	for i := range cars {
		if _, err := q.Create(ctx, &cars[i]); err != nil {
			return fmt.Errorf("inserting sample car #%d: %w", i, err)
		}
	}
	log.Info(ctx, "seeded database", log.Count(len(cars)))
	return nil
}
