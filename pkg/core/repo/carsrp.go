// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"
	"errors"

	"github.com/momeni/carsweb/pkg/core/model"
)

// ErrNotFound is returned by the queryers when a requested row does
// not exist. Callers should check it using errors.Is because adapters
// may wrap it with more context.
var ErrNotFound = errors.New("not found")

// CarsConnQueryer lists cars operations which may run on a connection
// with auto-committed transactions.
type CarsConnQueryer interface {
	CarsQueryer
}

// CarsTxQueryer lists cars operations which may run in an ongoing
// transaction.
type CarsTxQueryer interface {
	CarsQueryer
}

// CarsQueryer lists the operations which are common between the
// CarsConnQueryer and CarsTxQueryer interfaces.
type CarsQueryer interface {
	// List returns all cars ordered by their IDs. An empty table
	// yields an empty (non-nil) slice.
	List(ctx context.Context) ([]model.Car, error)

	// Get finds the id car. ErrNotFound is returned (possibly
	// wrapped) if no such car exists.
	Get(ctx context.Context, id int64) (*model.Car, error)

	// Create inserts c (ignoring its ID field) and returns the
	// stored car, having the ID which was assigned by the database.
	Create(ctx context.Context, c *model.Car) (*model.Car, error)

	// Update replaces all columns of the id car, except its ID,
	// with the fields of c. Updating a missing row is not an error.
	Update(ctx context.Context, id int64, c *model.Car) error

	// Delete removes the id car. Deleting a missing row is not an
	// error.
	Delete(ctx context.Context, id int64) error

	// Count returns the number of stored cars.
	Count(ctx context.Context) (int64, error)
}

// Cars is the cars repository. It unwraps a Conn or Tx, as required
// by its implementation, and returns the relevant queryer.
type Cars interface {
	Conn(Conn) CarsConnQueryer
	Tx(Tx) CarsTxQueryer
}
