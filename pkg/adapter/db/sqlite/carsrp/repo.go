// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package carsrp provides the SQLite reification of the repo.Cars
// interface using the database/sql package.
package carsrp

import (
	"context"

	"github.com/momeni/carsweb/pkg/adapter/db/sqlite"
	"github.com/momeni/carsweb/pkg/core/model"
	"github.com/momeni/carsweb/pkg/core/repo"
)

type Repo struct {
}

func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*sqlite.Conn
}

// Conn unwraps c, expecting a *sqlite.Conn, and panics otherwise.
func (cars *Repo) Conn(c repo.Conn) repo.CarsConnQueryer {
	cc := c.(*sqlite.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) List(ctx context.Context) ([]model.Car, error) {
	return List(ctx, cq.Conn)
}

func (cq connQueryer) Get(ctx context.Context, id int64) (*model.Car, error) {
	return Get(ctx, cq.Conn, id)
}

func (cq connQueryer) Create(ctx context.Context, c *model.Car) (*model.Car, error) {
	return Create(ctx, cq.Conn, c)
}

func (cq connQueryer) Update(ctx context.Context, id int64, c *model.Car) error {
	return Update(ctx, cq.Conn, id, c)
}

func (cq connQueryer) Delete(ctx context.Context, id int64) error {
	return Delete(ctx, cq.Conn, id)
}

func (cq connQueryer) Count(ctx context.Context) (int64, error) {
	return Count(ctx, cq.Conn)
}

type txQueryer struct {
	*sqlite.Tx
}

// Tx unwraps tx, expecting a *sqlite.Tx, and panics otherwise.
func (cars *Repo) Tx(tx repo.Tx) repo.CarsTxQueryer {
	tt := tx.(*sqlite.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) List(ctx context.Context) ([]model.Car, error) {
	return List(ctx, tq.Tx)
}

func (tq txQueryer) Get(ctx context.Context, id int64) (*model.Car, error) {
	return Get(ctx, tq.Tx, id)
}

func (tq txQueryer) Create(ctx context.Context, c *model.Car) (*model.Car, error) {
	return Create(ctx, tq.Tx, c)
}

func (tq txQueryer) Update(ctx context.Context, id int64, c *model.Car) error {
	return Update(ctx, tq.Tx, id, c)
}

func (tq txQueryer) Delete(ctx context.Context, id int64) error {
	return Delete(ctx, tq.Tx, id)
}

func (tq txQueryer) Count(ctx context.Context) (int64, error) {
	return Count(ctx, tq.Tx)
}
