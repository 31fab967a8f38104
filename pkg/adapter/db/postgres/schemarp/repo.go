// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package schemarp provides a reification of the repo.Schema interface
// making it possible to create the PostgreSQL tables.
package schemarp

import (
	"context"

	"github.com/momeni/carsweb/pkg/adapter/db/postgres"
	"github.com/momeni/carsweb/pkg/core/repo"
)

// Repo represents a schema management repository.
type Repo struct {
}

// New instantiates a schema management Repo struct. Although this New
// function does not perform complex operations, and users may use
// a &schemarp.Repo{} directly too, but this method improves the code
// readability as schemarp.New() makes the package to look alike a
// data type.
func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*postgres.Conn
}

// Conn unwraps the given repo.Conn instance, expecting to find an
// instance of *postgres.Conn as created by this adapter layer.
// Otherwise, it will panic. Unwrapped connection will be wrapped and
// returned as an instance of repo.SchemaConnQueryer interface, so
// it can be used in the use cases layer without requiring to type
// assert again and again.
func (schema *Repo) Conn(c repo.Conn) repo.SchemaConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) CreateTablesIfMissing(ctx context.Context) error {
	return CreateTablesIfMissing(ctx, cq.Conn)
}

type txQueryer struct {
	*postgres.Tx
}

// Tx unwraps the given repo.Tx instance, expecting to find an
// instance of *postgres.Tx, and wraps it as a repo.SchemaTxQueryer.
// It panics if another repo.Tx implementation is passed.
func (schema *Repo) Tx(tx repo.Tx) repo.SchemaTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) CreateTablesIfMissing(ctx context.Context) error {
	return CreateTablesIfMissing(ctx, tq.Tx)
}

// CreateTablesIfMissing creates the cars table unless it exists.
// The id column is filled from an implicit sequence and the price
// column keeps two fractional digits.
func CreateTablesIfMissing[Q postgres.Queryer](
	ctx context.Context, q Q,
) error {
	_, err := q.Exec(ctx, `CREATE TABLE IF NOT EXISTS cars (
	id bigserial PRIMARY KEY,
	make text NOT NULL,
	model text NOT NULL,
	year integer NOT NULL,
	doors integer NOT NULL,
	color text NOT NULL,
	price numeric NOT NULL
)`)
	return err
}
