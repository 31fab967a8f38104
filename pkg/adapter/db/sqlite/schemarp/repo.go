// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package schemarp provides the SQLite reification of the repo.Schema
// interface.
package schemarp

import (
	"context"

	"github.com/momeni/carsweb/pkg/adapter/db/sqlite"
	"github.com/momeni/carsweb/pkg/core/repo"
)

// Repo represents a schema management repository.
type Repo struct {
}

func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*sqlite.Conn
}

// Conn unwraps c, expecting a *sqlite.Conn, and panics otherwise.
func (schema *Repo) Conn(c repo.Conn) repo.SchemaConnQueryer {
	return connQueryer{Conn: c.(*sqlite.Conn)}
}

func (cq connQueryer) CreateTablesIfMissing(ctx context.Context) error {
	return CreateTablesIfMissing(ctx, cq.Conn)
}

type txQueryer struct {
	*sqlite.Tx
}

// Tx unwraps tx, expecting a *sqlite.Tx, and panics otherwise.
func (schema *Repo) Tx(tx repo.Tx) repo.SchemaTxQueryer {
	return txQueryer{Tx: tx.(*sqlite.Tx)}
}

func (tq txQueryer) CreateTablesIfMissing(ctx context.Context) error {
	return CreateTablesIfMissing(ctx, tq.Tx)
}

// CreateTablesIfMissing creates the cars table unless it exists.
// AUTOINCREMENT keeps the ids of deleted cars from being reused.
// Prices are kept as TEXT in order to preserve their decimal digits.
func CreateTablesIfMissing[Q sqlite.Queryer](
	ctx context.Context, q Q,
) error {
	_, err := q.Exec(ctx, `CREATE TABLE IF NOT EXISTS cars (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	make TEXT NOT NULL,
	model TEXT NOT NULL,
	year INTEGER NOT NULL,
	doors INTEGER NOT NULL,
	color TEXT NOT NULL,
	price TEXT NOT NULL
)`)
	return err
}
