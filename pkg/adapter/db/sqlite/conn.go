// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/momeni/carsweb/pkg/adapter/db/dbutil"
	"github.com/momeni/carsweb/pkg/core/repo"
)

// DBTX lists the database/sql methods which are shared by the
// *sql.Conn and *sql.Tx types.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Conn represents a database connection which is acquired from a Pool.
type Conn struct {
	c *sql.Conn
}

type TxHandler = repo.TxHandler

// Tx begins a transaction and passes it to f. The transaction is
// committed if f returns nil, and is rolled back if f returns an
// error or panics. The panic is reported as an error.
func (c *Conn) Tx(ctx context.Context, f TxHandler) (err error) {
	tx, err := c.c.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		err = dbutil.FinishTx(err, recover(), tx.Rollback, tx.Commit)
	}()
	return f(ctx, &Tx{tx: tx})
}

func (c *Conn) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	return exec(ctx, c.c, sql, args...)
}

func (c *Conn) Query(ctx context.Context, sql string, args ...any) (repo.Rows, error) {
	return query(ctx, c.c, sql, args...)
}

func (c *Conn) IsConn() {
}

// SQL returns the wrapped *sql.Conn as a DBTX.
func (c *Conn) SQL() DBTX {
	return c.c
}

// Tx represents a database transaction. SQLite serializes writers,
// so a Tx which writes blocks other writers until it finishes.
type Tx struct {
	tx *sql.Tx
}

func (tx *Tx) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	return exec(ctx, tx.tx, sql, args...)
}

func (tx *Tx) Query(ctx context.Context, sql string, args ...any) (repo.Rows, error) {
	return query(ctx, tx.tx, sql, args...)
}

// IsTx method prevents a non-Tx object (such as a Conn) to
// mistakenly implement the Tx interface.
func (tx *Tx) IsTx() {
}

// SQL returns the wrapped *sql.Tx as a DBTX.
func (tx *Tx) SQL() DBTX {
	return tx.tx
}

func exec(ctx context.Context, q DBTX, sql string, args ...any) (int64, error) {
	res, err := q.ExecContext(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func query(ctx context.Context, q DBTX, sql string, args ...any) (repo.Rows, error) {
	rows, err := q.QueryContext(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return dbutil.Rows(rows), nil
}
