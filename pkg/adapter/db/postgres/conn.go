// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"context"
	"fmt"

	"github.com/momeni/carsweb/pkg/adapter/db/dbutil"
	"github.com/momeni/carsweb/pkg/core/repo"
	"gorm.io/gorm"
)

// Conn represents a database connection which is acquired from a Pool.
// It embeds *gorm.DB, so repositories may use GORM directly.
type Conn struct {
	*gorm.DB
}

type TxHandler = repo.TxHandler

// Tx begins a transaction and passes it to f. The transaction is
// committed if f returns nil, and is rolled back if f returns an
// error or panics. The panic is reported as an error.
func (c *Conn) Tx(ctx context.Context, f TxHandler) (err error) {
	tx := c.DB.WithContext(ctx).Begin()
	if err = tx.Error; err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		err = dbutil.FinishTx(
			err, recover(),
			func() error { return tx.Rollback().Error },
			func() error { return tx.Commit().Error },
		)
	}()
	return f(ctx, &Tx{DB: tx})
}

// Exec runs sql with args and returns the number of affected rows.
// Parameters may be numbered like $1 or use the GORM ? and @name
// placeholders. Without args, sql may hold several statements.
func (c *Conn) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	return exec(c.DB.WithContext(ctx), sql, args...)
}

// Query runs sql with args and returns its result set. The rows must
// be closed before running another statement on c.
func (c *Conn) Query(ctx context.Context, sql string, args ...any) (repo.Rows, error) {
	return query(c.DB.WithContext(ctx), sql, args...)
}

func (c *Conn) IsConn() {
}

// GORM returns the embedded *gorm.DB instance, configuring it
// to operate on the given ctx context (in a gorm.Session).
func (c *Conn) GORM(ctx context.Context) *gorm.DB {
	return c.DB.WithContext(ctx)
}

func exec(gdb *gorm.DB, sql string, args ...any) (int64, error) {
	gdb = gdb.Exec(sql, args...)
	if err := gdb.Error; err != nil {
		return 0, err
	}
	return gdb.RowsAffected, nil
}

func query(gdb *gorm.DB, sql string, args ...any) (repo.Rows, error) {
	rows, err := gdb.Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	return dbutil.Rows(rows), nil
}
