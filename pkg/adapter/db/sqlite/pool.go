// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package sqlite provides the SQLite reification of the repo Pool,
// Conn, and Tx interfaces over the database/sql package and the pure
// Go modernc.org/sqlite driver. Repositories which are implemented in
// the sub-packages of this package may use the SQL method in order to
// run statements with the "?" placeholders.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/momeni/carsweb/pkg/core/repo"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// Memory is the special path which opens a private in-memory database.
const Memory = ":memory:"

// BusyTimeout is how long a connection waits for the write lock of a
// file database before failing with SQLITE_BUSY.
const BusyTimeout = 5 * time.Second

// Pool represents a SQLite connection pool.
type Pool struct {
	db     *sql.DB
	memory bool
}

// NewPool opens the path SQLite database file, creating it if it does
// not exist, and returns its connection pool after acquiring one
// connection successfully.
//
// Each connection to the Memory path sees its own database, so the
// pool is limited to a single connection in that case. Connections to
// a file wait up to BusyTimeout for the write lock, and transactions
// take that lock when they begin, so concurrent writers are queued by
// SQLite instead of failing.
func NewPool(ctx context.Context, path string) (*Pool, error) {
	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	pool := &Pool{db: db, memory: isMemory(path)}
	if pool.memory {
		db.SetMaxOpenConns(1)
	} else {
		_, err = db.ExecContext(ctx, "PRAGMA journal_mode=WAL")
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("enabling WAL mode: %w", err)
		}
	}
	err = pool.Conn(ctx, NoOpConnHandler)
	if err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("testing connection: %w", err)
	}
	return pool, nil
}

// dsn appends the per-connection options of the modernc driver to the
// path query string.
func dsn(path string) string {
	if isMemory(path) {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return fmt.Sprintf(
		"%s%s_pragma=busy_timeout(%d)&_txlock=immediate",
		path, sep, BusyTimeout.Milliseconds(),
	)
}

func isMemory(path string) bool {
	return path == Memory || strings.Contains(path, "mode=memory")
}

type ConnHandler = repo.ConnHandler

func NoOpConnHandler(context.Context, repo.Conn) error {
	return nil
}

// Conn acquires a connection from the pool, passes it to f, and
// releases it after f returns.
func (p *Pool) Conn(ctx context.Context, f ConnHandler) (err error) {
	c, err := p.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquiring connection: %w", err)
	}
	defer func() {
		if err2 := c.Close(); err2 != nil && err == nil {
			err = fmt.Errorf("releasing connection: %w", err2)
		}
	}()
	return f(ctx, &Conn{c: c})
}

// SetMaxOpenConns limits the number of open connections in the pool.
// Zero means no limit. In-memory pools keep their single connection.
func (p *Pool) SetMaxOpenConns(n int) error {
	if n < 0 {
		return fmt.Errorf("negative max open connections: %d", n)
	}
	if !p.memory {
		p.db.SetMaxOpenConns(n)
	}
	return nil
}

// Close closes all connections of the pool.
func (p *Pool) Close() error {
	return p.db.Close()
}
