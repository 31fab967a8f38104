// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package dbcontainer starts a throwaway postgres:16 container for
// the integration suites and opens a *postgres.Pool on it. Suites
// using it are skipped with the -short flag.
package dbcontainer

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/bitcomplete/sqltestutil"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/momeni/carsweb/pkg/adapter/db/postgres"
	"github.com/stretchr/testify/assert"
)

// retryDelay is the pause between connection attempts while the
// container is starting up.
const retryDelay = 250 * time.Millisecond

// New starts a postgres container and connects a pool to it. The
// container runtime is found through DOCKER_HOST, so podman users
// should export DOCKER_HOST=unix://$XDG_RUNTIME_DIR/podman/podman.sock
// first. The timeout bounds the start up only, while ctx is also used
// for the shutdown. Callers must defer every returned dfrs function,
// whatever ok is, since a failed start may leave partial resources.
func New(ctx context.Context, timeout time.Duration, t *testing.T) (
	pg *sqltestutil.PostgresContainer,
	pool *postgres.Pool,
	dfrs []func(),
	ok bool,
) {
	if testing.Short() {
		t.Skip("skipping PostgreSQL container tests in short mode")
	}
	ctx2, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	dbmsVer := "16"
	pg, err := sqltestutil.StartPostgresContainer(ctx2, dbmsVer)
	ok = assert.NoError(t, err, "failed to set up a test database")
	if !ok {
		return
	}
	dfrs = append(dfrs, func() {
		err := pg.Shutdown(ctx)
		assert.NoError(t, err, "failed to shutdown test database")
	})
	u := pg.ConnectionString()
	for pool == nil {
		pool, err = postgres.NewPool(ctx2, u)
		if err == nil {
			break
		}
		if retriable(ctx2, err) {
			time.Sleep(retryDelay)
			continue
		}
		ok = assert.NoError(t, err, "cannot connect to test database")
		return
	}
	dfrs = append(dfrs, func() {
		err := pool.Close()
		assert.NoError(t, err, "failed to close the connections pool")
	})
	return
}

func retriable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.SQLState() == "57P03" {
		return true // the database system is starting up
	}
	var netErr net.Error
	return errors.As(err, &netErr) // tolerate network errors until a timeout
}
