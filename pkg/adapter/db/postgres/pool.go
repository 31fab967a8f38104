// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package postgres provides the PostgreSQL reification of the repo
// Pool, Conn, and Tx interfaces using the GORM framework (and pgx as
// its driver). Repositories which are implemented in the sub-packages
// of this package may use the GORM method in order to access the
// embedded *gorm.DB instances.
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/momeni/carsweb/pkg/core/repo"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Pool represents a PostgreSQL connection pool.
type Pool struct {
	*gorm.DB
}

// NewPool connects to the url PostgreSQL database and returns its
// connection pool after acquiring one connection successfully.
// GORM messages with warning (or higher) level, such as slow queries,
// are written to the default slog logger.
func NewPool(ctx context.Context, url string) (*Pool, error) {
	gdb, err := gorm.Open(postgres.Open(url), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open: %w", err)
	}
	gdb = gdb.Session(&gorm.Session{
		Logger: logger.New(
			slog.NewLogLogger(slog.Default().Handler(), slog.LevelWarn),
			logger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
				// Set to false in order to log with replaced vars
				ParameterizedQueries: true,
			}),
	})
	pool := &Pool{DB: gdb}
	err = pool.Conn(ctx, NoOpConnHandler)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("testing connection: %w", err)
	}
	return pool, nil
}

type ConnHandler = repo.ConnHandler

func NoOpConnHandler(context.Context, repo.Conn) error {
	return nil
}

// Conn acquires a connection from the pool, passes it to f, and
// releases it after f returns.
func (p *Pool) Conn(ctx context.Context, f ConnHandler) error {
	return p.DB.WithContext(ctx).Connection(func(c *gorm.DB) error {
		cc := &Conn{DB: c}
		return f(ctx, cc)
	})
}

// SetMaxOpenConns limits the number of open connections in the pool.
// Zero means no limit.
func (p *Pool) SetMaxOpenConns(n int) error {
	db, err := p.DB.DB()
	if err != nil {
		return err
	}
	db.SetMaxOpenConns(n)
	return nil
}

// Close closes all connections of the pool.
func (p *Pool) Close() error {
	db, err := p.DB.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
