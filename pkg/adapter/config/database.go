// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgpassfile"
	"github.com/momeni/carsweb/pkg/adapter/config/settings"
	"github.com/momeni/carsweb/pkg/adapter/db/postgres"
	pgcarsrp "github.com/momeni/carsweb/pkg/adapter/db/postgres/carsrp"
	pgschemarp "github.com/momeni/carsweb/pkg/adapter/db/postgres/schemarp"
	"github.com/momeni/carsweb/pkg/adapter/db/sqlite"
	sqlcarsrp "github.com/momeni/carsweb/pkg/adapter/db/sqlite/carsrp"
	sqlschemarp "github.com/momeni/carsweb/pkg/adapter/db/sqlite/schemarp"
	"github.com/momeni/carsweb/pkg/core/log"
	"github.com/momeni/carsweb/pkg/core/repo"
)

// Supported database drivers.
const (
	Postgres = "postgres"
	SQLite   = "sqlite"
)

// Database initialization modes which may be performed when the
// web server starts.
const (
	InitNone = "none"
	InitDev  = "dev"
	InitProd = "prod"
)

// DefaultPostgresPort is used when the database port is missing.
const DefaultPostgresPort = 5432

// Boundaries of the max-open-conns setting.
const (
	MaxOpenConnsMin = 1
	MaxOpenConnsMax = 256
)

// Pool is a database connection pool which can be tuned and closed.
// Both of the PostgreSQL and SQLite pools reify it.
type Pool interface {
	repo.Pool
	SetMaxOpenConns(n int) error
	Close() error
}

// Database contains the database related configuration settings.
type Database struct {
	Driver  string `yaml:"driver" validate:"required,oneof=postgres sqlite"`
	Host    string `yaml:"host"`     // domain name or IP address of the DBMS server
	Port    int    `yaml:"port" validate:"omitempty,min=1,max=65535"`
	Name    string `yaml:"name"`     // database name, like carsweb
	Role    string `yaml:"role"`     // database role (user) name
	PassDir string `yaml:"pass-dir"` // path of the .pgpass file dir

	// Path is the SQLite database file path. The ":memory:" path
	// creates a private in-memory database.
	Path string `yaml:"path" validate:"required_if=Driver sqlite"`

	// MaxOpenConns limits the number of open connections of the pool.
	// A missing value keeps the driver default.
	MaxOpenConns *int `yaml:"max-open-conns"`

	// Initialize asks the web server to create the database tables
	// before serving (and seed them with sample cars for "dev").
	Initialize string `yaml:"initialize" validate:"omitempty,oneof=none dev prod"`

	// URL is taken from the DATABASE_URL environment variable and
	// takes precedence over other PostgreSQL connection settings.
	URL string `yaml:"-"`
}

func (d *Database) normalize(ctx context.Context) {
	if d.Initialize == "" {
		d.Initialize = InitNone
	}
	if d.Driver == Postgres && d.Port == 0 {
		d.Port = DefaultPostgresPort
	}
	minb, maxb := MaxOpenConnsMin, MaxOpenConnsMax
	if err := settings.VerifyRange(
		&d.MaxOpenConns, &minb, &maxb,
	); err != nil {
		log.Warn(
			ctx, "clamped database.max-open-conns",
			log.Err("err", err), slog.Int("value", *d.MaxOpenConns),
		)
	}
}

// validateDatabase checks those PostgreSQL connection settings which
// are mandatory only if the DATABASE_URL was not given.
func validateDatabase(sl validator.StructLevel) {
	d := sl.Current().Interface().(Database)
	if d.Driver != Postgres || d.URL != "" {
		return
	}
	for _, f := range []struct {
		name, value string
	}{
		{"Host", d.Host},
		{"Name", d.Name},
		{"Role", d.Role},
	} {
		if f.value == "" {
			sl.ReportError(f.value, f.name, f.name, "required_if", Postgres)
		}
	}
}

// ConnectionPool creates a database connection pool for the `d`
// settings driver.
func (d Database) ConnectionPool(ctx context.Context) (Pool, error) {
	var p Pool
	switch d.Driver {
	case Postgres:
		u, err := d.ConnectionURL()
		if err != nil {
			return nil, err
		}
		pp, err := postgres.NewPool(ctx, u)
		if err != nil {
			return nil, err
		}
		p = pp
	case SQLite:
		sp, err := sqlite.NewPool(ctx, d.Path)
		if err != nil {
			return nil, err
		}
		p = sp
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", d.Driver)
	}
	if d.MaxOpenConns != nil {
		if err := p.SetMaxOpenConns(*d.MaxOpenConns); err != nil {
			_ = p.Close()
			return nil, fmt.Errorf("setting max open conns: %w", err)
		}
	}
	return p, nil
}

// ConnectionURL returns the PostgreSQL connection URL.
// If the DATABASE_URL was given, it is returned as is. Otherwise, the
// URL embeds the host, port, role name, database name, and password
// value. The password is read from the .pgpass file in the d.PassDir
// folder which should conform with the pgpass format like this:
//
//	host:port:dbname:role:password
//
// where the first four fields may be `*` in order to match any value.
func (d Database) ConnectionURL() (string, error) {
	if d.URL != "" {
		return d.URL, nil
	}
	path := filepath.Join(d.PassDir, ".pgpass")
	pf, err := pgpassfile.ReadPassfile(path)
	if err != nil {
		return "", fmt.Errorf("reading pass-file: %w", err)
	}
	pass := pf.FindPassword(d.Host, strconv.Itoa(d.Port), d.Name, d.Role)
	if pass == "" {
		return "", errors.New("no matching password line")
	}
	u := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(d.Role, pass),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.Name,
	}
	return u.String(), nil
}

// CarsRepo instantiates a cars repository for the `d` driver.
func (d Database) CarsRepo() repo.Cars {
	if d.Driver == SQLite {
		return sqlcarsrp.New()
	}
	return pgcarsrp.New()
}

// SchemaRepo instantiates a schema repository for the `d` driver.
func (d Database) SchemaRepo() repo.Schema {
	if d.Driver == SQLite {
		return sqlschemarp.New()
	}
	return pgschemarp.New()
}
