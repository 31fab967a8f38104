// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package carsrp

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/momeni/carsweb/pkg/adapter/db/sqlite"
	"github.com/momeni/carsweb/pkg/core/model"
	"github.com/momeni/carsweb/pkg/core/repo"
	"github.com/shopspring/decimal"
)

const columns = "id, make, model, year, doors, color, price"

type scanner interface {
	Scan(dest ...any) error
}

func scanCar(s scanner) (*model.Car, error) {
	var (
		c     model.Car
		price string
	)
	err := s.Scan(
		&c.ID, &c.Make, &c.Model, &c.Year, &c.Doors, &c.Color, &price,
	)
	if err != nil {
		return nil, err
	}
	c.Price, err = decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("parsing price of car %d: %w", c.ID, err)
	}
	return &c, nil
}

// dbPrice formats p as TEXT with all of its digits, so the stored
// price is exactly the validated one.
func dbPrice(p decimal.Decimal) string {
	return p.String()
}

func List[Q sqlite.Queryer](ctx context.Context, q Q) ([]model.Car, error) {
	rows, err := q.SQL().QueryContext(
		ctx, "SELECT "+columns+" FROM cars ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()
	cc := make([]model.Car, 0)
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		cc = append(cc, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return cc, nil
}

func Get[Q sqlite.Queryer](ctx context.Context, q Q, id int64) (*model.Car, error) {
	row := q.SQL().QueryRowContext(
		ctx, "SELECT "+columns+" FROM cars WHERE id = ?", id,
	)
	c, err := scanCar(row)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("car %d: %w", id, repo.ErrNotFound)
	case err != nil:
		return nil, fmt.Errorf("query: %w", err)
	}
	return c, nil
}

func Create[Q sqlite.Queryer](ctx context.Context, q Q, c *model.Car) (*model.Car, error) {
	res, err := q.SQL().ExecContext(
		ctx,
		"INSERT INTO cars (make, model, year, doors, color, price)"+
			" VALUES (?, ?, ?, ?, ?, ?)",
		c.Make, c.Model, c.Year, c.Doors, c.Color, dbPrice(c.Price),
	)
	if err != nil {
		return nil, fmt.Errorf("insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	stored := *c
	stored.ID = id
	return &stored, nil
}

func Update[Q sqlite.Queryer](ctx context.Context, q Q, id int64, c *model.Car) error {
	_, err := q.SQL().ExecContext(
		ctx,
		"UPDATE cars SET make = ?, model = ?, year = ?, doors = ?,"+
			" color = ?, price = ? WHERE id = ?",
		c.Make, c.Model, c.Year, c.Doors, c.Color, dbPrice(c.Price), id,
	)
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}
	return nil
}

func Delete[Q sqlite.Queryer](ctx context.Context, q Q, id int64) error {
	_, err := q.SQL().ExecContext(ctx, "DELETE FROM cars WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	return nil
}

func Count[Q sqlite.Queryer](ctx context.Context, q Q) (int64, error) {
	var n int64
	err := q.SQL().QueryRowContext(ctx, "SELECT count(*) FROM cars").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}
