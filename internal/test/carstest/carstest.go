// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package carstest provides a testify suite which checks the behavior
// of a repo.Cars implementation. Each database adapter runs it against
// its own backend, so all of them behave the same.
package carstest

import (
	"context"
	"errors"

	"github.com/momeni/carsweb/pkg/core/model"
	"github.com/momeni/carsweb/pkg/core/repo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

// Suite checks Pool, Cars, and Schema implementations. The tables are
// created once in SetupSuite and all cars are deleted before each test.
type Suite struct {
	suite.Suite

	Ctx    context.Context
	Pool   repo.Pool
	Cars   repo.Cars
	Schema repo.Schema
}

func (s *Suite) SetupSuite() {
	err := s.Pool.Conn(s.Ctx, func(ctx context.Context, c repo.Conn) error {
		if err := s.Schema.Conn(c).CreateTablesIfMissing(ctx); err != nil {
			return err
		}
		// creating twice must be harmless
		return s.Schema.Conn(c).CreateTablesIfMissing(ctx)
	})
	s.Require().NoError(err, "creating tables")
}

func (s *Suite) SetupTest() {
	err := s.conn(func(ctx context.Context, q repo.CarsConnQueryer) error {
		cc, err := q.List(ctx)
		if err != nil {
			return err
		}
		for _, c := range cc {
			if err := q.Delete(ctx, c.ID); err != nil {
				return err
			}
		}
		return nil
	})
	s.Require().NoError(err, "emptying cars table")
}

func (s *Suite) conn(f func(context.Context, repo.CarsConnQueryer) error) error {
	return s.Pool.Conn(s.Ctx, func(ctx context.Context, c repo.Conn) error {
		return f(ctx, s.Cars.Conn(c))
	})
}

func audi() *model.Car {
	return &model.Car{
		Make:  "Audi",
		Model: "R8",
		Year:  2018,
		Doors: 2,
		Color: "Red",
		Price: decimal.RequireFromString("79995.5"),
	}
}

func (s *Suite) create(c *model.Car) *model.Car {
	var stored *model.Car
	err := s.conn(func(ctx context.Context, q repo.CarsConnQueryer) (err error) {
		stored, err = q.Create(ctx, c)
		return err
	})
	s.Require().NoError(err)
	return stored
}

func (s *Suite) get(id int64) (*model.Car, error) {
	var c *model.Car
	err := s.conn(func(ctx context.Context, q repo.CarsConnQueryer) (err error) {
		c, err = q.Get(ctx, id)
		return err
	})
	return c, err
}

func (s *Suite) TestCreateAndGet() {
	stored := s.create(audi())
	s.NotZero(stored.ID)

	c, err := s.get(stored.ID)
	s.Require().NoError(err)
	s.Equal(stored.ID, c.ID)
	s.Equal("Audi", c.Make)
	s.Equal("R8", c.Model)
	s.Equal(2018, c.Year)
	s.Equal(2, c.Doors)
	s.Equal("Red", c.Color)
	s.Equal("79995.5", c.Price.String())
}

func (s *Suite) TestPriceIsStoredExactly() {
	for _, price := range []string{
		"0.001", "10.005", "12345678901234.56789",
	} {
		a := audi()
		a.Price = decimal.RequireFromString(price)
		stored := s.create(a)
		s.Equal(price, stored.Price.String())

		c, err := s.get(stored.ID)
		s.Require().NoError(err)
		s.True(c.Price.Equal(a.Price), "%s != %s", c.Price, price)
		s.True(c.Price.IsPositive())
	}
}

func (s *Suite) TestConcurrentCreates() {
	const writers, perWriter = 16, 10
	var g errgroup.Group
	for range writers {
		g.Go(func() error {
			for range perWriter {
				err := s.conn(func(ctx context.Context, q repo.CarsConnQueryer) error {
					_, err := q.Create(ctx, audi())
					return err
				})
				if err != nil {
					return err
				}
			}
			return nil
		})
	}
	s.Require().NoError(g.Wait())

	err := s.conn(func(ctx context.Context, q repo.CarsConnQueryer) error {
		n, err := q.Count(ctx)
		s.Equal(int64(writers*perWriter), n)
		return err
	})
	s.Require().NoError(err)
}

func (s *Suite) TestGetMissing() {
	_, err := s.get(987654)
	s.True(errors.Is(err, repo.ErrNotFound), "got %v", err)
}

func (s *Suite) TestListOrdersByID() {
	first := s.create(audi())
	b := audi()
	b.Make, b.Model = "BMW", "X6 M"
	second := s.create(b)

	var cc []model.Car
	err := s.conn(func(ctx context.Context, q repo.CarsConnQueryer) (err error) {
		cc, err = q.List(ctx)
		return err
	})
	s.Require().NoError(err)
	s.Require().Len(cc, 2)
	s.Equal(first.ID, cc[0].ID)
	s.Equal(second.ID, cc[1].ID)
	s.Equal("BMW", cc[1].Make)
}

func (s *Suite) TestListEmpty() {
	var cc []model.Car
	err := s.conn(func(ctx context.Context, q repo.CarsConnQueryer) (err error) {
		cc, err = q.List(ctx)
		return err
	})
	s.Require().NoError(err)
	s.NotNil(cc)
	s.Empty(cc)
}

func (s *Suite) TestUpdate() {
	stored := s.create(audi())
	u := audi()
	u.ID = 0
	u.Color = "Green"
	u.Doors = 4
	err := s.conn(func(ctx context.Context, q repo.CarsConnQueryer) error {
		return q.Update(ctx, stored.ID, u)
	})
	s.Require().NoError(err)

	c, err := s.get(stored.ID)
	s.Require().NoError(err)
	s.Equal(stored.ID, c.ID, "update must keep the id")
	s.Equal("Green", c.Color)
	s.Equal(4, c.Doors)
}

func (s *Suite) TestUpdateAndDeleteMissingAreNoOps() {
	err := s.conn(func(ctx context.Context, q repo.CarsConnQueryer) error {
		if err := q.Update(ctx, 987654, audi()); err != nil {
			return err
		}
		if err := q.Delete(ctx, 987654); err != nil {
			return err
		}
		n, err := q.Count(ctx)
		s.Zero(n)
		return err
	})
	s.Require().NoError(err)
}

func (s *Suite) TestDelete() {
	stored := s.create(audi())
	err := s.conn(func(ctx context.Context, q repo.CarsConnQueryer) error {
		return q.Delete(ctx, stored.ID)
	})
	s.Require().NoError(err)
	_, err = s.get(stored.ID)
	s.ErrorIs(err, repo.ErrNotFound)
}

func (s *Suite) TestTxRollback() {
	boom := errors.New("boom")
	err := s.Pool.Conn(s.Ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := s.Cars.Tx(tx)
			if _, err := q.Create(ctx, audi()); err != nil {
				return err
			}
			n, err := q.Count(ctx)
			if err != nil {
				return err
			}
			s.Equal(int64(1), n, "tx must see its own insert")
			return boom
		})
	})
	s.ErrorIs(err, boom)

	err = s.conn(func(ctx context.Context, q repo.CarsConnQueryer) error {
		n, err := q.Count(ctx)
		s.Zero(n, "rolled back insert must be discarded")
		return err
	})
	s.Require().NoError(err)
}

func (s *Suite) TestTxCommit() {
	err := s.Pool.Conn(s.Ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			_, err := s.Cars.Tx(tx).Create(ctx, audi())
			return err
		})
	})
	s.Require().NoError(err)
	err = s.conn(func(ctx context.Context, q repo.CarsConnQueryer) error {
		n, err := q.Count(ctx)
		s.Equal(int64(1), n)
		return err
	})
	s.Require().NoError(err)
}
