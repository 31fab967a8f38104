// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package memrepo provides in-memory implementations of the repo
// interfaces for unit tests of the use cases. Transactions are not
// isolated; a failing TxHandler restores the cars which were stored
// when that transaction began.
package memrepo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/momeni/carsweb/pkg/core/model"
	"github.com/momeni/carsweb/pkg/core/repo"
)

// ErrRawSQL is returned by the Exec and Query methods because an
// in-memory store cannot run SQL statements.
var ErrRawSQL = errors.New("raw SQL is not supported in memory")

// Store keeps cars in a map and assigns increasing IDs to them.
// It implements repo.Pool, repo.Cars, and repo.Schema at once.
// Its operations fail after SetFault is given a non-nil error.
type Store struct {
	mu     sync.Mutex
	cars   map[int64]model.Car
	nextID int64
	tables bool
	fault  error
}

// New creates an empty Store whose cars table is not created yet.
func New() *Store {
	return &Store{cars: make(map[int64]model.Car), nextID: 1}
}

// TableCreated reports if CreateTablesIfMissing was called.
func (s *Store) TableCreated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tables
}

// SetFault makes the following operations fail with err, or succeed
// again if err is nil. It may be called concurrently with them.
func (s *Store) SetFault(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fault = err
}

// Conn passes a connection to the handler after checking the fault.
func (s *Store) Conn(ctx context.Context, f repo.ConnHandler) error {
	s.mu.Lock()
	fault := s.fault
	s.mu.Unlock()
	if fault != nil {
		return fmt.Errorf("acquiring connection: %w", fault)
	}
	return f(ctx, &conn{s: s})
}

type conn struct {
	s *Store
}

func (c *conn) Exec(context.Context, string, ...any) (int64, error) {
	return 0, ErrRawSQL
}

func (c *conn) Query(context.Context, string, ...any) (repo.Rows, error) {
	return nil, ErrRawSQL
}

func (c *conn) IsConn() {
}

func (c *conn) Tx(ctx context.Context, f repo.TxHandler) (err error) {
	c.s.mu.Lock()
	backup := make(map[int64]model.Car, len(c.s.cars))
	for id, car := range c.s.cars {
		backup[id] = car
	}
	tables := c.s.tables
	c.s.mu.Unlock()
	defer func() {
		if err == nil {
			return
		}
		c.s.mu.Lock()
		c.s.cars, c.s.tables = backup, tables
		c.s.mu.Unlock()
		err = fmt.Errorf("handler: %w", err)
	}()
	return f(ctx, &tx{s: c.s})
}

type tx struct {
	s *Store
}

func (t *tx) Exec(context.Context, string, ...any) (int64, error) {
	return 0, ErrRawSQL
}

func (t *tx) Query(context.Context, string, ...any) (repo.Rows, error) {
	return nil, ErrRawSQL
}

func (t *tx) IsTx() {
}

func unwrap(q any) *Store {
	switch v := q.(type) {
	case *conn:
		return v.s
	case *tx:
		return v.s
	default:
		panic(fmt.Errorf("unexpected queryer type: %T", q))
	}
}

// Cars returns a repo.Cars which operates on the s store.
func (s *Store) Cars() repo.Cars {
	return carsRepo{}
}

// Schema returns a repo.Schema which operates on the s store.
func (s *Store) Schema() repo.Schema {
	return schemaRepo{}
}

type carsRepo struct{}

func (carsRepo) Conn(c repo.Conn) repo.CarsConnQueryer {
	return &queryer{s: unwrap(c)}
}

func (carsRepo) Tx(t repo.Tx) repo.CarsTxQueryer {
	return &queryer{s: unwrap(t)}
}

type schemaRepo struct{}

func (schemaRepo) Conn(c repo.Conn) repo.SchemaConnQueryer {
	return &queryer{s: unwrap(c)}
}

func (schemaRepo) Tx(t repo.Tx) repo.SchemaTxQueryer {
	return &queryer{s: unwrap(t)}
}

type queryer struct {
	s *Store
}

func (q *queryer) lock() (unlock func(), err error) {
	q.s.mu.Lock()
	if err := q.s.fault; err != nil {
		q.s.mu.Unlock()
		return nil, err
	}
	return q.s.mu.Unlock, nil
}

func (q *queryer) CreateTablesIfMissing(context.Context) error {
	unlock, err := q.lock()
	if err != nil {
		return err
	}
	defer unlock()
	q.s.tables = true
	return nil
}

func (q *queryer) List(context.Context) ([]model.Car, error) {
	unlock, err := q.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()
	cc := make([]model.Car, 0, len(q.s.cars))
	for _, c := range q.s.cars {
		cc = append(cc, c)
	}
	sort.Slice(cc, func(i, j int) bool { return cc[i].ID < cc[j].ID })
	return cc, nil
}

func (q *queryer) Get(_ context.Context, id int64) (*model.Car, error) {
	unlock, err := q.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()
	c, ok := q.s.cars[id]
	if !ok {
		return nil, fmt.Errorf("car %d: %w", id, repo.ErrNotFound)
	}
	return &c, nil
}

func (q *queryer) Create(_ context.Context, c *model.Car) (*model.Car, error) {
	unlock, err := q.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()
	stored := *c
	stored.ID = q.s.nextID
	q.s.nextID++
	q.s.cars[stored.ID] = stored
	return &stored, nil
}

func (q *queryer) Update(_ context.Context, id int64, c *model.Car) error {
	unlock, err := q.lock()
	if err != nil {
		return err
	}
	defer unlock()
	if _, ok := q.s.cars[id]; !ok {
		return nil
	}
	updated := *c
	updated.ID = id
	q.s.cars[id] = updated
	return nil
}

func (q *queryer) Delete(_ context.Context, id int64) error {
	unlock, err := q.lock()
	if err != nil {
		return err
	}
	defer unlock()
	delete(q.s.cars, id)
	return nil
}

func (q *queryer) Count(context.Context) (int64, error) {
	unlock, err := q.lock()
	if err != nil {
		return 0, err
	}
	defer unlock()
	return int64(len(q.s.cars)), nil
}
