// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package initdbuc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/momeni/carsweb/internal/test/memrepo"
	"github.com/momeni/carsweb/pkg/core/model"
	"github.com/momeni/carsweb/pkg/core/repo"
	"github.com/momeni/carsweb/pkg/core/usecase/initdbuc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func list(t *testing.T, s *memrepo.Store) []model.Car {
	t.Helper()
	var cc []model.Car
	err := s.Conn(context.Background(), func(ctx context.Context, c repo.Conn) (err error) {
		cc, err = s.Cars().Conn(c).List(ctx)
		return err
	})
	require.NoError(t, err)
	return cc
}

func TestInitDevSeedsEmptyDatabase(t *testing.T) {
	ctx := context.Background()
	s := memrepo.New()
	uc := initdbuc.New(s, s.Schema(), s.Cars())

	require.NoError(t, uc.InitDev(ctx))
	assert.True(t, s.TableCreated())
	cc := list(t, s)
	require.Len(t, cc, 5)
	assert.Equal(t, "Audi", cc[0].Make)
	assert.Equal(t, " 911 991", cc[2].Model, "samples are stored verbatim")
	assert.Equal(t, "62995", cc[4].Price.String())

	require.NoError(t, uc.InitDev(ctx))
	assert.Len(t, list(t, s), 5, "seeding must happen only once")
}

func TestInitProdKeepsDatabaseEmpty(t *testing.T) {
	s := memrepo.New()
	uc := initdbuc.New(s, s.Schema(), s.Cars())
	require.NoError(t, uc.InitProd(context.Background()))
	assert.True(t, s.TableCreated())
	assert.Empty(t, list(t, s))
}

func TestInitDevReportsStorageFaults(t *testing.T) {
	s := memrepo.New()
	boom := errors.New("disk full")
	s.SetFault(boom)
	uc := initdbuc.New(s, s.Schema(), s.Cars())
	assert.ErrorIs(t, uc.InitDev(context.Background()), boom)
}
