// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gin_test

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/momeni/carsweb/internal/test/apitest"
	"github.com/momeni/carsweb/internal/test/dbcontainer"
	"github.com/momeni/carsweb/pkg/adapter/config"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func TestSQLiteGinTestSuite(t *testing.T) {
	ctx := context.Background()
	t.Setenv(config.DatabaseURLEnv, "")
	c, err := config.Parse(ctx, []byte(`
version: 1.0.0
database:
  driver: sqlite
  path: ":memory:"
`))
	require.NoError(t, err)
	p, err := c.ConnectionPool(ctx)
	require.NoError(t, err)
	defer p.Close()

	suite.Run(t, &apitest.Suite{Ctx: ctx, Pool: p, Config: c})
}

func TestIntegrationGinTestSuite(t *testing.T) {
	ctx := context.Background()
	pg, pool, dfrs, ok := dbcontainer.New(ctx, 60*time.Second, t)
	for _, f := range dfrs {
		defer f()
	}
	if !ok {
		return // errors are already logged
	}
	t.Setenv(config.DatabaseURLEnv, pg.ConnectionString())
	c, err := config.Parse(ctx, []byte(`
version: 1.0.0
database:
  driver: postgres
gin:
  logger: false
`))
	require.NoError(t, err)

	suite.Run(t, &apitest.Suite{Ctx: ctx, Pool: pool, Config: c})
}
