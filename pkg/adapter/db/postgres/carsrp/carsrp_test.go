// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package carsrp_test

import (
	"context"
	"testing"
	"time"

	"github.com/momeni/carsweb/internal/test/carstest"
	"github.com/momeni/carsweb/internal/test/dbcontainer"
	"github.com/momeni/carsweb/pkg/adapter/db/postgres/carsrp"
	"github.com/momeni/carsweb/pkg/adapter/db/postgres/schemarp"
	"github.com/stretchr/testify/suite"
)

func TestCarsRepo(t *testing.T) {
	ctx := context.Background()
	_, pool, dfrs, ok := dbcontainer.New(ctx, 60*time.Second, t)
	for _, f := range dfrs {
		defer f()
	}
	if !ok {
		return // errors are already logged
	}
	suite.Run(t, &carstest.Suite{
		Ctx:    ctx,
		Pool:   pool,
		Cars:   carsrp.New(),
		Schema: schemarp.New(),
	})
}
