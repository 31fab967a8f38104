// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes wires the REST resources to their use cases.
package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/momeni/carsweb/pkg/adapter/config"
	"github.com/momeni/carsweb/pkg/adapter/restful/gin/carsrs"
	"github.com/momeni/carsweb/pkg/adapter/restful/gin/healthrs"
	"github.com/momeni/carsweb/pkg/core/repo"
)

// Register builds the cars use case from the c settings over the p
// pool and mounts its resource under /api on the e engine, next to
// the /healthz endpoint. Errors of the use case construction are wrapped
// and returned before any route is registered.
func Register(e *gin.Engine, p repo.Pool, c *config.Config) error {
	carsUseCase, err := c.NewCarsUseCase(p)
	if err != nil {
		return fmt.Errorf("creating cars use case: %w", err)
	}
	r := e.Group("/api")
	carsrs.Register(r, carsUseCase)
	healthrs.Register(e, p)
	return nil
}
