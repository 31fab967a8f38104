// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package healthrs realizes the health check resource which reports
// if the database is reachable.
package healthrs

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/carsweb/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/carsweb/pkg/core/cerr"
	"github.com/momeni/carsweb/pkg/core/repo"
)

type resource struct {
	pool repo.Pool
}

// Register adds the GET /healthz API to the r router group.
// It answers with 200 if a database connection can run a trivial
// query and with 503 otherwise.
func Register(r gin.IRoutes, p repo.Pool) {
	rs := &resource{pool: p}
	r.GET("/healthz", rs.Health)
}

func (rs *resource) Health(c *gin.Context) {
	err := rs.pool.Conn(
		c.Request.Context(), func(ctx context.Context, cn repo.Conn) error {
			_, err := cn.Exec(ctx, "SELECT 1")
			return err
		},
	)
	if err != nil {
		serdser.SerErr(c, cerr.Unavailable(fmt.Errorf("database: %w", err)))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
