// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"log/slog"
	"time"

	"github.com/momeni/carsweb/pkg/adapter/config/settings"
	"github.com/momeni/carsweb/pkg/adapter/restful/gin"
)

// Default values of the gin settings.
const (
	DefaultAddress         = ":8080"
	DefaultShutdownTimeout = 10 * time.Second
)

// Gin contains the gin-gonic related configuration settings.
// Flags are defined as pointers, so it is possible to detect if they
// are or are not given. Missing flags are enabled by default.
type Gin struct {
	Logger   *bool `yaml:"logger"`   // Whether to log each request
	Recovery *bool `yaml:"recovery"` // Whether to recover from panics
	Metrics  *bool `yaml:"metrics"`  // Whether to serve GET /metrics

	// Address is the host:port which the web server listens on.
	Address string `yaml:"address" validate:"hostname_port"`

	// ShutdownTimeout bounds the graceful shutdown of the web server
	// after receiving a SIGINT or SIGTERM signal.
	ShutdownTimeout *settings.Duration `yaml:"shutdown-timeout" validate:"required"`
}

func (g *Gin) normalize() {
	settings.Default(&g.Logger, true)
	settings.Default(&g.Recovery, true)
	settings.Default(&g.Metrics, true)
	if g.Address == "" {
		g.Address = DefaultAddress
	}
	settings.Default(&g.ShutdownTimeout, settings.Duration(DefaultShutdownTimeout))
}

// NewEngine instantiates a new gin-gonic engine instance based on
// the `g` settings. The request ID middleware is always registered.
// The l logger is used by the access logging and recovery middlewares.
func (g Gin) NewEngine(l *slog.Logger) *gin.Engine {
	middlewares := make([]gin.HandlerFunc, 0, 4)
	middlewares = append(middlewares, gin.RequestID())
	if *g.Logger {
		middlewares = append(middlewares, gin.Logger(l))
	}
	if *g.Recovery {
		middlewares = append(middlewares, gin.Recovery(l))
	}
	var m *gin.Metrics
	if *g.Metrics {
		m = gin.NewMetrics()
		middlewares = append(middlewares, m.Middleware())
	}
	e := gin.New(middlewares...)
	if m != nil {
		e.GET("/metrics", m.Handler())
	}
	return e
}
