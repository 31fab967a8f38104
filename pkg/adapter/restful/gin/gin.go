// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package gin wraps the gin-gonic engine and provides the middlewares
// which are shared by all resources, namely access logging, panic
// recovery, request identification, and prometheus metrics.
package gin

import (
	"context"
	"log/slog"

	ginlogger "github.com/FabienMht/ginslog/logger"
	ginrecovery "github.com/FabienMht/ginslog/recovery"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HandlerFunc = gin.HandlerFunc
type Engine = gin.Engine

// RequestIDHeader is the HTTP header which carries the request ID.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

func New(middlewares ...HandlerFunc) *Engine {
	e := gin.New()
	e.Use(middlewares...)
	return e
}

// Logger logs one record per request using the l slog logger.
func Logger(l *slog.Logger) HandlerFunc {
	return ginlogger.New(l)
}

// Recovery converts panics into 500 responses and logs them using
// the l slog logger.
func Recovery(l *slog.Logger) HandlerFunc {
	return ginrecovery.New(l)
}

// RequestID takes the request ID from the X-Request-ID header or
// generates a random UUID if it is missing. The ID is echoed back
// in the response header and is kept in the request context, so it
// may be obtained using the RequestIDFrom function.
func RequestID() HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		ctx := context.WithValue(c.Request.Context(), requestIDKey{}, id)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequestIDFrom returns the request ID which was stored in ctx by
// the RequestID middleware, or an empty string.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
