// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package serdser contains the serialization and deserialization
// helpers which are shared by the resource packages.
//
// Binding failures are reported as JSON objects. A validation failure
// maps each field name to its error messages, like {"ID": ["..."]},
// and other failures are reported as {"detail": "..."}.
package serdser

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/momeni/carsweb/pkg/core/cerr"
	"github.com/momeni/carsweb/pkg/core/log"
)

// Bind deserializes the request into req using the b binding and
// validates it. If it fails, the error response is written and false
// is returned, so the caller should return immediately.
func Bind(c *gin.Context, req any, b binding.Binding) bool {
	return bindErr(c, c.ShouldBindWith(req, b))
}

// BindURI is like Bind, but fills req from the path parameters using
// the uri struct tags.
func BindURI(c *gin.Context, req any) bool {
	return bindErr(c, c.ShouldBindUri(req))
}

func bindErr(c *gin.Context, err error) bool {
	switch err := err.(type) {
	case *validator.InvalidValidationError:
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": err.Error(),
		})
	case validator.ValidationErrors:
		var nameToErrs map[string][]string
		for _, ferr := range err {
			AddErr(&nameToErrs, ferr.Field(), ferr.Error())
		}
		c.JSON(http.StatusBadRequest, nameToErrs)
	default:
		if err == nil {
			return true
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": err.Error(),
		})
	}
	return false
}

func AddErr(errs *map[string][]string, name string, msgs ...string) {
	if (*errs) == nil {
		*errs = make(map[string][]string)
	}
	(*errs)[name] = append((*errs)[name], msgs...)
}

func Assert(errs *map[string][]string, ok bool, name string, msgs ...string) bool {
	if ok {
		return true
	}
	AddErr(errs, name, msgs...)
	return false
}

// SerErr writes err as the response. A *cerr.Error determines the
// status code and is written as plain text if its PlainText flag is
// set, or as {"detail": "..."} otherwise. Other errors are logged and
// reported with the 500 status code.
func SerErr(c *gin.Context, err error) {
	var ce *cerr.Error
	if errors.As(err, &ce) {
		if ce.PlainText {
			c.String(ce.HTTPStatusCode, ce.Err.Error())
			return
		}
		c.JSON(ce.HTTPStatusCode, gin.H{
			"detail": ce.Err.Error(),
		})
		return
	}
	log.Error(
		c.Request.Context(), "request failed",
		log.Err("err", err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{
		"detail": err.Error(),
	})
}
