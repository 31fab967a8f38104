// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cerr provides the core errors which carry an HTTP status
// code, so the use cases layer may indicate how a failure should be
// reported without depending on a web framework.
package cerr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error wraps Err and annotates it with the HTTPStatusCode which should
// be reported to the client. When PlainText is set, the Err message is
// the whole response body instead of being embedded in a JSON object.
type Error struct {
	Err            error
	HTTPStatusCode int
	PlainText      bool
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.HTTPStatusCode, e.Err.Error())
}

func BadRequest(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusBadRequest}
}

func NotFound(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusNotFound}
}

func Unavailable(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusServiceUnavailable}
}

// Message creates a plain text Error with the given status code and
// msg as its body.
func Message(status int, msg string) *Error {
	return &Error{
		Err:            errors.New(msg),
		HTTPStatusCode: status,
		PlainText:      true,
	}
}
