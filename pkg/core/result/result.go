// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package result provides the Result type which is returned by the use
// cases instead of an error for those failures which a client can
// recover from, i.e., a missing entity or an invalid request.
// Faults which the client cannot fix (e.g., a broken database
// connection) are not represented here and are returned as errors next
// to a Result.
package result

import (
	"errors"
	"net/http"

	"github.com/momeni/carsweb/pkg/core/cerr"
)

// Kind enumerates the Result variants.
type Kind int

// Valid values for the Kind enum.
const (
	KindInvalid Kind = iota // zero value belongs to no variant

	KindOk       // operation succeeded and Value is valid
	KindNotFound // requested entity does not exist
	KindError    // request was rejected, e.g., by validation
)

// ErrInvalid is returned by Err for a Result which was not created by
// one of the Ok, NotFound, or Error functions.
var ErrInvalid = errors.New("uninitialized result")

// String returns a human-readable name of the k variant.
func (k Kind) String() string {
	switch k {
	case KindOk:
		return "ok"
	case KindNotFound:
		return "not-found"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Result of T is a tagged outcome which holds a T value for the Ok
// variant and a message for the NotFound and Error variants.
// Its fields are not exported, so a Result may only be created using
// the Ok, NotFound, and Error functions. Callers must check Succeeded
// before using Value.
type Result[T any] struct {
	kind  Kind
	value T
	msg   string
}

// Ok creates a succeeded Result which holds v.
func Ok[T any](v T) Result[T] {
	return Result[T]{kind: KindOk, value: v}
}

// NotFound creates a failed Result indicating that the asked entity
// does not exist, described by msg.
func NotFound[T any](msg string) Result[T] {
	return Result[T]{kind: KindNotFound, msg: msg}
}

// Error creates a failed Result indicating that the request was not
// acceptable, described by msg.
func Error[T any](msg string) Result[T] {
	return Result[T]{kind: KindError, msg: msg}
}

// Succeeded reports whether r is an Ok result.
func (r Result[T]) Succeeded() bool {
	return r.kind == KindOk
}

// Value returns the value of an Ok result. For other variants, the
// zero value of T is returned.
func (r Result[T]) Value() T {
	return r.value
}

// Message returns the failure message. It is empty for Ok results.
func (r Result[T]) Message() string {
	return r.msg
}

// Kind returns the active variant of r.
func (r Result[T]) Kind() Kind {
	return r.kind
}

// Err converts a failed result into a plain text *cerr.Error having
// the 404 status code for NotFound and 400 for Error results. It
// returns nil for Ok results and ErrInvalid for a zero Result, so it
// may be used like:
//
//	if err := r.Err(); err != nil { ... }
func (r Result[T]) Err() error {
	switch r.kind {
	case KindOk:
		return nil
	case KindNotFound:
		return cerr.Message(http.StatusNotFound, r.msg)
	case KindError:
		return cerr.Message(http.StatusBadRequest, r.msg)
	default:
		return ErrInvalid
	}
}

// Carry creates a failed Result of U which keeps the variant and
// message of the failed r result. It may be used for passing a failure
// (e.g., a validation result) up the stack with another value type.
// Carry panics if r is not a failure because it has no message.
func Carry[U, T any](r Result[T]) Result[U] {
	if r.kind != KindNotFound && r.kind != KindError {
		panic(errors.New("only failed results may be carried"))
	}
	return Result[U]{kind: r.kind, msg: r.msg}
}
