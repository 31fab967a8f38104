// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import "context"

// TxHandler is a callback which receives an ongoing transaction.
// Returning a nil error commits the transaction, while returning
// an error (or panicking) rolls it back.
type TxHandler func(context.Context, Tx) error

// Conn represents a database connection which is acquired from a Pool
// and is released after its ConnHandler returns.
type Conn interface {
	Queryer
	Tx(ctx context.Context, handler TxHandler) error

	// IsConn method prevents a non-Conn object (such as a Tx) to
	// mistakenly implement the Conn interface.
	IsConn()
}
