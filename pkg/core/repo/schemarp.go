// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import "context"

// Schema interface presents expectations from a repository which
// creates the database tables. There are no versioned migrations,
// so creating a table is idempotent and an existing table is kept
// as is.
type Schema interface {
	// Conn takes a Conn interface instance, unwraps it as required,
	// and returns a SchemaConnQueryer which can create the tables
	// using auto-committed transactions.
	Conn(Conn) SchemaConnQueryer

	// Tx takes a Tx interface instance, unwraps it as required,
	// and returns a SchemaTxQueryer which creates the tables as part
	// of that ongoing transaction.
	Tx(Tx) SchemaTxQueryer
}

// SchemaConnQueryer lists schema operations which may run on a
// connection.
type SchemaConnQueryer interface {
	SchemaQueryer
}

// SchemaTxQueryer lists schema operations which may run in a
// transaction.
type SchemaTxQueryer interface {
	SchemaQueryer
}

// SchemaQueryer lists the schema operations which are common
// between the SchemaConnQueryer and SchemaTxQueryer interfaces.
type SchemaQueryer interface {
	// CreateTablesIfMissing creates the cars table (and its id
	// sequence, where the DBMS needs one) unless they exist.
	CreateTablesIfMissing(ctx context.Context) error
}
