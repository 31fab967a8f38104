// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package dbutil contains the helpers which are shared by the
// database adapters, i.e., those parts of a Conn or Tx reification
// which depend on database/sql but not on a specific DBMS.
package dbutil

import (
	"database/sql"
	"fmt"

	"github.com/momeni/carsweb/pkg/core/repo"
)

// FinishTx ends a transaction after its handler returns. It must be
// called from a deferred function like this:
//
//	defer func() {
//		err = dbutil.FinishTx(err, recover(), tx.Rollback, tx.Commit)
//	}()
//
// The transaction is rolled back if the handler returned a non-nil
// err or if it panicked (the panicked value is turned into an error).
// Otherwise, it is committed. The returned error wraps err and the
// rollback or commit errors.
func FinishTx(
	err error, panicked any, rollback, commit func() error,
) error {
	switch {
	case panicked != nil:
		if err2 := rollback(); err2 != nil {
			return fmt.Errorf("panicked: %v, rollback: %w", panicked, err2)
		}
		return fmt.Errorf("panicked: %v", panicked)
	case err != nil:
		if err2 := rollback(); err2 != nil {
			return fmt.Errorf("handler: %w, rollback: %w", err, err2)
		}
		return fmt.Errorf("handler: %w", err)
	}
	if err := commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Rows adapts rows to the repo.Rows interface.
func Rows(rows *sql.Rows) repo.Rows {
	return rowsAdapter{rows}
}

type rowsAdapter struct {
	*sql.Rows
}

// Close closes the result set. Its error may be checked by calling
// the Err method.
func (ra rowsAdapter) Close() {
	_ = ra.Rows.Close()
}

// Values scans the current row, returning one value per column as
// the driver has provided it.
func (ra rowsAdapter) Values() ([]any, error) {
	cols, err := ra.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}
	vals := make([]any, len(cols))
	dest := make([]any, len(cols))
	for i := range vals {
		dest[i] = &vals[i]
	}
	if err := ra.Scan(dest...); err != nil {
		return nil, err
	}
	return vals, nil
}
