// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package dbutil_test

import (
	"errors"
	"testing"

	"github.com/momeni/carsweb/pkg/adapter/db/dbutil"
	"github.com/stretchr/testify/assert"
)

type fakeTx struct {
	rollbackErr, commitErr error
	rolledBack, committed  bool
}

func (tx *fakeTx) Rollback() error {
	tx.rolledBack = true
	return tx.rollbackErr
}

func (tx *fakeTx) Commit() error {
	tx.committed = true
	return tx.commitErr
}

func TestFinishTx(t *testing.T) {
	boom := errors.New("boom")
	broken := errors.New("broken connection")
	for _, tc := range []struct {
		name      string
		tx        fakeTx
		err       error
		panicked  any
		errMsg    string
		committed bool
	}{
		{name: "commit", committed: true},
		{name: "commit fails", tx: fakeTx{commitErr: broken},
			errMsg: "commit: broken connection", committed: true},
		{name: "handler fails", err: boom, errMsg: "handler: boom"},
		{name: "rollback fails", tx: fakeTx{rollbackErr: broken}, err: boom,
			errMsg: "handler: boom, rollback: broken connection"},
		{name: "panic", panicked: "oops", errMsg: "panicked: oops"},
		{name: "panic and rollback fails", tx: fakeTx{rollbackErr: broken},
			panicked: 42, errMsg: "panicked: 42, rollback: broken connection"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tx := tc.tx
			err := dbutil.FinishTx(tc.err, tc.panicked, tx.Rollback, tx.Commit)
			if tc.errMsg == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tc.errMsg)
			}
			assert.Equal(t, tc.committed, tx.committed)
			assert.Equal(t, !tc.committed, tx.rolledBack)
			if tc.err != nil {
				assert.ErrorIs(t, err, boom)
			}
		})
	}
}

func TestFinishTxRecovers(t *testing.T) {
	tx := &fakeTx{}
	run := func() (err error) {
		defer func() {
			err = dbutil.FinishTx(err, recover(), tx.Rollback, tx.Commit)
		}()
		panic("oops")
	}
	assert.EqualError(t, run(), "panicked: oops")
	assert.True(t, tx.rolledBack)
}
