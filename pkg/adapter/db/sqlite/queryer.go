// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package sqlite

import "github.com/momeni/carsweb/pkg/core/repo"

// Queryer is a type constraint which is satisfied by *Conn and *Tx,
// so repositories may implement each query once, as a generic
// function, and call it with either of them.
type Queryer interface {
	*Conn | *Tx
	repo.Queryer
	SQL() DBTX
}
