// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
// Models carry no framework tags here. Each adapter (e.g., a database
// repository or a REST resource) declares its own struct and converts
// it field by field, so the models may change without touching the
// persisted or transmitted formats.
package model

import "github.com/shopspring/decimal"

// Car models a car which may be persisted in a database.
// The ID is assigned by the storage when a car is created and is kept
// unchanged afterwards. All other fields may be replaced by an update.
type Car struct {
	ID    int64           // storage assigned identifier
	Make  string          // manufacturer name, e.g., Audi
	Model string          // model name, e.g., R8
	Year  int             // production year
	Doors int             // number of doors
	Color string          // exterior color
	Price decimal.Decimal // price with currency scale (two decimals)
}
