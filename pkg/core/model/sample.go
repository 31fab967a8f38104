// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "github.com/shopspring/decimal"

// SampleCars returns a fresh slice of cars which are suitable for
// filling an empty development database. The ID fields are left zero
// so the storage can assign them.
// Data is kept as is, including the leading space of the Porsche model,
// hence, these cars are inserted without validation.
func SampleCars() []Car {
	return []Car{
		{Make: "Audi", Model: "R8", Year: 2018, Doors: 2, Color: "Red", Price: decimal.NewFromInt(79995)},
		{Make: "Tesla", Model: "3", Year: 2018, Doors: 4, Color: "Black", Price: decimal.NewFromInt(54995)},
		{Make: "Porsche", Model: " 911 991", Year: 2020, Doors: 2, Color: "White", Price: decimal.NewFromInt(155000)},
		{Make: "Mercedes-Benz", Model: "GLE 63S", Year: 2021, Doors: 5, Color: "Blue", Price: decimal.NewFromInt(83995)},
		{Make: "BMW", Model: "X6 M", Year: 2020, Doors: 5, Color: "Silver", Price: decimal.NewFromInt(62995)},
	}
}
