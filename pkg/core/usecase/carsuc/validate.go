// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package carsuc

import (
	"strings"
	"time"

	"github.com/momeni/carsweb/pkg/core/model"
	"github.com/momeni/carsweb/pkg/core/result"
)

// MinYear is the oldest acceptable production year of a car.
const MinYear = 1900

// Validation messages which are reported by the Validate function.
const (
	MsgNilCar     = "Car must not be null"
	MsgBlankMake  = "Make must not be null or whitespace"
	MsgBlankModel = "Model must not be null or whitespace"
	MsgBadYear    = "Year must be between 1900 and next year"
	MsgBadDoors   = "Doors must be between 1 and 6"
	MsgBlankColor = "Color must not be null or whitespace"
	MsgBadPrice   = "Price must be greater than 0"
)

// Validate checks the car fields one by one and reports the first
// violated rule as an Error result. The now time is used in order to
// find the current year, so cars of the next year are accepted too.
// If all rules hold, Ok(true) is returned.
// The car ID is not checked since it is assigned by the storage.
func Validate(car *model.Car, now time.Time) result.Result[bool] {
	switch {
	case car == nil:
		return result.Error[bool](MsgNilCar)
	case isBlank(car.Make):
		return result.Error[bool](MsgBlankMake)
	case isBlank(car.Model):
		return result.Error[bool](MsgBlankModel)
	case car.Year < MinYear || car.Year > now.Year()+1:
		return result.Error[bool](MsgBadYear)
	case car.Doors < 1 || car.Doors > 6:
		return result.Error[bool](MsgBadDoors)
	case isBlank(car.Color):
		return result.Error[bool](MsgBlankColor)
	case !car.Price.IsPositive():
		return result.Error[bool](MsgBadPrice)
	}
	return result.Ok(true)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
