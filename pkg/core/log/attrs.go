// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package log

import (
	"log/slog"

	"github.com/momeni/carsweb/pkg/core/model"
)

// Valuer returns an Attr for the given slog.LogValuer value.
func Valuer(key string, value slog.LogValuer) slog.Attr {
	return slog.Any(key, value)
}

// Err returns an Attr for the given error value.
// The error value is resolved as a string by its Error() method.
// If error value is nil, the constant "no-error" value will be used.
func Err(key string, value error) slog.Attr {
	if value == nil {
		return slog.String(key, "no-error")
	}
	return slog.String(key, value.Error())
}

// CarID returns an Attr for a car identifier with the "car_id" key.
func CarID(id int64) slog.Attr {
	return slog.Int64("car_id", id)
}

// Car returns a group Attr describing the given car. The price is
// logged as a string in order to keep its exact decimal digits.
// A nil car is logged as the constant "nil-car" value.
func Car(key string, c *model.Car) slog.Attr {
	if c == nil {
		return slog.String(key, "nil-car")
	}
	return slog.Group(
		key,
		slog.Int64("id", c.ID),
		slog.String("make", c.Make),
		slog.String("model", c.Model),
		slog.Int("year", c.Year),
		slog.Int("doors", c.Doors),
		slog.String("color", c.Color),
		slog.String("price", c.Price.String()),
	)
}

// Count returns an Attr for the number of items with the "count" key.
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Reason returns an Attr describing why a request was rejected.
func Reason(msg string) slog.Attr {
	return slog.String("reason", msg)
}
