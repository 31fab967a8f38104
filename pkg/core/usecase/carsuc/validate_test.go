// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package carsuc_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/momeni/carsweb/pkg/core/model"
	"github.com/momeni/carsweb/pkg/core/result"
	"github.com/momeni/carsweb/pkg/core/usecase/carsuc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

func focus() *model.Car {
	return &model.Car{
		Make:  "Ford",
		Model: "Focus",
		Year:  2008,
		Doors: 2,
		Color: "Red",
		Price: decimal.NewFromInt(15000),
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		patch func(c *model.Car)
		msg   string
	}{
		{"valid car", func(*model.Car) {}, ""},
		{"empty make", func(c *model.Car) { c.Make = "" }, carsuc.MsgBlankMake},
		{"blank make", func(c *model.Car) { c.Make = " \t" }, carsuc.MsgBlankMake},
		{"blank model", func(c *model.Car) { c.Model = "  " }, carsuc.MsgBlankModel},
		{"year 1899", func(c *model.Car) { c.Year = 1899 }, carsuc.MsgBadYear},
		{"year 1900", func(c *model.Car) { c.Year = 1900 }, ""},
		{"next year", func(c *model.Car) { c.Year = 2025 }, ""},
		{"two years later", func(c *model.Car) { c.Year = 2026 }, carsuc.MsgBadYear},
		{"zero doors", func(c *model.Car) { c.Doors = 0 }, carsuc.MsgBadDoors},
		{"one door", func(c *model.Car) { c.Doors = 1 }, ""},
		{"six doors", func(c *model.Car) { c.Doors = 6 }, ""},
		{"seven doors", func(c *model.Car) { c.Doors = 7 }, carsuc.MsgBadDoors},
		{"blank color", func(c *model.Car) { c.Color = "" }, carsuc.MsgBlankColor},
		{"zero price", func(c *model.Car) { c.Price = decimal.Zero }, carsuc.MsgBadPrice},
		{
			"negative price",
			func(c *model.Car) { c.Price = decimal.RequireFromString("-0.01") },
			carsuc.MsgBadPrice,
		},
		{
			"one cent",
			func(c *model.Car) { c.Price = decimal.RequireFromString("0.01") },
			"",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := focus()
			tc.patch(c)
			r := carsuc.Validate(c, now)
			if tc.msg == "" {
				assert.True(t, r.Succeeded())
				assert.True(t, r.Value())
				return
			}
			assert.False(t, r.Succeeded())
			assert.Equal(t, result.KindError, r.Kind())
			assert.Equal(t, tc.msg, r.Message())
		})
	}
}

func TestValidateNilCar(t *testing.T) {
	r := carsuc.Validate(nil, now)
	assert.Equal(t, result.KindError, r.Kind())
	assert.Equal(t, carsuc.MsgNilCar, r.Message())
}

func TestValidateReportsFirstFailure(t *testing.T) {
	c := &model.Car{Make: "", Model: "", Year: 1800, Doors: 9}
	assert.Equal(t, carsuc.MsgBlankMake, carsuc.Validate(c, now).Message())

	c.Make = "Audi"
	assert.Equal(t, carsuc.MsgBlankModel, carsuc.Validate(c, now).Message())

	c.Model = "R8"
	assert.Equal(t, carsuc.MsgBadYear, carsuc.Validate(c, now).Message())

	c.Year = 2018
	assert.Equal(t, carsuc.MsgBadDoors, carsuc.Validate(c, now).Message())

	c.Doors = 2
	assert.Equal(t, carsuc.MsgBlankColor, carsuc.Validate(c, now).Message())

	c.Color = "Red"
	assert.Equal(t, carsuc.MsgBadPrice, carsuc.Validate(c, now).Message())
}

func ExampleValidate() {
	c := &model.Car{
		Make:  "Tesla",
		Model: "3",
		Year:  2018,
		Doors: 9,
		Color: "Black",
		Price: decimal.NewFromInt(54995),
	}
	r := carsuc.Validate(c, time.Now())
	fmt.Println(r.Kind(), r.Message())
	// Output: error Doors must be between 1 and 6
}
