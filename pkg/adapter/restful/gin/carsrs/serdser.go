// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package carsrs

import (
	"bytes"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/goccy/go-json"
	"github.com/momeni/carsweb/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/carsweb/pkg/core/model"
	"github.com/shopspring/decimal"
)

// carIDReq holds the :id path parameter.
type carIDReq struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// CarReq is the request body of the create and update APIs.
// Fields are not validated by the binding because the cars use case
// validates them and reports the first violated rule.
// An id field in the body is ignored.
type CarReq struct {
	Make  string          `json:"make"`
	Model string          `json:"model"`
	Year  int             `json:"year"`
	Doors int             `json:"doors"`
	Color string          `json:"color"`
	Price decimal.Decimal `json:"price"` // accepts numbers and strings

	null bool // body was the JSON null literal
}

// UnmarshalJSON decodes data into r, remembering if data was null.
func (r *CarReq) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		r.null = true
		return nil
	}
	type plain CarReq
	return json.Unmarshal(data, (*plain)(r))
}

// Car converts r to a car model. A null request body yields nil.
func (r *CarReq) Car() *model.Car {
	if r.null {
		return nil
	}
	return &model.Car{
		Make:  r.Make,
		Model: r.Model,
		Year:  r.Year,
		Doors: r.Doors,
		Color: r.Color,
		Price: r.Price,
	}
}

// Price is serialized as a JSON number without losing any digits.
type Price decimal.Decimal

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(p).String()), nil
}

// CarResp is the car representation in the response bodies.
type CarResp struct {
	ID    int64  `json:"id"`
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
	Doors int    `json:"doors"`
	Color string `json:"color"`
	Price Price  `json:"price"`
}

func SerCar(c *model.Car) CarResp {
	return CarResp{
		ID:    c.ID,
		Make:  c.Make,
		Model: c.Model,
		Year:  c.Year,
		Doors: c.Doors,
		Color: c.Color,
		Price: Price(c.Price),
	}
}

func SerCars(cc []model.Car) []CarResp {
	resps := make([]CarResp, 0, len(cc))
	for i := range cc {
		resps = append(resps, SerCar(&cc[i]))
	}
	return resps
}

func (rs *resource) DserCarID(c *gin.Context) (int64, bool) {
	req := &carIDReq{}
	if ok := serdser.BindURI(c, req); !ok {
		return 0, false
	}
	return req.ID, true
}

func (rs *resource) DserCarReq(c *gin.Context) (*model.Car, bool) {
	req := &CarReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil, false
	}
	return req.Car(), true
}
