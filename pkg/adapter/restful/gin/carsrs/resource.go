// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package carsrs realizes the cars resource, allowing the cars
// manipulation REST APIs to be accepted and delegated to the
// cars use cases respectively.
package carsrs

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/momeni/carsweb/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/carsweb/pkg/core/usecase/carsuc"
)

type resource struct {
	cars *carsuc.UseCase
	base string // path of the cars collection, used in Location
}

// Register instantiates a resource adapting the cars use case instance
// with the relevant REST APIs including:
//  1. GET request to /api/car in order to list all cars,
//  2. GET request to /api/car/:id in order to get one car,
//  3. POST request to /api/car in order to create a car,
//  4. PUT request to /api/car/:id in order to update a car, and
//  5. DELETE request to /api/car/:id in order to delete a car.
//
// The r router group should be bound to the /api path.
func Register(r *gin.RouterGroup, cars *carsuc.UseCase) {
	g := r.Group("/car")
	rs := &resource{cars: cars, base: g.BasePath()}
	g.GET("", rs.ListCars)
	g.GET("/:id", rs.GetCar)
	g.POST("", rs.CreateCar)
	g.PUT("/:id", rs.UpdateCar)
	g.DELETE("/:id", rs.DeleteCar)
}

func (rs *resource) ListCars(c *gin.Context) {
	res, err := rs.cars.List(c.Request.Context())
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerCars(res.Value()))
}

func (rs *resource) GetCar(c *gin.Context) {
	id, ok := rs.DserCarID(c)
	if !ok {
		return
	}
	res, err := rs.cars.Get(c.Request.Context(), id)
	if err == nil {
		err = res.Err()
	}
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerCar(res.Value()))
}

func (rs *resource) CreateCar(c *gin.Context) {
	car, ok := rs.DserCarReq(c)
	if !ok {
		return
	}
	res, err := rs.cars.Create(c.Request.Context(), car)
	if err == nil {
		err = res.Err()
	}
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	created := res.Value()
	c.Header("Location", rs.base+"/"+strconv.FormatInt(created.ID, 10))
	c.JSON(http.StatusCreated, SerCar(created))
}

func (rs *resource) UpdateCar(c *gin.Context) {
	id, ok := rs.DserCarID(c)
	if !ok {
		return
	}
	car, ok := rs.DserCarReq(c)
	if !ok {
		return
	}
	res, err := rs.cars.Update(c.Request.Context(), id, car)
	if err == nil {
		err = res.Err()
	}
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rs *resource) DeleteCar(c *gin.Context) {
	id, ok := rs.DserCarID(c)
	if !ok {
		return
	}
	if err := rs.cars.Delete(c.Request.Context(), id); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
