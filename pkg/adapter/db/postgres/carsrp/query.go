// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package carsrp

import (
	"context"
	"errors"
	"fmt"

	"github.com/momeni/carsweb/pkg/adapter/db/postgres"
	"github.com/momeni/carsweb/pkg/core/model"
	"github.com/momeni/carsweb/pkg/core/repo"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type gCar struct {
	ID    int64 `gorm:"primaryKey;column:id"`
	Make  string
	Model string
	Year  int
	Doors int
	Color string
	Price decimal.Decimal `gorm:"type:numeric"`
}

func (gc *gCar) TableName() string {
	return "cars"
}

func (gc *gCar) Car() *model.Car {
	return &model.Car{
		ID:    gc.ID,
		Make:  gc.Make,
		Model: gc.Model,
		Year:  gc.Year,
		Doors: gc.Doors,
		Color: gc.Color,
		Price: gc.Price,
	}
}

func fromModel(c *model.Car) gCar {
	return gCar{
		Make:  c.Make,
		Model: c.Model,
		Year:  c.Year,
		Doors: c.Doors,
		Color: c.Color,
		Price: c.Price,
	}
}

// updatedColumns lists all columns except id. They are selected
// explicitly, so zero values are written too.
var updatedColumns = []string{
	"make", "model", "year", "doors", "color", "price",
}

func List[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Car, error) {
	var gcs []gCar
	if err := q.GORM(ctx).Order("id").Find(&gcs).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	cc := make([]model.Car, 0, len(gcs))
	for i := range gcs {
		cc = append(cc, *gcs[i].Car())
	}
	return cc, nil
}

func Get[Q postgres.Queryer](ctx context.Context, q Q, id int64) (*model.Car, error) {
	var gc gCar
	err := q.GORM(ctx).Where("id = ?", id).First(&gc).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("car %d: %w", id, repo.ErrNotFound)
	case err != nil:
		return nil, fmt.Errorf("query: %w", err)
	}
	return gc.Car(), nil
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, c *model.Car) (*model.Car, error) {
	gc := fromModel(c)
	if err := q.GORM(ctx).Create(&gc).Error; err != nil {
		return nil, fmt.Errorf("insert: %w", err)
	}
	return gc.Car(), nil
}

func Update[Q postgres.Queryer](ctx context.Context, q Q, id int64, c *model.Car) error {
	err := q.GORM(ctx).Model(&gCar{}).Where(
		"id = ?", id,
	).Select(updatedColumns).Updates(fromModel(c)).Error
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}
	return nil
}

func Delete[Q postgres.Queryer](ctx context.Context, q Q, id int64) error {
	err := q.GORM(ctx).Where("id = ?", id).Delete(&gCar{}).Error
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	return nil
}

func Count[Q postgres.Queryer](ctx context.Context, q Q) (int64, error) {
	var n int64
	if err := q.GORM(ctx).Model(&gCar{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}
