// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package log_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/goccy/go-json"
	"github.com/momeni/carsweb/pkg/core/log"
	"github.com/momeni/carsweb/pkg/core/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupJSON(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	buf := &bytes.Buffer{}
	_, err := log.Setup(buf, "json", "info")
	require.NoError(t, err)

	ctx := context.Background()
	log.Debug(ctx, "hidden")
	log.Info(
		ctx, "created car",
		log.Car("car", &model.Car{
			ID: 7, Make: "Ford", Model: "Focus", Year: 2008, Doors: 2,
			Color: "Red", Price: decimal.RequireFromString("15000.50"),
		}),
		log.Err("err", errors.New("boom")),
	)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec), buf.String())
	assert.Equal(t, "created car", rec["msg"])
	assert.Equal(t, "boom", rec["err"])
	car, ok := rec["car"].(map[string]any)
	require.True(t, ok, "car must be logged as a group")
	assert.Equal(t, "Ford", car["make"])
	assert.Equal(t, "15000.5", car["price"])
}

func TestSetupRejectsUnknownSettings(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	_, err := log.Setup(&bytes.Buffer{}, "xml", "info")
	assert.Error(t, err)
	_, err = log.Setup(&bytes.Buffer{}, "text", "verbose")
	assert.Error(t, err)
}

func TestAttrs(t *testing.T) {
	assert.Equal(t, "no-error", log.Err("err", nil).Value.String())
	assert.Equal(t, "nil-car", log.Car("car", nil).Value.String())
	assert.Equal(t, int64(3), log.CarID(3).Value.Int64())
}
