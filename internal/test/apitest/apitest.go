// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package apitest provides a testify suite which sends requests to a
// gin engine, configured by a config.Config instance, and checks the
// status codes and bodies of the cars, health, and metrics APIs.
// It is run once per database driver.
package apitest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/momeni/carsweb/pkg/adapter/config"
	"github.com/momeni/carsweb/pkg/adapter/restful/gin"
	"github.com/momeni/carsweb/pkg/adapter/restful/gin/routes"
	"github.com/momeni/carsweb/pkg/core/repo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// Now is the fixed instant which the cars use case sees during the
// suite, so the year boundaries do not move while it runs.
var Now = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

// Suite checks the REST APIs. The Config must be validated and the
// Pool must belong to its database driver. SetupSuite fixes the clock
// of the Config cars use case to Now.
type Suite struct {
	suite.Suite

	Ctx    context.Context
	Pool   repo.Pool
	Config *config.Config

	Gin *gin.Engine
}

// Car mirrors the request and response bodies of the cars APIs.
type Car struct {
	ID    int64           `json:"id,omitempty"`
	Make  string          `json:"make"`
	Model string          `json:"model"`
	Year  int             `json:"year"`
	Doors int             `json:"doors"`
	Color string          `json:"color"`
	Price decimal.Decimal `json:"price"`
}

func (s *Suite) SetupSuite() {
	err := s.Config.NewInitDBUseCase(s.Pool).InitProd(s.Ctx)
	s.Require().NoError(err, "creating tables")
	s.Config.Usecases.Cars.SetClock(func() time.Time { return Now })

	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.Gin = s.Config.Gin.NewEngine(l)
	s.Require().NotNil(s.Gin, "cannot instantiate Gin engine")
	err = routes.Register(s.Gin, s.Pool, s.Config)
	s.Require().NoError(err, "failed to register Gin routes")
}

func (s *Suite) SetupTest() {
	cars := s.Config.Database.CarsRepo()
	err := s.Pool.Conn(s.Ctx, func(ctx context.Context, c repo.Conn) error {
		q := cars.Conn(c)
		cc, err := q.List(ctx)
		if err != nil {
			return err
		}
		for _, car := range cc {
			if err := q.Delete(ctx, car.ID); err != nil {
				return err
			}
		}
		return nil
	})
	s.Require().NoError(err, "emptying cars table")
}

func focus() Car {
	return Car{
		Make:  "Ford",
		Model: "Focus",
		Year:  2008,
		Doors: 5,
		Color: "Blue",
		Price: decimal.RequireFromString("15999.99"),
	}
}

func (s *Suite) send(method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Gin.ServeHTTP(w, req)
	return w
}

func (s *Suite) sendCar(method, path string, c Car) *httptest.ResponseRecorder {
	b, err := json.Marshal(c)
	s.Require().NoError(err)
	return s.send(method, path, string(b))
}

func (s *Suite) decode(w *httptest.ResponseRecorder, res any) {
	s.Require().NoError(
		json.Unmarshal(w.Body.Bytes(), res), "body is not json: %s", w.Body,
	)
}

func (s *Suite) create(c Car) Car {
	w := s.sendCar(http.MethodPost, "/api/car", c)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var created Car
	s.decode(w, &created)
	return created
}

func carPath(id int64) string {
	return "/api/car/" + strconv.FormatInt(id, 10)
}

func (s *Suite) TestCreateAndGet() {
	w := s.sendCar(http.MethodPost, "/api/car", focus())
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	s.Contains(w.Body.String(), `"price":15999.99`, "price is a number")

	var created Car
	s.decode(w, &created)
	s.NotZero(created.ID)
	s.Equal(carPath(created.ID), w.Header().Get("Location"))

	w = s.send(http.MethodGet, carPath(created.ID), "")
	s.Require().Equal(http.StatusOK, w.Code)
	var got Car
	s.decode(w, &got)
	s.Equal(created.ID, got.ID)
	s.Equal("Ford", got.Make)
	s.Equal("Focus", got.Model)
	s.Equal(2008, got.Year)
	s.Equal(5, got.Doors)
	s.Equal("Blue", got.Color)
	s.True(got.Price.Equal(decimal.RequireFromString("15999.99")))
}

func (s *Suite) TestSubCentPriceIsKept() {
	c := focus()
	c.Price = decimal.RequireFromString("0.001")
	created := s.create(c)
	s.Equal("0.001", created.Price.String())

	w := s.send(http.MethodGet, carPath(created.ID), "")
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"price":0.001`)
	var got Car
	s.decode(w, &got)
	s.True(got.Price.IsPositive(), "stored price %s", got.Price)
}

func (s *Suite) TestCreateIgnoresBodyID() {
	c := focus()
	c.ID = 424242
	created := s.create(c)
	s.NotEqual(int64(424242), created.ID)
}

func (s *Suite) TestCreateAcceptsStringPrice() {
	w := s.send(http.MethodPost, "/api/car", `{
		"make": "Tesla", "model": "3", "year": 2018, "doors": 4,
		"color": "Black", "price": "54999.50"
	}`)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	s.Contains(w.Body.String(), `"price":54999.5`)
}

func (s *Suite) TestCreateRejects() {
	nextYear := Now.Year() + 1
	for _, tc := range []struct {
		name string
		body string
		msg  string
	}{
		{"null", `null`, "Car must not be null"},
		{"blank make", `{"make":"  ","model":"Focus","year":2008,"doors":5,"color":"Blue","price":1}`,
			"Make must not be null or whitespace"},
		{"missing model", `{"make":"Ford","year":2008,"doors":5,"color":"Blue","price":1}`,
			"Model must not be null or whitespace"},
		{"old year", `{"make":"Ford","model":"Focus","year":1899,"doors":5,"color":"Blue","price":1}`,
			"Year must be between 1900 and next year"},
		{"future year", fmt.Sprintf(`{"make":"Ford","model":"Focus","year":%d,"doors":5,"color":"Blue","price":1}`, nextYear+1),
			"Year must be between 1900 and next year"},
		{"no doors", `{"make":"Ford","model":"Focus","year":2008,"doors":0,"color":"Blue","price":1}`,
			"Doors must be between 1 and 6"},
		{"many doors", `{"make":"Ford","model":"Focus","year":2008,"doors":7,"color":"Blue","price":1}`,
			"Doors must be between 1 and 6"},
		{"blank color", `{"make":"Ford","model":"Focus","year":2008,"doors":5,"color":"","price":1}`,
			"Color must not be null or whitespace"},
		{"zero price", `{"make":"Ford","model":"Focus","year":2008,"doors":5,"color":"Blue","price":0}`,
			"Price must be greater than 0"},
		{"first failure wins", `{"make":"","model":"","year":1,"doors":9,"color":"","price":-1}`,
			"Make must not be null or whitespace"},
	} {
		s.Run(tc.name, func() {
			w := s.send(http.MethodPost, "/api/car", tc.body)
			s.Equal(http.StatusBadRequest, w.Code)
			s.Equal(tc.msg, w.Body.String())
			s.Contains(w.Header().Get("Content-Type"), "text/plain")
		})
	}
	w := s.send(http.MethodGet, "/api/car", "")
	s.Equal(`[]`, w.Body.String(), "rejected cars must not be stored")
}

func (s *Suite) TestYearBoundaries() {
	for _, year := range []int{1900, Now.Year() + 1} {
		c := focus()
		c.Year = year
		created := s.create(c)
		s.Equal(year, created.Year)
	}
}

func (s *Suite) TestGetMissing() {
	w := s.send(http.MethodGet, carPath(987654), "")
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Car not found", w.Body.String())
}

func (s *Suite) TestList() {
	w := s.send(http.MethodGet, "/api/car", "")
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal(`[]`, w.Body.String(), "empty list is not an error")

	first := s.create(focus())
	c := focus()
	c.Make, c.Model = "BMW", "X6 M"
	second := s.create(c)

	w = s.send(http.MethodGet, "/api/car", "")
	s.Require().Equal(http.StatusOK, w.Code)
	var cc []Car
	s.decode(w, &cc)
	s.Require().Len(cc, 2)
	s.Equal(first.ID, cc[0].ID)
	s.Equal(second.ID, cc[1].ID)
	s.Equal("X6 M", cc[1].Model)
}

func (s *Suite) TestUpdate() {
	created := s.create(focus())
	c := focus()
	c.ID = created.ID + 100
	c.Color, c.Doors = "Silver", 3
	w := s.sendCar(http.MethodPut, carPath(created.ID), c)
	s.Require().Equal(http.StatusNoContent, w.Code, w.Body.String())
	s.Empty(w.Body.String())

	w = s.send(http.MethodGet, carPath(created.ID), "")
	s.Require().Equal(http.StatusOK, w.Code)
	var got Car
	s.decode(w, &got)
	s.Equal(created.ID, got.ID, "update must keep the id")
	s.Equal("Silver", got.Color)
	s.Equal(3, got.Doors)
}

func (s *Suite) TestUpdateRejects() {
	created := s.create(focus())
	c := focus()
	c.Price = decimal.Zero
	w := s.sendCar(http.MethodPut, carPath(created.ID), c)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Price must be greater than 0", w.Body.String())

	w = s.send(http.MethodPut, carPath(987654), `{"make":"Ford"}`)
	s.Equal(http.StatusBadRequest, w.Code, "validation precedes storage")
	s.Equal("Model must not be null or whitespace", w.Body.String())
}

func (s *Suite) TestUpdateMissing() {
	w := s.sendCar(http.MethodPut, carPath(987654), focus())
	s.Equal(http.StatusNoContent, w.Code)

	w = s.send(http.MethodGet, carPath(987654), "")
	s.Equal(http.StatusNotFound, w.Code, "update must not create cars")
}

func (s *Suite) TestDelete() {
	created := s.create(focus())
	for range 2 {
		w := s.send(http.MethodDelete, carPath(created.ID), "")
		s.Equal(http.StatusNoContent, w.Code, "delete is idempotent")
	}
	w := s.send(http.MethodGet, carPath(created.ID), "")
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *Suite) TestBadID() {
	for _, tc := range []struct {
		path   string
		detail bool
		tag    string
	}{
		{path: "/api/car/abc", detail: true},
		{path: "/api/car/0", tag: "'required' tag"},
		{path: "/api/car/-3", tag: "'min' tag"},
	} {
		for _, method := range []string{
			http.MethodGet, http.MethodPut, http.MethodDelete,
		} {
			s.Run(method+" "+tc.path, func() {
				w := s.sendCar(method, tc.path, focus())
				s.Equal(http.StatusBadRequest, w.Code)
				res := &struct {
					Detail string
					ID     []string
				}{}
				s.decode(w, res)
				if tc.detail {
					s.NotEmpty(res.Detail)
					return
				}
				s.Require().Len(res.ID, 1)
				s.Contains(res.ID[0], tc.tag)
			})
		}
	}
}

func (s *Suite) TestBadJSON() {
	for name, body := range map[string]string{
		"truncated":  `{"make": "Ford"`,
		"wrong type": `{"year": "2008"}`,
		"bad price":  `{"price": "cheap"}`,
		"empty":      ``,
	} {
		s.Run(name, func() {
			w := s.send(http.MethodPost, "/api/car", body)
			s.Equal(http.StatusBadRequest, w.Code)
			res := &struct{ Detail string }{}
			s.decode(w, res)
			s.NotEmpty(res.Detail)
		})
	}
}

func (s *Suite) TestHealth() {
	w := s.send(http.MethodGet, "/healthz", "")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"status":"ok"}`, w.Body.String())
}

func (s *Suite) TestMetricsAndRequestID() {
	req := httptest.NewRequest(http.MethodGet, carPath(987654), nil)
	req.Header.Set(gin.RequestIDHeader, "req-1")
	w := httptest.NewRecorder()
	s.Gin.ServeHTTP(w, req)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("req-1", w.Header().Get(gin.RequestIDHeader))

	w = s.send(http.MethodGet, "/metrics", "")
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(
		w.Body.String(),
		`http_requests_total{method="GET",path="/api/car/:id",status="404"}`,
	)
	s.NotEmpty(w.Header().Get(gin.RequestIDHeader), "generated request id")
}
