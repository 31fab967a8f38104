// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config is an adapter which accepts yaml formatted config
// files from its users and allows the carsweb to instantiate different
// components, from the adapter or use cases layers, using those loaded
// configuration settings.
// The parsed and validated configurations are passed to their ultimate
// components as a series of individual params (for the mandatory items)
// and a series of functional options (for the optional items), so the
// use cases layer never depends on the configuration file format.
package config

import (
	"context"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/momeni/carsweb/pkg/adapter/config/vers"
	"github.com/momeni/carsweb/pkg/core/repo"
	"github.com/momeni/carsweb/pkg/core/usecase/carsuc"
	"github.com/momeni/carsweb/pkg/core/usecase/initdbuc"
	"gopkg.in/yaml.v3"
)

// These constants define the major and minor version of the
// configuration settings which are supported by the Config struct.
// Files with the same major version and an older (or equal) minor
// version can be loaded.
const (
	Major = 1
	Minor = 0
)

// DatabaseURLEnv is the environment variable which overrides the
// PostgreSQL connection URL when it is set to a non-empty value.
const DatabaseURLEnv = "DATABASE_URL"

// Config contains all settings which are required by different parts
// of the project, such as adapters or use cases. It is implemented
// with primitive fields or structs which are defined locally, not with
// models which are defined in lower layers, so the configuration
// format can be kept intact while other layers change freely.
type Config struct {
	Version  vers.SemVer `yaml:"version"`
	Database Database    `yaml:"database"` // storage backend settings
	Gin      Gin         `yaml:"gin"`      // gin-gonic engine settings
	Log      Log         `yaml:"log"`      // structured logging settings
	Usecases Usecases    `yaml:"usecases"` // use cases settings
}

// Load reads the path configuration file and parses it using the
// Parse function.
func Load(ctx context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	c, err := Parse(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	return c, nil
}

// Parse unmarshals the data byte slice and returns its Config
// instance. Extra items in the data will be ignored and missing items
// will take their default values. The DATABASE_URL environment
// variable, if set, overrides the PostgreSQL connection settings.
// Thereafter, the Config will be validated and normalized in order to
// ensure that provided settings are acceptable.
func Parse(ctx context.Context, data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if u := os.Getenv(DatabaseURLEnv); u != "" {
		c.Database.URL = u
	}
	if err := c.ValidateAndNormalize(ctx); err != nil {
		return nil, fmt.Errorf("validating configs: %w", err)
	}
	return c, nil
}

// ValidateAndNormalize validates the configuration settings and
// returns an error if they were not acceptable. It also replaces the
// missing settings with their default values, and clamps those
// settings which have boundaries (logging a warning for each one).
func (c *Config) ValidateAndNormalize(ctx context.Context) error {
	if err := c.Version.Check(Major, Minor); err != nil {
		return fmt.Errorf(
			"expecting version v%d.%d: %w", Major, Minor, err,
		)
	}
	c.Database.normalize(ctx)
	c.Gin.normalize()
	c.Log.normalize()
	if err := newValidator().Struct(c); err != nil {
		return err
	}
	if err := c.Usecases.Cars.normalize(); err != nil {
		return fmt.Errorf("usecases.cars: %w", err)
	}
	return nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(validateDatabase, Database{})
	return v
}

// ConnectionPool creates a database connection pool using the
// connection information which are kept in the `c` settings.
// The max-open-conns setting is applied to the created pool.
func (c *Config) ConnectionPool(ctx context.Context) (Pool, error) {
	p, err := c.Database.ConnectionPool(ctx)
	if err != nil {
		return nil, fmt.Errorf(
			"%s.ConnectionPool: %w", c.Database.Driver, err,
		)
	}
	return p, nil
}

// NewCarsUseCase instantiates a new cars use case based on the
// settings in the c struct, using the cars repository of the
// configured database driver.
func (c *Config) NewCarsUseCase(p repo.Pool) (*carsuc.UseCase, error) {
	return c.Usecases.Cars.NewUseCase(p, c.Database.CarsRepo())
}

// NewInitDBUseCase instantiates a new database initialization use
// case with the schema and cars repositories of the configured
// database driver.
func (c *Config) NewInitDBUseCase(p repo.Pool) *initdbuc.UseCase {
	return initdbuc.New(p, c.Database.SchemaRepo(), c.Database.CarsRepo())
}
