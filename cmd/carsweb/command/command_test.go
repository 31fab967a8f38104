// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/momeni/carsweb/pkg/adapter/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { cfgPath = "" })
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeConfig(t *testing.T) (cfg, db string) {
	t.Helper()
	dir := t.TempDir()
	db = filepath.Join(dir, "carsweb.db")
	cfg = filepath.Join(dir, "config.yaml")
	err := os.WriteFile(cfg, []byte(fmt.Sprintf(`
version: 1.0.0
database:
  driver: sqlite
  path: %q
log:
  level: error
`, db)), 0o600)
	require.NoError(t, err)
	t.Setenv(config.DatabaseURLEnv, "")
	return cfg, db
}

func countCars(t *testing.T, cfg string) int {
	t.Helper()
	ctx := context.Background()
	c, err := config.Load(ctx, cfg)
	require.NoError(t, err)
	p, err := c.ConnectionPool(ctx)
	require.NoError(t, err)
	defer p.Close()
	uc, err := c.NewCarsUseCase(p)
	require.NoError(t, err)
	res, err := uc.List(ctx)
	require.NoError(t, err)
	return len(res.Value())
}

func TestInitDev(t *testing.T) {
	cfg, db := writeConfig(t)
	out, err := execute(t, "db", "init-dev", "-c", cfg)
	require.NoError(t, err)
	assert.Equal(t, "initialized dev database\n", out)
	assert.FileExists(t, db)
	assert.Equal(t, 5, countCars(t, cfg))

	_, err = execute(t, "db", "init-dev", "-c", cfg)
	require.NoError(t, err)
	assert.Equal(t, 5, countCars(t, cfg), "seeding is done once")
}

func TestInitProd(t *testing.T) {
	cfg, _ := writeConfig(t)
	_, err := execute(t, "db", "init-prod", "-c", cfg)
	require.NoError(t, err)
	assert.Zero(t, countCars(t, cfg))
}

func TestConfigFileEnv(t *testing.T) {
	cfg, _ := writeConfig(t)
	t.Setenv("CONFIG_FILE", cfg)
	_, err := execute(t, "db", "init-prod")
	require.NoError(t, err)
	assert.Equal(t, cfg, cfgPath)

	t.Setenv("CONFIG_FILE", cfg+".missing")
	cfgPath = ""
	_, err = execute(t, "db", "init-prod")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "carsweb ")
	assert.Contains(t, out, "config format v1.0\n")
}
