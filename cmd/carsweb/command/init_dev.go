// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"github.com/momeni/carsweb/pkg/adapter/config"
	"github.com/spf13/cobra"
)

var initDevCmd = &cobra.Command{
	Use:   "init-dev",
	Short: "Initialize database contents with development suitable data",
	Long: `Initialize database contents with development suitable data.
The database connection information are read from the config file.
The cars table is created if it is missing and if it has no rows,
a few sample cars are inserted. A non-empty table is left unchanged.`,
	RunE: runInitDB(config.InitDev),
	Args: cobra.NoArgs,
}

func init() {
	dbCmd.AddCommand(initDevCmd)
}
