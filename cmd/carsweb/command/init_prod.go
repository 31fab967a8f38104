// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"github.com/momeni/carsweb/pkg/adapter/config"
	"github.com/spf13/cobra"
)

var initProdCmd = &cobra.Command{
	Use:   "init-prod",
	Short: "Initialize database contents with production suitable data",
	Long: `Initialize database contents with production suitable data.
The database connection information are read from the config file.
The cars table is created if it is missing, but no rows are inserted.`,
	RunE: runInitDB(config.InitProd),
	Args: cobra.NoArgs,
}

func init() {
	dbCmd.AddCommand(initProdCmd)
}
