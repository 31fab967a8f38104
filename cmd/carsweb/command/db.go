// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database management actions",
	Long: `Database management actions can be chosen by sub-commands.
For fresh installation in a development or production environment,
the init-dev or init-prod may be used. Both of them are idempotent.`,
}

// runInitDB returns a cobra RunE function which connects to the
// configured database and runs the mode initialization action.
func runInitDB(mode string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		c, _, p, err := setup(ctx)
		if err != nil {
			return err
		}
		defer p.Close()
		if err = initDB(ctx, c, p, mode); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "initialized %s database\n", mode)
		return nil
	}
}

func init() {
	rootCmd.AddCommand(dbCmd)
}
