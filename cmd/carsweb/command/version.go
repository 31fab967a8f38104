// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"fmt"
	"runtime/debug"

	"github.com/momeni/carsweb/pkg/adapter/config"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the binary and supported config versions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		v := "(devel)"
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
			v = bi.Main.Version
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "carsweb %s\n", v)
		fmt.Fprintf(out, "config format v%d.%d\n", config.Major, config.Minor)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
