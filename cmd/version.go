///////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Stride Labs                                              //
//                                                                           //
// Use of this source code is governed by a license that can be found in the //
// LICENSE file                                                              //
///////////////////////////////////////////////////////////////////////////////

// Handles command-line version functionality

package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// SEMVER is the version of this build.
const SEMVER = "0.3.0"

// Version returns the version and the dependency list compiled into the
// binary.
func Version() string {
	out := fmt.Sprintf("Stride Client v%s\n\n", SEMVER)

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}
	out += "Dependencies:\n\n"
	for _, dep := range info.Deps {
		out += fmt.Sprintf("\t%s %s\n", dep.Path, dep.Version)
	}
	return out
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and dependency information for the Stride binary",
	Long:  `Print the version and dependency information for the Stride binary`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), Version())
	},
}
