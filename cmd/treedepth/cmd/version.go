// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set through -ldflags at build time.
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version numbers",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Version:    \t %s\n", Version)
			fmt.Fprintf(out, "Git commit: \t %s\n", GitCommit)
			fmt.Fprintf(out, "OS/Arch:    \t %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(out, "Go version: \t %s\n", runtime.Version())
		},
	}
}
