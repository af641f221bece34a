// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/absolutelightning/go-tree-depth/cmd/treedepth/cmd"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			pterm.Error.Printfln("treedepth crashed: %v", r)
			os.Exit(2)
		}
	}()

	if err := cmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
