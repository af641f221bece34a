// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	bintree "github.com/absolutelightning/go-tree-depth"
	"github.com/absolutelightning/go-tree-depth/internal/ctxlog"
)

func (c *cli) newDepthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "depth <sequence>...",
		Short: "Print the maximum depth of each level-order sequence",
		Long: `Print the maximum depth of each level-order sequence, one line per
sequence and strategy. With --strategy both, the command fails if the
strategies disagree.`,
		Example: `  treedepth depth "[3, 9, 20, null, null, 15, 7]" "1,null,2"
  treedepth depth --strategy iterative --sentinel=0 "3 9 20 0 0 15 7"`,
		Args: cobra.MinimumNArgs(1),
		RunE: c.runDepth,
	}
}

func (c *cli) runDepth(cmd *cobra.Command, args []string) error {
	log := ctxlog.FromContext(cmd.Context())
	out := cmd.OutOrStdout()

	for _, arg := range args {
		values, err := bintree.ParseLevelOrder(arg, c.cfg.Sentinel)
		if err != nil {
			return errors.WithMessagef(err, "parse %q", arg)
		}

		depths := make(map[bintree.Strategy]int, len(c.cfg.Strategies))
		for _, s := range c.cfg.Strategies {
			d := c.cache.Depth(values, c.cfg.Sentinel, s)
			depths[s] = d
			log.Debug("measured depth", "input", arg, "strategy", s, "depth", d)
			fmt.Fprintf(out, "%s\t%s\t%d\n", arg, s, d)
		}

		if err := checkAgreement(depths); err != nil {
			return errors.WithMessagef(err, "sequence %q", arg)
		}
	}
	return nil
}

func checkAgreement(depths map[bintree.Strategy]int) error {
	want, seen := 0, false
	for _, d := range depths {
		if seen && d != want {
			return errors.Errorf("strategies disagree: %v", depths)
		}
		want, seen = d, true
	}
	return nil
}
