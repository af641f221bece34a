// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	bintree "github.com/absolutelightning/go-tree-depth"
	"github.com/absolutelightning/go-tree-depth/internal/config"
)

func (c *cli) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <sequence>",
		Short: "Print a tree level by level with null for absent children",
		Example: `  treedepth render "3,9,20,-1,-1,15,7"
  treedepth render --levels 2 "[3, 9, 20, null, null, 15, 7]"`,
		Args: cobra.ExactArgs(1),
		RunE: c.runRender,
	}
	cmd.Flags().Int("levels", 0, "number of levels to render, 0 renders every level")
	c.bind(config.KeyLevels, cmd.Flags().Lookup("levels"))
	return cmd
}

func (c *cli) runRender(cmd *cobra.Command, args []string) error {
	values, err := bintree.ParseLevelOrder(args[0], c.cfg.Sentinel)
	if err != nil {
		return errors.WithMessagef(err, "parse %q", args[0])
	}

	tree := c.cache.Build(values, c.cfg.Sentinel)
	levels := c.cfg.Levels
	if levels == 0 {
		levels = tree.Depth(bintree.Iterative)
	}
	return tree.WriteLevels(cmd.OutOrStdout(), levels)
}
