// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package cmd

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	bintree "github.com/absolutelightning/go-tree-depth"
	"github.com/absolutelightning/go-tree-depth/internal/ctxlog"
)

type demoCase struct {
	name     string
	values   []int
	expected int
}

var demoCases = []demoCase{
	{"A three-level tree", []int{3, 9, 20, -1, -1, 15, 7}, 3},
	{"A two-level tree", []int{1, -1, 2}, 2},
	{"An empty tree", nil, 0},
	{"A single node", []int{5}, 1},
	{"A left-skewed tree", []int{1, 2, 3, 4, -1, -1, -1, 5}, 4},
}

func (c *cli) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in example trees through each strategy",
		Args:  cobra.NoArgs,
		RunE:  c.runDemo,
	}
}

func (c *cli) runDemo(cmd *cobra.Command, _ []string) error {
	log := ctxlog.FromContext(cmd.Context())
	out := cmd.OutOrStdout()

	failed := 0
	for _, s := range c.cfg.Strategies {
		data := pterm.TableData{{"Case", "Input Tree", "Expected", "Actual"}}
		for _, dc := range demoCases {
			tree := c.cache.Build(dc.values, bintree.DefaultSentinel)
			actual := tree.Depth(s)
			if actual != dc.expected {
				failed++
				log.Error("unexpected depth", "case", dc.name, "strategy", s, "expected", dc.expected, "actual", actual)
			}
			data = append(data, []string{
				dc.name,
				tree.RenderLevels(dc.expected),
				strconv.Itoa(dc.expected),
				strconv.Itoa(actual),
			})
		}

		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return errors.Wrap(err, "render table")
		}
		fmt.Fprintf(out, "***** Testing %s *****\n%s\n\n", s, table)
	}

	if failed > 0 {
		return errors.Errorf("%d demo cases failed", failed)
	}
	fmt.Fprint(out, pterm.Success.Sprintfln("%d cases passed", len(demoCases)*len(c.cfg.Strategies)))
	return nil
}
