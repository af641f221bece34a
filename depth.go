// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bintree

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// ErrUnknownStrategy is returned by ParseStrategy for an unrecognised name.
var ErrUnknownStrategy = errors.New("unknown depth strategy")

// Strategy selects the algorithm used to measure a tree.
type Strategy int

const (
	// Recursive measures depth with a depth-first recursion.
	Recursive Strategy = iota
	// Iterative measures depth by counting levels breadth-first.
	Iterative
)

func (s Strategy) String() string {
	switch s {
	case Recursive:
		return "recursive"
	case Iterative:
		return "iterative"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a name (recursive/dfs or iterative/bfs, any case) to a
// Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "recursive", "dfs":
		return Recursive, nil
	case "iterative", "bfs":
		return Iterative, nil
	default:
		return 0, errors.Wrapf(ErrUnknownStrategy, "%q", name)
	}
}

// DepthRecursive returns the number of nodes on the longest root-to-leaf
// path below n, or 0 for a nil node. The node graph must be acyclic.
func DepthRecursive[T constraints.Integer](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return max(DepthRecursive(n.Left), DepthRecursive(n.Right)) + 1
}

// DepthIterative returns the same value as DepthRecursive by counting levels
// breadth-first. Auxiliary storage is bounded by the widest level instead of
// the height of the tree. The node graph must be acyclic.
func DepthIterative[T constraints.Integer](n *Node[T]) int {
	if n == nil {
		return 0
	}

	q := newLevelQueue(n)
	depth := 0
	for q.len() > 0 {
		depth++
		width := q.len()
		for i := 0; i < width; i++ {
			cur, _ := q.pop()
			cur.pushChildren(q)
		}
	}
	return depth
}
