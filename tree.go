// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bintree

import "golang.org/x/exp/constraints"

// Tree is a plain binary tree (not a search tree) holding an optional root.
// A tree without a root is empty and has depth 0. Trees are produced by a
// Builder and never change afterwards, so they may be shared freely between
// goroutines.
type Tree[T constraints.Integer] struct {
	root *Node[T]
	size int
}

// WalkFn is used when walking the tree. It receives the node and its depth
// (the root is at depth 1) and returns true if the walk should be
// terminated.
type WalkFn[T constraints.Integer] func(n *Node[T], depth int) bool

// NewTree returns an empty tree.
func NewTree[T constraints.Integer]() *Tree[T] {
	return &Tree[T]{}
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] {
	if t == nil {
		return nil
	}
	return t.root
}

// Len is used to return the number of nodes in the tree
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

func (t *Tree[T]) Empty() bool {
	return t.Root() == nil
}

// Depth measures the tree with the given strategy.
func (t *Tree[T]) Depth(s Strategy) int {
	switch s {
	case Iterative:
		return DepthIterative(t.Root())
	default:
		return DepthRecursive(t.Root())
	}
}

// Walk is used to walk the tree in pre-order
func (t *Tree[T]) Walk(fn WalkFn[T]) {
	recursiveWalk(t.Root(), 1, fn)
}

// recursiveWalk is used to do a pre-order walk of a node
// recursively. Returns true if the walk should be aborted
func recursiveWalk[T constraints.Integer](n *Node[T], depth int, fn WalkFn[T]) bool {
	if n == nil {
		return false
	}
	if fn(n, depth) {
		return true
	}
	if recursiveWalk(n.Left, depth+1, fn) {
		return true
	}
	return recursiveWalk(n.Right, depth+1, fn)
}

// Leaves returns the values of the childless nodes, left to right.
func (t *Tree[T]) Leaves() []T {
	var leaves []T
	t.Walk(func(n *Node[T], _ int) bool {
		if n.isLeaf() {
			leaves = append(leaves, n.Val)
		}
		return false
	})
	return leaves
}

// LevelOrder returns the values of the tree grouped by level. Absent
// children are skipped rather than reported.
func (t *Tree[T]) LevelOrder() [][]T {
	var res [][]T
	it := t.LevelIterator()
	for {
		level, ok := it.Next()
		if !ok {
			return res
		}
		vals := make([]T, 0, len(level))
		for _, n := range level {
			vals = append(vals, n.Val)
		}
		res = append(res, vals)
	}
}
