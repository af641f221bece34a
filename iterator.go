// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bintree

import "golang.org/x/exp/constraints"

// LevelIterator visits a tree one level at a time, top to bottom, with the
// nodes of each level ordered left to right.
type LevelIterator[T constraints.Integer] struct {
	// queue holds the frontier, which is always exactly one full level.
	queue *levelQueue[T]

	// depth is the number of levels returned so far.
	depth int
}

// LevelIterator returns an iterator positioned above the root.
func (t *Tree[T]) LevelIterator() *LevelIterator[T] {
	q := newLevelQueue[T]()
	if root := t.Root(); root != nil {
		q.push(root)
	}
	return &LevelIterator[T]{queue: q}
}

// Next returns the nodes of the next level and true, or nil and false once
// the deepest level has been returned.
func (i *LevelIterator[T]) Next() ([]*Node[T], bool) {
	width := i.queue.len()
	if width == 0 {
		return nil, false
	}

	level := make([]*Node[T], 0, width)
	for k := 0; k < width; k++ {
		n, _ := i.queue.pop()
		level = append(level, n)
		n.pushChildren(i.queue)
	}
	i.depth++
	return level, true
}

// Depth returns how many levels Next has produced.
func (i *LevelIterator[T]) Depth() int {
	return i.depth
}
