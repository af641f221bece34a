// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bintree

import "golang.org/x/exp/constraints"

// levelQueue is the FIFO frontier shared by every breadth-first pass in the
// package: the level-order builder, the level iterator, the renderer and the
// iterative depth count. It may hold nil entries, which the renderer uses to
// keep track of absent children.
type levelQueue[T constraints.Integer] struct {
	items []*Node[T]
}

func newLevelQueue[T constraints.Integer](seed ...*Node[T]) *levelQueue[T] {
	q := &levelQueue[T]{items: make([]*Node[T], 0, len(seed))}
	q.items = append(q.items, seed...)
	return q
}

func (q *levelQueue[T]) push(n *Node[T]) {
	q.items = append(q.items, n)
}

// pop removes the front of the queue. ok is false when the queue is empty.
func (q *levelQueue[T]) pop() (n *Node[T], ok bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	n = q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return n, true
}

func (q *levelQueue[T]) len() int {
	return len(q.items)
}
