// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bintree

import "golang.org/x/exp/constraints"

// DefaultSentinel is the conventional marker for an absent child in a
// level-order sequence.
const DefaultSentinel = -1

// Node is a single vertex of a binary tree. A node exclusively owns its
// children: there are no parent links and no child is shared between two
// parents.
type Node[T constraints.Integer] struct {
	Val   T
	Left  *Node[T]
	Right *Node[T]
}

func NewNode[T constraints.Integer](v T) *Node[T] {
	return &Node[T]{Val: v}
}

func (n *Node[T]) isLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// pushChildren enqueues the present children of n, left first.
func (n *Node[T]) pushChildren(q *levelQueue[T]) {
	if n.Left != nil {
		q.push(n.Left)
	}
	if n.Right != nil {
		q.push(n.Right)
	}
}
