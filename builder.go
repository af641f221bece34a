// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bintree

import "golang.org/x/exp/constraints"

// Builder assembles a Tree from a level-order sequence fed one slot at a
// time. The first slot is the root; after that every node, in the order it
// was created, consumes two slots: its left child, then its right child. A
// slot holding the sentinel consumes its position but creates no node, so a
// sentinel can never acquire children of its own.
//
// When the sequence ends before every created node has been given its
// children, the missing slots are treated as sentinels. Slots offered after
// every node has been given its children are ignored and counted by Dropped.
type Builder[T constraints.Integer] struct {
	sentinel T

	root  *Node[T]
	queue *levelQueue[T]
	size  int

	// parent is the node whose slots are currently being consumed and
	// rightNext tells which of its two slots comes next.
	parent    *Node[T]
	rightNext bool

	started bool
	dropped int
}

// NewBuilder starts a new build that treats sentinel as "no node here".
func NewBuilder[T constraints.Integer](sentinel T) *Builder[T] {
	return &Builder[T]{
		sentinel: sentinel,
		queue:    newLevelQueue[T](),
	}
}

// Offer consumes the next slot of the sequence.
func (b *Builder[T]) Offer(v T) {
	if !b.started {
		b.started = true
		if v != b.sentinel {
			b.root = b.allocNode(v)
		}
		return
	}

	if b.parent == nil {
		n, ok := b.queue.pop()
		if !ok {
			b.dropped++
			return
		}
		b.parent = n
	}

	var child *Node[T]
	if v != b.sentinel {
		child = b.allocNode(v)
	}
	if !b.rightNext {
		b.parent.Left = child
		b.rightNext = true
		return
	}
	b.parent.Right = child
	b.parent = nil
	b.rightNext = false
}

// Drained reports whether every node created so far has had both of its
// slots consumed, meaning further slots would be dropped.
func (b *Builder[T]) Drained() bool {
	return b.started && b.parent == nil && b.queue.len() == 0
}

// Dropped returns the number of slots ignored because no node was waiting
// for children.
func (b *Builder[T]) Dropped() int {
	return b.dropped
}

// Commit returns the finished tree and resets the builder so it can be
// reused with the same sentinel.
func (b *Builder[T]) Commit() *Tree[T] {
	t := &Tree[T]{root: b.root, size: b.size}
	*b = *NewBuilder(b.sentinel)
	return t
}

func (b *Builder[T]) allocNode(v T) *Node[T] {
	n := NewNode(v)
	b.size++
	b.queue.push(n)
	return n
}

// BuildLevelOrder builds a tree from a complete level-order sequence. An
// empty sequence yields an empty tree, and so does a sequence whose first
// value is the sentinel: the root slot is absent like any other. values is
// not modified.
func BuildLevelOrder[T constraints.Integer](values []T, sentinel T) *Tree[T] {
	b := NewBuilder(sentinel)
	for _, v := range values {
		if b.Drained() {
			break
		}
		b.Offer(v)
	}
	return b.Commit()
}
