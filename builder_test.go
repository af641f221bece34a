// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bintree

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildLevelOrder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		values []int
		levels [][]int
		size   int
	}{
		{"empty", nil, nil, 0},
		{"single", []int{5}, [][]int{{5}}, 1},
		{"three levels", []int{3, 9, 20, -1, -1, 15, 7}, [][]int{{3}, {9, 20}, {15, 7}}, 5},
		{"right only", []int{1, -1, 2}, [][]int{{1}, {2}}, 2},
		{"left skewed", []int{1, 2, 3, 4, -1, -1, -1, 5}, [][]int{{1}, {2, 3}, {4}, {5}}, 5},
		{"truncated", []int{1, 2}, [][]int{{1}, {2}}, 2},
		{"root sentinel", []int{-1, 2, 3}, nil, 0},
		{"zero is a value", []int{0, 0, -1, 0}, [][]int{{0}, {0}, {0}}, 3},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tree := BuildLevelOrder(tc.values, DefaultSentinel)
			require.Equal(t, tc.levels, tree.LevelOrder())
			require.Equal(t, tc.size, tree.Len())
			require.Equal(t, tc.size == 0, tree.Empty())
		})
	}
}

func TestBuildLevelOrder_SentinelNeverGetsChildren(t *testing.T) {
	t.Parallel()

	// The slots after the sentinel belong to 2, the next created node.
	tree := BuildLevelOrder([]int{1, -1, 2, 3, 4}, -1)
	root := tree.Root()
	require.Nil(t, root.Left)
	require.Equal(t, 2, root.Right.Val)
	require.Equal(t, 3, root.Right.Left.Val)
	require.Equal(t, 4, root.Right.Right.Val)
	require.Equal(t, 3, DepthRecursive(root))
}

func TestBuildLevelOrder_SentinelRoot(t *testing.T) {
	t.Parallel()

	tree := BuildLevelOrder([]int{-1, 5, 6}, -1)
	require.True(t, tree.Empty())
	require.Zero(t, tree.Len())
	require.Zero(t, DepthRecursive(tree.Root()))
	require.Zero(t, DepthIterative(tree.Root()))
	require.Equal(t, "[]", tree.String())
}

func TestBuildLevelOrder_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	values := []int{3, 9, 20, -1, -1, 15, 7}
	orig := slices.Clone(values)
	BuildLevelOrder(values, -1)
	require.Equal(t, orig, values)
}

func TestBuildLevelOrder_CustomSentinel(t *testing.T) {
	t.Parallel()

	tree := BuildLevelOrder([]uint8{3, 9, 20, 0, 0, 15, 7}, 0)
	require.Equal(t, [][]uint8{{3}, {9, 20}, {15, 7}}, tree.LevelOrder())

	// -1 is an ordinary value once the sentinel is something else.
	tree2 := BuildLevelOrder([]int{-1, -1, 99}, 99)
	require.Equal(t, [][]int{{-1}, {-1}}, tree2.LevelOrder())
}

func TestBuilder_DropsSlotsAfterDrain(t *testing.T) {
	t.Parallel()

	b := NewBuilder(-1)
	for _, v := range []int{1, -1, -1} {
		b.Offer(v)
	}
	require.True(t, b.Drained())
	b.Offer(7)
	b.Offer(8)
	require.Equal(t, 2, b.Dropped())

	tree := b.Commit()
	require.Equal(t, 1, tree.Len())
	require.Equal(t, 1, DepthIterative(tree.Root()))
}

func TestBuilder_CommitResets(t *testing.T) {
	t.Parallel()

	b := NewBuilder(-1)
	require.False(t, b.Drained())
	b.Offer(1)
	b.Offer(2)
	require.False(t, b.Drained())
	first := b.Commit()

	require.Zero(t, b.Dropped())
	b.Offer(10)
	second := b.Commit()

	require.Equal(t, [][]int{{1}, {2}}, first.LevelOrder())
	require.Equal(t, [][]int{{10}}, second.LevelOrder())

	empty := b.Commit()
	require.True(t, empty.Empty())
}
