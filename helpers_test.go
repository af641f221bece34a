// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bintree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevelOrder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want []int
	}{
		{"[3, 9, 20, null, null, 15, 7]", []int{3, 9, 20, -1, -1, 15, 7}},
		{"3,9,20,-1,-1,15,7", []int{3, 9, 20, -1, -1, 15, 7}},
		{"  1 NULL\t2 ", []int{1, -1, 2}},
		{"[+5]", []int{5}},
		{"[]", []int{}},
		{"", []int{}},
	}
	for _, tc := range cases {
		got, err := ParseLevelOrder(tc.in, -1)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseLevelOrder_Errors(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"[1, two, 3]", "1,,x", "1.5", "--1"} {
		_, err := ParseLevelOrder(in, -1)
		require.ErrorIs(t, err, ErrInvalidToken, in)
	}

	_, err := ParseLevelOrder("[1, 300]", uint8(0))
	require.ErrorIs(t, err, ErrInvalidToken)
	require.Contains(t, err.Error(), "slot 1")

	_, err = ParseLevelOrder("[-1]", uint8(0))
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseLevelOrder("[128]", int8(-1))
	require.ErrorIs(t, err, ErrInvalidToken)

	got, err := ParseLevelOrder("[-128, 127, null]", int8(0))
	require.NoError(t, err)
	require.Equal(t, []int8{-128, 127, 0}, got)
}

func TestLevelOrderKey(t *testing.T) {
	t.Parallel()

	require.Equal(t, "-1|3,9,-1", levelOrderKey([]int{3, 9, -1}, -1))
	require.Equal(t, "0|", levelOrderKey([]uint8{}, 0))
	require.NotEqual(t,
		levelOrderKey([]int{1, 2}, -1),
		levelOrderKey([]int{1, 2}, 0))
	require.NotEqual(t,
		levelOrderKey([]int{12}, -1),
		levelOrderKey([]int{1, 2}, -1))
}
