// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bintree

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const nullToken = "null"

// RenderLevels lists the values of the first levels levels of the tree,
// breadth-first, as bracketed comma separated text. Absent children of
// rendered nodes show up as null so that the width of each level can be
// read back, e.g. "[3, 9, 20, null, null, 15, 7]". An empty tree, or a
// non-positive level count, renders as "[]".
func (t *Tree[T]) RenderLevels(levels int) string {
	var sb strings.Builder
	sb.WriteByte('[')

	q := newLevelQueue[T]()
	if root := t.Root(); root != nil {
		q.push(root)
	}

	first := true
	for level := 0; q.len() > 0 && level < levels; level++ {
		width := q.len()
		for i := 0; i < width; i++ {
			n, _ := q.pop()
			if !first {
				sb.WriteString(", ")
			}
			first = false
			if n == nil {
				sb.WriteString(nullToken)
				continue
			}
			fmt.Fprintf(&sb, "%d", n.Val)
			q.push(n.Left)
			q.push(n.Right)
		}
	}

	sb.WriteByte(']')
	return sb.String()
}

// WriteLevels writes RenderLevels followed by a newline to w.
func (t *Tree[T]) WriteLevels(w io.Writer, levels int) error {
	if _, err := io.WriteString(w, t.RenderLevels(levels)+"\n"); err != nil {
		return errors.Wrap(err, "write levels")
	}
	return nil
}

// String renders every level of the tree.
func (t *Tree[T]) String() string {
	return t.RenderLevels(DepthIterative(t.Root()))
}
