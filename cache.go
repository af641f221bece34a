// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bintree

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

const defaultCacheSize = 128

// Cache memoizes built trees and their measured depths, keyed by the
// level-order sequence and sentinel they were built from. Trees never change
// after they are built, so a cached tree can be handed to any number of
// callers.
type Cache[T constraints.Integer] struct {
	trees  *lru.Cache[string, *Tree[T]]
	depths *lru.Cache[depthKey, int]
}

type depthKey struct {
	seq      string
	strategy Strategy
}

// NewCache creates a cache holding up to size trees and size depth results.
// A non-positive size selects the default.
func NewCache[T constraints.Integer](size int) (*Cache[T], error) {
	if size <= 0 {
		size = defaultCacheSize
	}
	trees, err := lru.New[string, *Tree[T]](size)
	if err != nil {
		return nil, errors.WithMessage(err, "tree cache")
	}
	depths, err := lru.New[depthKey, int](size)
	if err != nil {
		return nil, errors.WithMessage(err, "depth cache")
	}
	return &Cache[T]{trees: trees, depths: depths}, nil
}

// Build returns the tree for values, building it on a miss.
func (c *Cache[T]) Build(values []T, sentinel T) *Tree[T] {
	return c.build(levelOrderKey(values, sentinel), values, sentinel)
}

func (c *Cache[T]) build(key string, values []T, sentinel T) *Tree[T] {
	if t, ok := c.trees.Get(key); ok {
		return t
	}
	t := BuildLevelOrder(values, sentinel)
	c.trees.Add(key, t)
	return t
}

// Depth returns the depth of the tree for values measured with s.
func (c *Cache[T]) Depth(values []T, sentinel T, s Strategy) int {
	key := levelOrderKey(values, sentinel)
	dk := depthKey{seq: key, strategy: s}
	if d, ok := c.depths.Get(dk); ok {
		return d
	}
	d := c.build(key, values, sentinel).Depth(s)
	c.depths.Add(dk, d)
	return d
}

// Len returns the number of cached trees.
func (c *Cache[T]) Len() int {
	return c.trees.Len()
}

// Purge drops every cached tree and depth.
func (c *Cache[T]) Purge() {
	c.trees.Purge()
	c.depths.Purge()
}
