// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/avltree/fault"
)

// Item - a key type that can order itself
type Item[K any] interface {
	Compare(K) int // for left/right ordering of items
}

// Tree - type to hold the root node of a tree
type Tree[K any] struct {
	root    *node[K]
	count   int
	compare func(a K, b K) int

	// reclaimed nodes
	pool      *node[K]
	freeNodes int
}

// New - create an initially empty tree using the natural ordering
// of the key type
func New[K cmp.Ordered]() *Tree[K] {
	return NewFunc(cmp.Compare[K])
}

// NewFunc - create an initially empty tree ordered by a comparison
// function that returns <0, 0 or >0 for a < b, a == b, a > b
func NewFunc[K any](compare func(a K, b K) int) *Tree[K] {
	if nil == compare {
		fault.Panic("avl: nil compare function")
	}
	return &Tree[K]{
		root:    nil,
		count:   0,
		compare: compare,
	}
}

// NewItem - create an initially empty tree for keys that implement
// the Item interface
func NewItem[K Item[K]]() *Tree[K] {
	return NewFunc(func(a K, b K) int {
		return a.Compare(b)
	})
}

// FromSlice - create a tree and add each item of a slice in order
func FromSlice[K cmp.Ordered](items []K) *Tree[K] {
	tree := New[K]()
	for _, item := range items {
		tree.Add(item)
	}
	return tree
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K]) Count() int {
	return tree.count
}

// Height - number of nodes on the longest path from the root to a
// leaf, zero for an empty tree
func (tree *Tree[K]) Height() int {
	return height(tree.root)
}
