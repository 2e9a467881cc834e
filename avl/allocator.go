// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// reclaimed nodes above this are left to the garbage collector
const maximumFreeNodes = 256

// a node in the tree
type node[K any] struct {
	left   *node[K] // left sub-tree
	right  *node[K] // right sub-tree
	key    K        // key part for ordering
	height int      // 1 + max(height(left), height(right))
}

// allocate a new leaf node, reuses reclaimed nodes if any are available
func (tree *Tree[K]) newNode(key K) *node[K] {
	p := tree.pool
	if nil == p {
		if 0 != tree.freeNodes {
			fault.Panic("avl: pool corrupt")
		}
		return &node[K]{
			key:    key,
			height: 1,
		}
	}
	tree.pool = p.left
	p.key = key
	p.height = 1
	p.left = nil // ensure freelist pointer is cleared
	p.right = nil
	tree.freeNodes -= 1
	return p
}

// reclaim a node that has already been unlinked from the tree
func (tree *Tree[K]) freeNode(p *node[K]) {
	var zero K
	p.key = zero
	p.right = nil
	p.height = 0
	if tree.freeNodes >= maximumFreeNodes {
		p.left = nil
		return
	}
	p.left = tree.pool // use as free list pointer
	tree.pool = p
	tree.freeNodes += 1
}
