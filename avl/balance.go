// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// height of a sub-tree, an empty slot has zero height
func height[K any](p *node[K]) int {
	if nil == p {
		return 0
	}
	return p.height
}

// balance factor: height(right) - height(left)
func (p *node[K]) balance() int {
	return height(p.right) - height(p.left)
}

// recompute the cached height from the children
func (p *node[K]) updateHeight() {
	p.height = 1 + max(height(p.left), height(p.right))
}

// restore the balance of the node in a slot after one of its
// sub-trees has changed height by at most one level
func rebalance[K any](pp **node[K]) {
	p := *pp
	if nil == p {
		return
	}
	p.updateHeight()

	switch b := p.balance(); b {
	case +2: // right branch too high
		if -1 == p.right.balance() {
			// double RL rotation
			rotateRight(&p.right)
		}
		rotateLeft(pp)

	case -2: // left branch too high
		if +1 == p.left.balance() {
			// double LR rotation
			rotateLeft(&p.left)
		}
		rotateRight(pp)

	case -1, 0, +1:

	default:
		fault.Panicf("avl: balance: %d out of range at key: %v", b, p.key)
	}
}

// the node in the slot is replaced by its right child
func rotateLeft[K any](pp **node[K]) {
	p := *pp
	if nil == p || nil == p.right {
		fault.Panic("avl: rotate left: node or right child is missing")
	}
	p1 := p.right

	p.right = p1.left
	p1.left = p

	p.updateHeight()
	p1.updateHeight()

	*pp = p1
}

// the node in the slot is replaced by its left child
func rotateRight[K any](pp **node[K]) {
	p := *pp
	if nil == p || nil == p.left {
		fault.Panic("avl: rotate right: node or left child is missing")
	}
	p1 := p.left

	p.left = p1.right
	p1.right = p

	p.updateHeight()
	p1.updateHeight()

	*pp = p1
}
