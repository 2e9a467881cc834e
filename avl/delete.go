// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Remove - removes a specific key from the tree
//
// returns the key as it was stored in the tree and true, or the zero
// key and false if no equal key was present
func (tree *Tree[K]) Remove(key K) (K, bool) {
	removedKey, removed := tree.delete(key, &tree.root)
	if removed {
		tree.count -= 1
	}
	return removedKey, removed
}

// internal delete routine
func (tree *Tree[K]) delete(key K, pp **node[K]) (K, bool) {
	p := *pp
	if nil == p { // key not in tree
		var zero K
		return zero, false
	}

	var removedKey K
	removed := false
	switch c := tree.compare(p.key, key); {
	case c > 0: // p.key > key
		removedKey, removed = tree.delete(key, &p.left)
	case c < 0: // p.key < key
		removedKey, removed = tree.delete(key, &p.right)
	default: // found: delete p
		return tree.unlink(pp), true
	}
	if removed {
		rebalance(pp)
	}
	return removedKey, removed
}

// delete: take the node out of its slot and return its key
func (tree *Tree[K]) unlink(pp **node[K]) K {
	q := *pp

	if nil == q.left {
		*pp = q.right
	} else if nil == q.right {
		*pp = q.left
	} else {
		// two children: swap keys with the predecessor, which now
		// holds the largest key of the left branch and so has no
		// right child, then delete it from the left branch
		r := q.left.last()
		q.key, r.key = r.key, q.key

		removedKey, removed := tree.delete(r.key, &q.left)
		if !removed {
			fault.Panicf("avl: predecessor key: %v not found in left branch", r.key)
		}
		rebalance(pp)
		return removedKey
	}

	removedKey := q.key
	tree.freeNode(q) // return deleted node to pool
	return removedKey
}

// internal: highest node in a sub-tree
func (p *node[K]) last() *node[K] {
	for nil != p.right {
		p = p.right
	}
	return p
}
