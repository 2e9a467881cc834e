// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Add - insert a new key into the tree
//
// returns false and leaves the tree unchanged if an equal key is
// already present
func (tree *Tree[K]) Add(key K) bool {
	added := tree.insert(key, &tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert
func (tree *Tree[K]) insert(key K, pp **node[K]) bool {
	p := *pp
	if nil == p { // insert new node
		*pp = tree.newNode(key)
		return true
	}

	added := false
	switch c := tree.compare(p.key, key); {
	case c > 0: // p.key > key
		added = tree.insert(key, &p.left)
	case c < 0: // p.key < key
		added = tree.insert(key, &p.right)
	default: // duplicate
		return false
	}
	if added {
		rebalance(pp)
	}
	return added
}
