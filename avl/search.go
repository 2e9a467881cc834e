// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - find a specific key
//
// returns the key as stored in the tree and true, or the zero key
// and false if no equal key is present
func (tree *Tree[K]) Find(key K) (K, bool) {
	p := tree.search(key, tree.root)
	if nil == p {
		var zero K
		return zero, false
	}
	return p.key, true
}

func (tree *Tree[K]) search(key K, p *node[K]) *node[K] {
	if nil == p {
		return nil
	}

	switch c := tree.compare(p.key, key); {
	case c > 0: // p.key > key
		return tree.search(key, p.left)
	case c < 0: // p.key < key
		return tree.search(key, p.right)
	default:
		return p
	}
}
