// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify ordering, balance, cached heights and node count
//
// returns nil for a consistent tree
func (tree *Tree[K]) Check() error {
	n, _, err := tree.check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrTreeCountMismatch
	}
	return nil
}

// internal: consistency checker, every key in p must lie strictly
// between low and high (when present); returns node count and height
func (tree *Tree[K]) check(p *node[K], low *K, high *K) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if nil != low && tree.compare(p.key, *low) <= 0 {
		return 0, 0, fault.ErrTreeNotOrdered
	}
	if nil != high && tree.compare(p.key, *high) >= 0 {
		return 0, 0, fault.ErrTreeNotOrdered
	}

	ln, lh, err := tree.check(p.left, low, &p.key)
	if nil != err {
		return 0, 0, err
	}
	rn, rh, err := tree.check(p.right, &p.key, high)
	if nil != err {
		return 0, 0, err
	}

	h := 1 + max(lh, rh)
	if h != p.height {
		return 0, 0, fault.ErrTreeHeightMismatch
	}
	if b := rh - lh; b < -1 || b > 1 {
		return 0, 0, fault.ErrTreeUnbalanced
	}
	return 1 + ln + rn, h, nil
}
