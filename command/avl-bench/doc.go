// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Time random insertions and deletions on AVL trees
//
// e.g. ten rounds of 100000 adds and 50000 removes, verifying the tree
// after every operation:
//
//	avl-bench --count=100000 --delete=50000 --rounds=10 --verify
package main
