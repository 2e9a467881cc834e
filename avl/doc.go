// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL height balanced tree of unique ordered keys
//
// Note: an individual tree is not thread safe, so either access only
// in a single go routine or use mutex/rwmutex to restrict access.
//
// Every node caches the height of its sub-tree.  Insert and delete
// recurse down to the point of change and rebalance each node on the
// way back up, so only the path from the root to the change is
// touched.  There are no parent pointers; a position in the tree is
// passed down as a pointer to the slot that holds it (**node) and
// rotations move nodes between slots.
//
// Deleting a node with two children swaps its key with that of its
// in-order predecessor (the rightmost node of the left sub-tree) and
// then deletes the key from the left sub-tree, where it now sits in a
// node with at most one child.
package avl
