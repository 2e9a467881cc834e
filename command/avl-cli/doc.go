// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Apply operations to an AVL tree from the command line
//
// The tree starts with the keys listed in the configuration file (if
// any) and is discarded when the program exits.
//
//	avl-cli --config=avl.conf show
//	avl-cli --key-type=string exec add pear apple fig
//	avl-cli --json run ops.txt
package main
