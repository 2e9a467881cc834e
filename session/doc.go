// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package session - run textual operations against an AVL tree
//
// A script is a sequence of lines, each holding an operation name
// followed by zero or more keys separated by white space.  Blank
// lines and lines starting with '#' are ignored.
//
//	add 7 5 4
//	find 4 3
//	remove 7
//	count
//	height
//	check
//	print
package session
