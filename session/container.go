// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package session

import (
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// supported key types
const (
	IntegerKeys = "integer"
	StringKeys  = "string"
	FoldedKeys  = "folded" // case-insensitive strings
)

// Container - a tree of one key type accessed through textual keys
type Container interface {
	Add(key string) (bool, error)
	Remove(key string) (string, bool, error)
	Find(key string) (string, bool, error)
	Count() int
	Height() int
	Check() error
	Print(w io.Writer) int
}

// a tree together with the conversions for its key type
type typed[K any] struct {
	tree   *avl.Tree[K]
	parse  func(string) (K, error)
	format func(K) string
}

// NewContainer - create an empty container for the named key type
func NewContainer(keyType string) (Container, error) {
	switch keyType {
	case IntegerKeys:
		return &typed[int64]{
			tree:   avl.New[int64](),
			parse:  parseInteger,
			format: formatInteger,
		}, nil

	case StringKeys:
		return &typed[string]{
			tree:   avl.New[string](),
			parse:  parseString,
			format: formatString,
		}, nil

	case FoldedKeys:
		return &typed[string]{
			tree:   avl.NewFunc(compareFolded),
			parse:  parseString,
			format: formatString,
		}, nil

	default:
		return nil, fault.ErrInvalidKeyType
	}
}

func (c *typed[K]) Add(key string) (bool, error) {
	k, err := c.parse(key)
	if nil != err {
		return false, err
	}
	return c.tree.Add(k), nil
}

func (c *typed[K]) Remove(key string) (string, bool, error) {
	k, err := c.parse(key)
	if nil != err {
		return "", false, err
	}
	removed, ok := c.tree.Remove(k)
	if !ok {
		return "", false, nil
	}
	return c.format(removed), true, nil
}

func (c *typed[K]) Find(key string) (string, bool, error) {
	k, err := c.parse(key)
	if nil != err {
		return "", false, err
	}
	found, ok := c.tree.Find(k)
	if !ok {
		return "", false, nil
	}
	return c.format(found), true, nil
}

func (c *typed[K]) Count() int {
	return c.tree.Count()
}

func (c *typed[K]) Height() int {
	return c.tree.Height()
}

func (c *typed[K]) Check() error {
	return c.tree.Check()
}

func (c *typed[K]) Print(w io.Writer) int {
	return c.tree.Print(w)
}

func parseInteger(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if nil != err {
		return 0, fault.ErrInvalidKey
	}
	return n, nil
}

func formatInteger(n int64) string {
	return strconv.FormatInt(n, 10)
}

func parseString(s string) (string, error) {
	if "" == s {
		return "", fault.ErrInvalidKey
	}
	return s, nil
}

func formatString(s string) string {
	return s
}

func compareFolded(a string, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
