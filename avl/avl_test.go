// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
)

var complexTree = []int{7, 5, 4, 2, 6, 11, 9, 10, 13}

type stringItem struct {
	s string
}

func (s stringItem) String() string {
	return s.s
}

func (s stringItem) Compare(x stringItem) int {
	return strings.Compare(s.s, x.s)
}

// print the tree into the test log
func logTree[K any](t *testing.T, tree *avl.Tree[K]) {
	var b strings.Builder
	depth := tree.Print(&b)
	t.Logf("depth: %d\n%s", depth, b.String())
}

func checkTree[K any](t *testing.T, tree *avl.Tree[K]) {
	t.Helper()
	if err := tree.Check(); nil != err {
		logTree(t, tree)
		t.Fatalf("inconsistent tree: %s", err)
	}
}

func TestFindEmptyTree(t *testing.T) {
	tree := avl.New[int]()

	_, found := tree.Find(3)
	assert.False(t, found, "found key in empty tree")
	assert.True(t, tree.IsEmpty(), "new tree is not empty")
	assert.Equal(t, 0, tree.Count(), "wrong count")
	assert.Equal(t, 0, tree.Height(), "wrong height")
	checkTree(t, tree)
}

func TestRemoveEmptyTree(t *testing.T) {
	tree := avl.New[int]()

	removed, ok := tree.Remove(7)
	assert.False(t, ok, "removed key from empty tree")
	assert.Equal(t, 0, removed, "non zero key returned")

	_, found := tree.Find(7)
	assert.False(t, found, "found key in empty tree")
	assert.True(t, tree.IsEmpty(), "tree is not empty")
}

func TestFind(t *testing.T) {
	sets := [][]int{
		{7},
		{7, 2},
		{7, 11},
		complexTree,
	}
	for _, nums := range sets {
		t.Run(fmt.Sprint(nums), func(t *testing.T) {
			tree := avl.FromSlice(nums)
			checkTree(t, tree)

			_, found := tree.Find(3)
			assert.False(t, found, "found key: 3 that was never added")

			for _, n := range nums {
				key, found := tree.Find(n)
				assert.True(t, found, "key: %d not found", n)
				assert.Equal(t, n, key, "wrong key returned")
			}
			assert.Equal(t, len(nums), tree.Count(), "wrong count")
		})
	}
}

// remove each key in turn from a fresh tree
func TestRemove(t *testing.T) {
	sets := [][]int{
		{7},
		{7, 2},
		{7, 11},
		complexTree,
	}
	for _, nums := range sets {
		for _, removedNum := range nums {
			t.Run(fmt.Sprintf("%v-%d", nums, removedNum), func(t *testing.T) {
				tree := avl.FromSlice(nums)
				checkTree(t, tree)

				removed, ok := tree.Remove(removedNum)
				require.True(t, ok, "key: %d not removed", removedNum)
				assert.Equal(t, removedNum, removed, "wrong key returned")
				checkTree(t, tree)

				for _, n := range nums {
					key, found := tree.Find(n)
					if n == removedNum {
						assert.False(t, found, "removed key: %d still present", n)
					} else {
						assert.True(t, found, "key: %d missing", n)
						assert.Equal(t, n, key, "wrong key returned")
					}
				}
				assert.Equal(t, len(nums)-1, tree.Count(), "wrong count")
			})
		}
	}
}

func TestRemoveRootOfComplexTree(t *testing.T) {
	tree := avl.FromSlice(complexTree)

	removed, ok := tree.Remove(7)
	assert.True(t, ok, "7 not removed")
	assert.Equal(t, 7, removed, "wrong key returned")

	_, found := tree.Find(7)
	assert.False(t, found, "7 still present")
	for _, n := range complexTree[1:] {
		_, found := tree.Find(n)
		assert.True(t, found, "key: %d missing", n)
	}
	assert.Equal(t, 8, tree.Count(), "wrong count")
	checkTree(t, tree)
}

func TestRemoveOnlyKey(t *testing.T) {
	tree := avl.FromSlice([]int{1})

	removed, ok := tree.Remove(1)
	assert.True(t, ok, "1 not removed")
	assert.Equal(t, 1, removed, "wrong key returned")

	_, found := tree.Find(1)
	assert.False(t, found, "1 still present")
	assert.True(t, tree.IsEmpty(), "tree is not empty")
	assert.Equal(t, 0, tree.Height(), "wrong height")
}

func TestRemoveRightLeaf(t *testing.T) {
	tree := avl.FromSlice([]int{7, 11})
	assert.Equal(t, 2, tree.Height(), "wrong height before remove")

	removed, ok := tree.Remove(11)
	assert.True(t, ok, "11 not removed")
	assert.Equal(t, 11, removed, "wrong key returned")

	_, found := tree.Find(7)
	assert.True(t, found, "7 missing")
	assert.Equal(t, 1, tree.Height(), "wrong height")
	checkTree(t, tree)
}

func TestRemoveMissingKey(t *testing.T) {
	tree := avl.FromSlice(complexTree)
	var before strings.Builder
	tree.Print(&before)

	_, ok := tree.Remove(3)
	assert.False(t, ok, "removed key that was never added")
	assert.Equal(t, len(complexTree), tree.Count(), "count changed")

	var after strings.Builder
	tree.Print(&after)
	assert.Equal(t, before.String(), after.String(), "tree shape changed")
	checkTree(t, tree)
}

func TestAddDuplicate(t *testing.T) {
	tree := avl.FromSlice(complexTree)
	var before strings.Builder
	tree.Print(&before)

	for _, n := range complexTree {
		assert.False(t, tree.Add(n), "duplicate key: %d was added", n)
	}
	assert.Equal(t, len(complexTree), tree.Count(), "count changed")

	var after strings.Builder
	tree.Print(&after)
	assert.Equal(t, before.String(), after.String(), "tree shape changed")
}

// ascending insertion would give a linked list without rebalancing
func TestAscendingHeight(t *testing.T) {
	tree := avl.New[int]()
	for i := 0; i < 1023; i += 1 {
		require.True(t, tree.Add(i), "key: %d not added", i)
	}
	checkTree(t, tree)
	assert.Equal(t, 10, tree.Height(), "perfect tree expected")

	for i := 0; i < 1023; i += 2 {
		_, ok := tree.Remove(i)
		require.True(t, ok, "key: %d not removed", i)
	}
	checkTree(t, tree)
	assert.Equal(t, 511, tree.Count(), "wrong count")
}

// keys with their own ordering and a stored key distinct from the
// search key
func TestItemAndFuncOrdering(t *testing.T) {
	items := avl.NewItem[stringItem]()
	for _, s := range []string{"4201", "1254", "8608", "1639", "8950", "6740"} {
		items.Add(stringItem{s})
	}
	checkTree(t, items)
	key, found := items.Find(stringItem{"1639"})
	assert.True(t, found, "item not found")
	assert.Equal(t, "1639", key.String(), "wrong item")

	folded := avl.NewFunc(func(a string, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	assert.True(t, folded.Add("Apple"), "Apple not added")
	assert.False(t, folded.Add("APPLE"), "APPLE added as a new key")

	key2, found := folded.Find("apple")
	assert.True(t, found, "apple not found")
	assert.Equal(t, "Apple", key2, "stored key not returned")

	removed, ok := folded.Remove("aPPLE")
	assert.True(t, ok, "aPPLE not removed")
	assert.Equal(t, "Apple", removed, "stored key not returned")
}

func TestNilCompare(t *testing.T) {
	assert.Panics(t, func() {
		avl.NewFunc[int](nil)
	}, "nil compare accepted")
}

func TestListShort(t *testing.T) {
	doList(t, []string{"4201", "1254", "8608", "1639", "8950", "6740"})
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []string{
		"1720", "0506", "8382", "6774", "1247", "1250", "1264", "1258",
		"1255", "2247", "2004", "2194", "2644", "2169", "8133", "2136",
		"9651", "4079", "1042", "3579", "3630", "1427", "5843", "9549",
		"1720", "0506", "8382", "6774", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042", "1042", "1042", "1042",
	}
	doList(t, addList)
}

// delete a growing prefix of the list, then the remainder
func doList(t *testing.T, addList []string) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[string]struct{})

		tree := avl.New[string]()
		for _, key := range addList {
			tree.Add(key)
			checkTree(t, tree)
		}

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			dk, ok := tree.Remove(key)
			if !ok || dk != key {
				t.Fatalf("delete returned: %q, %v  expected: %q", dk, ok, key)
			}
			checkTree(t, tree)
		}

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			dk, ok := tree.Remove(key)
			if !ok || dk != key {
				t.Fatalf("delete returned: %q, %v  expected: %q", dk, ok, key)
			}
			checkTree(t, tree)
		}
		if !tree.IsEmpty() || 0 != tree.Count() {
			logTree(t, tree)
			t.Fatalf("remaining nodes: %d", tree.Count())
		}
	}
}

func makeKey() int {
	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	return int(binary.BigEndian.Uint32(b) % 10000)
}

func TestRandomTree(t *testing.T) {
	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)
	randomTree(t, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := avl.New[int]()
	present := make(map[int]struct{})
	d := make([]int, toDelete)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		_, exists := present[key]
		if added := tree.Add(key); added == exists {
			t.Fatalf("add: %d returned: %v  already present: %v", key, added, exists)
		}
		present[key] = struct{}{}
	}
	checkTree(t, tree)
	assert.Equal(t, len(present), tree.Count(), "count after add")

	for _, key := range d {
		_, exists := present[key]
		removed, ok := tree.Remove(key)
		if ok != exists {
			t.Fatalf("remove: %d returned: %v  present: %v", key, ok, exists)
		}
		if ok && removed != key {
			t.Fatalf("remove: %d returned key: %d", key, removed)
		}
		delete(present, key)
		checkTree(t, tree)
	}
	assert.Equal(t, len(present), tree.Count(), "count after remove")

	for key := range present {
		found, ok := tree.Find(key)
		if !ok || found != key {
			t.Fatalf("find: %d returned: %d, %v", key, found, ok)
		}
	}
	for _, key := range d {
		if _, ok := present[key]; ok {
			continue
		}
		if _, ok := tree.Find(key); ok {
			t.Fatalf("deleted key: %d still present", key)
		}
	}
}

func TestPrint(t *testing.T) {
	tree := avl.FromSlice([]int{2, 1, 3})

	var b strings.Builder
	depth := tree.Print(&b)

	assert.Equal(t, 2, depth, "wrong depth")
	expected := "       /------+ 3 +0/1\n" +
		"|------+ 2 +0/2\n" +
		"       \\------+ 1 +0/1\n"
	assert.Equal(t, expected, b.String(), "wrong picture")
}
