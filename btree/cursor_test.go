// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pieterlexis/sysrepo/btree"
	"github.com/pieterlexis/sysrepo/fault"
)

// ordering for int items
func compareInts(a interface{}, b interface{}) int {
	return a.(int) - b.(int)
}

// a full lifecycle with a registered destructor: unordered load,
// rank walk, delete, cleanup
func TestLifecycleWithDestructor(t *testing.T) {
	freed := make(map[int]int)

	tree, err := btree.New(compareInts, func(item interface{}) {
		freed[item.(int)] += 1
	})
	assert.NoError(t, err, "new tree")

	for _, key := range []int{5, 3, 8, 1, 4, 7, 9, 2, 6} {
		assert.NoError(t, tree.Insert(key), "insert %d", key)
	}
	assert.Equal(t, 9, tree.Count(), "count after load")

	// rank walk yields the sorted sequence
	for i := 0; i < 9; i += 1 {
		assert.Equal(t, i+1, tree.GetAt(i), "item at %d", i)
	}

	// duplicate insert is rejected and nothing is freed
	err = tree.Insert(5)
	assert.Equal(t, fault.ErrDataExists, err, "duplicate insert")
	assert.Equal(t, 9, tree.Count(), "count after duplicate")
	assert.Empty(t, freed, "destructor ran early")

	// delete consumes the item exactly once
	assert.True(t, tree.Delete(5), "delete 5")
	assert.Equal(t, 1, freed[5], "destructor count for 5")

	item, index := tree.Search(5)
	assert.Nil(t, item, "search deleted key")
	assert.Equal(t, -1, index, "rank of deleted key")

	remaining := []int{1, 2, 3, 4, 6, 7, 8, 9}
	for i, key := range remaining {
		assert.Equal(t, key, tree.GetAt(i), "item at %d after delete", i)
	}

	// cleanup consumes every remaining item exactly once
	tree.Cleanup()
	assert.True(t, tree.IsEmpty(), "tree empty after cleanup")
	assert.Equal(t, 0, tree.Count(), "count after cleanup")
	for _, key := range remaining {
		assert.Equal(t, 1, freed[key], "destructor count for %d", key)
	}
	assert.Len(t, freed, 9, "distinct items freed")

	// the tree is still usable after cleanup
	assert.NoError(t, tree.Insert(42), "insert after cleanup")
	assert.Equal(t, 42, tree.GetAt(0), "item after cleanup")
	tree.Cleanup()
	assert.Equal(t, 1, freed[42], "destructor count for 42")
}

// no destructor means the caller keeps ownership: delete and cleanup
// must run without one
func TestLifecycleWithoutDestructor(t *testing.T) {
	tree, err := btree.New(compareInts, nil)
	assert.NoError(t, err, "new tree")

	for key := 0; key < 100; key += 1 {
		assert.NoError(t, tree.Insert(key), "insert %d", key)
	}
	assert.True(t, tree.Delete(50), "delete")
	assert.False(t, tree.Delete(50), "repeat delete")
	tree.Cleanup()
	assert.True(t, tree.IsEmpty(), "tree empty after cleanup")
}

// cleanup on a nil tree is a no-op, not a crash
func TestCleanupNil(t *testing.T) {
	var tree *btree.Tree
	tree.Cleanup()
}

func TestRoundTrip(t *testing.T) {
	tree, err := btree.New(compareInts, nil)
	assert.NoError(t, err, "new tree")

	for _, key := range []int{77, 11, 93, 42, 8} {
		assert.NoError(t, tree.Insert(key), "insert %d", key)
		item, _ := tree.Search(key)
		assert.Equal(t, key, item, "search after insert")
	}

	for _, key := range []int{42, 77, 8} {
		assert.True(t, tree.Delete(key), "delete %d", key)
		item, _ := tree.Search(key)
		assert.Nil(t, item, "search after delete")
	}
}
