// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btree

import (
	"github.com/pieterlexis/sysrepo/fault"
)

// CompareFunc - three-way ordering of two items
//
// must define a strict total order over all items ever stored in the
// same tree: negative when a sorts before b, zero when equal,
// positive when a sorts after b
type CompareFunc func(a interface{}, b interface{}) int

// FreeFunc - destructor for a stored item
//
// called exactly once per item when the item leaves the tree, either
// by Delete or by Cleanup
type FreeFunc func(item interface{})

// Tree - type to hold the root node of a tree
type Tree struct {
	root    *node
	count   int
	compare CompareFunc
	free    FreeFunc
	version uint64    // incremented on every structural change
	walk    walkState // parked position of a sequential GetAt walk
}

// New - create an initially empty tree
//
// the comparison function is mandatory; a nil free function means
// the caller retains ownership of stored items
func New(compare CompareFunc, free FreeFunc) (*Tree, error) {
	if nil == compare {
		return nil, fault.ErrInvalidComparator
	}
	return &Tree{
		compare: compare,
		free:    free,
	}, nil
}

// IsEmpty - true if tree contains no items
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of items currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}
