// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btree

// Search - find the item whose key compares equal to the argument
//
// pure lookup: neither the tree nor any walk state is modified;
// returns the stored item and its zero-based position in sort order,
// or (nil, -1) when no matching item exists
func (tree *Tree) Search(key interface{}) (interface{}, int) {
	if nil == tree || nil == key {
		return nil, -1
	}
	p, index := search(tree.compare, key, tree.root, 0)
	if nil == p {
		return nil, -1
	}
	return p.item, index
}

// internal search routine
func search(cmp CompareFunc, key interface{}, p *node, index int) (*node, int) {
	if nil == p {
		return nil, -1
	}

	c := cmp(p.item, key)
	switch {
	case c > 0: // p.item > key
		return search(cmp, key, p.left, index)
	case c < 0: // p.item < key
		return search(cmp, key, p.right, index+p.leftNodes+1)
	default:
		return p, index + p.leftNodes
	}
}
