// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btree

// parked position of a sequential GetAt walk
type walkState struct {
	node    *node  // last visited node, only valid while version matches
	index   int    // position of that node in sort order
	version uint64 // tree version the walk was parked against
	open    bool
}

// GetAt - return the item at a zero-based position in sort order, or
// nil when the position is out of range
//
// positions are expected to be requested sequentially: index 0
// (re)starts an in-order walk and each consecutive index continues
// it in amortised constant time using the parent pointers, so a full
// 0..n-1 sweep costs O(n).  Any other index is located from the root
// in O(log n) using the subtree counts, so out of order calls behave
// as random access at logarithmic cost rather than being undefined.
//
// the walk is parked between calls; any mutation of the tree closes
// it and the next call re-seeks from the root, a call that runs off
// the end closes it as well
func (tree *Tree) GetAt(index int) interface{} {
	if nil == tree {
		return nil
	}
	if index < 0 || index >= tree.count {
		tree.walk = walkState{} // off the end: close the walk
		return nil
	}

	w := &tree.walk
	switch {
	case 0 == index:
		w.node = tree.root.first()
	case w.open && w.version == tree.version && nil != w.node && index == w.index+1:
		w.node = w.node.next()
	default:
		w.node = get(index, tree.root)
	}
	if nil == w.node {
		tree.walk = walkState{}
		return nil
	}
	w.open = true
	w.index = index
	w.version = tree.version
	return w.node.item
}

// internal: descend to a position using the subtree counts
func get(index int, p *node) *node {
	if nil == p {
		return nil
	}

	nl := p.leftNodes

	if index < nl {
		return get(index, p.left)
	}
	if index > nl {
		// subtract left nodes + 1 (for this node)
		return get(index-nl-1, p.right)
	}
	return p
}
