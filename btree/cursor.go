// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btree

// First - return the item with the lowest key value, or nil on an
// empty tree
func (tree *Tree) First() interface{} {
	p := tree.root.first()
	if nil == p {
		return nil
	}
	return p.item
}

// Last - return the item with the highest key value, or nil on an
// empty tree
func (tree *Tree) Last() interface{} {
	p := tree.root.last()
	if nil == p {
		return nil
	}
	return p.item
}

// Cursor - an explicit in-order iterator over a tree
//
// a cursor never keeps deleted nodes alive: any mutation of the tree
// invalidates all of its open cursors and a subsequent Next reports
// exhaustion instead of touching reclaimed nodes
type Cursor struct {
	tree    *Tree
	node    *node
	version uint64
}

// NewCursor - begin an in-order iteration at the lowest item
func (tree *Tree) NewCursor() *Cursor {
	return &Cursor{
		tree:    tree,
		node:    tree.root.first(),
		version: tree.version,
	}
}

// Next - return the next item in sort order
//
// the second return value is false when the walk is finished or the
// cursor has been invalidated by a mutation of the tree
func (c *Cursor) Next() (interface{}, bool) {
	if nil == c || nil == c.node || c.version != c.tree.version {
		return nil, false
	}
	item := c.node.item
	c.node = c.node.next()
	return item, true
}

// internal: lowest node in a sub-tree
func (p *node) first() *node {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *node) last() *node {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// internal: in-order successor using the parent pointers
func (p *node) next() *node {
	if nil != p.right {
		return p.right.first()
	}
	for nil != p.up && p == p.up.right {
		p = p.up
	}
	return p.up
}
