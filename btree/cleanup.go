// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btree

// Cleanup - remove every node from the tree
//
// performs an unconditional post-order traversal of the whole node
// graph, so no node is leaked even if balance metadata has been
// corrupted; the free function, if registered, is invoked exactly
// once per resident item; no-op on a nil tree; the tree remains
// usable (empty) afterwards
func (tree *Tree) Cleanup() {
	if nil == tree {
		return
	}
	cleanup(tree.root, tree.free)
	tree.root = nil
	tree.count = 0
	tree.version += 1 // closes any open walk or cursor
	tree.walk = walkState{}
}

// internal: post-order release of a sub-tree
func cleanup(p *node, free FreeFunc) {
	if nil == p {
		return
	}
	cleanup(p.left, free)
	cleanup(p.right, free)
	if nil != free {
		free(p.item)
	}
	freeNode(p)
}
