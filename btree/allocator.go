// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btree

import (
	"sync"

	"github.com/pieterlexis/sysrepo/counter"
)

// a node in the tree
type node struct {
	left       *node       // left sub-tree
	right      *node       // right sub-tree
	up         *node       // points to parent node
	item       interface{} // opaque stored item
	balance    int         // -1, 0, +1
	leftNodes  int         // number of nodes in left sub-tree
	rightNodes int         // number of nodes in right sub-tree
}

// global data for allocator
var m sync.Mutex               // to keep the pool list in sync
var pool *node                 // linked list of reclaimed nodes
var totalNodes counter.Counter // total nodes created
var freeNodes counter.Counter  // number of nodes in the pool

// allocate a new node, reuses reclaimed nodes if any are available
func newNode(item interface{}) *node {
	m.Lock()
	if nil == pool {
		if !freeNodes.IsZero() {
			panic("pool corrupt")
		}
		totalNodes.Increment()
		m.Unlock()
		return &node{
			item: item,
		}
	}
	p := pool
	pool = p.up
	p.item = item
	p.balance = 0
	p.leftNodes = 0
	p.rightNodes = 0
	p.left = nil
	p.right = nil
	p.up = nil // ensure freelist pointer is cleared
	freeNodes.Decrement()
	m.Unlock()
	return p
}

// reclaim a node and keep it in a pool
func freeNode(p *node) {
	m.Lock()
	p.up = pool // use as free list pointer

	p.left = nil
	p.right = nil
	p.item = nil
	p.balance = 0
	p.leftNodes = 0
	p.rightNodes = 0
	freeNodes.Increment()

	pool = p
	m.Unlock()
}

// PoolStats - number of nodes ever created and number currently held
// in the reclaim pool
func PoolStats() (total uint64, free uint64) {
	return totalNodes.Uint64(), freeNodes.Uint64()
}
