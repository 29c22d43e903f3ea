// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btree

import (
	"fmt"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkUp(tree.root, nil)
}

// internal: consistency checker
func checkUp(p *node, up *node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		actual := interface{}(nil)
		if nil != p.up {
			actual = p.up.item
		}
		expected := interface{}(nil)
		if nil != up {
			expected = up.item
		}
		fmt.Printf("fail at node: %v   actual: %v  expected: %v\n", p.item, actual, expected)
		return false
	}
	if !checkUp(p.left, p) {
		return false
	}
	return checkUp(p.right, p)
}

// CheckCounts - verify that the per-node subtree counts match the
// actual number of nodes below each node and sum to the tree count
func (tree *Tree) CheckCounts() bool {
	n, ok := checkCounts(tree.root)
	return ok && n == tree.count
}

// internal: count checker, returns node count of sub-tree
func checkCounts(p *node) (int, bool) {
	if nil == p {
		return 0, true
	}
	l, okl := checkCounts(p.left)
	r, okr := checkCounts(p.right)
	if !okl || !okr {
		return 0, false
	}
	if l != p.leftNodes || r != p.rightNodes {
		fmt.Printf("count fail at node: %v   actual: [%d,%d]  expected: [%d,%d]\n",
			p.item, p.leftNodes, p.rightNodes, l, r)
		return 0, false
	}
	return 1 + l + r, true
}

// CheckBalance - verify the height invariant
//
// returns the height of the tree, or -1 if any node's child heights
// differ by more than one or a stored balance factor is stale
func (tree *Tree) CheckBalance() int {
	return checkBalance(tree.root)
}

// internal: height checker
func checkBalance(p *node) int {
	if nil == p {
		return 0
	}
	l := checkBalance(p.left)
	r := checkBalance(p.right)
	if l < 0 || r < 0 {
		return -1
	}
	d := r - l
	if d < -1 || d > 1 || p.balance != d {
		fmt.Printf("balance fail at node: %v   factor: %+d  heights: [%d,%d]\n",
			p.item, p.balance, l, r)
		return -1
	}
	if r > l {
		return 1 + r
	}
	return 1 + l
}
