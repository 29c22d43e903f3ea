// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btree

import (
	"fmt"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
//
// printMeta also shows balance factors and subtree counts; returns
// the maximum depth of the tree
func (tree *Tree) Print(printMeta bool) int {
	return printTree(tree.root, "", root, printMeta)
}

// internal print - returns the maximum depth of the tree
func printTree(p *node, prefix string, br branch, printMeta bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(p.right, prefix+t, right, printMeta)
	}
	switch br {
	case root:
		fmt.Printf("%s|------+ ", prefix)
	case left:
		fmt.Printf("%s\\------+ ", prefix)
	case right:
		fmt.Printf("%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if nil != p.up {
		up = p.up.item
	}
	if printMeta {
		fmt.Printf("%v ^%v %+2d/[%d,%d]\n", p.item, up, p.balance, p.leftNodes, p.rightNodes)
	} else {
		fmt.Printf("%v ^%v\n", p.item, up)
	}
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(p.left, prefix+t, left, printMeta)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
