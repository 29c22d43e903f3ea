// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package btree - an AVL balanced tree of opaque items ordered by a
// caller supplied comparison function, with the addition of parent
// pointers and per-node subtree counts to allow iteration and rank
// indexed access through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs.
//
// Items are stored at most once: an insert of an item that compares
// equal to one already present is rejected and leaves the tree
// untouched.  An optional free function can be registered at creation
// time; it is called exactly once for each item as the item leaves
// the tree, either by Delete or by Cleanup.
package btree
