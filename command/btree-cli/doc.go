// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// btree-cli - load a newline separated key file into a balanced tree
// and inspect it: list keys in sorted order, search a key and its
// rank, delete a key, or verify the tree structure
//
// the tool is configured by a Lua file, see the configuration package
package main
