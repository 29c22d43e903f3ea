// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read Lua configuration files
//
// The configuration file is a Lua program executed in a fresh state;
// the table it leaves on top of the stack is mapped onto a Go
// structure.  Lua allows defaulting and small computations in the
// file itself instead of in every consuming tool.
package configuration
