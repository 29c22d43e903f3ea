// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/pieterlexis/sysrepo/btree"
	"github.com/pieterlexis/sysrepo/configuration"
	"github.com/pieterlexis/sysrepo/fault"
)

// read configuration and start logging; called at the start of every
// command
func setup(c *cli.Context, m *metadata) {
	file := c.GlobalString("config")

	config, err := configuration.GetConfiguration(file)
	if nil != err {
		exitwithstatus.Message("Error: Get configuration %q failed: %s", file, err)
	}

	_ = os.MkdirAll(config.Logging.Directory, 0700)
	if err := logger.Initialise(config.LoggerConfiguration()); nil != err {
		exitwithstatus.Message("Error: logger setup failed: %s", err)
	}
	if err := fault.Initialise(); nil != err && fault.ErrAlreadyInitialised != err {
		exitwithstatus.Message("Error: fault setup failed: %s", err)
	}

	m.file = file
	m.config = config
	m.log = logger.New("btree-cli")
	m.verbose = c.GlobalBool("verbose")
}

// load the configured key file into a fresh tree
//
// keys are one per line; blank lines and duplicate keys are skipped
func loadTree(m *metadata) *btree.Tree {
	fileName := m.config.KeyFile
	if !filepath.IsAbs(fileName) {
		fileName = filepath.Join(m.config.DataDirectory, fileName)
	}

	f, err := os.Open(fileName)
	if nil != err {
		exitwithstatus.Message("Error: cannot open key file: %s", err)
	}
	defer f.Close()

	tree, err := btree.New(func(a interface{}, b interface{}) int {
		return strings.Compare(a.(string), b.(string))
	}, nil)
	if nil != err {
		exitwithstatus.Message("Error: %s", err)
	}

	duplicates := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key := strings.TrimSpace(scanner.Text())
		if "" == key {
			continue
		}
		err := tree.Insert(key)
		if fault.ErrDataExists == err {
			duplicates += 1
		} else if nil != err {
			exitwithstatus.Message("Error: insert %q failed: %s", key, err)
		}
	}
	if err := scanner.Err(); nil != err {
		exitwithstatus.Message("Error: reading key file failed: %s", err)
	}

	m.log.Infof("loaded %d keys from: %s  (%d duplicates ignored)", tree.Count(), fileName, duplicates)
	return tree
}

func runList(c *cli.Context, m *metadata) error {
	setup(c, m)
	defer logger.Finalise()

	tree := loadTree(m)
	defer tree.Cleanup()

	// sequential rank walk over the whole sorted order
	for i := 0; ; i += 1 {
		item := tree.GetAt(i)
		if nil == item {
			break
		}
		fmt.Printf("%d: %s\n", i, item)
	}
	return nil
}

func runSearch(c *cli.Context, m *metadata) error {
	setup(c, m)
	defer logger.Finalise()

	key := c.Args().First()
	if "" == key {
		exitwithstatus.Message("Error: missing KEY argument")
	}

	tree := loadTree(m)
	defer tree.Cleanup()

	item, index := tree.Search(key)
	if nil == item {
		m.log.Warnf("key not found: %q", key)
		fmt.Printf("not found: %s\n", key)
		return nil
	}
	fmt.Printf("%d: %s\n", index, item)
	return nil
}

func runDelete(c *cli.Context, m *metadata) error {
	setup(c, m)
	defer logger.Finalise()

	key := c.Args().First()
	if "" == key {
		exitwithstatus.Message("Error: missing KEY argument")
	}

	tree := loadTree(m)
	defer tree.Cleanup()

	if !tree.Delete(key) {
		m.log.Warnf("key not found: %q", key)
		fmt.Printf("not found: %s\n", key)
		return nil
	}

	m.log.Infof("deleted: %q  remaining: %d", key, tree.Count())
	fmt.Printf("deleted: %s\nremaining: %d\n", key, tree.Count())
	if m.verbose {
		for i := 0; ; i += 1 {
			item := tree.GetAt(i)
			if nil == item {
				break
			}
			fmt.Printf("%d: %s\n", i, item)
		}
	}
	return nil
}

func runCheck(c *cli.Context, m *metadata) error {
	setup(c, m)
	defer logger.Finalise()

	tree := loadTree(m)
	defer tree.Cleanup()

	ok := true
	if !tree.CheckUp() {
		m.log.Errorf("inconsistent up pointers")
		ok = false
	}
	if !tree.CheckCounts() {
		m.log.Errorf("inconsistent subtree counts")
		ok = false
	}
	height := tree.CheckBalance()
	if height < 0 {
		m.log.Errorf("height invariant violated")
		ok = false
	}

	if m.verbose {
		depth := tree.Print(true)
		fmt.Printf("depth: %d\n", depth)
		total, free := btree.PoolStats()
		fmt.Printf("nodes: %d created, %d pooled\n", total, free)
	}

	if !ok {
		fault.Critical("tree structure check failed")
		fault.Finalise()
		exitwithstatus.Message("Error: tree structure check failed")
	}
	fmt.Printf("ok: %d keys, height %d\n", tree.Count(), height)
	return nil
}

func runVersion(_ *cli.Context, _ *metadata) error {
	fmt.Println(Version)
	return nil
}
