// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/pieterlexis/sysrepo/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	log     *logger.L
	verbose bool
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	m := metadata{}

	app := cli.NewApp()
	app.Name = "btree-cli"
	app.Usage = "inspect the sorted index built from a key file"
	app.Version = Version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "btree-cli.conf",
			Usage: " configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "list",
			Usage: "walk all keys in sorted order",
			Action: func(c *cli.Context) error {
				return runList(c, &m)
			},
		},
		{
			Name:      "search",
			Usage:     "find a key and its rank",
			ArgsUsage: "KEY",
			Action: func(c *cli.Context) error {
				return runSearch(c, &m)
			},
		},
		{
			Name:      "delete",
			Usage:     "remove a key and show the resulting order",
			ArgsUsage: "KEY",
			Action: func(c *cli.Context) error {
				return runDelete(c, &m)
			},
		},
		{
			Name:  "check",
			Usage: "verify tree structure and height invariant",
			Action: func(c *cli.Context) error {
				return runCheck(c, &m)
			},
		},
		{
			Name:  "version",
			Usage: "display version",
			Action: func(c *cli.Context) error {
				return runVersion(c, &m)
			},
		},
	}

	if err := app.Run(os.Args); nil != err {
		exitwithstatus.Message("Error: %s", err)
	}
}
