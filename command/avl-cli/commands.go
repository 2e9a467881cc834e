// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/session"
)

func runScript(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	script := m.r
	fileName := c.Args().First()
	if "" != fileName && "-" != fileName {
		f, err := os.Open(fileName)
		if nil != err {
			return err
		}
		defer f.Close()
		script = f
	}

	m.log.Infof("run: %q", fileName)
	results, err := m.session.Run(script)
	if perr := printResults(m, results); nil != perr {
		return perr
	}
	return err
}

func runExec(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == len(c.Args()) {
		return fault.ErrNotFoundOperation
	}
	op := strings.ToLower(c.Args().First())

	m.log.Infof("exec: %s %v", op, c.Args().Tail())
	results, err := m.session.Apply(op, c.Args().Tail())
	if perr := printResults(m, results); nil != perr {
		return perr
	}
	return err
}

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	results := []session.Result{}
	for _, op := range []string{session.OpCount, session.OpHeight, session.OpPrint} {
		r, err := m.session.Apply(op, nil)
		if nil != err {
			return err
		}
		results = append(results, r...)
	}
	return printResults(m, results)
}
