// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/session"
)

type metadata struct {
	config  *configuration.Configuration
	session *session.Session
	log     *logger.L
	json    bool
	verbose bool
	r       io.Reader
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// newApp - the command line application reading scripts from stdin
// when no file is given
func newApp(stdin io.Reader, stdout io.Writer, stderr io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "apply operations to an AVL tree of unique keys"
	app.Version = version
	app.HideVersion = true

	app.Writer = stdout
	app.ErrWriter = stderr

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "key-type, k",
			Value: "",
			Usage: " override the configured key `TYPE` [integer|string|folded]",
		},
		cli.BoolFlag{
			Name:  "json, j",
			Usage: " print results as JSON",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "run",
			Usage:     "execute the operations in a script, one per line",
			ArgsUsage: "FILE\n   (- or no FILE reads standard input)",
			Action:    runScript,
		},
		{
			Name:      "exec",
			Usage:     "execute a single operation",
			ArgsUsage: "OPERATION [KEY...]\n   (add, remove, find, count, height, check, print)",
			Action:    runExec,
		},
		{
			Name:   "show",
			Usage:  "print the tree built from the configured keys",
			Action: runShow,
		},
		{
			Name:  "version",
			Usage: "display avl-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read configuration, start logging and load the initial keys
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		command := c.Args().First()
		if "" == command || "version" == command || "help" == command || "h" == command {
			return nil
		}

		config, err := readConfiguration(c.GlobalString("config"), c.App.Name)
		if nil != err {
			return err
		}
		if keyType := c.GlobalString("key-type"); "" != keyType {
			config.KeyType = keyType
			if err := config.Finalise(); nil != err {
				return err
			}
		}

		if verbose {
			fmt.Fprintf(e, "data directory: %q\n", config.DataDirectory)
			fmt.Fprintf(e, "key type: %q\n", config.KeyType)
		}

		if err := logger.Initialise(config.Logging); nil != err {
			return err
		}

		// from here on After must flush the logs
		m := &metadata{
			config:  config,
			log:     logger.New("main"),
			json:    config.JSON || c.GlobalBool("json"),
			verbose: verbose,
			r:       stdin,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		if err := fault.Initialise(); nil != err {
			return err
		}

		m.log.Infof("version: %s", version)
		m.log.Debugf("configuration: %+v", config)

		container, err := session.NewContainer(config.KeyType)
		if nil != err {
			m.log.Errorf("key type: %q  error: %s", config.KeyType, err)
			return fmt.Errorf("key type: %q: %s", config.KeyType, err)
		}
		m.session = session.New(container, logger.New("session"))

		n, err := m.session.Load(config.KeyStrings())
		if nil != err {
			return err
		}
		if verbose {
			fmt.Fprintf(e, "loaded: %d keys\n", n)
		}
		return nil
	}

	// flush logs
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		delete(c.App.Metadata, "config")
		m.log.Info("finished")
		fault.Finalise()
		logger.Finalise()
		return nil
	}

	return app
}

// the configuration file if given, otherwise defaults with logs
// kept in the user cache directory
func readConfiguration(fileName string, name string) (*configuration.Configuration, error) {
	if "" != fileName {
		return configuration.GetConfiguration(fileName)
	}

	cacheDirectory, err := os.UserCacheDir()
	if nil != err {
		return nil, err
	}
	dataDirectory := filepath.Join(cacheDirectory, name)
	if err := os.MkdirAll(dataDirectory, 0700); nil != err {
		return nil, err
	}

	config := configuration.Default(dataDirectory)
	if err := config.Finalise(); nil != err {
		return nil, err
	}
	return config, nil
}
