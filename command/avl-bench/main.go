// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const (
	defaultCount  = 10000
	defaultRounds = 1
)

// main program
func main() {
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
		{Long: "delete", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
		{Long: "rounds", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'r'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "verify", HasArg: getoptions.NO_ARGUMENT, Short: 'k'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("option parse error: %s", err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [--count=N] [--delete=N] [--rounds=N] [--seed=N] [--verify]", program)
	}

	if 0 != len(arguments) {
		exitwithstatus.Message("%s: extraneous extra arguments", program)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	count := intOption(program, options, "count", defaultCount)
	deleteCount := intOption(program, options, "delete", count/2)
	rounds := intOption(program, options, "rounds", defaultRounds)
	if count <= 0 || rounds <= 0 || deleteCount < 0 {
		exitwithstatus.Message("%s: %s", program, fault.ErrInvalidCount)
	}

	seed := time.Now().UnixNano()
	if len(options["seed"]) > 0 {
		seed, err = strconv.ParseInt(options["seed"][0], 10, 64)
		if nil != err {
			exitwithstatus.Message("%s: seed: %q  error: %s", program, options["seed"][0], err)
		}
	}

	config, err := readConfiguration(options["config-file"])
	if nil != err {
		exitwithstatus.Message("%s: configuration error: %s", program, err)
	}
	if verbose {
		config.Logging.Console = true
	}

	if err := logger.Initialise(config.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err := fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	log := logger.New("main")
	log.Infof("version: %s", version)
	log.Infof("count: %d  delete: %d  rounds: %d  seed: %d", count, deleteCount, rounds, seed)

	b := newBenchmark(log, seed, len(options["verify"]) > 0)

	if !quiet {
		fmt.Printf("rounds: %d  keys: %d  deletes: %d  seed: %d\n", rounds, count, deleteCount, seed)
	}

	for i := 1; i <= rounds; i += 1 {
		r, err := b.round(count, deleteCount)
		if nil != err {
			log.Criticalf("round: %d  error: %s", i, err)
			exitwithstatus.Message("%s: round: %d  error: %s", program, i, err)
		}
		log.Infof("round: %d  result: %+v", i, r)
		if !quiet {
			fmt.Printf("round: %3d  %s\n", i, r)
		}
	}

	total := b.totals()
	log.Infof("total: %+v", total)
	fmt.Printf("total:      %s\n", total)
}

// parse a numeric option or return the default
func intOption(program string, options map[string][]string, name string, defaultValue int) int {
	if 0 == len(options[name]) {
		return defaultValue
	}
	n, err := strconv.Atoi(options[name][0])
	if nil != err {
		exitwithstatus.Message("%s: %s: %q  error: %s", program, name, options[name][0], err)
	}
	return n
}

// the configuration file if given, otherwise logs go to the temporary directory
func readConfiguration(fileNames []string) (*configuration.Configuration, error) {
	if len(fileNames) > 0 {
		return configuration.GetConfiguration(fileNames[0])
	}

	dataDirectory := filepath.Join(os.TempDir(), "avl-bench")
	if err := os.MkdirAll(dataDirectory, 0700); nil != err {
		return nil, err
	}
	config := configuration.Default(dataDirectory)
	if err := config.Finalise(); nil != err {
		return nil, err
	}
	return config, nil
}
