// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/avltree/session"
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// print results as JSON or as one line per result
func printResults(m *metadata, results []session.Result) error {
	if m.json {
		if nil == results {
			results = []session.Result{}
		}
		return printJson(m.w, results)
	}
	for _, r := range results {
		printText(m.w, r)
	}
	return nil
}

func printText(handle io.Writer, r session.Result) {
	switch r.Op {
	case session.OpAdd:
		if r.Found {
			fmt.Fprintf(handle, "add %s: added\n", r.Key)
		} else {
			fmt.Fprintf(handle, "add %s: already present\n", r.Key)
		}
	case session.OpFind, session.OpRemove:
		if r.Found {
			fmt.Fprintf(handle, "%s %s: %s\n", r.Op, r.Key, r.Value)
		} else {
			fmt.Fprintf(handle, "%s %s: not found\n", r.Op, r.Key)
		}
	case session.OpPrint:
		fmt.Fprintf(handle, "%s", r.Value)
	default:
		fmt.Fprintf(handle, "%s: %s\n", r.Op, r.Value)
	}
}
